package http

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/sessions"

	"github.com/DhruvsOLaNkiI/Minimal-store/internal/session"
	"github.com/DhruvsOLaNkiI/Minimal-store/pkg/httputil"
	"github.com/DhruvsOLaNkiI/Minimal-store/pkg/logger"
	"github.com/DhruvsOLaNkiI/Minimal-store/pkg/middleware"
)

// SessionCookieName is the signed cookie carrying the storefront session ID.
const SessionCookieName = "storefront_session"

const sessionIDValue = "sid"

// SessionRegistry is the part of the session manager the HTTP layer needs.
type SessionRegistry interface {
	Create() *session.Session
	Get(id string) (*session.Session, error)
	End(id string)
}

// CookieOptions configures the session cookie.
type CookieOptions struct {
	Secret []byte
	MaxAge int // seconds
	Secure bool
}

// NewCookieStore returns a gorilla/sessions store signing cookies with the
// configured secret.
func NewCookieStore(opts CookieOptions) *sessions.CookieStore {
	store := sessions.NewCookieStore(opts.Secret)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   opts.MaxAge,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

type contextKey string

const sessionIDKey contextKey = "session_id"

// SessionFromCookie resolves the session named by the signed cookie. A live
// session has its cookie re-saved so the browser expiry slides along with the
// server-side idle timeout. A cookie naming a session that has ended or
// expired is expired too. No session is created here; see RequireSession.
func SessionFromCookie(store sessions.Store, registry SessionRegistry, fallback *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// A decode error still yields a usable new cookie session.
			cs, _ := store.Get(r, SessionCookieName)

			id, _ := cs.Values[sessionIDValue].(string)
			if id == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !alive(registry, id) {
				delete(cs.Values, sessionIDValue)
				cs.Options.MaxAge = -1
				if err := cs.Save(r, w); err != nil {
					httputil.WriteError(w, r, err, fallback)
					return
				}
				logger.FromContext(r.Context()).DebugContext(r.Context(), "stale session cookie dropped",
					slog.String("session_id", id))
				next.ServeHTTP(w, r)
				return
			}

			if err := cs.Save(r, w); err != nil {
				httputil.WriteError(w, r, err, fallback)
				return
			}
			next.ServeHTTP(w, r.WithContext(withSession(r.Context(), id)))
		})
	}
}

// RequireSession starts a session when SessionFromCookie resolved none, and
// writes its cookie. Mount it behind the rate limiter so anonymous clients
// cannot grow the registry unchecked.
func RequireSession(store sessions.Store, registry SessionRegistry, fallback *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if sessionIDFromContext(r.Context()) != "" {
				next.ServeHTTP(w, r)
				return
			}

			// New rather than Get: the request-cached session may already
			// have been expired by SessionFromCookie.
			cs, _ := store.New(r, SessionCookieName)
			id := registry.Create().ID
			cs.Values[sessionIDValue] = id
			if err := cs.Save(r, w); err != nil {
				httputil.WriteError(w, r, err, fallback)
				return
			}
			logger.FromContext(r.Context()).DebugContext(r.Context(), "session started",
				slog.String("session_id", id))

			next.ServeHTTP(w, r.WithContext(withSession(r.Context(), id)))
		})
	}
}

func withSession(ctx context.Context, id string) context.Context {
	middleware.AnnotateSession(ctx, id)
	ctx = context.WithValue(ctx, sessionIDKey, id)
	ctx = logger.WithSessionID(ctx, id)
	return logger.NewContext(ctx, logger.FromContext(ctx).With(slog.String("session_id", id)))
}

func alive(registry SessionRegistry, id string) bool {
	_, err := registry.Get(id)
	return err == nil
}

// sessionIDFromContext returns the session ID stored by SessionFromCookie.
func sessionIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(sessionIDKey).(string)
	return id
}

// ContentTypeJSON enforces that requests with a body have Content-Type: application/json.
func ContentTypeJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > 0 || r.Method == http.MethodPost || r.Method == http.MethodPut {
			ct := r.Header.Get("Content-Type")
			if ct != "" && !strings.HasPrefix(ct, "application/json") {
				httputil.WriteJSON(w, http.StatusUnsupportedMediaType, httputil.Response{
					Error: &httputil.ErrorResponse{Code: "UNSUPPORTED_MEDIA_TYPE", Message: "Content-Type must be application/json"},
				})
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}
