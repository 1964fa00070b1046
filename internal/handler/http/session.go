package http

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/DhruvsOLaNkiI/Minimal-store/pkg/httputil"
)

// SessionHandler ends storefront sessions.
type SessionHandler struct {
	store    sessions.Store
	registry SessionRegistry
	logger   *slog.Logger
}

// NewSessionHandler creates a handler ending sessions held in registry.
func NewSessionHandler(store sessions.Store, registry SessionRegistry, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{store: store, registry: registry, logger: logger}
}

// End handles DELETE /api/v1/session. The session and its cart are discarded
// and the cookie is expired. Ending without a live session is a no-op.
func (h *SessionHandler) End(w http.ResponseWriter, r *http.Request) {
	id := sessionIDFromContext(r.Context())
	if id != "" {
		h.registry.End(id)
	}

	cs, _ := h.store.Get(r, SessionCookieName)
	delete(cs.Values, sessionIDValue)
	cs.Options.MaxAge = -1
	if err := cs.Save(r, w); err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	h.logger.InfoContext(r.Context(), "session ended", slog.String("session_id", id))
	w.WriteHeader(http.StatusNoContent)
}
