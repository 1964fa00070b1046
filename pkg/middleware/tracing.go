package middleware

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/DhruvsOLaNkiI/Minimal-store/pkg/logger"
	"github.com/DhruvsOLaNkiI/Minimal-store/pkg/tracing"
)

// Span attributes specific to the storefront.
const (
	AttrCorrelationID = attribute.Key("storefront.correlation_id")
	AttrSessionID     = attribute.Key("storefront.session_id")
	AttrRateLimited   = attribute.Key("storefront.rate_limited")
)

// Tracing starts a server span per API request, continuing any inbound W3C
// trace context. Probe and scrape endpoints are not traced. Once routing is
// done the span is renamed to the chi route pattern and tagged with the
// correlation ID assigned by RequestLogging, so traces and access logs join on
// the same key.
func Tracing() func(http.Handler) http.Handler {
	tracer := tracing.Tracer("http")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isQuiet(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			propagator := otel.GetTextMapPropagator()
			ctx := propagator.Extract(r.Context(), propagation.HeaderCarrier(r.Header))

			attrs := []attribute.KeyValue{
				semconv.HTTPMethod(r.Method),
				semconv.HTTPTarget(r.URL.RequestURI()),
				semconv.UserAgentOriginal(r.UserAgent()),
			}
			if id := logger.CorrelationIDFromContext(ctx); id != "" {
				attrs = append(attrs, AttrCorrelationID.String(id))
			}

			ctx, span := tracer.Start(ctx, r.Method+" "+r.URL.Path,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(attrs...),
			)
			defer span.End()

			propagator.Inject(ctx, propagation.HeaderCarrier(w.Header()))

			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
			next.ServeHTTP(rw, r.WithContext(ctx))

			if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
				if pattern := routeCtx.RoutePattern(); pattern != "" {
					span.SetName(r.Method + " " + pattern)
					span.SetAttributes(attribute.String("http.route", pattern))
				}
			}

			span.SetAttributes(
				semconv.HTTPStatusCode(rw.statusCode),
				attribute.Int("http.response.body.size", rw.bytes),
			)
			switch {
			case rw.statusCode >= 500:
				span.SetStatus(codes.Error, http.StatusText(rw.statusCode))
			case rw.statusCode == http.StatusTooManyRequests:
				span.SetAttributes(AttrRateLimited.Bool(true))
			}
		})
	}
}

// AnnotateSession records the storefront session on the request's server
// span. Session binding happens after Tracing has started the span, so the
// session middleware calls this once the ID is known.
func AnnotateSession(ctx context.Context, id string) {
	trace.SpanFromContext(ctx).SetAttributes(AttrSessionID.String(id))
}
