package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/sessions"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/DhruvsOLaNkiI/Minimal-store/internal/service"
	"github.com/DhruvsOLaNkiI/Minimal-store/pkg/health"
	"github.com/DhruvsOLaNkiI/Minimal-store/pkg/middleware"
)

// RouterConfig carries everything NewRouter mounts.
type RouterConfig struct {
	CatalogService  *service.CatalogService
	CartService     *service.CartService
	CheckoutService *service.CheckoutService

	Sessions    SessionRegistry
	CookieStore sessions.Store

	Health      *health.Handler
	RateLimiter *middleware.RateLimiter // nil disables rate limiting
	CORS        middleware.CORSConfig

	CatalogCacheMaxAge int // seconds
	PprofCIDRs         []string

	Logger *slog.Logger
}

// NewRouter creates a chi router with all storefront routes registered.
func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics())
	r.Use(middleware.Tracing())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.CORS))

	// Health check endpoints
	r.Get("/health/live", cfg.Health.LivenessHandler())
	r.Get("/health/ready", cfg.Health.ReadinessHandler())
	r.Handle("/metrics", promhttp.Handler())

	middleware.RegisterPprof(r, cfg.PprofCIDRs, logger)

	catalogHandler := NewCatalogHandler(cfg.CatalogService, logger)
	cartHandler := NewCartHandler(cfg.CartService, logger)
	checkoutHandler := NewCheckoutHandler(cfg.CheckoutService, logger)
	sessionHandler := NewSessionHandler(cfg.CookieStore, cfg.Sessions, logger)

	limit := func(next http.Handler) http.Handler { return next }
	if cfg.RateLimiter != nil {
		limit = cfg.RateLimiter.Middleware
	}

	r.Route("/api/v1", func(r chi.Router) {
		// The catalog never changes while the process runs.
		r.Group(func(r chi.Router) {
			r.Use(middleware.CacheControl(cfg.CatalogCacheMaxAge))

			r.Get("/products", catalogHandler.ListProducts)
			r.Get("/products/trending", catalogHandler.Trending)
			r.Get("/products/{id}", catalogHandler.GetProduct)
			r.Get("/promotions", catalogHandler.Promotions)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.NoStore)
			r.Use(ContentTypeJSON)
			r.Use(SessionFromCookie(cfg.CookieStore, cfg.Sessions, logger))

			// Reads never start a session.
			r.Get("/cart", cartHandler.GetCart)
			r.Get("/checkout", checkoutHandler.Summary)

			r.Group(func(r chi.Router) {
				r.Use(limit)

				r.Delete("/session", sessionHandler.End)

				r.Group(func(r chi.Router) {
					r.Use(RequireSession(cfg.CookieStore, cfg.Sessions, logger))

					r.Delete("/cart", cartHandler.ClearCart)
					r.Post("/cart/items", cartHandler.AddItem)
					r.Put("/cart/items/{productId}", cartHandler.UpdateItemQuantity)
					r.Delete("/cart/items/{productId}", cartHandler.RemoveItem)

					r.Post("/checkout", checkoutHandler.PlaceOrder)
				})
			})
		})
	})

	return r
}
