package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/DhruvsOLaNkiI/Minimal-store/internal/catalog"
	"github.com/DhruvsOLaNkiI/Minimal-store/internal/config"
	handler "github.com/DhruvsOLaNkiI/Minimal-store/internal/handler/http"
	"github.com/DhruvsOLaNkiI/Minimal-store/internal/service"
	"github.com/DhruvsOLaNkiI/Minimal-store/internal/session"
	"github.com/DhruvsOLaNkiI/Minimal-store/pkg/health"
	"github.com/DhruvsOLaNkiI/Minimal-store/pkg/middleware"
	"github.com/DhruvsOLaNkiI/Minimal-store/pkg/tracing"
)

// App wires together all dependencies and runs the storefront.
type App struct {
	cfg            *config.Config
	logger         *slog.Logger
	sessions       *session.Manager
	rateLimiter    *middleware.RateLimiter
	httpServer     *http.Server
	tracerShutdown func(context.Context) error
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize OpenTelemetry tracing.
	tracerShutdown, err := tracing.InitTracer(ctx, tracing.Config{
		ServiceName:    "storefront",
		ServiceVersion: "0.1.0",
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTELEndpoint,
		SampleRate:     cfg.OTELSampleRate,
		Enabled:        cfg.OTELEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	// Build the dependency graph.
	cat := catalog.New()
	sessions := session.NewManager(cfg.SessionIdleTTL(), nil)
	logger.Info("catalog loaded", slog.Int("products", cat.Len()))

	catalogService := service.NewCatalogService(cat, logger)
	cartService := service.NewCartService(cat, sessions, logger)
	checkoutService := service.NewCheckoutService(sessions, logger)

	// Health checks.
	healthHandler := health.NewHandler()
	healthHandler.Register("catalog", func(ctx context.Context) error {
		if cat.Len() == 0 {
			return errors.New("catalog is empty")
		}
		return nil
	})

	corsCfg := middleware.DefaultCORSConfig()
	corsCfg.AllowedOrigins = cfg.CORSAllowedOrigins

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, 5*time.Minute, logger)

	// HTTP router.
	router := handler.NewRouter(handler.RouterConfig{
		CatalogService:  catalogService,
		CartService:     cartService,
		CheckoutService: checkoutService,
		Sessions:        sessions,
		CookieStore: handler.NewCookieStore(handler.CookieOptions{
			Secret: []byte(cfg.SessionSecret),
			MaxAge: int(cfg.SessionIdleTTL().Seconds()),
			Secure: cfg.SessionCookieSecure,
		}),
		Health:             healthHandler,
		RateLimiter:        rateLimiter,
		CORS:               corsCfg,
		CatalogCacheMaxAge: cfg.CatalogCacheMaxAgeS,
		PprofCIDRs:         cfg.PprofAllowedCIDRs,
		Logger:             logger,
	})

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	return &App{
		cfg:            cfg,
		logger:         logger,
		sessions:       sessions,
		rateLimiter:    rateLimiter,
		httpServer:     httpServer,
		tracerShutdown: tracerShutdown,
	}, nil
}

// Handler returns the root HTTP handler.
func (a *App) Handler() http.Handler {
	return a.httpServer.Handler
}

// Run starts the HTTP server and the background sweepers, and blocks until
// the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	go a.runSessionSweep(ctx)
	go a.rateLimiter.Run(ctx)

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		a.logger.Error("http server failed", slog.String("error", err.Error()))
		return errors.Join(err, a.Shutdown())
	}

	return a.Shutdown()
}

// runSessionSweep periodically drops idle sessions and their carts.
func (a *App) runSessionSweep(ctx context.Context) {
	ticker := time.NewTicker(a.cfg.SessionSweepInterval())
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if dropped := a.sessions.Sweep(); dropped > 0 {
				a.logger.Info("expired sessions swept",
					slog.Int("dropped", dropped),
					slog.Int("remaining", a.sessions.Count()),
				)
			}
		}
	}
}

// Shutdown gracefully stops the HTTP server in the correct order:
// 1. HTTP server (drain in-flight requests)
// 2. Tracer (flush pending spans from drained requests)
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	var errs []error

	httpCtx, httpCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer httpCancel()
	if err := a.httpServer.Shutdown(httpCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
		errs = append(errs, err)
	}

	if a.tracerShutdown != nil {
		tracerCtx, tracerCancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer tracerCancel()
		if err := a.tracerShutdown(tracerCtx); err != nil {
			a.logger.Error("tracer shutdown error", slog.String("error", err.Error()))
			errs = append(errs, err)
		}
	}

	a.logger.Info("application shutdown complete")
	return errors.Join(errs...)
}
