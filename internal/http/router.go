package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/labelforge/labelpress/internal/config"
	"github.com/labelforge/labelpress/internal/http/features/auth"
	"github.com/labelforge/labelpress/internal/http/features/dashboard"
	"github.com/labelforge/labelpress/internal/http/features/design"
	"github.com/labelforge/labelpress/internal/http/features/label"
	"github.com/labelforge/labelpress/internal/http/features/pages"
	"github.com/labelforge/labelpress/internal/http/middleware"
	"github.com/labelforge/labelpress/internal/httputil"
	"github.com/labelforge/labelpress/pkg/session"
	"github.com/labelforge/labelpress/pkg/supabase"
)

// RouterConfig holds configuration for the router.
type RouterConfig struct {
	Logger           *slog.Logger
	Client           *supabase.Client
	Sessions         *session.Store
	TemplatesDir     string
	DesignSaveStrict bool
	RateLimitConfig  config.RateLimitConfig
	SecurityHeaders  config.SecurityHeadersConfig
	MaxRequestBody   int64
}

// NewRouter creates a new HTTP router with all routes registered.
func NewRouter(cfg RouterConfig) (http.Handler, error) {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Recover(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))
	r.Use(middleware.SecurityHeaders(cfg.SecurityHeaders))
	r.Use(middleware.RequestSizeLimit(cfg.MaxRequestBody))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httputil.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	authLimiter := middleware.AuthRateLimiter(cfg.RateLimitConfig, cfg.Logger)

	pagesHandler, err := pages.NewHandler(cfg.TemplatesDir)
	if err != nil {
		return nil, err
	}
	dashboardHandler, err := dashboard.NewHandler(cfg.TemplatesDir)
	if err != nil {
		return nil, err
	}

	authHandler := auth.NewHandler(cfg.Logger, cfg.Client, cfg.Sessions)
	designHandler := design.NewHandler(cfg.Logger, cfg.Client, cfg.DesignSaveStrict)
	labelHandler := label.NewHandler(cfg.Logger)

	// Credential endpoints, rate limited
	r.Group(func(r chi.Router) {
		r.Use(authLimiter)
		r.Post("/", authHandler.Login)
		r.Post("/register", authHandler.Register)
	})

	// Public pages
	r.Get("/", pagesHandler.Login)
	r.Get("/register", pagesHandler.Register)
	r.Post("/logout", authHandler.Logout)

	// Protected page: missing session recovers via redirect to login
	r.With(middleware.RequireSession(cfg.Sessions, middleware.FailRedirect("/"))).
		Get("/dashboard", dashboardHandler.Show)

	// Protected write: missing session is a defined 401, never a crash
	r.With(middleware.RequireSession(cfg.Sessions, middleware.FailUnauthorized)).
		Post("/save_design", designHandler.Save)

	// Label download, unauthenticated by design
	r.Get("/print", labelHandler.Print)

	return r, nil
}
