package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/httprate"

	"github.com/labelforge/labelpress/internal/config"
	"github.com/labelforge/labelpress/internal/httputil"
)

// RateLimitConfig holds rate limiting configuration for an endpoint type.
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
	Logger   *slog.Logger
}

// RateLimit creates an IP-based rate limiter middleware with logging.
func RateLimit(cfg RateLimitConfig) func(http.Handler) http.Handler {
	return httprate.Limit(
		cfg.Requests,
		cfg.Window,
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Logger != nil {
				cfg.Logger.Warn("rate limit exceeded",
					"ip", r.RemoteAddr,
					"path", r.URL.Path,
					"method", r.Method,
				)
			}
			httputil.Text(w, http.StatusTooManyRequests, "rate limit exceeded. please try again later")
		}),
	)
}

// NoRateLimit returns a no-op middleware when rate limiting is disabled.
func NoRateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return next
	}
}

// AuthRateLimiter creates the rate limiter for credential endpoints
// (login and registration) based on configuration.
func AuthRateLimiter(cfg config.RateLimitConfig, logger *slog.Logger) func(http.Handler) http.Handler {
	if !cfg.Enabled {
		return NoRateLimit()
	}
	return RateLimit(RateLimitConfig{
		Requests: cfg.AuthRequestsPerWindow,
		Window:   time.Duration(cfg.AuthWindowMinutes) * time.Minute,
		Logger:   logger,
	})
}
