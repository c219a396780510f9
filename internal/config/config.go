package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds application configuration.
type Config struct {
	// Server
	ServerAddr string
	ServerPort int

	// Remote identity/data service
	SupabaseURL     string
	SupabaseAnonKey string
	UpstreamTimeout time.Duration

	// Session cookie
	SessionSecret string
	SessionTTL    time.Duration

	// DesignSaveStrict selects whether /save_design propagates a failed
	// upstream insert (true) or keeps the original fire-and-forget
	// behavior and reports success regardless (false).
	DesignSaveStrict bool

	// UI
	TemplatesDir string

	// Rate limiting for credential endpoints
	RateLimit RateLimitConfig

	// Security headers
	SecurityHeaders SecurityHeadersConfig

	// MaxRequestBodySize caps inbound request bodies.
	MaxRequestBodySize int64
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	Enabled               bool
	AuthRequestsPerWindow int
	AuthWindowMinutes     int
}

// SecurityHeadersConfig holds security header configuration.
type SecurityHeadersConfig struct {
	Enabled            bool
	FrameOptions       string
	ContentTypeOptions string
	ReferrerPolicy     string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		// Server defaults
		ServerAddr: getEnv("SERVER_ADDR", "0.0.0.0"),
		ServerPort: getEnvInt("SERVER_PORT", 5000),

		// Remote service
		SupabaseURL:     getEnv("SUPABASE_URL", ""),
		SupabaseAnonKey: getEnv("SUPABASE_ANON_KEY", ""),
		UpstreamTimeout: getEnvDuration("UPSTREAM_TIMEOUT", 10*time.Second),

		// Session defaults
		SessionSecret: getEnv("SESSION_SECRET", ""),
		SessionTTL:    getEnvDuration("SESSION_TTL", 12*time.Hour),

		DesignSaveStrict: getEnvBool("DESIGN_SAVE_STRICT", false),

		TemplatesDir: getEnv("TEMPLATES_DIR", "web/templates"),

		RateLimit: RateLimitConfig{
			Enabled:               getEnvBool("RATE_LIMIT_ENABLED", true),
			AuthRequestsPerWindow: getEnvInt("RATE_LIMIT_AUTH_REQUESTS", 10),
			AuthWindowMinutes:     getEnvInt("RATE_LIMIT_AUTH_WINDOW_MINUTES", 1),
		},

		SecurityHeaders: SecurityHeadersConfig{
			Enabled:            getEnvBool("SECURITY_HEADERS_ENABLED", true),
			FrameOptions:       getEnv("SECURITY_FRAME_OPTIONS", "DENY"),
			ContentTypeOptions: getEnv("SECURITY_CONTENT_TYPE_OPTIONS", "nosniff"),
			ReferrerPolicy:     getEnv("SECURITY_REFERRER_POLICY", "strict-origin-when-cross-origin"),
		},

		MaxRequestBodySize: int64(getEnvInt("MAX_REQUEST_BODY_SIZE", 1<<20)),
	}

	// Validate required fields. The service URL and key used to fail
	// late as opaque HTTP errors; fail at startup instead.
	if cfg.SupabaseURL == "" {
		return nil, fmt.Errorf("SUPABASE_URL is required")
	}
	if cfg.SupabaseAnonKey == "" {
		return nil, fmt.Errorf("SUPABASE_ANON_KEY is required")
	}
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required")
	}
	if len(cfg.SessionSecret) < 32 {
		return nil, fmt.Errorf("SESSION_SECRET must be at least 32 characters")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
