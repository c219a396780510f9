package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/labelforge/labelpress/internal/config"
	httpserver "github.com/labelforge/labelpress/internal/http"
	"github.com/labelforge/labelpress/pkg/session"
	"github.com/labelforge/labelpress/pkg/supabase"
)

func main() {
	// Load .env file if present (ignore error if not found)
	_ = godotenv.Load()

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Remote identity/data service client
	client := supabase.NewClient(supabase.Config{
		BaseURL: cfg.SupabaseURL,
		APIKey:  cfg.SupabaseAnonKey,
		Timeout: cfg.UpstreamTimeout,
	})

	// Session cookie store
	sessions := session.NewStore(session.Config{
		Secret: []byte(cfg.SessionSecret),
		TTL:    cfg.SessionTTL,
		Issuer: "labelpress",
	})

	// Create router
	router, err := httpserver.NewRouter(httpserver.RouterConfig{
		Logger:           logger,
		Client:           client,
		Sessions:         sessions,
		TemplatesDir:     cfg.TemplatesDir,
		DesignSaveStrict: cfg.DesignSaveStrict,
		RateLimitConfig:  cfg.RateLimit,
		SecurityHeaders:  cfg.SecurityHeaders,
		MaxRequestBody:   cfg.MaxRequestBodySize,
	})
	if err != nil {
		logger.Error("failed to create router", "error", err)
		os.Exit(1)
	}

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.ServerAddr, cfg.ServerPort)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("starting server", "addr", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	logger.Info("server stopped")
}
