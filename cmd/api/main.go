// Package main is the entry point for the Finance Pulse API server.
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
	"github.com/redis/go-redis/v9"
	"github.com/supabase-community/supabase-go"

	"github.com/finance-pulse/backend/config"
	"github.com/finance-pulse/backend/internal/infra/dependency"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Finance Pulse API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize the hosted provider client. When the provider is not
	// configured the server still starts: health answers, data and auth
	// surfaces stay unregistered.
	var client *supabase.Client
	if cfg.IsProviderConfigured() {
		var err error
		client, err = supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.AnonKey, &supabase.ClientOptions{})
		if err != nil {
			slog.Error("Failed to create provider client", "error", err)
			os.Exit(1)
		}
		slog.Info("Provider client initialized")
	} else {
		slog.Warn("Provider not configured, running in degraded mode")
	}

	// Redis backs the login rate limiter. The limiter itself tolerates an
	// unreachable Redis, so a failed ping is only logged.
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		slog.Warn("Redis unreachable, login rate limiting degraded", "error", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("Failed to close Redis connection", "error", err)
		}
	}()

	// Wire dependencies and set up routing
	injector := dependency.NewInjector(cfg, client, redisClient)
	engine := injector.Router.Setup(cfg.Server.Environment)

	// Start the session state lifecycle. There is no session at process
	// start; sign-ins and code exchanges install one later.
	if injector.SessionState != nil {
		injector.SessionState.Start(context.Background(), "")
		defer injector.SessionState.Close()
	}

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
