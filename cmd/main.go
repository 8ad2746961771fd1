package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"pinpay/internal/bootstrap"
	"pinpay/internal/config"
	"pinpay/internal/gateway"
	"pinpay/internal/middleware"
	"pinpay/internal/notify"
	"pinpay/internal/pkg/httpclient"
	"pinpay/internal/repository"
	"pinpay/internal/router"
)

func main() {
	// --- Logger ---
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// --- Config ---
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Gateway credentials resolve once, at startup. A missing secret key or
	// endpoint for the active mode is fatal here, never per request.
	resolved, err := cfg.Pin.Resolve()
	if err != nil {
		logger.Fatal("Failed to resolve gateway credentials", zap.Error(err))
	}

	// --- Database ---
	db, err := config.NewDatabase(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	if err := bootstrap.Migrate(db); err != nil {
		logger.Fatal("Failed to migrate database schema", zap.Error(err))
	}

	// --- Notifier (RabbitMQ when configured, structured logs otherwise) ---
	var notifier notify.Notifier = notify.NewZapNotifier(logger)
	if cfg.AMQP.URL != "" {
		rabbit, rabbitErr := notify.NewRabbitNotifier(cfg.AMQP.URL, logger)
		if rabbitErr != nil {
			logger.Warn("RabbitMQ unavailable, falling back to log notifier", zap.Error(rabbitErr))
		} else {
			defer rabbit.Close()
			notifier = rabbit
		}
	}

	// --- Gateway ---
	transport := httpclient.New(resolved.Endpoint, resolved.SecretKey)
	store := repository.NewStore(db)
	gw := gateway.New(transport, store, notifier, logger)

	// --- Idempotency guard (Redis with in-memory fallback) ---
	guard, guardErr := middleware.NewIdempotencyGuard(
		cfg.Redis.Addr,
		cfg.Redis.Pass,
		cfg.Redis.DB,
		24*time.Hour,
	)
	if guardErr != nil {
		logger.Warn("Redis unavailable for idempotency guard, using in-memory fallback", zap.Error(guardErr))
	}

	// --- Echo ---
	e := echo.New()
	e.HideBanner = true
	router.Setup(e, gw, store, logger, cfg.API.Key, guard)

	// --- Start Server ---
	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		logger.Info("Starting pinpay server",
			zap.String("addr", addr),
			zap.Bool("test_mode", cfg.Pin.TestMode),
			zap.String("endpoint", resolved.Endpoint),
		)
		if err := e.Start(addr); err != nil {
			logger.Info("Server stopped", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
