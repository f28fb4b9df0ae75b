package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"portfolio_web_echo/internal/apiclient"
	"portfolio_web_echo/internal/config"
	"portfolio_web_echo/internal/handlers"
	"portfolio_web_echo/internal/logging"
	appMiddleware "portfolio_web_echo/internal/middleware"
	"portfolio_web_echo/internal/services"
	"portfolio_web_echo/internal/stores"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	client := apiclient.New(cfg.APIBaseURL,
		apiclient.WithTimeout(cfg.RequestTimeout),
		apiclient.WithLogger(logger),
	)
	set := services.NewSet(client)

	// Shared payload cache, filled by the worker
	registryCfg := stores.RegistryConfig{Logger: logger, SharedTTL: cfg.CacheTTL}
	if cfg.RedisURL != "" {
		cache, err := services.NewRedisCache(cfg.RedisURL, "portfolio:", logger)
		if err != nil {
			logger.Warn("Redis unavailable, stores will call the API directly", zap.Error(err))
		} else {
			defer cache.Close()
			registryCfg.Shared = cache
		}
	}
	registry := stores.NewRegistry(set, registryCfg)

	// Initialize Firebase
	var sessions services.SessionManager
	firebaseSessions, err := services.InitFirebase(context.Background(), cfg.FirebaseCredentialsPath)
	if err != nil {
		logger.Warn("Firebase initialization failed, admin login disabled", zap.Error(err))
	} else {
		sessions = firebaseSessions
	}

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = appMiddleware.CustomErrorHandler(cfg.SiteTitle, logger)

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Static file serving
	e.Static("/static", "web/static")

	handlers.Register(e, handlers.Deps{
		Config:   cfg,
		Services: set,
		Stores:   registry,
		Sessions: sessions,
		Logger:   logger,
	})

	go func() {
		logger.Info("Server starting", zap.String("port", cfg.Port), zap.String("api", client.BaseURL()))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server stopped", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()
	<-ctx.Done()

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
}
