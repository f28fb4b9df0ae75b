package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"portfolio_web_echo/internal/apiclient"
	"portfolio_web_echo/internal/config"
	"portfolio_web_echo/internal/logging"
	"portfolio_web_echo/internal/services"
	"portfolio_web_echo/internal/tasks"
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

	if cfg.RedisURL == "" {
		logger.Fatal("REDIS_URL not set")
	}
	cache, err := services.NewRedisCache(cfg.RedisURL, "portfolio:", logger)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer cache.Close()

	schedule, err := tasks.ParseSchedule(cfg.WarmSchedule, time.Now())
	if err != nil {
		logger.Fatal("Invalid WARM_SCHEDULE", zap.String("rule", cfg.WarmSchedule), zap.Error(err))
	}

	client := apiclient.New(cfg.APIBaseURL,
		apiclient.WithTimeout(cfg.RequestTimeout),
		apiclient.WithLogger(logger),
	)

	// Initialize Task Registry
	tasks.DefineTasks()
	runner := tasks.NewRunner(tasks.GlobalRegistry, services.NewSet(client), cache, cfg.CacheTTL, logger)

	// Create context that cancels on interrupt
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("Worker started", zap.String("schedule", cfg.WarmSchedule), zap.Strings("tasks", tasks.GlobalRegistry.Names()))

	// Warm everything once so the server never starts against an empty cache
	warm(ctx, runner, logger)

	for {
		next := schedule.Next(time.Now())
		if next.IsZero() {
			logger.Info("Schedule exhausted, stopping worker")
			return
		}
		logger.Debug("Waiting for next run", zap.Time("next", next))

		timer := time.NewTimer(time.Until(next))
		select {
		case <-timer.C:
			warm(ctx, runner, logger)
		case <-ctx.Done():
			timer.Stop()
			logger.Info("Shutting down worker...")
			return
		}
	}
}

func warm(ctx context.Context, runner *tasks.Runner, logger *zap.Logger) {
	results := runner.RunAll(ctx)
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	logger.Info("Warm run finished", zap.Int("tasks", len(results)), zap.Int("failed", failed))
}
