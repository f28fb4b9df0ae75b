package tasks

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"portfolio_web_echo/internal/services"
	"portfolio_web_echo/internal/stores"
)

// Result records one task execution
type Result struct {
	TaskName string
	RunAt    time.Time
	Runtime  time.Duration
	Err      error
}

// Runner executes registered tasks and writes their payloads to the shared cache
type Runner struct {
	registry *Registry
	set      *services.Set
	cache    services.KeyValueCache
	ttl      time.Duration
	logger   *zap.Logger
}

// NewRunner creates a Runner. Payloads are stored for ttl.
func NewRunner(registry *Registry, set *services.Set, cache services.KeyValueCache, ttl time.Duration, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{registry: registry, set: set, cache: cache, ttl: ttl, logger: logger}
}

// RunAll executes every registered task in name order. It stops early when ctx is done.
func (r *Runner) RunAll(ctx context.Context) []Result {
	names := r.registry.Names()
	results := make([]Result, 0, len(names))
	for _, name := range names {
		if ctx.Err() != nil {
			break
		}
		results = append(results, r.Run(ctx, name))
	}
	return results
}

// Run executes one task by name
func (r *Runner) Run(ctx context.Context, name string) Result {
	result := Result{TaskName: name, RunAt: time.Now()}

	handler, found := r.registry.Get(name)
	if !found {
		result.Err = fmt.Errorf("task handler not found: %s", name)
		r.logger.Warn("task handler not found", zap.String("task", name))
		return result
	}

	payload, err := handler(ctx, r.set)
	if err == nil {
		err = r.cache.Set(ctx, stores.SharedKey(name), payload, r.ttl)
		if err != nil {
			err = fmt.Errorf("failed to store payload: %w", err)
		}
	}
	result.Runtime = time.Since(result.RunAt)
	result.Err = err

	if err != nil {
		r.logger.Error("task failed", zap.String("task", name), zap.Duration("runtime", result.Runtime), zap.Error(err))
	} else {
		r.logger.Info("task completed", zap.String("task", name), zap.Duration("runtime", result.Runtime))
	}
	return result
}
