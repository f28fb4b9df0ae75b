package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"portfolio_web_echo/internal/services"
	"portfolio_web_echo/internal/tasks"
)

func newWarmCmd(a *app) *cobra.Command {
	var (
		redisURL string
		ttl      time.Duration
		list     bool
	)

	cmd := &cobra.Command{
		Use:   "warm [task...]",
		Short: "Fetch store payloads into the shared Redis cache",
		Long: `Runs the cache warming tasks once, like a single tick of the worker.
Without arguments every task runs.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks.DefineTasks()
			if list {
				for _, name := range tasks.GlobalRegistry.Names() {
					fmt.Fprintln(a.out, name)
				}
				return nil
			}

			if redisURL == "" {
				return fmt.Errorf("no Redis URL: set --redis-url or REDIS_URL")
			}
			cache, err := services.NewRedisCache(redisURL, "portfolio:", a.logger)
			if err != nil {
				return fmt.Errorf("failed to connect to Redis: %w", err)
			}
			defer cache.Close()

			runner := tasks.NewRunner(tasks.GlobalRegistry, a.set, cache, ttl, a.logger)
			var results []tasks.Result
			if len(args) == 0 {
				results = runner.RunAll(cmd.Context())
			} else {
				for _, name := range args {
					results = append(results, runner.Run(cmd.Context(), name))
				}
			}

			failed := 0
			for _, r := range results {
				status := "ok"
				if r.Err != nil {
					status = r.Err.Error()
					failed++
				}
				fmt.Fprintf(a.out, "%-24s %8s  %s\n", r.TaskName, r.Runtime.Round(time.Millisecond), status)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d tasks failed", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&redisURL, "redis-url", os.Getenv("REDIS_URL"), "Redis URL (default $REDIS_URL)")
	cmd.Flags().DurationVar(&ttl, "ttl", 10*time.Minute, "How long warmed payloads stay valid")
	cmd.Flags().BoolVar(&list, "list", false, "Only list the task names")
	return cmd
}
