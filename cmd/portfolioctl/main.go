// Command portfolioctl manages portfolio content through the backend API.
//
// Usage:
//
//	portfolioctl [command] [flags]
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"portfolio_web_echo/internal/apiclient"
	"portfolio_web_echo/internal/logging"
	"portfolio_web_echo/internal/services"
)

// app holds what every subcommand needs. It is filled by the root command's
// PersistentPreRunE once flags are parsed.
type app struct {
	apiURL  string
	timeout time.Duration
	verbose bool

	set    *services.Set
	logger *zap.Logger
	out    io.Writer
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:           "portfolioctl",
		Short:         "Manage portfolio content through the backend API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.apiURL, "api-url", os.Getenv("API_BASE_URL"), "Backend API base URL (default $API_BASE_URL)")
	root.PersistentFlags().DurationVar(&a.timeout, "timeout", 15*time.Second, "Request timeout")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "V", false, "Log every API request")

	root.AddCommand(
		newProjectsCmd(a),
		newSkillsCmd(a),
		newMessagesCmd(a),
		newTestimonialsCmd(a),
		newSettingsCmd(a),
		newAboutCmd(a),
		newWarmCmd(a),
	)
	return root
}

func (a *app) init() error {
	if a.apiURL == "" {
		return fmt.Errorf("no API URL: set --api-url or API_BASE_URL")
	}

	level := "warn"
	if a.verbose {
		level = "debug"
	}
	logger, err := logging.New(false, level)
	if err != nil {
		return err
	}
	a.logger = logger

	client := apiclient.New(a.apiURL,
		apiclient.WithTimeout(a.timeout),
		apiclient.WithLogger(logger),
	)
	a.set = services.NewSet(client)
	return nil
}

// print writes v as indented JSON
func (a *app) print(v interface{}) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *app) done(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(a.out, format+"\n", args...)
	return err
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}

// idCmd builds a subcommand taking a single numeric id
func idCmd(use, short string, run func(ctx context.Context, id int) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return run(cmd.Context(), id)
		},
	}
}

// listCmd builds a subcommand printing what fetch returns
func listCmd[T any](a *app, use, short string, fetch func(ctx context.Context) (T, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := fetch(cmd.Context())
			if err != nil {
				return err
			}
			return a.print(v)
		},
	}
}

func main() {
	_ = godotenv.Load()

	if err := newRootCmd(os.Stdout).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", apiclient.Message(err, err.Error()))
		os.Exit(1)
	}
}
