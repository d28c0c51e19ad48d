package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/nba-gamethread-bot/internal/config"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/logging"
)

const appVersion = "dev"

// rootOptions are the flags shared by every subcommand.
type rootOptions struct {
	envFile string
	dryRun  bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "gamethread",
		Short:         "Posts and updates NBA game threads on a subreddit",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.LoadEnvFile(opts.envFile)
		},
	}
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", "", "KEY=VALUE file loaded before reading the environment (default .env when present)")
	cmd.PersistentFlags().BoolVar(&opts.dryRun, "dry-run", false, "keep threads in memory instead of posting to reddit")

	cmd.AddCommand(newRunCmd(opts), newServeCmd(opts), newSidebarCmd(opts), newVersionCmd())
	return cmd
}

// loadConfig reads the environment, applies the subreddit argument and
// shared flags, and builds the process logger.
func loadConfig(cmd *cobra.Command, opts *rootOptions, args []string) (config.Config, *slog.Logger, error) {
	cfg := config.Load()
	if len(args) > 0 {
		cfg.Subreddit = args[0]
	}
	if cmd.Flags().Changed("dry-run") {
		cfg.DryRun = opts.dryRun
	}
	if err := cfg.Validate(); err != nil {
		return cfg, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Service: cfg.Metrics.ServiceName,
		Version: appVersion,
		Output:  cmd.ErrOrStderr(),
	})
	return cfg, logger, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), appVersion)
		},
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
