package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/nba-gamethread-bot/internal/server"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var interval time.Duration
	cmd := &cobra.Command{
		Use:   "serve [subreddit]",
		Short: "Run the pipeline on an interval with health and metrics endpoints",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd, opts, args)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("interval") && interval > 0 {
				cfg.RunInterval = interval
			}

			ctx, stop := context.WithCancel(cmd.Context())
			defer stop()

			srv, err := server.New(ctx, cfg, logger)
			if err != nil {
				return err
			}
			srv.Run(ctx, stop)
			return nil
		},
	}
	cmd.Flags().DurationVar(&interval, "interval", 0, "time between runs (default $RUN_INTERVAL or 1m)")
	return cmd
}
