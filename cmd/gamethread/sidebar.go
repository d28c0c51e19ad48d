package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/nba-gamethread-bot/internal/metrics"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/server"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/sidebar"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/store"
)

func newSidebarCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sidebar [subreddit]",
		Short: "Refresh the sidebar tables once and print the report",
		Long: "Redraws the schedule, standings and roster tables between their [](#Start...) and\n" +
			"[](#End...) markers and writes the sidebar only when a table changed.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadConfig(cmd, opts, args)
			if err != nil {
				return err
			}
			cfg.Sidebar = true

			parts, err := server.Build(cmd.Context(), cfg, logger, metrics.NewRecorder())
			if err != nil {
				return err
			}
			report, err := parts.Sidebar.Run(cmd.Context(), time.Now())
			if err != nil {
				return err
			}
			return writeSidebarReport(cmd.Context(), cmd.OutOrStdout(), report, parts.Platform)
		},
	}
}

// writeSidebarReport prints the refresh report as JSON. Dry runs also print
// the sidebar that would have been saved.
func writeSidebarReport(ctx context.Context, w io.Writer, report sidebar.Report, platform server.Platform) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return err
	}

	mem, ok := platform.(*store.MemoryStore)
	if !ok {
		return nil
	}
	description, err := mem.Description(ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "\n%s\n", description)
	return err
}
