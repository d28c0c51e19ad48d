package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/nba-gamethread-bot/internal/gamethread"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/metrics"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/server"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/store"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/threads"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	var at string
	cmd := &cobra.Command{
		Use:   "run [subreddit]",
		Short: "Run the pipeline once and print the report",
		Long: "Fetches the schedule, decides which thread is current and creates or updates it.\n" +
			"The subreddit defaults to $SUBREDDIT. --at replays the decision for a fixed instant.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()
			if at != "" {
				parsed, err := time.Parse(time.RFC3339, at)
				if err != nil {
					return fmt.Errorf("invalid --at %q: expected RFC3339", at)
				}
				now = parsed
			}

			cfg, logger, err := loadConfig(cmd, opts, args)
			if err != nil {
				return err
			}

			parts, err := server.Build(cmd.Context(), cfg, logger, metrics.NewRecorder())
			if err != nil {
				return err
			}
			report, err := parts.Bot.Run(cmd.Context(), now)
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), report, parts.Platform)
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "evaluate the schedule at this RFC3339 instant instead of now")
	return cmd
}

// writeReport prints the run report as JSON. Dry runs also print the thread
// that would have been posted.
func writeReport(w io.Writer, report gamethread.Report, platform threads.Platform) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return err
	}

	mem, ok := platform.(*store.MemoryStore)
	if !ok || report.ThreadID == "" {
		return nil
	}
	entry, ok := mem.Get(report.ThreadID)
	if !ok {
		return nil
	}
	_, err := fmt.Fprintf(w, "\n%s\n\n%s\n", entry.Thread.Title, entry.Thread.Body)
	return err
}
