// Package sidebar keeps the schedule, standings and roster tables in the
// subreddit sidebar current.
package sidebar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/teams"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/logging"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/metrics"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/providers"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/render"
)

// ErrMissingDependency is returned by Run when the Bot was built without a
// provider or platform.
var ErrMissingDependency = errors.New("sidebar: missing dependency")

// Platform reads and writes the subreddit sidebar markdown.
type Platform interface {
	Description(ctx context.Context) (string, error)
	UpdateDescription(ctx context.Context, description string) error
}

// Outcome is what a refresh did to the sidebar.
type Outcome string

const (
	OutcomeUpdated   Outcome = "updated"
	OutcomeUnchanged Outcome = "unchanged"
	outcomeError     Outcome = "error"
)

// Config identifies whose tables are drawn.
type Config struct {
	Team      string
	Season    string
	Subreddit string
}

// Report summarises one refresh.
type Report struct {
	RunID    string    `json:"runId"`
	At       time.Time `json:"at"`
	Outcome  Outcome   `json:"outcome"`
	Sections []string  `json:"sections,omitempty"`
}

// Bot rebuilds the sidebar tables and writes the description only when one
// of them changed.
type Bot struct {
	cfg      Config
	provider providers.DataProvider
	platform Platform
	recorder *metrics.Recorder
	logger   *slog.Logger
	newID    func() string
}

// New builds a Bot. recorder and logger may be nil.
func New(cfg Config, provider providers.DataProvider, platform Platform, recorder *metrics.Recorder, logger *slog.Logger) *Bot {
	return &Bot{
		cfg:      cfg,
		provider: provider,
		platform: platform,
		recorder: recorder,
		logger:   logger,
		newID:    uuid.NewString,
	}
}

// Run refreshes the sidebar as of now.
func (b *Bot) Run(ctx context.Context, now time.Time) (Report, error) {
	report := Report{RunID: b.newID(), At: now, Outcome: OutcomeUnchanged}
	logger := logging.FromContext(ctx, b.logger)
	if logger != nil {
		logger = logger.With(logging.FieldRunID, report.RunID, logging.FieldSubreddit, b.cfg.Subreddit)
		ctx = logging.WithLogger(ctx, logger)
	}

	start := time.Now()
	err := b.run(ctx, now, &report)
	if err != nil {
		b.recorder.RecordSidebar(string(outcomeError), time.Since(start))
		logging.Error(logger, "sidebar refresh failed", err, logging.FieldDurationMS, time.Since(start).Milliseconds())
		return report, err
	}
	b.recorder.RecordSidebar(string(report.Outcome), time.Since(start))
	logging.Info(logger, "sidebar refreshed",
		logging.FieldOutcome, string(report.Outcome),
		logging.FieldCount, len(report.Sections),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return report, nil
}

func (b *Bot) run(ctx context.Context, now time.Time, report *Report) error {
	if b.provider == nil || b.platform == nil {
		return ErrMissingDependency
	}

	data, err := b.load(ctx)
	if err != nil {
		return err
	}
	current, err := b.platform.Description(ctx)
	if err != nil {
		return fmt.Errorf("read sidebar: %w", err)
	}

	updated := current
	for _, section := range render.Sidebar(now, data) {
		next := render.Splice(updated, section)
		if next != updated {
			report.Sections = append(report.Sections, section.Name)
		}
		updated = next
	}
	if updated == current {
		return nil
	}
	if err := b.platform.UpdateDescription(ctx, updated); err != nil {
		return fmt.Errorf("write sidebar: %w", err)
	}
	report.Outcome = OutcomeUpdated
	return nil
}

func (b *Bot) load(ctx context.Context) (render.SidebarData, error) {
	season := b.cfg.Season
	if season == "" {
		current, err := b.provider.CurrentSeason(ctx)
		if err != nil {
			return render.SidebarData{}, fmt.Errorf("fetch season: %w", err)
		}
		season = current
	}

	roster, err := b.provider.Roster(ctx, b.cfg.Team, season)
	if err != nil {
		return render.SidebarData{}, fmt.Errorf("fetch roster: %w", err)
	}
	list, err := b.provider.Teams(ctx, season)
	if err != nil {
		return render.SidebarData{}, fmt.Errorf("fetch teams: %w", err)
	}
	schedule, err := b.provider.Schedule(ctx, b.cfg.Team, season)
	if err != nil {
		return render.SidebarData{}, fmt.Errorf("fetch schedule: %w", err)
	}
	table, err := b.provider.Standings(ctx)
	if err != nil {
		return render.SidebarData{}, fmt.Errorf("fetch standings: %w", err)
	}
	return render.SidebarData{
		Schedule:  schedule,
		Teams:     teams.NewDirectory(list),
		Standings: table,
		Roster:    roster,
	}, nil
}
