// Package gamethread runs one pass of the bot: read the schedule, decide
// what thread the moment calls for, then create or refresh it.
package gamethread

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/boxscore"
	domainthreads "github.com/preston-bernstein/nba-gamethread-bot/internal/domain/threads"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/teams"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/gamestate"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/logging"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/metrics"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/providers"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/threads"
)

// ErrMissingDependency is returned by Run when the Bot was built without a
// provider, locator, publisher or renderer.
var ErrMissingDependency = errors.New("gamethread: missing dependency")

// Renderer produces thread text for a kind.
type Renderer interface {
	Render(kind domainthreads.Kind, box boxscore.Boxscore, dir teams.Directory) (title, body string, err error)
}

// Config identifies what the bot tracks.
type Config struct {
	Team      string
	Season    string
	Subreddit string
}

// Report summarises one Run.
type Report struct {
	RunID    string             `json:"runId"`
	At       time.Time          `json:"at"`
	Decision gamestate.Decision `json:"decision"`
	Outcome  threads.Outcome    `json:"outcome"`
	ThreadID string             `json:"threadId,omitempty"`
	Title    string             `json:"title,omitempty"`
}

// Bot wires the pipeline together. It holds no state between runs.
type Bot struct {
	cfg       Config
	provider  providers.DataProvider
	locator   *threads.Locator
	publisher *threads.Publisher
	renderer  Renderer
	recorder  *metrics.Recorder
	logger    *slog.Logger
	newID     func() string
}

// New builds a Bot. recorder and logger may be nil.
func New(cfg Config, provider providers.DataProvider, locator *threads.Locator, publisher *threads.Publisher, renderer Renderer, recorder *metrics.Recorder, logger *slog.Logger) *Bot {
	return &Bot{
		cfg:       cfg,
		provider:  provider,
		locator:   locator,
		publisher: publisher,
		renderer:  renderer,
		recorder:  recorder,
		logger:    logger,
		newID:     uuid.NewString,
	}
}

// Run executes one invocation at the given instant. It never retries; the
// caller's schedule supplies the next attempt.
func (b *Bot) Run(ctx context.Context, now time.Time) (Report, error) {
	report := Report{RunID: b.newID(), At: now, Outcome: threads.OutcomeNone}
	logger := b.logger
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With(
		logging.FieldRunID, report.RunID,
		logging.FieldSubreddit, b.cfg.Subreddit,
	)
	ctx = logging.WithLogger(ctx, logger)

	start := time.Now()
	err := b.run(ctx, now, &report)
	b.recorder.RecordRun(report.Decision.Action.String(), time.Since(start), err)

	if err != nil {
		logging.Error(logger, "run failed", err,
			logging.FieldAction, report.Decision.Action.String(),
			logging.FieldDurationMS, time.Since(start).Milliseconds(),
		)
		return report, err
	}
	if report.Decision.None() {
		logging.Info(logger, "nothing to do", logging.FieldDurationMS, time.Since(start).Milliseconds())
		return report, nil
	}
	logging.Info(logger, "run complete",
		logging.FieldAction, report.Decision.Action.String(),
		logging.FieldGameID, report.Decision.Game.ID,
		logging.FieldThreadID, report.ThreadID,
		logging.FieldOutcome, string(report.Outcome),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return report, nil
}

func (b *Bot) run(ctx context.Context, now time.Time, report *Report) error {
	if b.provider == nil || b.locator == nil || b.publisher == nil || b.renderer == nil {
		return ErrMissingDependency
	}

	schedule, err := b.provider.Schedule(ctx, b.cfg.Team, b.cfg.Season)
	if err != nil {
		return fmt.Errorf("fetch schedule: %w", err)
	}
	decision, err := gamestate.ResolveSchedule(now, schedule)
	if err != nil {
		return err
	}
	report.Decision = decision
	kind, ok := decision.Kind()
	if !ok {
		return nil
	}

	box, err := b.provider.Boxscore(ctx, decision.Game.StartDate, decision.Game.ID)
	if err != nil {
		return fmt.Errorf("fetch boxscore %s: %w", decision.Game.ID, err)
	}
	list, err := b.provider.Teams(ctx, schedule.Season)
	if err != nil {
		return fmt.Errorf("fetch teams: %w", err)
	}
	title, body, err := b.renderer.Render(kind, box, teams.NewDirectory(list))
	if err != nil {
		return err
	}

	existing, err := b.locator.Find(ctx, kind, decision.WindowStart(), now)
	if err != nil {
		return err
	}
	result, err := b.publisher.Publish(ctx, existing, kind, title, body)
	if err != nil {
		return err
	}

	report.Outcome = result.Outcome
	report.ThreadID = result.Thread.ID
	report.Title = result.Thread.Title
	b.recorder.RecordPublish(kind.String(), string(result.Outcome))
	if result.PromotionErr != nil {
		b.recorder.RecordPromotionFailure(kind.String())
	}
	return nil
}
