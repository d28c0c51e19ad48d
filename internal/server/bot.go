package server

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/nba-gamethread-bot/internal/config"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/gamethread"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/metrics"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/poller"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/providers"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/render"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/sidebar"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/threads"
)

// Components is a fully wired bot and the collaborators it was built from.
// Sidebar is nil when sidebar refreshes are disabled.
type Components struct {
	Bot      *gamethread.Bot
	Sidebar  *sidebar.Bot
	Provider providers.DataProvider
	Platform Platform
}

// Build wires a bot from configuration. recorder and logger may be nil.
func Build(ctx context.Context, cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (Components, error) {
	provider, err := newProviderFactory(logger, recorder).build(cfg)
	if err != nil {
		return Components{}, err
	}
	platform := selectPlatform(ctx, cfg, logger)
	return buildWith(cfg, provider, platform, logger, recorder), nil
}

func buildWith(cfg config.Config, provider providers.DataProvider, platform Platform, logger *slog.Logger, recorder *metrics.Recorder) Components {
	bot := gamethread.New(
		gamethread.Config{Team: cfg.Team, Season: cfg.Season, Subreddit: cfg.Subreddit},
		provider,
		threads.NewLocator(platform, cfg.Reddit.Username, threads.DefaultSearchWindow, logger),
		threads.NewPublisher(platform, logger),
		render.New(cfg.TeamTricode),
		recorder,
		logger,
	)
	parts := Components{Bot: bot, Provider: provider, Platform: platform}
	if cfg.Sidebar {
		parts.Sidebar = sidebar.New(
			sidebar.Config{Team: cfg.Team, Season: cfg.Season, Subreddit: cfg.Subreddit},
			provider,
			platform,
			recorder,
			logger,
		)
	}
	return parts
}

// Runner is what the poller drives each tick: a sidebar refresh when one is
// wired, then the game thread run.
func (c Components) Runner() poller.Runner {
	tick := tickRunner{bot: c.Bot}
	if c.Sidebar != nil {
		tick.sidebar = c.Sidebar
	}
	return tick
}

type sidebarRefresher interface {
	Run(ctx context.Context, now time.Time) (sidebar.Report, error)
}

// tickRunner refreshes the sidebar before the game thread run. The sidebar
// bot logs and counts its own failures, and they never hold back the thread.
type tickRunner struct {
	sidebar sidebarRefresher
	bot     poller.Runner
}

func (t tickRunner) Run(ctx context.Context, now time.Time) (gamethread.Report, error) {
	if t.sidebar != nil {
		_, _ = t.sidebar.Run(ctx, now)
	}
	return t.bot.Run(ctx, now)
}

// serialRunner keeps scheduled and operator-triggered runs from overlapping
// inside one process.
type serialRunner struct {
	mu   sync.Mutex
	next poller.Runner
}

func newSerialRunner(next poller.Runner) *serialRunner {
	return &serialRunner{next: next}
}

// Run waits for any run in flight, then runs. The poller uses it.
func (s *serialRunner) Run(ctx context.Context, now time.Time) (gamethread.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next.Run(ctx, now)
}

// TryRun runs only when nothing else is running and otherwise returns
// poller.ErrRunInProgress straight away.
func (s *serialRunner) TryRun(ctx context.Context, now time.Time) (gamethread.Report, error) {
	if !s.mu.TryLock() {
		return gamethread.Report{At: now}, poller.ErrRunInProgress
	}
	defer s.mu.Unlock()
	return s.next.Run(ctx, now)
}

// nonBlocking exposes TryRun as a poller.Runner for the admin endpoint.
func (s *serialRunner) nonBlocking() poller.Runner {
	return runnerFunc(s.TryRun)
}

type runnerFunc func(ctx context.Context, now time.Time) (gamethread.Report, error)

func (f runnerFunc) Run(ctx context.Context, now time.Time) (gamethread.Report, error) {
	return f(ctx, now)
}
