package server

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/nba-gamethread-bot/internal/config"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/reddit"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/render"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/sidebar"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/store"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/threads"
)

// Platform is the subreddit surface both bots write to.
type Platform interface {
	threads.Platform
	sidebar.Platform
}

// selectPlatform returns the reddit client, or an in-memory subreddit for
// dry runs so nothing is posted. The in-memory sidebar starts with every
// section marker in place.
func selectPlatform(ctx context.Context, cfg config.Config, logger *slog.Logger) Platform {
	if cfg.DryRun {
		if logger != nil {
			logger.Info("dry run: threads are kept in memory", slog.String("subreddit", cfg.Subreddit))
		}
		mem := store.NewMemoryStore(cfg.Reddit.Username)
		mem.SetDescription(render.SidebarTemplate())
		return mem
	}
	return reddit.NewClient(ctx, reddit.Config{
		BaseURL:      cfg.Reddit.BaseURL,
		AuthURL:      cfg.Reddit.AuthURL,
		ClientID:     cfg.Reddit.ClientID,
		ClientSecret: cfg.Reddit.ClientSecret,
		Username:     cfg.Reddit.Username,
		Password:     cfg.Reddit.Password,
		UserAgent:    cfg.Reddit.UserAgent,
		Subreddit:    cfg.Subreddit,
		Logger:       logger,
	})
}
