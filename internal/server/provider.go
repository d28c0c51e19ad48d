package server

import (
	"log/slog"

	"github.com/preston-bernstein/nba-gamethread-bot/internal/config"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/providers"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/providers/fixture"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/providers/nbadata"
)

func selectProvider(cfg config.Config, logger *slog.Logger) (providers.DataProvider, error) {
	switch cfg.Provider {
	case config.ProviderNBAData, "":
		return nbadata.NewClient(nbadata.Config{
			BaseURL:   cfg.NBAData.BaseURL,
			Timeout:   cfg.NBAData.Timeout,
			UserAgent: cfg.Reddit.UserAgent,
			Logger:    logger,
		}), nil
	case config.ProviderFixture:
		if cfg.FixturePath != "" {
			prov, err := fixture.NewFromFile(cfg.FixturePath)
			if err != nil {
				return nil, err
			}
			return prov, nil
		}
		return fixture.New(), nil
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New(), nil
	}
}
