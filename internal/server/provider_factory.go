package server

import (
	"log/slog"

	"github.com/preston-bernstein/nba-gamethread-bot/internal/config"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/metrics"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/providers"
)

// providerFactory assembles the configured provider behind the shared retry wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) (providers.DataProvider, error) {
	base, err := selectProvider(cfg, f.logger)
	if err != nil {
		return nil, err
	}
	return f.wrap(cfg, base), nil
}

func (f providerFactory) wrap(cfg config.Config, base providers.DataProvider) providers.DataProvider {
	return providers.NewRetryingProvider(
		base,
		f.logger,
		f.metrics,
		providerName(cfg.Provider, base),
		cfg.NBAData.RetryAttempts,
		cfg.NBAData.RetryBackoff,
	)
}
