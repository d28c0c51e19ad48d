package poller

import (
	"log/slog"

	"github.com/preston-bernstein/nba-gamethread-bot/internal/logging"
)

// cronLogger routes scheduler messages to slog. Routine scheduling chatter
// goes to debug; skipped ticks and panics are surfaced.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	if msg == "skip" {
		logging.Warn(l.logger, "previous run still in progress, skipping tick", keysAndValues...)
		return
	}
	logging.Debug(l.logger, "cron "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	logging.Error(l.logger, "cron "+msg, err, keysAndValues...)
}
