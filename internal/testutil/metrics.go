package testutil

import (
	"context"
	"net/http"

	"github.com/preston-bernstein/nba-gamethread-bot/internal/metrics"
)

// NewTelemetry returns in-memory telemetry serving handler, shaped like what
// metrics.Setup produces when export is enabled.
func NewTelemetry(handler http.Handler) metrics.Telemetry {
	return metrics.Telemetry{
		Recorder: metrics.NewRecorder(),
		Handler:  handler,
		Shutdown: func(context.Context) error { return nil },
	}
}
