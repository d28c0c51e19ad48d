package server

import (
	"context"

	"github.com/preston-bernstein/nba-gamethread-bot/internal/poller"
)

// Poller is the run loop as seen by the server.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() poller.Status
}
