package providers

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/boxscore"
	domaingames "github.com/preston-bernstein/nba-gamethread-bot/internal/domain/games"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/players"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/standings"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/teams"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/logging"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/metrics"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/upstream"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
	maxRetryDelay        = 5 * time.Second
)

type backoffFunc func(attempt int) time.Duration

// retryingProvider wraps a DataProvider with bounded, jittered retries. All
// provider calls are reads, so retrying them is safe.
type retryingProvider struct {
	inner       DataProvider
	logger      *slog.Logger
	recorder    *metrics.Recorder
	name        string
	maxAttempts int
	backoffFn   backoffFunc

	rngMu sync.Mutex
	rng   *rand.Rand
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/backoff are <= 0, defaults are used.
func NewRetryingProvider(inner DataProvider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, backoff time.Duration) DataProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		recorder:    recorder,
		name:        name,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *retryingProvider) CurrentSeason(ctx context.Context) (string, error) {
	return retry(ctx, r, "current_season", func(ctx context.Context) (string, error) {
		return r.inner.CurrentSeason(ctx)
	})
}

func (r *retryingProvider) Schedule(ctx context.Context, team, season string) (domaingames.Schedule, error) {
	return retry(ctx, r, "schedule", func(ctx context.Context) (domaingames.Schedule, error) {
		return r.inner.Schedule(ctx, team, season)
	})
}

func (r *retryingProvider) Boxscore(ctx context.Context, date, gameID string) (boxscore.Boxscore, error) {
	return retry(ctx, r, "boxscore", func(ctx context.Context) (boxscore.Boxscore, error) {
		return r.inner.Boxscore(ctx, date, gameID)
	})
}

func (r *retryingProvider) Teams(ctx context.Context, season string) ([]teams.Team, error) {
	return retry(ctx, r, "teams", func(ctx context.Context) ([]teams.Team, error) {
		return r.inner.Teams(ctx, season)
	})
}

func (r *retryingProvider) Standings(ctx context.Context) (standings.Conferences, error) {
	return retry(ctx, r, "standings", func(ctx context.Context) (standings.Conferences, error) {
		return r.inner.Standings(ctx)
	})
}

func (r *retryingProvider) Roster(ctx context.Context, team, season string) ([]players.Player, error) {
	return retry(ctx, r, "roster", func(ctx context.Context) ([]players.Player, error) {
		return r.inner.Roster(ctx, team, season)
	})
}

func retry[T any](ctx context.Context, r *retryingProvider, op string, call func(context.Context) (T, error)) (T, error) {
	var zero T
	if r.inner == nil {
		return zero, ErrProviderUnavailable
	}

	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		logger = logger.With(slog.String(logging.FieldProvider, r.name))
	}
	var lastErr error
	attempts := 0

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		start := time.Now()
		attempts = attempt
		out, err := call(ctx)
		r.recorder.RecordProviderAttempt(r.name, time.Since(start), err)
		if err == nil {
			return out, nil
		}
		lastErr = err

		rlErr, limited := upstream.AsRateLimitError(err)
		if limited {
			r.recorder.RecordRateLimit(r.name, rlErr.RetryAfter)
		}
		if attempt == r.maxAttempts || !upstream.Retryable(err) {
			break
		}

		delay := r.computeDelay(attempt, rlErr)
		logging.Warn(logger, "provider call retry",
			"op", op,
			"attempt", attempt,
			"max_attempts", r.maxAttempts,
			"delay_ms", delay.Milliseconds(),
			"error", err,
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return zero, ctx.Err()
		case <-timer.C:
		}
	}

	logging.Error(logger, "provider call failed", lastErr, "op", op, "attempts", attempts)
	return zero, lastErr
}

// computeDelay honours Retry-After when the upstream sent one, otherwise uses
// the backoff with up to 20% jitter.
func (r *retryingProvider) computeDelay(attempt int, rlErr *upstream.RateLimitError) time.Duration {
	if rlErr != nil && rlErr.RetryAfter > 0 {
		if rlErr.RetryAfter > maxRetryDelay {
			return maxRetryDelay
		}
		return rlErr.RetryAfter
	}
	base := r.backoffFn(attempt)
	if base <= 0 {
		return 0
	}
	r.rngMu.Lock()
	jitter := time.Duration(r.rng.Int63n(int64(base)/5 + 1))
	r.rngMu.Unlock()
	return base + jitter
}
