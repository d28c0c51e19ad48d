package providers

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/boxscore"
	domaingames "github.com/preston-bernstein/nba-gamethread-bot/internal/domain/games"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/players"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/standings"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/teams"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/metrics"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/testutil"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/upstream"
)

type flakeyProvider struct {
	failures int
	calls    int
	err      error
}

func (f *flakeyProvider) fail() error {
	f.calls++
	if f.calls <= f.failures {
		if f.err != nil {
			return f.err
		}
		return errors.New("boom")
	}
	return nil
}

func (f *flakeyProvider) CurrentSeason(context.Context) (string, error) {
	if err := f.fail(); err != nil {
		return "", err
	}
	return "2023", nil
}

func (f *flakeyProvider) Schedule(_ context.Context, team, season string) (domaingames.Schedule, error) {
	if err := f.fail(); err != nil {
		return domaingames.Schedule{}, err
	}
	return domaingames.Schedule{TeamID: team, Season: season, Games: []domaingames.Game{{ID: "ok"}}}, nil
}

func (f *flakeyProvider) Boxscore(_ context.Context, _ string, gameID string) (boxscore.Boxscore, error) {
	if err := f.fail(); err != nil {
		return boxscore.Boxscore{}, err
	}
	return boxscore.Boxscore{GameID: gameID}, nil
}

func (f *flakeyProvider) Teams(context.Context, string) ([]teams.Team, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	return []teams.Team{{ID: "t"}}, nil
}

func (f *flakeyProvider) Standings(context.Context) (standings.Conferences, error) {
	if err := f.fail(); err != nil {
		return standings.Conferences{}, err
	}
	return standings.Conferences{East: []standings.Standing{{TeamID: "t"}}}, nil
}

func (f *flakeyProvider) Roster(context.Context, string, string) ([]players.Player, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	return []players.Player{{ID: "p"}}, nil
}

func noDelay(rp DataProvider) *retryingProvider {
	r := rp.(*retryingProvider)
	r.backoffFn = func(int) time.Duration { return 0 }
	return r
}

func TestRetryingProviderRetriesAndSucceeds(t *testing.T) {
	fp := &flakeyProvider{failures: 2}
	rec := metrics.NewRecorder()
	rp := noDelay(NewRetryingProvider(fp, slog.Default(), rec, "flakey", 3, time.Millisecond))

	sched, err := rp.Schedule(context.Background(), "knicks", "2023")
	if err != nil {
		t.Fatalf("expected success, got error %v", err)
	}
	if sched.TeamID != "knicks" || len(sched.Games) != 1 {
		t.Fatalf("unexpected schedule %+v", sched)
	}
	if fp.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", fp.calls)
	}
	if snap := rec.Provider("flakey"); snap.Calls != 3 || snap.Errors != 2 {
		t.Fatalf("unexpected metrics %+v", snap)
	}
}

func TestRetryingProviderStopsAfterMaxAttempts(t *testing.T) {
	fp := &flakeyProvider{failures: 5}
	rp := noDelay(NewRetryingProvider(fp, nil, metrics.NewRecorder(), "flakey", 2, time.Millisecond))

	if _, err := rp.Teams(context.Background(), "2023"); err == nil {
		t.Fatal("expected error after retries")
	}
	if fp.calls != 2 {
		t.Fatalf("expected 2 attempts, got %d", fp.calls)
	}
}

func TestRetryingProviderLogsWithProviderName(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	fp := &flakeyProvider{failures: 5}
	rp := noDelay(NewRetryingProvider(fp, logger, nil, "flakey", 2, time.Millisecond))

	if _, err := rp.Teams(context.Background(), "2023"); err == nil {
		t.Fatal("expected error after retries")
	}
	out := buf.String()
	if strings.Count(out, "provider=flakey") != 2 {
		t.Fatalf("expected retry and failure lines tagged with the provider, got %s", out)
	}
	if !strings.Contains(out, `level=ERROR msg="provider call failed"`) || !strings.Contains(out, "attempts=2") {
		t.Fatalf("expected final failure at error level, got %s", out)
	}
}

func TestRetryingProviderDoesNotRetryClientErrors(t *testing.T) {
	fp := &flakeyProvider{failures: 5, err: &upstream.StatusError{Service: "nbadata", StatusCode: 404}}
	rp := noDelay(NewRetryingProvider(fp, nil, nil, "flakey", 3, time.Millisecond))

	_, err := rp.Boxscore(context.Background(), "20240110", "0022300500")
	if _, ok := upstream.AsStatusError(err); !ok {
		t.Fatalf("expected status error, got %v", err)
	}
	if fp.calls != 1 {
		t.Fatalf("expected a single attempt for 404, got %d", fp.calls)
	}
}

func TestRetryingProviderRecordsRateLimits(t *testing.T) {
	fp := &flakeyProvider{failures: 1, err: &upstream.RateLimitError{StatusCode: 429, RetryAfter: time.Millisecond}}
	rec := metrics.NewRecorder()
	rp := NewRetryingProvider(fp, nil, rec, "flakey", 2, time.Hour)

	season, err := rp.CurrentSeason(context.Background())
	if err != nil || season != "2023" {
		t.Fatalf("expected recovery after retry-after, got %q %v", season, err)
	}
	if hits := rec.Provider("flakey").RateLimitHits; hits != 1 {
		t.Fatalf("expected one rate limit hit, got %d", hits)
	}
}

func TestRetryingProviderRespectsContextCancel(t *testing.T) {
	fp := &flakeyProvider{failures: 5}
	rp := NewRetryingProvider(fp, nil, metrics.NewRecorder(), "flakey", 3, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := rp.CurrentSeason(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
}

func TestRetryingProviderWithoutInner(t *testing.T) {
	rp := NewRetryingProvider(nil, nil, nil, "none", 1, 0)
	if _, err := rp.CurrentSeason(context.Background()); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestComputeDelay(t *testing.T) {
	r := NewRetryingProvider(&flakeyProvider{}, nil, nil, "p", 3, 100*time.Millisecond).(*retryingProvider)

	for attempt := 1; attempt <= 3; attempt++ {
		base := time.Duration(attempt) * 100 * time.Millisecond
		got := r.computeDelay(attempt, nil)
		if got < base || got > base+base/5 {
			t.Fatalf("attempt %d: delay %s outside [%s, %s]", attempt, got, base, base+base/5)
		}
	}

	if got := r.computeDelay(1, &upstream.RateLimitError{RetryAfter: 2 * time.Second}); got != 2*time.Second {
		t.Fatalf("expected retry-after to win, got %s", got)
	}
	if got := r.computeDelay(1, &upstream.RateLimitError{RetryAfter: time.Minute}); got != maxRetryDelay {
		t.Fatalf("expected cap at %s, got %s", maxRetryDelay, got)
	}
}

func TestRetryingProviderRetriesSidebarReads(t *testing.T) {
	fp := &flakeyProvider{failures: 1}
	rec := metrics.NewRecorder()
	rp := noDelay(NewRetryingProvider(fp, nil, rec, "flakey", 3, time.Millisecond))

	conf, err := rp.Standings(context.Background())
	if err != nil || len(conf.East) != 1 {
		t.Fatalf("expected standings after a retry, got %+v %v", conf, err)
	}
	roster, err := rp.Roster(context.Background(), "knicks", "2023")
	if err != nil || len(roster) != 1 {
		t.Fatalf("expected roster, got %+v %v", roster, err)
	}
	if snap := rec.Provider("flakey"); snap.Calls != 3 || snap.Errors != 1 {
		t.Fatalf("unexpected metrics %+v", snap)
	}
}
