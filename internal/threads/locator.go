package threads

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	domainthreads "github.com/preston-bernstein/nba-gamethread-bot/internal/domain/threads"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/logging"
)

// DefaultSearchWindow bounds how old a matching thread may be.
const DefaultSearchWindow = 24 * time.Hour

// SearchError wraps a failed search. It is never returned for "no match".
type SearchError struct {
	Kind domainthreads.Kind
	Err  error
}

func (e *SearchError) Error() string {
	return fmt.Sprintf("search %s threads: %v", e.Kind, e.Err)
}

func (e *SearchError) Unwrap() error {
	return e.Err
}

// Locator finds today's thread of a kind authored by the bot account.
type Locator struct {
	searcher Searcher
	author   string
	window   time.Duration
	logger   *slog.Logger
}

// NewLocator builds a Locator. A non-positive window uses DefaultSearchWindow.
func NewLocator(searcher Searcher, author string, window time.Duration, logger *slog.Logger) *Locator {
	if window <= 0 {
		window = DefaultSearchWindow
	}
	return &Locator{
		searcher: searcher,
		author:   author,
		window:   window,
		logger:   logger,
	}
}

// Find returns the newest matching thread created at or after since, or nil
// when none exists. A zero since only applies the search window. Search
// failures come back as *SearchError so callers never mistake them for an
// empty result.
func (l *Locator) Find(ctx context.Context, kind domainthreads.Kind, since, now time.Time) (*domainthreads.Thread, error) {
	marker := kind.Marker()
	if marker == "" {
		return nil, fmt.Errorf("locate: unknown thread kind %q", kind)
	}

	results, err := l.searcher.Search(ctx, marker)
	if err != nil {
		return nil, &SearchError{Kind: kind, Err: err}
	}

	for _, candidate := range results {
		if !l.matches(candidate, marker, since, now) {
			continue
		}
		found := candidate
		logging.Debug(logging.FromContext(ctx, l.logger), "located existing thread",
			logging.FieldThreadKind, kind.String(),
			logging.FieldThreadID, found.ID,
		)
		return &found, nil
	}
	return nil, nil
}

func (l *Locator) matches(t domainthreads.Thread, marker string, since, now time.Time) bool {
	if !strings.EqualFold(t.Author, l.author) {
		return false
	}
	// Full-text search ignores the brackets, so "[Game Thread]" also matches
	// "[Post Game Thread]".
	if !strings.HasPrefix(t.Title, marker) {
		return false
	}
	if t.CreatedAt.IsZero() {
		return true
	}
	// On back-to-back game days yesterday's thread is still inside the
	// window; it must not be mistaken for today's.
	if !since.IsZero() && t.CreatedAt.Before(since) {
		return false
	}
	return now.Sub(t.CreatedAt) <= l.window
}
