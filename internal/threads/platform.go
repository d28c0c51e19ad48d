// Package threads finds and upserts the single thread each action kind owns
// per day on the content platform.
package threads

import (
	"context"

	domainthreads "github.com/preston-bernstein/nba-gamethread-bot/internal/domain/threads"
)

// SuggestedSort is the comment ordering applied to new threads.
const SuggestedSort = "new"

// Searcher runs a recency-scoped search, newest first.
type Searcher interface {
	Search(ctx context.Context, query string) ([]domainthreads.Thread, error)
}

// Writer creates, edits and promotes threads.
type Writer interface {
	Submit(ctx context.Context, title, body string) (domainthreads.Thread, error)
	Edit(ctx context.Context, thread domainthreads.Thread, body string) error
	Distinguish(ctx context.Context, thread domainthreads.Thread) error
	Sticky(ctx context.Context, thread domainthreads.Thread) error
	SetSuggestedSort(ctx context.Context, thread domainthreads.Thread, sort string) error
}

// Platform is a content platform that can both search and write.
type Platform interface {
	Searcher
	Writer
}
