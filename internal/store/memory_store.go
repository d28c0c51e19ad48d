package store

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	domainthreads "github.com/preston-bernstein/nba-gamethread-bot/internal/domain/threads"
)

// ErrNotFound is returned when a write targets an unknown thread.
var ErrNotFound = errors.New("thread not found")

// Entry is a stored thread plus the promotions applied to it.
type Entry struct {
	Thread        domainthreads.Thread
	Distinguished bool
	Stickied      bool
	SuggestedSort string
	Edits         int
}

// MemoryStore is a thread-safe in-memory thread platform. It searches the
// way the live platform does: words only, newest first, last day only. It
// also keeps the subreddit sidebar.
type MemoryStore struct {
	mu               sync.RWMutex
	author           string
	now              func() time.Time
	seq              int
	entries          map[string]*Entry
	description      string
	descriptionEdits int
}

// NewMemoryStore constructs an empty MemoryStore posting as author.
func NewMemoryStore(author string) *MemoryStore {
	return &MemoryStore{
		author:  author,
		now:     time.Now,
		entries: make(map[string]*Entry),
	}
}

// WithClock overrides the store clock; intended for tests and replays.
func (s *MemoryStore) WithClock(now func() time.Time) *MemoryStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	if now != nil {
		s.now = now
	}
	return s
}

// Seed inserts threads as-is, e.g. threads written by other accounts.
func (s *MemoryStore) Seed(list ...domainthreads.Thread) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range list {
		s.entries[t.ID] = &Entry{Thread: t}
	}
}

// Search returns threads created within the last day whose title contains
// every word of query, newest first.
func (s *MemoryStore) Search(_ context.Context, query string) ([]domainthreads.Thread, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	words := tokenize(query)
	cutoff := s.now().Add(-24 * time.Hour)
	out := make([]domainthreads.Thread, 0)
	for _, e := range s.entries {
		if e.Thread.CreatedAt.Before(cutoff) {
			continue
		}
		if containsAll(tokenize(e.Thread.Title), words) {
			out = append(out, e.Thread)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// Submit stores a new thread authored by the store's account.
func (s *MemoryStore) Submit(_ context.Context, title, body string) (domainthreads.Thread, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	id := "mem" + strconv.Itoa(s.seq)
	t := domainthreads.Thread{
		ID:        id,
		Name:      "t3_" + id,
		Title:     title,
		Body:      body,
		Author:    s.author,
		CreatedAt: s.now(),
	}
	s.entries[id] = &Entry{Thread: t}
	return t, nil
}

// Edit replaces the body of a stored thread.
func (s *MemoryStore) Edit(_ context.Context, thread domainthreads.Thread, body string) error {
	return s.update(thread.ID, func(e *Entry) {
		e.Thread.Body = body
		e.Edits++
	})
}

// Distinguish flags the thread as official.
func (s *MemoryStore) Distinguish(_ context.Context, thread domainthreads.Thread) error {
	return s.update(thread.ID, func(e *Entry) { e.Distinguished = true })
}

// Sticky pins the thread.
func (s *MemoryStore) Sticky(_ context.Context, thread domainthreads.Thread) error {
	return s.update(thread.ID, func(e *Entry) { e.Stickied = true })
}

// SetSuggestedSort records the default comment ordering.
func (s *MemoryStore) SetSuggestedSort(_ context.Context, thread domainthreads.Thread, order string) error {
	return s.update(thread.ID, func(e *Entry) { e.SuggestedSort = order })
}

// Get returns a copy of the stored entry.
func (s *MemoryStore) Get(id string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[id]
	if !ok {
		return Entry{}, false
	}
	return *e, true
}

// List returns copies of every stored entry, oldest first.
func (s *MemoryStore) List() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		result = append(result, *e)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Thread.CreatedAt.Before(result[j].Thread.CreatedAt)
	})
	return result
}

// SetDescription seeds the sidebar without counting it as an edit.
func (s *MemoryStore) SetDescription(description string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.description = description
}

// Description returns the current sidebar.
func (s *MemoryStore) Description(context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.description, nil
}

// UpdateDescription replaces the sidebar.
func (s *MemoryStore) UpdateDescription(_ context.Context, description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.description = description
	s.descriptionEdits++
	return nil
}

// DescriptionEdits reports how many times the sidebar was written.
func (s *MemoryStore) DescriptionEdits() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.descriptionEdits
}

func (s *MemoryStore) update(id string, fn func(*Entry)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok {
		return ErrNotFound
	}
	fn(e)
	return nil
}

func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
}

func containsAll(haystack, needles []string) bool {
	set := make(map[string]struct{}, len(haystack))
	for _, w := range haystack {
		set[w] = struct{}{}
	}
	for _, n := range needles {
		if _, ok := set[n]; !ok {
			return false
		}
	}
	return true
}
