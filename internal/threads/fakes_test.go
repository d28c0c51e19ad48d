package threads

import (
	"context"
	"errors"
	"strconv"
	"time"

	domainthreads "github.com/preston-bernstein/nba-gamethread-bot/internal/domain/threads"
)

type recordingPlatform struct {
	results []domainthreads.Thread
	err     error

	queries     []string
	submits     int
	edits       int
	distinguish int
	sticky      int
	sorts       []string

	submitErr      error
	editErr        error
	distinguishErr error
	stickyErr      error

	created time.Time
}

func (p *recordingPlatform) Search(_ context.Context, query string) ([]domainthreads.Thread, error) {
	p.queries = append(p.queries, query)
	if p.err != nil {
		return nil, p.err
	}
	return p.results, nil
}

func (p *recordingPlatform) Submit(_ context.Context, title, body string) (domainthreads.Thread, error) {
	p.submits++
	if p.submitErr != nil {
		return domainthreads.Thread{}, p.submitErr
	}
	t := domainthreads.Thread{
		ID:        "new" + strconv.Itoa(p.submits),
		Title:     title,
		Body:      body,
		Author:    "nyknicks-automod",
		CreatedAt: p.created,
	}
	p.results = append([]domainthreads.Thread{t}, p.results...)
	return t, nil
}

func (p *recordingPlatform) Edit(_ context.Context, thread domainthreads.Thread, body string) error {
	p.edits++
	if p.editErr != nil {
		return p.editErr
	}
	for i := range p.results {
		if p.results[i].ID == thread.ID {
			p.results[i].Body = body
		}
	}
	return nil
}

func (p *recordingPlatform) Distinguish(context.Context, domainthreads.Thread) error {
	p.distinguish++
	return p.distinguishErr
}

func (p *recordingPlatform) Sticky(context.Context, domainthreads.Thread) error {
	p.sticky++
	return p.stickyErr
}

func (p *recordingPlatform) SetSuggestedSort(_ context.Context, _ domainthreads.Thread, sort string) error {
	p.sorts = append(p.sorts, sort)
	return nil
}

func (p *recordingPlatform) writes() int {
	return p.submits + p.edits + p.distinguish + p.sticky + len(p.sorts)
}

var errBoom = errors.New("boom")
