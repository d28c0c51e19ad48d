package threads

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/sergi/go-diff/diffmatchpatch"

	domainthreads "github.com/preston-bernstein/nba-gamethread-bot/internal/domain/threads"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/logging"
)

// Outcome is what a publish did on the platform.
type Outcome string

const (
	OutcomeNone      Outcome = "none"
	OutcomeCreated   Outcome = "created"
	OutcomeUpdated   Outcome = "updated"
	OutcomeUnchanged Outcome = "unchanged"
)

// Result describes a finished publish.
type Result struct {
	Outcome Outcome
	Thread  domainthreads.Thread
	// PromotionErr holds any promotion failures after a create. The thread is
	// live regardless.
	PromotionErr error
}

// Publisher creates or edits the day's thread.
type Publisher struct {
	writer Writer
	logger *slog.Logger
}

// NewPublisher builds a Publisher over the platform writer.
func NewPublisher(writer Writer, logger *slog.Logger) *Publisher {
	return &Publisher{writer: writer, logger: logger}
}

// Publish creates a thread when existing is nil, otherwise edits its body if
// it differs from body. Titles of existing threads are left alone.
func (p *Publisher) Publish(ctx context.Context, existing *domainthreads.Thread, kind domainthreads.Kind, title, body string) (Result, error) {
	logger := logging.FromContext(ctx, p.logger)

	if existing == nil {
		created, err := p.writer.Submit(ctx, title, body)
		if err != nil {
			return Result{Outcome: OutcomeNone}, fmt.Errorf("submit %s: %w", kind, err)
		}
		promoErr := p.promote(ctx, created)
		if promoErr != nil {
			logging.Warn(logger, "thread created but promotion incomplete",
				logging.FieldThreadKind, kind.String(),
				logging.FieldThreadID, created.ID,
				"error", promoErr,
			)
		}
		logging.Info(logger, "thread created",
			logging.FieldThreadKind, kind.String(),
			logging.FieldThreadID, created.ID,
		)
		return Result{Outcome: OutcomeCreated, Thread: created, PromotionErr: promoErr}, nil
	}

	if existing.Body == body {
		logging.Info(logger, "thread text unchanged, not updating",
			logging.FieldThreadKind, kind.String(),
			logging.FieldThreadID, existing.ID,
		)
		return Result{Outcome: OutcomeUnchanged, Thread: *existing}, nil
	}

	if err := p.writer.Edit(ctx, *existing, body); err != nil {
		return Result{Outcome: OutcomeNone, Thread: *existing}, fmt.Errorf("edit %s %s: %w", kind, existing.ID, err)
	}
	inserted, deleted := bodyDelta(existing.Body, body)
	logging.Info(logger, "thread updated",
		logging.FieldThreadKind, kind.String(),
		logging.FieldThreadID, existing.ID,
		"chars_inserted", inserted,
		"chars_deleted", deleted,
	)
	updated := *existing
	updated.Body = body
	return Result{Outcome: OutcomeUpdated, Thread: updated}, nil
}

// promote runs every promotion step even if an earlier one fails.
func (p *Publisher) promote(ctx context.Context, t domainthreads.Thread) error {
	var errs []error
	if err := p.writer.Distinguish(ctx, t); err != nil {
		errs = append(errs, fmt.Errorf("distinguish: %w", err))
	}
	if err := p.writer.Sticky(ctx, t); err != nil {
		errs = append(errs, fmt.Errorf("sticky: %w", err))
	}
	if err := p.writer.SetSuggestedSort(ctx, t, SuggestedSort); err != nil {
		errs = append(errs, fmt.Errorf("suggested sort: %w", err))
	}
	return errors.Join(errs...)
}

func bodyDelta(before, after string) (inserted, deleted int) {
	dmp := diffmatchpatch.New()
	for _, d := range dmp.DiffMain(before, after, false) {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			inserted += len(d.Text)
		case diffmatchpatch.DiffDelete:
			deleted += len(d.Text)
		}
	}
	return inserted, deleted
}
