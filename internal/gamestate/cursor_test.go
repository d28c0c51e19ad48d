package gamestate

import (
	"errors"
	"testing"
	"time"

	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/games"
)

var t0 = time.Date(2024, 1, 10, 0, 30, 0, 0, time.UTC)

func sampleSchedule() games.Schedule {
	return games.Schedule{
		TeamID: "1610612752",
		Season: "2023",
		Games: []games.Game{
			{ID: "g0", StartTime: t0, HomeTeamID: "1610612752", AwayTeamID: "1610612738", IsHomeTeam: true, Score: games.Score{Home: 110, Away: 100}},
			{ID: "g1", StartTime: t0.Add(48 * time.Hour), HomeTeamID: "1610612748", AwayTeamID: "1610612752"},
		},
		LastCompletedIndex: 0,
	}
}

func TestCursorAccessors(t *testing.T) {
	c, err := NewCursor(sampleSchedule())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	prev, ok := c.LastCompleted()
	if !ok || prev.ID != "g0" {
		t.Fatalf("expected g0 as last completed, got %+v ok=%v", prev, ok)
	}
	next, ok := c.Next()
	if !ok || next.ID != "g1" {
		t.Fatalf("expected g1 as next, got %+v ok=%v", next, ok)
	}
}

func TestCursorEmptySchedule(t *testing.T) {
	c, err := NewCursor(games.Schedule{})
	if err != nil {
		t.Fatalf("empty schedule should be valid, got %v", err)
	}
	if _, ok := c.LastCompleted(); ok {
		t.Fatal("expected no last completed game")
	}
	if _, ok := c.Next(); ok {
		t.Fatal("expected no next game")
	}
}

func TestCursorSeasonOver(t *testing.T) {
	s := sampleSchedule()
	s.LastCompletedIndex = 1
	c, err := NewCursor(s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := c.Next(); ok {
		t.Fatal("expected no next game at end of season")
	}
	if prev, ok := c.LastCompleted(); !ok || prev.ID != "g1" {
		t.Fatalf("expected g1 as last completed, got %+v", prev)
	}
}

func TestCursorRejectsOutOfRangeIndex(t *testing.T) {
	for _, idx := range []int{-1, 2, 10} {
		s := sampleSchedule()
		s.LastCompletedIndex = idx
		if _, err := NewCursor(s); !errors.Is(err, ErrMalformedSchedule) {
			t.Fatalf("index %d: expected ErrMalformedSchedule, got %v", idx, err)
		}
	}
}
