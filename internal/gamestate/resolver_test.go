package gamestate

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/games"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/threads"
)

func mustCursor(t *testing.T, s games.Schedule) Cursor {
	t.Helper()
	c, err := NewCursor(s)
	if err != nil {
		t.Fatalf("cursor: %v", err)
	}
	return c
}

func TestResolveEndToEndScenario(t *testing.T) {
	s := sampleSchedule()
	c := mustCursor(t, s)

	cases := []struct {
		name string
		now  time.Time
		want Decision
	}{
		{"before next tip-off", t0.Add(47 * time.Hour), Decision{Action: PreGame, Game: s.Games[1]}},
		{"after last game", t0.Add(2 * time.Hour), Decision{Action: PostGame, Game: s.Games[0]}},
		{"between games", t0.Add(24 * time.Hour), Decision{Action: NoAction}},
	}

	for _, tc := range cases {
		got := Resolve(tc.now, c)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("%s: decision mismatch (-want +got):\n%s", tc.name, diff)
		}
	}
}

func TestResolvePreGameBoundary(t *testing.T) {
	s := sampleSchedule()
	// Keep the previous game's recap window closed.
	s.Games[0].StartTime = t0.Add(-72 * time.Hour)
	c := mustCursor(t, s)
	start := s.Games[1].StartTime

	if got := Resolve(start.Add(-time.Hour), c); got.Action != PreGame || got.Game.ID != "g1" {
		t.Fatalf("expected PreGame(g1) exactly one hour out, got %+v", got)
	}
	if got := Resolve(start.Add(-time.Hour-time.Second), c); got.Action != NoAction {
		t.Fatalf("expected NoAction one second before the window, got %+v", got)
	}
}

func TestResolvePreGameIsStable(t *testing.T) {
	s := sampleSchedule()
	c := mustCursor(t, s)
	now := s.Games[1].StartTime.Add(-30 * time.Minute)

	first := Resolve(now, c)
	for i := 0; i < 5; i++ {
		if got := Resolve(now, c); got != first {
			t.Fatalf("call %d: expected stable decision %+v, got %+v", i, first, got)
		}
	}
	if first.Action != PreGame {
		t.Fatalf("expected PreGame, got %s", first.Action)
	}
}

func TestResolveUnscoredAfterTipOffStaysPreGame(t *testing.T) {
	s := sampleSchedule()
	c := mustCursor(t, s)
	got := Resolve(s.Games[1].StartTime.Add(20*time.Minute), c)
	if got.Action != PreGame {
		t.Fatalf("expected PreGame while next game has no score, got %s", got.Action)
	}
}

func TestResolvePostGameExpiry(t *testing.T) {
	s := sampleSchedule()
	c := mustCursor(t, s)

	if got := Resolve(t0.Add(6*time.Hour), c); got.Action != PostGame || got.Game.ID != "g0" {
		t.Fatalf("expected PostGame(g0) at exactly six hours, got %+v", got)
	}
	if got := Resolve(t0.Add(6*time.Hour+time.Second), c); got.Action != NoAction {
		t.Fatalf("expected NoAction after the recap window, got %+v", got)
	}
}

func TestResolveUnscoredPreviousGameIsIgnored(t *testing.T) {
	s := sampleSchedule()
	s.Games[0].Score = games.Score{}
	c := mustCursor(t, s)
	if got := Resolve(t0.Add(time.Hour), c); got.Action != NoAction {
		t.Fatalf("expected NoAction for unscored previous game, got %s", got.Action)
	}
}

func TestResolvePreGameWinsOverOpenPostGameWindow(t *testing.T) {
	s := sampleSchedule()
	s.Games[1].StartTime = t0.Add(5 * time.Hour)
	c := mustCursor(t, s)

	got := Resolve(t0.Add(4*time.Hour+30*time.Minute), c)
	if got.Action != PreGame || got.Game.ID != "g1" {
		t.Fatalf("expected next game to take priority, got %+v", got)
	}
}

func TestResolveScoredNextGameFallsThrough(t *testing.T) {
	s := sampleSchedule()
	s.Games[1].StartTime = t0.Add(3 * time.Hour)
	s.Games[1].Score = games.Score{Away: 4}
	c := mustCursor(t, s)

	got := Resolve(t0.Add(3*time.Hour+10*time.Minute), c)
	if got.Action != PostGame || got.Game.ID != "g0" {
		t.Fatalf("expected fall through to previous game, got %+v", got)
	}
}

func TestResolveSeasonOver(t *testing.T) {
	s := sampleSchedule()
	s.LastCompletedIndex = 1
	s.Games[1].Score = games.Score{Home: 99, Away: 101}
	c := mustCursor(t, s)

	if got := Resolve(s.Games[1].StartTime.Add(7*time.Hour), c); got.Action != NoAction {
		t.Fatalf("expected NoAction after the final game, got %+v", got)
	}
}

func TestResolveEmptySchedule(t *testing.T) {
	got, err := ResolveSchedule(t0, games.Schedule{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.None() {
		t.Fatalf("expected NoAction, got %+v", got)
	}
}

func TestResolveScheduleRejectsMalformed(t *testing.T) {
	s := sampleSchedule()
	s.LastCompletedIndex = 5
	if _, err := ResolveSchedule(t0, s); !errors.Is(err, ErrMalformedSchedule) {
		t.Fatalf("expected ErrMalformedSchedule, got %v", err)
	}
}

func TestDecisionKind(t *testing.T) {
	if k, ok := (Decision{Action: PreGame}).Kind(); !ok || k != threads.KindGameThread {
		t.Fatalf("unexpected kind %q ok=%v", k, ok)
	}
	if k, ok := (Decision{Action: PostGame}).Kind(); !ok || k != threads.KindPostGameThread {
		t.Fatalf("unexpected kind %q ok=%v", k, ok)
	}
	if _, ok := (Decision{}).Kind(); ok {
		t.Fatal("expected no kind for NoAction")
	}
}

func TestActionString(t *testing.T) {
	want := map[Action]string{NoAction: "none", PreGame: "game_thread", PostGame: "post_game_thread"}
	for a, s := range want {
		if a.String() != s {
			t.Fatalf("expected %s, got %s", s, a.String())
		}
	}
}

func TestDecisionJSONUsesActionName(t *testing.T) {
	raw, err := json.Marshal(Decision{Action: PostGame})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"action":"post_game_thread"`) {
		t.Fatalf("expected action by name, got %s", raw)
	}

	var decoded Decision
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Action != PostGame {
		t.Fatalf("expected post game action after round trip, got %v", decoded.Action)
	}
	if err := json.Unmarshal([]byte(`{"action":"tip_off"}`), &decoded); err == nil {
		t.Fatalf("expected error for unknown action")
	}
}

func TestDecisionWindowStart(t *testing.T) {
	start := time.Date(2024, 1, 10, 0, 30, 0, 0, time.UTC)
	game := games.Game{ID: "g1", StartTime: start}
	tests := []struct {
		action Action
		want   time.Time
	}{
		{PreGame, start.Add(-time.Hour)},
		{PostGame, start},
		{NoAction, time.Time{}},
	}
	for _, tt := range tests {
		if got := (Decision{Action: tt.action, Game: game}).WindowStart(); !got.Equal(tt.want) {
			t.Fatalf("%s: expected %s, got %s", tt.action, tt.want, got)
		}
	}
}
