package gamestate

import (
	"fmt"
	"time"

	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/games"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/threads"
)

const (
	// PreGameWindow is how long before tip-off an unscored game becomes current.
	PreGameWindow = time.Hour
	// PostGameWindow is how long after tip-off a scored game stays current.
	PostGameWindow = 6 * time.Hour
)

// Action is what the current moment calls for.
type Action int

const (
	NoAction Action = iota
	PreGame
	PostGame
)

func (a Action) String() string {
	switch a {
	case PreGame:
		return "game_thread"
	case PostGame:
		return "post_game_thread"
	default:
		return "none"
	}
}

// MarshalText encodes the action by name.
func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText decodes an action name written by MarshalText.
func (a *Action) UnmarshalText(text []byte) error {
	switch string(text) {
	case "none", "":
		*a = NoAction
	case "game_thread":
		*a = PreGame
	case "post_game_thread":
		*a = PostGame
	default:
		return fmt.Errorf("unknown action %q", text)
	}
	return nil
}

// Decision pairs an action with the game it applies to. Game is the zero
// value for NoAction.
type Decision struct {
	Action Action     `json:"action"`
	Game   games.Game `json:"game"`
}

// WindowStart is the earliest instant the decided thread could have been
// created: an hour before tip-off for a game thread, tip-off for a post game
// thread. It is zero for NoAction.
func (d Decision) WindowStart() time.Time {
	switch d.Action {
	case PreGame:
		return d.Game.StartTime.Add(-PreGameWindow)
	case PostGame:
		return d.Game.StartTime
	default:
		return time.Time{}
	}
}

// None reports whether nothing needs publishing.
func (d Decision) None() bool {
	return d.Action == NoAction
}

// Kind maps the decision to the thread kind it publishes. ok is false for
// NoAction.
func (d Decision) Kind() (kind threads.Kind, ok bool) {
	switch d.Action {
	case PreGame:
		return threads.KindGameThread, true
	case PostGame:
		return threads.KindPostGameThread, true
	default:
		return "", false
	}
}

// Resolve derives the decision for now from the two games around the cursor.
// The next game is checked first: once it is within its pre-game window and
// unscored, it wins even if the previous game's recap window is still open.
func Resolve(now time.Time, cursor Cursor) Decision {
	if next, ok := cursor.Next(); ok && !next.HasScore() && next.StartTime.Sub(now) <= PreGameWindow {
		return Decision{Action: PreGame, Game: next}
	}
	if prev, ok := cursor.LastCompleted(); ok && prev.HasScore() && now.Sub(prev.StartTime) <= PostGameWindow {
		return Decision{Action: PostGame, Game: prev}
	}
	return Decision{Action: NoAction}
}

// ResolveSchedule validates the schedule and resolves it in one step.
func ResolveSchedule(now time.Time, schedule games.Schedule) (Decision, error) {
	cursor, err := NewCursor(schedule)
	if err != nil {
		return Decision{}, err
	}
	return Resolve(now, cursor), nil
}
