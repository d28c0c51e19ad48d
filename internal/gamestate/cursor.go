package gamestate

import (
	"errors"
	"fmt"

	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/games"
)

// ErrMalformedSchedule marks a schedule whose completed-game index falls
// outside its game list. It is an input-contract violation and never retried.
var ErrMalformedSchedule = errors.New("malformed schedule")

// Cursor exposes the two games adjacent to the schedule's completed-game
// pointer.
type Cursor struct {
	games []games.Game
	last  int
}

// NewCursor validates the schedule and returns a cursor over it. An empty
// schedule is valid and yields no candidates.
func NewCursor(schedule games.Schedule) (Cursor, error) {
	n := len(schedule.Games)
	if n == 0 {
		return Cursor{last: -1}, nil
	}
	idx := schedule.LastCompletedIndex
	if idx < 0 || idx >= n {
		return Cursor{}, fmt.Errorf("%w: last completed index %d with %d games", ErrMalformedSchedule, idx, n)
	}
	return Cursor{games: schedule.Games, last: idx}, nil
}

// LastCompleted returns the most recently finished game.
func (c Cursor) LastCompleted() (games.Game, bool) {
	if len(c.games) == 0 {
		return games.Game{}, false
	}
	return c.games[c.last], true
}

// Next returns the game after the last completed one, if the season has one.
func (c Cursor) Next() (games.Game, bool) {
	i := c.last + 1
	if len(c.games) == 0 || i >= len(c.games) {
		return games.Game{}, false
	}
	return c.games[i], true
}
