package games

import "time"

// Score captures home and away points. Zero on both sides means the game has
// not produced a score yet.
type Score struct {
	Home int `json:"home"`
	Away int `json:"away"`
}

// HasScore reports whether either side has scored.
func (s Score) HasScore() bool {
	return s.Home > 0 || s.Away > 0
}

// Game is one scheduled contest of the tracked team.
type Game struct {
	ID         string    `json:"id"`
	URLCode    string    `json:"urlCode,omitempty"`
	StartTime  time.Time `json:"startTime"`
	StartDate  string    `json:"startDate"`
	HomeTeamID string    `json:"homeTeamId"`
	AwayTeamID string    `json:"awayTeamId"`
	IsHomeTeam bool      `json:"isHomeTeam"`
	Score      Score     `json:"score"`
}

// HasScore reports whether the game has started producing points.
func (g Game) HasScore() bool {
	return g.Score.HasScore()
}

// OpponentID returns the id of the team the tracked team is facing.
func (g Game) OpponentID() string {
	if g.IsHomeTeam {
		return g.AwayTeamID
	}
	return g.HomeTeamID
}

// Schedule is the chronological game list for one team and season, plus the
// provider's pointer at the most recently completed game.
type Schedule struct {
	TeamID             string `json:"teamId"`
	Season             string `json:"season"`
	Games              []Game `json:"games"`
	LastCompletedIndex int    `json:"lastCompletedIndex"`
}
