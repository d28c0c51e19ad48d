package testutil

import (
	"time"

	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/boxscore"
	domaingames "github.com/preston-bernstein/nba-gamethread-bot/internal/domain/games"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/teams"
)

const (
	KnicksID  = "1610612752"
	CelticsID = "1610612738"
)

// SampleTeams returns the two teams used by the sample fixtures.
func SampleTeams() []teams.Team {
	return []teams.Team{
		{ID: KnicksID, Nickname: "Knicks", FullName: "New York Knicks", Tricode: "NYK", City: "New York", URLName: "knicks"},
		{ID: CelticsID, Nickname: "Celtics", FullName: "Boston Celtics", Tricode: "BOS", City: "Boston", URLName: "celtics"},
	}
}

// SampleGame returns a Knicks home game against the Celtics.
func SampleGame(id string, start time.Time, home, away int) domaingames.Game {
	return domaingames.Game{
		ID:         id,
		StartTime:  start,
		StartDate:  start.UTC().Format("20060102"),
		HomeTeamID: KnicksID,
		AwayTeamID: CelticsID,
		IsHomeTeam: true,
		Score:      domaingames.Score{Home: home, Away: away},
	}
}

// SampleSchedule wraps games into a Knicks schedule.
func SampleSchedule(lastCompleted int, list ...domaingames.Game) domaingames.Schedule {
	return domaingames.Schedule{
		TeamID:             "knicks",
		Season:             "2023",
		Games:              list,
		LastCompletedIndex: lastCompleted,
	}
}

// SampleBoxscore returns a box score for a Knicks home game.
func SampleBoxscore(gameID string, start time.Time, home, away int) boxscore.Boxscore {
	box := boxscore.Boxscore{
		GameID:     gameID,
		StartTime:  start,
		StartDate:  start.UTC().Format("20060102"),
		Attendance: "19812",
		Arena:      boxscore.Arena{Name: "Madison Square Garden", City: "New York", StateAbbr: "NY", Country: "USA"},
		Officials:  []string{"Scott Foster"},
		Home:       boxscore.TeamLine{TeamID: KnicksID, Tricode: "NYK", Wins: 23, Losses: 15, Score: home},
		Away:       boxscore.TeamLine{TeamID: CelticsID, Tricode: "BOS", Wins: 29, Losses: 9, Score: away},
	}
	if home > 0 || away > 0 {
		box.Clock = "0:00"
		box.Period = 4
		box.Home.Linescore = []int{home / 4, home / 4, home / 4, home - 3*(home/4)}
		box.Away.Linescore = []int{away / 4, away / 4, away / 4, away - 3*(away/4)}
	}
	return box
}
