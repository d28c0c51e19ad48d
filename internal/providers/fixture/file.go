package fixture

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/boxscore"
	domaingames "github.com/preston-bernstein/nba-gamethread-bot/internal/domain/games"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/players"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/standings"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/teams"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/timeutil"
)

// scheduleFile is the YAML layout accepted by NewFromFile.
type scheduleFile struct {
	Season             string         `yaml:"season"`
	LastCompletedIndex int            `yaml:"lastCompletedIndex"`
	Teams              []fileTeam     `yaml:"teams"`
	Games              []fileGame     `yaml:"games"`
	Standings          *fileStandings `yaml:"standings"`
	Roster             []filePlayer   `yaml:"roster"`
}

type fileStandings struct {
	East []fileStanding `yaml:"east"`
	West []fileStanding `yaml:"west"`
}

type fileStanding struct {
	Team        string `yaml:"team"`
	Record      string `yaml:"record"`
	GamesBehind string `yaml:"gamesBehind"`
}

type filePlayer struct {
	ID        string `yaml:"id"`
	FirstName string `yaml:"firstName"`
	LastName  string `yaml:"lastName"`
	Jersey    string `yaml:"jersey"`
	Position  string `yaml:"position"`
}

type fileTeam struct {
	ID       string `yaml:"id"`
	Nickname string `yaml:"nickname"`
	FullName string `yaml:"fullName"`
	Tricode  string `yaml:"tricode"`
	City     string `yaml:"city"`
	URLName  string `yaml:"urlName"`
}

type fileGame struct {
	ID         string `yaml:"id"`
	Start      string `yaml:"start"`
	StartDate  string `yaml:"startDate"`
	Home       string `yaml:"home"`
	Away       string `yaml:"away"`
	IsHomeTeam bool   `yaml:"isHomeTeam"`
	Score      struct {
		Home int `yaml:"home"`
		Away int `yaml:"away"`
	} `yaml:"score"`
	Linescore struct {
		Home []int `yaml:"home"`
		Away []int `yaml:"away"`
	} `yaml:"linescore"`
	Records struct {
		Home string `yaml:"home"`
		Away string `yaml:"away"`
	} `yaml:"records"`
	Arena      string `yaml:"arena"`
	Attendance string `yaml:"attendance"`
}

// NewFromFile creates a provider serving the schedule in a YAML file.
func NewFromFile(path string) (*Provider, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: read %s: %w", path, err)
	}
	var f scheduleFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("fixture: parse %s: %w", path, err)
	}
	if _, err := f.schedule("", f.Season); err != nil {
		return nil, err
	}
	p := New()
	p.file = &f
	return p, nil
}

func (f *scheduleFile) schedule(team, season string) (domaingames.Schedule, error) {
	out := domaingames.Schedule{
		TeamID:             team,
		Season:             season,
		Games:              make([]domaingames.Game, 0, len(f.Games)),
		LastCompletedIndex: f.LastCompletedIndex,
	}
	for _, g := range f.Games {
		start, err := time.Parse(time.RFC3339, g.Start)
		if err != nil {
			return domaingames.Schedule{}, fmt.Errorf("fixture: game %s start %q: %w", g.ID, g.Start, err)
		}
		date := g.StartDate
		if date == "" {
			date = timeutil.CompactDate(start)
		}
		out.Games = append(out.Games, domaingames.Game{
			ID:         g.ID,
			StartTime:  start.UTC(),
			StartDate:  date,
			HomeTeamID: g.Home,
			AwayTeamID: g.Away,
			IsHomeTeam: g.IsHomeTeam,
			Score:      domaingames.Score{Home: g.Score.Home, Away: g.Score.Away},
		})
	}
	return out, nil
}

func (f *scheduleFile) teams() []teams.Team {
	out := make([]teams.Team, 0, len(f.Teams))
	for _, t := range f.Teams {
		out = append(out, teams.Team{
			ID:       t.ID,
			Nickname: t.Nickname,
			FullName: t.FullName,
			Tricode:  t.Tricode,
			City:     t.City,
			URLName:  t.URLName,
		})
	}
	return out
}

func (f *scheduleFile) standings() standings.Conferences {
	return standings.Conferences{
		East: mapFileStandings(f.Standings.East),
		West: mapFileStandings(f.Standings.West),
	}
}

func mapFileStandings(rows []fileStanding) []standings.Standing {
	out := make([]standings.Standing, 0, len(rows))
	for _, row := range rows {
		var line boxscore.TeamLine
		parseRecord(row.Record, &line)
		s := standings.Standing{
			TeamID:      row.Team,
			Wins:        line.Wins,
			Losses:      line.Losses,
			GamesBehind: row.GamesBehind,
		}
		if played := line.Wins + line.Losses; played > 0 {
			s.LossPct = float64(line.Losses) / float64(played)
		}
		out = append(out, s)
	}
	return out
}

func (f *scheduleFile) roster() []players.Player {
	out := make([]players.Player, 0, len(f.Roster))
	for _, p := range f.Roster {
		out = append(out, players.Player{
			ID:        p.ID,
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Jersey:    p.Jersey,
			Position:  p.Position,
		})
	}
	return out
}

func (f *scheduleFile) decorate(gameID string, box *boxscore.Boxscore) {
	for _, g := range f.Games {
		if g.ID != gameID {
			continue
		}
		if g.Arena != "" {
			box.Arena.Name = g.Arena
		}
		box.Attendance = g.Attendance
		if len(g.Linescore.Home) > 0 {
			box.Home.Linescore = g.Linescore.Home
			box.Away.Linescore = g.Linescore.Away
			box.Period = len(g.Linescore.Home)
		}
		parseRecord(g.Records.Home, &box.Home)
		parseRecord(g.Records.Away, &box.Away)
		return
	}
}

func parseRecord(raw string, line *boxscore.TeamLine) {
	if raw == "" {
		return
	}
	var w, l int
	if _, err := fmt.Sscanf(raw, "%d-%d", &w, &l); err == nil {
		line.Wins, line.Losses = w, l
	}
}
