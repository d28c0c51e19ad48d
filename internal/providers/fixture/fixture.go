package fixture

import (
	"context"
	"fmt"
	"time"

	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/boxscore"
	domaingames "github.com/preston-bernstein/nba-gamethread-bot/internal/domain/games"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/players"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/standings"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/teams"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/timeutil"
)

const providerName = "fixture"

// Provider serves a static schedule useful for local runs and dry runs.
// Without a file the schedule is built around the current minute, with the
// next game tipping off in half an hour so the bot has a game thread to publish.
type Provider struct {
	now  func() time.Time
	file *scheduleFile
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{
		now: time.Now,
	}
}

// Name identifies the provider in logs and metrics.
func (p *Provider) Name() string {
	return providerName
}

// CurrentSeason returns the file's season, or the season of the current year.
func (p *Provider) CurrentSeason(ctx context.Context) (string, error) {
	_ = ctx
	if p.file != nil && p.file.Season != "" {
		return p.file.Season, nil
	}
	now := p.now().UTC()
	year := now.Year()
	if now.Month() < time.July {
		year--
	}
	return fmt.Sprintf("%d", year), nil
}

// Schedule returns the fixture schedule.
func (p *Provider) Schedule(ctx context.Context, team, season string) (domaingames.Schedule, error) {
	if season == "" {
		season, _ = p.CurrentSeason(ctx)
	}
	if p.file != nil {
		return p.file.schedule(team, season)
	}

	start := p.now().UTC().Truncate(time.Minute)
	return domaingames.Schedule{
		TeamID: team,
		Season: season,
		Games: []domaingames.Game{
			{
				ID:         "fixture-1",
				StartTime:  start.Add(-26 * time.Hour),
				StartDate:  timeutil.CompactDate(start.Add(-26 * time.Hour)),
				HomeTeamID: knicks.ID,
				AwayTeamID: celtics.ID,
				IsHomeTeam: true,
				Score:      domaingames.Score{Home: 112, Away: 104},
			},
			{
				ID:         "fixture-2",
				StartTime:  start.Add(30 * time.Minute),
				StartDate:  timeutil.CompactDate(start.Add(30 * time.Minute)),
				HomeTeamID: heat.ID,
				AwayTeamID: knicks.ID,
			},
			{
				ID:         "fixture-3",
				StartTime:  start.Add(48 * time.Hour),
				StartDate:  timeutil.CompactDate(start.Add(48 * time.Hour)),
				HomeTeamID: knicks.ID,
				AwayTeamID: lakers.ID,
				IsHomeTeam: true,
			},
		},
		LastCompletedIndex: 0,
	}, nil
}

// Boxscore builds a box score for a fixture game.
func (p *Provider) Boxscore(ctx context.Context, date, gameID string) (boxscore.Boxscore, error) {
	sched, err := p.Schedule(ctx, knicks.URLName, "")
	if err != nil {
		return boxscore.Boxscore{}, err
	}
	for _, g := range sched.Games {
		if g.ID == gameID {
			return p.boxscoreFor(g), nil
		}
	}
	return boxscore.Boxscore{}, fmt.Errorf("fixture: no game %s on %s", gameID, date)
}

// Teams returns the file's teams or a deterministic set.
func (p *Provider) Teams(ctx context.Context, season string) ([]teams.Team, error) {
	_ = ctx
	_ = season
	if p.file != nil && len(p.file.Teams) > 0 {
		return p.file.teams(), nil
	}
	return []teams.Team{knicks, celtics, heat, lakers}, nil
}

// Standings returns the file's table or a deterministic one over the
// fixture teams.
func (p *Provider) Standings(ctx context.Context) (standings.Conferences, error) {
	_ = ctx
	if p.file != nil && p.file.Standings != nil {
		return p.file.standings(), nil
	}
	return standings.Conferences{
		East: []standings.Standing{
			{TeamID: celtics.ID, Wins: 29, Losses: 9, LossPct: 0.237, GamesBehind: "0"},
			{TeamID: knicks.ID, Wins: 23, Losses: 15, LossPct: 0.395, GamesBehind: "6"},
			{TeamID: heat.ID, Wins: 21, Losses: 17, LossPct: 0.447, GamesBehind: "8"},
		},
		West: []standings.Standing{
			{TeamID: lakers.ID, Wins: 19, Losses: 20, LossPct: 0.513, GamesBehind: "0"},
		},
	}, nil
}

// Roster returns the file's roster or a small deterministic one.
func (p *Provider) Roster(ctx context.Context, team, season string) ([]players.Player, error) {
	_ = ctx
	_ = team
	_ = season
	if p.file != nil && len(p.file.Roster) > 0 {
		return p.file.roster(), nil
	}
	return []players.Player{
		{ID: "1628973", FirstName: "Jalen", LastName: "Brunson", Jersey: "11", Position: "G"},
		{ID: "1628404", FirstName: "Josh", LastName: "Hart", Jersey: "3", Position: "G-F"},
		{ID: "1629011", FirstName: "Mitchell", LastName: "Robinson", Jersey: "23", Position: "C"},
	}, nil
}

var (
	knicks  = teams.Team{ID: "1610612752", Nickname: "Knicks", FullName: "New York Knicks", Tricode: "NYK", City: "New York", URLName: "knicks", Conference: "East", Division: "Atlantic"}
	celtics = teams.Team{ID: "1610612738", Nickname: "Celtics", FullName: "Boston Celtics", Tricode: "BOS", City: "Boston", URLName: "celtics", Conference: "East", Division: "Atlantic"}
	heat    = teams.Team{ID: "1610612748", Nickname: "Heat", FullName: "Miami Heat", Tricode: "MIA", City: "Miami", URLName: "heat", Conference: "East", Division: "Southeast"}
	lakers  = teams.Team{ID: "1610612747", Nickname: "Lakers", FullName: "Los Angeles Lakers", Tricode: "LAL", City: "Los Angeles", URLName: "lakers", Conference: "West", Division: "Pacific"}
)

func (p *Provider) boxscoreFor(g domaingames.Game) boxscore.Boxscore {
	list, _ := p.Teams(context.Background(), "")
	dir := teams.NewDirectory(list)
	home := dir.MustLookup(g.HomeTeamID)
	away := dir.MustLookup(g.AwayTeamID)

	box := boxscore.Boxscore{
		GameID:    g.ID,
		StartTime: g.StartTime,
		StartDate: g.StartDate,
		Arena:     boxscore.Arena{Name: home.City + " Arena", City: home.City, Country: "USA"},
		Broadcasters: boxscore.Broadcasters{
			Home: []string{home.Tricode + " Sports"},
			Away: []string{away.Tricode + " Sports"},
		},
		Home: boxscore.TeamLine{TeamID: home.ID, Tricode: home.Tricode, Score: g.Score.Home},
		Away: boxscore.TeamLine{TeamID: away.ID, Tricode: away.Tricode, Score: g.Score.Away},
	}
	if p.file != nil {
		p.file.decorate(g.ID, &box)
	}
	if g.HasScore() && len(box.Home.Linescore) == 0 {
		box.Period = 4
		box.Home.Linescore = splitQuarters(g.Score.Home)
		box.Away.Linescore = splitQuarters(g.Score.Away)
		box.Home.Totals.Points = g.Score.Home
		box.Away.Totals.Points = g.Score.Away
	}
	return box
}

// splitQuarters spreads points over four quarters, remainder in the fourth.
func splitQuarters(points int) []int {
	q := points / 4
	return []int{q, q, q, points - 3*q}
}
