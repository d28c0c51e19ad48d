package testutil

import (
	"context"
	"sync"

	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/boxscore"
	domaingames "github.com/preston-bernstein/nba-gamethread-bot/internal/domain/games"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/players"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/standings"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/teams"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/upstream"
)

// StubProvider returns canned data and counts calls.
type StubProvider struct {
	Season       string
	ScheduleVal  domaingames.Schedule
	BoxscoreVal  boxscore.Boxscore
	TeamsVal     []teams.Team
	StandingsVal standings.Conferences
	RosterVal    []players.Player

	ScheduleErr  error
	BoxscoreErr  error
	TeamsErr     error
	StandingsErr error
	RosterErr    error

	mu            sync.Mutex
	scheduleCalls int
	boxscoreCalls int
}

func (p *StubProvider) CurrentSeason(ctx context.Context) (string, error) {
	_ = ctx
	if p.Season == "" {
		return "2023", nil
	}
	return p.Season, nil
}

func (p *StubProvider) Schedule(ctx context.Context, team, season string) (domaingames.Schedule, error) {
	_ = ctx
	p.mu.Lock()
	p.scheduleCalls++
	p.mu.Unlock()
	if p.ScheduleErr != nil {
		return domaingames.Schedule{}, p.ScheduleErr
	}
	return p.ScheduleVal, nil
}

func (p *StubProvider) Boxscore(ctx context.Context, date, gameID string) (boxscore.Boxscore, error) {
	_ = ctx
	p.mu.Lock()
	p.boxscoreCalls++
	p.mu.Unlock()
	if p.BoxscoreErr != nil {
		return boxscore.Boxscore{}, p.BoxscoreErr
	}
	return p.BoxscoreVal, nil
}

func (p *StubProvider) Teams(ctx context.Context, season string) ([]teams.Team, error) {
	_ = ctx
	if p.TeamsErr != nil {
		return nil, p.TeamsErr
	}
	if p.TeamsVal == nil {
		return SampleTeams(), nil
	}
	return p.TeamsVal, nil
}

func (p *StubProvider) Standings(ctx context.Context) (standings.Conferences, error) {
	_ = ctx
	if p.StandingsErr != nil {
		return standings.Conferences{}, p.StandingsErr
	}
	return p.StandingsVal, nil
}

func (p *StubProvider) Roster(ctx context.Context, team, season string) ([]players.Player, error) {
	_ = ctx
	if p.RosterErr != nil {
		return nil, p.RosterErr
	}
	return p.RosterVal, nil
}

// ScheduleCalls reports how many schedules were fetched.
func (p *StubProvider) ScheduleCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.scheduleCalls
}

// BoxscoreCalls reports how many box scores were fetched.
func (p *StubProvider) BoxscoreCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.boxscoreCalls
}

// UnavailableProvider fails every call with upstream.ErrUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) CurrentSeason(context.Context) (string, error) {
	return "", upstream.ErrUnavailable
}

func (UnavailableProvider) Schedule(context.Context, string, string) (domaingames.Schedule, error) {
	return domaingames.Schedule{}, upstream.ErrUnavailable
}

func (UnavailableProvider) Boxscore(context.Context, string, string) (boxscore.Boxscore, error) {
	return boxscore.Boxscore{}, upstream.ErrUnavailable
}

func (UnavailableProvider) Teams(context.Context, string) ([]teams.Team, error) {
	return nil, upstream.ErrUnavailable
}

func (UnavailableProvider) Standings(context.Context) (standings.Conferences, error) {
	return standings.Conferences{}, upstream.ErrUnavailable
}

func (UnavailableProvider) Roster(context.Context, string, string) ([]players.Player, error) {
	return nil, upstream.ErrUnavailable
}
