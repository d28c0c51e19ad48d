package providers

import (
	"context"

	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/boxscore"
	domaingames "github.com/preston-bernstein/nba-gamethread-bot/internal/domain/games"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/players"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/standings"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/teams"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/upstream"
)

// ErrProviderUnavailable is returned when no provider was configured.
var ErrProviderUnavailable = upstream.ErrUnavailable

// ScheduleProvider fetches the tracked team's season schedule.
// An empty season asks for the provider's current season.
type ScheduleProvider interface {
	CurrentSeason(ctx context.Context) (string, error)
	Schedule(ctx context.Context, team, season string) (domaingames.Schedule, error)
}

// BoxscoreProvider fetches per-game stats. date is the game's YYYYMMDD
// start date in the league's home timezone.
type BoxscoreProvider interface {
	Boxscore(ctx context.Context, date, gameID string) (boxscore.Boxscore, error)
}

// TeamProvider fetches the league's teams for a season.
type TeamProvider interface {
	Teams(ctx context.Context, season string) ([]teams.Team, error)
}

// StandingsProvider fetches the current conference standings.
type StandingsProvider interface {
	Standings(ctx context.Context) (standings.Conferences, error)
}

// RosterProvider fetches a team's players for a season.
type RosterProvider interface {
	Roster(ctx context.Context, team, season string) ([]players.Player, error)
}

// DataProvider combines all provider capabilities.
type DataProvider interface {
	ScheduleProvider
	BoxscoreProvider
	TeamProvider
	StandingsProvider
	RosterProvider
}
