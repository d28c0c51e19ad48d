package nbadata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/boxscore"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/games"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/players"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/standings"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/teams"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/logging"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/upstream"
)

// Config controls how the client reaches the league data feed.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	UserAgent  string
	Logger     *slog.Logger
}

// Client fetches schedules, box scores, teams, standings and rosters from the league data feed
// and maps them to domain models.
type Client struct {
	feed   feedTransport
	logger *slog.Logger
}

// NewClient constructs a data feed client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		feed:   newFeedTransport(cfg),
		logger: cfg.Logger,
	}
}

// Name identifies the provider in logs and metrics.
func (c *Client) Name() string {
	return providerName
}

// CurrentSeason returns the season year the feed considers current.
func (c *Client) CurrentSeason(ctx context.Context) (string, error) {
	var payload todayResponse
	if err := c.getJSON(ctx, "/prod/v1/today.json", &payload); err != nil {
		return "", err
	}
	season := strings.TrimSpace(string(payload.TeamSitesOnly.SeasonYear))
	if season == "" {
		return "", malformed("today.json missing seasonYear")
	}
	return season, nil
}

// Schedule returns the team's schedule for the season.
func (c *Client) Schedule(ctx context.Context, team, season string) (games.Schedule, error) {
	season, err := c.resolveSeason(ctx, season)
	if err != nil {
		return games.Schedule{}, err
	}

	path := fmt.Sprintf("/prod/v1/%s/teams/%s/schedule.json", url.PathEscape(season), url.PathEscape(team))
	var payload scheduleResponse
	if err := c.getJSON(ctx, path, &payload); err != nil {
		return games.Schedule{}, err
	}

	sched, err := mapSchedule(team, season, payload)
	if err != nil {
		return games.Schedule{}, err
	}
	logging.Debug(logging.FromContext(ctx, c.logger), "schedule fetched",
		logging.FieldProvider, providerName,
		logging.FieldTeam, team,
		logging.FieldSeason, season,
		logging.FieldCount, len(sched.Games),
	)
	return sched, nil
}

// Boxscore returns the box score for a game. date is YYYYMMDD.
func (c *Client) Boxscore(ctx context.Context, date, gameID string) (boxscore.Boxscore, error) {
	path := fmt.Sprintf("/prod/v1/%s/%s_boxscore.json", url.PathEscape(date), url.PathEscape(gameID))
	var payload boxscoreResponse
	if err := c.getJSON(ctx, path, &payload); err != nil {
		return boxscore.Boxscore{}, err
	}
	return mapBoxscore(payload)
}

// Teams returns the league's franchises for the season.
func (c *Client) Teams(ctx context.Context, season string) ([]teams.Team, error) {
	season, err := c.resolveSeason(ctx, season)
	if err != nil {
		return nil, err
	}
	var payload teamsResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/prod/v2/%s/teams.json", url.PathEscape(season)), &payload); err != nil {
		return nil, err
	}
	return mapTeams(payload), nil
}

// Standings returns the current conference standings in rank order.
func (c *Client) Standings(ctx context.Context) (standings.Conferences, error) {
	var payload standingsResponse
	if err := c.getJSON(ctx, "/prod/v1/current/standings_conference.json", &payload); err != nil {
		return standings.Conferences{}, err
	}
	return mapStandings(payload)
}

// Roster returns the team's players for the season. The feed only lists
// roster ids, so they are joined against the league player list.
func (c *Client) Roster(ctx context.Context, team, season string) ([]players.Player, error) {
	season, err := c.resolveSeason(ctx, season)
	if err != nil {
		return nil, err
	}
	var league playersResponse
	if err := c.getJSON(ctx, fmt.Sprintf("/prod/v1/%s/players.json", url.PathEscape(season)), &league); err != nil {
		return nil, err
	}
	var roster rosterResponse
	path := fmt.Sprintf("/prod/v1/%s/teams/%s/roster.json", url.PathEscape(season), url.PathEscape(team))
	if err := c.getJSON(ctx, path, &roster); err != nil {
		return nil, err
	}
	out := mapRoster(league, roster)
	logging.Debug(logging.FromContext(ctx, c.logger), "roster fetched",
		logging.FieldProvider, providerName,
		logging.FieldTeam, team,
		logging.FieldSeason, season,
		logging.FieldCount, len(out),
	)
	return out, nil
}

func (c *Client) resolveSeason(ctx context.Context, season string) (string, error) {
	if season != "" {
		return season, nil
	}
	return c.CurrentSeason(ctx)
}

func (c *Client) getJSON(ctx context.Context, path string, dest any) error {
	resp, err := c.feed.get(ctx, path)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return upstream.FromResponse(providerName, resp, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return malformed("decode %s: %v", path, err)
	}
	return nil
}
