package nbadata

import (
	"fmt"
	"strings"
	"time"

	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/boxscore"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/games"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/players"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/standings"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/teams"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/upstream"
)

func malformed(format string, args ...any) error {
	return &upstream.MalformedError{Service: providerName, Reason: fmt.Sprintf(format, args...)}
}

func mapSchedule(team, season string, payload scheduleResponse) (games.Schedule, error) {
	out := games.Schedule{
		TeamID: team,
		Season: season,
		Games:  make([]games.Game, 0, len(payload.League.Standard)),
	}
	for i, g := range payload.League.Standard {
		mapped, err := mapGame(g)
		if err != nil {
			return games.Schedule{}, fmt.Errorf("schedule game %d: %w", i, err)
		}
		out.Games = append(out.Games, mapped)
	}

	if payload.League.LastStandardGamePlayedIndex == nil {
		if len(out.Games) > 0 {
			return games.Schedule{}, malformed("schedule missing lastStandardGamePlayedIndex")
		}
	} else {
		out.LastCompletedIndex = *payload.League.LastStandardGamePlayedIndex
	}
	return out, nil
}

func mapGame(g scheduleGame) (games.Game, error) {
	if strings.TrimSpace(g.GameID) == "" {
		return games.Game{}, malformed("game missing gameId")
	}
	start, err := parseStart(g.StartTimeUTC)
	if err != nil {
		return games.Game{}, malformed("game %s: %v", g.GameID, err)
	}
	home, err := g.HTeam.Score.intOrZero()
	if err != nil {
		return games.Game{}, malformed("game %s home score: %v", g.GameID, err)
	}
	away, err := g.VTeam.Score.intOrZero()
	if err != nil {
		return games.Game{}, malformed("game %s away score: %v", g.GameID, err)
	}
	return games.Game{
		ID:         g.GameID,
		URLCode:    g.GameURLCode,
		StartTime:  start,
		StartDate:  g.StartDateEastern,
		HomeTeamID: string(g.HTeam.TeamID),
		AwayTeamID: string(g.VTeam.TeamID),
		IsHomeTeam: g.IsHomeTeam,
		Score:      games.Score{Home: home, Away: away},
	}, nil
}

func parseStart(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("missing startTimeUTC")
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid startTimeUTC %q", raw)
	}
	return t.UTC(), nil
}

func mapTeams(payload teamsResponse) []teams.Team {
	out := make([]teams.Team, 0, len(payload.League.Standard))
	for _, t := range payload.League.Standard {
		if !t.IsNBAFranchise {
			continue
		}
		out = append(out, teams.Team{
			ID:         string(t.TeamID),
			Nickname:   t.Nickname,
			FullName:   t.FullName,
			Tricode:    t.Tricode,
			City:       t.City,
			URLName:    t.URLName,
			Conference: t.ConfName,
			Division:   t.DivName,
		})
	}
	return out
}

func mapStandings(payload standingsResponse) (standings.Conferences, error) {
	conf := payload.League.Standard.Conference
	east, err := mapStandingRows("east", conf.East)
	if err != nil {
		return standings.Conferences{}, err
	}
	west, err := mapStandingRows("west", conf.West)
	if err != nil {
		return standings.Conferences{}, err
	}
	return standings.Conferences{East: east, West: west}, nil
}

func mapStandingRows(conference string, rows []standingRow) ([]standings.Standing, error) {
	out := make([]standings.Standing, 0, len(rows))
	for i, row := range rows {
		if strings.TrimSpace(string(row.TeamID)) == "" {
			return nil, malformed("%s standings row %d missing teamId", conference, i)
		}
		wins, err := row.Win.intOrZero()
		if err != nil {
			return nil, malformed("%s standings %s wins: %v", conference, row.TeamID, err)
		}
		losses, err := row.Loss.intOrZero()
		if err != nil {
			return nil, malformed("%s standings %s losses: %v", conference, row.TeamID, err)
		}
		lossPct, err := row.LossPct.floatOrZero()
		if err != nil {
			return nil, malformed("%s standings %s lossPct: %v", conference, row.TeamID, err)
		}
		out = append(out, standings.Standing{
			TeamID:      string(row.TeamID),
			Wins:        wins,
			Losses:      losses,
			LossPct:     lossPct,
			GamesBehind: strings.TrimSpace(string(row.GamesBehind)),
		})
	}
	return out, nil
}

// mapRoster keeps the league players whose ids are on the team roster, in
// league list order.
func mapRoster(league playersResponse, roster rosterResponse) []players.Player {
	onRoster := make(map[string]struct{}, len(roster.League.Standard.Players))
	for _, p := range roster.League.Standard.Players {
		onRoster[string(p.PersonID)] = struct{}{}
	}
	out := make([]players.Player, 0, len(onRoster))
	for _, p := range league.League.Standard {
		if _, ok := onRoster[string(p.PersonID)]; !ok {
			continue
		}
		out = append(out, players.Player{
			ID:        string(p.PersonID),
			FirstName: strings.TrimSpace(p.FirstName),
			LastName:  strings.TrimSpace(p.LastName),
			Jersey:    strings.TrimSpace(string(p.Jersey)),
			Position:  strings.TrimSpace(p.Pos),
		})
	}
	return out
}

func mapBoxscore(payload boxscoreResponse) (boxscore.Boxscore, error) {
	basic := payload.BasicGameData
	if strings.TrimSpace(basic.GameID) == "" {
		return boxscore.Boxscore{}, malformed("boxscore missing gameId")
	}
	start, err := parseStart(basic.StartTimeUTC)
	if err != nil {
		return boxscore.Boxscore{}, malformed("boxscore %s: %v", basic.GameID, err)
	}

	home, err := mapGameTeam(basic.HTeam)
	if err != nil {
		return boxscore.Boxscore{}, malformed("boxscore %s home: %v", basic.GameID, err)
	}
	away, err := mapGameTeam(basic.VTeam)
	if err != nil {
		return boxscore.Boxscore{}, malformed("boxscore %s away: %v", basic.GameID, err)
	}

	officials := make([]string, 0, len(basic.Officials.Formatted))
	for _, o := range basic.Officials.Formatted {
		if o.FirstNameLastName != "" {
			officials = append(officials, o.FirstNameLastName)
		}
	}

	out := boxscore.Boxscore{
		GameID:     basic.GameID,
		StartTime:  start,
		StartDate:  basic.StartDateEastern,
		Clock:      basic.Clock,
		Period:     basic.Period.Current,
		Attendance: string(basic.Attendance),
		Arena: boxscore.Arena{
			Name:      basic.Arena.Name,
			City:      basic.Arena.City,
			StateAbbr: basic.Arena.StateAbbr,
			Country:   basic.Arena.Country,
		},
		Officials: officials,
		Broadcasters: boxscore.Broadcasters{
			National: broadcasterNames(basic.Watch.Broadcast.Broadcasters.National),
			Home:     broadcasterNames(basic.Watch.Broadcast.Broadcasters.HTeam),
			Away:     broadcasterNames(basic.Watch.Broadcast.Broadcasters.VTeam),
		},
		Home: home,
		Away: away,
	}

	if payload.Stats != nil {
		applyTeamStats(&out.Home, payload.Stats.HTeam)
		applyTeamStats(&out.Away, payload.Stats.VTeam)
		for _, p := range payload.Stats.ActivePlayers {
			line := mapPlayer(p)
			switch string(p.TeamID) {
			case out.Home.TeamID:
				out.Home.Players = append(out.Home.Players, line)
			case out.Away.TeamID:
				out.Away.Players = append(out.Away.Players, line)
			}
		}
	}
	return out, nil
}

func mapGameTeam(t gameTeam) (boxscore.TeamLine, error) {
	score, err := t.Score.intOrZero()
	if err != nil {
		return boxscore.TeamLine{}, err
	}
	line := make([]int, 0, len(t.Linescore))
	for _, period := range t.Linescore {
		pts, err := period.Score.intOrZero()
		if err != nil {
			return boxscore.TeamLine{}, err
		}
		line = append(line, pts)
	}
	return boxscore.TeamLine{
		TeamID:    string(t.TeamID),
		Tricode:   t.TriCode,
		Wins:      t.Win.lenient(),
		Losses:    t.Loss.lenient(),
		Score:     score,
		Linescore: line,
	}, nil
}

func applyTeamStats(line *boxscore.TeamLine, s teamStats) {
	tot := s.Totals
	line.Totals = boxscore.Totals{
		Points:             tot.Points.lenient(),
		FGM:                tot.FGM.lenient(),
		FGA:                tot.FGA.lenient(),
		FGP:                string(tot.FGP),
		TPM:                tot.TPM.lenient(),
		TPA:                tot.TPA.lenient(),
		TPP:                string(tot.TPP),
		FTM:                tot.FTM.lenient(),
		FTA:                tot.FTA.lenient(),
		FTP:                string(tot.FTP),
		OffReb:             tot.OffReb.lenient(),
		TotReb:             tot.TotReb.lenient(),
		Assists:            tot.Assists.lenient(),
		Fouls:              tot.PFouls.lenient(),
		Steals:             tot.Steals.lenient(),
		Turnovers:          tot.Turnovers.lenient(),
		Blocks:             tot.Blocks.lenient(),
		BiggestLead:        s.BiggestLead.lenient(),
		LongestRun:         s.LongestRun.lenient(),
		PointsInPaint:      s.PointsInPaint.lenient(),
		PointsOffTurnovers: s.PointsOffTurnovers.lenient(),
		FastBreakPoints:    s.FastBreakPoints.lenient(),
	}
	line.Leaders = boxscore.Leaders{
		Points:   mapLeader(s.Leaders.Points),
		Rebounds: mapLeader(s.Leaders.Rebounds),
		Assists:  mapLeader(s.Leaders.Assists),
	}
}

func mapLeader(l leader) boxscore.Leader {
	names := make([]string, 0, len(l.Players))
	for _, p := range l.Players {
		names = append(names, strings.TrimSpace(p.FirstName+" "+p.LastName))
	}
	return boxscore.Leader{Value: l.Value.lenient(), Players: names}
}

func mapPlayer(p playerStats) boxscore.PlayerLine {
	return boxscore.PlayerLine{
		Name:      strings.TrimSpace(p.FirstName + " " + p.LastName),
		Position:  strings.TrimSpace(p.Pos),
		Minutes:   p.Min,
		FGM:       p.FGM.lenient(),
		FGA:       p.FGA.lenient(),
		TPM:       p.TPM.lenient(),
		TPA:       p.TPA.lenient(),
		FTM:       p.FTM.lenient(),
		FTA:       p.FTA.lenient(),
		OffReb:    p.OffReb.lenient(),
		DefReb:    p.DefReb.lenient(),
		TotReb:    p.TotReb.lenient(),
		Assists:   p.Assists.lenient(),
		Steals:    p.Steals.lenient(),
		Blocks:    p.Blocks.lenient(),
		Turnovers: p.Turnovers.lenient(),
		Fouls:     p.PFouls.lenient(),
		PlusMinus: p.PlusMinus.lenient(),
		Points:    p.Points.lenient(),
	}
}

func broadcasterNames(list []broadcaster) []string {
	out := make([]string, 0, len(list))
	for _, b := range list {
		name := b.LongName
		if name == "" {
			name = b.ShortName
		}
		if name != "" {
			out = append(out, name)
		}
	}
	return out
}
