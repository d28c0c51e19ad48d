// Package render turns box scores into thread titles and bodies. Output is a
// pure function of its inputs so unchanged data renders byte-identical text.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/boxscore"
	domainthreads "github.com/preston-bernstein/nba-gamethread-bot/internal/domain/threads"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/teams"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/timeutil"
)

const streamFooter = "[Reddit Stream](https://reddit-stream.com/comments/auto) (You must click this link from the comment page.)\n"

// Renderer formats threads from the tracked team's point of view.
type Renderer struct {
	tricode string
	zones   []timeutil.Zone
}

// New builds a Renderer for the team with the given tricode.
func New(trackedTricode string) *Renderer {
	return &Renderer{
		tricode: strings.ToUpper(trackedTricode),
		zones:   timeutil.USZones(),
	}
}

// Render produces the title and body for a thread kind.
func (r *Renderer) Render(kind domainthreads.Kind, box boxscore.Boxscore, dir teams.Directory) (string, string, error) {
	switch kind {
	case domainthreads.KindGameThread:
		title, body := r.GameThread(box, dir)
		return title, body, nil
	case domainthreads.KindPostGameThread:
		title, body := r.PostGameThread(box, dir)
		return title, body, nil
	default:
		return "", "", fmt.Errorf("render: unknown thread kind %q", kind)
	}
}

// sides returns the tracked team's line, the opponent's line and whether the
// tracked team is at home.
func (r *Renderer) sides(box boxscore.Boxscore) (us, them boxscore.TeamLine, home bool) {
	if strings.EqualFold(box.Away.Tricode, r.tricode) {
		return box.Away, box.Home, false
	}
	return box.Home, box.Away, true
}

// GameThread renders the pre-game thread.
func (r *Renderer) GameThread(box boxscore.Boxscore, dir teams.Directory) (string, string) {
	us, them, home := r.sides(box)
	usTeam := dir.MustLookup(us.TeamID)
	themTeam := dir.MustLookup(them.TeamID)

	sign := "@"
	usBroadcast, themBroadcast := box.Broadcasters.Away, box.Broadcasters.Home
	if home {
		sign = "vs"
		usBroadcast, themBroadcast = box.Broadcasters.Home, box.Broadcasters.Away
	}

	location := strings.TrimSpace(fmt.Sprintf("%s, %s %s", box.Arena.City, box.Arena.StateAbbr, box.Arena.Country))
	times := make([]string, len(r.zones))
	for i, z := range r.zones {
		times[i] = timeutil.FormatClock(box.StartTime, z.Location) + " " + z.Label
	}

	var b strings.Builder
	b.WriteString("##### General Information\n\n")
	b.WriteString("**TIME**|**BROADCAST**|**Location and Subreddit**|\n")
	b.WriteString(":------------|:------------------------------------|:-------------------|\n")
	fmt.Fprintf(&b, "%s | National Broadcast: %s | %s|\n", times[0], first(box.Broadcasters.National), location)
	fmt.Fprintf(&b, "%s | %s Broadcast: %s | %s|\n", times[1], usTeam.Nickname, first(usBroadcast), box.Arena.Name)
	fmt.Fprintf(&b, "%s | %s Broadcast: %s | r/%s|\n", times[2], themTeam.Nickname, first(themBroadcast), Subreddit(usTeam.Nickname))
	fmt.Fprintf(&b, "%s | | r/%s|\n", times[3], Subreddit(themTeam.Nickname))

	if ls, ok := linescore(box, dir); ok {
		b.WriteString("\n##### Score\n\n")
		b.WriteString(ls)
		b.WriteString("\n")
	}

	b.WriteString("\n-----\n\n")
	b.WriteString(streamFooter)

	date := timeutil.LongDate(box.StartTime)
	title := fmt.Sprintf("%s The %s (%s) %s The %s (%s) - (%s)",
		domainthreads.KindGameThread.Marker(),
		usTeam.FullName, us.Record(),
		sign,
		themTeam.FullName, them.Record(),
		date,
	)
	return title, b.String()
}

// PostGameThread renders the recap thread.
func (r *Renderer) PostGameThread(box boxscore.Boxscore, dir teams.Directory) (string, string) {
	return r.postGameTitle(box, dir), r.postGameBody(box, dir)
}

func (r *Renderer) postGameTitle(box boxscore.Boxscore, dir teams.Directory) string {
	winner, loser := box.Home, box.Away
	if box.Away.Score > box.Home.Score {
		winner, loser = box.Away, box.Home
	}
	us, _, _ := r.sides(box)
	verb := defeatVerb(box.GameID, winner.TeamID == us.TeamID, winner.Score-loser.Score)

	overtime := ""
	switch ot := box.Overtimes(); {
	case ot == 1:
		overtime = " in OT"
	case ot > 1:
		overtime = fmt.Sprintf(" in %dOTs", ot)
	}

	return fmt.Sprintf("%s The %s (%s) %s the %s (%s)%s, %d-%d",
		domainthreads.KindPostGameThread.Marker(),
		dir.MustLookup(winner.TeamID).FullName, winner.Record(),
		verb,
		dir.MustLookup(loser.TeamID).FullName, loser.Record(),
		overtime,
		winner.Score, loser.Score,
	)
}

func (r *Renderer) postGameBody(box boxscore.Boxscore, dir teams.Directory) string {
	home := dir.MustLookup(box.Home.TeamID)
	away := dir.MustLookup(box.Away.TeamID)

	var b strings.Builder
	b.WriteString("||\n|:-:|\n")
	fmt.Fprintf(&b, "|[](/r/%s) **%d - %d** [](/r/%s)|\n", Subreddit(away.Nickname), box.Away.Score, box.Home.Score, Subreddit(home.Nickname))
	fmt.Fprintf(&b, "|**Box Score: [NBA](https://www.nba.com/game/%s-vs-%s-%s)**|\n",
		strings.ToLower(box.Away.Tricode), strings.ToLower(box.Home.Tricode), box.GameID)

	b.WriteString("\n||\n|:-:|\n|**GAME SUMMARY**|\n")
	fmt.Fprintf(&b, "|**Location:** %s (%s), **Clock:** %s|\n", box.Arena.Name, box.Attendance, box.Clock)
	fmt.Fprintf(&b, "|**Officials:** %s|\n", joinAnd(box.Officials))

	if ls, ok := linescore(box, dir); ok {
		b.WriteString("\n")
		b.WriteString(ls)
		b.WriteString("\n")
	}

	b.WriteString("\n**TEAM STATS**\n\n")
	b.WriteString("|**Team**|**PTS**|**FG**|**FG%**|**3P**|**3P%**|**FT**|**FT%**|**OREB**|**TREB**|**AST**|**PF**|**STL**|**TO**|**BLK**|\n")
	b.WriteString("|:--|:--|:--|:--|:--|:--|:--|:--|:--|:--|:--|:--|:--|:--|:--|\n")
	for _, side := range []struct {
		team teams.Team
		line boxscore.TeamLine
	}{{away, box.Away}, {home, box.Home}} {
		t := side.line.Totals
		fmt.Fprintf(&b, "|%s|%d|%d-%d|%s%%|%d-%d|%s%%|%d-%d|%s%%|%d|%d|%d|%d|%d|%d|%d|\n",
			side.team.FullName, t.Points, t.FGM, t.FGA, t.FGP, t.TPM, t.TPA, t.TPP, t.FTM, t.FTA, t.FTP,
			t.OffReb, t.TotReb, t.Assists, t.Fouls, t.Steals, t.Turnovers, t.Blocks)
	}

	b.WriteString("\n|**Team**|**Biggest Lead**|**Longest Run**|**PTS: In Paint**|**PTS: Off TOs**|**PTS: Fastbreak**|\n")
	b.WriteString("|:--|:--|:--|:--|:--|:--|\n")
	for _, side := range []struct {
		team teams.Team
		line boxscore.TeamLine
	}{{away, box.Away}, {home, box.Home}} {
		t := side.line.Totals
		fmt.Fprintf(&b, "|%s|%s|%d|%d|%d|%d|\n",
			side.team.FullName, plusMinus(t.BiggestLead), t.LongestRun, t.PointsInPaint, t.PointsOffTurnovers, t.FastBreakPoints)
	}

	b.WriteString("\n**TEAM LEADERS**\n\n")
	b.WriteString("|**Team**|**Points**|**Rebounds**|**Assists**|\n")
	b.WriteString("|:--|:--|:--|:--|\n")
	for _, side := range []struct {
		team teams.Team
		line boxscore.TeamLine
	}{{away, box.Away}, {home, box.Home}} {
		l := side.line.Leaders
		fmt.Fprintf(&b, "|%s|**%d** %s|**%d** %s|**%d** %s|\n",
			side.team.FullName,
			l.Points.Value, l.Points.Name(),
			l.Rebounds.Value, l.Rebounds.Name(),
			l.Assists.Value, l.Assists.Name())
	}

	b.WriteString("\n**PLAYER STATS**\n")
	writePlayers(&b, away, box.Away)
	writePlayers(&b, home, box.Home)
	return b.String()
}

func writePlayers(b *strings.Builder, team teams.Team, line boxscore.TeamLine) {
	fmt.Fprintf(b, "\n**[](/%s) %s**|**MIN**|**FGM-A**|**3PM-A**|**FTM-A**|**ORB**|**DRB**|**REB**|**AST**|**STL**|**BLK**|**TO**|**PF**|**+/-**|**PTS**|\n",
		line.Tricode, strings.ToUpper(team.Nickname))
	b.WriteString("|:--|:--|:--|:--|:--|:--|:--|:--|:--|:--|:--|:--|:--|:--|:--|\n")
	for _, p := range line.Players {
		name := p.Name
		if p.Starter() {
			name += "^" + p.Position
		}
		fmt.Fprintf(b, "|%s|%s|%d-%d|%d-%d|%d-%d|%d|%d|%d|%d|%d|%d|%d|%d|%s|%d|\n",
			name, p.Minutes, p.FGM, p.FGA, p.TPM, p.TPA, p.FTM, p.FTA,
			p.OffReb, p.DefReb, p.TotReb, p.Assists, p.Steals, p.Blocks, p.Turnovers, p.Fouls,
			plusMinus(p.PlusMinus), p.Points)
	}
}

// linescore renders points per period, away team first. At least four
// periods are shown; unplayed ones render as "-".
func linescore(box boxscore.Boxscore, dir teams.Directory) (string, bool) {
	periods := len(box.Home.Linescore)
	if len(box.Away.Linescore) > periods {
		periods = len(box.Away.Linescore)
	}
	if periods == 0 {
		return "", false
	}
	cols := periods
	if cols < 4 {
		cols = 4
	}

	var header, align strings.Builder
	header.WriteString("|**Team**|")
	align.WriteString("|:---|")
	for p := 1; p <= cols; p++ {
		if p <= 4 {
			fmt.Fprintf(&header, "**Q%d**|", p)
		} else {
			fmt.Fprintf(&header, "**OT%d**|", p-4)
		}
		align.WriteString(":--|")
	}
	header.WriteString("**Total**|")
	align.WriteString(":--|")

	row := func(line boxscore.TeamLine) string {
		var s strings.Builder
		fmt.Fprintf(&s, "|%s|", dir.MustLookup(line.TeamID).FullName)
		for p := 0; p < cols; p++ {
			if p < len(line.Linescore) {
				s.WriteString(strconv.Itoa(line.Linescore[p]))
			} else {
				s.WriteString("-")
			}
			s.WriteString("|")
		}
		fmt.Fprintf(&s, "%d|", line.Score)
		return s.String()
	}

	return strings.Join([]string{header.String(), align.String(), row(box.Away), row(box.Home)}, "\n"), true
}

func plusMinus(n int) string {
	if n > 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

func first(list []string) string {
	if len(list) == 0 {
		return "N/A"
	}
	return list[0]
}

func joinAnd(names []string) string {
	switch len(names) {
	case 0:
		return "N/A"
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}
