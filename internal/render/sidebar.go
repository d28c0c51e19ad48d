package render

import (
	"fmt"
	"sort"
	"strings"
	"time"

	domaingames "github.com/preston-bernstein/nba-gamethread-bot/internal/domain/games"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/players"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/standings"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/domain/teams"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/timeutil"
)

// Sidebar section names. Each one owns the text between [](#Start<Name>) and
// [](#End<Name>) in the subreddit description.
const (
	SectionSchedule      = "Schedule"
	SectionTankStandings = "TankStandings"
	SectionEastStandings = "EastStandings"
	SectionWestStandings = "WestStandings"
	SectionRoster        = "Roster"
)

const (
	schedulePast   = 4
	scheduleFuture = 7
	tankRows       = 10
)

// SidebarData is what the sidebar tables are drawn from.
type SidebarData struct {
	Schedule  domaingames.Schedule
	Teams     teams.Directory
	Standings standings.Conferences
	Roster    []players.Player
}

// Section is the rendered text of one marker-delimited sidebar block.
type Section struct {
	Name string
	Text string
}

// Sidebar renders every sidebar section in the order they are spliced.
func Sidebar(now time.Time, data SidebarData) []Section {
	return []Section{
		{Name: SectionSchedule, Text: ScheduleTable(now, data.Schedule, data.Teams)},
		{Name: SectionTankStandings, Text: StandingsTable(data.Standings.Tank(tankRows), data.Teams)},
		{Name: SectionEastStandings, Text: StandingsTable(data.Standings.East, data.Teams)},
		{Name: SectionWestStandings, Text: StandingsTable(data.Standings.West, data.Teams)},
		{Name: SectionRoster, Text: RosterTable(data.Roster)},
	}
}

// SidebarTemplate is an empty description holding every section's markers.
func SidebarTemplate() string {
	names := []string{SectionSchedule, SectionTankStandings, SectionEastStandings, SectionWestStandings, SectionRoster}
	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteString("\n\n")
		}
		fmt.Fprintf(&b, "[](#Start%s)[](#End%s)", name, name)
	}
	return b.String()
}

// ScheduleTable lists the games around the most recently completed one:
// twelve rows in total, with more past games once fewer remain ahead.
func ScheduleTable(now time.Time, sched domaingames.Schedule, dir teams.Directory) string {
	last := sched.LastCompletedIndex
	end := min(last+scheduleFuture, len(sched.Games))
	start := max(0, last-(schedulePast+(scheduleFuture-(end-last-1))))

	var b strings.Builder
	b.WriteString("Date|Team|Loc|Time/Outcome\n")
	b.WriteString(":--:|:--:|:--:|:--:")
	for i := start; i < end; i++ {
		g := sched.Games[i]
		opponent := dir.MustLookup(g.OpponentID())
		loc := "Away"
		if g.IsHomeTeam {
			loc = "Home"
		}
		fmt.Fprintf(&b, "\n%s|[](/r/%s)|%s|%s", scheduleDate(now, g.StartTime), Subreddit(opponent.Nickname), loc, timeOrOutcome(g))
	}
	return b.String()
}

func scheduleDate(now, start time.Time) string {
	switch timeutil.DayOffset(start, now) {
	case 0:
		return "Today"
	case -1:
		return "Yesterday"
	case 1:
		return "Tomorrow"
	default:
		return start.In(timeutil.Eastern()).Format(timeutil.ShortDateLayout)
	}
}

func timeOrOutcome(g domaingames.Game) string {
	if !g.HasScore() {
		return g.StartTime.In(timeutil.Eastern()).Format(timeutil.ShortClockLayout)
	}
	us, them := g.Score.Away, g.Score.Home
	if g.IsHomeTeam {
		us, them = g.Score.Home, g.Score.Away
	}
	if us > them {
		return fmt.Sprintf("W %d-%d", us, them)
	}
	return fmt.Sprintf("L %d-%d", them, us)
}

// StandingsTable renders ranked rows with a dash for the leader's games behind.
func StandingsTable(rows []standings.Standing, dir teams.Directory) string {
	var b strings.Builder
	b.WriteString(" | | |Record|GB\n")
	b.WriteString(":--:|:--:|:--|:--:|:--:")
	for i, row := range rows {
		team := dir.MustLookup(row.TeamID)
		gb := row.GamesBehind
		if gb == "0" {
			gb = "-"
		}
		fmt.Fprintf(&b, "\n%d|[](/r/%s)|%s|%s|%s", i+1, Subreddit(team.Nickname), team.Nickname, row.Record(), gb)
	}
	return b.String()
}

// RosterTable lists players by name with dual positions written "F/G".
func RosterTable(list []players.Player) string {
	sorted := make([]players.Player, len(list))
	copy(sorted, list)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name() < sorted[j].Name()
	})

	var b strings.Builder
	b.WriteString("No.|Name|Position\n")
	b.WriteString(":--:|:--|:--:")
	for _, p := range sorted {
		fmt.Fprintf(&b, "\n%s|%s|%s", p.Jersey, p.Name(), strings.ReplaceAll(p.Position, "-", "/"))
	}
	return b.String()
}

// Splice replaces everything from the section's start marker through its end
// marker. Descriptions without both markers, in order, come back unchanged.
func Splice(description string, section Section) string {
	startMarker := "[](#Start" + section.Name + ")"
	endMarker := "[](#End" + section.Name + ")"
	start := strings.Index(description, startMarker)
	if start == -1 {
		return description
	}
	end := strings.Index(description[start:], endMarker)
	if end == -1 {
		return description
	}
	end += start + len(endMarker)
	return description[:start] + startMarker + "\n\n" + section.Text + "\n\n" + endMarker + description[end:]
}
