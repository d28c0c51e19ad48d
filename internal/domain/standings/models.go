package standings

import (
	"sort"
	"strconv"
	"strings"
)

// Standing is one team's line in a standings table.
type Standing struct {
	TeamID      string  `json:"teamId"`
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
	LossPct     float64 `json:"lossPct"`
	GamesBehind string  `json:"gamesBehind"`
}

// Record formats the win-loss record, e.g. "49-17".
func (s Standing) Record() string {
	return strconv.Itoa(s.Wins) + "-" + strconv.Itoa(s.Losses)
}

// Conferences holds both conference tables in rank order.
type Conferences struct {
	East []Standing `json:"east"`
	West []Standing `json:"west"`
}

// League returns every team, east before west, in table order.
func (c Conferences) League() []Standing {
	out := make([]Standing, 0, len(c.East)+len(c.West))
	out = append(out, c.East...)
	return append(out, c.West...)
}

// Tank ranks the league by loss percentage, worst first, and keeps at most
// limit rows. Games behind is measured from the worst team. Ties keep table
// order.
func (c Conferences) Tank(limit int) []Standing {
	rows := c.League()
	if len(rows) == 0 {
		return rows
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].LossPct > rows[j].LossPct
	})
	worst := rows[0]
	for i := range rows {
		gb := float64(abs(worst.Wins-rows[i].Wins)+abs(worst.Losses-rows[i].Losses)) / 2
		rows[i].GamesBehind = FormatGamesBehind(gb)
	}
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

// FormatGamesBehind renders half games with one decimal and whole games
// without, e.g. "1.5" and "5".
func FormatGamesBehind(gb float64) string {
	return strings.TrimSuffix(strconv.FormatFloat(gb, 'f', 1, 64), ".0")
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
