package boxscore

import (
	"strconv"
	"time"
)

// Boxscore is the per-game data consumed by the thread renderer.
type Boxscore struct {
	GameID       string       `json:"gameId"`
	StartTime    time.Time    `json:"startTime"`
	StartDate    string       `json:"startDate"`
	Clock        string       `json:"clock"`
	Period       int          `json:"period"`
	Attendance   string       `json:"attendance"`
	Arena        Arena        `json:"arena"`
	Officials    []string     `json:"officials"`
	Broadcasters Broadcasters `json:"broadcasters"`
	Home         TeamLine     `json:"home"`
	Away         TeamLine     `json:"away"`
}

// Arena describes where the game is played.
type Arena struct {
	Name      string `json:"name"`
	City      string `json:"city"`
	StateAbbr string `json:"stateAbbr"`
	Country   string `json:"country"`
}

// Broadcasters lists TV outlets by audience.
type Broadcasters struct {
	National []string `json:"national"`
	Home     []string `json:"home"`
	Away     []string `json:"away"`
}

// TeamLine is one side of the box score.
type TeamLine struct {
	TeamID    string       `json:"teamId"`
	Tricode   string       `json:"tricode"`
	Wins      int          `json:"wins"`
	Losses    int          `json:"losses"`
	Score     int          `json:"score"`
	Linescore []int        `json:"linescore"`
	Totals    Totals       `json:"totals"`
	Leaders   Leaders      `json:"leaders"`
	Players   []PlayerLine `json:"players"`
}

// Record formats the win-loss record, e.g. "10-4".
func (t TeamLine) Record() string {
	return strconv.Itoa(t.Wins) + "-" + strconv.Itoa(t.Losses)
}

// Totals are team-level aggregates. Percentages are preformatted by the feed.
type Totals struct {
	Points             int    `json:"points"`
	FGM                int    `json:"fgm"`
	FGA                int    `json:"fga"`
	FGP                string `json:"fgp"`
	TPM                int    `json:"tpm"`
	TPA                int    `json:"tpa"`
	TPP                string `json:"tpp"`
	FTM                int    `json:"ftm"`
	FTA                int    `json:"fta"`
	FTP                string `json:"ftp"`
	OffReb             int    `json:"offReb"`
	TotReb             int    `json:"totReb"`
	Assists            int    `json:"assists"`
	Fouls              int    `json:"fouls"`
	Steals             int    `json:"steals"`
	Turnovers          int    `json:"turnovers"`
	Blocks             int    `json:"blocks"`
	BiggestLead        int    `json:"biggestLead"`
	LongestRun         int    `json:"longestRun"`
	PointsInPaint      int    `json:"pointsInPaint"`
	PointsOffTurnovers int    `json:"pointsOffTurnovers"`
	FastBreakPoints    int    `json:"fastBreakPoints"`
}

// Leader is the top value in a category and who holds it.
type Leader struct {
	Value   int      `json:"value"`
	Players []string `json:"players"`
}

// Name returns the first leader, or an empty string.
func (l Leader) Name() string {
	if len(l.Players) == 0 {
		return ""
	}
	return l.Players[0]
}

// Leaders groups the team leaders shown in the recap.
type Leaders struct {
	Points   Leader `json:"points"`
	Rebounds Leader `json:"rebounds"`
	Assists  Leader `json:"assists"`
}

// PlayerLine is a single player's stat line. Position is set only for starters.
type PlayerLine struct {
	Name      string `json:"name"`
	Position  string `json:"position,omitempty"`
	Minutes   string `json:"minutes"`
	FGM       int    `json:"fgm"`
	FGA       int    `json:"fga"`
	TPM       int    `json:"tpm"`
	TPA       int    `json:"tpa"`
	FTM       int    `json:"ftm"`
	FTA       int    `json:"fta"`
	OffReb    int    `json:"offReb"`
	DefReb    int    `json:"defReb"`
	TotReb    int    `json:"totReb"`
	Assists   int    `json:"assists"`
	Steals    int    `json:"steals"`
	Blocks    int    `json:"blocks"`
	Turnovers int    `json:"turnovers"`
	Fouls     int    `json:"fouls"`
	PlusMinus int    `json:"plusMinus"`
	Points    int    `json:"points"`
}

// Starter reports whether the player started the game.
func (p PlayerLine) Starter() bool {
	return p.Position != ""
}

// Overtimes returns how many overtime periods were played.
func (b Boxscore) Overtimes() int {
	periods := len(b.Home.Linescore)
	if len(b.Away.Linescore) > periods {
		periods = len(b.Away.Linescore)
	}
	if periods <= 4 {
		return 0
	}
	return periods - 4
}
