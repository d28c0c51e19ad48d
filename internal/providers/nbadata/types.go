package nbadata

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// flexString accepts the feed's mix of quoted and bare scalars.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	*f = flexString(b)
	return nil
}

// intOrZero parses the value, treating empty as zero.
func (f flexString) intOrZero() (int, error) {
	s := strings.TrimSpace(string(f))
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return n, nil
}

// floatOrZero parses the value as a decimal, treating empty as zero.
func (f flexString) floatOrZero() (float64, error) {
	s := strings.TrimSpace(string(f))
	if s == "" {
		return 0, nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	return n, nil
}

// lenient parses the value, ignoring garbage. Used for display-only stats.
func (f flexString) lenient() int {
	n, err := f.intOrZero()
	if err != nil {
		return 0
	}
	return n
}

type todayResponse struct {
	TeamSitesOnly struct {
		SeasonYear flexString `json:"seasonYear"`
	} `json:"teamSitesOnly"`
}

type scheduleResponse struct {
	League struct {
		LastStandardGamePlayedIndex *int           `json:"lastStandardGamePlayedIndex"`
		Standard                    []scheduleGame `json:"standard"`
	} `json:"league"`
}

type scheduleGame struct {
	GameID           string    `json:"gameId"`
	GameURLCode      string    `json:"gameUrlCode"`
	StartTimeUTC     string    `json:"startTimeUTC"`
	StartDateEastern string    `json:"startDateEastern"`
	IsHomeTeam       bool      `json:"isHomeTeam"`
	HTeam            teamScore `json:"hTeam"`
	VTeam            teamScore `json:"vTeam"`
}

type teamScore struct {
	TeamID flexString `json:"teamId"`
	Score  flexString `json:"score"`
}

type teamsResponse struct {
	League struct {
		Standard []teamResponse `json:"standard"`
	} `json:"league"`
}

type teamResponse struct {
	IsNBAFranchise bool       `json:"isNBAFranchise"`
	TeamID         flexString `json:"teamId"`
	City           string     `json:"city"`
	FullName       string     `json:"fullName"`
	Nickname       string     `json:"nickname"`
	Tricode        string     `json:"tricode"`
	URLName        string     `json:"urlName"`
	ConfName       string     `json:"confName"`
	DivName        string     `json:"divName"`
}

type standingsResponse struct {
	League struct {
		Standard struct {
			Conference struct {
				East []standingRow `json:"east"`
				West []standingRow `json:"west"`
			} `json:"conference"`
		} `json:"standard"`
	} `json:"league"`
}

type standingRow struct {
	TeamID      flexString `json:"teamId"`
	Win         flexString `json:"win"`
	Loss        flexString `json:"loss"`
	LossPct     flexString `json:"lossPct"`
	GamesBehind flexString `json:"gamesBehind"`
}

type playersResponse struct {
	League struct {
		Standard []playerResponse `json:"standard"`
	} `json:"league"`
}

type playerResponse struct {
	PersonID  flexString `json:"personId"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	Jersey    flexString `json:"jersey"`
	Pos       string     `json:"pos"`
}

type rosterResponse struct {
	League struct {
		Standard struct {
			Players []struct {
				PersonID flexString `json:"personId"`
			} `json:"players"`
		} `json:"standard"`
	} `json:"league"`
}

type boxscoreResponse struct {
	BasicGameData basicGameData `json:"basicGameData"`
	Stats         *statsData    `json:"stats"`
}

type basicGameData struct {
	GameID           string     `json:"gameId"`
	StartTimeUTC     string     `json:"startTimeUTC"`
	StartDateEastern string     `json:"startDateEastern"`
	Clock            string     `json:"clock"`
	Attendance       flexString `json:"attendance"`
	Period           struct {
		Current int `json:"current"`
	} `json:"period"`
	Arena struct {
		Name      string `json:"name"`
		City      string `json:"city"`
		StateAbbr string `json:"stateAbbr"`
		Country   string `json:"country"`
	} `json:"arena"`
	Officials struct {
		Formatted []struct {
			FirstNameLastName string `json:"firstNameLastName"`
		} `json:"formatted"`
	} `json:"officials"`
	Watch struct {
		Broadcast struct {
			Broadcasters struct {
				National []broadcaster `json:"national"`
				HTeam    []broadcaster `json:"hTeam"`
				VTeam    []broadcaster `json:"vTeam"`
			} `json:"broadcasters"`
		} `json:"broadcast"`
	} `json:"watch"`
	HTeam gameTeam `json:"hTeam"`
	VTeam gameTeam `json:"vTeam"`
}

type broadcaster struct {
	ShortName string `json:"shortName"`
	LongName  string `json:"longName"`
}

type gameTeam struct {
	TeamID    flexString `json:"teamId"`
	TriCode   string     `json:"triCode"`
	Win       flexString `json:"win"`
	Loss      flexString `json:"loss"`
	Score     flexString `json:"score"`
	Linescore []struct {
		Score flexString `json:"score"`
	} `json:"linescore"`
}

type statsData struct {
	HTeam         teamStats     `json:"hTeam"`
	VTeam         teamStats     `json:"vTeam"`
	ActivePlayers []playerStats `json:"activePlayers"`
}

type teamStats struct {
	BiggestLead        flexString `json:"biggestLead"`
	LongestRun         flexString `json:"longestRun"`
	PointsInPaint      flexString `json:"pointsInPaint"`
	PointsOffTurnovers flexString `json:"pointsOffTurnovers"`
	FastBreakPoints    flexString `json:"fastBreakPoints"`
	Totals             struct {
		Points    flexString `json:"points"`
		FGM       flexString `json:"fgm"`
		FGA       flexString `json:"fga"`
		FGP       flexString `json:"fgp"`
		TPM       flexString `json:"tpm"`
		TPA       flexString `json:"tpa"`
		TPP       flexString `json:"tpp"`
		FTM       flexString `json:"ftm"`
		FTA       flexString `json:"fta"`
		FTP       flexString `json:"ftp"`
		OffReb    flexString `json:"offReb"`
		TotReb    flexString `json:"totReb"`
		Assists   flexString `json:"assists"`
		PFouls    flexString `json:"pFouls"`
		Steals    flexString `json:"steals"`
		Turnovers flexString `json:"turnovers"`
		Blocks    flexString `json:"blocks"`
	} `json:"totals"`
	Leaders struct {
		Points   leader `json:"points"`
		Rebounds leader `json:"rebounds"`
		Assists  leader `json:"assists"`
	} `json:"leaders"`
}

type leader struct {
	Value   flexString `json:"value"`
	Players []struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
	} `json:"players"`
}

type playerStats struct {
	PersonID  flexString `json:"personId"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	TeamID    flexString `json:"teamId"`
	Pos       string     `json:"pos"`
	Min       string     `json:"min"`
	Points    flexString `json:"points"`
	FGM       flexString `json:"fgm"`
	FGA       flexString `json:"fga"`
	TPM       flexString `json:"tpm"`
	TPA       flexString `json:"tpa"`
	FTM       flexString `json:"ftm"`
	FTA       flexString `json:"fta"`
	OffReb    flexString `json:"offReb"`
	DefReb    flexString `json:"defReb"`
	TotReb    flexString `json:"totReb"`
	Assists   flexString `json:"assists"`
	Steals    flexString `json:"steals"`
	Blocks    flexString `json:"blocks"`
	Turnovers flexString `json:"turnovers"`
	PFouls    flexString `json:"pFouls"`
	PlusMinus flexString `json:"plusMinus"`
}
