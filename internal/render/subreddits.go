package render

// teamSubreddits maps team nicknames to their fan subreddit.
var teamSubreddits = map[string]string{
	"76ers":         "sixers",
	"Bucks":         "MkeBucks",
	"Bulls":         "chicagobulls",
	"Cavaliers":     "clevelandcavs",
	"Celtics":       "bostonceltics",
	"Clippers":      "LAClippers",
	"Grizzlies":     "memphisgrizzlies",
	"Hawks":         "AtlantaHawks",
	"Heat":          "heat",
	"Hornets":       "CharlotteHornets",
	"Jazz":          "UtahJazz",
	"Kings":         "kings",
	"Knicks":        "NYKnicks",
	"Lakers":        "lakers",
	"Magic":         "OrlandoMagic",
	"Mavericks":     "mavericks",
	"Nets":          "GoNets",
	"Nuggets":       "denvernuggets",
	"Pacers":        "pacers",
	"Pelicans":      "NOLAPelicans",
	"Pistons":       "DetroitPistons",
	"Raptors":       "torontoraptors",
	"Rockets":       "rockets",
	"Spurs":         "NBASpurs",
	"Suns":          "suns",
	"Thunder":       "thunder",
	"Timberwolves":  "timberwolves",
	"Trail Blazers": "ripcity",
	"Warriors":      "warriors",
	"Wizards":       "washingtonwizards",
}

// Subreddit returns the fan subreddit for a team nickname, or "nba".
func Subreddit(nickname string) string {
	if sub, ok := teamSubreddits[nickname]; ok {
		return sub
	}
	return "nba"
}
