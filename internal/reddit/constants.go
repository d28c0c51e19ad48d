package reddit

import "time"

const (
	serviceName        = "reddit"
	defaultBaseURL     = "https://oauth.reddit.com"
	defaultAuthURL     = "https://www.reddit.com/api/v1/access_token"
	defaultUserAgent   = "nba-gamethread-bot"
	defaultHTTPTimeout = 10 * time.Second
	searchLimit        = "25"
	maxErrorBody       = 512
)
