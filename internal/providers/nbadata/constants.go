package nbadata

import "time"

const (
	providerName       = "nbadata"
	defaultBaseURL     = "https://data.nba.net"
	defaultHTTPTimeout = 10 * time.Second
	maxErrorBody       = 512
	defaultUserAgent   = "nba-gamethread-bot"
)
