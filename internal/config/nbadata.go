package config

import "time"

const (
	envNBADataBaseURL  = "NBA_DATA_BASE_URL"
	envNBADataTimeout  = "NBA_DATA_TIMEOUT"
	envProviderRetries = "PROVIDER_RETRY_ATTEMPTS"
	envProviderBackoff = "PROVIDER_RETRY_BACKOFF"

	defaultNBADataBaseURL  = "https://data.nba.net"
	defaultNBADataTimeout  = 10 * time.Second
	defaultProviderRetries = 3
	defaultProviderBackoff = 500 * time.Millisecond
)

// NBADataConfig controls how we talk to the league data feed.
type NBADataConfig struct {
	BaseURL       string
	Timeout       time.Duration
	RetryAttempts int
	RetryBackoff  time.Duration
}

func loadNBAData() NBADataConfig {
	return NBADataConfig{
		BaseURL:       envOrDefault(envNBADataBaseURL, defaultNBADataBaseURL),
		Timeout:       durationEnvOrDefault(envNBADataTimeout, defaultNBADataTimeout),
		RetryAttempts: intEnvOrDefault(envProviderRetries, defaultProviderRetries),
		RetryBackoff:  durationEnvOrDefault(envProviderBackoff, defaultProviderBackoff),
	}
}
