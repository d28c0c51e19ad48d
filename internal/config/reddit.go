package config

const (
	envRedditClientID     = "REDDIT_CLIENT_ID"
	envRedditClientSecret = "REDDIT_CLIENT_SECRET"
	envRedditUsername     = "REDDIT_USERNAME"
	envRedditPassword     = "REDDIT_PASSWORD"
	envRedditUserAgent    = "REDDIT_USER_AGENT"
	envRedditBaseURL      = "REDDIT_BASE_URL"
	envRedditAuthURL      = "REDDIT_AUTH_URL"

	defaultRedditUsername  = "nyknicks-automod"
	defaultRedditUserAgent = "nba-gamethread-bot"
	defaultRedditBaseURL   = "https://oauth.reddit.com"
	defaultRedditAuthURL   = "https://www.reddit.com/api/v1/access_token"
)

// RedditConfig holds the service account and endpoints.
type RedditConfig struct {
	ClientID     string
	ClientSecret string
	Username     string
	Password     string
	UserAgent    string
	BaseURL      string
	AuthURL      string
}

// Missing lists the credential variables that are unset.
func (r RedditConfig) Missing() []string {
	var missing []string
	if r.ClientID == "" {
		missing = append(missing, envRedditClientID)
	}
	if r.ClientSecret == "" {
		missing = append(missing, envRedditClientSecret)
	}
	if r.Username == "" {
		missing = append(missing, envRedditUsername)
	}
	if r.Password == "" {
		missing = append(missing, envRedditPassword)
	}
	return missing
}

func loadReddit() RedditConfig {
	return RedditConfig{
		ClientID:     envOrDefault(envRedditClientID, ""),
		ClientSecret: envOrDefault(envRedditClientSecret, ""),
		Username:     envOrDefault(envRedditUsername, defaultRedditUsername),
		Password:     envOrDefault(envRedditPassword, ""),
		UserAgent:    envOrDefault(envRedditUserAgent, defaultRedditUserAgent),
		BaseURL:      envOrDefault(envRedditBaseURL, defaultRedditBaseURL),
		AuthURL:      envOrDefault(envRedditAuthURL, defaultRedditAuthURL),
	}
}
