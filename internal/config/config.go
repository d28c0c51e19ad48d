package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the bot.
type Config struct {
	Subreddit   string
	Team        string
	TeamTricode string
	Season      string
	Provider    string
	FixturePath string
	DryRun      bool
	Sidebar     bool
	RunInterval time.Duration
	Port        string
	AdminToken  string
	NBAData     NBADataConfig
	Reddit      RedditConfig
	Metrics     MetricsConfig
	Logging     LoggingConfig
}

// LoggingConfig selects the log level and handler format.
type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Subreddit:   envOrDefault(envSubreddit, defaultSubreddit),
		Team:        envOrDefault(envTeam, defaultTeam),
		TeamTricode: strings.ToUpper(envOrDefault(envTeamTricode, defaultTeamTricode)),
		Season:      envOrDefault(envSeason, ""),
		Provider:    strings.ToLower(envOrDefault(envProvider, defaultProvider)),
		FixturePath: envOrDefault(envFixturePath, ""),
		DryRun:      boolEnvOrDefault(envDryRun, false),
		Sidebar:     boolEnvOrDefault(envSidebar, true),
		RunInterval: durationEnvOrDefault(envRunInterval, defaultRunInterval),
		Port:        envOrDefault(envPort, defaultPort),
		AdminToken:  envOrDefault(envAdminToken, ""),
		NBAData:     loadNBAData(),
		Reddit:      loadReddit(),
		Metrics:     loadMetrics(),
		Logging: LoggingConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
	}
}

// LoadEnvFile loads KEY=VALUE pairs from path into the process environment.
// Variables that are already set are left alone. An empty path tries ".env"
// and ignores it when missing.
func LoadEnvFile(path string) error {
	if path == "" {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load env file %s: %w", path, err)
	}
	return nil
}

// Validate reports configuration that would make a run fail. Reddit
// credentials are optional for dry runs.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Subreddit) == "" {
		errs = append(errs, errors.New("subreddit is required"))
	}
	if strings.TrimSpace(c.Team) == "" {
		errs = append(errs, fmt.Errorf("%s is required", envTeam))
	}
	switch c.Provider {
	case ProviderNBAData, ProviderFixture:
	default:
		errs = append(errs, fmt.Errorf("%s must be %q or %q, got %q", envProvider, ProviderNBAData, ProviderFixture, c.Provider))
	}
	if err := c.Metrics.conflictsWith(c.Port); err != nil {
		errs = append(errs, err)
	}
	if !c.DryRun {
		if missing := c.Reddit.Missing(); len(missing) > 0 {
			errs = append(errs, fmt.Errorf("missing reddit credentials: %s", strings.Join(missing, ", ")))
		}
	}
	return errors.Join(errs...)
}
