package server

import (
	"fmt"
	"strings"

	"github.com/preston-bernstein/nba-gamethread-bot/internal/providers"
)

// providerName labels a provider in logs and metrics. A provider's own Name
// wins over the configured value.
func providerName(configured string, provider providers.DataProvider) string {
	if named, ok := provider.(interface{ Name() string }); ok && named.Name() != "" {
		return named.Name()
	}
	if configured != "" {
		return strings.ToLower(configured)
	}
	if provider != nil {
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return "provider"
}
