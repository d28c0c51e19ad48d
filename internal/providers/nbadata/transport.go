package nbadata

import (
	"context"
	"net/http"
	"strings"
	"time"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// feedTransport carries what every feed request shares: where to send it,
// who we claim to be, and the client that sends it.
type feedTransport struct {
	baseURL   string
	userAgent string
	client    httpDoer
}

func newFeedTransport(cfg Config) feedTransport {
	ua := strings.TrimSpace(cfg.UserAgent)
	if ua == "" {
		ua = defaultUserAgent
	}
	return feedTransport{
		baseURL:   normalizeBaseURL(cfg.BaseURL),
		userAgent: ua,
		client:    resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
	}
}

// get issues a JSON GET for path relative to the feed root.
func (t feedTransport) get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", t.userAgent)
	return t.client.Do(req)
}

func resolveHTTPClient(client *http.Client, timeout time.Duration) httpDoer {
	if client != nil {
		return client
	}
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &http.Client{Timeout: timeout}
}

func normalizeBaseURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimRight(raw, "/")
}
