// Package reddit implements the thread platform on top of the reddit OAuth API.
package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	domainthreads "github.com/preston-bernstein/nba-gamethread-bot/internal/domain/threads"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/logging"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/upstream"
)

// Config controls how the client reaches reddit and who it acts as.
type Config struct {
	BaseURL      string
	AuthURL      string
	ClientID     string
	ClientSecret string
	Username     string
	Password     string
	UserAgent    string
	Subreddit    string
	Timeout      time.Duration
	HTTPClient   *http.Client
	Logger       *slog.Logger
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to one subreddit as the configured account.
type Client struct {
	baseURL   string
	subreddit string
	username  string
	http      httpDoer
	logger    *slog.Logger
}

// NewClient builds an authenticated client. cfg.HTTPClient, when set, is used
// for both token and API calls.
func NewClient(ctx context.Context, cfg Config) *Client {
	cfg = withDefaults(cfg)

	base := cfg.HTTPClient
	if base == nil {
		base = &http.Client{Timeout: cfg.Timeout}
	}
	transport := base.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	agentClient := &http.Client{
		Timeout:   base.Timeout,
		Transport: &userAgentTransport{agent: cfg.UserAgent, next: transport},
	}

	authed := newAuthClient(ctx, cfg, agentClient)
	authed.Timeout = base.Timeout

	return newClientWithDoer(cfg, authed)
}

func newClientWithDoer(cfg Config, doer httpDoer) *Client {
	cfg = withDefaults(cfg)
	return &Client{
		baseURL:   cfg.BaseURL,
		subreddit: cfg.Subreddit,
		username:  cfg.Username,
		http:      doer,
		logger:    cfg.Logger,
	}
}

func withDefaults(cfg Config) Config {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	cfg.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	if cfg.AuthURL == "" {
		cfg.AuthURL = defaultAuthURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultHTTPTimeout
	}
	return cfg
}

// Username is the account the client authenticates as.
func (c *Client) Username() string {
	return c.username
}

// Search returns today's subreddit submissions matching query, newest first.
func (c *Client) Search(ctx context.Context, query string) ([]domainthreads.Thread, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("restrict_sr", "1")
	q.Set("sort", "new")
	q.Set("t", "day")
	q.Set("limit", searchLimit)
	q.Set("raw_json", "1")

	endpoint := fmt.Sprintf("%s/r/%s/search?%s", c.baseURL, url.PathEscape(c.subreddit), q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var payload listing
	if err := c.do(req, &payload); err != nil {
		return nil, err
	}

	out := make([]domainthreads.Thread, 0, len(payload.Data.Children))
	for _, child := range payload.Data.Children {
		if child.Kind != "" && child.Kind != "t3" {
			continue
		}
		out = append(out, mapThread(child.Data))
	}
	return out, nil
}

// Submit creates a self post with replies to the bot account disabled.
func (c *Client) Submit(ctx context.Context, title, body string) (domainthreads.Thread, error) {
	form := url.Values{}
	form.Set("sr", c.subreddit)
	form.Set("kind", "self")
	form.Set("title", title)
	form.Set("text", body)
	form.Set("sendreplies", "false")

	resp, err := c.post(ctx, "/api/submit", form)
	if err != nil {
		return domainthreads.Thread{}, err
	}
	t := domainthreads.Thread{
		ID:     resp.JSON.Data.ID,
		Name:   resp.JSON.Data.Name,
		Title:  title,
		Body:   body,
		Author: c.username,
		URL:    resp.JSON.Data.URL,
	}
	logging.Info(logging.FromContext(ctx, c.logger), "submitted thread",
		logging.FieldSubreddit, c.subreddit,
		logging.FieldThreadID, t.ID,
	)
	return t, nil
}

// Edit replaces the body of an existing self post.
func (c *Client) Edit(ctx context.Context, thread domainthreads.Thread, body string) error {
	form := url.Values{}
	form.Set("thing_id", thread.Fullname())
	form.Set("text", body)
	_, err := c.post(ctx, "/api/editusertext", form)
	return err
}

// Distinguish marks the thread as an official moderator post.
func (c *Client) Distinguish(ctx context.Context, thread domainthreads.Thread) error {
	form := url.Values{}
	form.Set("id", thread.Fullname())
	form.Set("how", "yes")
	_, err := c.post(ctx, "/api/distinguish", form)
	return err
}

// Sticky pins the thread to the top of the subreddit.
func (c *Client) Sticky(ctx context.Context, thread domainthreads.Thread) error {
	form := url.Values{}
	form.Set("id", thread.Fullname())
	form.Set("state", "true")
	_, err := c.post(ctx, "/api/set_subreddit_sticky", form)
	return err
}

// SetSuggestedSort sets the default comment ordering of the thread.
func (c *Client) SetSuggestedSort(ctx context.Context, thread domainthreads.Thread, sort string) error {
	form := url.Values{}
	form.Set("id", thread.Fullname())
	form.Set("sort", sort)
	_, err := c.post(ctx, "/api/set_suggested_sort", form)
	return err
}

func (c *Client) post(ctx context.Context, path string, form url.Values) (apiResponse, error) {
	form.Set("api_type", "json")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return apiResponse{}, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var payload apiResponse
	if err := c.do(req, &payload); err != nil {
		return apiResponse{}, err
	}
	if err := payload.err(path); err != nil {
		return apiResponse{}, err
	}
	return payload, nil
}

func (c *Client) do(req *http.Request, dest any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return upstream.FromResponse(serviceName, resp, string(body))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return fmt.Errorf("reddit: decode %s: %w", req.URL.Path, err)
	}
	return nil
}

func mapThread(d linkData) domainthreads.Thread {
	secs, frac := math.Modf(d.CreatedUTC)
	created := time.Unix(int64(secs), int64(frac*1e9)).UTC()
	if d.CreatedUTC == 0 {
		created = time.Time{}
	}
	link := d.URL
	if d.Permalink != "" {
		link = "https://www.reddit.com" + d.Permalink
	}
	return domainthreads.Thread{
		ID:        d.ID,
		Name:      d.Name,
		Title:     d.Title,
		Author:    d.Author,
		Body:      d.Selftext,
		URL:       link,
		CreatedAt: created,
	}
}
