package reddit

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/preston-bernstein/nba-gamethread-bot/internal/logging"
)

const (
	sidebarWikiPage = "config/sidebar"
	sidebarReason   = "sidebar refresh"
)

type settingsResponse struct {
	Data struct {
		Description *string `json:"description"`
	} `json:"data"`
}

// Description returns the subreddit's sidebar markdown. The account must be a
// moderator with config permissions.
func (c *Client) Description(ctx context.Context) (string, error) {
	endpoint := fmt.Sprintf("%s/r/%s/about/edit?raw_json=1", c.baseURL, url.PathEscape(c.subreddit))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	var payload settingsResponse
	if err := c.do(req, &payload); err != nil {
		return "", err
	}
	if payload.Data.Description == nil {
		return "", fmt.Errorf("reddit: settings for r/%s carry no description", c.subreddit)
	}
	return *payload.Data.Description, nil
}

// UpdateDescription replaces the sidebar markdown through the config/sidebar
// wiki page, which leaves every other subreddit setting alone.
func (c *Client) UpdateDescription(ctx context.Context, description string) error {
	form := url.Values{}
	form.Set("page", sidebarWikiPage)
	form.Set("content", description)
	form.Set("reason", sidebarReason)
	if _, err := c.post(ctx, "/r/"+url.PathEscape(c.subreddit)+"/api/wiki/edit", form); err != nil {
		return err
	}
	logging.Info(logging.FromContext(ctx, c.logger), "updated sidebar", logging.FieldSubreddit, c.subreddit)
	return nil
}
