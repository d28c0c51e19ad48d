package reddit

import (
	"context"
	"net/http"

	"golang.org/x/oauth2"
)

// passwordTokenSource fetches script-app tokens with the password grant.
type passwordTokenSource struct {
	ctx      context.Context
	conf     *oauth2.Config
	username string
	password string
}

func (s *passwordTokenSource) Token() (*oauth2.Token, error) {
	return s.conf.PasswordCredentialsToken(s.ctx, s.username, s.password)
}

// newAuthClient returns an HTTP client that attaches a bearer token, fetching
// a new one only after the previous token expires.
func newAuthClient(ctx context.Context, cfg Config, base *http.Client) *http.Client {
	conf := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL:  cfg.AuthURL,
			AuthStyle: oauth2.AuthStyleInHeader,
		},
	}
	tokenCtx := context.WithValue(ctx, oauth2.HTTPClient, base)
	src := oauth2.ReuseTokenSource(nil, &passwordTokenSource{
		ctx:      tokenCtx,
		conf:     conf,
		username: cfg.Username,
		password: cfg.Password,
	})
	return oauth2.NewClient(tokenCtx, src)
}

// userAgentTransport stamps every request with the configured User-Agent.
type userAgentTransport struct {
	agent string
	next  http.RoundTripper
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("User-Agent", t.agent)
	return t.next.RoundTrip(clone)
}
