package reddit

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"testing"

	"github.com/preston-bernstein/nba-gamethread-bot/internal/upstream"
)

func TestDescriptionReadsModSettings(t *testing.T) {
	doer := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if req.Method != http.MethodGet || req.URL.Path != "/r/nyknicks/about/edit" || req.URL.Query().Get("raw_json") != "1" {
			t.Fatalf("unexpected request %s %s", req.Method, req.URL)
		}
		return jsonResponse(http.StatusOK, `{"kind":"subreddit_settings","data":{"description":"intro & [](#StartRoster)[](#EndRoster)"}}`), nil
	})
	c := newClientWithDoer(testConfig(), doer)

	got, err := c.Description(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "intro & [](#StartRoster)[](#EndRoster)" {
		t.Fatalf("unexpected description %q", got)
	}
}

func TestDescriptionMissingFromSettings(t *testing.T) {
	doer := roundTripperFunc(func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"kind":"subreddit_settings","data":{}}`), nil
	})
	c := newClientWithDoer(testConfig(), doer)

	if _, err := c.Description(context.Background()); err == nil {
		t.Fatal("expected an error when the account cannot see settings")
	}
}

func TestDescriptionForbidden(t *testing.T) {
	doer := roundTripperFunc(func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusForbidden, `{"message":"Forbidden"}`), nil
	})
	c := newClientWithDoer(testConfig(), doer)

	_, err := c.Description(context.Background())
	if st, ok := upstream.AsStatusError(err); !ok || st.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 status error, got %v", err)
	}
}

func TestUpdateDescriptionEditsSidebarWikiPage(t *testing.T) {
	var form url.Values
	doer := roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if req.Method != http.MethodPost || req.URL.Path != "/r/nyknicks/api/wiki/edit" {
			t.Fatalf("unexpected request %s %s", req.Method, req.URL.Path)
		}
		raw, _ := io.ReadAll(req.Body)
		form, _ = url.ParseQuery(string(raw))
		return jsonResponse(http.StatusOK, `{}`), nil
	})
	c := newClientWithDoer(testConfig(), doer)

	if err := c.UpdateDescription(context.Background(), "new sidebar"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if form.Get("page") != "config/sidebar" || form.Get("content") != "new sidebar" || form.Get("reason") == "" {
		t.Fatalf("unexpected form %v", form)
	}
}
