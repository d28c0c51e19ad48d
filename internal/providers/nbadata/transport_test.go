package nbadata

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestNormalizeBaseURLTrimsTrailingSlashAndDefaults(t *testing.T) {
	cases := []struct {
		input    string
		expected string
	}{
		{"", defaultBaseURL},
		{"https://feed.example.com/", "https://feed.example.com"},
		{"https://feed.example.com", "https://feed.example.com"},
		{" https://feed.example.com// ", "https://feed.example.com"},
	}

	for _, c := range cases {
		if got := normalizeBaseURL(c.input); got != c.expected {
			t.Fatalf("expected %s, got %s", c.expected, got)
		}
	}
}

func TestResolveHTTPClientTimeouts(t *testing.T) {
	client, ok := resolveHTTPClient(nil, 0).(*http.Client)
	if !ok || client.Timeout != defaultHTTPTimeout {
		t.Fatalf("expected default timeout client, got %+v", client)
	}
	client, _ = resolveHTTPClient(nil, 2*time.Second).(*http.Client)
	if client.Timeout != 2*time.Second {
		t.Fatalf("expected configured timeout, got %s", client.Timeout)
	}
	custom := &http.Client{Timeout: 5 * time.Second}
	if resolveHTTPClient(custom, time.Second) != custom {
		t.Fatal("expected provided client to be used")
	}
}

func TestFeedTransportSetsHeaders(t *testing.T) {
	var got *http.Request
	client := &http.Client{Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		got = req
		return &http.Response{StatusCode: http.StatusOK, Header: http.Header{}, Body: io.NopCloser(strings.NewReader("{}"))}, nil
	})}

	for _, tc := range []struct{ configured, want string }{{"", defaultUserAgent}, {"r/nyknicks bot", "r/nyknicks bot"}} {
		feed := newFeedTransport(Config{BaseURL: "https://feed.test/", HTTPClient: client, UserAgent: tc.configured})
		resp, err := feed.get(context.Background(), "/prod/v1/today.json")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		_ = resp.Body.Close()
		if got.URL.String() != "https://feed.test/prod/v1/today.json" {
			t.Fatalf("unexpected url %s", got.URL)
		}
		if got.Header.Get("Accept") != "application/json" || got.Header.Get("User-Agent") != tc.want {
			t.Fatalf("unexpected headers %v", got.Header)
		}
	}
}

func TestFlexStringParsing(t *testing.T) {
	var f flexString
	for raw, want := range map[string]string{`"12"`: "12", `12`: "12", `null`: "", `""`: ""} {
		if err := f.UnmarshalJSON([]byte(raw)); err != nil {
			t.Fatalf("%s: %v", raw, err)
		}
		if string(f) != want {
			t.Fatalf("%s: expected %q, got %q", raw, want, f)
		}
	}

	if n, err := flexString("").intOrZero(); err != nil || n != 0 {
		t.Fatalf("expected empty to be zero, got %d %v", n, err)
	}
	if _, err := flexString("x1").intOrZero(); err == nil {
		t.Fatal("expected error for non-numeric value")
	}
	if flexString("+7").lenient() != 7 || flexString("junk").lenient() != 0 {
		t.Fatal("unexpected lenient parse")
	}
}
