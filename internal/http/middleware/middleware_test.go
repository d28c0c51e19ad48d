package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/preston-bernstein/nba-gamethread-bot/internal/logging"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/metrics"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/testutil"
)

func TestLoggingMiddlewareSetsRequestIDAndLogger(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rec := metrics.NewRecorder()
	nextCalled := false

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		if got := RequestIDFromContext(r.Context()); got != "abc-123" {
			t.Fatalf("expected request id in context, got %q", got)
		}
		logging.FromContext(r.Context(), nil).Info("inside handler")
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/status", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rr := testutil.ServeRequest(LoggingMiddleware(logger, rec, next), req)

	if !nextCalled {
		t.Fatalf("expected next handler to be called")
	}
	testutil.AssertStatus(t, rr, http.StatusTeapot)
	if got := rr.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("expected request id echoed, got %q", got)
	}
	out := buf.String()
	if strings.Count(out, "request_id=abc-123") != 2 {
		t.Fatalf("expected handler and completion lines to carry the request id, got %s", out)
	}
	if !strings.Contains(out, "status_code=418") || !strings.Contains(out, "bytes=0") {
		t.Fatalf("expected status in completion log, got %s", out)
	}
	if len(rec.Providers()) != 0 {
		t.Fatalf("expected provider metrics untouched")
	}
}

func TestLoggingMiddlewareGeneratesRequestIDWhenMissing(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := RequestIDFromContext(r.Context()); got == "" {
			t.Fatalf("expected generated request id")
		}
		w.WriteHeader(http.StatusOK)
	})

	rr := testutil.Serve(LoggingMiddleware(logger, nil, next), http.MethodGet, "/health", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if got := rr.Header().Get("X-Request-ID"); len(got) != 36 {
		t.Fatalf("expected uuid X-Request-ID header, got %q", got)
	}
}

func TestLoggingMiddlewareWarnsOnServerErrors(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	testutil.Serve(LoggingMiddleware(logger, nil, next), http.MethodPost, "/admin/run", nil)
	if !strings.Contains(buf.String(), "level=WARN") {
		t.Fatalf("expected warn level for 5xx, got %s", buf.String())
	}
}

func TestLoggingMiddlewareDefaultsLogger(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	rr := testutil.Serve(LoggingMiddleware(nil, nil, next), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestLoggingMiddlewareRecoversPanics(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rec := metrics.NewRecorder()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("feed exploded")
	})

	rr := testutil.Serve(LoggingMiddleware(logger, rec, next), http.MethodPost, "/admin/run", nil)

	testutil.AssertStatus(t, rr, http.StatusInternalServerError)
	if !strings.Contains(rr.Body.String(), "internal error") {
		t.Fatalf("expected json error body, got %q", rr.Body.String())
	}
	out := buf.String()
	if !strings.Contains(out, "feed exploded") || !strings.Contains(out, "level=ERROR") {
		t.Fatalf("expected panic logged at error level, got %s", out)
	}
	if !strings.Contains(out, "status_code=500") {
		t.Fatalf("expected completion line with 500, got %s", out)
	}
}

func TestLoggingMiddlewareKeepsStatusWrittenBeforePanic(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
		panic("late")
	})

	rr := testutil.Serve(LoggingMiddleware(logger, nil, next), http.MethodGet, "/status", nil)
	testutil.AssertStatus(t, rr, http.StatusAccepted)
}

func TestStatusWriterTracksStatusAndBytes(t *testing.T) {
	rr := httptest.NewRecorder()
	w := &statusWriter{ResponseWriter: rr}
	if w.statusCode() != http.StatusOK {
		t.Fatalf("expected implicit 200 before write, got %d", w.statusCode())
	}
	w.WriteHeader(http.StatusAccepted)
	w.WriteHeader(http.StatusTeapot)
	if _, err := w.Write([]byte("hello")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if w.statusCode() != http.StatusAccepted || w.written != 5 {
		t.Fatalf("expected first status and 5 bytes, got %d/%d", w.statusCode(), w.written)
	}

	implicit := &statusWriter{ResponseWriter: httptest.NewRecorder()}
	_, _ = implicit.Write([]byte("x"))
	if implicit.status != http.StatusOK {
		t.Fatalf("expected write to imply 200, got %d", implicit.status)
	}
}

func TestRouteLabel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "/health", want: "/health"},
		{in: "/ready", want: "/ready"},
		{in: "/status", want: "/status"},
		{in: "/admin/run", want: "/admin/run"},
		{in: "/wp-login.php", want: "other"},
		{in: "", want: "other"},
	}

	for _, tt := range tests {
		if got := routeLabel(tt.in); got != tt.want {
			t.Fatalf("routeLabel(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestRequestIDHelpers(t *testing.T) {
	ctx := context.Background()
	if got := RequestIDFromContext(ctx); got != "" {
		t.Fatalf("expected empty id, got %s", got)
	}

	ctx = withRequestID(ctx, "abc123")
	if got := RequestIDFromContext(ctx); got != "abc123" {
		t.Fatalf("expected id from context, got %s", got)
	}
	if got := RequestIDFromContext(nil); got != "" {
		t.Fatalf("expected empty id for nil context, got %s", got)
	}
}
