package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func TestSetupDisabledReturnsNoHandler(t *testing.T) {
	tel, err := Setup(context.Background(), TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("expected no error when disabled, got %v", err)
	}
	if tel.Recorder == nil || tel.Shutdown == nil {
		t.Fatalf("expected recorder and shutdown")
	}
	if err := tel.Shutdown(context.Background()); err != nil {
		t.Fatalf("expected no-op shutdown, got %v", err)
	}
	if tel.Handler != nil {
		t.Fatalf("expected nil handler when disabled")
	}
}

func TestSetupEnabledExportsBotMetrics(t *testing.T) {
	tel, err := Setup(context.Background(), TelemetryConfig{Enabled: true})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer func() { _ = tel.Shutdown(context.Background()) }()
	rec := tel.Recorder

	rec.RecordHTTPRequest("GET", "/health", 200, time.Millisecond)
	rec.RecordProviderAttempt("nbadata", time.Millisecond, nil)
	rec.RecordRateLimit("nbadata", time.Second)
	rec.RecordRun("post_game_thread", time.Millisecond, nil)
	rec.RecordPublish("post_game_thread", "updated")
	rec.RecordPromotionFailure("post_game_thread")
	rec.RecordSidebar("unchanged", time.Millisecond)

	rr := httptest.NewRecorder()
	tel.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rr.Body.String()
	for _, name := range []string{"bot_runs_total", "thread_publishes_total", "provider_attempts_total", "sidebar_runs_total"} {
		if !strings.Contains(body, name) {
			t.Fatalf("expected %s in exposition, got:\n%s", name, body)
		}
	}
}

func TestSetupPropagatesReaderErrors(t *testing.T) {
	orig := promReaderFactory
	t.Cleanup(func() { promReaderFactory = orig })
	promReaderFactory = func() (sdkmetric.Reader, http.Handler, error) {
		return nil, nil, errors.New("registry broken")
	}

	_, err := Setup(context.Background(), TelemetryConfig{Enabled: true})
	if err == nil || !strings.Contains(err.Error(), "registry broken") {
		t.Fatalf("expected wrapped reader error, got %v", err)
	}
}

func TestSetupPropagatesOTLPErrors(t *testing.T) {
	orig := otlpReaderFactory
	t.Cleanup(func() { otlpReaderFactory = orig })
	otlpReaderFactory = func(context.Context, string, bool, time.Duration) (sdkmetric.Reader, error) {
		return nil, errors.New("bad endpoint")
	}

	_, err := Setup(context.Background(), TelemetryConfig{Enabled: true, OtlpEndpoint: "collector:4318"})
	if err == nil || !strings.Contains(err.Error(), "bad endpoint") {
		t.Fatalf("expected otlp error, got %v", err)
	}
}

func TestSetupDefaultsOTLPExportInterval(t *testing.T) {
	orig := otlpReaderFactory
	t.Cleanup(func() { otlpReaderFactory = orig })
	var gotInterval time.Duration
	var gotInsecure bool
	otlpReaderFactory = func(_ context.Context, _ string, insecure bool, interval time.Duration) (sdkmetric.Reader, error) {
		gotInsecure, gotInterval = insecure, interval
		return sdkmetric.NewManualReader(), nil
	}

	tel, err := Setup(context.Background(), TelemetryConfig{Enabled: true, OtlpEndpoint: "collector:4318", OtlpInsecure: true})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer func() { _ = tel.Shutdown(context.Background()) }()
	if gotInterval != defaultExportInterval || !gotInsecure {
		t.Fatalf("expected default interval and insecure, got %s/%v", gotInterval, gotInsecure)
	}
}
