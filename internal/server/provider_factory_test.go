package server

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/preston-bernstein/nba-gamethread-bot/internal/config"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/providers/fixture"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/providers/nbadata"
	"github.com/preston-bernstein/nba-gamethread-bot/internal/testutil"
)

func TestProviderFactoryBuildsWrappedProvider(t *testing.T) {
	prov, err := newProviderFactory(nil, nil).build(config.Config{Provider: config.ProviderFixture})
	if err != nil || prov == nil {
		t.Fatalf("expected provider, got %v %v", prov, err)
	}
	if _, ok := prov.(*fixture.Provider); ok {
		t.Fatalf("expected provider to be wrapped with retries")
	}
}

func TestSelectProvider(t *testing.T) {
	prov, err := selectProvider(config.Config{Provider: config.ProviderNBAData, NBAData: config.NBADataConfig{BaseURL: "http://example.com"}}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := prov.(*nbadata.Client); !ok {
		t.Fatalf("expected nbadata client, got %T", prov)
	}

	prov, _ = selectProvider(config.Config{Provider: config.ProviderFixture}, nil)
	if _, ok := prov.(*fixture.Provider); !ok {
		t.Fatalf("expected fixture provider, got %T", prov)
	}
}

func TestSelectProviderFallsBackToFixture(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	prov, err := selectProvider(config.Config{Provider: "espn"}, logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := prov.(*fixture.Provider); !ok {
		t.Fatalf("expected fixture fallback, got %T", prov)
	}
	if !strings.Contains(buf.String(), "unknown provider") {
		t.Fatalf("expected fallback warning, got %s", buf.String())
	}
}

func TestSelectProviderFixtureFile(t *testing.T) {
	path := filepath.Join("..", "providers", "fixture", "testdata", "schedule.yaml")
	if _, err := selectProvider(config.Config{Provider: config.ProviderFixture, FixturePath: path}, nil); err != nil {
		t.Fatalf("expected fixture file to load, got %v", err)
	}
	if _, err := selectProvider(config.Config{Provider: config.ProviderFixture, FixturePath: "missing.yaml"}, nil); err == nil {
		t.Fatalf("expected error for missing fixture file")
	}
}

func TestProviderName(t *testing.T) {
	if got := providerName("", fixture.New()); got != "fixture" {
		t.Fatalf("expected provider's own name, got %s", got)
	}
	if got := providerName("Custom", &testutil.StubProvider{}); got != "custom" {
		t.Fatalf("expected configured name, got %s", got)
	}
	if got := providerName("", &testutil.StubProvider{}); got != "*testutil.stubprovider" {
		t.Fatalf("expected type-derived name, got %s", got)
	}
	if got := providerName("", nil); got != "provider" {
		t.Fatalf("expected default name, got %s", got)
	}
}
