package config

import (
	"testing"
	"time"
)

const testKey = "GAMETHREAD_ENV_TEST"

func TestEnvOrDefault(t *testing.T) {
	cases := map[string]string{"": "fallback", "   ": "fallback", " r/nba ": "r/nba"}
	for raw, want := range cases {
		t.Setenv(testKey, raw)
		if got := envOrDefault(testKey, "fallback"); got != want {
			t.Fatalf("envOrDefault(%q) = %q, want %q", raw, got, want)
		}
	}
}

func TestBoolEnvOrDefault(t *testing.T) {
	cases := []struct {
		val      string
		expected bool
	}{
		{"", true},
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{" yes ", true},
		{"on", true},
		{"false", false},
		{"FALSE", false},
		{"0", false},
		{"no", false},
		{"off", false},
		{"maybe", true},
	}
	for _, tc := range cases {
		t.Setenv(testKey, tc.val)
		if got := boolEnvOrDefault(testKey, true); got != tc.expected {
			t.Fatalf("expected %v for %q, got %v", tc.expected, tc.val, got)
		}
	}
}

func TestDurationEnvOrDefault(t *testing.T) {
	cases := []struct {
		val  string
		want time.Duration
	}{
		{"", time.Minute},
		{"90s", 90 * time.Second},
		{" 2m ", 2 * time.Minute},
		{"soon", time.Minute},
		{"-5s", time.Minute},
		{"0s", time.Minute},
	}
	for _, tc := range cases {
		t.Setenv(testKey, tc.val)
		if got := durationEnvOrDefault(testKey, time.Minute); got != tc.want {
			t.Fatalf("durationEnvOrDefault(%q) = %s, want %s", tc.val, got, tc.want)
		}
	}
}

func TestIntEnvOrDefault(t *testing.T) {
	cases := []struct {
		val  string
		want int
	}{
		{"", 3},
		{"5", 5},
		{" 7 ", 7},
		{"0", 3},
		{"-1", 3},
		{"three", 3},
	}
	for _, tc := range cases {
		t.Setenv(testKey, tc.val)
		if got := intEnvOrDefault(testKey, 3); got != tc.want {
			t.Fatalf("intEnvOrDefault(%q) = %d, want %d", tc.val, got, tc.want)
		}
	}
}
