package timeutil

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2024-01-02")
	if err != nil {
		t.Fatalf("expected parse to succeed, got %v", err)
	}
	if got := FormatDate(parsed); got != "2024-01-02" {
		t.Fatalf("expected formatted date to round-trip, got %s", got)
	}
}

func TestFormatDateUsesLocation(t *testing.T) {
	loc := time.FixedZone("test", -5*60*60)
	value := time.Date(2024, 1, 2, 23, 0, 0, 0, loc)
	if got := FormatDate(value); got != "2024-01-02" {
		t.Fatalf("expected formatted date, got %s", got)
	}
}

func TestCompactDateUsesEastern(t *testing.T) {
	// 02:00 UTC on the 10th is still the evening of the 9th in New York.
	value := time.Date(2024, 1, 10, 2, 0, 0, 0, time.UTC)
	if got := CompactDate(value); got != "20240109" {
		t.Fatalf("expected eastern compact date, got %s", got)
	}
}

func TestUSZonesClock(t *testing.T) {
	tip := time.Date(2024, 1, 10, 0, 30, 0, 0, time.UTC)
	want := []string{"07:30 PM", "06:30 PM", "05:30 PM", "04:30 PM"}
	zones := USZones()
	if len(zones) != len(want) {
		t.Fatalf("expected %d zones, got %d", len(want), len(zones))
	}
	for i, z := range zones {
		if got := FormatClock(tip, z.Location); got != want[i] {
			t.Fatalf("%s: expected %s, got %s", z.Label, want[i], got)
		}
	}
}

func TestUSZonesReturnsCopy(t *testing.T) {
	zones := USZones()
	zones[0].Label = "changed"
	if USZones()[0].Label != "Eastern" {
		t.Fatalf("expected USZones to return a copy")
	}
}

func TestLongDate(t *testing.T) {
	value := time.Date(2024, 1, 10, 0, 30, 0, 0, time.UTC)
	if got := LongDate(value); got != "January 09, 2024" {
		t.Fatalf("expected long eastern date, got %s", got)
	}
}

func TestDayOffsetUsesEasternCalendar(t *testing.T) {
	// 17:12 UTC on Dec 29 is still Dec 29 in New York.
	ref := time.Date(2020, 12, 29, 17, 12, 0, 0, time.UTC)
	cases := []struct {
		at   time.Time
		want int
	}{
		{time.Date(2020, 12, 30, 0, 0, 0, 0, time.UTC), 0},
		{time.Date(2020, 12, 30, 5, 0, 0, 0, time.UTC), 1},
		{time.Date(2020, 12, 28, 1, 0, 0, 0, time.UTC), -2},
		{time.Date(2021, 1, 9, 0, 30, 0, 0, time.UTC), 10},
	}
	for _, tc := range cases {
		if got := DayOffset(tc.at, ref); got != tc.want {
			t.Fatalf("DayOffset(%s): expected %d, got %d", tc.at, tc.want, got)
		}
	}
}
