package timeutil

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// CompactDateLayout is the feed's game date format (YYYYMMDD).
const CompactDateLayout = "20060102"

// ClockLayout renders a wall-clock tip-off time, e.g. "07:30 PM".
const ClockLayout = "03:04 PM"

// ShortClockLayout renders a clock without a leading zero, e.g. "7:30 PM".
const ShortClockLayout = "3:04 PM"

// ShortDateLayout renders schedule dates, e.g. "Jan 09".
const ShortDateLayout = "Jan 02"

// LongDateLayout renders thread title dates, e.g. "January 09, 2024".
const LongDateLayout = "January 02, 2006"

// Zone pairs a display label with its location.
type Zone struct {
	Label    string
	Location *time.Location
}

var usZones = []Zone{
	{"Eastern", mustLoad("America/New_York")},
	{"Central", mustLoad("America/Chicago")},
	{"Mountain", mustLoad("America/Denver")},
	{"Pacific", mustLoad("America/Los_Angeles")},
}

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(fmt.Sprintf("timeutil: load %s: %v", name, err))
	}
	return loc
}

// USZones returns the four continental US zones, east to west.
func USZones() []Zone {
	out := make([]Zone, len(usZones))
	copy(out, usZones)
	return out
}

// Eastern returns the league's reference time zone.
func Eastern() *time.Location {
	return usZones[0].Location
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// CompactDate formats t as YYYYMMDD in Eastern time.
func CompactDate(t time.Time) string {
	return t.In(Eastern()).Format(CompactDateLayout)
}

// FormatClock formats t as a 12-hour clock in loc.
func FormatClock(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(ClockLayout)
}

// LongDate formats t as "January 02, 2006" in Eastern time.
func LongDate(t time.Time) string {
	return t.In(Eastern()).Format(LongDateLayout)
}

// DayOffset returns how many Eastern calendar days t falls after ref. It is
// negative when t is on an earlier day.
func DayOffset(t, ref time.Time) int {
	ty, tm, td := t.In(Eastern()).Date()
	ry, rm, rd := ref.In(Eastern()).Date()
	a := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	b := time.Date(ry, rm, rd, 0, 0, 0, 0, time.UTC)
	return int(a.Sub(b).Hours() / 24)
}
