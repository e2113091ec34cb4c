package options

import (
	"strings"
	"testing"
	"time"
)

// Pin the local zone west of UTC; a UTC parse of a day flag would land the
// key on the previous calendar day there.
func pinZone(t *testing.T, name string) {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Skipf("tz database unavailable: %v", err)
	}
	prev := time.Local
	time.Local = loc
	t.Cleanup(func() { time.Local = prev })
}

func TestGetDayKeepsLocalCalendarDay(t *testing.T) {
	pinZone(t, "America/New_York")

	o := &OnOptions{OnString: "2026-3-1"}
	day, err := o.GetDay()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if day != "2026-03-01" {
		t.Fatalf("expected day key 2026-03-01, got %s", day)
	}
}

func TestGetDayShortFormStaysOnNamedDay(t *testing.T) {
	pinZone(t, "America/Los_Angeles")

	o := &OnOptions{OnString: "2/28"}
	day, err := o.GetDay()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasSuffix(day, "-02-28") {
		t.Fatalf("expected a key ending in -02-28, got %s", day)
	}
}

func TestGetDayEmptyMeansToday(t *testing.T) {
	o := &OnOptions{}
	day, err := o.GetDay()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if day != "" {
		t.Fatalf("expected empty day for unset flag, got %s", day)
	}
}

func TestGetDayRejectsMalformedInput(t *testing.T) {
	o := &OnOptions{OnString: "first of march"}
	if _, err := o.GetDay(); err == nil {
		t.Fatal("expected an error for malformed input")
	}
}
