package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// LayoutDay is the canonical calendar-day key format.
	LayoutDay = "2006-01-02"

	// LayoutMonth selects a month, for calendar views.
	LayoutMonth = "2006-01"

	// MinutesPerDay is the number of wall-clock minutes in a day.
	MinutesPerDay = 24 * 60
)

// ParseClock parses a 24-hour wall-clock string such as "9:30" or "14:05"
// and returns the minute of day. The hour may be unpadded. Malformed input
// is rejected rather than passed through, so layout math never sees a bogus
// minute value.
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("timeutil: invalid clock string %q", s)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("timeutil: invalid clock hour %q: %w", s, err)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("timeutil: invalid clock minute %q: %w", s, err)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("timeutil: clock string %q out of range", s)
	}
	return hours*60 + minutes, nil
}

// FormatClock renders a minute of day as an unpadded-hour clock string,
// mirroring the form ParseClock accepts.
func FormatClock(minuteOfDay int) string {
	return fmt.Sprintf("%d:%02d", minuteOfDay/60, minuteOfDay%60)
}

// DayKey formats t as a calendar-day key using its local calendar fields.
// Converting to UTC first would shift evening timestamps onto the wrong day
// in west-of-UTC timezones, so the local fields are the source of truth.
func DayKey(t time.Time) string {
	return t.Local().Format(LayoutDay)
}

// ParseDayKey parses a "YYYY-MM-DD" day key into the local calendar day it
// names.
func ParseDayKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(LayoutDay, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("timeutil: invalid day key %q: %w", key, err)
	}
	return t, nil
}

// ParseMonthKey parses a "YYYY-MM" month key into the first day of that
// month in the local timezone.
func ParseMonthKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(LayoutMonth, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("timeutil: invalid month key %q: %w", key, err)
	}
	return t, nil
}

// MinuteOfDay returns the wall-clock minute of day for t in local time.
func MinuteOfDay(t time.Time) int {
	local := t.Local()
	return local.Hour()*60 + local.Minute()
}
