package store

import (
	"time"

	"tableflip.dev/chronograma/pkg/record"
	"tableflip.dev/chronograma/pkg/timeutil"
)

// storedScheduleItem tolerates the legacy payload shape, where items
// carried a full `date` timestamp and a `duration` in place of the day key,
// start time, and durationMin trio.
type storedScheduleItem struct {
	record.ScheduleItem
	LegacyDate     string `json:"date,omitempty"`
	LegacyDuration int    `json:"duration,omitempty"`
}

// migrate upgrades a legacy record in place of rejecting it. The legacy
// timestamp is interpreted in local time, the same fields the day key is
// built from everywhere else.
func (s storedScheduleItem) migrate() record.ScheduleItem {
	item := s.ScheduleItem
	if item.DayKey == "" && s.LegacyDate != "" {
		if t, err := time.Parse(time.RFC3339, s.LegacyDate); err == nil {
			local := t.Local()
			item.DayKey = timeutil.DayKey(local)
			if item.StartTime == "" {
				item.StartTime = timeutil.FormatClock(timeutil.MinuteOfDay(local))
			}
		}
	}
	if item.DurationMin == 0 && s.LegacyDuration != 0 {
		item.DurationMin = s.LegacyDuration
	}
	return item
}
