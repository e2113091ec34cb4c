package record

import (
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/chronograma/pkg/timeutil"
)

var (
	ErrMissingID       = errors.New("record: id is required")
	ErrMissingTitle    = errors.New("record: title is required")
	ErrInvalidDay      = errors.New("record: invalid day key")
	ErrInvalidClock    = errors.New("record: invalid start time")
	ErrInvalidDuration = errors.New("record: duration must be positive")
	ErrInvalidPriority = errors.New("record: invalid task priority")
)

// Validate schema-checks a schedule item the way payloads are checked on
// load. Presentation fields (Type, Color, flags) carry no constraints.
func (i ScheduleItem) Validate() error {
	if i.ID == 0 {
		return ErrMissingID
	}
	if strings.TrimSpace(i.Title) == "" {
		return ErrMissingTitle
	}
	if _, err := timeutil.ParseDayKey(i.DayKey); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDay, i.DayKey)
	}
	if _, err := timeutil.ParseClock(i.StartTime); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidClock, i.StartTime)
	}
	if i.DurationMin <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDuration, i.DurationMin)
	}
	return nil
}

func (t Task) Validate() error {
	if t.ID == 0 {
		return ErrMissingID
	}
	if strings.TrimSpace(t.Title) == "" {
		return ErrMissingTitle
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	return nil
}

// Validate checks the habit's required fields. Array lengths are not part of
// the schema; Normalize repairs those after load.
func (h Habit) Validate() error {
	if strings.TrimSpace(h.ID) == "" {
		return ErrMissingID
	}
	if strings.TrimSpace(h.Name) == "" {
		return ErrMissingTitle
	}
	return nil
}
