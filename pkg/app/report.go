package app

import (
	"context"
	"math"

	"tableflip.dev/chronograma/pkg/dayview"
	"tableflip.dev/chronograma/pkg/habit"
	"tableflip.dev/chronograma/pkg/record"
	"tableflip.dev/chronograma/pkg/timeline"
)

// DayReport is the assembled view for one calendar day: both tracks laid
// out on the timeline, the activity index over the full collections, and
// the day's completion statistics.
type DayReport struct {
	Day     string
	Planned []timeline.Placed
	Actual  []timeline.Placed

	// Activity covers every day, not just the reported one; calendar
	// decoration needs the whole index.
	Activity map[string]int

	PlannedDone   int
	CompletionPct int
	WeeklyRate    int
}

// DayReport filters both tracks to the given day key and lays them out.
func (s *Service) DayReport(ctx context.Context, day string) (DayReport, error) {
	if s.Persistence == nil {
		return DayReport{}, errNoPersistence
	}

	allPlanned := s.Persistence.Schedule(ctx, record.TrackPlanned)
	allActual := s.Persistence.Schedule(ctx, record.TrackActual)

	planned, err := timeline.LayoutAll(dayview.FilterByDay(allPlanned, day), s.scale())
	if err != nil {
		return DayReport{}, err
	}
	actual, err := timeline.LayoutAll(dayview.FilterByDay(allActual, day), s.scale())
	if err != nil {
		return DayReport{}, err
	}

	done := 0
	for _, p := range planned {
		if p.Item.Completed {
			done++
		}
	}
	pct := 0
	if len(planned) > 0 {
		pct = int(math.Round(100 * float64(done) / float64(len(planned))))
	}

	return DayReport{
		Day:           day,
		Planned:       planned,
		Actual:        actual,
		Activity:      dayview.ActivityMap(allPlanned, allActual),
		PlannedDone:   done,
		CompletionPct: pct,
		WeeklyRate:    habit.WeeklyRate(s.Persistence.Habits(ctx)),
	}, nil
}

// HabitStats summarizes one habit for stat tables.
type HabitStats struct {
	Habit         record.Habit
	CurrentStreak int
	LongestStreak int
	CompletionPct int
}

// HabitReport is the habits screen aggregate: per-habit stats plus the
// cross-habit weekly rate and best streak.
type HabitReport struct {
	Stats         []HabitStats
	WeeklyRate    int
	LongestStreak int
}

// HabitReport computes streaks and completion for every habit.
func (s *Service) HabitReport(ctx context.Context) (HabitReport, error) {
	if s.Persistence == nil {
		return HabitReport{}, errNoPersistence
	}
	habits := s.Persistence.Habits(ctx)
	stats := make([]HabitStats, 0, len(habits))
	for _, h := range habits {
		stats = append(stats, HabitStats{
			Habit:         h,
			CurrentStreak: habit.CurrentStreak(h.History),
			LongestStreak: habit.LongestStreak(h.History),
			CompletionPct: habit.CompletionPercentage(h.Completion),
		})
	}
	return HabitReport{
		Stats:         stats,
		WeeklyRate:    habit.WeeklyRate(habits),
		LongestStreak: habit.OverallLongestStreak(habits),
	}, nil
}
