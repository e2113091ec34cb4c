// Package habit computes streaks and completion statistics over habit
// boolean histories, and owns the slot-toggle transition that keeps a
// habit's week view and long-run history in lockstep.
package habit

import (
	"errors"
	"fmt"
	"math"

	"tableflip.dev/chronograma/pkg/record"
)

var ErrSlotRange = errors.New("habit: day index out of range")

// CurrentStreak counts consecutive completed entries from the end of the
// history backwards. An empty history or a miss on the most recent entry
// yields zero.
func CurrentStreak(history []bool) int {
	streak := 0
	for i := len(history) - 1; i >= 0; i-- {
		if !history[i] {
			break
		}
		streak++
	}
	return streak
}

// LongestStreak returns the best run anywhere in the history, including a
// run that ends exactly at the last entry.
func LongestStreak(history []bool) int {
	longest, run := 0, 0
	for _, done := range history {
		if done {
			run++
			continue
		}
		if run > longest {
			longest = run
		}
		run = 0
	}
	if run > longest {
		longest = run
	}
	return longest
}

// CompletionPercentage is the rounded share of completed slots. Zero-length
// input is 0, not a division by zero.
func CompletionPercentage(completion []bool) int {
	if len(completion) == 0 {
		return 0
	}
	done := 0
	for _, c := range completion {
		if c {
			done++
		}
	}
	return int(math.Round(100 * float64(done) / float64(len(completion))))
}

// WeeklyRate aggregates the week-view completion across all habits: the
// rounded share of completed slots out of habits x 7.
func WeeklyRate(habits []record.Habit) int {
	if len(habits) == 0 {
		return 0
	}
	done := 0
	for _, h := range habits {
		for _, c := range h.Completion {
			if c {
				done++
			}
		}
	}
	return int(math.Round(100 * float64(done) / float64(len(habits)*record.WeekSlots)))
}

// OverallLongestStreak is the best run across every habit's history.
func OverallLongestStreak(habits []record.Habit) int {
	best := 0
	for _, h := range habits {
		if s := LongestStreak(h.History); s > best {
			best = s
		}
	}
	return best
}

// ToggleSlot flips the weekday slot on both the week view and the matching
// history tail position. The habit is normalized first, so the tail index
// is always in range. Toggling the same slot twice restores the original
// state.
func ToggleSlot(h *record.Habit, day int) error {
	if day < 0 || day >= record.WeekSlots {
		return fmt.Errorf("%w: %d", ErrSlotRange, day)
	}
	h.Normalize()
	h.Completion[day] = !h.Completion[day]
	h.History[len(h.History)-record.WeekSlots+day] = h.Completion[day]
	return nil
}
