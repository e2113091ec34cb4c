// Package dayview derives the calendar-facing views: the subset of records
// belonging to a selected day and the date-to-count activity index used to
// decorate calendar cells. Everything here is pure and re-derived on each
// change; collections stay small enough that memoization buys nothing.
package dayview

import (
	"tableflip.dev/chronograma/pkg/record"
)

// FilterByDay returns the items whose day key equals day, by exact string
// equality. The result is never nil, even when nothing matches.
func FilterByDay(items []record.ScheduleItem, day string) []record.ScheduleItem {
	matched := make([]record.ScheduleItem, 0, len(items))
	for _, item := range items {
		if item.DayKey == day {
			matched = append(matched, item)
		}
	}
	return matched
}

// ActivityMap counts items per day key across both tracks. Used purely for
// calendar cell decoration.
func ActivityMap(planned, actual []record.ScheduleItem) map[string]int {
	counts := make(map[string]int, len(planned)+len(actual))
	for _, item := range planned {
		counts[item.DayKey]++
	}
	for _, item := range actual {
		counts[item.DayKey]++
	}
	return counts
}

// Intensity is the three-tier visual weight of a calendar cell.
type Intensity int

const (
	IntensityNone Intensity = iota
	IntensityLow
	IntensityHigh
)

// IntensityFor buckets an activity count: none, 1-2, or 3 and up.
func IntensityFor(count int) Intensity {
	switch {
	case count <= 0:
		return IntensityNone
	case count <= 2:
		return IntensityLow
	default:
		return IntensityHigh
	}
}

// TasksByFolder filters tasks by folder. The "all" folder is a synthetic
// catch-all and returns every task.
func TasksByFolder(tasks []record.Task, folderID string) []record.Task {
	if folderID == "" || folderID == "all" {
		out := make([]record.Task, len(tasks))
		copy(out, tasks)
		return out
	}
	matched := make([]record.Task, 0, len(tasks))
	for _, task := range tasks {
		if task.FolderID == folderID {
			matched = append(matched, task)
		}
	}
	return matched
}
