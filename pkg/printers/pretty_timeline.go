package printers

import (
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/chronograma/pkg/app"
	"tableflip.dev/chronograma/pkg/timeline"
	"tableflip.dev/chronograma/pkg/timeutil"
)

const trackWidth = 36

// Timeline prints the planned and actual tracks side by side for one day,
// bucketed by starting hour. Overlapping items within an hour simply stack,
// matching the layout engine's no-collision contract.
func (pp *PrettyPrint) Timeline(report app.DayReport) {
	pp.Title(report.Day)

	head := color.New(color.Bold)
	_, _ = head.Printf("       %s %s\n", pad("Planned", trackWidth), "Actual")

	planned := bucketByHour(report.Planned)
	actual := bucketByHour(report.Actual)

	hour := color.New(color.Faint)
	for h := 0; h < 24; h++ {
		left := planned[h]
		right := actual[h]
		if len(left) == 0 && len(right) == 0 {
			continue
		}
		rows := len(left)
		if len(right) > rows {
			rows = len(right)
		}
		for row := 0; row < rows; row++ {
			if row == 0 {
				_, _ = hour.Printf("%2d:00  ", h)
			} else {
				fmt.Print("       ")
			}
			fmt.Print(trackCell(left, row))
			fmt.Print(" ")
			fmt.Print(trackCell(right, row))
			fmt.Println("")
		}
	}

	pp.NewLine()
	f := color.New(color.Faint)
	_, _ = f.Printf("%d/%d planned complete (%d%%), weekly habit rate %d%%\n",
		report.PlannedDone, len(report.Planned), report.CompletionPct, report.WeeklyRate)
}

func bucketByHour(placed []timeline.Placed) map[int][]timeline.Placed {
	buckets := make(map[int][]timeline.Placed, len(placed))
	for _, p := range placed {
		min, err := timeutil.ParseClock(p.Item.StartTime)
		if err != nil {
			continue // validated upstream
		}
		buckets[min/60] = append(buckets[min/60], p)
	}
	return buckets
}

func trackCell(items []timeline.Placed, row int) string {
	if row >= len(items) {
		return pad("", trackWidth)
	}
	item := items[row].Item
	label := pad(fmt.Sprintf("%s %s (%dm)", item.StartTime, item.Title, item.DurationMin), trackWidth)

	switch {
	case item.Completed:
		return color.New(color.Faint).Sprint(label)
	case item.Current:
		return color.New(color.Bold).Sprint(label)
	case item.Delayed:
		return color.New(color.FgHiYellow, color.Italic).Sprint(label)
	case item.Unplanned:
		return color.New(color.FgCyan).Sprint(label)
	default:
		return label
	}
}
