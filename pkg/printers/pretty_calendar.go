package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/chronograma/pkg/dayview"
	"tableflip.dev/chronograma/pkg/timeutil"
)

const width = len("11 12 13 14 15 16 17") // an example week

// Month prints a month grid with each day cell weighted by its activity
// count: quiet days faint, light days plain, busy days bold.
func (pp *PrettyPrint) Month(then time.Time, activity map[string]int) {
	days := DaysIn(then)

	count := make([]int, days)
	first := time.Date(then.Year(), then.Month(), 1, 0, 0, 0, 0, time.Local)
	for i := 0; i < days; i++ {
		count[i] = activity[timeutil.DayKey(first.AddDate(0, 0, i))]
	}

	pp.MonthCount(then, count)
}

// MonthCount prints the month grid from a per-day count slice.
func (pp *PrettyPrint) MonthCount(then time.Time, count []int) {
	d := StartDay(then)

	tf := color.New(color.FgWhite, color.Italic)

	m := then.Month().String()
	mid := (width - len(m)) / 2
	_, _ = tf.Printf("%s%s%s\n", strings.Repeat(" ", mid), m, strings.Repeat(" ", width-mid-len(m)))

	days := DaysIn(then)

	// Pad out the start of the month.
	for i := time.Sunday; i < d; i++ {
		fmt.Print("   ")
	}

	quiet := color.New(color.Faint, color.FgWhite)
	light := color.New(color.FgWhite)
	busy := color.New(color.Bold, color.FgHiWhite)

	for i := 0; i < days; i++ {
		printer := quiet
		if i < len(count) {
			switch dayview.IntensityFor(count[i]) {
			case dayview.IntensityLow:
				printer = light
			case dayview.IntensityHigh:
				printer = busy
			}
		}
		_, _ = printer.Printf("%2d ", i+1)

		d++
		if d > time.Saturday {
			d = time.Sunday
			fmt.Print("\n")
		}
	}
	fmt.Print("\n\n")
}

func NextMonth(then time.Time) time.Time {
	return time.Date(then.Local().Year(), then.Local().Month()+1, 1, 1, 0, 0, 0, then.Location())
}

func DaysIn(then time.Time) int {
	return time.Date(then.UTC().Year(), then.UTC().Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func StartDay(then time.Time) time.Weekday {
	return time.Date(then.UTC().Year(), then.UTC().Month(), 1, 1, 0, 0, 0, time.UTC).Weekday()
}
