package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/chronograma/pkg/app"
)

// HabitWeek prints each habit with its seven weekday slots.
func (pp *PrettyPrint) HabitWeek(report app.HabitReport) {
	if len(report.Stats) == 0 {
		pp.none()
		return
	}

	t := color.New()
	f := color.New(color.Faint)
	on := color.New(color.FgHiGreen)

	for _, s := range report.Stats {
		if pp.ShowID {
			y := color.New(color.FgHiYellow, color.Italic, color.Faint)
			_, _ = y.Print(s.Habit.ID)
			_, _ = y.Print(strings.Repeat(" ", max(1, len(spacing)-len(s.Habit.ID))))
		}
		_, _ = t.Printf("%s ", pad(s.Habit.Name, 24))
		for _, done := range s.Habit.Completion {
			if done {
				_, _ = on.Print("● ")
			} else {
				_, _ = f.Print("○ ")
			}
		}
		_, _ = f.Printf(" %s\n", s.Habit.Time)
	}
	_, _ = t.Println("")
}

// HabitStats prints the stats table: streaks and completion per habit plus
// the aggregate line.
func (pp *PrettyPrint) HabitStats(report app.HabitReport) {
	tbl := uitable.New()
	tbl.Separator = "  "
	bold := color.New(color.Bold).SprintFunc()
	tbl.AddRow(bold("Habit"), bold("Streak"), bold("Best"), bold("Week"))
	for _, s := range report.Stats {
		tbl.AddRow(s.Habit.Name,
			fmt.Sprintf("%d", s.CurrentStreak),
			fmt.Sprintf("%d", s.LongestStreak),
			fmt.Sprintf("%d%%", s.CompletionPct))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)

	f := color.New(color.Faint)
	_, _ = f.Printf("\nweekly rate %d%%, longest streak overall %d\n",
		report.WeeklyRate, report.LongestStreak)
}
