// Package get provides runners that print the day, task, and habit views.
package get

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/chronograma/pkg/app"
	"tableflip.dev/chronograma/pkg/dayview"
	"tableflip.dev/chronograma/pkg/printers"
	"tableflip.dev/chronograma/pkg/timeutil"
)

// Day prints the two-track timeline for one day.
type Day struct {
	Service *app.Service
	Day     string
	ShowID  bool
}

func (n *Day) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}
	if n.Day == "" {
		n.Day = timeutil.DayKey(time.Now())
	}

	report, err := n.Service.DayReport(ctx, n.Day)
	if err != nil {
		return err
	}
	fmt.Println("")
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Timeline(report)
	return nil
}

// Tasks prints the task list, optionally filtered by folder.
type Tasks struct {
	Service *app.Service
	Folder  string
	ShowID  bool
}

func (n *Tasks) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}

	tasks, err := n.Service.Tasks(ctx)
	if err != nil {
		return err
	}
	tasks = dayview.TasksByFolder(tasks, n.Folder)

	fmt.Println("")
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	title := "To-Do"
	if n.Folder != "" && n.Folder != "all" {
		title = fmt.Sprintf("To-Do #%s", n.Folder)
	}
	pp.TitleWithCount(title, len(tasks))
	pp.Tasks(tasks...)
	return nil
}

// Habits prints the habit week view.
type Habits struct {
	Service *app.Service
	ShowID  bool
}

func (n *Habits) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not get, no service")
	}

	report, err := n.Service.HabitReport(ctx)
	if err != nil {
		return err
	}
	fmt.Println("")
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.Title("Habits")
	pp.HabitWeek(report)
	return nil
}
