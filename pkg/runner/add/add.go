// Package add provides the runner logic for creating records.
package add

import (
	"context"
	"errors"

	"tableflip.dev/chronograma/pkg/app"
	"tableflip.dev/chronograma/pkg/printers"
	"tableflip.dev/chronograma/pkg/record"
)

// Schedule adds an item to one of the two schedule tracks and reprints the
// day's timeline.
type Schedule struct {
	Service *app.Service

	Track       record.Track
	Title       string
	Type        string
	Day         string
	At          string
	DurationMin int
	Completed   bool
}

func (n *Schedule) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}

	item, err := n.Service.AddScheduleItem(ctx, n.Track, record.ScheduleItem{
		Title:       n.Title,
		Type:        n.Type,
		DayKey:      n.Day,
		StartTime:   n.At,
		DurationMin: n.DurationMin,
		Completed:   n.Completed,
	})
	if err != nil {
		return err
	}

	report, err := n.Service.DayReport(ctx, item.DayKey)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Timeline(report)
	return nil
}

// Task adds a to-do entry and reprints the task list.
type Task struct {
	Service *app.Service

	Title    string
	Due      string
	Priority record.Priority
	Folder   string
}

func (n *Task) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}

	if _, err := n.Service.AddTask(ctx, record.Task{
		Title:    n.Title,
		DueDate:  n.Due,
		Priority: n.Priority,
		FolderID: n.Folder,
	}); err != nil {
		return err
	}

	tasks, err := n.Service.Tasks(ctx)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title("To-Do")
	pp.Tasks(tasks...)
	return nil
}

// Habit adds a habit and reprints the week view.
type Habit struct {
	Service *app.Service

	Name string
	Icon string
	Time string
}

func (n *Habit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}

	if _, err := n.Service.AddHabit(ctx, record.Habit{
		Name: n.Name,
		Icon: n.Icon,
		Time: n.Time,
	}); err != nil {
		return err
	}

	report, err := n.Service.HabitReport(ctx)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title("Habits")
	pp.HabitWeek(report)
	return nil
}
