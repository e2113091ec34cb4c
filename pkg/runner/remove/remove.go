// Package remove provides the runner logic for deleting records. The
// confirmation step lives with the caller; by the time a runner executes
// the decision is final.
package remove

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/chronograma/pkg/app"
	"tableflip.dev/chronograma/pkg/printers"
	"tableflip.dev/chronograma/pkg/record"
)

// ScheduleItem deletes an item from one schedule track.
type ScheduleItem struct {
	Service *app.Service
	Track   record.Track
	ID      int64
	Day     string
}

func (n *ScheduleItem) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}
	if err := n.Service.DeleteScheduleItem(ctx, n.Track, n.ID); err != nil {
		return err
	}
	if n.Day == "" {
		return nil
	}
	report, err := n.Service.DayReport(ctx, n.Day)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Timeline(report)
	return nil
}

// Task deletes a task.
type Task struct {
	Service *app.Service
	ID      int64
}

func (n *Task) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}
	if err := n.Service.DeleteTask(ctx, n.ID); err != nil {
		return err
	}
	tasks, err := n.Service.Tasks(ctx)
	if err != nil {
		return err
	}
	fmt.Println("")
	pp := printers.PrettyPrint{ShowID: true}
	pp.Title("To-Do")
	pp.Tasks(tasks...)
	return nil
}

// Habit deletes a habit.
type Habit struct {
	Service *app.Service
	ID      string
}

func (n *Habit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no service")
	}
	if err := n.Service.DeleteHabit(ctx, n.ID); err != nil {
		return err
	}
	report, err := n.Service.HabitReport(ctx)
	if err != nil {
		return err
	}
	fmt.Println("")
	pp := printers.PrettyPrint{ShowID: true}
	pp.Title("Habits")
	pp.HabitWeek(report)
	return nil
}
