// Package stats provides the runner logic for habit analytics.
package stats

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/chronograma/pkg/app"
	"tableflip.dev/chronograma/pkg/printers"
)

// Stats prints streaks and completion rates for all habits.
type Stats struct {
	Service *app.Service
}

func (n *Stats) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show stats, no service")
	}

	report, err := n.Service.HabitReport(ctx)
	if err != nil {
		return err
	}
	fmt.Println("")
	pp := printers.PrettyPrint{}
	pp.Title("Habit Stats")
	pp.HabitStats(report)
	return nil
}
