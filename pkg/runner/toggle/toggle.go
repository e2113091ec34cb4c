// Package toggle provides the runner logic for flipping habit slots.
package toggle

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/chronograma/pkg/app"
	"tableflip.dev/chronograma/pkg/printers"
)

// Toggle flips one weekday slot of a habit.
type Toggle struct {
	Service *app.Service
	HabitID string
	Day     int
}

func (n *Toggle) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not toggle, no service")
	}

	if _, err := n.Service.ToggleHabitSlot(ctx, n.HabitID, n.Day); err != nil {
		return err
	}

	report, err := n.Service.HabitReport(ctx)
	if err != nil {
		return err
	}
	fmt.Println("")
	pp := printers.PrettyPrint{}
	pp.Title("Habits")
	pp.HabitWeek(report)
	return nil
}
