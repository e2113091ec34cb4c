// Package complete provides the runner logic for toggling task completion.
package complete

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/chronograma/pkg/app"
	"tableflip.dev/chronograma/pkg/printers"
)

// Complete flips a task's completed flag.
type Complete struct {
	Service *app.Service
	ID      int64
}

// Do executes the toggle for the configured task ID.
func (n *Complete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not complete, no service")
	}

	if _, err := n.Service.ToggleTask(ctx, n.ID); err != nil {
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
