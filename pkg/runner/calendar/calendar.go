// Package calendar provides the runner logic for the monthly activity view.
package calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/chronograma/pkg/app"
	"tableflip.dev/chronograma/pkg/dayview"
	"tableflip.dev/chronograma/pkg/printers"
	"tableflip.dev/chronograma/pkg/record"
)

// Calendar prints a month grid shaded by scheduled activity.
type Calendar struct {
	Service *app.Service
	Month   time.Time
}

func (n *Calendar) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show calendar, no service")
	}

	planned, err := n.Service.Schedule(ctx, record.TrackPlanned)
	if err != nil {
		return err
	}
	actual, err := n.Service.Schedule(ctx, record.TrackActual)
	if err != nil {
		return err
	}

	activity := dayview.ActivityMap(planned, actual)

	fmt.Println("")
	pp := printers.PrettyPrint{}
	pp.Month(n.Month, activity)
	return nil
}
