// Package timeline maps schedule items onto a vertical pixel axis for
// rendering. The math is pure: identical inputs always produce identical
// spans and no item is ever mutated.
package timeline

import (
	"tableflip.dev/chronograma/pkg/record"
	"tableflip.dev/chronograma/pkg/timeutil"
)

// Scale fixes the vertical geometry of a timeline view. OriginMinutes is
// the minute of day rendered at the top edge (0 for a full-day view, 360
// for a 6:00 start). PixelsPerHour sets the zoom.
type Scale struct {
	OriginMinutes int
	PixelsPerHour float64
}

// DefaultScale matches the app's full-day view.
var DefaultScale = Scale{OriginMinutes: 0, PixelsPerHour: 80}

// Span is a vertical pixel range. Top may be negative for items that start
// before the origin; no clamping is applied here. Minimum visual height is
// a rendering concern, not a layout one, so Height is the exact value.
type Span struct {
	Top    float64
	Height float64
}

// Placed pairs an item with its computed span.
type Placed struct {
	Item record.ScheduleItem
	Span Span
}

// Layout computes the span for one item. A malformed start time is an
// error; silently propagating NaN offsets into rendering is not an option.
func Layout(item record.ScheduleItem, s Scale) (Span, error) {
	start, err := timeutil.ParseClock(item.StartTime)
	if err != nil {
		return Span{}, err
	}
	return Span{
		Top:    float64(start-s.OriginMinutes) / 60 * s.PixelsPerHour,
		Height: float64(item.DurationMin) / 60 * s.PixelsPerHour,
	}, nil
}

// LayoutAll lays out a whole track in input order. The first malformed item
// fails the batch; callers validate on load so this only trips on records
// that bypassed the schema.
func LayoutAll(items []record.ScheduleItem, s Scale) ([]Placed, error) {
	placed := make([]Placed, 0, len(items))
	for _, item := range items {
		span, err := Layout(item, s)
		if err != nil {
			return nil, err
		}
		placed = append(placed, Placed{Item: item, Span: span})
	}
	return placed, nil
}
