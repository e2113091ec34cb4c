package timeline

import (
	"testing"

	"tableflip.dev/chronograma/pkg/record"
)

func item(start string, duration int) record.ScheduleItem {
	return record.ScheduleItem{
		ID:          1,
		DayKey:      "2025-11-02",
		StartTime:   start,
		DurationMin: duration,
		Title:       "block",
	}
}

func TestLayoutHeightExactAcrossScales(t *testing.T) {
	for _, pph := range []float64{60, 80} {
		s := Scale{OriginMinutes: 0, PixelsPerHour: pph}
		span, err := Layout(item("9:30", 45), s)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		wantHeight := 45.0 / 60 * pph
		if span.Height != wantHeight {
			t.Fatalf("pph %v: height = %v, want %v", pph, span.Height, wantHeight)
		}
		wantTop := 570.0 / 60 * pph
		if span.Top != wantTop {
			t.Fatalf("pph %v: top = %v, want %v", pph, span.Top, wantTop)
		}
	}
}

func TestLayoutBeforeOriginIsNegative(t *testing.T) {
	s := Scale{OriginMinutes: 6 * 60, PixelsPerHour: 80}
	span, err := Layout(item("5:00", 30), s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if span.Top != -80 {
		t.Fatalf("expected top -80 for an hour before origin, got %v", span.Top)
	}
}

func TestLayoutRejectsMalformedStart(t *testing.T) {
	if _, err := Layout(item("noon", 30), DefaultScale); err == nil {
		t.Fatal("expected error for malformed start time")
	}
}

func TestLayoutDoesNotMutate(t *testing.T) {
	in := item("9:30", 45)
	before := in
	if _, err := Layout(in, DefaultScale); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in != before {
		t.Fatal("layout mutated its input")
	}
}

func TestLayoutAllPreservesOrder(t *testing.T) {
	items := []record.ScheduleItem{item("9:00", 60), item("8:00", 30), item("10:15", 45)}
	placed, err := LayoutAll(items, DefaultScale)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(placed) != len(items) {
		t.Fatalf("expected %d placed items, got %d", len(items), len(placed))
	}
	for i := range items {
		if placed[i].Item.StartTime != items[i].StartTime {
			t.Fatalf("order changed at %d", i)
		}
	}
}

func TestLayoutAllFailsOnMalformedItem(t *testing.T) {
	items := []record.ScheduleItem{item("9:00", 60), item("bad", 30)}
	if _, err := LayoutAll(items, DefaultScale); err == nil {
		t.Fatal("expected error for malformed item in batch")
	}
}
