package habit

import (
	"errors"
	"reflect"
	"testing"

	"tableflip.dev/chronograma/pkg/record"
)

func TestCurrentStreak(t *testing.T) {
	cases := []struct {
		history []bool
		want    int
	}{
		{[]bool{true, true, false, true}, 1},
		{nil, 0},
		{[]bool{true, true, true}, 3},
		{[]bool{true, false}, 0},
	}
	for _, tc := range cases {
		if got := CurrentStreak(tc.history); got != tc.want {
			t.Fatalf("CurrentStreak(%v) = %d, want %d", tc.history, got, tc.want)
		}
	}
}

func TestLongestStreak(t *testing.T) {
	if got := LongestStreak([]bool{true, false, true, true, true, false}); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	// The best run ending at the final entry must not be dropped.
	if got := LongestStreak([]bool{false, true, true}); got != 2 {
		t.Fatalf("expected 2 for trailing run, got %d", got)
	}
	if got := LongestStreak(nil); got != 0 {
		t.Fatalf("expected 0 for empty history, got %d", got)
	}
}

func TestCompletionPercentage(t *testing.T) {
	if got := CompletionPercentage([]bool{true, false, true, true}); got != 75 {
		t.Fatalf("expected 75, got %d", got)
	}
	if got := CompletionPercentage(nil); got != 0 {
		t.Fatalf("expected 0 for empty completion, got %d", got)
	}
}

func TestWeeklyRate(t *testing.T) {
	if got := WeeklyRate(nil); got != 0 {
		t.Fatalf("expected 0 for no habits, got %d", got)
	}

	full := record.Habit{ID: "a", Name: "a", Completion: []bool{true, true, true, true, true, true, true}}
	empty := record.Habit{ID: "b", Name: "b", Completion: make([]bool, 7)}
	if got := WeeklyRate([]record.Habit{full, empty}); got != 50 {
		t.Fatalf("expected 50, got %d", got)
	}
}

func TestOverallLongestStreak(t *testing.T) {
	habits := []record.Habit{
		{ID: "a", Name: "a", History: []bool{true, true, false}},
		{ID: "b", Name: "b", History: []bool{true, true, true, true}},
	}
	if got := OverallLongestStreak(habits); got != 4 {
		t.Fatalf("expected 4, got %d", got)
	}
}

func TestToggleSlotIdempotentPair(t *testing.T) {
	h := record.Habit{ID: "h", Name: "h", History: make([]bool, 20)}
	h.Normalize()
	before := record.Habit{
		Completion: append([]bool(nil), h.Completion...),
		History:    append([]bool(nil), h.History...),
	}

	if err := ToggleSlot(&h, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !h.Completion[3] {
		t.Fatal("expected slot 3 set after toggle")
	}
	if !h.History[len(h.History)-record.WeekSlots+3] {
		t.Fatal("expected history tail slot set after toggle")
	}

	if err := ToggleSlot(&h, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(h.Completion, before.Completion) {
		t.Fatal("double toggle did not restore completion")
	}
	if !reflect.DeepEqual(h.History, before.History) {
		t.Fatal("double toggle did not restore history")
	}
}

func TestToggleSlotShortHistory(t *testing.T) {
	// A habit persisted before normalization existed may carry a short
	// history; toggling must repair it instead of indexing out of range.
	h := record.Habit{ID: "h", Name: "h", Completion: []bool{true}, History: []bool{true}}
	if err := ToggleSlot(&h, 6); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(h.History) < record.WeekSlots {
		t.Fatalf("expected history padded, got length %d", len(h.History))
	}
	if !h.Completion[6] {
		t.Fatal("expected slot 6 set")
	}
}

func TestToggleSlotRange(t *testing.T) {
	h := record.Habit{ID: "h", Name: "h"}
	for _, day := range []int{-1, 7, 100} {
		if err := ToggleSlot(&h, day); !errors.Is(err, ErrSlotRange) {
			t.Fatalf("expected ErrSlotRange for day %d, got %v", day, err)
		}
	}
}
