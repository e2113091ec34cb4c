package record

import (
	"errors"
	"testing"
)

func validItem() ScheduleItem {
	return ScheduleItem{
		ID:          1730535600000,
		DayKey:      "2025-11-02",
		StartTime:   "9:30",
		DurationMin: 45,
		Title:       "Deep work",
		Type:        "focus",
	}
}

func TestScheduleItemValidate(t *testing.T) {
	if err := validItem().Validate(); err != nil {
		t.Fatalf("expected valid item, got %v", err)
	}
}

func TestScheduleItemValidateRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*ScheduleItem)
		want   error
	}{
		{"missing id", func(i *ScheduleItem) { i.ID = 0 }, ErrMissingID},
		{"blank title", func(i *ScheduleItem) { i.Title = "  " }, ErrMissingTitle},
		{"bad day key", func(i *ScheduleItem) { i.DayKey = "11/02/2025" }, ErrInvalidDay},
		{"bad clock", func(i *ScheduleItem) { i.StartTime = "half past nine" }, ErrInvalidClock},
		{"zero duration", func(i *ScheduleItem) { i.DurationMin = 0 }, ErrInvalidDuration},
		{"negative duration", func(i *ScheduleItem) { i.DurationMin = -15 }, ErrInvalidDuration},
	}
	for _, tc := range cases {
		item := validItem()
		tc.mutate(&item)
		err := item.Validate()
		if err == nil || !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestTaskValidate(t *testing.T) {
	task := Task{ID: 2, Title: "Call dentist", DueDate: "Today", Priority: PriorityMedium, FolderID: "personal"}
	if err := task.Validate(); err != nil {
		t.Fatalf("expected valid task, got %v", err)
	}

	task.Priority = Priority("urgent")
	if err := task.Validate(); !errors.Is(err, ErrInvalidPriority) {
		t.Fatalf("expected ErrInvalidPriority, got %v", err)
	}
}

func TestHabitNormalizePadsShortArrays(t *testing.T) {
	h := Habit{ID: "h1", Name: "Stretch", Completion: []bool{true, true}, History: []bool{true}}
	h.Normalize()

	if len(h.Completion) != WeekSlots {
		t.Fatalf("expected %d completion slots, got %d", WeekSlots, len(h.Completion))
	}
	if len(h.History) != WeekSlots {
		t.Fatalf("expected history padded to %d, got %d", WeekSlots, len(h.History))
	}
	for i := 0; i < WeekSlots; i++ {
		if h.History[i] != h.Completion[i] {
			t.Fatalf("history tail diverges from completion at slot %d", i)
		}
	}
	if !h.Completion[0] || !h.Completion[1] {
		t.Fatal("normalize lost existing completion slots")
	}
}

func TestHabitNormalizeKeepsLongHistory(t *testing.T) {
	h := Habit{
		ID:         "h2",
		Name:       "Run",
		Completion: []bool{true, false, true, false, true, false, true},
		History:    make([]bool, 30),
	}
	h.Normalize()

	if len(h.History) != 30 {
		t.Fatalf("expected history length preserved, got %d", len(h.History))
	}
	tail := h.History[len(h.History)-WeekSlots:]
	for i, want := range h.Completion {
		if tail[i] != want {
			t.Fatalf("history tail slot %d = %v, want %v", i, tail[i], want)
		}
	}
}

func TestNextIDMonotonic(t *testing.T) {
	prev := NextID()
	for i := 0; i < 1000; i++ {
		id := NextID()
		if id <= prev {
			t.Fatalf("id %d not greater than previous %d", id, prev)
		}
		prev = id
	}
}
