package store

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"tableflip.dev/chronograma/pkg/record"
)

type testConfig struct {
	path string
}

func (t testConfig) BasePath() string {
	return t.path
}

func load(t *testing.T) Persistence {
	t.Helper()
	p, err := Load(testConfig{path: t.TempDir()})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	return p
}

func TestScheduleRoundTrip(t *testing.T) {
	p := load(t)
	ctx := context.Background()

	items := []record.ScheduleItem{
		{
			ID: 1730535600000, DayKey: "2025-11-02", StartTime: "9:30", DurationMin: 45,
			Title: "Deep work", Type: "focus",
			Color: record.Color{BG: "#E3F2FD", Border: "#1565C0"},
			Completed: true,
		},
		{
			ID: 1730535600001, DayKey: "2025-11-03", StartTime: "14:00", DurationMin: 90,
			Title: "Review", Type: "meeting", Delayed: true,
		},
	}
	if err := p.SaveSchedule(record.TrackPlanned, items); err != nil {
		t.Fatalf("save schedule: %v", err)
	}

	got := p.Schedule(ctx, record.TrackPlanned)
	if !reflect.DeepEqual(got, items) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, items)
	}

	// The other track is independent and still empty.
	if actual := p.Schedule(ctx, record.TrackActual); len(actual) != 0 {
		t.Fatalf("expected empty actual track, got %d items", len(actual))
	}
}

func TestScheduleAbsentKeyIsEmptyNotNil(t *testing.T) {
	p := load(t)
	got := p.Schedule(context.Background(), record.TrackPlanned)
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Fatalf("expected no items, got %d", len(got))
	}
}

func TestScheduleDropsInvalidRecordsIndividually(t *testing.T) {
	base := t.TempDir()
	payload := `[
		{"id":1,"dateISO":"2025-11-02","startTime":"9:30","durationMin":45,"title":"keep","type":"x","color":{"bg":"","border":""}},
		{"id":2,"dateISO":"2025-11-02","startTime":"not a time","durationMin":45,"title":"bad clock","type":"x","color":{"bg":"","border":""}},
		{"id":3,"dateISO":"2025-11-02","startTime":"10:00","durationMin":-5,"title":"bad duration","type":"x","color":{"bg":"","border":""}}
	]`
	writeRaw(t, base, KeyPlannedSchedule, payload)

	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	got := p.Schedule(context.Background(), record.TrackPlanned)
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("expected only the valid record to survive, got %+v", got)
	}
}

func TestScheduleUnparsablePayloadIsEmpty(t *testing.T) {
	base := t.TempDir()
	writeRaw(t, base, KeyPlannedSchedule, `{"not":"an array"`)

	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	if got := p.Schedule(context.Background(), record.TrackPlanned); len(got) != 0 {
		t.Fatalf("expected empty collection for damaged payload, got %+v", got)
	}
}

func TestScheduleMigratesLegacyPayload(t *testing.T) {
	base := t.TempDir()
	// Shape written by early versions: full timestamp plus duration.
	payload := `[
		{"id":7,"title":"Old block","type":"focus","color":{"bg":"","border":""},
		 "date":"2025-11-02T09:30:00Z","duration":45}
	]`
	writeRaw(t, base, KeyActualSchedule, payload)

	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	got := p.Schedule(context.Background(), record.TrackActual)
	if len(got) != 1 {
		t.Fatalf("expected migrated record, got %+v", got)
	}
	item := got[0]
	if item.DurationMin != 45 {
		t.Fatalf("expected durationMin 45, got %d", item.DurationMin)
	}
	if item.DayKey == "" || item.StartTime == "" {
		t.Fatalf("expected derived day key and start time, got %+v", item)
	}
	if err := item.Validate(); err != nil {
		t.Fatalf("migrated record fails validation: %v", err)
	}
}

func TestTasksRoundTripAndSeeding(t *testing.T) {
	p := load(t)
	ctx := context.Background()

	// First load seeds defaults.
	seeded := p.Tasks(ctx)
	if len(seeded) == 0 {
		t.Fatal("expected seeded tasks on first run")
	}

	tasks := []record.Task{
		{ID: 10, Title: "Call dentist", DueDate: "Today", Priority: record.PriorityMedium, FolderID: "personal"},
	}
	if err := p.SaveTasks(tasks); err != nil {
		t.Fatalf("save tasks: %v", err)
	}
	if got := p.Tasks(ctx); !reflect.DeepEqual(got, tasks) {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestHabitsNormalizedOnLoad(t *testing.T) {
	base := t.TempDir()
	payload := `[
		{"id":"h1","name":"Stretch","icon":"book","time":"8:00",
		 "color":{"bg":"","text":""},"completion":[true,true],"history":[true]}
	]`
	writeRaw(t, base, KeyHabits, payload)

	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}
	habits := p.Habits(context.Background())
	if len(habits) != 1 {
		t.Fatalf("expected one habit, got %d", len(habits))
	}
	h := habits[0]
	if len(h.Completion) != record.WeekSlots {
		t.Fatalf("expected normalized completion, got length %d", len(h.Completion))
	}
	if len(h.History) < record.WeekSlots {
		t.Fatalf("expected padded history, got length %d", len(h.History))
	}
}

func TestHabitsSeededOnFirstRun(t *testing.T) {
	p := load(t)
	habits := p.Habits(context.Background())
	if len(habits) == 0 {
		t.Fatal("expected seeded habits on first run")
	}
	for _, h := range habits {
		if len(h.Completion) != record.WeekSlots {
			t.Fatalf("seed habit %q not normalized", h.ID)
		}
	}
}

func writeRaw(t *testing.T, base, key, payload string) {
	t.Helper()
	if err := os.MkdirAll(base, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(base, key), []byte(payload), 0o644); err != nil {
		t.Fatalf("write payload: %v", err)
	}
}
