package store

import (
	"context"
	"testing"
	"time"

	"tableflip.dev/chronograma/pkg/record"
)

func TestPersistenceWatchEmitsKeyChanges(t *testing.T) {
	base := t.TempDir()
	p, err := Load(testConfig{path: base})
	if err != nil {
		t.Fatalf("load persistence: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := p.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow the watcher goroutine to subscribe before storing.
	time.Sleep(50 * time.Millisecond)

	items := []record.ScheduleItem{
		{ID: 1, DayKey: "2025-11-02", StartTime: "9:00", DurationMin: 30, Title: "block"},
	}
	if err := p.SaveSchedule(record.TrackPlanned, items); err != nil {
		t.Fatalf("save schedule: %v", err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type == EventInvalidated {
				return
			}
			if evt.Type == EventKeyChanged {
				if evt.Key != KeyPlannedSchedule {
					t.Fatalf("expected key %q, got %q", KeyPlannedSchedule, evt.Key)
				}
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for key change event")
		}
	}
}
