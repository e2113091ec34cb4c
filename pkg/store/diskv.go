package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/chronograma/pkg/record"
)

// Fixed storage keys. Each key holds one JSON-encoded collection; every
// write replaces the whole value with a snapshot of the in-memory state.
const (
	KeyPlannedSchedule = "plannedSchedule"
	KeyActualSchedule  = "actualSchedule"
	KeyTasks           = "tasks"
	KeyHabits          = "habits"
)

// ScheduleKey maps a track to its storage key.
func ScheduleKey(track record.Track) string {
	if track == record.TrackActual {
		return KeyActualSchedule
	}
	return KeyPlannedSchedule
}

// Persistence defines the persistence contract for the record collections.
// Readers never fail: a missing, unreadable, or partially invalid payload
// degrades to whatever subset survives, with each problem reported.
type Persistence interface {
	Schedule(ctx context.Context, track record.Track) []record.ScheduleItem
	Tasks(ctx context.Context) []record.Task
	Habits(ctx context.Context) []record.Habit
	SaveSchedule(track record.Track, items []record.ScheduleItem) error
	SaveTasks(tasks []record.Task) error
	SaveHabits(habits []record.Habit) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
// First run seeds the tasks and habits collections.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	p := &persistence{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		Transform:    flatTransform,
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}

	if err := p.seedDefaults(); err != nil {
		return nil, err
	}
	return p, nil
}

// flatTransform keeps every key as a file directly under the base path.
func flatTransform(string) []string { return []string{} }

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) seedDefaults() error {
	if !p.d.Has(KeyTasks) {
		if err := p.SaveTasks(record.SeedTasks()); err != nil {
			return fmt.Errorf("store: seed tasks: %w", err)
		}
	}
	if !p.d.Has(KeyHabits) {
		if err := p.SaveHabits(record.SeedHabits()); err != nil {
			return fmt.Errorf("store: seed habits: %w", err)
		}
	}
	return nil
}

// readKey decodes the JSON payload under key into v. Absent keys and parse
// failures both leave v untouched; a parse failure is reported since it
// means a damaged payload is being discarded wholesale.
func (p *persistence) readKey(key string, v any) bool {
	data, err := p.d.Read(key)
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		fmt.Fprintf(os.Stderr, "store: %s: %v\n", key, err)
		return false
	}
	return true
}

func (p *persistence) writeKey(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (p *persistence) Schedule(_ context.Context, track record.Track) []record.ScheduleItem {
	key := ScheduleKey(track)
	var stored []storedScheduleItem
	if !p.readKey(key, &stored) {
		return []record.ScheduleItem{}
	}
	items := make([]record.ScheduleItem, 0, len(stored))
	for _, s := range stored {
		item := s.migrate()
		if err := item.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "store: %s: dropping record %d: %v\n", key, item.ID, err)
			continue
		}
		items = append(items, item)
	}
	return items
}

func (p *persistence) Tasks(_ context.Context) []record.Task {
	var stored []record.Task
	tasks := make([]record.Task, 0)
	if !p.readKey(KeyTasks, &stored) {
		return tasks
	}
	for _, t := range stored {
		if err := t.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "store: %s: dropping record %d: %v\n", KeyTasks, t.ID, err)
			continue
		}
		tasks = append(tasks, t)
	}
	return tasks
}

func (p *persistence) Habits(_ context.Context) []record.Habit {
	var stored []record.Habit
	habits := make([]record.Habit, 0)
	if !p.readKey(KeyHabits, &stored) {
		return habits
	}
	for _, h := range stored {
		if err := h.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "store: %s: dropping record %q: %v\n", KeyHabits, h.ID, err)
			continue
		}
		h.Normalize()
		habits = append(habits, h)
	}
	return habits
}

func (p *persistence) SaveSchedule(track record.Track, items []record.ScheduleItem) error {
	if items == nil {
		items = []record.ScheduleItem{}
	}
	return p.writeKey(ScheduleKey(track), items)
}

func (p *persistence) SaveTasks(tasks []record.Task) error {
	if tasks == nil {
		tasks = []record.Task{}
	}
	return p.writeKey(KeyTasks, tasks)
}

func (p *persistence) SaveHabits(habits []record.Habit) error {
	if habits == nil {
		habits = []record.Habit{}
	}
	return p.writeKey(KeyHabits, habits)
}
