package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"tableflip.dev/chronograma/pkg/habit"
	"tableflip.dev/chronograma/pkg/record"
	"tableflip.dev/chronograma/pkg/store"
	"tableflip.dev/chronograma/pkg/timeline"
	"tableflip.dev/chronograma/pkg/timeutil"
)

// Service provides high-level operations over the record collections. It
// wraps persistence and the pure computation packages so CLIs and UIs can
// share logic. Every mutation persists a full snapshot of the affected
// collection before returning.
type Service struct {
	Persistence store.Persistence
	Scale       timeline.Scale
}

// ErrNotFound is returned when an id does not match any record. Mutations
// on missing records surface this instead of silently doing nothing.
var ErrNotFound = errors.New("app: record not found")

var errNoPersistence = errors.New("app: no persistence configured")

// NewService wires a Service with the default timeline scale.
func NewService(p store.Persistence) *Service {
	return &Service{Persistence: p, Scale: timeline.DefaultScale}
}

func (s *Service) scale() timeline.Scale {
	if s.Scale.PixelsPerHour == 0 {
		return timeline.DefaultScale
	}
	return s.Scale
}

// Schedule lists one track's items.
func (s *Service) Schedule(ctx context.Context, track record.Track) ([]record.ScheduleItem, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	if !track.IsValid() {
		return nil, fmt.Errorf("app: invalid track %q", track)
	}
	return s.Persistence.Schedule(ctx, track), nil
}

// Tasks lists all tasks.
func (s *Service) Tasks(ctx context.Context) ([]record.Task, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Tasks(ctx), nil
}

// Habits lists all habits.
func (s *Service) Habits(ctx context.Context) ([]record.Habit, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Habits(ctx), nil
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Watch(ctx)
}

// AddScheduleItem stores a new item on the given track. A missing ID is
// allocated and a missing day key defaults to today.
func (s *Service) AddScheduleItem(ctx context.Context, track record.Track, item record.ScheduleItem) (record.ScheduleItem, error) {
	if s.Persistence == nil {
		return record.ScheduleItem{}, errNoPersistence
	}
	if !track.IsValid() {
		return record.ScheduleItem{}, fmt.Errorf("app: invalid track %q", track)
	}
	if item.ID == 0 {
		item.ID = record.NextID()
	}
	if item.DayKey == "" {
		item.DayKey = timeutil.DayKey(time.Now())
	}
	if err := item.Validate(); err != nil {
		return record.ScheduleItem{}, err
	}
	items := s.Persistence.Schedule(ctx, track)
	items = append(items, item)
	if err := s.Persistence.SaveSchedule(track, items); err != nil {
		return record.ScheduleItem{}, err
	}
	return item, nil
}

// ScheduleItemPatch holds the editable schedule item fields; nil members
// are left unchanged.
type ScheduleItemPatch struct {
	Title       *string
	DayKey      *string
	StartTime   *string
	DurationMin *int
	Type        *string
	Delayed     *bool
	Completed   *bool
	Current     *bool
	Unplanned   *bool
}

func (p ScheduleItemPatch) apply(item *record.ScheduleItem) {
	if p.Title != nil {
		item.Title = *p.Title
	}
	if p.DayKey != nil {
		item.DayKey = *p.DayKey
	}
	if p.StartTime != nil {
		item.StartTime = *p.StartTime
	}
	if p.DurationMin != nil {
		item.DurationMin = *p.DurationMin
	}
	if p.Type != nil {
		item.Type = *p.Type
	}
	if p.Delayed != nil {
		item.Delayed = *p.Delayed
	}
	if p.Completed != nil {
		item.Completed = *p.Completed
	}
	if p.Current != nil {
		item.Current = *p.Current
	}
	if p.Unplanned != nil {
		item.Unplanned = *p.Unplanned
	}
}

// UpdateScheduleItem merges the patch into the item with the given id. The
// patched record must still validate; otherwise nothing is written.
func (s *Service) UpdateScheduleItem(ctx context.Context, track record.Track, id int64, patch ScheduleItemPatch) (record.ScheduleItem, error) {
	if s.Persistence == nil {
		return record.ScheduleItem{}, errNoPersistence
	}
	items := s.Persistence.Schedule(ctx, track)
	for i := range items {
		if items[i].ID != id {
			continue
		}
		updated := items[i]
		patch.apply(&updated)
		if err := updated.Validate(); err != nil {
			return record.ScheduleItem{}, err
		}
		items[i] = updated
		if err := s.Persistence.SaveSchedule(track, items); err != nil {
			return record.ScheduleItem{}, err
		}
		return updated, nil
	}
	return record.ScheduleItem{}, fmt.Errorf("%w: schedule item %d", ErrNotFound, id)
}

// DeleteScheduleItem removes the item with the given id from the track.
func (s *Service) DeleteScheduleItem(ctx context.Context, track record.Track, id int64) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	items := s.Persistence.Schedule(ctx, track)
	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return fmt.Errorf("%w: schedule item %d", ErrNotFound, id)
	}
	return s.Persistence.SaveSchedule(track, kept)
}

// AddTask stores a new task. Priority defaults to medium.
func (s *Service) AddTask(ctx context.Context, task record.Task) (record.Task, error) {
	if s.Persistence == nil {
		return record.Task{}, errNoPersistence
	}
	if task.ID == 0 {
		task.ID = record.NextID()
	}
	if task.Priority == "" {
		task.Priority = record.PriorityMedium
	}
	if err := task.Validate(); err != nil {
		return record.Task{}, err
	}
	tasks := s.Persistence.Tasks(ctx)
	tasks = append(tasks, task)
	if err := s.Persistence.SaveTasks(tasks); err != nil {
		return record.Task{}, err
	}
	return task, nil
}

// ToggleTask flips a task's completed flag.
func (s *Service) ToggleTask(ctx context.Context, id int64) (record.Task, error) {
	if s.Persistence == nil {
		return record.Task{}, errNoPersistence
	}
	tasks := s.Persistence.Tasks(ctx)
	for i := range tasks {
		if tasks[i].ID != id {
			continue
		}
		tasks[i].Completed = !tasks[i].Completed
		if err := s.Persistence.SaveTasks(tasks); err != nil {
			return record.Task{}, err
		}
		return tasks[i], nil
	}
	return record.Task{}, fmt.Errorf("%w: task %d", ErrNotFound, id)
}

// DeleteTask removes the task with the given id.
func (s *Service) DeleteTask(ctx context.Context, id int64) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	tasks := s.Persistence.Tasks(ctx)
	kept := tasks[:0]
	for _, task := range tasks {
		if task.ID != id {
			kept = append(kept, task)
		}
	}
	if len(kept) == len(tasks) {
		return fmt.Errorf("%w: task %d", ErrNotFound, id)
	}
	return s.Persistence.SaveTasks(kept)
}

// AddHabit stores a new habit, normalized so its history tail is always
// indexable by slot toggles.
func (s *Service) AddHabit(ctx context.Context, h record.Habit) (record.Habit, error) {
	if s.Persistence == nil {
		return record.Habit{}, errNoPersistence
	}
	if h.ID == "" {
		h.ID = strconv.FormatInt(record.NextID(), 10)
	}
	h.Normalize()
	if err := h.Validate(); err != nil {
		return record.Habit{}, err
	}
	habits := s.Persistence.Habits(ctx)
	habits = append(habits, h)
	if err := s.Persistence.SaveHabits(habits); err != nil {
		return record.Habit{}, err
	}
	return h, nil
}

// ToggleHabitSlot flips one weekday slot on a habit and persists the
// result.
func (s *Service) ToggleHabitSlot(ctx context.Context, habitID string, day int) (record.Habit, error) {
	if s.Persistence == nil {
		return record.Habit{}, errNoPersistence
	}
	habits := s.Persistence.Habits(ctx)
	for i := range habits {
		if habits[i].ID != habitID {
			continue
		}
		if err := habit.ToggleSlot(&habits[i], day); err != nil {
			return record.Habit{}, err
		}
		if err := s.Persistence.SaveHabits(habits); err != nil {
			return record.Habit{}, err
		}
		return habits[i], nil
	}
	return record.Habit{}, fmt.Errorf("%w: habit %q", ErrNotFound, habitID)
}

// DeleteHabit removes the habit with the given id.
func (s *Service) DeleteHabit(ctx context.Context, habitID string) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	habits := s.Persistence.Habits(ctx)
	kept := habits[:0]
	for _, h := range habits {
		if h.ID != habitID {
			kept = append(kept, h)
		}
	}
	if len(kept) == len(habits) {
		return fmt.Errorf("%w: habit %q", ErrNotFound, habitID)
	}
	return s.Persistence.SaveHabits(kept)
}
