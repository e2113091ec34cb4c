package record

// Track names one of the two independent schedule collections. Planned and
// actual items are never linked at the data level; comparison between the
// two tracks is visual only.
type Track string

const (
	TrackPlanned Track = "planned"
	TrackActual  Track = "actual"
)

func (t Track) IsValid() bool {
	switch t {
	case TrackPlanned, TrackActual:
		return true
	default:
		return false
	}
}

func (t Track) String() string {
	return string(t)
}

// Color carries presentation-only styling for a schedule item. It is stored
// and returned untouched.
type Color struct {
	BG     string `json:"bg"`
	Border string `json:"border"`
}

// ScheduleItem is a single timeline entry on either track.
type ScheduleItem struct {
	ID          int64  `json:"id"`
	DayKey      string `json:"dateISO"`
	StartTime   string `json:"startTime"`
	DurationMin int    `json:"durationMin"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	Color       Color  `json:"color"`
	Delayed     bool   `json:"delayed,omitempty"`
	Completed   bool   `json:"completed,omitempty"`
	Current     bool   `json:"current,omitempty"`
	Unplanned   bool   `json:"unplanned,omitempty"`
}

// Priority grades a task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	default:
		return false
	}
}

func (p Priority) String() string {
	return string(p)
}

// Task is a to-do entry grouped into folders.
type Task struct {
	ID        int64    `json:"id"`
	Title     string   `json:"title"`
	DueDate   string   `json:"dueDate"`
	Priority  Priority `json:"priority"`
	Completed bool     `json:"completed"`
	FolderID  string   `json:"folderId"`
}

// HabitColor carries presentation-only styling for a habit.
type HabitColor struct {
	BG   string `json:"bg"`
	Text string `json:"text"`
}

// WeekSlots is the size of a habit's rolling completion window, one slot per
// weekday.
const WeekSlots = 7

// Habit tracks a recurring practice. Completion is the current week's seven
// slots; History is the unbounded long-run record whose tail mirrors
// Completion.
type Habit struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Icon       string     `json:"icon"`
	Time       string     `json:"time"`
	Color      HabitColor `json:"color"`
	Completion []bool     `json:"completion"`
	History    []bool     `json:"history"`
}

// Normalize repairs the habit's array invariants: Completion holds exactly
// WeekSlots entries and History is at least that long with its tail equal to
// Completion. Completion wins when the two disagree, since it is the view
// the user edits directly. Called at creation time and on load so slot
// toggles can index the history tail unconditionally.
func (h *Habit) Normalize() {
	week := make([]bool, WeekSlots)
	copy(week, h.Completion)
	h.Completion = week

	if len(h.History) < WeekSlots {
		pad := make([]bool, WeekSlots-len(h.History))
		h.History = append(pad, h.History...)
	}
	copy(h.History[len(h.History)-WeekSlots:], h.Completion)
}
