package teaui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/chronograma/pkg/app"
	"tableflip.dev/chronograma/pkg/record"
	"tableflip.dev/chronograma/pkg/store"
	"tableflip.dev/chronograma/pkg/timeline"
	"tableflip.dev/chronograma/pkg/timeutil"
)

// Model states
type mode int

const (
	modeNormal mode = iota
	modeCommand
	modeHelp
)

// Model contains UI state
type Model struct {
	svc  *app.Service
	ctx  context.Context
	mode mode

	day   string
	focus int // 0: timeline, 1: habits

	report      app.DayReport
	habitReport app.HabitReport

	habitIndex int
	slotIndex  int

	input textinput.Model

	status string

	events <-chan store.Event

	termWidth  int
	termHeight int
}

// New creates a new UI model backed by the Service, opened on the given day.
func New(svc *app.Service, day string) Model {
	if day == "" {
		day = timeutil.DayKey(time.Now())
	}

	ti := textinput.New()
	ti.Placeholder = "command"
	ti.CharLimit = 256
	ti.Prompt = ""
	ti.Styles.Cursor.Color = lipgloss.Color("218")
	ti.Styles.Cursor.Shape = tea.CursorUnderline

	return Model{
		svc:    svc,
		ctx:    context.Background(),
		mode:   modeNormal,
		day:    day,
		focus:  0,
		input:  ti,
		status: "NORMAL: h/l prev/next day, t today, tab switch panes, j/k habit, H/L slot, x toggle, : commands, ? help",
	}
}

// Init loads initial data and arms the store watch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.refreshAll(), m.waitForEvent())
}

func (m *Model) refreshAll() tea.Cmd {
	return tea.Batch(m.loadDay(), m.loadHabits())
}

func (m *Model) loadDay() tea.Cmd {
	day := m.day
	return func() tea.Msg {
		report, err := m.svc.DayReport(m.ctx, day)
		if err != nil {
			return errMsg{err}
		}
		return dayLoadedMsg{report}
	}
}

func (m *Model) loadHabits() tea.Cmd {
	return func() tea.Msg {
		report, err := m.svc.HabitReport(m.ctx)
		if err != nil {
			return errMsg{err}
		}
		return habitsLoadedMsg{report}
	}
}

// waitForEvent blocks on the store watch channel and converts the next
// change into a message. Re-armed after every delivery.
func (m *Model) waitForEvent() tea.Cmd {
	events := m.events
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return storeEventMsg{ev}
	}
}

// messages
type errMsg struct{ err error }
type dayLoadedMsg struct{ report app.DayReport }
type habitsLoadedMsg struct{ report app.HabitReport }
type storeEventMsg struct{ ev store.Event }

// shiftDay moves the viewed day by delta days.
func (m *Model) shiftDay(delta int) tea.Cmd {
	t, err := timeutil.ParseDayKey(m.day)
	if err != nil {
		t = time.Now()
	}
	m.day = timeutil.DayKey(t.AddDate(0, 0, delta))
	return m.loadDay()
}

func (m *Model) currentHabit() *record.Habit {
	if m.habitIndex < 0 || m.habitIndex >= len(m.habitReport.Stats) {
		return nil
	}
	return &m.habitReport.Stats[m.habitIndex].Habit
}

func (m *Model) clampHabitCursor() {
	if m.habitIndex >= len(m.habitReport.Stats) {
		m.habitIndex = len(m.habitReport.Stats) - 1
	}
	if m.habitIndex < 0 {
		m.habitIndex = 0
	}
}

// Update handles messages and keybindings
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
	case dayLoadedMsg:
		m.report = msg.report
	case habitsLoadedMsg:
		m.habitReport = msg.report
		m.clampHabitCursor()
	case storeEventMsg:
		cmds = append(cmds, m.refreshAll(), m.waitForEvent())
	case tea.KeyPressMsg:
		switch m.mode {
		case modeHelp:
			if key := msg.String(); key == "q" || key == "esc" || key == "?" {
				m.mode = modeNormal
			}
		case modeCommand:
			switch msg.String() {
			case "enter":
				input := strings.TrimSpace(m.input.Value())
				m.executeCommand(input, &cmds)
				m.input.Reset()
				m.input.Blur()
			case "esc":
				m.mode = modeNormal
				m.input.Reset()
				m.input.Blur()
				m.status = "Command cancelled"
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				cmds = append(cmds, cmd)
			}
		case modeNormal:
			switch msg.String() {
			case ":":
				m.mode = modeCommand
				m.input.Reset()
				if cmd := m.input.Focus(); cmd != nil {
					cmds = append(cmds, cmd)
				}
				cmds = append(cmds, textinput.Blink)
				m.status = "COMMAND: type :q or :exit to quit, :goto YYYY-MM-DD to jump"

			// day navigation
			case "h", "left":
				cmds = append(cmds, m.shiftDay(-1))
			case "l", "right":
				cmds = append(cmds, m.shiftDay(1))
			case "t":
				m.day = timeutil.DayKey(time.Now())
				cmds = append(cmds, m.loadDay())

			// pane focus
			case "tab":
				m.focus = 1 - m.focus

			// habit cursor
			case "j", "down":
				if m.focus == 1 && m.habitIndex < len(m.habitReport.Stats)-1 {
					m.habitIndex++
				}
			case "k", "up":
				if m.focus == 1 && m.habitIndex > 0 {
					m.habitIndex--
				}
			case "H":
				if m.slotIndex > 0 {
					m.slotIndex--
				}
			case "L":
				if m.slotIndex < record.WeekSlots-1 {
					m.slotIndex++
				}
			case "1", "2", "3", "4", "5", "6", "7":
				m.slotIndex = int(msg.String()[0] - '1')

			// toggle selected habit slot
			case "x", "space":
				if h := m.currentHabit(); h != nil {
					if _, err := m.svc.ToggleHabitSlot(m.ctx, h.ID, m.slotIndex); err != nil {
						cmds = append(cmds, func() tea.Msg { return errMsg{err} })
					} else {
						m.status = "Toggled"
						cmds = append(cmds, m.loadHabits())
					}
				}

			case "r":
				cmds = append(cmds, m.refreshAll())
			case "?":
				m.mode = modeHelp
			case "q":
				m.status = "Use :q or :exit to quit"
			}
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) executeCommand(input string, cmds *[]tea.Cmd) {
	switch {
	case input == "q" || input == "quit" || input == "exit":
		*cmds = append(*cmds, tea.Quit)
	case strings.HasPrefix(input, "goto "):
		day := strings.TrimSpace(strings.TrimPrefix(input, "goto "))
		if _, err := timeutil.ParseDayKey(day); err != nil {
			m.status = fmt.Sprintf("Bad day %q, want YYYY-MM-DD", day)
		} else {
			m.day = day
			*cmds = append(*cmds, m.loadDay())
		}
	case input == "":
		// nothing
	default:
		m.status = fmt.Sprintf("Unknown command: %s", input)
	}
	m.mode = modeNormal
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	faintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true)
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("218")).Bold(true)
	slotOnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

func (m Model) timelinePane() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.day) + "\n\n")

	renderTrack := func(name string, placed []timeline.Placed) {
		b.WriteString(faintStyle.Render(name) + "\n")
		if len(placed) == 0 {
			b.WriteString(faintStyle.Render("  (empty)") + "\n")
			return
		}
		for _, p := range placed {
			line := fmt.Sprintf("  %5s  %s (%dm)", p.Item.StartTime, p.Item.Title, p.Item.DurationMin)
			if p.Item.Completed {
				line = doneStyle.Render(line)
			}
			b.WriteString(line + "\n")
		}
	}
	renderTrack("planned", m.report.Planned)
	b.WriteString("\n")
	renderTrack("actual", m.report.Actual)

	if len(m.report.Planned) > 0 {
		b.WriteString("\n" + faintStyle.Render(fmt.Sprintf("%d/%d complete (%d%%)",
			m.report.PlannedDone, len(m.report.Planned), m.report.CompletionPct)))
	}
	return b.String()
}

func (m Model) habitPane() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Habits") + "\n\n")
	for i, s := range m.habitReport.Stats {
		marker := "  "
		if m.focus == 1 && i == m.habitIndex {
			marker = cursorStyle.Render("» ")
		}
		var slots []string
		for d, done := range s.Habit.Completion {
			cell := "○"
			if done {
				cell = slotOnStyle.Render("●")
			}
			if m.focus == 1 && i == m.habitIndex && d == m.slotIndex {
				cell = cursorStyle.Render("[") + cell + cursorStyle.Render("]")
			}
			slots = append(slots, cell)
		}
		b.WriteString(fmt.Sprintf("%s%-20s %s  %s\n",
			marker, s.Habit.Name, strings.Join(slots, " "),
			faintStyle.Render(fmt.Sprintf("streak %d", s.CurrentStreak))))
	}
	if len(m.habitReport.Stats) > 0 {
		b.WriteString("\n" + faintStyle.Render(fmt.Sprintf("weekly rate %d%%", m.habitReport.WeeklyRate)))
	}
	return b.String()
}

// View renders the day timeline and habit panes plus status/overlay lines
func (m Model) View() string {
	modeStr := map[mode]string{modeNormal: "NORMAL", modeCommand: "CMD", modeHelp: "HELP"}[m.mode]
	status := faintStyle.Render(fmt.Sprintf("[%s] %s", modeStr, m.status))

	gap := lipgloss.NewStyle().Padding(0, 2).Render(" ")
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.timelinePane(), gap, m.habitPane())

	if m.mode == modeCommand {
		body += "\n\n:" + m.input.View()
	}
	if m.mode == modeHelp {
		help := "Keys: h/l prev/next day, t today, tab switch panes, j/k habit, H/L or 1-7 slot, x toggle, r refresh, :goto YYYY-MM-DD, :q quit"
		body += "\n\n" + lipgloss.NewStyle().Italic(true).Render(help)
	}

	return body + "\n\n" + status
}

// Run launches the Bubble Tea UI.
func Run(svc *app.Service, day string) error {
	m := New(svc, day)
	if events, err := svc.Watch(context.Background()); err == nil {
		m.events = events
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
