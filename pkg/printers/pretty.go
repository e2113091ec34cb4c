package printers

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"tableflip.dev/chronograma/pkg/record"
)

// PrettyPrint renders records and reports for the terminal.
type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("1730535600000  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" entry")
	default:
		_, _ = c.Println(" entries")
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	if pp.ShowID {
		_, _ = f.Print(spacing)
	}
	_, _ = f.Print(" none\n\n")
}

// Tasks prints a task list, one row per task, priority first.
func (pp *PrettyPrint) Tasks(tasks ...record.Task) {
	if len(tasks) == 0 {
		pp.none()
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	done := color.New(color.Faint)

	for _, task := range tasks {
		if pp.ShowID {
			id := fmt.Sprintf("%d", task.ID)
			_, _ = y.Print(id)
			_, _ = y.Print(strings.Repeat(" ", len(spacing)-len(id)))
		}
		box := "☐"
		printer := t
		if task.Completed {
			box = "☑"
			printer = done
		}
		_, _ = printer.Printf("%s %s %s", box, priorityMark(task.Priority), task.Title)
		if task.DueDate != "" {
			_, _ = done.Printf("  (%s)", task.DueDate)
		}
		if task.FolderID != "" {
			_, _ = done.Printf("  #%s", task.FolderID)
		}
		_, _ = printer.Println("")
	}
	_, _ = t.Println("")
}

func priorityMark(p record.Priority) string {
	switch p {
	case record.PriorityHigh:
		return color.New(color.FgHiRed).Sprint("!")
	case record.PriorityMedium:
		return color.New(color.FgHiYellow).Sprint("-")
	default:
		return color.New(color.Faint).Sprint("·")
	}
}

// pad fits s into exactly w display cells, truncating or space-filling.
// Call before colorizing: escape codes would throw the count off.
func pad(s string, w int) string {
	count := utf8.RuneCountInString(s)
	if count > w {
		runes := []rune(s)
		return string(runes[:w-1]) + "…"
	}
	return s + strings.Repeat(" ", w-count)
}
