package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnjuguna/momentum/internal/task"
)

// taskFilter cycles all → completed → in progress → not started.
type taskFilter int

const (
	filterAll taskFilter = iota
	filterCompleted
	filterInProgress
	filterNotStarted
)

var filterNames = []string{"All", "Completed", "In Progress", "Not Started"}

type tasksModel struct {
	width  int
	height int

	tasks  []task.Task
	filter taskFilter
	cursor int
}

func newTasksModel() tasksModel {
	return tasksModel{}
}

func (m *tasksModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m *tasksModel) setData(tasks []task.Task) {
	m.tasks = tasks
	m.cursor = 0
}

func (m tasksModel) visible() []task.Task {
	if m.filter == filterAll {
		return m.tasks
	}
	want := ""
	switch m.filter {
	case filterCompleted:
		want = task.StatusCompleted
	case filterInProgress:
		want = task.StatusInProgress
	case filterNotStarted:
		want = task.StatusNotStarted
	}
	var out []task.Task
	for _, t := range m.tasks {
		if t.Status == want {
			out = append(out, t)
		}
	}
	return out
}

func (m tasksModel) update(msg tea.Msg) (tasksModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Filter):
			m.filter = (m.filter + 1) % 4
			m.cursor = 0
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.visible())-1 {
				m.cursor++
			}
		}
	}
	return m, nil
}

func (m tasksModel) view() string {
	w := m.width - 4

	visible := m.visible()
	title := titleStyle.Render("Tasks") + "  " +
		accentStyle.Render(filterNames[m.filter]) + "  " +
		mutedStyle.Render(fmt.Sprintf("(%d)", len(visible)))

	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")

	if len(visible) == 0 {
		rows = append(rows, mutedStyle.Render("  Nothing here. Press f to change the filter."))
		return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
	}

	// Window of rows around the cursor.
	pageSize := max(m.height-10, 5)
	start := 0
	if m.cursor >= pageSize {
		start = m.cursor - pageSize + 1
	}
	end := min(start+pageSize, len(visible))

	for i := start; i < end; i++ {
		t := visible[i]
		cursor := "  "
		style := normalItemStyle
		if i == m.cursor {
			cursor = "> "
			style = selectedItemStyle
		}

		name := t.Name
		if name == "" {
			name = "(untitled)"
		}
		if len(name) > 40 {
			name = name[:37] + "..."
		}

		due := t.DueDate
		if due == "" {
			due = "—"
		}

		focus := " "
		if t.FocusMode {
			focus = "◎"
		}

		row := fmt.Sprintf("%s%s %-10s %-42s %s %s",
			cursor,
			statusDot(t.Status),
			due,
			style.Render(name),
			categoryTag(t.Category),
			focus,
		)
		rows = append(rows, row)
	}

	if end < len(visible) {
		rows = append(rows, mutedStyle.Render(fmt.Sprintf("  … %d more", len(visible)-end)))
	}

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}

func statusDot(status string) string {
	switch status {
	case task.StatusCompleted:
		return successStyle.Render("✓")
	case task.StatusInProgress:
		return warningStyle.Render("●")
	case task.StatusNotStarted:
		return errorStyle.Render("○")
	default:
		return mutedStyle.Render("?")
	}
}

func categoryTag(category string) string {
	if category == "" {
		return mutedStyle.Render("          ")
	}
	c, ok := categoryColors[category]
	if !ok {
		return mutedStyle.Render(fmt.Sprintf("%-10s", category))
	}
	style := normalItemStyle.Foreground(c)
	return style.Render(fmt.Sprintf("%-10s", category))
}
