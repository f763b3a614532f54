package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnjuguna/momentum/internal/export"
	"github.com/bnjuguna/momentum/internal/notion"
	"github.com/bnjuguna/momentum/internal/stats"
	"github.com/bnjuguna/momentum/internal/store"
	"github.com/bnjuguna/momentum/internal/task"
)

// App is the root Bubble Tea model.
type App struct {
	store  *store.Store
	source notion.Source
	width  int
	height int

	activeView    viewState
	showHelp      bool
	loading       bool
	exportPicking bool
	exportCursor  int

	tasks  []task.Task
	result stats.Result

	dashboard dashboardModel
	heatmap   heatmapModel
	reports   reportsModel
	tasksView tasksModel
	settings  settingsModel

	help   help.Model
	status string
}

func NewApp(s *store.Store, src notion.Source) App {
	h := help.New()
	h.ShowAll = false

	start := viewDashboard
	if v, err := s.GetSetting("default_view"); err == nil {
		start = viewStateFor(v)
	}

	return App{
		store:      s,
		source:     src,
		activeView: start,
		loading:    true,
		dashboard:  newDashboardModel(),
		heatmap:    newHeatmapModel(),
		reports:    newReportsModel(),
		tasksView:  newTasksModel(),
		settings:   newSettingsModel(s),
		help:       h,
	}
}

func (a App) Init() tea.Cmd {
	return a.loadTasks()
}

// loadTasks runs the single fetch-and-recompute pass: live fetch, cached
// snapshot on failure, empty list as the last resort. The aggregation always
// sees a complete list and never a partial one.
func (a App) loadTasks() tea.Cmd {
	src, st := a.source, a.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()

		now := time.Now()
		tasks, err := src.FetchTasks(ctx)
		msg := tasksLoadedMsg{source: sourceLive, syncedAt: now, fetchErr: err}

		if err == nil {
			if serr := st.SaveSnapshot(tasks, now); serr != nil {
				msg.fetchErr = serr
			}
		} else {
			tasks, _ = st.LoadSnapshot()
			if len(tasks) > 0 {
				msg.source = sourceCache
				if synced, ok := st.LastSynced(); ok {
					msg.syncedAt = synced
				}
			} else {
				tasks = nil
				msg.source = sourceEmpty
			}
		}

		msg.tasks = tasks
		msg.result = stats.Compute(tasks, now)
		return msg
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.dashboard.setSize(a.width, contentHeight)
		a.heatmap.setSize(a.width, contentHeight)
		a.reports.setSize(a.width, contentHeight)
		a.tasksView.setSize(a.width, contentHeight)
		a.settings.setSize(a.width, contentHeight)
		return a, nil

	case tasksLoadedMsg:
		a.loading = false
		a.tasks = msg.tasks
		a.result = msg.result
		a.dashboard.setData(msg)
		a.heatmap.setData(msg.result)
		a.reports.setData(msg.result)
		a.tasksView.setData(msg.tasks)
		switch {
		case msg.source == sourceLive && msg.fetchErr == nil:
			a.status = fmt.Sprintf("Loaded %s", plural(len(msg.tasks), "task"))
		case msg.source == sourceCache:
			a.status = fmt.Sprintf("Fetch failed, showing snapshot from %s", msg.syncedAt.Local().Format("Jan 02 15:04"))
		case msg.source == sourceEmpty && msg.fetchErr != nil:
			a.status = "Fetch failed and no snapshot cached"
		}
		return a, nil

	case tea.KeyMsg:
		// Export picker
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		// The settings form captures input while active.
		if a.activeView == viewSettings && a.settings.formActive {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Refresh):
			a.loading = true
			a.status = "Refreshing..."
			return a, a.loadTasks()
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Tab1):
			a.activeView = viewDashboard
			return a, nil
		case key.Matches(msg, keys.Tab2):
			a.activeView = viewHeatmap
			return a, nil
		case key.Matches(msg, keys.Tab3):
			a.activeView = viewReports
			return a, nil
		case key.Matches(msg, keys.Tab4):
			a.activeView = viewTasks
			return a, nil
		case key.Matches(msg, keys.Tab5):
			a.activeView = viewSettings
			return a, a.settings.refresh()
		case key.Matches(msg, keys.Tab):
			a.activeView = (a.activeView + 1) % 5
			return a, nil
		}

	case statusMsg:
		a.status = msg.text
		return a, nil

	case settingsSavedMsg:
		a.status = "Settings saved"
		// The data source may have changed; refetch.
		if url, err := a.store.GetSetting("source_url"); err == nil {
			if c, ok := a.source.(*notion.Client); ok && url != "" {
				c.SourceURL = url
			}
		}
		a.loading = true
		return a, a.loadTasks()

	case exportDoneMsg:
		a.status = "Exported to " + msg.path
		a.exportPicking = false
		return a, nil
	}

	return a.updateActiveView(msg)
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewDashboard:
		a.dashboard, cmd = a.dashboard.update(msg)
	case viewHeatmap:
		a.heatmap, cmd = a.heatmap.update(msg)
	case viewReports:
		a.reports, cmd = a.reports.update(msg)
	case viewTasks:
		a.tasksView, cmd = a.tasksView.update(msg)
	case viewSettings:
		a.settings, cmd = a.settings.update(msg)
	}
	return a, cmd
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	if a.loading {
		content = panelStyle.Width(a.width - 4).Render(mutedStyle.Render("Loading your progress..."))
	} else {
		switch a.activeView {
		case viewDashboard:
			content = a.dashboard.view()
		case viewHeatmap:
			content = a.heatmap.view()
		case viewReports:
			content = a.reports.view()
		case viewTasks:
			content = a.tasksView.view()
		case viewSettings:
			content = a.settings.view()
		}
	}

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	if a.exportPicking {
		content = a.renderExportPicker()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("momentum")
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		status = mutedStyle.Render(" " + a.status)
	}

	// Streak indicator in footer
	streakInfo := ""
	if a.result.Summary.CurrentStreak > 0 {
		streakInfo = warningStyle.Render(fmt.Sprintf(" 🔥 %s", plural(a.result.Summary.CurrentStreak, "day")))
	}

	left := footerStyle.Render(helpView)
	right := streakInfo + status

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

func (a App) renderExportPicker() string {
	title := titleStyle.Render("Export Format")
	formats := []string{"CSV", "JSON"}
	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	for i, f := range formats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < 1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(a.exportCursor)
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(format int) tea.Cmd {
	tasks, result := a.tasks, a.result
	return func() tea.Msg {
		home, _ := os.UserHomeDir()
		dateStr := time.Now().Format("2006-01-02")

		var path string
		if format == 0 {
			path = filepath.Join(home, fmt.Sprintf("momentum-export-%s.csv", dateStr))
			if err := export.ToCSV(tasks, path); err != nil {
				return statusMsg{text: fmt.Sprintf("CSV error: %v", err), isError: true}
			}
		} else {
			path = filepath.Join(home, fmt.Sprintf("momentum-export-%s.json", dateStr))
			if err := export.ToJSON(tasks, result, path); err != nil {
				return statusMsg{text: fmt.Sprintf("JSON error: %v", err), isError: true}
			}
		}

		return exportDoneMsg{path: path}
	}
}
