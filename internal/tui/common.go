package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnjuguna/momentum/internal/stats"
	"github.com/bnjuguna/momentum/internal/task"
)

// viewState represents the currently active view.
type viewState int

const (
	viewDashboard viewState = iota
	viewHeatmap
	viewReports
	viewTasks
	viewSettings
)

var viewNames = []string{"Dashboard", "Heatmap", "Reports", "Tasks", "Settings"}

// viewStateFor maps a persisted default_view setting to its tab.
func viewStateFor(name string) viewState {
	for i, n := range viewNames {
		if strings.EqualFold(name, n) {
			return viewState(i)
		}
	}
	return viewDashboard
}

// dataSource says where the currently displayed task list came from.
type dataSource int

const (
	sourceEmpty dataSource = iota
	sourceLive
	sourceCache
)

// --- Messages ---

// tasksLoadedMsg carries one full recomputation to every view.
type tasksLoadedMsg struct {
	tasks    []task.Task
	result   stats.Result
	source   dataSource
	syncedAt time.Time
	fetchErr error
}

type statusMsg struct {
	text    string
	isError bool
}

type exportDoneMsg struct {
	path string
}

type settingsSavedMsg struct{}

// --- Helpers ---

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
