package stats

import (
	"sort"
	"time"

	"github.com/bnjuguna/momentum/internal/task"
)

// CategoryCount is one row of the category rollup.
type CategoryCount struct {
	Name       string
	Completed  int
	Incomplete int
}

// CategoryRollup counts completed and incomplete tasks per fixed category,
// over the full task list. Incomplete covers every non-completed status,
// recognized or not. The row order follows task.Categories.
func CategoryRollup(tasks []task.Task) []CategoryCount {
	rows := make([]CategoryCount, len(task.Categories))
	idx := make(map[string]int, len(task.Categories))
	for i, name := range task.Categories {
		rows[i].Name = name
		idx[name] = i
	}

	for _, t := range tasks {
		i, ok := idx[t.Category]
		if !ok {
			continue
		}
		if t.Completed() {
			rows[i].Completed++
		} else {
			rows[i].Incomplete++
		}
	}
	return rows
}

// MonthCount is one bar of the tasks-by-month chart.
type MonthCount struct {
	Month string // e.g. "Mar 2024"
	Tasks int
}

// MonthlyRollup groups completed, dated tasks by calendar month. Only months
// with at least one such task appear, ordered by first appearance in the
// due-date sorted walk.
func MonthlyRollup(completed []task.Task) []MonthCount {
	var dated []task.Task
	for _, t := range completed {
		if t.DueDate == "" {
			continue
		}
		if _, err := time.Parse(dateLayout, t.DueDate); err != nil {
			continue
		}
		dated = append(dated, t)
	}
	sort.Slice(dated, func(i, j int) bool { return dated[i].DueDate < dated[j].DueDate })

	var months []MonthCount
	idx := make(map[string]int)
	for _, t := range dated {
		d, _ := time.Parse(dateLayout, t.DueDate)
		label := d.Format("Jan 2006")
		i, ok := idx[label]
		if !ok {
			i = len(months)
			idx[label] = i
			months = append(months, MonthCount{Month: label})
		}
		months[i].Tasks++
	}
	return months
}
