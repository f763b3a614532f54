// Package stats turns a fetched task list into the aggregates the dashboard
// renders: status counts, streaks, category and monthly rollups, and the
// heatmap buckets. Every function is pure; "today" is always a parameter so
// results are reproducible in tests.
package stats

import (
	"math"
	"time"

	"github.com/bnjuguna/momentum/internal/task"
)

// Summary is the quick-stats block on the dashboard.
type Summary struct {
	Total          int
	Completed      int
	InProgress     int
	NotStarted     int
	CompletionRate int // percent, 0 when there are no tasks
	CurrentStreak  int
	LongestStreak  int
	DaysActive     int
	TotalDays      int
}

// Result bundles everything one recomputation produces. It is rebuilt from
// scratch on every refresh; nothing is updated incrementally.
type Result struct {
	Summary    Summary
	Activity   Activity
	Categories []CategoryCount
	Monthly    []MonthCount
}

// Compute runs the full pipeline: classify, aggregate activity, roll up.
func Compute(tasks []task.Task, today time.Time) Result {
	completed, inProgress, notStarted := task.Partition(tasks)
	activity := BuildActivity(completed, today)

	s := Summary{
		Total:         len(tasks),
		Completed:     len(completed),
		InProgress:    len(inProgress),
		NotStarted:    len(notStarted),
		CurrentStreak: activity.CurrentStreak,
		LongestStreak: activity.LongestStreak,
		DaysActive:    activity.DaysActive,
		TotalDays:     activity.TotalDays,
	}
	if s.Total > 0 {
		s.CompletionRate = int(math.Round(float64(s.Completed) / float64(s.Total) * 100))
	}

	return Result{
		Summary:    s,
		Activity:   activity,
		Categories: CategoryRollup(tasks),
		Monthly:    MonthlyRollup(completed),
	}
}
