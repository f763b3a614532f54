package stats

import (
	"sort"
	"time"

	"github.com/bnjuguna/momentum/internal/task"
)

const dateLayout = "2006-01-02"

// Activity holds per-day completion counts and the streak figures derived
// from them. DailyCounts is keyed by due date (YYYY-MM-DD); a day appears
// only if at least one completed task was due on it.
type Activity struct {
	DailyCounts   map[string]int
	CurrentStreak int
	LongestStreak int
	DaysActive    int
	TotalDays     int
}

// BuildActivity aggregates completed tasks by due date and computes streaks
// relative to today. Tasks without a parseable due date are excluded here;
// they still count toward the totals in Summarize. The current streak only
// counts when the most recent active day is today or yesterday.
func BuildActivity(completed []task.Task, today time.Time) Activity {
	a := Activity{DailyCounts: make(map[string]int)}

	var days []time.Time
	for _, t := range completed {
		if t.DueDate == "" {
			continue
		}
		d, err := time.Parse(dateLayout, t.DueDate)
		if err != nil {
			continue
		}
		if a.DailyCounts[t.DueDate] == 0 {
			days = append(days, d)
		}
		a.DailyCounts[t.DueDate]++
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	a.DaysActive = len(days)
	today = midnight(today)

	if len(days) == 0 {
		// Minimal span: today as both endpoints.
		a.TotalDays = 1
		return a
	}
	// The span normally ends today, but tasks can be due in the future;
	// extending to the latest active date keeps DaysActive <= TotalDays.
	end := today
	if last := days[len(days)-1]; last.After(end) {
		end = last
	}
	a.TotalDays = daysBetween(days[0], end) + 1

	// One scan covers both streaks: the longest run anywhere, and the run
	// ending at the most recent active day for the current streak.
	run := 0
	for i, d := range days {
		if i > 0 && daysBetween(days[i-1], d) == 1 {
			run++
		} else {
			run = 1
		}
		if run > a.LongestStreak {
			a.LongestStreak = run
		}
	}
	if daysBetween(days[len(days)-1], today) <= 1 {
		a.CurrentStreak = run
	}
	return a
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole-day difference b-a for midnight-normalized
// dates.
func daysBetween(a, b time.Time) int {
	return int(midnight(b).Sub(midnight(a)).Hours() / 24)
}
