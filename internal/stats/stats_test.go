package stats

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/bnjuguna/momentum/internal/task"
)

// All date math is pinned to this reference day.
var today = time.Date(2024, 3, 20, 15, 0, 0, 0, time.UTC)

var taskSeq int

func completedOn(date string) task.Task {
	taskSeq++
	return task.Task{
		ID:      fmt.Sprintf("t%d", taskSeq),
		Status:  task.StatusCompleted,
		DueDate: date,
	}
}

func withStatus(status, category string) task.Task {
	taskSeq++
	return task.Task{
		ID:       fmt.Sprintf("t%d", taskSeq),
		Status:   status,
		Category: category,
	}
}

// ============================================================
// Summary
// ============================================================

func TestComputeEmpty(t *testing.T) {
	res := Compute(nil, today)
	s := res.Summary

	if s.Total != 0 || s.Completed != 0 || s.InProgress != 0 || s.NotStarted != 0 {
		t.Fatalf("expected zero counts, got %+v", s)
	}
	if s.CompletionRate != 0 {
		t.Fatalf("completion rate must be 0 for empty input, got %d", s.CompletionRate)
	}
	if s.CurrentStreak != 0 || s.LongestStreak != 0 || s.DaysActive != 0 {
		t.Fatalf("expected zero streaks, got %+v", s)
	}
	if s.TotalDays != 1 {
		t.Fatalf("expected minimal 1-day span, got %d", s.TotalDays)
	}
	if len(res.Activity.DailyCounts) != 0 {
		t.Fatal("expected empty daily counts")
	}
}

func TestCompletionRateRounds(t *testing.T) {
	tasks := []task.Task{
		completedOn("2024-03-01"),
		withStatus(task.StatusInProgress, ""),
		withStatus(task.StatusNotStarted, ""),
	}
	res := Compute(tasks, today)
	if res.Summary.CompletionRate != 33 {
		t.Fatalf("1/3 should round to 33, got %d", res.Summary.CompletionRate)
	}

	tasks = append(tasks[:1], completedOn("2024-03-02"), withStatus(task.StatusInProgress, ""))
	res = Compute(tasks, today)
	if res.Summary.CompletionRate != 67 {
		t.Fatalf("2/3 should round to 67, got %d", res.Summary.CompletionRate)
	}
}

func TestCompletionRateBounds(t *testing.T) {
	inputs := [][]task.Task{
		nil,
		{withStatus("Blocked", "")},
		{completedOn("2024-03-01")},
		{completedOn(""), completedOn("2024-03-05"), withStatus(task.StatusNotStarted, "Work")},
	}
	for i, tasks := range inputs {
		rate := Compute(tasks, today).Summary.CompletionRate
		if rate < 0 || rate > 100 {
			t.Fatalf("case %d: completion rate %d out of [0,100]", i, rate)
		}
	}
}

func TestUnrecognizedStatusCountsTowardTotal(t *testing.T) {
	tasks := []task.Task{
		completedOn("2024-03-01"),
		withStatus("Blocked", ""),
	}
	s := Compute(tasks, today).Summary
	if s.Total != 2 {
		t.Fatalf("expected total 2, got %d", s.Total)
	}
	if s.Completed+s.InProgress+s.NotStarted != 1 {
		t.Fatal("unrecognized status must stay out of all buckets")
	}
}

func TestUndatedCompletedExcludedFromActivity(t *testing.T) {
	tasks := []task.Task{
		completedOn(""),
		completedOn("2024-03-20"),
	}
	res := Compute(tasks, today)
	if res.Summary.Completed != 2 {
		t.Fatalf("undated completed task must count in totals, got %d", res.Summary.Completed)
	}
	if res.Summary.DaysActive != 1 {
		t.Fatalf("undated task must not create an active day, got %d", res.Summary.DaysActive)
	}
}

// ============================================================
// Streaks
// ============================================================

func TestThreeConsecutiveDaysEndingToday(t *testing.T) {
	tasks := []task.Task{
		completedOn("2024-03-18"),
		completedOn("2024-03-19"),
		completedOn("2024-03-20"),
	}
	a := Compute(tasks, today).Activity
	if a.CurrentStreak != 3 {
		t.Fatalf("expected current streak 3, got %d", a.CurrentStreak)
	}
	if a.LongestStreak != 3 {
		t.Fatalf("expected longest streak 3, got %d", a.LongestStreak)
	}
	if a.DaysActive != 3 {
		t.Fatalf("expected 3 active days, got %d", a.DaysActive)
	}
	if a.TotalDays != 3 {
		t.Fatalf("expected total span 3, got %d", a.TotalDays)
	}
}

func TestGapBreaksStreak(t *testing.T) {
	// Day 1 and day 3 with nothing on day 2, well in the past.
	tasks := []task.Task{
		completedOn("2024-03-01"),
		completedOn("2024-03-03"),
	}
	a := Compute(tasks, today).Activity
	if a.LongestStreak != 1 {
		t.Fatalf("isolated runs are length 1, got %d", a.LongestStreak)
	}
	if a.CurrentStreak != 0 {
		t.Fatalf("stale activity means current streak 0, got %d", a.CurrentStreak)
	}
	if a.TotalDays != 20 {
		t.Fatalf("expected 20-day span from Mar 1 to Mar 20, got %d", a.TotalDays)
	}
}

func TestYesterdayKeepsCurrentStreakAlive(t *testing.T) {
	a := Compute([]task.Task{completedOn("2024-03-19")}, today).Activity
	if a.CurrentStreak != 1 {
		t.Fatalf("activity yesterday should give current streak 1, got %d", a.CurrentStreak)
	}
}

func TestSingleStaleDay(t *testing.T) {
	a := Compute([]task.Task{completedOn("2024-03-01")}, today).Activity
	if a.CurrentStreak != 0 {
		t.Fatalf("expected current streak 0, got %d", a.CurrentStreak)
	}
	if a.LongestStreak != 1 {
		t.Fatalf("expected longest streak 1, got %d", a.LongestStreak)
	}
}

func TestLongestStreakIncludesFinalRun(t *testing.T) {
	// Two-day run, then a longer run at the end of the range.
	tasks := []task.Task{
		completedOn("2024-03-01"),
		completedOn("2024-03-02"),
		completedOn("2024-03-05"),
		completedOn("2024-03-06"),
		completedOn("2024-03-07"),
	}
	a := Compute(tasks, today).Activity
	if a.LongestStreak != 3 {
		t.Fatalf("final run must be folded in, expected 3, got %d", a.LongestStreak)
	}
}

func TestCurrentStreakStopsAtGap(t *testing.T) {
	tasks := []task.Task{
		completedOn("2024-03-15"),
		completedOn("2024-03-16"),
		completedOn("2024-03-18"),
		completedOn("2024-03-19"),
		completedOn("2024-03-20"),
	}
	a := Compute(tasks, today).Activity
	if a.CurrentStreak != 3 {
		t.Fatalf("current streak must stop at the Mar 17 gap, got %d", a.CurrentStreak)
	}
	if a.LongestStreak != 3 {
		t.Fatalf("expected longest streak 3, got %d", a.LongestStreak)
	}
}

func TestLongestAtLeastCurrent(t *testing.T) {
	cases := [][]task.Task{
		nil,
		{completedOn("2024-03-20")},
		{completedOn("2024-03-19"), completedOn("2024-03-20")},
		{completedOn("2024-03-01"), completedOn("2024-03-02"), completedOn("2024-03-03"), completedOn("2024-03-20")},
	}
	for i, tasks := range cases {
		a := Compute(tasks, today).Activity
		if a.LongestStreak < a.CurrentStreak {
			t.Fatalf("case %d: longest %d < current %d", i, a.LongestStreak, a.CurrentStreak)
		}
	}
}

// ============================================================
// Daily activity
// ============================================================

func TestDailyCounts(t *testing.T) {
	tasks := []task.Task{
		completedOn("2024-03-05"),
		completedOn("2024-03-05"),
		completedOn("2024-03-07"),
		{ID: "x", Status: task.StatusInProgress, DueDate: "2024-03-05"}, // not completed
	}
	a := Compute(tasks, today).Activity
	if a.DailyCounts["2024-03-05"] != 2 {
		t.Fatalf("expected 2 on Mar 5, got %d", a.DailyCounts["2024-03-05"])
	}
	if a.DailyCounts["2024-03-07"] != 1 {
		t.Fatalf("expected 1 on Mar 7, got %d", a.DailyCounts["2024-03-07"])
	}
	if a.DaysActive != len(a.DailyCounts) {
		t.Fatalf("daysActive %d != distinct days %d", a.DaysActive, len(a.DailyCounts))
	}
	if a.DaysActive > a.TotalDays {
		t.Fatalf("daysActive %d exceeds totalDays %d", a.DaysActive, a.TotalDays)
	}
}

func TestMalformedDueDateSkipped(t *testing.T) {
	tasks := []task.Task{
		completedOn("not-a-date"),
		completedOn("2024-03-20"),
	}
	a := Compute(tasks, today).Activity
	if a.DaysActive != 1 {
		t.Fatalf("malformed date must be skipped, got %d active days", a.DaysActive)
	}
}

// ============================================================
// Rollups
// ============================================================

func TestCategoryRollupSums(t *testing.T) {
	tasks := []task.Task{
		withStatus(task.StatusCompleted, "Work"),
		withStatus(task.StatusCompleted, "Work"),
		withStatus(task.StatusInProgress, "Work"),
		withStatus(task.StatusNotStarted, "Learning"),
		withStatus("Blocked", "Learning"), // incomplete despite unknown status
		withStatus(task.StatusCompleted, "Errands"), // not a fixed category
	}
	rows := CategoryRollup(tasks)

	if len(rows) != len(task.Categories) {
		t.Fatalf("expected %d rows, got %d", len(task.Categories), len(rows))
	}
	for i, name := range task.Categories {
		if rows[i].Name != name {
			t.Fatalf("row %d: expected %q, got %q", i, name, rows[i].Name)
		}
	}

	byName := make(map[string]CategoryCount)
	for _, r := range rows {
		byName[r.Name] = r
	}
	if w := byName["Work"]; w.Completed != 2 || w.Incomplete != 1 {
		t.Fatalf("Work: got %+v", w)
	}
	if l := byName["Learning"]; l.Completed != 0 || l.Incomplete != 2 {
		t.Fatalf("Learning: got %+v", l)
	}

	// Per-category sums match the count of tasks carrying that category.
	for _, name := range task.Categories {
		want := 0
		for _, tk := range tasks {
			if tk.Category == name {
				want++
			}
		}
		if got := byName[name].Completed + byName[name].Incomplete; got != want {
			t.Fatalf("%s: completed+incomplete = %d, want %d", name, got, want)
		}
	}
}

func TestMonthlyRollupSingleBucket(t *testing.T) {
	tasks := []task.Task{
		completedOn("2024-03-20"),
		completedOn("2024-03-05"),
	}
	months := MonthlyRollup(tasks)
	if len(months) != 1 {
		t.Fatalf("expected a single month, got %d", len(months))
	}
	if months[0].Month != "Mar 2024" || months[0].Tasks != 2 {
		t.Fatalf("expected Mar 2024 with 2 tasks, got %+v", months[0])
	}
}

func TestMonthlyRollupOrderFollowsSortedDates(t *testing.T) {
	// Input order is reversed; the rollup walks due-date order.
	tasks := []task.Task{
		completedOn("2024-03-10"),
		completedOn("2024-01-15"),
		completedOn("2024-02-01"),
	}
	months := MonthlyRollup(tasks)
	want := []string{"Jan 2024", "Feb 2024", "Mar 2024"}
	if len(months) != len(want) {
		t.Fatalf("expected %d months, got %d", len(want), len(months))
	}
	for i, m := range months {
		if m.Month != want[i] {
			t.Fatalf("month %d: expected %s, got %s", i, want[i], m.Month)
		}
	}
}

func TestMonthlyRollupSkipsUndated(t *testing.T) {
	months := MonthlyRollup([]task.Task{completedOn(""), completedOn("bogus")})
	if len(months) != 0 {
		t.Fatalf("expected no months, got %d", len(months))
	}
}

// ============================================================
// Determinism
// ============================================================

func TestComputeIdempotent(t *testing.T) {
	tasks := []task.Task{
		completedOn("2024-03-18"),
		completedOn("2024-03-19"),
		completedOn("2024-03-19"),
		withStatus(task.StatusInProgress, "Work"),
		withStatus(task.StatusNotStarted, "Admin"),
		withStatus("Blocked", "Personal"),
	}
	a := Compute(tasks, today)
	b := Compute(tasks, today)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("recomputation on identical input must be identical")
	}
}
