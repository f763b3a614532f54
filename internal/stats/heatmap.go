package stats

import (
	"sort"
	"time"
)

// Level is one of the five heatmap intensity buckets.
type Level int

const (
	LevelNone Level = iota
	LevelLow
	LevelMedium
	LevelHigh
	LevelMax
)

// LevelFor maps a daily completion count to its intensity bucket.
// Thresholds are fixed: 0, 1, 2, 3, four or more.
func LevelFor(count int) Level {
	switch {
	case count <= 0:
		return LevelNone
	case count == 1:
		return LevelLow
	case count == 2:
		return LevelMedium
	case count == 3:
		return LevelHigh
	default:
		return LevelMax
	}
}

// HeatmapDay is one cell of the calendar grid.
type HeatmapDay struct {
	Date  string // YYYY-MM-DD
	Count int
}

// Weeks partitions the span from the earliest to the latest active date into
// week columns of up to seven consecutive days. A column ends after each
// Saturday; the final column may be a partial week. Days with no activity
// appear with a zero count so the grid has no holes.
func Weeks(daily map[string]int) [][]HeatmapDay {
	var dates []time.Time
	for ds := range daily {
		d, err := time.Parse(dateLayout, ds)
		if err != nil {
			continue
		}
		dates = append(dates, d)
	}
	if len(dates) == 0 {
		return nil
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	first, last := dates[0], dates[len(dates)-1]
	var weeks [][]HeatmapDay
	var week []HeatmapDay

	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		ds := d.Format(dateLayout)
		week = append(week, HeatmapDay{Date: ds, Count: daily[ds]})
		if d.Weekday() == time.Saturday || d.Equal(last) {
			weeks = append(weeks, week)
			week = nil
		}
	}
	return weeks
}
