package stats

import "testing"

func TestLevelFor(t *testing.T) {
	cases := []struct {
		count int
		want  Level
	}{
		{0, LevelNone},
		{-1, LevelNone},
		{1, LevelLow},
		{2, LevelMedium},
		{3, LevelHigh},
		{4, LevelMax},
		{9, LevelMax},
	}
	for _, c := range cases {
		if got := LevelFor(c.count); got != c.want {
			t.Fatalf("LevelFor(%d) = %d, want %d", c.count, got, c.want)
		}
	}
}

func TestWeeksEmpty(t *testing.T) {
	if got := Weeks(nil); got != nil {
		t.Fatalf("expected nil for no activity, got %v", got)
	}
	if got := Weeks(map[string]int{"bogus": 3}); got != nil {
		t.Fatalf("unparseable dates alone yield no grid, got %v", got)
	}
}

func TestWeeksSingleDay(t *testing.T) {
	weeks := Weeks(map[string]int{"2024-03-05": 2})
	if len(weeks) != 1 || len(weeks[0]) != 1 {
		t.Fatalf("expected a single one-day column, got %v", weeks)
	}
	if weeks[0][0].Date != "2024-03-05" || weeks[0][0].Count != 2 {
		t.Fatalf("unexpected cell %+v", weeks[0][0])
	}
}

func TestWeeksBreakAfterSaturday(t *testing.T) {
	// Mar 7 2024 is a Thursday, Mar 9 a Saturday. Activity on the range
	// endpoints only; the days between appear with zero counts.
	weeks := Weeks(map[string]int{
		"2024-03-07": 1,
		"2024-03-12": 4,
	})

	if len(weeks) != 2 {
		t.Fatalf("expected 2 week columns, got %d", len(weeks))
	}

	// Thu, Fri, Sat
	if len(weeks[0]) != 3 {
		t.Fatalf("first column should hold Thu-Sat, got %d days", len(weeks[0]))
	}
	if weeks[0][2].Date != "2024-03-09" {
		t.Fatalf("first column should end on Saturday, got %s", weeks[0][2].Date)
	}

	// Sun, Mon, Tue (partial final week)
	if len(weeks[1]) != 3 {
		t.Fatalf("second column should hold Sun-Tue, got %d days", len(weeks[1]))
	}
	if weeks[1][0].Date != "2024-03-10" || weeks[1][2].Date != "2024-03-12" {
		t.Fatalf("unexpected second column bounds: %+v", weeks[1])
	}

	// Gap days are present with zero counts.
	if weeks[0][1].Count != 0 {
		t.Fatalf("Mar 8 should be a zero cell, got %d", weeks[0][1].Count)
	}
	if weeks[1][2].Count != 4 {
		t.Fatalf("Mar 12 should carry its count, got %d", weeks[1][2].Count)
	}
}

func TestWeeksFullSpanHasNoHoles(t *testing.T) {
	weeks := Weeks(map[string]int{
		"2024-03-01": 1,
		"2024-03-14": 1,
	})
	total := 0
	for _, w := range weeks {
		if len(w) > 7 {
			t.Fatalf("week column longer than 7 days: %d", len(w))
		}
		total += len(w)
	}
	// Mar 1 through Mar 14 inclusive.
	if total != 14 {
		t.Fatalf("expected 14 cells across the span, got %d", total)
	}
}
