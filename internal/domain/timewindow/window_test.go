package timewindow

import (
	"testing"
	"time"
)

func TestResolve(t *testing.T) {
	cases := []struct {
		name  string
		sel   Selector
		now   time.Time
		start string
		end   string
	}{
		{"today", Today, time.Date(2025, 3, 15, 18, 30, 0, 0, time.UTC), "2025-03-15", "2025-03-15"},
		{"week", Week, time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC), "2025-03-08", "2025-03-15"},
		{"week_crosses_month", Week, time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC), "2025-02-24", "2025-03-03"},
		{"month", Month, time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), "2025-02-15", "2025-03-15"},
		{"month_rolls_year", Month, time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), "2024-12-20", "2025-01-20"},
		{"unknown_defaults_today", Selector("quarter"), time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), "2025-03-15", "2025-03-15"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := Resolve(tc.sel, tc.now)
			if w.Start != tc.start || w.End != tc.end {
				t.Fatalf("got [%s, %s], want [%s, %s]", w.Start, w.End, tc.start, tc.end)
			}
		})
	}
}

func TestParseSelector(t *testing.T) {
	if ParseSelector(" Week ") != Week {
		t.Fatalf("expected week")
	}
	if ParseSelector("MONTH") != Month {
		t.Fatalf("expected month")
	}
	if ParseSelector("") != Today || ParseSelector("year") != Today {
		t.Fatalf("expected today fallback")
	}
}

func TestWindow_Contains(t *testing.T) {
	w := Window{Start: "2025-03-08", End: "2025-03-15"}
	if !w.Contains("2025-03-08") || !w.Contains("2025-03-15T23:10:00Z") {
		t.Fatalf("bounds should be inclusive")
	}
	if w.Contains("2025-03-07") || w.Contains("2025-03-16") {
		t.Fatalf("dates outside window should be excluded")
	}
	if !(Window{}).Contains("1999-01-01") {
		t.Fatalf("empty window is unbounded")
	}
}
