package domain

import (
	"testing"
	"time"

	sessiondomain "studya/internal/modules/session/domain"
)

func work(category, date string, minutes, pomodoros, words int) sessiondomain.Record {
	return sessiondomain.Record{
		Category:           category,
		Date:               date,
		DurationMin:        minutes,
		PomodorosCompleted: pomodoros,
		WordCount:          words,
	}
}

func TestBuildDailySeparatesBreaksFromCategories(t *testing.T) {
	t.Parallel()

	records := []sessiondomain.Record{
		work("Study", "2026-03-02", 50, 2, 300),
		work("Work", "2026-03-02", 30, 1, 0),
		work("Study", "2026-03-02", 25, 1, 150),
		{Category: "Break", IsBreak: true, Date: "2026-03-02", DurationMin: 10},
	}
	summary := BuildDaily("2026-03-02", records)

	if summary.TotalMinutes != 105 || summary.BreakMinutes != 10 {
		t.Fatalf("unexpected totals %+v", summary)
	}
	if summary.Sessions != 3 || summary.Pomodoros != 4 || summary.Words != 450 {
		t.Fatalf("unexpected aggregates %+v", summary)
	}
	if len(summary.Categories) != 2 {
		t.Fatalf("expected two category lines, got %d", len(summary.Categories))
	}
	// Largest share first.
	if summary.Categories[0].Category != "Study" || summary.Categories[0].Minutes != 75 {
		t.Fatalf("unexpected first line %+v", summary.Categories[0])
	}
}

func TestBuildWeeklyFillsAllSevenDays(t *testing.T) {
	t.Parallel()

	monday := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	records := []sessiondomain.Record{
		work("Study", "2026-03-02", 60, 2, 0),
		work("Study", "2026-03-04", 45, 1, 0),
	}
	summary := BuildWeekly(monday, records)

	if summary.From != "2026-03-02" || summary.To != "2026-03-08" {
		t.Fatalf("unexpected window %s..%s", summary.From, summary.To)
	}
	if summary.Week != 10 || summary.Year != 2026 {
		t.Fatalf("unexpected ISO week %d-W%d", summary.Year, summary.Week)
	}
	if len(summary.Days) != 7 {
		t.Fatalf("expected seven day cells, got %d", len(summary.Days))
	}
	if summary.Days[0].Minutes != 60 || summary.Days[2].Minutes != 45 || summary.Days[6].Minutes != 0 {
		t.Fatalf("unexpected day cells %+v", summary.Days)
	}
	if summary.TotalMinutes != 105 {
		t.Fatalf("expected 105 total minutes, got %d", summary.TotalMinutes)
	}
}

func TestFormatMinutes(t *testing.T) {
	t.Parallel()

	cases := map[int]string{0: "0m", 45: "45m", 60: "1h 00m", 125: "2h 05m"}
	for minutes, want := range cases {
		if got := FormatMinutes(minutes); got != want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", minutes, got, want)
		}
	}
}
