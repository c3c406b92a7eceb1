package domain

import (
	"fmt"
	"sort"
	"time"

	sessiondomain "studya/internal/modules/session/domain"
)

// CategoryLine is one category's aggregate over a report window.
type CategoryLine struct {
	Category  string
	Minutes   int
	Sessions  int
	Pomodoros int
	Words     int
}

// GoalLine carries the ledger standing for a goaled category at render time.
type GoalLine struct {
	Category     string
	Period       string
	TargetMin    int
	SpentMin     int
	RemainingMin int
	DailyMin     int
	TodayMin     int
	Achieved     bool
}

// DailySummary aggregates one day's finalized sessions. Break sessions only
// contribute to BreakMinutes, never to a category line.
type DailySummary struct {
	Date         string
	TotalMinutes int
	BreakMinutes int
	Pomodoros    int
	Words        int
	Distractions int
	Sessions     int
	Categories   []CategoryLine
	Goals        []GoalLine
}

// DayCell is one day inside a weekly summary.
type DayCell struct {
	Date    string
	Weekday string
	Minutes int
}

// WeeklySummary aggregates a Monday-aligned (or configured week-start) span
// of seven days.
type WeeklySummary struct {
	Year         int
	Week         int
	From         string
	To           string
	TotalMinutes int
	BreakMinutes int
	Pomodoros    int
	Words        int
	Sessions     int
	Categories   []CategoryLine
	Days         []DayCell
	Goals        []GoalLine
}

func BuildDaily(date string, records []sessiondomain.Record) DailySummary {
	summary := DailySummary{Date: date}
	byCategory := map[string]*CategoryLine{}
	for _, record := range records {
		if record.IsBreak {
			summary.BreakMinutes += record.DurationMin
			continue
		}
		summary.TotalMinutes += record.DurationMin
		summary.Pomodoros += record.PomodorosCompleted
		summary.Words += record.WordCount
		summary.Distractions += len(record.Distractions)
		summary.Sessions++

		line, ok := byCategory[record.Category]
		if !ok {
			line = &CategoryLine{Category: record.Category}
			byCategory[record.Category] = line
		}
		line.Minutes += record.DurationMin
		line.Sessions++
		line.Pomodoros += record.PomodorosCompleted
		line.Words += record.WordCount
	}
	summary.Categories = sortLines(byCategory)
	return summary
}

// BuildWeekly aggregates records between weekStart (inclusive) and seven days
// later (exclusive). Records are assumed pre-filtered to that window.
func BuildWeekly(weekStart time.Time, records []sessiondomain.Record) WeeklySummary {
	year, week := weekStart.ISOWeek()
	summary := WeeklySummary{
		Year: year,
		Week: week,
		From: weekStart.Format("2006-01-02"),
		To:   weekStart.AddDate(0, 0, 6).Format("2006-01-02"),
	}

	byCategory := map[string]*CategoryLine{}
	byDate := map[string]int{}
	for _, record := range records {
		if record.IsBreak {
			summary.BreakMinutes += record.DurationMin
			continue
		}
		summary.TotalMinutes += record.DurationMin
		summary.Pomodoros += record.PomodorosCompleted
		summary.Words += record.WordCount
		summary.Sessions++
		byDate[record.Date] += record.DurationMin

		line, ok := byCategory[record.Category]
		if !ok {
			line = &CategoryLine{Category: record.Category}
			byCategory[record.Category] = line
		}
		line.Minutes += record.DurationMin
		line.Sessions++
		line.Pomodoros += record.PomodorosCompleted
		line.Words += record.WordCount
	}
	summary.Categories = sortLines(byCategory)

	for offset := 0; offset < 7; offset++ {
		day := weekStart.AddDate(0, 0, offset)
		date := day.Format("2006-01-02")
		summary.Days = append(summary.Days, DayCell{
			Date:    date,
			Weekday: day.Weekday().String(),
			Minutes: byDate[date],
		})
	}
	return summary
}

func sortLines(byCategory map[string]*CategoryLine) []CategoryLine {
	lines := make([]CategoryLine, 0, len(byCategory))
	for _, line := range byCategory {
		lines = append(lines, *line)
	}
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].Minutes != lines[j].Minutes {
			return lines[i].Minutes > lines[j].Minutes
		}
		return lines[i].Category < lines[j].Category
	})
	return lines
}

// FormatMinutes renders minutes as "2h 05m" (or "45m" under an hour).
func FormatMinutes(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %02dm", minutes/60, minutes%60)
}
