package domain

import "sort"

// CategoryTotal aggregates the finalized records of one non-break category.
type CategoryTotal struct {
	Category  string
	Minutes   int
	Pomodoros int
	Words     int
	Sessions  int
}

// Totals folds records into per-category aggregates, most-minutes first.
// Break records are reported separately as total break minutes.
func Totals(records []Record) ([]CategoryTotal, int) {
	byCategory := map[string]*CategoryTotal{}
	breakMinutes := 0
	for _, record := range records {
		if record.IsBreak {
			breakMinutes += record.DurationMin
			continue
		}
		total, ok := byCategory[record.Category]
		if !ok {
			total = &CategoryTotal{Category: record.Category}
			byCategory[record.Category] = total
		}
		total.Minutes += record.DurationMin
		total.Pomodoros += record.PomodorosCompleted
		total.Words += record.WordCount
		total.Sessions++
	}
	out := make([]CategoryTotal, 0, len(byCategory))
	for _, total := range byCategory {
		out = append(out, *total)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Minutes != out[j].Minutes {
			return out[i].Minutes > out[j].Minutes
		}
		return out[i].Category < out[j].Category
	})
	return out, breakMinutes
}
