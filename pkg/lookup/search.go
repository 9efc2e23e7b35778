package lookup

import (
	"sort"
	"time"

	"horactl/pkg/timetable"
)

// Query holds the optional filters of an advanced search. Zero values match everything.
type Query struct {
	Date      time.Time // restricts to the weekday of this date
	Day       timetable.Day
	Period    timetable.Period
	Professor string
	Room      string
}

// Result is one matching class with the instructor it belongs to
type Result struct {
	Professor string `json:"professor"`
	timetable.IndexEntry
}

// Search filters the index. Results come back in weekly order; classes in
// the same slot keep professor name order.
func Search(idx timetable.Index, q Query) []Result {
	var dateDay timetable.Day
	if !q.Date.IsZero() {
		dateDay = timetable.DayFromWeekday(q.Date.Weekday())
	}

	names := idx.Names()
	if q.Professor != "" {
		names = []string{timetable.NormalizeName(q.Professor)}
	}

	var results []Result
	for _, name := range names {
		for _, e := range idx[name] {
			if dateDay != "" && e.Day != dateDay {
				continue
			}
			if q.Day != "" && e.Day != q.Day {
				continue
			}
			if q.Period != "" && e.Period != q.Period {
				continue
			}
			if q.Room != "" && e.Room != q.Room {
				continue
			}
			results = append(results, Result{Professor: name, IndexEntry: e})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return timetable.SortKey(results[i].Day, results[i].Time) < timetable.SortKey(results[j].Day, results[j].Time)
	})
	return results
}
