package timetable

import (
	"sort"
	"strconv"
	"strings"
)

// Index maps a normalised instructor name to their classes in weekly order
type Index map[string][]IndexEntry

// BuildIndex groups entries by instructor and sorts each list by day and time.
// Entries without an instructor are left out. The sort is stable, so classes
// at the same day and time keep their table order.
func BuildIndex(entries []Entry) Index {
	idx := make(Index)
	for _, e := range entries {
		name := NormalizeName(e.Instructor)
		if name == "" {
			continue
		}
		idx[name] = append(idx[name], IndexEntry{
			Day:     e.Day,
			Time:    e.Time,
			Room:    e.Room,
			Subject: e.Subject,
			Period:  e.Period,
		})
	}
	for _, list := range idx {
		sort.SliceStable(list, func(i, j int) bool {
			return SortKey(list[i].Day, list[i].Time) < SortKey(list[j].Day, list[j].Time)
		})
	}
	return idx
}

// SortKey orders classes across the week: day rank first, then minutes since midnight
func SortKey(day Day, hhmm string) int {
	return day.Rank()*10000 + Minutes(hhmm)
}

// Minutes converts "HH:MM" to minutes since midnight. Malformed input counts as 0.
func Minutes(hhmm string) int {
	h, m, ok := strings.Cut(hhmm, ":")
	if !ok {
		return 0
	}
	hours, err := strconv.Atoi(h)
	if err != nil {
		return 0
	}
	mins, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return hours*60 + mins
}

// Names returns the instructor names in alphabetical order
func (idx Index) Names() []string {
	names := make([]string, 0, len(idx))
	for n := range idx {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Lookup finds an instructor's classes, normalising the name the same way cells are
func (idx Index) Lookup(name string) ([]IndexEntry, bool) {
	list, ok := idx[NormalizeName(name)]
	return list, ok
}
