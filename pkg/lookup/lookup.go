package lookup

import (
	"sort"
	"time"

	"horactl/pkg/timetable"
)

// ClassLength is how long a class is assumed to last after its start time
const ClassLength = 60 * time.Minute

// Professors returns every indexed instructor, sorted
func Professors(idx timetable.Index) []string {
	return idx.Names()
}

// Rooms returns the distinct room labels found in entries, sorted
func Rooms(entries []timetable.Entry) []string {
	seen := make(map[string]bool)
	var rooms []string
	for _, e := range entries {
		if e.Room == "" || seen[e.Room] {
			continue
		}
		seen[e.Room] = true
		rooms = append(rooms, e.Room)
	}
	sort.Strings(rooms)
	return rooms
}

// CurrentPeriod tells which teaching period the clock is in, if any.
// Morning runs 07:00–12:00, afternoon 12:40–18:00 and evening 19:00–23:59.
func CurrentPeriod(now time.Time) (timetable.Period, bool) {
	m := now.Hour()*60 + now.Minute()
	switch {
	case m >= 7*60 && m < 12*60:
		return timetable.Morning, true
	case m >= 12*60+40 && m < 18*60:
		return timetable.Afternoon, true
	case m >= 19*60 && m < 23*60+59:
		return timetable.Evening, true
	}
	return "", false
}
