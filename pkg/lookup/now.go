package lookup

import (
	"sort"
	"time"

	"horactl/pkg/timetable"
)

// NowKind says how a NowResult relates to the current time
type NowKind string

const (
	KindNow  NowKind = "now"  // class in progress
	KindNext NowKind = "next" // first class still to come today
	KindLast NowKind = "last" // every class today is over; this was the last one
)

// NowResult is where an instructor is, or will be, today
type NowResult struct {
	Kind  NowKind              `json:"kind"`
	Entry timetable.IndexEntry `json:"entry"`
}

// FindNow looks up the instructor's class at now. It returns nil when the
// instructor is unknown or has nothing on that weekday.
func FindNow(idx timetable.Index, name string, now time.Time) *NowResult {
	list, ok := idx.Lookup(name)
	if !ok {
		return nil
	}
	today := timetable.DayFromWeekday(now.Weekday())
	current := now.Hour()*60 + now.Minute()
	length := int(ClassLength / time.Minute)

	var todays []timetable.IndexEntry
	for _, e := range list {
		if e.Day != today {
			continue
		}
		start := timetable.Minutes(e.Time)
		if start <= current && current < start+length {
			return &NowResult{Kind: KindNow, Entry: e}
		}
		todays = append(todays, e)
	}
	if len(todays) == 0 {
		return nil
	}

	sort.SliceStable(todays, func(i, j int) bool {
		return timetable.Minutes(todays[i].Time) < timetable.Minutes(todays[j].Time)
	})
	for _, e := range todays {
		if timetable.Minutes(e.Time) >= current {
			return &NowResult{Kind: KindNext, Entry: e}
		}
	}
	return &NowResult{Kind: KindLast, Entry: todays[len(todays)-1]}
}
