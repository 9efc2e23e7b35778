package exporter

import (
	"fmt"
	"io"
	"time"
	_ "time/tzdata"

	ics "github.com/arran4/golang-ical"

	"horactl/pkg/lookup"
	"horactl/pkg/timetable"
)

// TimeZone is the zone the timetables are written in
const TimeZone = "America/Sao_Paulo"

// GenerateICS writes an instructor's week as weekly recurring events. Each
// class starts on the first matching weekday on or after from. Classes on an
// undefined day are skipped since they cannot be placed in a week.
func GenerateICS(professor string, classes []timetable.IndexEntry, from time.Time, w io.Writer) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//horactl//timetable export//PT")

	loc, err := time.LoadLocation(TimeZone)
	if err != nil {
		return fmt.Errorf("could not load timezone: %w", err)
	}

	from = from.In(loc)
	midnight := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, loc)
	now := time.Now()

	for i, c := range classes {
		weekday, ok := c.Day.Weekday()
		if !ok {
			continue
		}

		offset := (int(weekday) - int(midnight.Weekday()) + 7) % 7
		start := midnight.AddDate(0, 0, offset).Add(time.Duration(timetable.Minutes(c.Time)) * time.Minute)
		end := start.Add(lookup.ClassLength)

		event := cal.AddEvent(fmt.Sprintf("%s-%d@horactl", start.UTC().Format("20060102T150405Z"), i))
		event.SetCreatedTime(now)
		event.SetDtStampTime(now)
		event.SetModifiedAt(now)
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(c.Subject)
		event.SetLocation(c.Room)
		event.AddProperty(ics.ComponentPropertyRrule, "FREQ=WEEKLY")

		description := fmt.Sprintf("Professor: %s\nPeriod: %s", professor, c.Period)
		event.SetDescription(description)
	}

	return cal.SerializeTo(w)
}
