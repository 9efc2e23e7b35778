package tui

import (
	"fmt"
	"time"

	"horactl/pkg/lookup"
	"horactl/pkg/timetable"

	"github.com/charmbracelet/huh"
)

var dayOptions = []timetable.Day{
	timetable.Monday, timetable.Tuesday, timetable.Wednesday,
	timetable.Thursday, timetable.Friday, timetable.Saturday,
}

// RunSearchTUI asks for the advanced search filters and prints the matches
func RunSearchTUI(sched *timetable.Schedule) error {
	var dateStr, day, period, professor, room string

	periodOpts := []huh.Option[string]{huh.NewOption("(any)", "")}
	for _, p := range timetable.Periods {
		periodOpts = append(periodOpts, huh.NewOption(string(p), string(p)))
	}
	dayOpts := []huh.Option[string]{huh.NewOption("(any)", "")}
	for _, d := range dayOptions {
		dayOpts = append(dayOpts, huh.NewOption(string(d), string(d)))
	}
	profOpts := append([]huh.Option[string]{huh.NewOption("(any)", "")}, professorOptions(sched.Index, "")...)
	roomOpts := []huh.Option[string]{huh.NewOption("(any)", "")}
	for _, r := range lookup.Rooms(sched.Entries) {
		roomOpts = append(roomOpts, huh.NewOption(r, r))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date").
				Description("YYYY-MM-DD, leave empty for any").
				Value(&dateStr).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					if _, err := time.Parse("2006-01-02", s); err != nil {
						return fmt.Errorf("date must look like 2024-03-18")
					}
					return nil
				}),
			huh.NewSelect[string]().Title("Day").Options(dayOpts...).Value(&day),
			huh.NewSelect[string]().Title("Period").Options(periodOpts...).Value(&period),
		),
		huh.NewGroup(
			huh.NewSelect[string]().Title("Professor").Options(profOpts...).Value(&professor).Filtering(true).Height(10),
			huh.NewSelect[string]().Title("Room").Options(roomOpts...).Value(&room).Height(8),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	q := lookup.Query{
		Day:       timetable.Day(day),
		Period:    timetable.Period(period),
		Professor: professor,
		Room:      room,
	}
	if dateStr != "" {
		q.Date, _ = time.Parse("2006-01-02", dateStr)
	}

	fmt.Println(RenderResults(lookup.Search(sched.Index, q)))
	return nil
}
