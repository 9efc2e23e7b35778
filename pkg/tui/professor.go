package tui

import (
	"fmt"
	"time"

	"horactl/pkg/config"
	"horactl/pkg/lookup"
	"horactl/pkg/timetable"

	"github.com/charmbracelet/huh"
)

// professorOptions builds the filterable professor list, pre-selecting the saved default
func professorOptions(idx timetable.Index, selected string) []huh.Option[string] {
	var opts []huh.Option[string]
	for _, name := range lookup.Professors(idx) {
		opt := huh.NewOption(name, name)
		if name == selected {
			opt = opt.Selected(true)
		}
		opts = append(opts, opt)
	}
	return opts
}

func selectProfessor(idx timetable.Index, title string) (string, error) {
	cfg, _ := config.LoadWithEnv()
	var selected string
	if cfg != nil {
		selected = timetable.NormalizeName(cfg.DefaultProfessor)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Description("Start typing to filter.").
				Options(professorOptions(idx, selected)...).
				Value(&selected).
				Filtering(true).
				Height(12),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return "", err
	}
	return selected, nil
}

// RunProfessorTUI lets the user pick a professor and prints their week and where they are now
func RunProfessorTUI(sched *timetable.Schedule) error {
	if len(sched.Index) == 0 {
		fmt.Println(errorStyle.Render("No professors found in the timetable!"))
		return nil
	}

	name, err := selectProfessor(sched.Index, "Select a professor")
	if err != nil {
		return err
	}
	if name == "" {
		fmt.Println(errorStyle.Render("No professor selected!"))
		return nil
	}

	classes, _ := sched.Index.Lookup(name)
	fmt.Println(RenderNow(name, lookup.FindNow(sched.Index, name, time.Now())))
	fmt.Println(RenderSchedule(name, classes))
	return nil
}
