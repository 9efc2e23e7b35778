package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"horactl/pkg/exporter"
	"horactl/pkg/timetable"

	"github.com/charmbracelet/huh"
)

// RunExportTUI picks a professor and writes their week to an ICS file
func RunExportTUI(sched *timetable.Schedule) error {
	if len(sched.Index) == 0 {
		fmt.Println(errorStyle.Render("No professors found in the timetable!"))
		return nil
	}

	name, err := selectProfessor(sched.Index, "Whose schedule should be exported?")
	if err != nil {
		return err
	}
	if name == "" {
		fmt.Println(errorStyle.Render("No professor selected!"))
		return nil
	}

	outputFile := ExportFileName(name)
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Output file name").
				Value(&outputFile).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("file name cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	if !strings.HasSuffix(outputFile, ".ics") {
		outputFile += ".ics"
	}

	classes, _ := sched.Index.Lookup(name)

	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := exporter.GenerateICS(name, classes, time.Now(), file); err != nil {
		return fmt.Errorf("failed to generate ICS: %w", err)
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\nSuccess! Exported %d classes to %s", len(classes), outputFile)))
	return nil
}

// ExportFileName suggests "ana-souza.ics" for "ANA SOUZA"
func ExportFileName(professor string) string {
	return strings.ToLower(strings.Join(strings.Fields(professor), "-")) + ".ics"
}
