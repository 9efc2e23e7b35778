package tui

import (
	"fmt"
	"os"
	"strings"

	"horactl/pkg/config"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Timetable Source", "source"),
						huh.NewOption("Set Default Professor", "professor"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		switch action {
		case "back":
			return nil
		case "theme":
			err = runSetThemeTUI(cfg)
		case "source":
			err = runSetSourceTUI(cfg)
		case "professor":
			err = runSetProfessorTUI(cfg)
		case "view":
			fmt.Println(accentStyle.Render("\n--- Current Configuration (~/.horactl.json) ---"))
			fmt.Printf("Source: %s\n", cfg.SourceOrDefault())
			fmt.Printf("Default Professor: %s\n", valueOrUnset(cfg.DefaultProfessor))
			fmt.Printf("Listen Address: %s\n", valueOrUnset(cfg.ListenAddress))
			fmt.Printf("Accent Color: %s\n", valueOrUnset(cfg.AccentColor))
			fmt.Println()
		}

		if err != nil {
			return err
		}
	}
}

func valueOrUnset(v string) string {
	if v == "" {
		return "Not set"
	}
	return v
}

func runSetSourceTUI(cfg *config.AppConfig) error {
	source := cfg.Source

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Where are the timetables?").
				Description("A directory with manha.txt/tarde.txt/noite.txt, an HTML file, or an http(s) URL.").
				Placeholder(config.DefaultSource).
				Value(&source).
				Validate(func(s string) error {
					s = strings.TrimSpace(s)
					if s == "" || strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
						return nil
					}
					if _, err := os.Stat(s); err != nil {
						return fmt.Errorf("path does not exist: %s", s)
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Source = strings.TrimSpace(source)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Timetable source set to: %s\n", cfg.SourceOrDefault())))
	return nil
}

func runSetProfessorTUI(cfg *config.AppConfig) error {
	name := cfg.DefaultProfessor

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Default professor").
				Description("Pre-selected in lookups and exports. Leave empty to clear.").
				Value(&name),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.DefaultProfessor = strings.TrimSpace(name)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Default professor: %s\n", valueOrUnset(cfg.DefaultProfessor))))
	return nil
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an Accent Color for horactl").
				Description("Select a curated Charm style or choose Custom to enter your own Hex.").
				Options(
					huh.NewOption(fmt.Sprintf("%s Lecture Purple", colorBlock("99")), "99"),
					huh.NewOption(fmt.Sprintf("%s Sakura Pink", colorBlock("205")), "205"),
					huh.NewOption(fmt.Sprintf("%s Ocean Blue", colorBlock("86")), "86"),
					huh.NewOption(fmt.Sprintf("%s Matrix Green", colorBlock("42")), "42"),
					huh.NewOption("✨ Custom Hex Code", "custom"),
				).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "custom" {
		var hexInput string
		hexForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Enter a Hex Color Code").
					Description("Include the `#` symbol. Example: #FF00FF").
					Placeholder("#").
					Value(&hexInput).
					Validate(func(str string) error {
						if len(str) != 7 || !strings.HasPrefix(str, "#") {
							return fmt.Errorf("must be a valid 6-character hex code starting with #")
						}
						return nil
					}),
			),
		).WithTheme(GetTheme())

		if err := hexForm.Run(); err != nil {
			return err
		}
		cfg.AccentColor = hexInput
	} else {
		cfg.AccentColor = input
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Beautiful! The theme color is now saved.\n"))
	return nil
}
