package tui

import (
	"horactl/pkg/config"
	"horactl/pkg/timetable"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// DefaultAccent is the colour used until the user picks one
const DefaultAccent = "99"

var (
	// These act as fallbacks initially, but are replaced by GetTheme()
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(DefaultAccent))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// Accent renders s in the configured accent colour
func Accent(s string) string {
	return accentStyle.Render(s)
}

// Error renders s as an error message
func Error(s string) string {
	return errorStyle.Render(s)
}

// Muted renders s greyed out
func Muted(s string) string {
	return mutedStyle.Render(s)
}

// GetTheme loads the user's saved accent colour and constructs the UI theme.
func GetTheme() *huh.Theme {
	cfg, err := config.LoadWithEnv()
	baseColor := DefaultAccent

	if err == nil && cfg != nil && cfg.AccentColor != "" {
		baseColor = cfg.AccentColor
	}

	// Update the global lipgloss accent so plain CLI output also receives the color
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(baseColor))

	return GetCustomTheme(baseColor)
}

// GetCustomTheme returns a new huh.Theme instantiated with the provided lipgloss color string.
// This is used for live-previewing styles before they are officially saved.
func GetCustomTheme(baseColor string) *huh.Theme {
	t := huh.ThemeCharm()
	p := lipgloss.Color(baseColor)

	t.Focused.Title = t.Focused.Title.Foreground(p).Bold(true)
	t.Focused.Base = t.Focused.Base.Border(lipgloss.RoundedBorder()).BorderForeground(p).Padding(0, 1)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(p)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(p)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(p)
	t.Focused.SelectedPrefix = t.Focused.SelectedPrefix.Foreground(p)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(p)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(p)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(lipgloss.Color("0")).Background(p)

	// Softer borders for unfocused elements
	t.Blurred.Base = t.Blurred.Base.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)

	return t
}

// RunTUI launches the main menu and loops until the user quits
func RunTUI(sched *timetable.Schedule) error {
	for {
		var action string

		menu := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("What would you like to do?").
					Options(
						huh.NewOption("👩‍🏫 Professor schedule", "professor"),
						huh.NewOption("🔎 Advanced search", "search"),
						huh.NewOption("📅 Export professor to calendar", "export"),
						huh.NewOption("⚙️ Settings", "config"),
						huh.NewOption("Quit", "quit"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := menu.Run(); err != nil {
			return err
		}

		var err error
		switch action {
		case "professor":
			err = RunProfessorTUI(sched)
		case "search":
			err = RunSearchTUI(sched)
		case "export":
			err = RunExportTUI(sched)
		case "config":
			err = RunConfigTUI()
		default:
			return nil
		}
		if err != nil {
			return err
		}
	}
}
