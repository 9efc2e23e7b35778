package cmd

import (
	"fmt"

	"horactl/pkg/config"
	"horactl/pkg/timetable"
	"horactl/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage horactl configuration",
	Long:  "View or edit your local configuration settings (timetable source, default professor, accent colour).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		setSource, _ := cmd.Flags().GetString("set-source")
		setProfessor, _ := cmd.Flags().GetString("set-professor")
		setColor, _ := cmd.Flags().GetString("set-color")
		setAddr, _ := cmd.Flags().GetString("set-addr")
		show, _ := cmd.Flags().GetBool("show")

		changed := false
		if setSource != "" {
			cfg.Source = setSource
			changed = true
		}
		if setProfessor != "" {
			cfg.DefaultProfessor = timetable.NormalizeName(setProfessor)
			changed = true
		}
		if setColor != "" {
			cfg.AccentColor = setColor
			changed = true
		}
		if setAddr != "" {
			cfg.ListenAddress = setAddr
			changed = true
		}

		if changed {
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Println(tui.Accent("✅ Configuration saved."))
		}
		if show {
			fmt.Printf("Source: %s\n", cfg.SourceOrDefault())
			fmt.Printf("Default Professor: %s\n", cfg.DefaultProfessor)
			fmt.Printf("Listen Address: %s\n", cfg.ListenAddress)
			fmt.Printf("Accent Color: %s\n", cfg.AccentColor)
		}
		if changed || show {
			return nil
		}

		// If no flags are given, launch the interactive TUI flow
		return tui.RunConfigTUI()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().String("set-source", "", "Set the timetable directory, HTML file or URL")
	configCmd.Flags().String("set-professor", "", "Set the professor pre-selected in the TUI")
	configCmd.Flags().String("set-color", "", "Set the accent colour (ANSI code like 99 or hex like #7D56F4)")
	configCmd.Flags().String("set-addr", "", "Set the address `serve` listens on")
	configCmd.Flags().Bool("show", false, "Print the saved configuration")
}
