package cmd

import (
	"horactl/pkg/tui"

	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch the interactive TUI",
	Long:  `Launch the Text User Interface to look up professors, search classes and export schedules interactively.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sched, err := loadSchedule()
		if err != nil {
			return err
		}
		return tui.RunTUI(sched)
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
