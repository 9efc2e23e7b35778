package cmd

import (
	"fmt"

	"horactl/pkg/lookup"
	"horactl/pkg/tui"

	"github.com/spf13/cobra"
)

var professorsCmd = &cobra.Command{
	Use:   "professors",
	Short: "List every professor found in the timetable",
	RunE: func(cmd *cobra.Command, args []string) error {
		sched, err := loadSchedule()
		if err != nil {
			return err
		}

		names := lookup.Professors(sched.Index)
		if len(names) == 0 {
			return fmt.Errorf("no professors found in the timetable")
		}
		for _, name := range names {
			fmt.Printf("%s %s\n", name, tui.Muted(fmt.Sprintf("(%d)", len(sched.Index[name]))))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(professorsCmd)
}
