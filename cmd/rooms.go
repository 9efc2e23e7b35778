package cmd

import (
	"fmt"

	"horactl/pkg/lookup"

	"github.com/spf13/cobra"
)

var roomsCmd = &cobra.Command{
	Use:   "rooms",
	Short: "List every room that appears in the timetable",
	RunE: func(cmd *cobra.Command, args []string) error {
		sched, err := loadSchedule()
		if err != nil {
			return err
		}
		for _, room := range lookup.Rooms(sched.Entries) {
			fmt.Println(room)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(roomsCmd)
}
