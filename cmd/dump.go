package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the parsed timetable as JSON",
	Long: `Print the instructor index as indented JSON. With --entries the flat
list of every parsed cell is printed instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, _ := cmd.Flags().GetBool("entries")
		output, _ := cmd.Flags().GetString("output")

		sched, err := loadSchedule()
		if err != nil {
			return err
		}

		var v any = sched.Index
		if entries {
			v = sched.Entries
		}
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to serialize timetable: %w", err)
		}

		if output == "" {
			fmt.Println(string(data))
			return nil
		}
		if err := os.WriteFile(output, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", output, err)
		}
		fmt.Printf("Wrote %s\n", output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)

	dumpCmd.Flags().Bool("entries", false, "Dump the flat entry list instead of the index")
	dumpCmd.Flags().StringP("output", "o", "", "Write to a file instead of stdout")
}
