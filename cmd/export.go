package cmd

import (
	"fmt"
	"os"
	"time"

	"horactl/pkg/exporter"
	"horactl/pkg/timetable"
	"horactl/pkg/tui"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Directly export a professor's week to an ICS file",
	Long:  `Export the weekly classes of one professor to an ICS file without using the interactive TUI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		professor, _ := cmd.Flags().GetString("professor")
		output, _ := cmd.Flags().GetString("output")

		sched, err := loadSchedule()
		if err != nil {
			return err
		}

		name := timetable.NormalizeName(professor)
		classes, ok := sched.Index.Lookup(name)
		if !ok || len(classes) == 0 {
			return fmt.Errorf("no classes found for professor %s", name)
		}
		if output == "" {
			output = tui.ExportFileName(name)
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		err = exporter.GenerateICS(name, classes, time.Now(), file)
		if err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		fmt.Printf("Successfully exported %d classes to %s\n", len(classes), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("professor", "P", "", "Professor whose classes are exported")
	exportCmd.Flags().StringP("output", "o", "", "Output file path (default <name>.ics)")
	exportCmd.MarkFlagRequired("professor")
}
