package cmd

import (
	"fmt"
	"strings"
	"time"

	"horactl/pkg/lookup"
	"horactl/pkg/timetable"
	"horactl/pkg/tui"

	"github.com/spf13/cobra"
)

var professorCmd = &cobra.Command{
	Use:   "professor <name>",
	Short: "Show where a professor is now and their whole week",
	Long: `Show a professor's weekly schedule together with the class they are
teaching right now, or their next (or last) class today.

The name is matched case-insensitively: "ana souza" finds ANA SOUZA.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sched, err := loadSchedule()
		if err != nil {
			return err
		}

		name := timetable.NormalizeName(strings.Join(args, " "))
		classes, ok := sched.Index.Lookup(name)
		if !ok {
			return fmt.Errorf("professor %q not found (try `horactl professors`)", name)
		}

		fmt.Println(tui.RenderNow(name, lookup.FindNow(sched.Index, name, time.Now())))
		fmt.Println(tui.RenderSchedule(name, classes))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(professorCmd)
}
