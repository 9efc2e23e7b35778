package cmd

import (
	"fmt"
	"time"

	"horactl/pkg/lookup"
	"horactl/pkg/timetable"
	"horactl/pkg/tui"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search classes by date, day, period, professor or room",
	Long: `Search the timetable. Every filter is optional and filters combine.

  horactl search --date 2024-03-18 --period manha
  horactl search --room "Lab A"
  horactl search --day Quarta --professor "ana souza"

Without --day or --date and with --now, the search is narrowed to today and
the period the clock is currently in.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dateStr, _ := cmd.Flags().GetString("date")
		day, _ := cmd.Flags().GetString("day")
		period, _ := cmd.Flags().GetString("period")
		professor, _ := cmd.Flags().GetString("professor")
		room, _ := cmd.Flags().GetString("room")
		now, _ := cmd.Flags().GetBool("now")

		q := lookup.Query{Professor: professor, Room: room}
		if day != "" {
			d, ok := timetable.ParseDay(day)
			if !ok {
				return fmt.Errorf("invalid --day %q, expected a day like Segunda, Terça or QUA", day)
			}
			q.Day = d
		}
		if dateStr != "" {
			date, err := time.Parse("2006-01-02", dateStr)
			if err != nil {
				return fmt.Errorf("invalid --date %q, expected YYYY-MM-DD", dateStr)
			}
			q.Date = date
		}
		if period != "" {
			p, ok := timetable.ParsePeriod(period)
			if !ok {
				return fmt.Errorf("invalid --period %q, expected morning, afternoon or evening", period)
			}
			q.Period = p
		}
		if now && q.Date.IsZero() && q.Day == "" {
			t := time.Now()
			q.Date = t
			if q.Period == "" {
				p, ok := lookup.CurrentPeriod(t)
				if !ok {
					fmt.Println(tui.Muted("No period is running right now."))
					return nil
				}
				q.Period = p
			}
		}

		sched, err := loadSchedule()
		if err != nil {
			return err
		}
		fmt.Println(tui.RenderResults(lookup.Search(sched.Index, q)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)

	searchCmd.Flags().String("date", "", "Only classes on this date's weekday (YYYY-MM-DD)")
	searchCmd.Flags().String("day", "", "Only classes on this day (Segunda, Terça, ...)")
	searchCmd.Flags().StringP("period", "p", "", "Only classes in this period (morning/manha, afternoon/tarde, evening/noite)")
	searchCmd.Flags().String("professor", "", "Only classes of this professor")
	searchCmd.Flags().StringP("room", "r", "", "Only classes in this room")
	searchCmd.Flags().Bool("now", false, "Restrict to today and the current period")
}
