package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	sourceFlag  string
	verboseFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "horactl",
	Short: "A CLI and TUI for whitespace-aligned class timetables",
	Long: `horactl reads the plain-text class timetables published per period
(morning, afternoon, evening), finds out who teaches what, where and when,
and exports a professor's week to an .ics file.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.WarnLevel
		if verboseFlag {
			level = zerolog.DebugLevel
		}
		zerolog.SetGlobalLevel(level)
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&sourceFlag, "source", "S", "", "Timetable directory, HTML file or URL (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Log dropped lines and column mismatches")
}
