package cmd

import (
	"fmt"
	"os"

	"horactl/pkg/config"
	"horactl/pkg/source"
	"horactl/pkg/timetable"

	"github.com/charmbracelet/huh/spinner"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
)

// resolveSource picks the --source flag, then the environment and config file, then the default directory
func resolveSource() string {
	if sourceFlag != "" {
		return sourceFlag
	}
	cfg, err := config.LoadWithEnv()
	if err != nil {
		log.Warn().Err(err).Msg("ignoring unreadable config")
		return config.DefaultSource
	}
	return cfg.SourceOrDefault()
}

// loadSchedule reads and parses the configured timetable, behind a spinner
// when stdout is a terminal and debug logs are off
func loadSchedule() (*timetable.Schedule, error) {
	location := resolveSource()

	var blocks []timetable.RawBlock
	var err error
	load := func() {
		blocks, err = source.Load(location)
	}

	if verboseFlag || !isatty.IsTerminal(os.Stdout.Fd()) {
		load()
	} else {
		_ = spinner.New().
			Title(fmt.Sprintf("Loading timetable from %s...", location)).
			Action(load).
			Run()
	}

	if err != nil {
		return nil, fmt.Errorf("failed to load timetable: %w", err)
	}

	sched := timetable.NewParser(log.Logger).Parse(blocks)
	log.Debug().
		Str("source", location).
		Int("blocks", len(blocks)).
		Int("entries", len(sched.Entries)).
		Int("professors", len(sched.Index)).
		Msg("timetable parsed")
	return sched, nil
}
