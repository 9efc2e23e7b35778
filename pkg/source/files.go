package source

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"horactl/pkg/timetable"
)

// fileNames lists the accepted file names per period, tried in order
var fileNames = map[timetable.Period][]string{
	timetable.Morning:   {"morning.txt", "manha.txt", "manhã.txt"},
	timetable.Afternoon: {"afternoon.txt", "tarde.txt"},
	timetable.Evening:   {"evening.txt", "noite.txt"},
}

// ReadDir reads one text file per period from dir. A missing file yields an
// empty block for that period.
func ReadDir(dir string) ([]timetable.RawBlock, error) {
	blocks := make([]timetable.RawBlock, 0, len(timetable.Periods))
	found := 0

	for _, p := range timetable.Periods {
		text, err := readFirst(dir, fileNames[p])
		if err != nil {
			return nil, err
		}
		if text == "" {
			log.Debug().Str("dir", dir).Str("period", string(p)).Msg("no timetable file for period")
		} else {
			found++
		}
		blocks = append(blocks, timetable.NewBlock(p, text))
	}

	if found == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoBlocks)
	}
	return blocks, nil
}

func readFirst(dir string, names []string) (string, error) {
	for _, name := range names {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return "", fmt.Errorf("failed to read timetable file: %w", err)
		}
		return string(data), nil
	}
	return "", nil
}

// Load reads blocks from a URL, a directory of text files or a single HTML file
func Load(location string) ([]timetable.RawBlock, error) {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return NewClient().FetchBlocks(location)
	}

	info, err := os.Stat(location)
	if err != nil {
		return nil, fmt.Errorf("timetable source not found: %w", err)
	}
	if info.IsDir() {
		return ReadDir(location)
	}

	f, err := os.Open(location)
	if err != nil {
		return nil, fmt.Errorf("failed to open timetable document: %w", err)
	}
	defer f.Close()

	blocks, err := ParseDocument(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", location, err)
	}
	return blocks, nil
}
