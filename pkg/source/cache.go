package source

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/rs/zerolog/log"

	"horactl/pkg/timetable"
)

// cacheDuration determines how long a fetched timetable is kept before refreshing
const cacheDuration = 12 * time.Hour

// CacheEntry represents the disk data format
type CacheEntry struct {
	Timestamp time.Time            `json:"timestamp"`
	URL       string               `json:"url"`
	Blocks    []timetable.RawBlock `json:"blocks"`
}

var unsafeNameRe = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

func getCachePath(url string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}

	cacheDir := filepath.Join(homeDir, ".horactl_cache")
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("could not create cache directory: %w", err)
	}

	// "https://example.edu/horarios.html" -> "https_example.edu_horarios.html.json"
	name := unsafeNameRe.ReplaceAllString(url, "_")
	return filepath.Join(cacheDir, name+".json"), nil
}

// readCache checks if a valid, unexpired cache exists for this URL
func readCache(url string) ([]timetable.RawBlock, bool) {
	path, err := getCachePath(url)
	if err != nil {
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var entry CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		log.Debug().Err(err).Str("path", path).Msg("ignoring unreadable cache file")
		return nil, false
	}

	if time.Since(entry.Timestamp) > cacheDuration {
		return nil, false
	}

	return entry.Blocks, true
}

// writeCache saves the blocks to disk; failures only cost a refetch later
func writeCache(url string, blocks []timetable.RawBlock) {
	path, err := getCachePath(url)
	if err != nil {
		return
	}

	entry := CacheEntry{
		Timestamp: time.Now(),
		URL:       url,
		Blocks:    blocks,
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Debug().Err(err).Str("path", path).Msg("could not write cache")
	}
}
