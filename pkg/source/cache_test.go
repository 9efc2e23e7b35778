package source

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"horactl/pkg/timetable"
)

func TestCacheReadWrite(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "horactl-cache-test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	url := "https://example.edu/horarios.html"

	// 1. Read non-existent cache
	blocks, ok := readCache(url)
	if ok || blocks != nil {
		t.Errorf("expected readCache to fail for non-existent cache, but got success")
	}

	// 2. Write cache
	testBlocks := []timetable.RawBlock{
		timetable.NewBlock(timetable.Morning, "1º  2º\nSEG\n08:00  Cálculo (Ana)  Física (Rui)"),
	}
	writeCache(url, testBlocks)

	expectedPath := filepath.Join(tempDir, ".horactl_cache", "https_example.edu_horarios.html.json")
	if _, err := os.Stat(expectedPath); os.IsNotExist(err) {
		t.Errorf("expected cache file to be created at %s", expectedPath)
	}

	// 3. Read existing valid cache
	loaded, ok := readCache(url)
	if !ok {
		t.Fatalf("expected readCache to succeed for existing cache, but failed")
	}
	if !reflect.DeepEqual(testBlocks, loaded) {
		t.Errorf("loaded blocks do not match written blocks.\nGot: %+v\nExpected: %+v", loaded, testBlocks)
	}
}

func TestCacheExpiration(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "horactl-cache-exp-test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	url := "https://example.edu/expired.html"
	cachePath, err := getCachePath(url)
	if err != nil {
		t.Fatalf("failed to resolve cache path: %v", err)
	}

	entry := CacheEntry{
		Timestamp: time.Now().Add(-24 * time.Hour), // older than the 12h limit
		URL:       url,
		Blocks:    []timetable.RawBlock{timetable.NewBlock(timetable.Evening, "19:00  Old (X)")},
	}
	data, _ := json.Marshal(entry)
	if err := os.WriteFile(cachePath, data, 0644); err != nil {
		t.Fatalf("failed to write cache file: %v", err)
	}

	if _, ok := readCache(url); ok {
		t.Errorf("expected readCache to reject expired cache (24h old, limit is 12h), but it incorrectly succeeded")
	}
}
