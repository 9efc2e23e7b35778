package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"horactl/pkg/config"
)

func TestResolveSource(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(config.EnvSource, "")

	sourceFlag = ""
	t.Cleanup(func() { sourceFlag = "" })

	if got := resolveSource(); got != config.DefaultSource {
		t.Errorf("no config: got %q, want %q", got, config.DefaultSource)
	}

	if err := os.WriteFile(filepath.Join(home, ".horactl.json"), []byte(`{"source":"/srv/horarios"}`), 0644); err != nil {
		t.Fatal(err)
	}
	if got := resolveSource(); got != "/srv/horarios" {
		t.Errorf("saved config: got %q", got)
	}

	t.Setenv(config.EnvSource, "https://example.com/horarios.html")
	if got := resolveSource(); got != "https://example.com/horarios.html" {
		t.Errorf("env override: got %q", got)
	}

	sourceFlag = "./local"
	if got := resolveSource(); got != "./local" {
		t.Errorf("flag override: got %q", got)
	}
}

func TestLoadSchedule(t *testing.T) {
	dir := t.TempDir()
	table := "Sala 1  Sala 2\nSEG\n08:00  Cálculo (Ana)  Física (Rui)\n"
	if err := os.WriteFile(filepath.Join(dir, "manha.txt"), []byte(table), 0644); err != nil {
		t.Fatal(err)
	}

	sourceFlag = dir
	t.Cleanup(func() { sourceFlag = "" })

	sched, err := loadSchedule()
	if err != nil {
		t.Fatalf("loadSchedule: %v", err)
	}
	if len(sched.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(sched.Entries))
	}
	if _, ok := sched.Index.Lookup("ana"); !ok {
		t.Errorf("ANA missing from index: %v", sched.Index.Names())
	}
}

func TestSearchRejectsUnknownDay(t *testing.T) {
	if err := searchCmd.Flags().Set("day", "foo"); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = searchCmd.Flags().Set("day", "") })

	err := searchCmd.RunE(searchCmd, nil)
	if err == nil || !strings.Contains(err.Error(), `invalid --day "foo"`) {
		t.Errorf("expected invalid day error, got %v", err)
	}
}
