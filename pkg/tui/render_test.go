package tui

import (
	"strings"
	"testing"

	"horactl/pkg/lookup"
	"horactl/pkg/timetable"
)

func TestRenderSchedule(t *testing.T) {
	classes := []timetable.IndexEntry{
		{Day: timetable.Monday, Time: "08:00", Room: "Sala 1", Subject: "Cálculo", Period: timetable.Morning},
		{Day: timetable.Monday, Time: "10:00", Room: "Sala 2", Subject: "Álgebra", Period: timetable.Morning},
		{Day: timetable.Wednesday, Time: "19:00", Room: "Lab A", Subject: "Redes", Period: timetable.Evening},
	}

	out := RenderSchedule("ANA", classes)

	if !strings.Contains(out, "Schedule for ANA (3 classes)") {
		t.Errorf("missing title in:\n%s", out)
	}
	if strings.Count(out, "Segunda") != 1 {
		t.Errorf("expected one Segunda heading in:\n%s", out)
	}
	if strings.Index(out, "Segunda") > strings.Index(out, "Quarta") {
		t.Errorf("days out of order in:\n%s", out)
	}
	if !strings.Contains(out, "Redes • evening") {
		t.Errorf("missing class detail in:\n%s", out)
	}
}

func TestRenderSchedule_Empty(t *testing.T) {
	if out := RenderSchedule("NOBODY", nil); !strings.Contains(out, "No classes found") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestRenderNow(t *testing.T) {
	res := &lookup.NowResult{
		Kind:  lookup.KindNext,
		Entry: timetable.IndexEntry{Day: timetable.Friday, Time: "14:00", Room: "Sala 3", Subject: "Química", Period: timetable.Afternoon},
	}

	out := RenderNow("RUI", res)
	if !strings.Contains(out, "NEXT") || !strings.Contains(out, "Sexta • 14:00 • Sala 3 • Química (afternoon)") {
		t.Errorf("unexpected output:\n%s", out)
	}

	if out := RenderNow("RUI", nil); !strings.Contains(out, "No class right now") {
		t.Errorf("unexpected output for nil result %q", out)
	}
}

func TestRenderResults(t *testing.T) {
	results := []lookup.Result{
		{Professor: "ANA", IndexEntry: timetable.IndexEntry{Day: timetable.Monday, Time: "08:00", Room: "Sala 1", Subject: "Cálculo", Period: timetable.Morning}},
	}

	out := RenderResults(results)
	if !strings.Contains(out, "Results (1)") || !strings.Contains(out, "Segunda • 08:00 • Sala 1 • Cálculo • morning") {
		t.Errorf("unexpected output:\n%s", out)
	}

	if out := RenderResults(nil); !strings.Contains(out, "No results") {
		t.Errorf("unexpected output for no results %q", out)
	}
}

func TestExportFileName(t *testing.T) {
	if got := ExportFileName("ANA  SOUZA"); got != "ana-souza.ics" {
		t.Errorf("ExportFileName = %q, want ana-souza.ics", got)
	}
}
