package timetable

import "testing"

func TestClassifyLine(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		hasHeader bool
		kind      LineKind
		day       Day
		text      string
		time      string
		cells     string
	}{
		{"blank", "   ", true, LineBlank, "", "", "", ""},
		{"first header", "Sala 1  Sala 2  Sala 3  Sala 4", false, LineHeader, "", "Sala 1  Sala 2  Sala 3  Sala 4", "", ""},
		{"day alone", "SEG", true, LineDay, Monday, "", "", ""},
		{"day lower case", "qua", true, LineDay, Wednesday, "", "", ""},
		{"day accented", "Sáb 08:00 Química (Rui)", true, LineDay, Saturday, "08:00 Química (Rui)", "08:00", "Química (Rui)"},
		{"day with row", "SEG 08:00  Physics (Dr. X)", true, LineDay, Monday, "08:00  Physics (Dr. X)", "08:00", "Physics (Dr. X)"},
		{"day with bare time", "TER 08:00", true, LineDay, Tuesday, "08:00", "", ""},
		{"full day name is not a marker", "Segunda", true, LineNoise, "", "Segunda", "", ""},
		{"unknown abbreviation", "DOM 08:00", true, LineNoise, "", "DOM 08:00", "", ""},
		{"time row", "07:30  Cálculo (Ana)", true, LineTime, "", "07:30  Cálculo (Ana)", "07:30", "Cálculo (Ana)"},
		{"bare time", "08:00", true, LineNoise, "", "08:00", "", ""},
		{"time glued to text", "08:00Cálculo", true, LineNoise, "", "08:00Cálculo", "", ""},
		{"header-shaped row before any header", "08:00 A (X) B (Y)", false, LineHeader, "", "08:00 A (X) B (Y)", "", ""},
		{"second header", "1º Ano  2º Ano", true, LineHeader, "", "1º Ano  2º Ano", "", ""},
		{"noise", "Horários 2024", true, LineNoise, "", "Horários 2024", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyLine(tt.line, tt.hasHeader)
			if got.Kind != tt.kind {
				t.Fatalf("kind = %s, want %s", got.Kind, tt.kind)
			}
			if got.Day != tt.day {
				t.Errorf("day = %q, want %q", got.Day, tt.day)
			}
			if got.Text != tt.text {
				t.Errorf("text = %q, want %q", got.Text, tt.text)
			}
			if got.Time != tt.time || got.Cells != tt.cells {
				t.Errorf("time row = %q %q, want %q %q", got.Time, got.Cells, tt.time, tt.cells)
			}
		})
	}
}
