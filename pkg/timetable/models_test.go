package timetable

import "testing"

func TestParseDay(t *testing.T) {
	tests := []struct {
		in   string
		want Day
		ok   bool
	}{
		{"Quarta", Wednesday, true},
		{"quarta", Wednesday, true},
		{" QUINTA ", Thursday, true},
		{"Terça", Tuesday, true},
		{"terca", Tuesday, true},
		{"SÁBADO", Saturday, true},
		{"sabado", Saturday, true},
		{"QUA", Wednesday, true},
		{"sex", Friday, true},
		{"Sáb", Saturday, true},
		{"undefined", Undefined, true},
		{"foo", "", false},
		{"Wednesday", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		got, ok := ParseDay(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseDay(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
