package timetable

import (
	"reflect"
	"testing"
)

func TestSplitRow(t *testing.T) {
	tests := []struct {
		name  string
		rest  string
		rooms int
		want  []string
	}{
		{
			name:  "clean gaps",
			rest:  "Cálculo (Ana)   Física (Rui)   Química (Lia)",
			rooms: 3,
			want:  []string{"Cálculo (Ana)", "Física (Rui)", "Química (Lia)"},
		},
		{
			name:  "parentheticals when gaps are missing",
			rest:  "Cálculo (Ana) Física (Rui) Química (Lia)",
			rooms: 3,
			want:  []string{"Cálculo (Ana)", "Física (Rui)", "Química (Lia)"},
		},
		{
			name:  "even redistribution",
			rest:  "a b c d e f",
			rooms: 3,
			want:  []string{"a b", "c d", "e f"},
		},
		{
			name:  "redistribution rejected keeps mismatch",
			rest:  "a b c d",
			rooms: 3,
			want:  []string{"a b c d"},
		},
		{
			name:  "more columns than rooms kept",
			rest:  "A  B  C",
			rooms: 2,
			want:  []string{"A", "B", "C"},
		},
		{
			name:  "no header uses gaps only",
			rest:  "Cálculo (Ana) Física (Rui)",
			rooms: 0,
			want:  []string{"Cálculo (Ana) Física (Rui)"},
		},
		{
			name:  "empty remainder",
			rest:  "",
			rooms: 2,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitRow(tt.rest, tt.rooms)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitRow(%q, %d) = %q, want %q", tt.rest, tt.rooms, got, tt.want)
			}
		})
	}
}

func TestRoomFor(t *testing.T) {
	rooms := RoomHeader{"A1", ""}
	if got := roomFor(rooms, 0); got != "A1" {
		t.Errorf("roomFor(0) = %q, want A1", got)
	}
	if got := roomFor(rooms, 1); got != "Room 2" {
		t.Errorf("roomFor(1) = %q, want Room 2", got)
	}
	if got := roomFor(nil, 2); got != "Room 3" {
		t.Errorf("roomFor(nil, 2) = %q, want Room 3", got)
	}
}
