package timetable

import (
	"regexp"
	"strings"
	"unicode"
)

// LineKind classifies a raw table line
type LineKind int

const (
	LineBlank LineKind = iota
	LineHeader
	LineDay
	LineTime
	LineNoise
)

func (k LineKind) String() string {
	switch k {
	case LineBlank:
		return "blank"
	case LineHeader:
		return "header"
	case LineDay:
		return "day"
	case LineTime:
		return "time"
	default:
		return "noise"
	}
}

// Line is a classified line with its payload
type Line struct {
	Kind  LineKind
	Text  string // trimmed line; for LineDay, the text after the abbreviation
	Day   Day    // set for LineDay
	Time  string // "HH:MM" of a time row, on LineTime and on LineDay with an inline row
	Cells string // everything after Time
}

// timeRowRe matches an "HH:MM" prefix; group 3 holds the cells when the
// time is followed by whitespace.
var timeRowRe = regexp.MustCompile(`^(\d{2}:\d{2})(\s+(.*))?`)

// splitTimeRow reads "HH:MM <cells>". shaped is true when s starts with a
// time at all, ok only when cells follow it.
func splitTimeRow(s string) (hour, cells string, shaped, ok bool) {
	m := timeRowRe.FindStringSubmatch(s)
	if m == nil {
		return "", "", false, false
	}
	if m[2] == "" || m[3] == "" {
		return m[1], "", true, false
	}
	return m[1], m[3], true, true
}

// ClassifyLine decides what a line is. hasHeader tells whether the block
// already has a room header, which changes how header-shaped lines are read:
// before the first header they win over everything else.
func ClassifyLine(raw string, hasHeader bool) Line {
	text := strings.TrimSpace(raw)
	if text == "" {
		return Line{Kind: LineBlank}
	}
	if !hasHeader && LooksLikeHeader(text) {
		return Line{Kind: LineHeader, Text: text}
	}
	if abbrev, rest, ok := splitDayPrefix(text); ok {
		if day, known := DayFromAbbrev(abbrev); known {
			line := Line{Kind: LineDay, Text: rest, Day: day}
			line.Time, line.Cells, _, _ = splitTimeRow(rest)
			if line.Cells == "" {
				line.Time = ""
			}
			return line
		}
	}
	if hour, cells, shaped, ok := splitTimeRow(text); shaped {
		if !ok {
			// a time with no cells after it
			return Line{Kind: LineNoise, Text: text}
		}
		return Line{Kind: LineTime, Text: text, Time: hour, Cells: cells}
	}
	if LooksLikeHeader(text) {
		return Line{Kind: LineHeader, Text: text}
	}
	return Line{Kind: LineNoise, Text: text}
}

// splitDayPrefix takes the first three letters of s when they form a whole
// word ("SEG 08:00 ...", "Qui", but not "Segunda").
func splitDayPrefix(s string) (abbrev, rest string, ok bool) {
	runes := []rune(s)
	if len(runes) < 3 {
		return "", "", false
	}
	for _, r := range runes[:3] {
		if !unicode.IsLetter(r) {
			return "", "", false
		}
	}
	if len(runes) > 3 && isWordRune(runes[3]) {
		return "", "", false
	}
	return string(runes[:3]), strings.TrimSpace(string(runes[3:])), true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}
