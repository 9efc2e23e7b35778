package timetable

import (
	"regexp"
	"strings"
)

var (
	columnGapRe   = regexp.MustCompile(`\s{2,}`)
	roomSuffixRe  = regexp.MustCompile(`^\p{Lu}{1,2}$`)
	ordinalMarker = "º°ª"
)

// LooksLikeHeader reports whether a line is shaped like a room header: at
// least two ordinal markers ("1º  2º") or four or more tokens.
func LooksLikeHeader(line string) bool {
	ords := 0
	for _, r := range line {
		if strings.ContainsRune(ordinalMarker, r) {
			ords++
		}
	}
	return ords >= 2 || len(strings.Fields(line)) >= 4
}

// DetectRooms splits a header line into room labels.
//
// Columns are normally separated by two or more spaces. When the line has no
// such gap it is split on single spaces instead, and a token followed by a
// one or two letter uppercase token is kept together ("Lab A", "Sala 3 B").
func DetectRooms(line string) RoomHeader {
	line = strings.TrimSpace(line)
	rooms := splitColumns(line)
	if len(rooms) <= 1 {
		if tokens := strings.Fields(line); len(tokens) > 1 {
			rooms = mergeRoomSuffixes(tokens)
		}
	}
	if len(rooms) == 0 && line != "" {
		rooms = []string{line}
	}
	for i, r := range rooms {
		rooms[i] = collapseSpaces(r)
	}
	return rooms
}

func mergeRoomSuffixes(tokens []string) RoomHeader {
	var grouped RoomHeader
	for i := 0; i < len(tokens); i++ {
		if i+1 < len(tokens) && roomSuffixRe.MatchString(tokens[i+1]) {
			grouped = append(grouped, tokens[i]+" "+tokens[i+1])
			i++
			continue
		}
		grouped = append(grouped, tokens[i])
	}
	return grouped
}

// splitColumns splits on runs of two or more whitespace characters and drops empty parts
func splitColumns(s string) []string {
	var cols []string
	for _, part := range columnGapRe.Split(strings.TrimSpace(s), -1) {
		if part = strings.TrimSpace(part); part != "" {
			cols = append(cols, part)
		}
	}
	return cols
}

func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
