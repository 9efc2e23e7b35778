package timetable

import (
	"fmt"
	"regexp"
	"strings"
)

// splitStrategy proposes columns for a time row remainder. It receives the
// current candidates and reports whether its proposal should replace them.
type splitStrategy func(rest string, roomCount int, current []string) ([]string, bool)

// fallbackStrategies run in order while the candidate count differs from the
// room count. A mismatch that survives all of them is kept as is.
var fallbackStrategies = []splitStrategy{
	splitOnParentheticals,
	redistributeTokens,
}

var parentheticalRe = regexp.MustCompile(`[\p{L}\p{N}.\-/\s]+?\([^)]+\)`)

// SplitRow rebuilds per-room cell texts from the part of a time row after the time
func SplitRow(rest string, roomCount int) []string {
	cols := splitColumns(rest)
	if roomCount <= 0 {
		return cols
	}
	for _, strategy := range fallbackStrategies {
		if len(cols) == roomCount {
			break
		}
		if next, ok := strategy(rest, roomCount, cols); ok {
			cols = next
		}
	}
	return cols
}

// splitOnParentheticals treats every "text (Instructor)" run as a column
func splitOnParentheticals(rest string, _ int, _ []string) ([]string, bool) {
	matches := parentheticalRe.FindAllString(rest, -1)
	if len(matches) == 0 {
		return nil, false
	}
	cols := make([]string, len(matches))
	for i, m := range matches {
		cols[i] = strings.TrimSpace(m)
	}
	return cols, true
}

// redistributeTokens spreads the words evenly over the rooms, ceil(n/rooms)
// words per column. Only used when there are too few columns, and only
// accepted when it produces exactly one chunk per room.
func redistributeTokens(rest string, roomCount int, current []string) ([]string, bool) {
	if len(current) >= roomCount {
		return nil, false
	}
	tokens := strings.Fields(rest)
	size := (len(tokens) + roomCount - 1) / roomCount
	if size == 0 {
		return nil, false
	}
	var chunks []string
	for i := 0; i < len(tokens); i += size {
		end := i + size
		if end > len(tokens) {
			end = len(tokens)
		}
		chunks = append(chunks, strings.Join(tokens[i:end], " "))
	}
	if len(chunks) != roomCount {
		return nil, false
	}
	return chunks, true
}

// roomFor returns the header label for column idx, or a placeholder
func roomFor(rooms RoomHeader, idx int) string {
	if idx < len(rooms) && rooms[idx] != "" {
		return rooms[idx]
	}
	return defaultRoom(idx)
}

func defaultRoom(idx int) string {
	return fmt.Sprintf("Room %d", idx+1)
}
