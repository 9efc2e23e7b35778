package timetable

import (
	"github.com/rs/zerolog"
)

// ParseState is the per-block state carried from one line to the next
type ParseState struct {
	Day   Day
	Rooms RoomHeader // nil until the first header line
}

func newParseState() ParseState {
	return ParseState{Day: Undefined}
}

// Parser turns raw period blocks into schedule entries. It never fails:
// lines it cannot read are dropped and column mismatches are resolved on a
// best-effort basis.
type Parser struct {
	log zerolog.Logger
}

// NewParser returns a parser that reports dropped lines and column
// mismatches to log at debug level.
func NewParser(log zerolog.Logger) *Parser {
	return &Parser{log: log}
}

var defaultParser = NewParser(zerolog.Nop())

// ParseBlock parses a single block with a silent parser
func ParseBlock(block RawBlock) []Entry {
	return defaultParser.ParseBlock(block)
}

// Parse parses blocks with a silent parser
func Parse(blocks []RawBlock) *Schedule {
	return defaultParser.Parse(blocks)
}

// Parse parses every block in order and indexes the result by instructor
func (p *Parser) Parse(blocks []RawBlock) *Schedule {
	var entries []Entry
	for _, b := range blocks {
		entries = append(entries, p.ParseBlock(b)...)
	}
	return &Schedule{Entries: entries, Index: BuildIndex(entries)}
}

// ParseBlock walks one block line by line
func (p *Parser) ParseBlock(block RawBlock) []Entry {
	state := newParseState()
	var entries []Entry

	for n, raw := range block.Lines {
		line := ClassifyLine(raw, state.Rooms != nil)
		switch line.Kind {
		case LineHeader:
			state.Rooms = DetectRooms(line.Text)
			p.log.Debug().
				Str("period", string(block.Period)).
				Int("line", n+1).
				Strs("rooms", state.Rooms).
				Msg("room header")
		case LineDay:
			state.Day = line.Day
			if line.Time != "" {
				entries = p.timeRow(entries, line, state, block.Period, n+1)
			} else if line.Text != "" {
				p.log.Debug().
					Str("period", string(block.Period)).
					Int("line", n+1).
					Str("text", line.Text).
					Msg("text after day marker is not a time row")
			}
		case LineTime:
			entries = p.timeRow(entries, line, state, block.Period, n+1)
		case LineNoise:
			p.log.Debug().
				Str("period", string(block.Period)).
				Int("line", n+1).
				Str("text", line.Text).
				Msg("dropped unrecognised line")
		}
	}
	return entries
}

// timeRow resolves a classified time row into one entry per column
func (p *Parser) timeRow(entries []Entry, line Line, state ParseState, period Period, lineNo int) []Entry {
	hour := line.Time
	cols := SplitRow(line.Cells, len(state.Rooms))
	if state.Rooms != nil && len(cols) != len(state.Rooms) {
		p.log.Debug().
			Str("period", string(period)).
			Int("line", lineNo).
			Int("columns", len(cols)).
			Int("rooms", len(state.Rooms)).
			Msg("column count does not match header")
	}

	for i, col := range cols {
		subject, instructor := DecomposeCell(col)
		entries = append(entries, Entry{
			Day:        state.Day,
			Time:       hour,
			Room:       roomFor(state.Rooms, i),
			Subject:    subject,
			Instructor: instructor,
			Period:     period,
		})
	}
	return entries
}
