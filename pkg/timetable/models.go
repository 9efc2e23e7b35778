package timetable

import (
	"regexp"
	"strings"
	"time"
	"unicode"
)

// Period is one of the three daily segments, each with its own table
type Period string

const (
	Morning   Period = "morning"
	Afternoon Period = "afternoon"
	Evening   Period = "evening"
)

// Periods lists the periods in the order their blocks are parsed
var Periods = []Period{Morning, Afternoon, Evening}

var periodAliases = map[string]Period{
	"morning":   Morning,
	"manha":     Morning,
	"manhã":     Morning,
	"afternoon": Afternoon,
	"tarde":     Afternoon,
	"evening":   Evening,
	"noite":     Evening,
}

// ParsePeriod resolves an English or Portuguese period name (e.g. "noite")
func ParsePeriod(s string) (Period, bool) {
	p, ok := periodAliases[strings.ToLower(strings.TrimSpace(s))]
	return p, ok
}

// Day is a weekday name as printed in the source tables
type Day string

const (
	Monday    Day = "Segunda"
	Tuesday   Day = "Terça"
	Wednesday Day = "Quarta"
	Thursday  Day = "Quinta"
	Friday    Day = "Sexta"
	Saturday  Day = "Sábado"
	Sunday    Day = "Domingo"
	Undefined Day = "Undefined"
)

var dayRanks = map[Day]int{
	Monday:    1,
	Tuesday:   2,
	Wednesday: 3,
	Thursday:  4,
	Friday:    5,
	Saturday:  6,
	Sunday:    7,
	Undefined: 99,
}

// Rank orders days Monday first; unknown days sort last
func (d Day) Rank() int {
	if r, ok := dayRanks[d]; ok {
		return r
	}
	return 99
}

// dayAbbrevs maps the three-letter prefixes used in the tables to full day names
var dayAbbrevs = map[string]Day{
	"SEG": Monday,
	"TER": Tuesday,
	"QUA": Wednesday,
	"QUI": Thursday,
	"SEX": Friday,
	"SÁB": Saturday,
	"SAB": Saturday,
}

// DayFromAbbrev looks up a three-letter abbreviation, ignoring case
func DayFromAbbrev(abbrev string) (Day, bool) {
	d, ok := dayAbbrevs[strings.ToUpper(abbrev)]
	return d, ok
}

// dayNames lists every day ParseDay accepts by full name, plus the unaccented spellings
var dayNames = map[string]Day{
	"segunda":   Monday,
	"terça":     Tuesday,
	"terca":     Tuesday,
	"quarta":    Wednesday,
	"quinta":    Thursday,
	"sexta":     Friday,
	"sábado":    Saturday,
	"sabado":    Saturday,
	"domingo":   Sunday,
	"undefined": Undefined,
}

// ParseDay reads a day filter: a full name ("quarta", "Terça") in any case,
// or a three-letter abbreviation ("QUA").
func ParseDay(s string) (Day, bool) {
	s = strings.TrimSpace(s)
	if d, ok := dayNames[strings.ToLower(s)]; ok {
		return d, true
	}
	return DayFromAbbrev(s)
}

var weekdays = map[time.Weekday]Day{
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
	time.Sunday:    Sunday,
}

// DayFromWeekday converts a Go weekday into the table's day name
func DayFromWeekday(w time.Weekday) Day {
	if d, ok := weekdays[w]; ok {
		return d
	}
	return Undefined
}

// Weekday is the inverse of DayFromWeekday. ok is false for Undefined.
func (d Day) Weekday() (time.Weekday, bool) {
	for w, day := range weekdays {
		if day == d {
			return w, true
		}
	}
	return time.Sunday, false
}

// RawBlock is the text of one period's table, already split into lines
type RawBlock struct {
	Period Period   `json:"period"`
	Lines  []string `json:"lines"`
}

var newlineRe = regexp.MustCompile(`\r?\n`)

// NewBlock splits text into lines, turning tabs and non-breaking spaces into
// plain spaces and stripping trailing whitespace.
func NewBlock(period Period, text string) RawBlock {
	if text == "" {
		return RawBlock{Period: period}
	}
	raw := newlineRe.Split(text, -1)
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.ReplaceAll(l, "\t", " ")
		l = strings.ReplaceAll(l, "\u00a0", " ")
		lines = append(lines, strings.TrimRightFunc(l, unicode.IsSpace))
	}
	return RawBlock{Period: period, Lines: lines}
}

// RoomHeader is the ordered list of room labels governing a table's columns
type RoomHeader []string

// Entry is a single class slot recovered from a time row
type Entry struct {
	Day        Day    `json:"day"`
	Time       string `json:"time"` // "08:00"
	Room       string `json:"room"`
	Subject    string `json:"subject"`
	Instructor string `json:"instructor,omitempty"` // upper-cased, empty when the cell has none
	Period     Period `json:"period"`
}

// IndexEntry is an Entry listed under its instructor, so the name is not repeated
type IndexEntry struct {
	Day     Day    `json:"day"`
	Time    string `json:"time"`
	Room    string `json:"room"`
	Subject string `json:"subject"`
	Period  Period `json:"period"`
}

// Schedule bundles everything a parse pass produces
type Schedule struct {
	Entries []Entry `json:"entries"`
	Index   Index   `json:"index"`
}
