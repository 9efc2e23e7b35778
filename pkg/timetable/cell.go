package timetable

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Subject is matched lazily so "Física (Ana) (Lab)" keeps the first group as the instructor
var cellRe = regexp.MustCompile(`^(.*?)\s*\(([^)]+)\)`)

// DecomposeCell splits "Cálculo I (João Silva)" into subject and instructor.
// The instructor comes back normalised for keying ("JOÃO SILVA"); it is empty
// when the cell has no parenthesised name.
func DecomposeCell(cell string) (subject, instructor string) {
	m := cellRe.FindStringSubmatch(cell)
	if m == nil {
		return strings.TrimSpace(cell), ""
	}
	return strings.TrimSpace(m[1]), NormalizeName(m[2])
}

// NormalizeName trims, collapses whitespace and upper-cases an instructor name
func NormalizeName(name string) string {
	name = collapseSpaces(norm.NFC.String(name))
	if name == "" {
		return ""
	}
	return cases.Upper(language.BrazilianPortuguese).String(name)
}
