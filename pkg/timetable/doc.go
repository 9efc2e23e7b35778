// Package timetable parses whitespace-aligned timetable text into class
// entries and indexes them by instructor.
//
// A block is read line by line. A header line names the rooms (one per
// column), a day marker ("SEG", "TER", ...) sets the weekday for the rows
// below it, and each "HH:MM" row is split into one cell per room. Cells hold
// a subject with the instructor in parentheses.
//
// The input has no delimiters beyond spacing, so every step falls back to a
// heuristic instead of failing. Unreadable lines are skipped.
package timetable
