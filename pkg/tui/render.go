package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"horactl/pkg/lookup"
	"horactl/pkg/timetable"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Padding(1, 0, 0, 0)
	dayStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Bold(true).MarginTop(1)
	timeStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	badgeStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).Border(lipgloss.RoundedBorder())
	nowColor   = lipgloss.Color("42")
)

var badgeLabels = map[lookup.NowKind]string{
	lookup.KindNow:  "NOW",
	lookup.KindNext: "NEXT",
	lookup.KindLast: "LAST TODAY",
}

// RenderNow describes where the professor is at the moment
func RenderNow(professor string, res *lookup.NowResult) string {
	if res == nil {
		return mutedStyle.Render("No class right now (or nothing scheduled today).")
	}
	badge := badgeStyle
	if res.Kind == lookup.KindNow {
		badge = badge.Foreground(nowColor).BorderForeground(nowColor)
	}
	e := res.Entry
	line := fmt.Sprintf("%s\n%s • %s • %s • %s (%s)", professor, e.Day, e.Time, e.Room, e.Subject, e.Period)
	return lipgloss.JoinHorizontal(lipgloss.Center, badge.Render(badgeLabels[res.Kind]), " ", line)
}

// RenderSchedule lists a professor's classes grouped by day
func RenderSchedule(professor string, classes []timetable.IndexEntry) string {
	if len(classes) == 0 {
		return mutedStyle.Render("No classes found for this professor.")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Schedule for %s (%d classes)", professor, len(classes))))
	b.WriteString("\n")

	byDay := make(map[timetable.Day][]timetable.IndexEntry)
	var days []timetable.Day
	for _, c := range classes {
		if _, ok := byDay[c.Day]; !ok {
			days = append(days, c.Day)
		}
		byDay[c.Day] = append(byDay[c.Day], c)
	}
	sort.SliceStable(days, func(i, j int) bool { return days[i].Rank() < days[j].Rank() })

	for _, d := range days {
		b.WriteString(dayStyle.Render(string(d)))
		b.WriteString("\n")
		for _, c := range byDay[d] {
			fmt.Fprintf(&b, "%s — %s\n", timeStyle.Render(c.Time), c.Room)
			fmt.Fprintf(&b, "  %s\n", mutedStyle.Render(fmt.Sprintf("%s • %s", c.Subject, c.Period)))
		}
	}
	return b.String()
}

// RenderResults prints advanced search results, one class per line
func RenderResults(results []lookup.Result) string {
	if len(results) == 0 {
		return mutedStyle.Render("No results for these filters.")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Results (%d)", len(results))))
	b.WriteString("\n")
	for _, r := range results {
		fmt.Fprintf(&b, "%s\n  %s • %s • %s • %s • %s\n",
			timeStyle.Render(r.Professor), r.Day, r.Time, r.Room, r.Subject, r.Period)
	}
	return b.String()
}
