package tui

import (
	"fmt"
	"strings"

	"github.com/joonholee/siganpyo/internal/timetable"
)

// renderCopyText flattens the active table into plain text for the
// clipboard, one schedule per line in day order.
func (m Model) renderCopyText() string {
	var b strings.Builder
	fmt.Fprintf(&b, "시간표 %d\n", m.active+1)

	schedules := m.store.Snapshot(m.ActiveTable())
	for _, day := range m.grid.Days {
		for _, s := range schedules {
			if s.Day != day {
				continue
			}
			first := m.axis[s.Range[0]-1]
			last := m.axis[s.Range[len(s.Range)-1]-1]
			span := timetable.MinutesToTime(first.StartMinutes) + "~" +
				timetable.MinutesToTime(last.StartMinutes+last.SpanMinutes)

			fmt.Fprintf(&b, "%s %s %s", day, span, s.Lecture.Title)
			if s.Room != "" {
				fmt.Fprintf(&b, " (%s)", s.Room)
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}
