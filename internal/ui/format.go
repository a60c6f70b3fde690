package ui

import (
	"fmt"
	"strings"

	"github.com/joonholee/siganpyo/internal/catalog"
	"github.com/joonholee/siganpyo/internal/timetable"
)

// Stats holds aggregated statistics for a set of catalog entries.
type Stats struct {
	Lectures      int
	TotalMinutes  int
	OccupiedSlots int
	DayStats      map[string]DayStats
}

// DayStats holds statistics for a single day column.
type DayStats struct {
	Lectures int
	Minutes  int
	Slots    int
}

// BusiestDay returns the day with the most scheduled minutes.
func (s Stats) BusiestDay() (day string, minutes int) {
	for d, ds := range s.DayStats {
		if ds.Minutes > minutes {
			minutes = ds.Minutes
			day = d
		}
	}
	return day, minutes
}

// AccumulateStats updates stats with one catalog entry.
func AccumulateStats(stats *Stats, axis []timetable.AxisRow, e catalog.Entry) {
	minutes := EntryMinutes(axis, e)
	stats.Lectures++
	stats.TotalMinutes += minutes
	stats.OccupiedSlots += e.SpanSlots

	if stats.DayStats == nil {
		stats.DayStats = make(map[string]DayStats)
	}
	ds := stats.DayStats[e.Day]
	ds.Lectures++
	ds.Minutes += minutes
	ds.Slots += e.SpanSlots
	stats.DayStats[e.Day] = ds
}

// EntryMinutes returns the displayed length of an entry: the sum of the
// label windows of the rows it covers.
func EntryMinutes(axis []timetable.AxisRow, e catalog.Entry) int {
	minutes := 0
	for slot := e.StartSlot; slot < e.StartSlot+e.SpanSlots; slot++ {
		if slot < 1 || slot > len(axis) {
			continue
		}
		minutes += axis[slot-1].SpanMinutes
	}
	return minutes
}

// EntryTimeRange returns the "HH:MM~HH:MM" window an entry covers on the axis.
func EntryTimeRange(axis []timetable.AxisRow, e catalog.Entry) string {
	first := e.StartSlot
	last := e.StartSlot + e.SpanSlots - 1
	if first < 1 || last > len(axis) || first > last {
		return "?"
	}
	start := axis[first-1].StartMinutes
	end := axis[last-1].StartMinutes + axis[last-1].SpanMinutes
	return timetable.MinutesToTime(start) + "~" + timetable.MinutesToTime(end)
}

// SlotRangeLabel formats an entry's slot coverage, e.g. "3-5교시" or "7교시".
func SlotRangeLabel(e catalog.Entry) string {
	if e.SpanSlots == 1 {
		return fmt.Sprintf("%d교시", e.StartSlot)
	}
	return fmt.Sprintf("%d-%d교시", e.StartSlot, e.StartSlot+e.SpanSlots-1)
}

// FormatDuration formats minutes as a human-readable duration.
func FormatDuration(minutes int) string {
	if minutes == 0 {
		return "0m"
	}
	hours := minutes / 60
	mins := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%dm", hours, mins)
}

// OccupancyBar creates an ASCII bar showing how full the week grid is.
func OccupancyBar(occupiedSlots, totalSlots, width int) string {
	if totalSlots == 0 {
		return "[" + strings.Repeat("░", width) + "] (0% filled)"
	}

	if occupiedSlots > totalSlots {
		occupiedSlots = totalSlots
	}
	pct := (occupiedSlots * 100) / totalSlots
	filled := (occupiedSlots * width) / totalSlots

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %s", formatTitle(bar), formatStats(fmt.Sprintf("(%d%% filled)", pct)))
}

// truncate shortens a string to at most max runes, appending "..." when cut.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// sortByDay returns entries regrouped in the given day order, preserving the
// relative order within a day and sorting each day by start slot.
func sortByDay(entries []catalog.Entry, days []string) []catalog.Entry {
	sorted := make([]catalog.Entry, 0, len(entries))
	for _, day := range days {
		var dayEntries []catalog.Entry
		for _, e := range entries {
			if e.Day == day {
				dayEntries = append(dayEntries, e)
			}
		}
		for i := 1; i < len(dayEntries); i++ {
			for j := i; j > 0 && dayEntries[j].StartSlot < dayEntries[j-1].StartSlot; j-- {
				dayEntries[j], dayEntries[j-1] = dayEntries[j-1], dayEntries[j]
			}
		}
		sorted = append(sorted, dayEntries...)
	}
	// Entries on unknown days keep their catalog order at the end.
	for _, e := range entries {
		if !containsDay(days, e.Day) {
			sorted = append(sorted, e)
		}
	}
	return sorted
}

func containsDay(days []string, day string) bool {
	for _, d := range days {
		if d == day {
			return true
		}
	}
	return false
}
