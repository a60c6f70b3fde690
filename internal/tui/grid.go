package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/joonholee/siganpyo/internal/timetable"
)

// cellRef points one grid cell at the block covering it. line is the
// 0-based row within the block, used to pick which text line to show.
type cellRef struct {
	block int
	line  int
	drag  bool
}

// buildGridTableRows flattens the scene into lipgloss table rows plus a
// parallel style matrix. Row r of the table is axis row r; column 0 is the
// time label, column d+1 is day d.
func (m *Model) buildGridTableRows(scene timetable.Scene) ([][]string, [][]lipgloss.Style) {
	days := m.grid.Days
	nRows := len(scene.Rows)

	// Occupancy: later blocks overwrite earlier ones, so overlapping
	// schedules stack in schedule order.
	occ := make(map[int]map[int]cellRef, len(days))
	for bi, b := range scene.Blocks {
		day, rng, drag := b.Day, b.Range, false
		if b.Dragging {
			// The held block renders at its previewed target cell.
			if pd, prng, ok := m.previewPlacement(); ok {
				day, rng = pd, prng
			}
			drag = true
		}
		di := m.grid.DayIndex(day)
		if occ[di] == nil {
			occ[di] = make(map[int]cellRef, len(rng))
		}
		for li, slot := range rng {
			occ[di][slot-1] = cellRef{block: bi, line: li, drag: drag}
		}
	}

	rows := make([][]string, 0, nRows)
	styles := make([][]lipgloss.Style, 0, nRows)
	for r, sceneRow := range scene.Rows {
		row := make([]string, 0, len(days)+1)
		rowStyles := make([]lipgloss.Style, 0, len(days)+1)

		row = append(row, sceneRow.Label)
		rowStyles = append(rowStyles, m.styleCache.TimeColumn)

		for d := range days {
			content, style := m.renderCell(scene, occ, d, r)
			row = append(row, content)
			rowStyles = append(rowStyles, style)
		}

		rows = append(rows, row)
		styles = append(styles, rowStyles)
	}

	return rows, styles
}

func (m *Model) renderCell(scene timetable.Scene, occ map[int]map[int]cellRef, day, row int) (string, lipgloss.Style) {
	isCursor := m.cursorVisible() && m.cursor.Day == day && m.cursor.Row == row

	ref, occupied := occ[day][row]
	if !occupied {
		if isCursor {
			return "", m.styleCache.Cursor
		}
		return "", m.styleCache.EmptyCell
	}

	b := scene.Blocks[ref.block]
	content := blockLine(b, ref.line, m.colWidth)

	if ref.drag {
		return content, m.styleCache.MovePreview
	}
	bs := m.styleCache.Block(b.Color)
	if isCursor {
		return content, bs.Fill.Reverse(true)
	}
	return content, bs.Fill
}

// cursorVisible hides the normal cursor cell while a block is held; the
// move preview already marks the target.
func (m *Model) cursorVisible() bool {
	return m.mode != ModeMove
}

// blockLine picks the text for one row of a block: title first, room
// second, blank below.
func blockLine(b timetable.Block, line, width int) string {
	switch line {
	case 0:
		return truncateCell(b.Lecture.Title, width)
	case 1:
		return truncateCell(b.Room, width)
	default:
		return ""
	}
}

// truncateCell clips cell text to the column width. Wide glyphs count as
// two columns, matching lipgloss rendering.
func truncateCell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	out := make([]rune, 0, len(runes))
	w := 0
	for _, r := range runes {
		rw := lipgloss.Width(string(r))
		if w+rw > width-1 {
			break
		}
		out = append(out, r)
		w += rw
	}
	return string(out) + "…"
}

// headerLabels returns the table header row: the time column label plus
// one label per day.
func (m *Model) headerLabels() ([]string, []lipgloss.Style) {
	headers := make([]string, 0, len(m.grid.Days)+1)
	styles := make([]lipgloss.Style, 0, len(m.grid.Days)+1)

	headers = append(headers, "시간")
	styles = append(styles, m.styleCache.TimeColumn)

	for d, day := range m.grid.Days {
		headers = append(headers, day)
		if d == m.cursor.Day {
			styles = append(styles, m.styleCache.DayHeaderActive)
		} else {
			styles = append(styles, m.styleCache.DayHeader)
		}
	}
	return headers, styles
}
