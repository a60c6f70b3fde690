// Package tui provides the terminal user interface for siganpyo.
package tui

import (
	"testing"

	"github.com/joonholee/siganpyo/internal/timetable"
)

func TestBuildGridTableRows_Shape(t *testing.T) {
	m := New(nil, testConfig())
	rows, styles := m.buildGridTableRows(m.Scene())

	if len(rows) != timetable.AxisRows {
		t.Fatalf("rows = %d, want %d", len(rows), timetable.AxisRows)
	}
	if len(styles) != len(rows) {
		t.Fatalf("styles = %d rows, want %d", len(styles), len(rows))
	}
	for r, row := range rows {
		if len(row) != len(m.grid.Days)+1 {
			t.Fatalf("row %d has %d cells, want %d", r, len(row), len(m.grid.Days)+1)
		}
		if row[0] != m.axis[r].Label {
			t.Fatalf("row %d label = %q, want %q", r, row[0], m.axis[r].Label)
		}
	}
}

func TestBuildGridTableRows_BlockContent(t *testing.T) {
	m := New(nil, testConfig())
	if err := m.store.Add(m.ActiveTable(), testSchedule("calc1", "미적분학 1", "화", 3, 3)); err != nil {
		t.Fatalf("Add: %v", err)
	}

	rows, styles := m.buildGridTableRows(m.Scene())

	// Column 2 is 화; the block covers rows 2..4 showing title then room.
	if rows[2][2] != "미적분학 1" {
		t.Fatalf("first block line = %q, want the title", rows[2][2])
	}
	if rows[3][2] != "101호" {
		t.Fatalf("second block line = %q, want the room", rows[3][2])
	}
	if rows[4][2] != "" {
		t.Fatalf("third block line = %q, want blank", rows[4][2])
	}
	if rows[1][2] != "" || rows[5][2] != "" {
		t.Fatal("block content leaked outside its range")
	}

	// All three rows share the block fill style.
	fill := m.styleCache.Block(m.Scene().Blocks[0].Color).Fill
	for r := 2; r <= 4; r++ {
		if styles[r][2].Render("x") != fill.Render("x") {
			t.Fatalf("row %d not styled with the block fill", r)
		}
	}
}

func TestBuildGridTableRows_CursorCell(t *testing.T) {
	m := New(nil, testConfig())
	m.cursor = Position{Day: 1, Row: 5}

	_, styles := m.buildGridTableRows(m.Scene())
	if styles[5][2].Render("x") != m.styleCache.Cursor.Render("x") {
		t.Fatal("cursor cell not styled with the cursor style")
	}
	if styles[5][1].Render("x") == m.styleCache.Cursor.Render("x") {
		t.Fatal("non-cursor cell styled as cursor")
	}
}

func TestBuildGridTableRows_MovePreview(t *testing.T) {
	m := New(nil, testConfig())
	if err := m.store.Add(m.ActiveTable(), testSchedule("calc1", "미적분학 1", "월", 3, 2)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	m.mode = ModeMove
	m.session.Start(timetable.BlockKey(m.ActiveTable(), 0))
	m.session.Move(m.grid.Metrics.CellWidth, 0)
	m.invalidateScene()

	rows, styles := m.buildGridTableRows(m.Scene())

	// The held block renders at the preview day (화), not its origin.
	if rows[2][2] != "미적분학 1" {
		t.Fatalf("preview cell = %q, want the title at the target day", rows[2][2])
	}
	if styles[2][2].Render("x") != m.styleCache.MovePreview.Render("x") {
		t.Fatal("preview cell not styled with the move preview style")
	}
	if rows[2][1] != "" {
		t.Fatalf("origin cell = %q, want vacated during preview", rows[2][1])
	}
}

func TestHeaderLabels(t *testing.T) {
	m := New(nil, testConfig())
	m.cursor = Position{Day: 2, Row: 0}

	headers, styles := m.headerLabels()
	want := []string{"시간", "월", "화", "수", "목", "금"}
	if len(headers) != len(want) {
		t.Fatalf("headers = %v, want %v", headers, want)
	}
	for i := range want {
		if headers[i] != want[i] {
			t.Fatalf("headers[%d] = %q, want %q", i, headers[i], want[i])
		}
	}
	if styles[3].Render("x") != m.styleCache.DayHeaderActive.Render("x") {
		t.Fatal("cursor day header not highlighted")
	}
}

func TestTruncateCell(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{name: "fits", in: "수학", width: 10, want: "수학"},
		{name: "ascii clipped", in: "algorithms", width: 6, want: "algor…"},
		{name: "wide clipped", in: "미적분학개론", width: 8, want: "미적분…"},
		{name: "zero width", in: "수학", width: 0, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncateCell(tt.in, tt.width); got != tt.want {
				t.Errorf("truncateCell(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}

func TestStyleCache_UnknownColorFallsBack(t *testing.T) {
	m := New(nil, testConfig())
	bs := m.styleCache.Block("#012345")
	if bs.Fill.Render("x") != m.styleCache.EmptyCell.Render("x") {
		t.Fatal("unknown color did not fall back to the empty cell style")
	}
}
