package timetable

import "fmt"

// Metrics holds the fixed pixel dimensions of the grid.
type Metrics struct {
	CellWidth       int
	CellHeight      int
	HeaderColWidth  int // width of the time-label column
	HeaderRowHeight int // height of the day-header row
}

// DefaultMetrics matches the source layout.
var DefaultMetrics = Metrics{
	CellWidth:       80,
	CellHeight:      20,
	HeaderColWidth:  120,
	HeaderRowHeight: 40,
}

// Rect is a positioned rectangle in grid pixel space.
type Rect struct {
	Left   int
	Top    int
	Width  int
	Height int
}

// Grid maps (day, slot range) to pixel rectangles via a pure affine
// transform. Positioning is O(1) per block and needs no layout measurement.
type Grid struct {
	Days    []string
	Metrics Metrics
}

// NewGrid builds a Grid over the given day ordering. A nil day set uses
// DefaultDays.
func NewGrid(days []string, m Metrics) Grid {
	if days == nil {
		days = DefaultDays
	}
	return Grid{Days: days, Metrics: m}
}

// DayIndex returns the 0-based column index of day. Passing a day outside
// the configured set is a contract violation and panics: it means a
// data-model invariant broke upstream.
func (g Grid) DayIndex(day string) int {
	idx := dayIndex(g.Days, day)
	if idx < 0 {
		panic(fmt.Sprintf("timetable: day %q not in day set %v", day, g.Days))
	}
	return idx
}

// Position returns the pixel rectangle for a schedule block occupying rng on
// day. The 1px offsets compensate for cell borders. An empty or
// non-contiguous range panics, same as an unknown day.
func (g Grid) Position(day string, rng []int) Rect {
	if len(rng) == 0 {
		panic("timetable: empty slot range")
	}
	if !rangeContiguous(rng) {
		panic(fmt.Sprintf("timetable: slot range %v is not contiguous", rng))
	}
	idx := g.DayIndex(day)
	m := g.Metrics
	return Rect{
		Left:   m.HeaderColWidth + idx*m.CellWidth + 1,
		Top:    m.HeaderRowHeight + (rng[0]-1)*m.CellHeight + 1,
		Width:  m.CellWidth - 1,
		Height: m.CellHeight*len(rng) - 1,
	}
}

// Cell returns the clickable region of the single cell at (day, slot).
// slot is 1-based.
func (g Grid) Cell(day string, slot int) Rect {
	if slot < 1 || slot > AxisRows {
		panic(fmt.Sprintf("timetable: slot %d outside 1..%d", slot, AxisRows))
	}
	return g.Position(day, []int{slot})
}
