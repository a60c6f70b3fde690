package timetable

// HeaderCell is one cell of the header row.
type HeaderCell struct {
	Label string
	Rect  Rect
}

// CellTarget is one clickable empty-grid cell. It carries its (day, time)
// identity directly so a click never has to be back-computed from pixels.
// Time is the 1-based slot index: row index r maps to Time r+1.
type CellTarget struct {
	Day  string
	Time int
	Rect Rect
}

// SceneRow is one time row: the axis label plus one click target per day.
type SceneRow struct {
	Label string
	Cells []CellTarget
}

// Block is one positioned schedule block.
type Block struct {
	Key     string // composite "{tableID}:{index}" drag identity
	TableID string
	Lecture Lecture
	Room    string
	Day     string
	Range   []int
	Color   string
	Rect    Rect
	// Dragging marks the block held by the shared session; OffsetX/Y is its
	// current visual translation. Purely presentational.
	Dragging bool
	OffsetX  int
	OffsetY  int
}

// Scene is the renderable scene graph of one table.
type Scene struct {
	TableID string
	Header  []HeaderCell
	Rows    []SceneRow
	Blocks  []Block
	// ActiveDrag is true when the shared drag session is held by a block of
	// this table; the renderer shows the distinguishing outline.
	ActiveDrag bool
}

// BuildScene composes the time axis, coordinate mapper, color assigner and
// drag session into the scene graph for one table. It is pure and
// deterministic: the same inputs yield a deeply equal scene, and blocks
// appear in schedule order so overlapping blocks stack predictably.
func BuildScene(tableID string, schedules []Schedule, grid Grid, axis []AxisRow, assigner *Assigner, session *Session) Scene {
	if axis == nil {
		axis = DefaultAxis()
	}
	if assigner == nil {
		assigner = NewAssigner(schedules, nil)
	}
	m := grid.Metrics

	header := make([]HeaderCell, 0, len(grid.Days)+1)
	header = append(header, HeaderCell{
		Rect: Rect{Left: 0, Top: 0, Width: m.HeaderColWidth, Height: m.HeaderRowHeight},
	})
	for i, day := range grid.Days {
		header = append(header, HeaderCell{
			Label: day,
			Rect: Rect{
				Left:   m.HeaderColWidth + i*m.CellWidth,
				Top:    0,
				Width:  m.CellWidth,
				Height: m.HeaderRowHeight,
			},
		})
	}

	rows := make([]SceneRow, 0, len(axis))
	for r, axisRow := range axis {
		cells := make([]CellTarget, 0, len(grid.Days))
		for _, day := range grid.Days {
			cells = append(cells, CellTarget{
				Day:  day,
				Time: r + 1,
				Rect: grid.Cell(day, r+1),
			})
		}
		rows = append(rows, SceneRow{Label: axisRow.Label, Cells: cells})
	}

	dx, dy := session.Offset()
	activeID := session.ActiveID()

	blocks := make([]Block, 0, len(schedules))
	for i, s := range schedules {
		key := BlockKey(tableID, i)
		b := Block{
			Key:     key,
			TableID: tableID,
			Lecture: s.Lecture,
			Room:    s.Room,
			Day:     s.Day,
			Range:   append([]int(nil), s.Range...),
			Color:   assigner.ColorOf(s.Lecture.ID),
			Rect:    grid.Position(s.Day, s.Range),
		}
		if key == activeID {
			b.Dragging = true
			b.OffsetX = dx
			b.OffsetY = dy
		}
		blocks = append(blocks, b)
	}

	return Scene{
		TableID:    tableID,
		Header:     header,
		Rows:       rows,
		Blocks:     blocks,
		ActiveDrag: session.ActiveTable() == tableID && tableID != "",
	}
}
