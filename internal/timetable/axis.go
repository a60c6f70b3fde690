package timetable

import "sync"

const (
	// MainRows is the number of 30-minute rows at the top of the axis.
	MainRows = 18
	// TailRows is the number of wider evening rows.
	TailRows = 6
	// AxisRows is the total number of display rows.
	AxisRows = MainRows + TailRows

	// MainSlotMinutes is the stride of the main rows.
	MainSlotMinutes = 30

	// DefaultBaseTime is the start of row 1.
	DefaultBaseTime = "09:00"
)

// AxisRow is one display row of the time axis.
type AxisRow struct {
	Index        int    // 1-based slot index
	Label        string // "HH:MM~HH:MM"
	StartMinutes int    // minutes since midnight
	SpanMinutes  int    // displayed window width
}

// TailRow configures one evening row: how far the row advances and how wide
// a window its label displays. The source material advances 55 minutes while
// labeling a 50-minute window; that mismatch is kept as data.
type TailRow struct {
	Stride int
	Span   int
}

// DefaultTail returns the evening row configuration used by the source.
func DefaultTail() []TailRow {
	tail := make([]TailRow, TailRows)
	for i := range tail {
		tail[i] = TailRow{Stride: 55, Span: 50}
	}
	return tail
}

// BuildAxis produces the ordered sequence of exactly AxisRows display rows.
// Rows 1..MainRows span 30 minutes each starting at base. The remaining rows
// follow the tail configuration, continuing from the end of the last main
// row. A short or long tail slice is normalized to TailRows entries, so the
// axis length is invariant regardless of inputs.
func BuildAxis(base string, tail []TailRow) []AxisRow {
	if base == "" {
		base = DefaultBaseTime
	}
	tail = normalizeTail(tail)

	rows := make([]AxisRow, 0, AxisRows)
	start := TimeToMinutes(base)

	for i := 0; i < MainRows; i++ {
		rows = append(rows, AxisRow{
			Index:        i + 1,
			Label:        MinutesToTime(start) + "~" + MinutesToTime(start+MainSlotMinutes),
			StartMinutes: start,
			SpanMinutes:  MainSlotMinutes,
		})
		start += MainSlotMinutes
	}

	for i, tr := range tail {
		rows = append(rows, AxisRow{
			Index:        MainRows + i + 1,
			Label:        MinutesToTime(start) + "~" + MinutesToTime(start+tr.Span),
			StartMinutes: start,
			SpanMinutes:  tr.Span,
		})
		start += tr.Stride
	}

	return rows
}

func normalizeTail(tail []TailRow) []TailRow {
	normalized := DefaultTail()
	for i := 0; i < len(tail) && i < TailRows; i++ {
		if tail[i].Stride > 0 && tail[i].Span > 0 {
			normalized[i] = tail[i]
		}
	}
	return normalized
}

var (
	defaultAxisOnce sync.Once
	defaultAxis     []AxisRow
)

// DefaultAxis returns the axis built from the default base time and tail,
// computed once. Callers must treat the returned slice as read-only.
func DefaultAxis() []AxisRow {
	defaultAxisOnce.Do(func() {
		defaultAxis = BuildAxis(DefaultBaseTime, nil)
	})
	return defaultAxis
}
