package timetable

import (
	"fmt"
	"strings"
)

// DefaultPalette is the fixed ordered list of low-saturation block colors.
// When the unique lecture count exceeds the palette size, colors cycle; two
// lectures sharing a color is an accepted degeneracy, not an error.
var DefaultPalette = []string{
	"#cdd8b9",
	"#f2d5cc",
	"#cbd8ea",
	"#eae2c6",
	"#dccce2",
	"#c6e0da",
	"#e8cfdb",
	"#d8d4c5",
}

// Assigner maps lecture identity to a color token, deterministically and
// stably for the lifetime of one schedule snapshot.
type Assigner struct {
	palette []string
	order   []string
	index   map[string]int
}

// NewAssigner collects the unique lecture ids of the schedule list in
// first-seen order and binds each to palette[i mod len(palette)]. A nil or
// empty palette falls back to DefaultPalette.
func NewAssigner(schedules []Schedule, palette []string) *Assigner {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	a := &Assigner{
		palette: palette,
		index:   make(map[string]int),
	}
	for _, s := range schedules {
		id := s.Lecture.ID
		if id == "" {
			continue
		}
		if _, seen := a.index[id]; seen {
			continue
		}
		a.index[id] = len(a.order)
		a.order = append(a.order, id)
	}
	return a
}

// ColorOf returns the color token for a lecture id. Asking for an id that is
// not part of the snapshot the assigner was built from is a contract
// violation and panics.
func (a *Assigner) ColorOf(lectureID string) string {
	idx, ok := a.index[lectureID]
	if !ok {
		panic(fmt.Sprintf("timetable: lecture %q not in color snapshot", lectureID))
	}
	return a.palette[idx%len(a.palette)]
}

// Lectures returns the unique lecture ids in first-seen order.
func (a *Assigner) Lectures() []string {
	out := make([]string, len(a.order))
	copy(out, a.order)
	return out
}

// Key is a canonical identity of the snapshot the assigner was built from.
// Callers memoize on it: an unchanged key means every ColorOf result is
// unchanged too.
func (a *Assigner) Key() string {
	return strings.Join(a.order, "\x1f")
}
