// Package timetable implements the grid geometry engine and occupancy model
// for the weekly class-schedule grid: the time axis, the slot-to-pixel
// coordinate mapper, the lecture color assigner, the shared drag session and
// the scene builder that composes them into a renderable scene graph.
package timetable

import "errors"

// Validation errors.
var (
	ErrEmptyLectureID     = errors.New("lecture id cannot be empty")
	ErrEmptyRange         = errors.New("slot range cannot be empty")
	ErrRangeNotContiguous = errors.New("slot range must be contiguous and ascending")
	ErrSlotOutOfAxis      = errors.New("slot index outside the 1..24 axis")
	ErrUnknownDay         = errors.New("day is not part of the configured day set")
)

// DefaultDays is the fixed column ordering of the weekly grid.
var DefaultDays = []string{"월", "화", "수", "목", "금"}

// Lecture is immutable reference data: a unique identity plus display title.
type Lecture struct {
	ID    string
	Title string
}

// Schedule is one vertical span on one day column: a lecture occupying a
// contiguous, non-empty range of 1-based slot indices.
type Schedule struct {
	Day     string
	Range   []int
	Room    string
	Lecture Lecture
}

// StartSlot returns the 1-based slot index of the top row of the span.
func (s Schedule) StartSlot() int {
	if len(s.Range) == 0 {
		return 0
	}
	return s.Range[0]
}

// SpanSlots returns the vertical span in slots.
func (s Schedule) SpanSlots() int {
	return len(s.Range)
}

// Validate checks a schedule against the given day ordering. Overlap with
// other schedules is not checked: two schedules may share a cell and the
// renderer stacks them.
func (s Schedule) Validate(days []string) error {
	if s.Lecture.ID == "" {
		return ErrEmptyLectureID
	}
	if dayIndex(days, s.Day) < 0 {
		return ErrUnknownDay
	}
	if len(s.Range) == 0 {
		return ErrEmptyRange
	}
	if !rangeContiguous(s.Range) {
		return ErrRangeNotContiguous
	}
	if s.Range[0] < 1 || s.Range[len(s.Range)-1] > AxisRows {
		return ErrSlotOutOfAxis
	}
	return nil
}

// ContiguousRange builds the slot range [start, start+span).
func ContiguousRange(start, span int) []int {
	if span <= 0 {
		return nil
	}
	rng := make([]int, span)
	for i := range rng {
		rng[i] = start + i
	}
	return rng
}

func rangeContiguous(rng []int) bool {
	for i := 1; i < len(rng); i++ {
		if rng[i] != rng[i-1]+1 {
			return false
		}
	}
	return true
}

func dayIndex(days []string, day string) int {
	for i, d := range days {
		if d == day {
			return i
		}
	}
	return -1
}
