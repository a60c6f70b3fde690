package timetable

import (
	"errors"

	"github.com/google/uuid"
)

// Store errors.
var (
	ErrUnknownTable  = errors.New("unknown table id")
	ErrScheduleIndex = errors.New("schedule index out of range")
)

// Store owns the per-table schedule collections. The grid engine itself
// never creates or deletes a schedule: it reads snapshots for rendering and
// every mutation arrives here through an explicit operation driven by the
// collaborator. The store is confined to the UI event loop, so it carries no
// locking.
type Store struct {
	days    []string
	order   []string
	tables  map[string][]Schedule
	version map[string]uint64
}

// NewStore creates an empty store over the given day ordering. A nil day
// set uses DefaultDays.
func NewStore(days []string) *Store {
	if days == nil {
		days = DefaultDays
	}
	return &Store{
		days:    days,
		tables:  make(map[string][]Schedule),
		version: make(map[string]uint64),
	}
}

// Days returns the day ordering shared by every table.
func (st *Store) Days() []string {
	return st.days
}

// NewTable registers an empty table and returns its opaque id.
func (st *Store) NewTable() string {
	id := uuid.NewString()
	st.order = append(st.order, id)
	st.tables[id] = nil
	st.version[id] = 0
	return id
}

// Tables returns the table ids in creation order.
func (st *Store) Tables() []string {
	out := make([]string, len(st.order))
	copy(out, st.order)
	return out
}

// Add appends a schedule to a table after validating it. Overlap with
// existing schedules is allowed: the renderer stacks overlapping blocks
// instead of rejecting them.
func (st *Store) Add(tableID string, s Schedule) error {
	if _, ok := st.tables[tableID]; !ok {
		return ErrUnknownTable
	}
	if err := s.Validate(st.days); err != nil {
		return err
	}
	s.Range = append([]int(nil), s.Range...)
	st.tables[tableID] = append(st.tables[tableID], s)
	st.version[tableID]++
	return nil
}

// RemoveLecture deletes every schedule entry of the lecture within the
// table and returns how many were removed.
func (st *Store) RemoveLecture(tableID, lectureID string) (int, error) {
	schedules, ok := st.tables[tableID]
	if !ok {
		return 0, ErrUnknownTable
	}
	kept := schedules[:0]
	removed := 0
	for _, s := range schedules {
		if s.Lecture.ID == lectureID {
			removed++
			continue
		}
		kept = append(kept, s)
	}
	if removed > 0 {
		st.tables[tableID] = kept
		st.version[tableID]++
	}
	return removed, nil
}

// Move reassigns the (day, range) of the schedule at index. This is the
// drop side of a drag: the collaborator recomputes the target position and
// applies it here.
func (st *Store) Move(tableID string, index int, day string, rng []int) error {
	schedules, ok := st.tables[tableID]
	if !ok {
		return ErrUnknownTable
	}
	if index < 0 || index >= len(schedules) {
		return ErrScheduleIndex
	}
	moved := schedules[index]
	moved.Day = day
	moved.Range = append([]int(nil), rng...)
	if err := moved.Validate(st.days); err != nil {
		return err
	}
	schedules[index] = moved
	st.version[tableID]++
	return nil
}

// Snapshot returns a consistent copy of a table's schedules. A render pass
// works from one snapshot, so partial updates are never observable.
func (st *Store) Snapshot(tableID string) []Schedule {
	schedules, ok := st.tables[tableID]
	if !ok {
		return nil
	}
	out := make([]Schedule, len(schedules))
	for i, s := range schedules {
		s.Range = append([]int(nil), s.Range...)
		out[i] = s
	}
	return out
}

// Version is a monotonic per-table counter bumped on every mutation.
// Renderers key their caches on it to skip re-rendering unchanged tables.
func (st *Store) Version(tableID string) uint64 {
	return st.version[tableID]
}
