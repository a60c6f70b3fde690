package timetable

import (
	"fmt"
	"strconv"
	"strings"
)

// Session is the shared drag context: one value per process, read by every
// grid instance to decide whether it is the active drop target. The session
// only tracks identity and a visual offset; the drop recomputation of
// (day, range) belongs to the collaborator that owns the schedules.
type Session struct {
	active  string
	offsetX int
	offsetY int
}

// NewSession returns a session with no drag in progress.
func NewSession() *Session {
	return &Session{}
}

// BlockKey builds the composite identity of one draggable block.
func BlockKey(tableID string, index int) string {
	return fmt.Sprintf("%s:%d", tableID, index)
}

// SplitKey parses a composite block key back into table id and schedule
// index. The table id may itself contain the delimiter; only the last one
// separates the index.
func SplitKey(key string) (tableID string, index int, ok bool) {
	i := strings.LastIndex(key, ":")
	if i < 0 {
		return "", 0, false
	}
	idx, err := strconv.Atoi(key[i+1:])
	if err != nil {
		return "", 0, false
	}
	return key[:i], idx, true
}

// Start begins a drag for the given block key, resetting the offset.
func (s *Session) Start(key string) {
	s.active = key
	s.offsetX = 0
	s.offsetY = 0
}

// Move accumulates the visual translation of the dragged block.
func (s *Session) Move(dx, dy int) {
	if s.active == "" {
		return
	}
	s.offsetX += dx
	s.offsetY += dy
}

// Offset returns the current translation to render during the drag.
func (s *Session) Offset() (dx, dy int) {
	if s == nil {
		return 0, 0
	}
	return s.offsetX, s.offsetY
}

// ActiveID returns the composite key of the dragged block, or "" when no
// drag is in progress.
func (s *Session) ActiveID() string {
	if s == nil {
		return ""
	}
	return s.active
}

// ActiveTable derives the table owning the active drag by splitting the
// composite key on its first delimiter. Returns "" when nothing is dragged.
func (s *Session) ActiveTable() string {
	id := s.ActiveID()
	if id == "" {
		return ""
	}
	if i := strings.Index(id, ":"); i >= 0 {
		return id[:i]
	}
	return id
}

// Dragging reports whether a drag is in progress.
func (s *Session) Dragging() bool {
	return s.ActiveID() != ""
}

// End clears the session after a completed drop.
func (s *Session) End() {
	s.active = ""
	s.offsetX = 0
	s.offsetY = 0
}

// Cancel aborts the drag. An aborted drag is indistinguishable from one that
// never started: no schedule is created or mutated.
func (s *Session) Cancel() {
	s.End()
}
