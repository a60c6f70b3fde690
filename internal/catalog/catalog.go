// Package catalog provides the lecture catalog: read-only reference data the
// add flow offers when an empty grid cell is clicked. Schedules themselves
// are never persisted; the catalog only describes what lectures exist and
// their default time-block assignment.
package catalog

import (
	"context"
	"errors"

	"github.com/joonholee/siganpyo/internal/timetable"
)

// Catalog errors.
var (
	ErrLectureNotFound = errors.New("lecture not found in catalog")
	ErrDuplicateID     = errors.New("lecture id already in catalog")
)

// Entry is one catalog lecture with its default placement.
type Entry struct {
	Lecture   timetable.Lecture
	Room      string
	Day       string
	StartSlot int
	SpanSlots int
}

// Schedule converts the entry's default placement to a schedule.
func (e Entry) Schedule() timetable.Schedule {
	return timetable.Schedule{
		Day:     e.Day,
		Range:   timetable.ContiguousRange(e.StartSlot, e.SpanSlots),
		Room:    e.Room,
		Lecture: e.Lecture,
	}
}

// Repository defines the storage interface for the catalog.
type Repository interface {
	// List returns all catalog entries in insertion order.
	List(ctx context.Context) ([]Entry, error)

	// Get retrieves one entry by lecture id.
	Get(ctx context.Context, lectureID string) (Entry, error)

	// Put inserts an entry. Returns ErrDuplicateID if the id exists.
	Put(ctx context.Context, e Entry) error

	// Seed inserts the built-in sample lectures when the catalog is empty.
	Seed(ctx context.Context) error

	// Close releases the underlying store.
	Close() error
}

// seedEntries is the sample data installed into an empty catalog.
var seedEntries = []Entry{
	{Lecture: timetable.Lecture{ID: "calc1", Title: "미적분학 1"}, Room: "204", Day: "월", StartSlot: 3, SpanSlots: 3},
	{Lecture: timetable.Lecture{ID: "korean", Title: "국어국문학개론"}, Room: "B12", Day: "화", StartSlot: 1, SpanSlots: 2},
	{Lecture: timetable.Lecture{ID: "physics", Title: "일반물리학"}, Room: "311", Day: "수", StartSlot: 5, SpanSlots: 3},
	{Lecture: timetable.Lecture{ID: "datastruct", Title: "자료구조"}, Room: "507", Day: "목", StartSlot: 7, SpanSlots: 3},
	{Lecture: timetable.Lecture{ID: "english", Title: "대학영어"}, Room: "102", Day: "금", StartSlot: 2, SpanSlots: 2},
	{Lecture: timetable.Lecture{ID: "stats", Title: "통계학입문"}, Room: "415", Day: "화", StartSlot: 10, SpanSlots: 2},
	{Lecture: timetable.Lecture{ID: "ethics", Title: "공학윤리"}, Room: "208", Day: "목", StartSlot: 19, SpanSlots: 2},
}
