package catalog

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/joonholee/siganpyo/internal/timetable"
)

// openCatalog creates a fresh catalog for each test with automatic cleanup.
func openCatalog(t *testing.T) *SQLite {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.db")
	repo, err := New(path)
	if err != nil {
		t.Fatalf("failed to open catalog: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestSQLite_PutAndGet(t *testing.T) {
	repo := openCatalog(t)
	ctx := context.Background()

	e := Entry{
		Lecture:   timetable.Lecture{ID: "calc1", Title: "미적분학 1"},
		Room:      "204",
		Day:       "월",
		StartSlot: 3,
		SpanSlots: 3,
	}
	if err := repo.Put(ctx, e); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err := repo.Get(ctx, "calc1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != e {
		t.Errorf("Get = %+v, want %+v", got, e)
	}
}

func TestSQLite_GetMissing(t *testing.T) {
	repo := openCatalog(t)

	_, err := repo.Get(context.Background(), "nope")
	if !errors.Is(err, ErrLectureNotFound) {
		t.Errorf("Get error = %v, want ErrLectureNotFound", err)
	}
}

func TestSQLite_PutDuplicate(t *testing.T) {
	repo := openCatalog(t)
	ctx := context.Background()

	e := Entry{
		Lecture:   timetable.Lecture{ID: "calc1", Title: "미적분학 1"},
		Day:       "월",
		StartSlot: 1,
		SpanSlots: 1,
	}
	if err := repo.Put(ctx, e); err != nil {
		t.Fatalf("first Put: %v", err)
	}
	if err := repo.Put(ctx, e); !errors.Is(err, ErrDuplicateID) {
		t.Errorf("second Put error = %v, want ErrDuplicateID", err)
	}
}

func TestSQLite_ListInsertionOrder(t *testing.T) {
	repo := openCatalog(t)
	ctx := context.Background()

	ids := []string{"c", "a", "b"}
	for i, id := range ids {
		e := Entry{
			Lecture:   timetable.Lecture{ID: id, Title: "Lecture " + id},
			Day:       "화",
			StartSlot: i + 1,
			SpanSlots: 1,
		}
		if err := repo.Put(ctx, e); err != nil {
			t.Fatalf("Put %q: %v", id, err)
		}
	}

	entries, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != len(ids) {
		t.Fatalf("got %d entries, want %d", len(entries), len(ids))
	}
	for i, id := range ids {
		if entries[i].Lecture.ID != id {
			t.Errorf("entries[%d] = %q, want %q", i, entries[i].Lecture.ID, id)
		}
	}
}

func TestSQLite_Seed(t *testing.T) {
	repo := openCatalog(t)
	ctx := context.Background()

	if err := repo.Seed(ctx); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	entries, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("seed inserted nothing")
	}

	// Seeding twice must not duplicate.
	if err := repo.Seed(ctx); err != nil {
		t.Fatalf("second Seed: %v", err)
	}
	again, _ := repo.List(ctx)
	if len(again) != len(entries) {
		t.Errorf("second seed grew the catalog: %d -> %d", len(entries), len(again))
	}

	// Every seeded entry converts to a valid schedule.
	for _, e := range entries {
		if err := e.Schedule().Validate(timetable.DefaultDays); err != nil {
			t.Errorf("seed entry %q: %v", e.Lecture.ID, err)
		}
	}
}

func TestEntry_Schedule(t *testing.T) {
	e := Entry{
		Lecture:   timetable.Lecture{ID: "x", Title: "X"},
		Room:      "101",
		Day:       "금",
		StartSlot: 4,
		SpanSlots: 3,
	}
	s := e.Schedule()
	if s.Day != "금" || s.Room != "101" || s.StartSlot() != 4 || s.SpanSlots() != 3 {
		t.Errorf("schedule = %+v", s)
	}
}
