package timetable

import (
	"errors"
	"testing"
)

func storeSchedule(lectureID, day string, start, span int) Schedule {
	return Schedule{
		Day:     day,
		Range:   ContiguousRange(start, span),
		Room:    "101",
		Lecture: Lecture{ID: lectureID, Title: "Lecture " + lectureID},
	}
}

func TestStore_NewTableIDsAreOpaqueAndUnique(t *testing.T) {
	st := NewStore(nil)
	a := st.NewTable()
	b := st.NewTable()

	if a == "" || b == "" || a == b {
		t.Fatalf("table ids must be unique and non-empty: %q, %q", a, b)
	}
	tables := st.Tables()
	if len(tables) != 2 || tables[0] != a || tables[1] != b {
		t.Errorf("Tables() = %v, want [%s %s] in creation order", tables, a, b)
	}
}

func TestStore_AddValidates(t *testing.T) {
	st := NewStore(nil)
	id := st.NewTable()

	tests := []struct {
		name     string
		schedule Schedule
		wantErr  error
	}{
		{"valid", storeSchedule("calc", "월", 3, 2), nil},
		{"unknown day", storeSchedule("calc", "일", 3, 2), ErrUnknownDay},
		{"empty range", Schedule{Day: "월", Lecture: Lecture{ID: "x"}}, ErrEmptyRange},
		{"gap range", Schedule{Day: "월", Range: []int{1, 3}, Lecture: Lecture{ID: "x"}}, ErrRangeNotContiguous},
		{"past axis end", storeSchedule("calc", "월", 24, 2), ErrSlotOutOfAxis},
		{"no lecture id", Schedule{Day: "월", Range: []int{1}}, ErrEmptyLectureID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := st.Add(id, tt.schedule)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Add() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	if err := st.Add("missing-table", storeSchedule("calc", "월", 1, 1)); !errors.Is(err, ErrUnknownTable) {
		t.Errorf("Add to unknown table: %v, want ErrUnknownTable", err)
	}
}

func TestStore_OverlapAllowed(t *testing.T) {
	st := NewStore(nil)
	id := st.NewTable()

	if err := st.Add(id, storeSchedule("a", "월", 3, 2)); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if err := st.Add(id, storeSchedule("b", "월", 4, 2)); err != nil {
		t.Fatalf("overlapping add must succeed, got %v", err)
	}
	if got := len(st.Snapshot(id)); got != 2 {
		t.Errorf("snapshot has %d schedules, want 2", got)
	}
}

func TestStore_RemoveLectureRemovesAllEntries(t *testing.T) {
	st := NewStore(nil)
	id := st.NewTable()
	_ = st.Add(id, storeSchedule("calc", "월", 1, 2))
	_ = st.Add(id, storeSchedule("korean", "화", 3, 1))
	_ = st.Add(id, storeSchedule("calc", "수", 5, 2))

	removed, err := st.RemoveLecture(id, "calc")
	if err != nil {
		t.Fatalf("RemoveLecture: %v", err)
	}
	if removed != 2 {
		t.Errorf("removed = %d, want 2", removed)
	}

	snap := st.Snapshot(id)
	if len(snap) != 1 || snap[0].Lecture.ID != "korean" {
		t.Errorf("snapshot = %+v, want only korean", snap)
	}
}

func TestStore_Move(t *testing.T) {
	st := NewStore(nil)
	id := st.NewTable()
	_ = st.Add(id, storeSchedule("calc", "월", 3, 3))

	if err := st.Move(id, 0, "수", ContiguousRange(7, 3)); err != nil {
		t.Fatalf("Move: %v", err)
	}
	snap := st.Snapshot(id)
	if snap[0].Day != "수" || snap[0].StartSlot() != 7 || snap[0].SpanSlots() != 3 {
		t.Errorf("moved schedule = %+v", snap[0])
	}

	if err := st.Move(id, 5, "수", ContiguousRange(1, 1)); !errors.Is(err, ErrScheduleIndex) {
		t.Errorf("out-of-range index: %v, want ErrScheduleIndex", err)
	}
	if err := st.Move(id, 0, "일", ContiguousRange(1, 1)); !errors.Is(err, ErrUnknownDay) {
		t.Errorf("invalid day: %v, want ErrUnknownDay", err)
	}
	// A rejected move leaves the schedule untouched.
	snap = st.Snapshot(id)
	if snap[0].Day != "수" {
		t.Errorf("rejected move mutated the schedule: %+v", snap[0])
	}
}

func TestStore_SnapshotIsolation(t *testing.T) {
	st := NewStore(nil)
	id := st.NewTable()
	_ = st.Add(id, storeSchedule("calc", "월", 3, 3))

	snap := st.Snapshot(id)
	snap[0].Day = "금"
	snap[0].Range[0] = 99

	fresh := st.Snapshot(id)
	if fresh[0].Day != "월" || fresh[0].Range[0] != 3 {
		t.Errorf("mutating a snapshot leaked into the store: %+v", fresh[0])
	}
}

func TestStore_VersionTracksMutations(t *testing.T) {
	st := NewStore(nil)
	id := st.NewTable()

	v0 := st.Version(id)
	_ = st.Add(id, storeSchedule("calc", "월", 1, 1))
	v1 := st.Version(id)
	if v1 == v0 {
		t.Error("Add must bump the version")
	}

	// Removing a lecture with no entries is not a mutation.
	_, _ = st.RemoveLecture(id, "nope")
	if st.Version(id) != v1 {
		t.Error("no-op removal must not bump the version")
	}
}
