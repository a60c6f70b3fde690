package timetable

import "testing"

// scheduleFor builds a minimal schedule for a lecture id.
func scheduleFor(lectureID string) Schedule {
	return Schedule{
		Day:     "월",
		Range:   []int{1},
		Lecture: Lecture{ID: lectureID, Title: "Lecture " + lectureID},
	}
}

func TestAssigner_FirstSeenOrder(t *testing.T) {
	schedules := []Schedule{
		scheduleFor("calc"),
		scheduleFor("physics"),
		scheduleFor("calc"), // duplicate keeps its first slot
		scheduleFor("korean"),
	}
	a := NewAssigner(schedules, []string{"red", "green", "blue"})

	want := []string{"calc", "physics", "korean"}
	got := a.Lectures()
	if len(got) != len(want) {
		t.Fatalf("got %d lectures, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("lecture[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if a.ColorOf("calc") != "red" || a.ColorOf("physics") != "green" || a.ColorOf("korean") != "blue" {
		t.Errorf("colors not assigned in first-seen order: %q %q %q",
			a.ColorOf("calc"), a.ColorOf("physics"), a.ColorOf("korean"))
	}
}

func TestAssigner_Stability(t *testing.T) {
	schedules := []Schedule{scheduleFor("a"), scheduleFor("b")}
	a := NewAssigner(schedules, nil)

	first := a.ColorOf("b")
	second := a.ColorOf("b")
	if first != second {
		t.Errorf("ColorOf not stable: %q != %q", first, second)
	}
}

func TestAssigner_PaletteCycling(t *testing.T) {
	palette := []string{"c0", "c1", "c2", "c3", "c4", "c5"}
	var schedules []Schedule
	ids := []string{"L0", "L1", "L2", "L3", "L4", "L5", "L6"}
	for _, id := range ids {
		schedules = append(schedules, scheduleFor(id))
	}
	a := NewAssigner(schedules, palette)

	if a.ColorOf("L0") != a.ColorOf("L6") {
		t.Errorf("L6 should cycle back to L0's color: %q vs %q", a.ColorOf("L0"), a.ColorOf("L6"))
	}
	if a.ColorOf("L5") == a.ColorOf("L6") {
		t.Errorf("L5 and L6 should differ")
	}
}

func TestAssigner_UnknownLecturePanics(t *testing.T) {
	a := NewAssigner([]Schedule{scheduleFor("a")}, nil)

	defer func() {
		if recover() == nil {
			t.Error("expected panic for lecture outside the snapshot")
		}
	}()
	a.ColorOf("missing")
}

func TestAssigner_Key(t *testing.T) {
	first := NewAssigner([]Schedule{scheduleFor("a"), scheduleFor("b")}, nil)
	same := NewAssigner([]Schedule{scheduleFor("a"), scheduleFor("b"), scheduleFor("a")}, nil)
	different := NewAssigner([]Schedule{scheduleFor("b"), scheduleFor("a")}, nil)

	if first.Key() != same.Key() {
		t.Error("same unique id set should share a key")
	}
	if first.Key() == different.Key() {
		t.Error("different first-seen order should change the key")
	}
}

func TestDefaultPalette_Size(t *testing.T) {
	if len(DefaultPalette) < 6 {
		t.Fatalf("palette has %d colors, want at least 6", len(DefaultPalette))
	}
	seen := make(map[string]bool)
	for _, c := range DefaultPalette {
		if len(c) != 7 || c[0] != '#' {
			t.Errorf("palette token %q is not a hex color", c)
		}
		if seen[c] {
			t.Errorf("palette token %q appears twice", c)
		}
		seen[c] = true
	}
}
