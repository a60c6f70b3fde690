// Package tui provides the terminal user interface for siganpyo.
package tui

import (
	"testing"

	"github.com/joonholee/siganpyo/internal/config"
	"github.com/joonholee/siganpyo/internal/timetable"
)

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.UI.Tables = 2
	return cfg
}

func testSchedule(id, title, day string, start, span int) timetable.Schedule {
	return timetable.Schedule{
		Day:     day,
		Range:   timetable.ContiguousRange(start, span),
		Room:    "101호",
		Lecture: timetable.Lecture{ID: id, Title: title},
	}
}

func TestNewModel_TablesFromConfig(t *testing.T) {
	m := New(nil, testConfig())

	if len(m.tables) != 2 {
		t.Fatalf("tables = %d, want 2", len(m.tables))
	}
	if m.ActiveTable() != m.tables[0] {
		t.Fatalf("ActiveTable() = %q, want first table %q", m.ActiveTable(), m.tables[0])
	}
	if m.tables[0] == m.tables[1] {
		t.Fatal("table ids are not unique")
	}
}

func TestNewModel_AppliesModalInputStyles(t *testing.T) {
	m := New(nil, testConfig())

	if got, want := m.filter.TextStyle.Render("x"), m.styles.ModalInputTextStyle.Render("x"); got != want {
		t.Errorf("TextStyle mismatch: got %q, want %q", got, want)
	}
	if got, want := m.filter.PromptStyle.Render("x"), m.styles.ModalInputTextStyle.Render("x"); got != want {
		t.Errorf("PromptStyle mismatch: got %q, want %q", got, want)
	}
	if got, want := m.filter.Cursor.Style.Render("x"), m.styles.ModalInputCursorStyle.Render("x"); got != want {
		t.Errorf("Cursor style mismatch: got %q, want %q", got, want)
	}
}

func TestModel_SceneTracksStoreVersion(t *testing.T) {
	m := New(nil, testConfig())
	tableID := m.ActiveTable()

	scene := m.Scene()
	if len(scene.Blocks) != 0 {
		t.Fatalf("initial scene has %d blocks, want 0", len(scene.Blocks))
	}

	if err := m.store.Add(tableID, testSchedule("calc1", "미적분학 1", "월", 3, 2)); err != nil {
		t.Fatalf("Add: %v", err)
	}

	scene = m.Scene()
	if len(scene.Blocks) != 1 {
		t.Fatalf("scene has %d blocks after Add, want 1", len(scene.Blocks))
	}
	if scene.Blocks[0].Lecture.Title != "미적분학 1" {
		t.Fatalf("block title = %q", scene.Blocks[0].Lecture.Title)
	}
}

func TestModel_SceneMemoized(t *testing.T) {
	m := New(nil, testConfig())
	tableID := m.ActiveTable()
	if err := m.store.Add(tableID, testSchedule("calc1", "미적분학 1", "월", 3, 2)); err != nil {
		t.Fatalf("Add: %v", err)
	}

	_ = m.Scene()
	first := m.cachedScene
	_ = m.Scene()
	if m.cachedScene != first {
		t.Fatal("scene rebuilt without a store mutation")
	}

	if err := m.store.Add(tableID, testSchedule("phys", "일반물리학", "화", 1, 2)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	_ = m.Scene()
	if m.cachedScene == first {
		t.Fatal("scene not rebuilt after store mutation")
	}
}

func TestModel_SceneSwitchesWithActiveTable(t *testing.T) {
	m := New(nil, testConfig())
	if err := m.store.Add(m.tables[1], testSchedule("calc1", "미적분학 1", "월", 3, 2)); err != nil {
		t.Fatalf("Add: %v", err)
	}

	if got := len(m.Scene().Blocks); got != 0 {
		t.Fatalf("table 0 scene has %d blocks, want 0", got)
	}

	m.active = 1
	m.invalidateScene()
	if got := len(m.Scene().Blocks); got != 1 {
		t.Fatalf("table 1 scene has %d blocks, want 1", got)
	}
}

func TestRenderCopyText(t *testing.T) {
	m := New(nil, testConfig())
	tableID := m.ActiveTable()
	if err := m.store.Add(tableID, testSchedule("calc1", "미적분학 1", "화", 1, 2)); err != nil {
		t.Fatalf("Add: %v", err)
	}

	got := m.renderCopyText()
	want := "시간표 1\n화 09:00~10:00 미적분학 1 (101호)\n"
	if got != want {
		t.Fatalf("renderCopyText() = %q, want %q", got, want)
	}
}
