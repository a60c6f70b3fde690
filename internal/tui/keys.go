package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joonholee/siganpyo/internal/timetable"
	"github.com/joonholee/siganpyo/internal/tui/commands"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	// Global keys (work in all modes)
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	// Mode-specific handling
	switch m.mode {
	case ModeMove:
		return m.handleMoveKeys(msg)
	case ModeModal:
		return m.handleModalKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Navigation
	case "h", "left":
		if m.cursor.Day > 0 {
			m.cursor.Day--
			LogCursorMove(m.cursor.Day, m.cursor.Row, "left")
		}
	case "l", "right":
		if m.cursor.Day < len(m.grid.Days)-1 {
			m.cursor.Day++
			LogCursorMove(m.cursor.Day, m.cursor.Row, "right")
		}
	case "j", "down":
		if m.cursor.Row < len(m.axis)-1 {
			m.cursor.Row++
			LogCursorMove(m.cursor.Day, m.cursor.Row, "down")
		}
	case "k", "up":
		if m.cursor.Row > 0 {
			m.cursor.Row--
			LogCursorMove(m.cursor.Day, m.cursor.Row, "up")
		}
	case "g":
		m.cursor.Row = 0
	case "G":
		m.cursor.Row = len(m.axis) - 1

	// Table cycling
	case "tab":
		if len(m.tables) > 0 {
			m.active = (m.active + 1) % len(m.tables)
			m.invalidateScene()
		}
	case "shift+tab":
		if len(m.tables) > 0 {
			m.active = (m.active - 1 + len(m.tables)) % len(m.tables)
			m.invalidateScene()
		}
	case "n":
		m.tables = append(m.tables, m.store.NewTable())
		m.active = len(m.tables) - 1
		m.invalidateScene()
		return m, commands.Status("새 시간표를 추가했습니다")

	// Move mode entry
	case " ":
		block, index, ok := m.blockAtCursor()
		if !ok {
			return m, commands.Status("이동할 강의가 없습니다")
		}
		m.session.Start(block.Key)
		m.moveKey = block.Key
		m.moveIndex = index
		m.mode = ModeMove
		m.invalidateScene()
		LogModeChange(ModeNormal, ModeMove, "pick up block")
		return m, nil

	// Delete
	case "x", "d":
		block, _, ok := m.blockAtCursor()
		if !ok {
			return m, commands.Status("삭제할 강의가 없습니다")
		}
		m.deleteLecture = block.Lecture
		m.mode = ModeModal
		m.modalType = ModalConfirmDelete
		LogModeChange(ModeNormal, ModeModal, "confirm delete")
		return m, nil

	// Add from catalog
	case "enter", "a":
		m.mode = ModeModal
		m.modalType = ModalAddLecture
		m.listSel = 0
		m.filter.SetValue("")
		m.filter.Focus()
		m.applyFilter()
		LogModeChange(ModeNormal, ModeModal, "add lecture")
		return m, textinput.Blink

	// Clipboard copy
	case "y":
		return m, commands.CopyText(m.renderCopyText())
	}

	return m, nil
}

// handleMoveKeys handles keys while a block is held.
func (m Model) handleMoveKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	met := m.grid.Metrics

	switch msg.String() {
	case "h", "left":
		m.session.Move(-met.CellWidth, 0)
	case "l", "right":
		m.session.Move(met.CellWidth, 0)
	case "j", "down":
		m.session.Move(0, met.CellHeight)
	case "k", "up":
		m.session.Move(0, -met.CellHeight)

	case "enter", " ":
		return m.dropBlock()

	case "esc", "q":
		// An aborted move leaves the table exactly as it was.
		m.session.Cancel()
		m.mode = ModeNormal
		m.invalidateScene()
		LogModeChange(ModeMove, ModeNormal, "cancel move")
		return m, nil
	}

	return m, nil
}

// handleModalKeys handles keys while a modal is open.
func (m Model) handleModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modalType {
	case ModalAddLecture:
		return m.handleAddModalKeys(msg)
	case ModalConfirmDelete:
		return m.handleConfirmDeleteKeys(msg)
	}
	return m.closeModal(), nil
}

func (m Model) handleAddModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.closeModal(), nil
	case "down", "ctrl+n":
		if m.listSel < len(m.filtered)-1 {
			m.listSel++
		}
		return m, nil
	case "up", "ctrl+p":
		if m.listSel > 0 {
			m.listSel--
		}
		return m, nil
	case "enter":
		return m.addSelectedLecture()
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m Model) handleConfirmDeleteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		tableID := m.ActiveTable()
		removed, err := m.store.RemoveLecture(tableID, m.deleteLecture.ID)
		model := m.closeModal()
		if err != nil {
			return model, commands.Err(err)
		}
		model.invalidateScene()
		if removed == 0 {
			return model, commands.Status("이미 삭제된 강의입니다")
		}
		return model, commands.Status(m.deleteLecture.Title + " 삭제됨")
	case "n", "esc":
		return m.closeModal(), nil
	}
	return m, nil
}

func (m Model) closeModal() Model {
	m.mode = ModeNormal
	m.modalType = ModalNone
	m.filter.Blur()
	return m
}

// blockAtCursor finds the topmost block covering the cursor cell. Blocks
// are scanned back to front because later schedules stack on top.
func (m *Model) blockAtCursor() (timetable.Block, int, bool) {
	scene := m.Scene()
	day := m.grid.Days[m.cursor.Day]
	slot := m.cursor.Row + 1
	for i := len(scene.Blocks) - 1; i >= 0; i-- {
		b := scene.Blocks[i]
		if b.Day != day {
			continue
		}
		for _, s := range b.Range {
			if s == slot {
				_, index, ok := timetable.SplitKey(b.Key)
				if !ok {
					return timetable.Block{}, 0, false
				}
				return b, index, true
			}
		}
	}
	return timetable.Block{}, 0, false
}

// previewPlacement translates the session offset of the held block into a
// target (day, range). Keyboard moves step by exactly one cell, so the
// pixel offset divides evenly by the cell metrics.
func (m *Model) previewPlacement() (string, []int, bool) {
	scene := m.Scene()
	for _, b := range scene.Blocks {
		if !b.Dragging {
			continue
		}
		met := m.grid.Metrics
		dayIdx := m.grid.DayIndex(b.Day) + b.OffsetX/met.CellWidth
		start := b.Range[0] + b.OffsetY/met.CellHeight
		span := len(b.Range)
		if dayIdx < 0 || dayIdx >= len(m.grid.Days) {
			return "", nil, false
		}
		if start < 1 || start+span-1 > len(m.axis) {
			return "", nil, false
		}
		return m.grid.Days[dayIdx], timetable.ContiguousRange(start, span), true
	}
	return "", nil, false
}

// dropBlock commits the held block at the previewed cell.
func (m Model) dropBlock() (tea.Model, tea.Cmd) {
	day, rng, ok := m.previewPlacement()
	if !ok {
		return m, commands.Status("그 위치로는 옮길 수 없습니다")
	}

	tableID := m.ActiveTable()
	err := m.store.Move(tableID, m.moveIndex, day, rng)
	m.session.End()
	m.mode = ModeNormal
	m.moveKey = ""
	m.invalidateScene()
	LogModeChange(ModeMove, ModeNormal, "drop block")
	if err != nil {
		return m, commands.Err(err)
	}

	m.cursor.Day = m.grid.DayIndex(day)
	m.cursor.Row = rng[0] - 1
	return m, nil
}

// addSelectedLecture places the selected catalog entry at the cursor cell.
func (m Model) addSelectedLecture() (tea.Model, tea.Cmd) {
	if m.listSel < 0 || m.listSel >= len(m.filtered) {
		return m, nil
	}
	entry := m.filtered[m.listSel]

	span := entry.SpanSlots
	if span < 1 {
		span = 1
	}
	start := m.cursor.Row + 1
	if start+span-1 > len(m.axis) {
		start = len(m.axis) - span + 1
	}
	if start < 1 {
		start = 1
	}

	s := timetable.Schedule{
		Day:     m.grid.Days[m.cursor.Day],
		Range:   timetable.ContiguousRange(start, span),
		Room:    entry.Room,
		Lecture: entry.Lecture,
	}

	model := m.closeModal()
	if err := model.store.Add(model.ActiveTable(), s); err != nil {
		return model, commands.Err(err)
	}
	model.invalidateScene()
	return model, commands.Status(entry.Lecture.Title + " 추가됨")
}

// applyFilter recomputes the visible catalog entries from the filter text.
func (m *Model) applyFilter() {
	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if query == "" {
		m.filtered = m.entries
	} else {
		out := m.entries[:0:0]
		for _, e := range m.entries {
			if strings.Contains(strings.ToLower(e.Lecture.Title), query) ||
				strings.Contains(strings.ToLower(e.Lecture.ID), query) {
				out = append(out, e)
			}
		}
		m.filtered = out
	}
	if m.listSel >= len(m.filtered) {
		m.listSel = len(m.filtered) - 1
	}
	if m.listSel < 0 {
		m.listSel = 0
	}
}
