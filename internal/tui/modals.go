// Package tui provides the terminal user interface for siganpyo.
package tui

import (
	"fmt"
	"strings"

	"github.com/joonholee/siganpyo/internal/tui/view"
)

// Rows of the catalog list shown at once in the add modal.
const addListHeight = 8

// renderModal renders the current modal.
func (m Model) renderModal() string {
	switch m.modalType {
	case ModalAddLecture:
		return m.renderAddLectureModal()
	case ModalConfirmDelete:
		return m.renderConfirmDeleteModal()
	default:
		return ""
	}
}

func (m Model) modalStyles() view.ModalStyles {
	return view.ModalStyles{
		ModalHeaderStyle:       m.styles.ModalHeaderStyle,
		ModalTitleStyle:        m.styles.ModalTitleStyle,
		ModalFooterStyle:       m.styles.ModalFooterStyle,
		ModalStyle:             m.styles.ModalStyle,
		ModalButtonStyle:       m.styles.ModalButtonStyle,
		ModalButtonActiveStyle: m.styles.ModalButtonActiveStyle,
		ModalBodyStyle:         m.styles.ModalBodyStyle,
	}
}

// renderAddLectureModal renders the catalog picker for the cursor cell.
func (m Model) renderAddLectureModal() string {
	var b strings.Builder

	cell := fmt.Sprintf("%s요일 %s", m.grid.Days[m.cursor.Day], m.axis[m.cursor.Row].Label)
	b.WriteString(m.styles.ModalMetaStyle.Render(cell))
	b.WriteString("\n")
	b.WriteString(m.filter.View())
	b.WriteString("\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(m.styles.ModalHintStyle.Render("일치하는 강의가 없습니다"))
	} else {
		b.WriteString(m.renderAddLectureList())
	}

	footer := view.AddLectureFooter(m.modalStyles())
	return view.RenderModalFrame("강의 추가", b.String(), footer, m.modalStyles())
}

// renderAddLectureList windows the filtered entries around the selection.
func (m Model) renderAddLectureList() string {
	start := 0
	if m.listSel >= addListHeight {
		start = m.listSel - addListHeight + 1
	}
	end := start + addListHeight
	if end > len(m.filtered) {
		end = len(m.filtered)
	}

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		e := m.filtered[i]
		label := e.Lecture.Title
		if e.Room != "" {
			label += "  " + e.Room
		}
		label += fmt.Sprintf("  (%d교시)", e.SpanSlots)
		if i == m.listSel {
			lines = append(lines, m.styles.ModalListSelectedStyle.Render(label))
		} else {
			lines = append(lines, m.styles.ModalListItemStyle.Render(label))
		}
	}
	return strings.Join(lines, "\n")
}

// renderConfirmDeleteModal renders the delete confirmation modal.
func (m Model) renderConfirmDeleteModal() string {
	body := m.styles.ModalBodyStyle.Render(
		fmt.Sprintf("%s 강의를 시간표에서 삭제할까요?", m.deleteLecture.Title))
	footer := view.ConfirmDeleteFooter(m.modalStyles())
	return view.RenderModalFrame("강의 삭제", body, footer, m.modalStyles())
}
