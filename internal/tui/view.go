package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/joonholee/siganpyo/internal/tui/view"
)

// View renders the TUI using a boxed, parent-controlled layout.
func (m Model) View() string {
	state := m.viewState()
	return view.Render(state)
}

func (m Model) viewState() view.ViewState {
	base := m.renderAppContent()
	showModal := m.mode == ModeModal && m.modalType != ModalNone
	modal := ""
	if showModal {
		modal = m.renderModal()
		m.overlay.active = true
		m.overlay.SetBackground(m.styles.ModalBackdropColor)
	} else {
		m.overlay.active = false
	}

	return view.ViewState{
		Width:            m.width,
		Height:           m.height,
		BaseContent:      base,
		ModalContent:     modal,
		ShowModal:        showModal,
		Overlay:          m.overlay,
		EmptyPlaceholder: "Loading...",
	}
}

func (m Model) renderAppContent() string {
	layout := m.layoutCache
	if layout.InnerW <= 0 || layout.InnerH <= 0 {
		return "Terminal too small"
	}

	tabBar := layout.TabBarStyle.Render(m.renderTabBar())
	gridBox := view.RenderTable(m.tableViewState(layout))
	footerBox := view.RenderFooterModel(m.footerViewState(layout))

	content := lipgloss.JoinVertical(lipgloss.Left, tabBar, gridBox, footerBox)
	app := m.styles.AppStyle.Render(content)
	return view.PadLinesWithBackground(app, m.width, m.height, m.styles.colorBg)
}

// renderTabBar renders the title plus one tab per timetable.
func (m Model) renderTabBar() string {
	parts := []string{m.styles.TitleStyle.Render("시간표")}
	for i := range m.tables {
		label := fmt.Sprintf(" %d ", i+1)
		if i == m.active {
			parts = append(parts, m.styles.TabActiveStyle.Render(label))
		} else {
			parts = append(parts, m.styles.TabStyle.Render(label))
		}
	}
	sep := m.styles.SeparatorStyle.Render(" ")
	return strings.Join(parts, sep)
}

func (m Model) tableViewState(layout LayoutCache) view.TableViewState {
	if layout.GridH <= 0 {
		return view.TableViewState{Render: false}
	}

	scene := m.Scene()
	headers, headerStyles := m.headerLabels()
	rows, cellStyles := m.buildGridTableRows(scene)

	borderColor := m.styles.colorAccent
	if scene.ActiveDrag {
		// The held table shows the distinguishing warning outline.
		borderColor = m.styles.colorWarning
	}
	borderStyle := lipgloss.NewStyle().
		Foreground(borderColor).
		Background(m.styles.colorBg)

	return view.TableViewState{
		InnerW:       layout.InnerW,
		GridH:        layout.GridH,
		Headers:      headers,
		HeaderStyles: headerStyles,
		Content: view.TableContent{
			Rows:       rows,
			CellStyles: cellStyles,
		},
		BorderStyle: borderStyle,
		VAlign:      lipgloss.Top,
		Bg:          m.styles.colorBg,
		Render:      true,
	}
}

func (m Model) footerViewState(layout LayoutCache) view.FooterModel {
	return view.FooterModel{
		InnerW:      layout.InnerW,
		FooterH:     layout.FooterH,
		StatusText:  m.statusMsgOrDefault(),
		HelpText:    m.renderHelp(),
		StatusStyle: layout.StatusAuxStyle,
		HelpStyle:   layout.HelpAuxStyle,
		VAlign:      lipgloss.Bottom,
		Bg:          m.styles.colorBg,
	}
}

func (m Model) statusMsgOrDefault() string {
	if m.statusMsg != "" && time.Now().Before(m.statusTime) {
		return m.statusMsg
	}
	return ""
}

func (m Model) renderHelp() string {
	switch m.mode {
	case ModeMove:
		return "[hjkl] move  [Enter] drop  [Esc] cancel"
	case ModeModal:
		switch m.modalType {
		case ModalAddLecture:
			return "[↑↓] select  [Enter] add  [Esc] close"
		case ModalConfirmDelete:
			return "[y] delete  [n] keep"
		}
		return ""
	default:
		return "[hjkl] navigate  [Enter] add  [Space] move  [x] delete  [Tab] table  [n] new  [y] copy  [q] quit"
	}
}
