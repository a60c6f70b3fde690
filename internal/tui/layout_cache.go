// Package tui provides the terminal user interface for siganpyo.
package tui

import "github.com/charmbracelet/lipgloss"

// Footer height: one status line plus one help line.
const footerHeight = 2

// LayoutCache stores layout dimensions and styles derived from the window size.
type LayoutCache struct {
	InnerW int
	InnerH int

	FooterH int
	GridH   int

	ColWidth int

	GridTableStyle lipgloss.Style
	StatusAuxStyle lipgloss.Style
	HelpAuxStyle   lipgloss.Style
	TabBarStyle    lipgloss.Style
}

func (m Model) buildLayoutCache(width, height int) LayoutCache {
	styles := m.styles
	appH, appV := styles.AppStyle.GetFrameSize()
	innerW := width - appH
	innerH := height - appV

	if innerW < 0 {
		innerW = 0
	}
	if innerH < 0 {
		innerH = 0
	}

	// Tab bar takes one line above the grid.
	gridH := innerH - footerHeight - 1
	if gridH < 2 {
		gridH = 2
	}

	gridTableStyle := styles.TableStyle.
		Width(max(0, innerW-2)).
		Height(gridH).
		Border(lipgloss.RoundedBorder(), false, true, true, true)

	statusAuxStyle := styles.StatusStyle.Inherit(lipgloss.NewStyle().
		Padding(0, 0).
		Width(max(0, innerW)).
		Background(styles.colorBg))
	helpAuxStyle := styles.HelpStyle.Inherit(lipgloss.NewStyle().
		Padding(0, 1).
		Width(max(0, innerW-2)).
		Background(styles.colorBg))
	tabBarStyle := lipgloss.NewStyle().
		Width(max(0, innerW)).
		Background(styles.colorBg)

	return LayoutCache{
		InnerW:         innerW,
		InnerH:         innerH,
		FooterH:        footerHeight,
		GridH:          gridH,
		ColWidth:       m.colWidth,
		GridTableStyle: gridTableStyle,
		StatusAuxStyle: statusAuxStyle,
		HelpAuxStyle:   helpAuxStyle,
		TabBarStyle:    tabBarStyle,
	}
}

// calculateColWidth derives the day column width from the terminal width.
func (m Model) calculateColWidth() int {
	days := len(m.grid.Days)
	if days == 0 {
		return defaultColWidth
	}
	// Subtract app frame, table frame, time column and per-column borders.
	appH, _ := m.styles.AppStyle.GetFrameSize()
	usable := m.width - appH - 4 - timeColWidth - (days + 1)
	w := usable / days
	if w < 6 {
		w = 6
	}
	if w > 24 {
		w = 24
	}
	return w
}
