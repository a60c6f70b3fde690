// Package tui provides the terminal user interface for siganpyo.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/joonholee/siganpyo/internal/tui/theme"
)

// Default column width - will be recalculated dynamically.
const defaultColWidth = 14

// Width of the time axis column ("18:55~19:45" plus padding).
const timeColWidth = 12

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	// Theme colors as lipgloss colors
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorWarning     lipgloss.Color

	colorTextOnAccent  lipgloss.Color
	colorTextOnWarning lipgloss.Color

	// Derived lecture block colors, in palette order
	palette *theme.Palette

	// Title style
	TitleStyle lipgloss.Style

	// Table tab styles
	TabStyle       lipgloss.Style
	TabActiveStyle lipgloss.Style

	// Header styles
	HeaderStyle          lipgloss.Style
	DayHeaderStyle       lipgloss.Style
	DayHeaderActiveStyle lipgloss.Style

	// Time column
	TimeColumnStyle lipgloss.Style

	// Cell styles
	CellStyle             lipgloss.Style
	BlockMovePreviewStyle lipgloss.Style
	EmptyCellStyle        lipgloss.Style
	CursorStyle           lipgloss.Style

	// Status message
	StatusStyle lipgloss.Style

	// Help text
	HelpStyle lipgloss.Style

	// Modal styles
	ModalStyle             lipgloss.Style
	ModalBgColor           lipgloss.Color
	ModalBackdropColor     lipgloss.Color
	ModalHeaderStyle       lipgloss.Style
	ModalFooterStyle       lipgloss.Style
	ModalTitleStyle        lipgloss.Style
	ModalBodyStyle         lipgloss.Style
	ModalMetaStyle         lipgloss.Style
	ModalLabelStyle        lipgloss.Style
	ModalInputTextStyle    lipgloss.Style
	ModalInputCursorStyle  lipgloss.Style
	ModalPlaceholderStyle  lipgloss.Style
	ModalButtonStyle       lipgloss.Style
	ModalButtonActiveStyle lipgloss.Style
	ModalHintStyle         lipgloss.Style
	ModalListItemStyle     lipgloss.Style
	ModalListSelectedStyle lipgloss.Style

	// Table container
	TableStyle lipgloss.Style

	// App container
	AppStyle lipgloss.Style

	// Separator style
	SeparatorStyle lipgloss.Style
}

// NewStyles creates a new Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{}
	palette := theme.NewPalette(t)
	s.palette = palette

	// Convert theme colors to lipgloss colors
	s.colorBg = palette.Bg
	s.colorBgHighlight = palette.BgHighlight
	s.colorBgSelection = palette.BgSelection
	s.colorFg = palette.Fg
	s.colorFgMuted = palette.FgMuted
	s.colorAccent = palette.Accent
	s.colorWarning = palette.Warning

	s.colorTextOnAccent = palette.TextOnAccent
	s.colorTextOnWarning = palette.TextOnWarning

	// Build styles from colors

	// Title style
	s.TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg)

	// Table tabs
	s.TabStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg).
		Padding(0, 1)

	s.TabActiveStyle = lipgloss.NewStyle().
		Foreground(s.colorTextOnAccent).
		Background(s.colorAccent).
		Bold(true).
		Padding(0, 1)

	// Header styles
	s.HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(s.colorAccent).
		Background(s.colorBg)

	// Day column header
	s.DayHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Align(lipgloss.Center).
		Foreground(s.colorFg).
		Background(s.colorBg).
		Width(defaultColWidth)

	s.DayHeaderActiveStyle = s.DayHeaderStyle.
		Foreground(s.colorAccent).
		Bold(true)

	// Time column
	s.TimeColumnStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Background(s.colorBg).
		Width(timeColWidth)

	// Base cell style
	s.CellStyle = lipgloss.NewStyle().
		Width(defaultColWidth).
		Align(lipgloss.Left)

	// Move preview: warning color so the held block stands out
	s.BlockMovePreviewStyle = s.CellStyle.
		Background(s.colorWarning).
		Foreground(s.colorTextOnWarning).
		Bold(true)

	// Empty cell
	s.EmptyCellStyle = lipgloss.NewStyle().
		Width(defaultColWidth).
		Foreground(s.colorFgMuted).
		Background(s.colorBg)

	// Cursor style
	s.CursorStyle = lipgloss.NewStyle().
		Width(defaultColWidth).
		Background(s.colorBgSelection).
		Foreground(s.colorAccent).
		Bold(true)

	// Status message
	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Background(s.colorBg).
		Bold(true)

	// Help text
	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBg)

	// Modal styles - use high-contrast theme colors
	modal := palette.Modal
	modalBg := modal.Bg
	modalBorder := modal.Border
	modalText := modal.Text
	modalMuted := modal.Muted
	modalHighlight := modal.Highlight
	modalPanel := modal.Panel
	modalReverseText := modal.ReverseText
	s.ModalBackdropColor = modal.Backdrop
	s.ModalBgColor = modalBg

	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modalBorder).
		Background(modalBg).
		Foreground(modalText).
		Padding(1, 1).
		Width(56).
		Align(lipgloss.Left)

	s.ModalHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modalText).
		Background(modalBg).
		Padding(0, 1).
		Align(lipgloss.Center)

	s.ModalFooterStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(modalBg)

	s.ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(modalText).
		Background(modalBg)

	s.ModalBodyStyle = lipgloss.NewStyle().
		Foreground(modalText).
		Background(modalBg)

	s.ModalMetaStyle = lipgloss.NewStyle().
		Foreground(modalMuted).
		Background(modalBg)

	s.ModalLabelStyle = lipgloss.NewStyle().
		Foreground(modalText).
		Bold(true).
		Width(10).
		Background(modalBg)

	s.ModalInputTextStyle = lipgloss.NewStyle().
		Foreground(modalText).
		Background(modalBg)

	s.ModalInputCursorStyle = lipgloss.NewStyle().
		Foreground(modalReverseText).
		Background(modalHighlight)

	s.ModalPlaceholderStyle = lipgloss.NewStyle().
		Foreground(modalMuted).
		Background(modalBg)

	s.ModalButtonStyle = lipgloss.NewStyle().
		Background(modalPanel).
		Foreground(modalText).
		Padding(0, 3)

	s.ModalButtonActiveStyle = lipgloss.NewStyle().
		Background(modalHighlight).
		Foreground(modalReverseText).
		Padding(0, 3).
		Underline(true)

	s.ModalHintStyle = lipgloss.NewStyle().
		Foreground(modalMuted).
		Background(modalBg)

	s.ModalListItemStyle = lipgloss.NewStyle().
		Foreground(modalText).
		Background(modalBg).
		Padding(0, 1)

	s.ModalListSelectedStyle = lipgloss.NewStyle().
		Foreground(modalReverseText).
		Background(modalHighlight).
		Bold(true).
		Padding(0, 1)

	// Table container - border and internal padding only
	s.TableStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.colorAccent).
		Background(s.colorBg).
		Padding(0, 1)

	// App container - padding provides consistent indentation for all content
	s.AppStyle = lipgloss.NewStyle().
		Background(s.colorBg).
		PaddingTop(1).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingBottom(1)

	// Separator style
	s.SeparatorStyle = lipgloss.NewStyle().
		Foreground(s.colorBgSelection).
		Background(s.colorBg)

	return s
}

// Palette exposes the derived theme palette for block styling.
func (s *Styles) Palette() *theme.Palette {
	return s.palette
}

// EmptyCellStyleWidth returns the empty cell style with specified width.
func (s *Styles) EmptyCellStyleWidth(width int) lipgloss.Style {
	return s.EmptyCellStyle.Width(width)
}

// CursorStyleWidth returns the cursor style with specified width.
func (s *Styles) CursorStyleWidth(width int) lipgloss.Style {
	return s.CursorStyle.Width(width)
}

// DayHeaderStyleWidth returns the day header style with specified width.
func (s *Styles) DayHeaderStyleWidth(width int) lipgloss.Style {
	return s.DayHeaderStyle.Width(width)
}

// DayHeaderActiveStyleWidth returns the active day header style with specified width.
func (s *Styles) DayHeaderActiveStyleWidth(width int) lipgloss.Style {
	return s.DayHeaderActiveStyle.Width(width)
}

// BlockMovePreviewStyleWidth returns the move preview style with specified width.
func (s *Styles) BlockMovePreviewStyleWidth(width int) lipgloss.Style {
	return s.BlockMovePreviewStyle.Width(width)
}
