// Package tui provides the terminal user interface for siganpyo.
package tui

import "github.com/charmbracelet/lipgloss"

// BlockCellStyles holds the width-applied styles for one lecture fill color.
type BlockCellStyles struct {
	Fill lipgloss.Style
	Drag lipgloss.Style
}

// StyleCache stores width-specific styles to avoid per-cell mutations.
type StyleCache struct {
	TitleBoxStyle   lipgloss.Style
	DayHeader       lipgloss.Style
	DayHeaderActive lipgloss.Style
	EmptyCell       lipgloss.Style
	Cursor          lipgloss.Style
	MovePreview     lipgloss.Style
	TimeColumn      lipgloss.Style

	// blocks is keyed by fill hex; the assigner hands out colors from the
	// same theme palette, so every scene color resolves here.
	blocks map[string]BlockCellStyles
}

// NewStyleCache precomputes all width-dependent styles for the grid.
func NewStyleCache(styles *Styles, width int) StyleCache {
	palette := styles.Palette()

	blocks := make(map[string]BlockCellStyles, len(palette.Blocks))
	for _, bc := range palette.Blocks {
		base := styles.CellStyle.Width(width).Foreground(bc.Text)
		blocks[string(bc.Bg)] = BlockCellStyles{
			Fill: base.Background(bc.Bg),
			Drag: base.Background(bc.DragBg).Bold(true),
		}
	}

	return StyleCache{
		TitleBoxStyle:   styles.TitleStyle.Border(lipgloss.RoundedBorder()).Padding(0, 2),
		DayHeader:       styles.DayHeaderStyleWidth(width),
		DayHeaderActive: styles.DayHeaderActiveStyleWidth(width),
		EmptyCell:       styles.EmptyCellStyleWidth(width),
		Cursor:          styles.CursorStyleWidth(width),
		MovePreview:     styles.BlockMovePreviewStyleWidth(width),
		TimeColumn:      styles.TimeColumnStyle,
		blocks:          blocks,
	}
}

// Block returns the cached cell styles for a fill color. Unknown colors
// fall back to the empty cell style so a stale scene never panics the
// renderer.
func (c StyleCache) Block(hex string) BlockCellStyles {
	if bs, ok := c.blocks[hex]; ok {
		return bs
	}
	return BlockCellStyles{Fill: c.EmptyCell, Drag: c.EmptyCell}
}
