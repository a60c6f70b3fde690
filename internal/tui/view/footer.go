package view

import "github.com/charmbracelet/lipgloss"

// FooterModel holds the status and help lines of the footer.
type FooterModel struct {
	InnerW      int
	FooterH     int
	StatusText  string
	HelpText    string
	StatusStyle lipgloss.Style
	HelpStyle   lipgloss.Style
	VAlign      lipgloss.Position
	Bg          lipgloss.Color
}

// RenderFooterModel renders the footer box.
func RenderFooterModel(f FooterModel) string {
	status := f.StatusStyle.Render(f.StatusText)
	help := f.HelpStyle.Render(f.HelpText)
	content := lipgloss.JoinVertical(lipgloss.Left, status, help)
	return PlaceBox(f.InnerW, f.FooterH, f.VAlign, content, f.Bg)
}
