package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// ViewTitle renders the white-on-black title bar every screen starts with
type ViewTitle struct {
	text string
}

func NewViewTitle(text string) *ViewTitle {
	return &ViewTitle{text: text}
}

// View renders the title
func (v *ViewTitle) View() string {
	if v.text == "" {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWhite)).
		Background(lipgloss.Color("0")).
		Bold(true).
		Padding(0, 1)

	return titleStyle.Render("\n" + v.text + "\n")
}

// ViewWithAlignment renders the title left aligned inside width
func (v *ViewTitle) ViewWithAlignment(width int) string {
	if v.text == "" {
		return ""
	}

	alignStyle := lipgloss.NewStyle().
		Width(width).
		PaddingLeft(2).
		PaddingRight(2)

	return alignStyle.Render(v.View())
}

// ViewTitleHeight is one line of text plus two of padding
func ViewTitleHeight() int {
	return 3
}
