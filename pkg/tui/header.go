package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const logo = `▄▖ ▄▖▖ ▄ ▄▖▄▖
▙▌ ▌▌▌ ▌▌▌▌▌▖
▙▌ ▛▌▙▖▙▘▙▌▙▌`

// renderHeader draws the greeting on the left and the logo on the right
func renderHeader(width int, name string) string {
	logoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)).
		Bold(true)

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWhite)).
		Bold(true)

	nameStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorActive)).
		Bold(true)

	headerPadding := lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1).
		Width(width)

	left := strings.Join([]string{
		titleStyle.Render("WarmUps"),
		"Hello, " + nameStyle.Render(name),
		DescriptionStyle.Render("Basketball Warm-Up Exercises"),
	}, "\n")

	logoRendered := logoStyle.Render(logo)
	gap := width - 2 - lipgloss.Width(left) - lipgloss.Width(logoRendered)
	if gap < 1 {
		return headerPadding.Render(left)
	}

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		left,
		strings.Repeat(" ", gap),
		logoRendered,
	)
	return headerPadding.Render(content)
}
