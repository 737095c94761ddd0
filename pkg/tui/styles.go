package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/baldog/baldog-terminal/pkg/models"
)

// Color constants
const (
	ColorActive   = "170" // Purple/magenta for active elements
	ColorInactive = "240" // Gray for inactive elements
	ColorSelected = "236" // Dark gray for background selection
	ColorNormal   = "245" // Light gray for normal text
	ColorDim      = "241"
	ColorVeryDim  = "242"
	ColorWarning  = "214" // Orange
	ColorDanger   = "196"
	ColorSuccess  = "28"
	ColorWhite    = "255"
	ColorDark     = "235"
	ColorCourt    = "#5B8C5A" // progress bar green
	ColorNavy     = "#1A2A3A"
	ColorError    = "196"
)

// Common styles
var (
	ActiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorActive))

	InactiveBorderStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorInactive))

	SelectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Background(lipgloss.Color(ColorSelected)).
			Bold(true)

	NormalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal))

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorWarning))

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorDim))

	ContentPaddingStyle = lipgloss.NewStyle().
				PaddingLeft(1).
				PaddingRight(1)

	EmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorVeryDim))

	DescriptionStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorError))

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorSuccess)).
			Bold(true)

	CursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Bold(true)

	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorDim)).
				Italic(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorVeryDim))

	HelpBorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorInactive))
)

// GetCategoryChipStyle colors a category label with its palette color
func GetCategoryChipStyle(cat models.Category) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(models.GetCategoryColor(cat.Slug, cat.Color))).
		Foreground(lipgloss.Color(ColorWhite)).
		Padding(0, 1)
}

// GetIntensityStyle picks a badge color per level
func GetIntensityStyle(level models.Intensity) lipgloss.Style {
	color := ColorSuccess
	switch level {
	case models.IntensityIntermediate:
		color = ColorWarning
	case models.IntensityAdvanced:
		color = ColorDanger
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color(color)).
		Foreground(lipgloss.Color(ColorWhite)).
		Padding(0, 1).
		Bold(true)
}

// GetActiveHeaderStyle highlights the header of the focused section
func GetActiveHeaderStyle(isActive bool) lipgloss.Style {
	color := ColorInactive
	if isActive {
		color = ColorActive
	}
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(color))
}
