package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// InputRenderer draws the numeric settings inputs
type InputRenderer struct {
	Width int
}

func NewInputRenderer(width int) *InputRenderer {
	return &InputRenderer{Width: width}
}

// RenderInputField renders text with a block cursor at the end when focused
func (ir *InputRenderer) RenderInputField(text, placeholder string, focused, disabled, invalid bool) string {
	fieldStyle := lipgloss.NewStyle().
		Background(lipgloss.Color(ColorSelected)).
		Foreground(lipgloss.Color(ColorNormal)).
		Width(ir.Width).
		Padding(0, 1)

	switch {
	case disabled:
		fieldStyle = fieldStyle.Foreground(lipgloss.Color(ColorVeryDim))
	case invalid:
		fieldStyle = fieldStyle.Foreground(lipgloss.Color(ColorError))
	}

	cursorStyle := lipgloss.NewStyle().
		Background(lipgloss.Color(ColorActive)).
		Foreground(lipgloss.Color(ColorWhite)).
		Bold(true)

	var content strings.Builder
	if text == "" {
		if focused && !disabled {
			content.WriteString(cursorStyle.Render(" "))
		}
		if placeholder != "" {
			content.WriteString(PlaceholderStyle.Render(placeholder))
		}
	} else {
		content.WriteString(text)
		if focused && !disabled {
			content.WriteString(cursorStyle.Render(" "))
		}
	}

	return fieldStyle.Render(content.String())
}

// RenderInputFieldWithLabel puts the label above the field and the hint below
func (ir *InputRenderer) RenderInputFieldWithLabel(label, text, placeholder, hint string, focused, disabled, invalid bool) string {
	var result strings.Builder

	result.WriteString(GetActiveHeaderStyle(focused).Render(label))
	result.WriteString("\n")
	result.WriteString(ir.RenderInputField(text, placeholder, focused, disabled, invalid))
	if hint != "" {
		result.WriteString("\n")
		if invalid {
			result.WriteString(ErrorStyle.Render(hint))
		} else {
			result.WriteString(DescriptionStyle.Render(hint))
		}
	}
	return result.String()
}
