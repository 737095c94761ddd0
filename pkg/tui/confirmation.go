package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationType defines the visual style of the confirmation
type ConfirmationType int

const (
	ConfirmTypeInline ConfirmationType = iota // one line under the form
	ConfirmTypeDialog                          // bordered, centered box
)

// ConfirmationConfig holds the configuration for a confirmation prompt
type ConfirmationConfig struct {
	Title       string
	Message     string
	Warning     string // shown in orange
	Destructive bool   // Yes is red, No is green
	Type        ConfirmationType
	YesLabel    string
	NoLabel     string
	Width       int
}

// ConfirmationModel asks a y/n question and runs the matching callback
type ConfirmationModel struct {
	active    bool
	config    ConfirmationConfig
	onConfirm func() tea.Cmd
	onCancel  func() tea.Cmd
}

func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// Show activates the confirmation with the given configuration
func (m *ConfirmationModel) Show(config ConfirmationConfig, onConfirm, onCancel func() tea.Cmd) {
	m.active = true
	m.config = config
	m.onConfirm = onConfirm
	m.onCancel = onCancel

	if m.config.YesLabel == "" {
		m.config.YesLabel = "Yes"
	}
	if m.config.NoLabel == "" {
		m.config.NoLabel = "No"
	}
}

func (m *ConfirmationModel) Hide() {
	m.active = false
}

func (m *ConfirmationModel) Active() bool {
	return m.active
}

// Update handles y/n/esc while active
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}

	switch msg.String() {
	case "y", "Y":
		m.active = false
		if m.onConfirm != nil {
			return m.onConfirm()
		}
	case "n", "N", "esc":
		m.active = false
		if m.onCancel != nil {
			return m.onCancel()
		}
	}
	return nil
}

// View renders the confirmation based on its type
func (m *ConfirmationModel) View() string {
	if !m.active {
		return ""
	}
	if m.config.Type == ConfirmTypeDialog {
		return m.renderDialog()
	}
	return m.renderInline()
}

func (m *ConfirmationModel) renderInline() string {
	return fmt.Sprintf("%s %s", m.config.Message, formatConfirmOptions(m.config.Destructive))
}

func (m *ConfirmationModel) renderDialog() string {
	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorActive)).
		Padding(1, 2)

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorWarning))

	warningStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning))

	width := m.config.Width
	if width == 0 {
		width = 50
	}
	center := lipgloss.NewStyle().Width(width - 6).Align(lipgloss.Center)

	var b strings.Builder
	if m.config.Title != "" {
		b.WriteString(center.Render(titleStyle.Render(m.config.Title)))
		b.WriteString("\n\n")
	}
	if m.config.Message != "" {
		b.WriteString(center.Render(m.config.Message))
		b.WriteString("\n")
	}
	if m.config.Warning != "" {
		b.WriteString("\n")
		b.WriteString(center.Render(warningStyle.Render(m.config.Warning)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	labels := fmt.Sprintf("(%s / %s)",
		strings.ToLower(m.config.YesLabel),
		strings.ToLower(m.config.NoLabel))
	b.WriteString(center.Render(formatConfirmOptions(m.config.Destructive) + "  " + labels))

	return borderStyle.Width(width).Render(b.String())
}

func formatConfirmOptions(destructive bool) string {
	yes := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Bold(true)
	no := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDanger)).Bold(true)
	if destructive {
		yes, no = no, yes
	}
	return "[" + yes.Render("y") + "/" + no.Render("n") + "]"
}
