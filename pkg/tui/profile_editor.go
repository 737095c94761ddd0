package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/baldog/baldog-terminal/pkg/profile"
)

type nameUpdatedMsg struct {
	name    string
	changed bool
	err     error
}

// ProfileModel edits the display name
type ProfileModel struct {
	store *profile.Store
	input textinput.Model

	modal    string // success text, shown until dismissed
	errorMsg string

	width  int
	height int
}

func NewProfileModel(store *profile.Store) *ProfileModel {
	ti := textinput.New()
	ti.Placeholder = store.Name()
	ti.Prompt = "› "
	ti.Width = 30
	ti.Focus()

	return &ProfileModel{store: store, input: ti}
}

func (m *ProfileModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ProfileModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *ProfileModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.modal != "" {
			if msg.String() == "enter" || msg.String() == "esc" {
				m.modal = ""
			}
			return nil
		}
		switch msg.String() {
		case "esc":
			return switchTo(homeView)
		case "enter":
			candidate := m.input.Value()
			current := m.store.Name()
			return func() tea.Msg {
				name, err := m.store.UpdateName(context.Background(), candidate)
				return nameUpdatedMsg{name: name, changed: err == nil && name != current, err: err}
			}
		}

	case nameUpdatedMsg:
		if msg.err != nil {
			if errors.Is(msg.err, profile.ErrNameTooLong) {
				m.errorMsg = profile.NameTooLongMessage
				return nil
			}
			m.errorMsg = "Failed to save name"
			return showStatus("✗ " + msg.err.Error())
		}
		m.errorMsg = ""
		m.input.SetValue("")
		m.input.Placeholder = msg.name
		if !msg.changed {
			return nil
		}
		m.modal = profile.SuccessMessage(msg.name)
		name := msg.name
		return func() tea.Msg { return nameChangedMsg{name: name} }
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *ProfileModel) View() string {
	var b strings.Builder

	b.WriteString(NewViewTitle("Profile").ViewWithAlignment(m.width))
	b.WriteString("\n\n")

	if m.modal != "" {
		modal := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorSuccess)).
			Padding(1, 3).
			Align(lipgloss.Center).
			Render(SuccessStyle.Render(m.modal) + "\n\n" + HelpStyle.Render("enter to close"))
		b.WriteString(ContentPaddingStyle.Render(modal))
		return b.String()
	}

	b.WriteString(ContentPaddingStyle.Render(HeaderStyle.Render("Current name: ") + m.store.Name()))
	b.WriteString("\n\n")
	b.WriteString(ContentPaddingStyle.Render(HeaderStyle.Render("Enter your name")))
	b.WriteString("\n")
	b.WriteString(ContentPaddingStyle.Render(m.input.View()))
	b.WriteString("\n")
	if m.errorMsg != "" {
		b.WriteString(ContentPaddingStyle.Render(ErrorStyle.Render(m.errorMsg)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(ContentPaddingStyle.Render(HelpStyle.Render("enter save • esc back")))
	return b.String()
}
