package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/baldog/baldog-terminal/pkg/models"
	"github.com/baldog/baldog-terminal/pkg/settings"
)

const statusDuration = 3 * time.Second

// StatusMsg shows a message in the status bar for a few seconds
type StatusMsg string

// PersistentStatusMsg stays until replaced
type PersistentStatusMsg string

type clearStatusMsg struct {
	seq int
}

// SwitchViewMsg moves the app to another screen
type SwitchViewMsg struct {
	view     sessionState
	category string
	exercise models.ExerciseID
}

// nameChangedMsg tells the home header to refresh
type nameChangedMsg struct {
	name string
}

func switchTo(view sessionState) tea.Cmd {
	return func() tea.Msg {
		return SwitchViewMsg{view: view}
	}
}

func showStatus(text string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg(text)
	}
}

// alertStatus renders a settings alert the way the status bar shows it
func alertStatus(a settings.Alert) tea.Cmd {
	prefix := "✓"
	if a.Title != "Success" {
		prefix = "✗"
	}
	return showStatus(fmt.Sprintf("%s %s: %s", prefix, a.Title, a.Message))
}
