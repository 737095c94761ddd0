package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/baldog/baldog-terminal/pkg/state"
	"github.com/baldog/baldog-terminal/pkg/testhelpers"
)

type updater interface {
	Update(tea.Msg) tea.Cmd
}

// drain runs cmd synchronously, feeds the resulting messages back into m and
// returns every status message produced along the way. Timers are not run.
func drain(t *testing.T, m updater, cmd tea.Cmd) []string {
	t.Helper()
	var statuses []string
	var run func(tea.Cmd, int)
	run = func(cmd tea.Cmd, depth int) {
		if cmd == nil || depth > 5 {
			return
		}
		switch msg := cmd().(type) {
		case tea.BatchMsg:
			for _, c := range msg {
				run(c, depth+1)
			}
		case StatusMsg:
			statuses = append(statuses, string(msg))
		case spinner.TickMsg, SwitchViewMsg, nameChangedMsg:
		default:
			run(m.Update(msg), depth+1)
		}
	}
	run(cmd, 0)
	return statuses
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+r":
		return tea.KeyMsg{Type: tea.KeyCtrlR}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestContainer(t *testing.T) (*state.Container, *testhelpers.FlakyStore) {
	t.Helper()
	store := testhelpers.NewFlakyStore()
	return state.NewContainer(store, testhelpers.SmallCatalog(), nil), store
}
