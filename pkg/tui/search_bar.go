package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/baldog/baldog-terminal/pkg/models"
)

// SearchBar filters a list of exercises by name
type SearchBar struct {
	input    textinput.Model
	isActive bool
	width    int
}

// NewSearchBar creates a new search bar component
func NewSearchBar() *SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Filter exercises..."
	ti.CharLimit = 40
	ti.Width = 30

	return &SearchBar{input: ti}
}

// SetActive focuses or blurs the input
func (s *SearchBar) SetActive(active bool) tea.Cmd {
	s.isActive = active
	if active {
		return s.input.Focus()
	}
	s.input.Blur()
	return nil
}

// Active reports whether keys go to the search input
func (s *SearchBar) Active() bool {
	return s.isActive
}

// SetWidth sets the width for the search bar
func (s *SearchBar) SetWidth(width int) {
	s.width = width
	// borders, padding and the icon
	if w := width - 12; w > 10 {
		s.input.Width = w
	}
}

// Value returns the current search text
func (s *SearchBar) Value() string {
	return s.input.Value()
}

// SetValue sets the search text
func (s *SearchBar) SetValue(value string) {
	s.input.SetValue(value)
}

// Reset clears the search input
func (s *SearchBar) Reset() {
	s.input.SetValue("")
}

// Update handles tea messages for the search bar
func (s *SearchBar) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

// Filter keeps the exercises whose name contains the search text
func (s *SearchBar) Filter(exercises []models.Exercise) []models.Exercise {
	query := strings.ToLower(strings.TrimSpace(s.Value()))
	if query == "" {
		return exercises
	}

	var out []models.Exercise
	for _, ex := range exercises {
		if strings.Contains(strings.ToLower(ex.Name), query) {
			out = append(out, ex)
		}
	}
	return out
}

// View renders the search bar
func (s *SearchBar) View() string {
	borderColor := ColorInactive
	if s.isActive {
		borderColor = ColorActive
	}

	searchStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Padding(0, 1)
	if s.width > 4 {
		searchStyle = searchStyle.Width(s.width - 4)
	}

	var searchIcon string
	if s.isActive {
		searchIcon = lipgloss.NewStyle().
			Background(lipgloss.Color(ColorActive)).
			Foreground(lipgloss.Color(ColorWhite)).
			Bold(true).
			Padding(0, 1).
			Render("⌕")
	} else {
		searchIcon = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorNormal)).
			Bold(true).
			Render(" ⌕ ")
	}

	content := lipgloss.JoinHorizontal(lipgloss.Center, searchIcon, " ", s.input.View())
	return lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1).Render(searchStyle.Render(content))
}
