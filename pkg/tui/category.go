package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/baldog/baldog-terminal/pkg/catalog"
	"github.com/baldog/baldog-terminal/pkg/models"
)

// CategoryModel lists the exercises of one category
type CategoryModel struct {
	category  models.Category
	all       []models.Exercise
	exercises []models.Exercise
	search    *SearchBar
	cursor    int
	width     int
	height    int
}

func NewCategoryModel(cat *catalog.Catalog, slug string) *CategoryModel {
	c, ok := cat.Category(slug)
	if !ok {
		c = models.Category{Slug: catalog.CategoryAll, Title: "All Exercises"}
	}
	exercises := cat.ByCategory(c.Slug)
	return &CategoryModel{
		category:  c,
		all:       exercises,
		exercises: exercises,
		search:    NewSearchBar(),
	}
}

func (m *CategoryModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.search.SetWidth(width)
}

func (m *CategoryModel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if m.search.Active() {
		return m.updateSearch(keyMsg)
	}

	switch keyMsg.String() {
	case "/":
		return m.search.SetActive(true)
	case "esc", "q":
		if m.search.Value() != "" {
			m.search.Reset()
			m.applyFilter()
			return nil
		}
		return switchTo(homeView)
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.exercises)-1 {
			m.cursor++
		}
	case "enter":
		if len(m.exercises) == 0 {
			return nil
		}
		id := m.exercises[m.cursor].ID
		slug := m.category.Slug
		return func() tea.Msg {
			return SwitchViewMsg{view: detailView, exercise: id, category: slug}
		}
	case "w":
		if len(m.exercises) == 0 {
			return nil
		}
		slug := m.category.Slug
		return func() tea.Msg {
			return SwitchViewMsg{view: warmupView, category: slug}
		}
	}
	return nil
}

func (m *CategoryModel) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc":
		m.search.Reset()
		m.search.SetActive(false)
		m.applyFilter()
		return nil
	case "enter", "down", "up":
		m.search.SetActive(false)
		return nil
	}

	cmd := m.search.Update(msg)
	m.applyFilter()
	return cmd
}

func (m *CategoryModel) applyFilter() {
	m.exercises = m.search.Filter(m.all)
	if m.cursor >= len(m.exercises) {
		m.cursor = max(len(m.exercises)-1, 0)
	}
}

func (m *CategoryModel) View() string {
	var b strings.Builder

	b.WriteString(NewViewTitle(m.category.Title).ViewWithAlignment(m.width))
	b.WriteString("\n")
	if m.search.Active() || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(m.exercises) == 0 {
		empty := "No exercises in this category"
		if m.search.Value() != "" {
			empty = "No exercises match \"" + m.search.Value() + "\""
		}
		b.WriteString(ContentPaddingStyle.Render(EmptyStyle.Render(empty)))
		b.WriteString("\n")
	}

	for i, ex := range m.exercises {
		line := fmt.Sprintf("%d. %s", i+1, ex.Name)
		if i == m.cursor {
			b.WriteString(ContentPaddingStyle.Render(CursorStyle.Render("▸ ") + SelectedStyle.Render(line)))
		} else {
			b.WriteString(ContentPaddingStyle.Render("  " + NormalStyle.Render(line)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(ContentPaddingStyle.Render(HelpStyle.Render(
		"↑/↓ move • enter details • / filter • w start these warm-ups • esc back")))
	return b.String()
}
