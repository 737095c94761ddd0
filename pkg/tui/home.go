package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/baldog/baldog-terminal/pkg/catalog"
	"github.com/baldog/baldog-terminal/pkg/models"
)

// homeItem is a row on the home screen: a category or a featured exercise
type homeItem struct {
	category models.Category
	exercise models.Exercise
	featured bool
}

// HomeModel shows the greeting, the categories and the featured exercises
type HomeModel struct {
	catalog *catalog.Catalog
	items   []homeItem
	cursor  int
	name    string
	width   int
	height  int
}

func NewHomeModel(cat *catalog.Catalog, showFeatured bool) *HomeModel {
	m := &HomeModel{catalog: cat}
	for _, c := range cat.Categories() {
		m.items = append(m.items, homeItem{category: c})
	}
	if showFeatured {
		for _, ex := range cat.Featured() {
			m.items = append(m.items, homeItem{exercise: ex, featured: true})
		}
	}
	return m
}

func (m *HomeModel) SetName(name string) {
	m.name = name
}

func (m *HomeModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *HomeModel) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch keyMsg.String() {
	case "q":
		return tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "enter":
		if len(m.items) == 0 {
			return nil
		}
		item := m.items[m.cursor]
		if item.featured {
			return func() tea.Msg {
				return SwitchViewMsg{view: detailView, exercise: item.exercise.ID}
			}
		}
		return func() tea.Msg {
			return SwitchViewMsg{view: categoryView, category: item.category.Slug}
		}
	case Shortcuts.WarmUp.Get():
		return func() tea.Msg {
			return SwitchViewMsg{view: warmupView, category: catalog.CategoryAll}
		}
	case Shortcuts.Settings.Get():
		return switchTo(settingsView)
	case Shortcuts.Profile.Get():
		return switchTo(profileView)
	}
	return nil
}

func (m *HomeModel) View() string {
	var b strings.Builder

	b.WriteString(renderHeader(m.width, m.name))
	b.WriteString("\n\n")

	b.WriteString(ContentPaddingStyle.Render(SectionStyle.Render("Categories")))
	b.WriteString("\n")
	featuredStarted := false
	for i, item := range m.items {
		if item.featured && !featuredStarted {
			featuredStarted = true
			b.WriteString("\n")
			b.WriteString(ContentPaddingStyle.Render(SectionStyle.Render("Featured Exercises")))
			b.WriteString("\n")
		}
		b.WriteString(ContentPaddingStyle.Render(m.renderItem(item, i == m.cursor)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m *HomeModel) renderItem(item homeItem, selected bool) string {
	prefix := "  "
	if selected {
		prefix = CursorStyle.Render("▸ ")
	}

	var line string
	if item.featured {
		line = fmt.Sprintf("%s  %s", item.exercise.Name, DescriptionStyle.Render(item.exercise.Video))
	} else {
		count := len(m.catalog.ByCategory(item.category.Slug))
		line = fmt.Sprintf("%s %s", GetCategoryChipStyle(item.category).Render(item.category.Title),
			DescriptionStyle.Render(fmt.Sprintf("%d exercises", count)))
	}

	if selected {
		return prefix + SelectedStyle.Render(line)
	}
	return prefix + NormalStyle.Render(line)
}

func (m *HomeModel) renderHelp() string {
	return ContentPaddingStyle.Render(HelpStyle.Render(
		"↑/↓ move • enter open • w start warm-up • s settings • p profile • q quit"))
}
