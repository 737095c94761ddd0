package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/baldog/baldog-terminal/pkg/catalog"
	"github.com/baldog/baldog-terminal/pkg/exercise"
	"github.com/baldog/baldog-terminal/pkg/models"
)

// DetailModel shows one exercise with its ranges for every intensity
type DetailModel struct {
	exercise models.Exercise
	found    bool
	from     sessionState
	viewport viewport.Model
	width    int
	height   int
}

func NewDetailModel(cat *catalog.Catalog, id models.ExerciseID, from sessionState) *DetailModel {
	ex, ok := cat.Lookup(id)
	m := &DetailModel{
		exercise: ex,
		found:    ok,
		from:     from,
		viewport: viewport.New(80, 20),
	}
	m.viewport.SetContent(m.renderBody())
	return m
}

func (m *DetailModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width - 4
	m.viewport.Height = height - ViewTitleHeight() - 4
	if m.viewport.Height < 3 {
		m.viewport.Height = 3
	}
	m.viewport.SetContent(m.renderBody())
}

func (m *DetailModel) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "q":
			return switchTo(m.from)
		case "w":
			if !m.found {
				return nil
			}
			id := m.exercise.ID
			return func() tea.Msg {
				return SwitchViewMsg{view: warmupView, exercise: id}
			}
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd
}

func (m *DetailModel) renderBody() string {
	if !m.found {
		return EmptyStyle.Render("Exercise not found")
	}

	width := m.viewport.Width
	if width <= 0 {
		width = 76
	}

	var b strings.Builder
	b.WriteString(DescriptionStyle.Render(wordwrap.String(m.exercise.Description, width)))
	b.WriteString("\n\n")
	if m.exercise.Video != "" {
		b.WriteString(HeaderStyle.Render("Video: "))
		b.WriteString(m.exercise.Video)
		b.WriteString("\n\n")
	}

	for _, level := range models.Intensities {
		ranges, ok := m.exercise.Ranges(level)
		if !ok {
			continue
		}
		b.WriteString(GetIntensityStyle(level).Render(level.Label()))
		b.WriteString("\n")
		for _, f := range models.Fields {
			r, _ := ranges.Get(f)
			b.WriteString(fmt.Sprintf("  %-14s %s\n", f.Label()+":", exercise.FormatRange(f, r)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *DetailModel) View() string {
	title := "Exercise"
	if m.found {
		title = m.exercise.Name
	}

	var b strings.Builder
	b.WriteString(NewViewTitle(title).ViewWithAlignment(m.width))
	b.WriteString("\n")
	b.WriteString(ContentPaddingStyle.Render(m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(ContentPaddingStyle.Render(HelpStyle.Render("↑/↓ scroll • w start this warm-up • esc back")))
	return b.String()
}
