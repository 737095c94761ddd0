package tui

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/baldog/baldog-terminal/pkg/exercise"
	"github.com/baldog/baldog-terminal/pkg/models"
	"github.com/baldog/baldog-terminal/pkg/onboarding"
	"github.com/baldog/baldog-terminal/pkg/state"
)

type onboardingDoneMsg struct {
	err error
}

// OnboardingModel walks through the welcome slides and then asks for an
// intensity
type OnboardingModel struct {
	container *state.Container
	tracker   *onboarding.Tracker

	slide    int
	form     *huh.Form
	choice   string
	finished bool

	width  int
	height int
}

func NewOnboardingModel(container *state.Container, tracker *onboarding.Tracker) *OnboardingModel {
	m := &OnboardingModel{
		container: container,
		tracker:   tracker,
		choice:    string(container.State().IntensityValue),
	}
	if m.choice == "" {
		m.choice = string(models.DefaultIntensity)
	}
	return m
}

func (m *OnboardingModel) Init() tea.Cmd {
	return nil
}

func (m *OnboardingModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func newIntensityForm(choice *string) *huh.Form {
	options := make([]huh.Option[string], 0, len(models.Intensities))
	for _, item := range exercise.IntensityItems() {
		options = append(options, huh.NewOption(item.Label, string(item.Value)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(onboarding.IntensityPromptTitle).
				Description(onboarding.IntensityPromptText).
				Options(options...).
				Value(choice),
		),
	).WithShowHelp(false).WithWidth(60)
}

func (m *OnboardingModel) Update(msg tea.Msg) tea.Cmd {
	if done, ok := msg.(onboardingDoneMsg); ok {
		if done.err != nil {
			return tea.Batch(showStatus("✗ "+done.err.Error()), switchTo(homeView))
		}
		return switchTo(homeView)
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "right", "l", "enter", " ":
		if m.slide < len(onboarding.Slides)-1 {
			m.slide++
			return nil
		}
		return m.startForm()
	case "left", "h":
		if m.slide > 0 {
			m.slide--
		}
	case "s", "esc":
		return m.startForm()
	}
	return nil
}

func (m *OnboardingModel) startForm() tea.Cmd {
	m.form = newIntensityForm(&m.choice)
	return m.form.Init()
}

func (m *OnboardingModel) updateForm(msg tea.Msg) tea.Cmd {
	model, cmd := m.form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		return m.finish(models.Intensity(m.choice))
	case huh.StateAborted:
		return m.finish(models.IntensityNone)
	}
	return cmd
}

// finish records that onboarding ran and applies the chosen intensity
func (m *OnboardingModel) finish(level models.Intensity) tea.Cmd {
	if m.finished {
		return nil
	}
	m.finished = true
	return func() tea.Msg {
		ctx := context.Background()
		var errs []error
		if level.Valid() {
			errs = append(errs, m.container.SelectIntensity(ctx, level))
		}
		errs = append(errs, m.tracker.MarkShown(ctx))
		return onboardingDoneMsg{err: errors.Join(errs...)}
	}
}

func (m *OnboardingModel) View() string {
	if m.form != nil {
		return ContentPaddingStyle.Render("\n" + m.form.View())
	}

	slide := onboarding.Slides[m.slide]
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorWarning)).
		Padding(1, 4).
		Align(lipgloss.Center).
		Render(SectionStyle.Render(slide.Title) + "\n\n" + NormalStyle.Render(slide.Text))

	dots := make([]string, len(onboarding.Slides))
	for i := range dots {
		if i == m.slide {
			dots[i] = CursorStyle.Render("●")
		} else {
			dots[i] = EmptyStyle.Render("○")
		}
	}

	next := "→ next"
	if m.slide == len(onboarding.Slides)-1 {
		next = "enter done"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(ContentPaddingStyle.Render(card))
	b.WriteString("\n\n")
	b.WriteString(ContentPaddingStyle.Render(strings.Join(dots, " ")))
	b.WriteString("\n\n")
	b.WriteString(ContentPaddingStyle.Render(HelpStyle.Render(next + " • ← back • s skip")))
	return b.String()
}
