package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/baldog/baldog-terminal/pkg/catalog"
	"github.com/baldog/baldog-terminal/pkg/exercise"
	"github.com/baldog/baldog-terminal/pkg/models"
	"github.com/baldog/baldog-terminal/pkg/settings"
	"github.com/baldog/baldog-terminal/pkg/state"
)

type settingsFocus int

const (
	focusExercise settingsFocus = iota
	focusIntensity
	focusDuration
	focusRepetitions
	focusRestDuration
	focusCount
)

func (f settingsFocus) field() (models.Field, bool) {
	switch f {
	case focusDuration:
		return models.FieldDuration, true
	case focusRepetitions:
		return models.FieldRepetitions, true
	case focusRestDuration:
		return models.FieldRestDuration, true
	}
	return "", false
}

type selectionLoadedMsg struct {
	err error
}

type validateMsg struct {
	seq int
}

type fieldSavedMsg struct {
	field models.Field
	err   error
}

type resetDoneMsg struct {
	err error
}

// SettingsModel edits per-exercise duration, repetitions and rest
type SettingsModel struct {
	container *state.Container

	exerciseItems  []exercise.Item[models.ExerciseID]
	intensityItems []exercise.Item[models.Intensity]

	focus          settingsFocus
	dropdownCursor int

	debounce    time.Duration
	validateSeq int
	pending     bool

	saving  bool
	spinner spinner.Model
	confirm *ConfirmationModel
	input   *InputRenderer

	width  int
	height int
}

func NewSettingsModel(container *state.Container, cat *catalog.Catalog, debounceMs int) *SettingsModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return &SettingsModel{
		container:      container,
		exerciseItems:  exercise.ExerciseItems(cat.All()),
		intensityItems: exercise.IntensityItems(),
		debounce:       time.Duration(debounceMs) * time.Millisecond,
		spinner:        s,
		confirm:        NewConfirmation(),
		input:          NewInputRenderer(32),
	}
}

func (m *SettingsModel) Init() tea.Cmd {
	return m.loadSelection
}

func (m *SettingsModel) loadSelection() tea.Msg {
	return selectionLoadedMsg{err: m.container.LoadSavedValues(context.Background())}
}

func (m *SettingsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *SettingsModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.confirm.Active() {
			return m.confirm.Update(msg)
		}
		return m.handleKey(msg)

	case selectionLoadedMsg:
		m.pending = false
		if msg.err != nil {
			return alertStatus(settings.AlertFor(msg.err))
		}

	case validateMsg:
		if msg.seq == m.validateSeq {
			m.pending = false
		}

	case fieldSavedMsg:
		m.saving = false
		if msg.err != nil {
			return alertStatus(settings.AlertFor(msg.err))
		}
		return alertStatus(settings.SavedAlert(msg.field))

	case resetDoneMsg:
		m.saving = false
		if msg.err != nil {
			return alertStatus(settings.AlertFor(msg.err))
		}
		m.focus = focusExercise
		return alertStatus(settings.ResetAlert())

	case spinner.TickMsg:
		if !m.saving {
			return nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return cmd
	}
	return nil
}

func (m *SettingsModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	s := m.container.State()
	if s.ExerciseOpen || s.IntensityOpen {
		return m.handleDropdownKey(msg, s)
	}

	switch msg.String() {
	case "esc":
		return switchTo(homeView)
	case "tab", "down":
		m.focus = (m.focus + 1) % focusCount
		return nil
	case "shift+tab", "up":
		m.focus = (m.focus + focusCount - 1) % focusCount
		return nil
	case Shortcuts.Reset.Get():
		m.confirm.Show(ConfirmationConfig{
			Title:       "Reset to Default",
			Message:     "Reset every exercise to its recommended values?",
			Warning:     "Your saved durations, repetitions and rests will be lost.",
			Destructive: true,
			Type:        ConfirmTypeDialog,
		}, m.reset, nil)
		return nil
	}

	if field, ok := m.focus.field(); ok {
		return m.handleFieldKey(msg, field, s)
	}

	if msg.String() == "enter" || msg.String() == " " {
		switch m.focus {
		case focusExercise:
			m.dropdownCursor = exercise.IndexOf(m.exerciseItems, s.ExerciseValue)
			m.container.Dispatch(state.SetIntensityOpen(false))
			m.container.Dispatch(state.SetExerciseOpen(true))
		case focusIntensity:
			m.dropdownCursor = exercise.IndexOf(m.intensityItems, s.IntensityValue)
			m.container.Dispatch(state.SetExerciseOpen(false))
			m.container.Dispatch(state.SetIntensityOpen(true))
		}
	}
	return nil
}

func (m *SettingsModel) handleDropdownKey(msg tea.KeyMsg, s state.FormState) tea.Cmd {
	size := len(m.intensityItems)
	if s.ExerciseOpen {
		size = len(m.exerciseItems)
	}

	switch msg.String() {
	case "esc":
		m.container.Dispatch(state.SetExerciseOpen(false))
		m.container.Dispatch(state.SetIntensityOpen(false))
	case "up", "k":
		if m.dropdownCursor > 0 {
			m.dropdownCursor--
		}
	case "down", "j":
		if m.dropdownCursor < size-1 {
			m.dropdownCursor++
		}
	case "enter", " ":
		if s.ExerciseOpen {
			id := m.exerciseItems[m.dropdownCursor].Value
			return func() tea.Msg {
				return selectionLoadedMsg{err: m.container.SelectExercise(context.Background(), id)}
			}
		}
		level := m.intensityItems[m.dropdownCursor].Value
		return func() tea.Msg {
			return selectionLoadedMsg{err: m.container.SelectIntensity(context.Background(), level)}
		}
	}
	return nil
}

func (m *SettingsModel) handleFieldKey(msg tea.KeyMsg, field models.Field, s state.FormState) tea.Cmd {
	if key := msg.String(); key == "enter" || Shortcuts.Save.Matches(key) {
		if m.saving {
			return nil
		}
		m.saving = true
		return tea.Batch(m.spinner.Tick, func() tea.Msg {
			_, err := m.container.Save(context.Background(), field)
			return fieldSavedMsg{field: field, err: err}
		})
	}

	value := s.Value(field)
	switch msg.Type {
	case tea.KeyBackspace:
		if value == "" {
			return nil
		}
		runes := []rune(value)
		value = string(runes[:len(runes)-1])
	case tea.KeyRunes:
		value += string(msg.Runes)
	default:
		return nil
	}

	if !m.container.SetField(field, value) {
		return nil
	}
	return m.scheduleValidation()
}

// scheduleValidation hides the range flag until typing pauses
func (m *SettingsModel) scheduleValidation() tea.Cmd {
	m.validateSeq++
	if m.debounce <= 0 {
		m.pending = false
		return nil
	}
	m.pending = true
	seq := m.validateSeq
	return tea.Tick(m.debounce, func(time.Time) tea.Msg {
		return validateMsg{seq: seq}
	})
}

func (m *SettingsModel) reset() tea.Cmd {
	m.saving = true
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		return resetDoneMsg{err: m.container.ResetAll(context.Background())}
	})
}

func (m *SettingsModel) View() string {
	s := m.container.State()
	var b strings.Builder

	b.WriteString(NewViewTitle("Settings").ViewWithAlignment(m.width))
	b.WriteString("\n\n")

	if m.confirm.Active() {
		b.WriteString(ContentPaddingStyle.Render(m.confirm.View()))
		return b.String()
	}

	exerciseLabel := exercise.SelectExerciseLabel
	if idx := exercise.IndexOf(m.exerciseItems, s.ExerciseValue); s.ExerciseValue.Selected() {
		exerciseLabel = m.exerciseItems[idx].Label
	}
	b.WriteString(ContentPaddingStyle.Render(m.renderDropdown("WarmUp Exercise", exerciseLabel,
		m.focus == focusExercise, s.ExerciseOpen, itemLabels(m.exerciseItems))))
	b.WriteString("\n\n")

	b.WriteString(ContentPaddingStyle.Render(m.renderDropdown("Intensity", s.IntensityValue.Label(),
		m.focus == focusIntensity, s.IntensityOpen, itemLabels(m.intensityItems))))
	b.WriteString("\n\n")

	for _, f := range []settingsFocus{focusDuration, focusRepetitions, focusRestDuration} {
		field, _ := f.field()
		b.WriteString(ContentPaddingStyle.Render(m.renderField(field, f == m.focus, s)))
		b.WriteString("\n\n")
	}

	if m.saving {
		b.WriteString(ContentPaddingStyle.Render(m.spinner.View() + " Saving..."))
		b.WriteString("\n")
	}
	b.WriteString(ContentPaddingStyle.Render(HelpStyle.Render(
		"tab/↑/↓ move • enter open/save • "+FormatShortcutForHelp(Shortcuts.Reset)+" reset all • esc back")))
	return b.String()
}

func (m *SettingsModel) renderField(field models.Field, focused bool, s state.FormState) string {
	status := m.container.FieldStatus(field)
	disabled := !s.ExerciseValue.Selected()
	invalid := status.Invalid && !m.pending

	hint := "Recommended: " + status.Recommended
	if invalid {
		hint = fmt.Sprintf("Out of range! Recommended: %s", status.Recommended)
	}

	placeholder := ""
	if disabled {
		placeholder = "select an exercise first"
	}
	label := fmt.Sprintf("%s (%s)", field.Label(), field.Unit())
	return m.input.RenderInputFieldWithLabel(label, status.Value, placeholder, hint, focused, disabled, invalid)
}

func (m *SettingsModel) renderDropdown(label, value string, focused, open bool, options []string) string {
	var b strings.Builder
	b.WriteString(GetActiveHeaderStyle(focused).Render(label))
	b.WriteString("\n")

	box := InactiveBorderStyle
	if focused {
		box = ActiveBorderStyle
	}
	arrow := "▾"
	if open {
		arrow = "▴"
	}
	b.WriteString(box.Width(30).Render(value + " " + arrow))

	if open {
		for i, opt := range options {
			b.WriteString("\n")
			if i == m.dropdownCursor {
				b.WriteString(CursorStyle.Render("▸ ") + SelectedStyle.Render(opt))
			} else {
				b.WriteString("  " + NormalStyle.Render(opt))
			}
		}
	}
	return b.String()
}

func itemLabels[T comparable](items []exercise.Item[T]) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Label
	}
	return out
}
