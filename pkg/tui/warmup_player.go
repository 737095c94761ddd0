package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/wordwrap"

	"github.com/baldog/baldog-terminal/pkg/models"
	"github.com/baldog/baldog-terminal/pkg/state"
	"github.com/baldog/baldog-terminal/pkg/warmup"
)

const tickInterval = time.Second

type planReadyMsg struct {
	session *warmup.Session
	err     error
}

type warmupTickMsg struct {
	seq int
}

type historySavedMsg struct {
	err error
}

// WarmupModel plays a sequence of exercises with rest countdowns between them
type WarmupModel struct {
	container *state.Container
	history   *warmup.History
	exercises []models.Exercise
	log       *slog.Logger

	session  *warmup.Session
	progress progress.Model
	tickSeq  int
	recorded bool
	err      error

	width  int
	height int
}

func NewWarmupModel(container *state.Container, history *warmup.History, exercises []models.Exercise, log *slog.Logger) *WarmupModel {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &WarmupModel{
		container: container,
		history:   history,
		exercises: exercises,
		log:       log,
		progress:  progress.New(progress.WithSolidFill(ColorCourt), progress.WithWidth(40)),
	}
}

func (m *WarmupModel) Init() tea.Cmd {
	level := m.container.State().IntensityValue
	exercises := m.exercises
	return func() tea.Msg {
		snap, err := m.container.Repository().Snapshot(context.Background())
		if err != nil {
			m.log.Warn("using catalog timings", "error", err)
		}
		plan, err := warmup.BuildPlan(exercises, level, snap)
		if err != nil {
			return planReadyMsg{err: err}
		}
		return planReadyMsg{session: warmup.NewSession(plan, time.Now)}
	}
}

func (m *WarmupModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	w := width - 8
	if w > 60 {
		w = 60
	}
	if w < 10 {
		w = 10
	}
	m.progress.Width = w
}

func (m *WarmupModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case planReadyMsg:
		m.session = msg.session
		m.err = msg.err
		return nil

	case warmupTickMsg:
		if m.session == nil || msg.seq != m.tickSeq || !m.session.Playing() {
			return nil
		}
		m.session.Tick(tickInterval)
		if m.session.Done() {
			return m.record()
		}
		return m.scheduleTick()

	case historySavedMsg:
		if msg.err != nil {
			m.log.Error("failed to save warm-up history", "error", msg.err)
			return showStatus("✗ Failed to save warm-up history")
		}
		return showStatus("✓ Warm-up complete!")

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return nil
}

func (m *WarmupModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "esc" || msg.String() == "q" {
		m.tickSeq++
		return switchTo(homeView)
	}
	if m.session == nil {
		return nil
	}

	switch msg.String() {
	case " ", "enter":
		if m.session.Toggle() {
			return m.scheduleTick()
		}
		m.tickSeq++
	case "r":
		m.tickSeq++
		m.recorded = false
		m.session.Restart()
	case "n":
		m.session.Skip()
		if m.session.Done() {
			return m.record()
		}
	}
	return nil
}

func (m *WarmupModel) scheduleTick() tea.Cmd {
	m.tickSeq++
	seq := m.tickSeq
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return warmupTickMsg{seq: seq}
	})
}

func (m *WarmupModel) record() tea.Cmd {
	if m.recorded || m.history == nil {
		return nil
	}
	m.recorded = true
	rec, err := warmup.NewRecord(m.session)
	if err != nil {
		return nil
	}
	return func() tea.Msg {
		return historySavedMsg{err: m.history.Append(context.Background(), rec)}
	}
}

func (m *WarmupModel) View() string {
	var b strings.Builder
	b.WriteString(NewViewTitle("Start Warm-Ups").ViewWithAlignment(m.width))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(ContentPaddingStyle.Render(ErrorStyle.Render(m.err.Error())))
		b.WriteString("\n\n")
		b.WriteString(ContentPaddingStyle.Render(HelpStyle.Render("esc back")))
		return b.String()
	}
	if m.session == nil {
		return b.String() + ContentPaddingStyle.Render("Preparing exercises...")
	}

	step := m.session.Current()
	ranges, _ := step.Exercise.Ranges(m.session.Plan().Intensity)

	lines := []string{
		DescriptionStyle.Render(fmt.Sprintf("Exercises: %d of %d", m.session.Index()+1, m.session.Len())),
		SectionStyle.Render(step.Exercise.Name),
		wordwrap.String(step.Exercise.Description, max(m.width-4, 20)),
		"",
		HelpStyle.Render("Recommended Duration: " + fmt.Sprintf("%d-%d seconds", ranges.Duration.Min, ranges.Duration.Max)),
		HelpStyle.Render("Recommended Repetitions: " + fmt.Sprintf("%d-%d reps", ranges.Repetitions.Min, ranges.Repetitions.Max)),
		"",
	}

	switch {
	case m.session.Done():
		lines = append(lines, SuccessStyle.Render("All exercises complete!"))
	default:
		phase := GetIntensityStyle(models.IntensityBeginner).Render(m.session.Phase().String())
		if m.session.Phase() == warmup.PhaseRest {
			phase = GetIntensityStyle(models.IntensityIntermediate).Render("Rest")
		}
		lines = append(lines, fmt.Sprintf("%s  %s left", phase, formatSeconds(m.session.Remaining())))
	}
	lines = append(lines, m.progress.ViewAs(m.session.Progress()), "")

	action := "space start exercise"
	if m.session.Playing() {
		action = "space pause exercise"
	}
	lines = append(lines, HelpStyle.Render(action+" • n skip • r restart all exercises • esc back"))

	for _, l := range lines {
		b.WriteString(ContentPaddingStyle.Render(l))
		b.WriteString("\n")
	}
	return b.String()
}

func formatSeconds(d time.Duration) string {
	secs := int(d.Round(time.Second) / time.Second)
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}
