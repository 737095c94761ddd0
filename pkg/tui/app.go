package tui

import (
	"context"
	"io"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/baldog/baldog-terminal/pkg/catalog"
	"github.com/baldog/baldog-terminal/pkg/models"
	"github.com/baldog/baldog-terminal/pkg/onboarding"
	"github.com/baldog/baldog-terminal/pkg/profile"
	"github.com/baldog/baldog-terminal/pkg/state"
	"github.com/baldog/baldog-terminal/pkg/warmup"
)

type sessionState int

const (
	homeView sessionState = iota
	categoryView
	detailView
	settingsView
	profileView
	warmupView
	onboardingView
)

// Deps are the long-lived services every screen shares
type Deps struct {
	Catalog    *catalog.Catalog
	Container  *state.Container
	Profile    *profile.Store
	Onboarding *onboarding.Tracker
	History    *warmup.History
	Logger     *slog.Logger
	UI         models.UISettings
}

type App struct {
	deps  Deps
	state sessionState

	home     *HomeModel
	category *CategoryModel
	detail   *DetailModel
	settings *SettingsModel
	profile  *ProfileModel
	player   *WarmupModel
	intro    *OnboardingModel

	width     int
	height    int
	statusMsg string
	statusSeq int
}

// startupMsg carries everything loaded before the first screen is useful
type startupMsg struct {
	name           string
	showOnboarding bool
	err            error
}

func NewApp(deps Deps) *App {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &App{
		deps:  deps,
		state: homeView,
		home:  NewHomeModel(deps.Catalog, deps.UI.ShowFeatured),
	}
}

func (a *App) Init() tea.Cmd {
	return a.startup
}

func (a *App) startup() tea.Msg {
	ctx := context.Background()
	msg := startupMsg{name: profile.DefaultName}

	if err := a.deps.Container.Mount(ctx); err != nil {
		a.deps.Logger.Error("failed to mount settings", "error", err)
		msg.err = err
	}

	name, err := a.deps.Profile.Load(ctx)
	if err != nil {
		a.deps.Logger.Warn("failed to load profile", "error", err)
	}
	msg.name = name

	if a.deps.UI.ShowOnboarding {
		shown, err := a.deps.Onboarding.Status(ctx)
		if err != nil {
			a.deps.Logger.Warn("failed to read onboarding status", "error", err)
		}
		msg.showOnboarding = !shown
	}
	return msg
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.resize()

	case tea.KeyMsg:
		if Shortcuts.Quit.Matches(msg.String()) {
			return a, tea.Quit
		}

	case startupMsg:
		a.home.SetName(msg.name)
		var cmds []tea.Cmd
		if msg.err != nil {
			cmds = append(cmds, showStatus("✗ Failed to load exercise data"))
		}
		if msg.showOnboarding {
			cmds = append(cmds, switchTo(onboardingView))
		}
		return a, tea.Batch(cmds...)

	case nameChangedMsg:
		a.home.SetName(msg.name)
		return a, nil

	case StatusMsg:
		a.statusMsg = string(msg)
		a.statusSeq++
		seq := a.statusSeq
		return a, tea.Tick(statusDuration, func(time.Time) tea.Msg {
			return clearStatusMsg{seq: seq}
		})

	case PersistentStatusMsg:
		a.statusMsg = string(msg)
		a.statusSeq++
		return a, nil

	case clearStatusMsg:
		if msg.seq == a.statusSeq {
			a.statusMsg = ""
		}
		return a, nil

	case SwitchViewMsg:
		return a, a.switchView(msg)
	}

	var cmd tea.Cmd
	switch a.state {
	case homeView:
		cmd = a.home.Update(msg)
	case categoryView:
		cmd = a.category.Update(msg)
	case detailView:
		cmd = a.detail.Update(msg)
	case settingsView:
		cmd = a.settings.Update(msg)
	case profileView:
		cmd = a.profile.Update(msg)
	case warmupView:
		cmd = a.player.Update(msg)
	case onboardingView:
		cmd = a.intro.Update(msg)
	}
	return a, cmd
}

func (a *App) switchView(msg SwitchViewMsg) tea.Cmd {
	a.state = msg.view
	var cmd tea.Cmd

	switch msg.view {
	case homeView:
		a.home.SetName(a.deps.Profile.Name())
	case categoryView:
		if msg.category != "" || a.category == nil {
			a.category = NewCategoryModel(a.deps.Catalog, msg.category)
		}
	case detailView:
		from := homeView
		if a.category != nil && msg.category != "" {
			from = categoryView
		}
		a.detail = NewDetailModel(a.deps.Catalog, msg.exercise, from)
	case settingsView:
		a.settings = NewSettingsModel(a.deps.Container, a.deps.Catalog, a.deps.UI.ValidationDebounceMs)
		cmd = a.settings.Init()
	case profileView:
		a.profile = NewProfileModel(a.deps.Profile)
		cmd = a.profile.Init()
	case warmupView:
		exercises := a.deps.Catalog.ByCategory(msg.category)
		if msg.exercise.Selected() {
			if ex, ok := a.deps.Catalog.Lookup(msg.exercise); ok {
				exercises = []models.Exercise{ex}
			}
		}
		a.player = NewWarmupModel(a.deps.Container, a.deps.History, exercises, a.deps.Logger)
		cmd = a.player.Init()
	case onboardingView:
		a.intro = NewOnboardingModel(a.deps.Container, a.deps.Onboarding)
		cmd = a.intro.Init()
	}

	a.resize()
	return cmd
}

func (a *App) resize() {
	if a.width == 0 {
		return
	}
	h := a.height
	if a.statusMsg != "" {
		h--
	}
	a.home.SetSize(a.width, h)
	if a.category != nil {
		a.category.SetSize(a.width, h)
	}
	if a.detail != nil {
		a.detail.SetSize(a.width, h)
	}
	if a.settings != nil {
		a.settings.SetSize(a.width, h)
	}
	if a.profile != nil {
		a.profile.SetSize(a.width, h)
	}
	if a.player != nil {
		a.player.SetSize(a.width, h)
	}
	if a.intro != nil {
		a.intro.SetSize(a.width, h)
	}
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	var content string
	switch a.state {
	case homeView:
		content = a.home.View()
	case categoryView:
		content = a.category.View()
	case detailView:
		content = a.detail.View()
	case settingsView:
		content = a.settings.View()
	case profileView:
		content = a.profile.View()
	case warmupView:
		content = a.player.View()
	case onboardingView:
		content = a.intro.View()
	default:
		content = "Unknown view"
	}

	if a.statusMsg != "" {
		statusStyle := lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)

		content = lipgloss.JoinVertical(lipgloss.Top, content, statusStyle.Render(a.statusMsg))
	}

	return content
}
