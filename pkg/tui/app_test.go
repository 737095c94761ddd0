package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baldog/baldog-terminal/pkg/models"
	"github.com/baldog/baldog-terminal/pkg/onboarding"
	"github.com/baldog/baldog-terminal/pkg/profile"
	"github.com/baldog/baldog-terminal/pkg/state"
	"github.com/baldog/baldog-terminal/pkg/storage"
	"github.com/baldog/baldog-terminal/pkg/testhelpers"
	"github.com/baldog/baldog-terminal/pkg/warmup"
)

func newTestApp(t *testing.T, kv storage.Store) *App {
	t.Helper()
	cat := testhelpers.SmallCatalog()
	app := NewApp(Deps{
		Catalog:    cat,
		Container:  state.NewContainer(kv, cat, nil),
		Profile:    profile.NewStore(kv),
		Onboarding: onboarding.NewTracker(kv),
		History:    warmup.NewHistory(kv),
		UI:         models.DefaultSettings().UI,
	})
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return app
}

func TestAppStartupShowsOnboardingOnce(t *testing.T) {
	kv := storage.NewMemoryStore()
	app := newTestApp(t, kv)

	msg := app.Init()()
	startup, ok := msg.(startupMsg)
	require.True(t, ok)
	assert.True(t, startup.showOnboarding)
	assert.Equal(t, profile.DefaultName, startup.name)

	_, cmd := app.Update(startup)
	require.NotNil(t, cmd)
	assert.Equal(t, SwitchViewMsg{view: onboardingView}, cmd())

	require.NoError(t, onboarding.NewTracker(kv).MarkShown(context.Background()))
	startup = app.Init()().(startupMsg)
	assert.False(t, startup.showOnboarding)
}

func TestAppHomeShowsName(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()
	require.NoError(t, kv.Set(ctx, storage.KeyUserName, "Jordan"))
	require.NoError(t, kv.Set(ctx, storage.KeyOnboardingShown, "true"))
	app := newTestApp(t, kv)

	app.Update(app.Init()())
	view := app.View()
	assert.Contains(t, view, "Hello, Jordan")
	assert.Contains(t, view, "Categories")
	assert.Contains(t, view, "Whole Body Exercises")
	assert.Contains(t, view, "Featured Exercises")
}

func TestAppStatusMessages(t *testing.T) {
	app := newTestApp(t, storage.NewMemoryStore())

	_, cmd := app.Update(StatusMsg("✓ saved"))
	assert.Equal(t, "✓ saved", app.statusMsg)
	assert.NotNil(t, cmd, "clear is scheduled")

	app.Update(clearStatusMsg{seq: app.statusSeq - 1})
	assert.Equal(t, "✓ saved", app.statusMsg, "stale clear is ignored")

	app.Update(clearStatusMsg{seq: app.statusSeq})
	assert.Empty(t, app.statusMsg)

	_, cmd = app.Update(PersistentStatusMsg("working"))
	assert.Nil(t, cmd)
	assert.Contains(t, app.View(), "working")
}

func TestAppNavigation(t *testing.T) {
	app := newTestApp(t, storage.NewMemoryStore())

	tests := []struct {
		name string
		msg  SwitchViewMsg
		want string
	}{
		{"category", SwitchViewMsg{view: categoryView, category: "whole-body"}, "Whole Body Exercises"},
		{"detail", SwitchViewMsg{view: detailView, exercise: 1, category: "whole-body"}, "Jumping Jacks"},
		{"settings", SwitchViewMsg{view: settingsView}, "Settings"},
		{"profile", SwitchViewMsg{view: profileView}, "Enter your name"},
		{"onboarding", SwitchViewMsg{view: onboardingView}, "Welcome to Baldog"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app.Update(tt.msg)
			assert.Equal(t, tt.msg.view, app.state)
			assert.Contains(t, app.View(), tt.want)
		})
	}

	_, cmd := app.Update(SwitchViewMsg{view: detailView, exercise: 1, category: "whole-body"})
	assert.Nil(t, cmd)
	_, cmd = app.Update(key("esc"))
	require.NotNil(t, cmd)
	assert.Equal(t, SwitchViewMsg{view: categoryView}, cmd())
}

func TestOnboardingSlides(t *testing.T) {
	c, _ := newTestContainer(t)
	m := NewOnboardingModel(c, onboarding.NewTracker(storage.NewMemoryStore()))

	assert.Contains(t, m.View(), "Welcome to Baldog")
	m.Update(key("right"))
	assert.Contains(t, m.View(), "Step-by-Step Drills")
	m.Update(key("left"))
	assert.Equal(t, 0, m.slide)

	m.Update(key("s"))
	require.NotNil(t, m.form)
	assert.Contains(t, m.View(), "Let's Get Started!")
}

func TestOnboardingFinish(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()
	c := state.NewContainer(kv, testhelpers.SmallCatalog(), nil)
	tracker := onboarding.NewTracker(kv)
	m := NewOnboardingModel(c, tracker)

	msg := m.finish(models.IntensityAdvanced)()
	done, ok := msg.(onboardingDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.err)
	assert.Nil(t, m.finish(models.IntensityAdvanced), "finish runs once")

	assert.Equal(t, models.IntensityAdvanced, c.State().IntensityValue)
	shown, err := tracker.Status(ctx)
	require.NoError(t, err)
	assert.True(t, shown)
}
