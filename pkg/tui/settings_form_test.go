package tui

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baldog/baldog-terminal/pkg/models"
	"github.com/baldog/baldog-terminal/pkg/storage"
	"github.com/baldog/baldog-terminal/pkg/testhelpers"
)

func newTestSettingsModel(t *testing.T, debounceMs int) (*SettingsModel, *testhelpers.FlakyStore) {
	t.Helper()
	c, store := newTestContainer(t)
	require.NoError(t, c.Mount(context.Background()))
	m := NewSettingsModel(c, testhelpers.SmallCatalog(), debounceMs)
	m.SetSize(80, 40)
	return m, store
}

func selectFirstExercise(t *testing.T, m *SettingsModel) {
	t.Helper()
	drain(t, m, m.Update(key("enter")))
	require.True(t, m.container.State().ExerciseOpen)
	drain(t, m, m.Update(key("down")))
	drain(t, m, m.Update(key("enter")))
	require.Equal(t, testhelpers.ScenarioExerciseID, m.container.State().ExerciseValue)
}

func TestSettingsFormScenario(t *testing.T) {
	m, store := newTestSettingsModel(t, 0)

	selectFirstExercise(t, m)
	s := m.container.State()
	assert.False(t, s.ExerciseOpen)
	assert.Equal(t, "10", s.Duration)
	assert.Contains(t, m.View(), "Jumping Jacks")

	m.Update(key("tab"))
	m.Update(key("tab"))
	require.Equal(t, focusDuration, m.focus)

	m.Update(key("backspace"))
	m.Update(key("backspace"))
	m.Update(key("5"))
	assert.Equal(t, "5", m.container.State().Duration)
	assert.Contains(t, m.View(), "Out of range! Recommended: 10-30 seconds")

	before := store.Snapshot()
	statuses := drain(t, m, m.Update(key("enter")))
	require.Len(t, statuses, 1)
	assert.Equal(t, "✗ Invalid Value: Duration must be between 10 and 30", statuses[0])
	testhelpers.AssertStoreUnchanged(t, before, store.Snapshot())

	m.Update(key("backspace"))
	m.Update(key("20"))
	assert.NotContains(t, m.View(), "Out of range")
	statuses = drain(t, m, m.Update(key("enter")))
	require.Len(t, statuses, 1)
	assert.Equal(t, "✓ Success: Duration saved successfully!", statuses[0])
	assert.False(t, m.saving)

	values, ok, err := m.container.Repository().LoadSavedValues(context.Background(), 1, models.IntensityBeginner)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "20", values.Duration)
}

func TestSettingsFormFieldsLockedWithoutExercise(t *testing.T) {
	m, _ := newTestSettingsModel(t, 0)

	m.Update(key("tab"))
	m.Update(key("tab"))
	m.Update(key("9"))
	assert.Equal(t, "", m.container.State().Duration)
	assert.Contains(t, m.View(), "select an exercise first")
	assert.Contains(t, m.View(), "Recommended: N/A")
	assert.NotContains(t, m.View(), "Out of range")

	statuses := drain(t, m, m.Update(key("enter")))
	require.Len(t, statuses, 1)
	assert.Equal(t, "✗ Error: Please select a WarmUp Exercise First", statuses[0])
}

func TestSettingsFormDebouncedValidation(t *testing.T) {
	m, _ := newTestSettingsModel(t, 75)
	selectFirstExercise(t, m)

	m.Update(key("tab"))
	m.Update(key("tab"))
	m.Update(key("backspace"))
	m.Update(key("backspace"))
	cmd := m.Update(key("5"))
	require.NotNil(t, cmd, "validation is scheduled")
	assert.True(t, m.container.FieldStatus(models.FieldDuration).Invalid)
	assert.NotContains(t, m.View(), "Out of range", "hidden until typing pauses")

	m.Update(validateMsg{seq: m.validateSeq - 1})
	assert.NotContains(t, m.View(), "Out of range", "stale timers are ignored")

	m.Update(validateMsg{seq: m.validateSeq})
	assert.Contains(t, m.View(), "Out of range")
}

func TestSettingsFormIntensityDropdown(t *testing.T) {
	m, store := newTestSettingsModel(t, 0)
	selectFirstExercise(t, m)

	m.Update(key("tab"))
	drain(t, m, m.Update(key("enter")))
	require.True(t, m.container.State().IntensityOpen)
	m.Update(key("down"))
	m.Update(key("down"))
	drain(t, m, m.Update(key("enter")))

	s := m.container.State()
	assert.Equal(t, models.IntensityAdvanced, s.IntensityValue)
	assert.Equal(t, "45", s.Duration)

	saved, err := store.Get(context.Background(), storage.KeySavedIntensity)
	require.NoError(t, err)
	assert.Equal(t, "advanced", saved)
}

func TestSettingsFormReset(t *testing.T) {
	m, _ := newTestSettingsModel(t, 0)
	selectFirstExercise(t, m)

	m.Update(key("ctrl+r"))
	require.True(t, m.confirm.Active())
	assert.Contains(t, m.View(), "Reset to Default")

	m.Update(key("n"))
	assert.False(t, m.confirm.Active())
	assert.Equal(t, testhelpers.ScenarioExerciseID, m.container.State().ExerciseValue)

	m.Update(key("ctrl+r"))
	statuses := drain(t, m, m.Update(key("y")))
	require.Len(t, statuses, 1)
	assert.Equal(t, "✓ Success: All values reset to default!", statuses[0])
	assert.Equal(t, models.NoExercise, m.container.State().ExerciseValue)
	assert.True(t, m.container.State().Values().IsEmpty())
}

func TestSettingsFormResetFailureKeepsForm(t *testing.T) {
	m, store := newTestSettingsModel(t, 0)
	selectFirstExercise(t, m)
	store.FailSet(storage.KeyExerciseSnapshot, true)

	m.Update(key("ctrl+r"))
	statuses := drain(t, m, m.Update(key("y")))
	require.Len(t, statuses, 1)
	assert.True(t, strings.HasSuffix(statuses[0], "Failed to reset values"))
	assert.Equal(t, testhelpers.ScenarioExerciseID, m.container.State().ExerciseValue)
}
