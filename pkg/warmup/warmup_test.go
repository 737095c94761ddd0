package warmup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baldog/baldog-terminal/pkg/models"
	"github.com/baldog/baldog-terminal/pkg/settings"
	"github.com/baldog/baldog-terminal/pkg/storage"
	"github.com/baldog/baldog-terminal/pkg/testhelpers"
)

func fixedClock() func() time.Time {
	t := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func smallPlan(t *testing.T) Plan {
	t.Helper()
	cat := testhelpers.SmallCatalog()
	plan, err := BuildPlan(cat.All(), models.IntensityBeginner, nil)
	require.NoError(t, err)
	return plan
}

func TestBuildPlan(t *testing.T) {
	cat := testhelpers.SmallCatalog()
	snap := settings.FromCatalog(cat.All())
	idx, ok := snap.Find(1)
	require.True(t, ok)
	r := snap[idx].Intensity[models.IntensityBeginner]
	r.Duration.Min = 20
	snap[idx].Intensity[models.IntensityBeginner] = r

	plan, err := BuildPlan(cat.All(), models.IntensityBeginner, snap)
	require.NoError(t, err)
	require.Len(t, plan.Steps, 2)

	assert.Equal(t, 20*time.Second, plan.Steps[0].Duration, "saved value")
	assert.Equal(t, 15*time.Second, plan.Steps[0].Rest)
	assert.Equal(t, 10, plan.Steps[0].Repetitions)
	assert.Equal(t, 5*time.Second, plan.Steps[1].Duration, "catalog fallback")
	assert.Equal(t, (20+15+5+20)*time.Second, plan.Total())

	_, err = BuildPlan(nil, models.IntensityBeginner, nil)
	assert.ErrorIs(t, err, ErrEmptyPlan)

	plan, err = BuildPlan(cat.All(), models.IntensityNone, nil)
	require.NoError(t, err)
	assert.Equal(t, models.IntensityBeginner, plan.Intensity)
}

func TestSessionRestBeforeExercise(t *testing.T) {
	s := NewSession(smallPlan(t), fixedClock())

	assert.Equal(t, PhaseRest, s.Phase())
	assert.Equal(t, 15*time.Second, s.Remaining())
	assert.False(t, s.Playing())

	assert.False(t, s.Tick(time.Second), "paused sessions do not advance")
	assert.Equal(t, 15*time.Second, s.Remaining())

	assert.True(t, s.Toggle())
	assert.False(t, s.Tick(5*time.Second))
	assert.InDelta(t, 5.0/15.0, s.Progress(), 0.0001)

	assert.True(t, s.Tick(10*time.Second))
	assert.Equal(t, PhaseExercise, s.Phase())
	assert.Equal(t, 10*time.Second, s.Remaining())
	assert.Equal(t, "Jumping Jacks", s.Current().Exercise.Name)

	assert.True(t, s.Tick(10*time.Second))
	assert.Equal(t, PhaseRest, s.Phase())
	assert.Equal(t, 1, s.Index())
	assert.Equal(t, 20*time.Second, s.Remaining())
}

func TestSessionRunsToCompletion(t *testing.T) {
	s := NewSession(smallPlan(t), fixedClock())
	s.Play()

	assert.True(t, s.Tick(time.Hour))
	assert.True(t, s.Done())
	assert.False(t, s.Playing())
	assert.Equal(t, 1.0, s.Progress())
	assert.Equal(t, (15+10+20+5)*time.Second, s.Elapsed())
	assert.False(t, s.CompletedAt().IsZero())

	s.Play()
	assert.False(t, s.Playing(), "finished sessions stay stopped")

	s.Restart()
	assert.Equal(t, PhaseRest, s.Phase())
	assert.Equal(t, 0, s.Index())
	assert.Zero(t, s.Elapsed())
}

func TestSessionSkip(t *testing.T) {
	s := NewSession(smallPlan(t), fixedClock())
	s.Skip()
	assert.Equal(t, PhaseExercise, s.Phase())
	s.Skip()
	s.Skip()
	s.Skip()
	assert.True(t, s.Done())
	s.Skip()
	assert.True(t, s.Done())
}

func TestSessionZeroRestIsSkipped(t *testing.T) {
	ex := testhelpers.NewExerciseBuilder(1, "No Rest").
		WithRanges(models.IntensityBeginner, testhelpers.Ranges(10, 20, 1, 2, 0, 5)).
		Build()
	plan, err := BuildPlan([]models.Exercise{ex}, models.IntensityBeginner, nil)
	require.NoError(t, err)

	s := NewSession(plan, fixedClock())
	assert.Equal(t, PhaseExercise, s.Phase())
}

func TestHistory(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()
	h := NewHistory(kv)

	records, err := h.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)

	s := NewSession(smallPlan(t), fixedClock())
	_, err = NewRecord(s)
	assert.ErrorIs(t, err, ErrNotFinished)

	s.Play()
	s.Tick(time.Hour)
	rec, err := NewRecord(s)
	require.NoError(t, err)
	_, err = uuid.Parse(rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, rec.Exercises)
	assert.Equal(t, 50, rec.Seconds)
	assert.True(t, rec.CompletedAt.After(rec.StartedAt))

	require.NoError(t, h.Append(ctx, rec))
	require.NoError(t, h.Append(ctx, Record{ID: uuid.New().String(), Intensity: models.IntensityAdvanced}))

	records, err = h.List(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, rec.ID, records[0].ID)
	assert.Equal(t, models.IntensityAdvanced, records[1].Intensity)

	assert.Error(t, h.Append(ctx, Record{ID: "not-a-uuid"}))

	require.NoError(t, h.Clear(ctx))
	records, err = h.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestHistoryCorrupted(t *testing.T) {
	ctx := context.Background()
	kv := storage.NewMemoryStore()
	require.NoError(t, kv.Set(ctx, storage.KeyWarmupHistory, "oops"))

	_, err := NewHistory(kv).List(ctx)
	assert.Error(t, err)
}
