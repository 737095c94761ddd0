package state

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/baldog/baldog-terminal/pkg/exercise"
	"github.com/baldog/baldog-terminal/pkg/models"
	"github.com/baldog/baldog-terminal/pkg/settings"
	"github.com/baldog/baldog-terminal/pkg/storage"
)

// FieldStatus is what the form renders next to one input
type FieldStatus struct {
	Value       string
	Invalid     bool
	Recommended string
}

// Container owns the form state for a session. It is built once at startup
// and handed to every screen that needs it.
type Container struct {
	mu    sync.RWMutex
	state FormState

	repo    *settings.Repository
	catalog settings.Catalog
	store   storage.Store
	log     *slog.Logger

	subMu   sync.Mutex
	subs    map[int]func(FormState)
	nextSub int
}

// NewContainer creates a container in InitialState
func NewContainer(store storage.Store, catalog settings.Catalog, log *slog.Logger) *Container {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Container{
		state:   InitialState(),
		repo:    settings.NewRepository(store, catalog, log),
		catalog: catalog,
		store:   store,
		log:     log,
		subs:    make(map[int]func(FormState)),
	}
}

// Repository exposes the underlying persistence helpers
func (c *Container) Repository() *settings.Repository {
	return c.repo
}

// State returns a copy of the current form state
func (c *Container) State() FormState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Dispatch reduces one action and notifies subscribers
func (c *Container) Dispatch(a Action) FormState {
	c.mu.Lock()
	next := Reduce(c.state, a)
	changed := next != c.state
	c.state = next
	c.mu.Unlock()

	if changed {
		c.notify(next)
	}
	return next
}

// Subscribe registers fn for every state change. Call the returned
// function to stop receiving updates.
func (c *Container) Subscribe(fn func(FormState)) func() {
	c.subMu.Lock()
	defer c.subMu.Unlock()

	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn

	return func() {
		c.subMu.Lock()
		defer c.subMu.Unlock()
		delete(c.subs, id)
	}
}

func (c *Container) notify(s FormState) {
	c.subMu.Lock()
	fns := make([]func(FormState), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.subMu.Unlock()

	for _, fn := range fns {
		fn(s)
	}
}

// Mount seeds the snapshot and restores the last chosen intensity
func (c *Container) Mount(ctx context.Context) error {
	if _, err := c.repo.EnsureDefaultsSeeded(ctx); err != nil {
		return err
	}

	saved, err := c.store.Get(ctx, storage.KeySavedIntensity)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return nil
	case err != nil:
		c.log.Warn("failed to load saved intensity", "error", err)
		return nil
	}

	level, err := models.ParseIntensity(saved)
	if err != nil {
		c.log.Warn("ignoring saved intensity", "value", saved, "error", err)
		return nil
	}
	c.Dispatch(SetIntensityValue(level))
	return nil
}

// SelectExercise changes the exercise and prefills the fields for it
func (c *Container) SelectExercise(ctx context.Context, id models.ExerciseID) error {
	c.Dispatch(SetExerciseOpen(false))
	c.Dispatch(SetExerciseValue(id))
	return c.LoadSavedValues(ctx)
}

// SelectIntensity changes the intensity, remembers it, and prefills the fields
func (c *Container) SelectIntensity(ctx context.Context, level models.Intensity) error {
	if !level.Valid() {
		return fmt.Errorf("invalid intensity: %q", level)
	}
	c.Dispatch(SetIntensityOpen(false))
	c.Dispatch(SetIntensityValue(level))

	var persistErr error
	if err := c.store.Set(ctx, storage.KeySavedIntensity, string(level)); err != nil {
		c.log.Error("failed to save intensity", "intensity", level, "error", err)
		persistErr = fmt.Errorf("failed to save intensity: %w", err)
	}

	return errors.Join(c.LoadSavedValues(ctx), persistErr)
}

// LoadSavedValues prefills the fields for the current selection. Saved
// values win; the catalog minimums are used when nothing was saved or the
// read failed.
func (c *Container) LoadSavedValues(ctx context.Context) error {
	s := c.State()
	if !s.HasSelection() {
		return nil
	}

	values, ok, err := c.repo.LoadSavedValues(ctx, s.ExerciseValue, s.IntensityValue)
	if err != nil || !ok {
		values = exercise.InitialValues(c.catalog, s.ExerciseValue, s.IntensityValue)
	}

	// selection moved on while the read was in flight
	if cur := c.State(); cur.ExerciseValue != s.ExerciseValue || cur.IntensityValue != s.IntensityValue {
		return err
	}
	c.Dispatch(SetAllValues(values))
	return err
}

// SetField updates an input. It is ignored while no exercise is selected.
func (c *Container) SetField(f models.Field, v string) bool {
	if !f.Valid() || !c.State().ExerciseValue.Selected() {
		return false
	}
	c.Dispatch(SetField(f, v))
	return true
}

// FieldStatus derives the validation flag and recommended range for a field
func (c *Container) FieldStatus(f models.Field) FieldStatus {
	s := c.State()
	value := s.Value(f)
	return FieldStatus{
		Value:       value,
		Invalid:     exercise.IsOutOfRange(c.catalog, s.ExerciseValue, s.IntensityValue, f, value),
		Recommended: exercise.FormatRecommendedRange(c.catalog, s.ExerciseValue, s.IntensityValue, f),
	}
}

// Save persists the current value of one field
func (c *Container) Save(ctx context.Context, f models.Field) (int, error) {
	s := c.State()
	return c.repo.SaveValue(ctx, s.ExerciseValue, s.IntensityValue, f, s.Value(f))
}

// ResetAll restores the catalog defaults and clears the form. The form is
// only cleared once the write succeeded.
func (c *Container) ResetAll(ctx context.Context) error {
	if err := c.repo.ResetAllToDefault(ctx); err != nil {
		return err
	}
	c.Dispatch(ResetInputs())
	c.Dispatch(SetExerciseOpen(false))
	c.Dispatch(SetIntensityOpen(false))
	return nil
}
