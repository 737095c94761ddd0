// Package settings persists the per-device exercise snapshot: the user's
// chosen duration, repetitions and rest values for every exercise and
// intensity.
package settings

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/baldog/baldog-terminal/pkg/exercise"
	"github.com/baldog/baldog-terminal/pkg/models"
	"github.com/baldog/baldog-terminal/pkg/storage"
)

// Catalog is the read-only exercise source the repository validates against
type Catalog interface {
	exercise.RangeSource
	All() []models.Exercise
}

// Repository reads and writes the snapshot under storage.KeyExerciseSnapshot
type Repository struct {
	store   storage.Store
	catalog Catalog
	log     *slog.Logger
}

// NewRepository wires a repository; a nil logger discards output
func NewRepository(store storage.Store, catalog Catalog, log *slog.Logger) *Repository {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Repository{store: store, catalog: catalog, log: log}
}

// EnsureDefaultsSeeded writes a catalog copy when no snapshot exists yet.
// It reports whether a write happened.
func (r *Repository) EnsureDefaultsSeeded(ctx context.Context) (bool, error) {
	_, err := r.store.Get(ctx, storage.KeyExerciseSnapshot)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		r.log.Error("failed to check exercise snapshot", "error", err)
		return false, &Error{Kind: KindStorageFailure, Op: OpSeed, Cause: err}
	}

	if err := r.write(ctx, FromCatalog(r.catalog.All())); err != nil {
		r.log.Error("failed to seed exercise snapshot", "error", err)
		return false, &Error{Kind: KindStorageFailure, Op: OpSeed, Cause: err}
	}
	r.log.Info("seeded exercise snapshot from catalog")
	return true, nil
}

// Snapshot returns a copy of the persisted snapshot, or the catalog
// defaults when nothing was written yet
func (r *Repository) Snapshot(ctx context.Context) (Snapshot, error) {
	snap, err := r.read(ctx)
	if err != nil {
		return nil, &Error{Kind: KindStorageFailure, Op: OpLoad, Cause: err}
	}
	return snap, nil
}

// LoadSavedValues returns the saved values for prefilling the form. ok is
// false when the exercise or intensity is not in the snapshot.
func (r *Repository) LoadSavedValues(ctx context.Context, id models.ExerciseID, level models.Intensity) (models.FieldValues, bool, error) {
	raw, err := r.store.Get(ctx, storage.KeyExerciseSnapshot)
	if errors.Is(err, storage.ErrNotFound) {
		return models.FieldValues{}, false, nil
	}
	if err != nil {
		r.log.Error("failed to load exercise data", "exercise", id, "intensity", level, "error", err)
		return models.FieldValues{}, false, &Error{Kind: KindStorageFailure, Op: OpLoad, Cause: err}
	}

	snap, err := decodeSnapshot(raw)
	if err != nil {
		r.log.Error("failed to load exercise data", "exercise", id, "intensity", level, "error", err)
		return models.FieldValues{}, false, &Error{Kind: KindStorageFailure, Op: OpLoad, Cause: err}
	}

	values, ok := snap.Values(id, level)
	return values, ok, nil
}

// Validate checks a candidate against the catalog without touching storage
func (r *Repository) Validate(id models.ExerciseID, level models.Intensity, field models.Field, candidate string) (int, error) {
	if !id.Selected() || level == models.IntensityNone {
		return 0, &Error{Kind: KindSelectionMissing, Op: OpSave, Field: field}
	}

	value := strings.TrimSpace(candidate)
	if value == "" {
		return 0, &Error{Kind: KindFormatInvalid, Op: OpSave, Field: field, Empty: true}
	}

	n, ok := exercise.ParseCount(value)
	if !ok {
		return 0, &Error{Kind: KindFormatInvalid, Op: OpSave, Field: field}
	}

	rng, ok := exercise.RangeFor(r.catalog, id, level, field)
	if !ok {
		return 0, &Error{Kind: KindSelectionMissing, Op: OpSave, Field: field}
	}
	if !rng.Contains(n) {
		return 0, &Error{Kind: KindOutOfRange, Op: OpSave, Field: field, Range: rng}
	}

	return n, nil
}

// SaveValue validates the candidate against the catalog bounds and, only
// when valid, overwrites the field's saved value in the snapshot
func (r *Repository) SaveValue(ctx context.Context, id models.ExerciseID, level models.Intensity, field models.Field, candidate string) (int, error) {
	n, err := r.Validate(id, level, field, candidate)
	if err != nil {
		return 0, err
	}

	snap, err := r.read(ctx)
	if err != nil {
		r.log.Error("failed to save settings", "exercise", id, "field", field, "error", err)
		return 0, &Error{Kind: KindStorageFailure, Op: OpSave, Field: field, Cause: err}
	}

	idx, ok := snap.Find(id)
	if !ok {
		// snapshot predates this exercise; start it from the catalog
		ex := FromCatalog([]models.Exercise{r.lookup(id)})
		snap = append(snap, ex...)
		idx = len(snap) - 1
	}

	if snap[idx].Intensity == nil {
		snap[idx].Intensity = make(map[models.Intensity]models.IntensityRanges)
	}
	ranges, ok := snap[idx].Intensity[level]
	if !ok {
		ranges, _ = r.catalog.Ranges(id, level)
	}
	current, _ := ranges.Get(field)
	current.Min = n
	snap[idx].Intensity[level] = ranges.With(field, current)

	if err := r.write(ctx, snap); err != nil {
		r.log.Error("failed to save settings", "exercise", id, "field", field, "error", err)
		return 0, &Error{Kind: KindStorageFailure, Op: OpSave, Field: field, Cause: err}
	}

	r.log.Info("saved exercise setting", "exercise", id, "intensity", level, "field", field, "value", n)
	return n, nil
}

// ResetAllToDefault overwrites the snapshot with a fresh catalog copy
func (r *Repository) ResetAllToDefault(ctx context.Context) error {
	if err := r.write(ctx, FromCatalog(r.catalog.All())); err != nil {
		r.log.Error("reset failed", "error", err)
		return &Error{Kind: KindStorageFailure, Op: OpReset, Cause: err}
	}
	r.log.Info("reset exercise snapshot to defaults")
	return nil
}

func (r *Repository) lookup(id models.ExerciseID) models.Exercise {
	for _, ex := range r.catalog.All() {
		if ex.ID == id {
			return ex
		}
	}
	return models.Exercise{ID: id, Intensity: map[models.Intensity]models.IntensityRanges{}}
}

func (r *Repository) read(ctx context.Context) (Snapshot, error) {
	raw, err := r.store.Get(ctx, storage.KeyExerciseSnapshot)
	if errors.Is(err, storage.ErrNotFound) {
		return FromCatalog(r.catalog.All()), nil
	}
	if err != nil {
		return nil, err
	}
	return decodeSnapshot(raw)
}

func (r *Repository) write(ctx context.Context, snap Snapshot) error {
	raw, err := encodeSnapshot(snap)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, storage.KeyExerciseSnapshot, raw)
}
