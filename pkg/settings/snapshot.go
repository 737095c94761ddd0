package settings

import (
	"encoding/json"
	"fmt"

	"github.com/baldog/baldog-terminal/pkg/models"
)

// Entry mirrors one catalog exercise. Each field's Min holds the user's
// last saved value; Max stays the catalog bound.
type Entry struct {
	ID        models.ExerciseID                           `json:"id" yaml:"id"`
	Intensity map[models.Intensity]models.IntensityRanges `json:"intensity" yaml:"intensity"`
}

// Snapshot is the persisted per-device copy of the catalog
type Snapshot []Entry

// FromCatalog builds a verbatim snapshot of the catalog exercises
func FromCatalog(exercises []models.Exercise) Snapshot {
	snap := make(Snapshot, 0, len(exercises))
	for _, ex := range exercises {
		c := ex.Clone()
		snap = append(snap, Entry{ID: c.ID, Intensity: c.Intensity})
	}
	return snap
}

// Find returns the index of an exercise entry
func (s Snapshot) Find(id models.ExerciseID) (int, bool) {
	for i, e := range s {
		if e.ID == id {
			return i, true
		}
	}
	return -1, false
}

// Values returns the saved values for an exercise and intensity as form strings
func (s Snapshot) Values(id models.ExerciseID, level models.Intensity) (models.FieldValues, bool) {
	idx, ok := s.Find(id)
	if !ok {
		return models.FieldValues{}, false
	}
	r, ok := s[idx].Intensity[level]
	if !ok {
		return models.FieldValues{}, false
	}
	return models.FieldValues{
		Duration:     fmt.Sprint(r.Duration.Min),
		Repetitions:  fmt.Sprint(r.Repetitions.Min),
		RestDuration: fmt.Sprint(r.RestDuration.Min),
	}, true
}

// Clone deep copies the snapshot
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	for i, e := range s {
		m := make(map[models.Intensity]models.IntensityRanges, len(e.Intensity))
		for k, v := range e.Intensity {
			m[k] = v
		}
		out[i] = Entry{ID: e.ID, Intensity: m}
	}
	return out
}

func decodeSnapshot(raw string) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	return snap, nil
}

func encodeSnapshot(snap Snapshot) (string, error) {
	data, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return string(data), nil
}
