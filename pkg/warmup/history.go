package warmup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/baldog/baldog-terminal/pkg/models"
	"github.com/baldog/baldog-terminal/pkg/storage"
)

// Record is one completed warm-up
type Record struct {
	ID          string           `json:"id" yaml:"id"`
	Intensity   models.Intensity `json:"intensity" yaml:"intensity"`
	Exercises   int              `json:"exercises" yaml:"exercises"`
	Seconds     int              `json:"seconds" yaml:"seconds"`
	StartedAt   time.Time        `json:"startedAt" yaml:"startedAt"`
	CompletedAt time.Time        `json:"completedAt" yaml:"completedAt"`
}

// ErrNotFinished is returned when recording a session that is still running
var ErrNotFinished = errors.New("warm-up session is not finished")

// NewRecord summarizes a finished session
func NewRecord(s *Session) (Record, error) {
	if !s.Done() {
		return Record{}, ErrNotFinished
	}
	return Record{
		ID:          uuid.New().String(),
		Intensity:   s.Plan().Intensity,
		Exercises:   s.Len(),
		Seconds:     int(s.Elapsed() / time.Second),
		StartedAt:   s.StartedAt(),
		CompletedAt: s.CompletedAt(),
	}, nil
}

// History appends records under storage.KeyWarmupHistory
type History struct {
	kv storage.Store
}

func NewHistory(kv storage.Store) *History {
	return &History{kv: kv}
}

// List returns records oldest first
func (h *History) List(ctx context.Context) ([]Record, error) {
	raw, err := h.kv.Get(ctx, storage.KeyWarmupHistory)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	var records []Record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, fmt.Errorf("failed to parse history: %w", err)
	}
	return records, nil
}

// Append adds a record and writes the whole list back
func (h *History) Append(ctx context.Context, rec Record) error {
	if _, err := uuid.Parse(rec.ID); err != nil {
		return fmt.Errorf("invalid record id %q: %w", rec.ID, err)
	}

	records, err := h.List(ctx)
	if err != nil {
		return err
	}
	records = append(records, rec)

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	if err := h.kv.Set(ctx, storage.KeyWarmupHistory, string(data)); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}
	return nil
}

// Clear removes all records
func (h *History) Clear(ctx context.Context) error {
	if err := h.kv.Remove(ctx, storage.KeyWarmupHistory); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}
