// Package onboarding tracks whether the welcome slides were shown
package onboarding

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/baldog/baldog-terminal/pkg/storage"
)

// Slide is one welcome page
type Slide struct {
	Title string
	Text  string
}

// Slides are shown in order on first run
var Slides = []Slide{
	{Title: "Welcome to Baldog", Text: "Master your warm-ups and dominate the court!"},
	{Title: "Step-by-Step Drills", Text: "Follow guided exercises to boost your skills."},
	{Title: "Track Your Progress", Text: "Monitor your routines and stay on top of your game."},
}

// Prompt texts for the first-run intensity picker
const (
	IntensityPromptTitle = "Let's Get Started!"
	IntensityPromptText  = "Please select your preference for performing the Basketball Warm-Up Exercise:"
)

// Tracker reads and writes storage.KeyOnboardingShown
type Tracker struct {
	kv storage.Store
}

func NewTracker(kv storage.Store) *Tracker {
	return &Tracker{kv: kv}
}

// Status reports whether onboarding already ran. Missing or garbled values
// count as not shown.
func (t *Tracker) Status(ctx context.Context) (bool, error) {
	raw, err := t.kv.Get(ctx, storage.KeyOnboardingShown)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read onboarding status: %w", err)
	}
	shown, err := strconv.ParseBool(raw)
	if err != nil {
		return false, nil
	}
	return shown, nil
}

// MarkShown records that onboarding finished
func (t *Tracker) MarkShown(ctx context.Context) error {
	if err := t.kv.Set(ctx, storage.KeyOnboardingShown, strconv.FormatBool(true)); err != nil {
		return fmt.Errorf("failed to save onboarding status: %w", err)
	}
	return nil
}

// Reset makes the slides show again on next start
func (t *Tracker) Reset(ctx context.Context) error {
	if err := t.kv.Remove(ctx, storage.KeyOnboardingShown); err != nil {
		return fmt.Errorf("failed to reset onboarding status: %w", err)
	}
	return nil
}
