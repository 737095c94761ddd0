// Package warmup runs a guided sequence of exercises: a rest countdown
// before each exercise, then the exercise itself.
package warmup

import (
	"errors"
	"time"

	"github.com/baldog/baldog-terminal/pkg/models"
	"github.com/baldog/baldog-terminal/pkg/settings"
)

// Step is one exercise with its timings resolved
type Step struct {
	Exercise    models.Exercise
	Duration    time.Duration
	Rest        time.Duration
	Repetitions int
}

// Plan is the ordered list of steps for one intensity
type Plan struct {
	Intensity models.Intensity
	Steps     []Step
}

// ErrEmptyPlan is returned when there is nothing to run
var ErrEmptyPlan = errors.New("no exercises to run")

// BuildPlan resolves timings from the saved snapshot, falling back to the
// catalog minimums for anything not saved
func BuildPlan(exercises []models.Exercise, level models.Intensity, snap settings.Snapshot) (Plan, error) {
	if len(exercises) == 0 {
		return Plan{}, ErrEmptyPlan
	}
	if !level.Valid() {
		level = models.DefaultIntensity
	}

	plan := Plan{Intensity: level, Steps: make([]Step, 0, len(exercises))}
	for _, ex := range exercises {
		ranges, _ := ex.Ranges(level)
		if idx, ok := snap.Find(ex.ID); ok {
			if saved, ok := snap[idx].Intensity[level]; ok {
				ranges = saved
			}
		}
		plan.Steps = append(plan.Steps, Step{
			Exercise:    ex,
			Duration:    seconds(ranges.Duration.Min),
			Rest:        seconds(ranges.RestDuration.Min),
			Repetitions: ranges.Repetitions.Min,
		})
	}
	return plan, nil
}

// Total is the planned length including rests
func (p Plan) Total() time.Duration {
	var d time.Duration
	for _, s := range p.Steps {
		d += s.Duration + s.Rest
	}
	return d
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
