package testhelpers

import "github.com/baldog/baldog-terminal/pkg/models"

// ExerciseBuilder provides a fluent interface for building test exercises
type ExerciseBuilder struct {
	exercise models.Exercise
}

// NewExerciseBuilder creates a new exercise builder with defaults
func NewExerciseBuilder(id models.ExerciseID, name string) *ExerciseBuilder {
	return &ExerciseBuilder{
		exercise: models.Exercise{
			ID:        id,
			Name:      name,
			Category:  "whole-body",
			Intensity: make(map[models.Intensity]models.IntensityRanges),
		},
	}
}

// WithRanges sets the ranges for one intensity
func (b *ExerciseBuilder) WithRanges(level models.Intensity, r models.IntensityRanges) *ExerciseBuilder {
	b.exercise.Intensity[level] = r
	return b
}

// WithCategory sets the category slug
func (b *ExerciseBuilder) WithCategory(slug string) *ExerciseBuilder {
	b.exercise.Category = slug
	return b
}

// WithVideo sets the video reference
func (b *ExerciseBuilder) WithVideo(video string) *ExerciseBuilder {
	b.exercise.Video = video
	return b
}

// WithDescription sets the description
func (b *ExerciseBuilder) WithDescription(desc string) *ExerciseBuilder {
	b.exercise.Description = desc
	return b
}

// Build returns the constructed exercise
func (b *ExerciseBuilder) Build() models.Exercise {
	return b.exercise.Clone()
}
