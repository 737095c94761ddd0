package testhelpers

import (
	"github.com/baldog/baldog-terminal/pkg/catalog"
	"github.com/baldog/baldog-terminal/pkg/models"
)

// Common test data constants
var (
	// ScenarioExerciseID has beginner duration 10-30
	ScenarioExerciseID models.ExerciseID = 1
	// SecondExerciseID has beginner duration 5-10
	SecondExerciseID models.ExerciseID = 2

	ValidName       = "Bob"
	TooLongName     = "12characters!"
	DefaultUserName = "Taguro"
)

// Ranges builds an IntensityRanges from six bounds: duration, reps, rest
func Ranges(dMin, dMax, rMin, rMax, restMin, restMax int) models.IntensityRanges {
	return models.IntensityRanges{
		Duration:     models.Range{Min: dMin, Max: dMax},
		Repetitions:  models.Range{Min: rMin, Max: rMax},
		RestDuration: models.Range{Min: restMin, Max: restMax},
	}
}

// SmallCatalog returns a two-exercise catalog with easy-to-reason ranges
func SmallCatalog() *catalog.Catalog {
	return catalog.MustNew(
		[]models.Category{{Slug: "whole-body", Title: "Whole Body Exercises"}},
		[]models.Exercise{
			NewExerciseBuilder(1, "Jumping Jacks").
				WithRanges(models.IntensityBeginner, Ranges(10, 30, 10, 20, 15, 30)).
				WithRanges(models.IntensityIntermediate, Ranges(30, 45, 20, 30, 10, 20)).
				WithRanges(models.IntensityAdvanced, Ranges(45, 60, 30, 40, 5, 15)).
				WithVideo("videos/jumping-jacks.mp4").
				Build(),
			NewExerciseBuilder(2, "High Knees").
				WithRanges(models.IntensityBeginner, Ranges(5, 10, 1, 3, 20, 25)).
				WithRanges(models.IntensityIntermediate, Ranges(10, 20, 3, 6, 15, 20)).
				WithRanges(models.IntensityAdvanced, Ranges(20, 30, 6, 9, 10, 15)).
				Build(),
		},
	)
}
