package exercise

import "github.com/baldog/baldog-terminal/pkg/models"

// Placeholder label for the empty exercise choice
const SelectExerciseLabel = "Select an Exercise..."

// Item is one dropdown option
type Item[T comparable] struct {
	Label string
	Value T
}

// ExerciseItems builds the exercise dropdown with a leading empty choice
func ExerciseItems(exercises []models.Exercise) []Item[models.ExerciseID] {
	items := make([]Item[models.ExerciseID], 0, len(exercises)+1)
	items = append(items, Item[models.ExerciseID]{Label: SelectExerciseLabel, Value: models.NoExercise})
	for _, ex := range exercises {
		items = append(items, Item[models.ExerciseID]{Label: ex.Name, Value: ex.ID})
	}
	return items
}

// IntensityItems builds the intensity dropdown
func IntensityItems() []Item[models.Intensity] {
	items := make([]Item[models.Intensity], 0, len(models.Intensities))
	for _, level := range models.Intensities {
		items = append(items, Item[models.Intensity]{Label: level.Label(), Value: level})
	}
	return items
}

// IndexOf returns the position of value in items, or 0 when absent
func IndexOf[T comparable](items []Item[T], value T) int {
	for i, item := range items {
		if item.Value == value {
			return i
		}
	}
	return 0
}
