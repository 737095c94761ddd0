package catalog

import "github.com/baldog/baldog-terminal/pkg/models"

func defaultCategories() []models.Category {
	return []models.Category{
		{Slug: CategoryWholeBody, Title: "Whole Body Exercises", Color: "#e67e22"},
		{Slug: CategoryUpperBody, Title: "Upper Body Activation", Color: "#3498db"},
		{Slug: CategoryLowerBody, Title: "Lower Body Activation", Color: "#2ecc71"},
		{Slug: CategoryDynamic, Title: "Dynamic Exercises"},
	}
}

// ranges is shorthand for the table below: duration, repetitions, rest
func ranges(dMin, dMax, rMin, rMax, restMin, restMax int) models.IntensityRanges {
	return models.IntensityRanges{
		Duration:     models.Range{Min: dMin, Max: dMax},
		Repetitions:  models.Range{Min: rMin, Max: rMax},
		RestDuration: models.Range{Min: restMin, Max: restMax},
	}
}

func defaultExercises() []models.Exercise {
	return []models.Exercise{
		{
			ID:          1,
			Name:        "Jumping Jacks",
			Category:    CategoryWholeBody,
			Description: "Jump while spreading the legs and raising the arms overhead, then return. Keep a steady rhythm to raise the heart rate before practice.",
			Video:       "videos/jumping-jacks.mp4",
			Intensity: map[models.Intensity]models.IntensityRanges{
				models.IntensityBeginner:     ranges(10, 30, 10, 20, 15, 30),
				models.IntensityIntermediate: ranges(30, 45, 20, 30, 10, 20),
				models.IntensityAdvanced:     ranges(45, 60, 30, 40, 5, 15),
			},
		},
		{
			ID:          2,
			Name:        "High Knees",
			Category:    CategoryWholeBody,
			Description: "Run in place driving each knee up to hip height. Stay on the balls of the feet and pump the arms.",
			Video:       "videos/high-knees.mp4",
			Intensity: map[models.Intensity]models.IntensityRanges{
				models.IntensityBeginner:     ranges(15, 30, 10, 20, 20, 30),
				models.IntensityIntermediate: ranges(30, 45, 20, 30, 15, 25),
				models.IntensityAdvanced:     ranges(45, 60, 30, 50, 10, 20),
			},
		},
		{
			ID:          3,
			Name:        "Arm Circles",
			Category:    CategoryUpperBody,
			Description: "Extend both arms to the sides and draw small circles, growing them gradually. Reverse direction halfway through.",
			Intensity: map[models.Intensity]models.IntensityRanges{
				models.IntensityBeginner:     ranges(15, 30, 10, 15, 10, 20),
				models.IntensityIntermediate: ranges(20, 40, 15, 20, 10, 15),
				models.IntensityAdvanced:     ranges(30, 45, 20, 30, 5, 10),
			},
		},
		{
			ID:          4,
			Name:        "Ball Slaps",
			Category:    CategoryUpperBody,
			Description: "Hold the ball in front of the chest and slap it hard from hand to hand to wake up the fingers and wrists.",
			Video:       "videos/ball-slaps.mp4",
			Intensity: map[models.Intensity]models.IntensityRanges{
				models.IntensityBeginner:     ranges(10, 20, 15, 25, 10, 20),
				models.IntensityIntermediate: ranges(20, 30, 25, 35, 10, 15),
				models.IntensityAdvanced:     ranges(30, 40, 35, 50, 5, 10),
			},
		},
		{
			ID:          5,
			Name:        "Walking Lunges",
			Category:    CategoryLowerBody,
			Description: "Step forward and lower the back knee toward the floor, then drive up into the next step. Keep the chest tall.",
			Intensity: map[models.Intensity]models.IntensityRanges{
				models.IntensityBeginner:     ranges(20, 40, 6, 10, 20, 40),
				models.IntensityIntermediate: ranges(30, 50, 10, 14, 15, 30),
				models.IntensityAdvanced:     ranges(40, 60, 14, 20, 10, 20),
			},
		},
		{
			ID:          6,
			Name:        "Defensive Slides",
			Category:    CategoryLowerBody,
			Description: "From a low defensive stance slide laterally without crossing the feet. Touch the lane line and return.",
			Video:       "videos/defensive-slides.mp4",
			Intensity: map[models.Intensity]models.IntensityRanges{
				models.IntensityBeginner:     ranges(15, 30, 4, 8, 20, 40),
				models.IntensityIntermediate: ranges(30, 45, 8, 12, 15, 30),
				models.IntensityAdvanced:     ranges(45, 60, 12, 16, 10, 20),
			},
		},
		{
			ID:          7,
			Name:        "Carioca",
			Category:    CategoryDynamic,
			Description: "Move sideways crossing the trailing leg in front and then behind the lead leg while rotating the hips.",
			Intensity: map[models.Intensity]models.IntensityRanges{
				models.IntensityBeginner:     ranges(20, 30, 2, 4, 20, 30),
				models.IntensityIntermediate: ranges(30, 40, 4, 6, 15, 25),
				models.IntensityAdvanced:     ranges(40, 50, 6, 8, 10, 20),
			},
		},
		{
			ID:          8,
			Name:        "Skips for Height",
			Category:    CategoryDynamic,
			Description: "Skip down the court driving the lead knee up and reaching high with the opposite arm on every take-off.",
			Video:       "videos/skips-for-height.mp4",
			Intensity: map[models.Intensity]models.IntensityRanges{
				models.IntensityBeginner:     ranges(15, 30, 6, 10, 20, 30),
				models.IntensityIntermediate: ranges(25, 40, 10, 14, 15, 25),
				models.IntensityAdvanced:     ranges(35, 50, 14, 20, 10, 15),
			},
		},
	}
}
