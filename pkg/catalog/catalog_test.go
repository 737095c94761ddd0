package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baldog/baldog-terminal/pkg/models"
)

func TestDefaultCatalogRangesAreOrdered(t *testing.T) {
	c := Default()
	require.NotZero(t, c.Len())

	for _, ex := range c.All() {
		for _, level := range models.Intensities {
			ranges, ok := c.Ranges(ex.ID, level)
			require.True(t, ok, "%s missing %s", ex.Name, level)
			for _, f := range models.Fields {
				r, _ := ranges.Get(f)
				assert.LessOrEqual(t, r.Min, r.Max, "%s %s %s", ex.Name, level, f)
				assert.GreaterOrEqual(t, r.Min, 0)
			}
		}
	}
}

func TestLookupReturnsCopies(t *testing.T) {
	c := Default()

	ex, ok := c.Lookup(1)
	require.True(t, ok)
	ex.Intensity[models.IntensityBeginner] = models.IntensityRanges{}

	again, _ := c.Lookup(1)
	assert.Equal(t, 10, again.Intensity[models.IntensityBeginner].Duration.Min)
	assert.Equal(t, 30, again.Intensity[models.IntensityBeginner].Duration.Max)
}

func TestLookupUnknown(t *testing.T) {
	_, ok := Default().Lookup(999)
	assert.False(t, ok)

	_, ok = Default().Ranges(1, models.IntensityNone)
	assert.False(t, ok)
}

func TestByCategory(t *testing.T) {
	c := Default()

	tests := []struct {
		slug      string
		wantCount int
	}{
		{CategoryWholeBody, 2},
		{"Upper Body", 2},
		{CategoryAll, c.Len()},
		{"nonexistent", 0},
	}

	for _, tt := range tests {
		t.Run(tt.slug, func(t *testing.T) {
			assert.Len(t, c.ByCategory(tt.slug), tt.wantCount)
		})
	}
}

func TestFeatured(t *testing.T) {
	for _, ex := range Default().Featured() {
		assert.NotEmpty(t, ex.Video)
	}
	assert.NotEmpty(t, Default().Featured())
}

func TestResolve(t *testing.T) {
	c := Default()

	tests := []struct {
		name    string
		ref     string
		wantID  models.ExerciseID
		wantErr bool
	}{
		{"by id", "3", 3, false},
		{"by exact name", "jumping jacks", 1, false},
		{"by slug prefix", "defensive", 6, false},
		{"unknown id", "42", 0, true},
		{"unknown name", "free throws", 0, true},
		{"empty", "  ", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ex, err := c.Resolve(tt.ref)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, ex.ID)
		})
	}
}

func TestNewRejectsInvalidData(t *testing.T) {
	good := ranges(1, 2, 1, 2, 1, 2)
	full := func(r models.IntensityRanges) map[models.Intensity]models.IntensityRanges {
		return map[models.Intensity]models.IntensityRanges{
			models.IntensityBeginner:     r,
			models.IntensityIntermediate: good,
			models.IntensityAdvanced:     good,
		}
	}

	tests := []struct {
		name      string
		exercises []models.Exercise
	}{
		{"missing id", []models.Exercise{{Name: "x", Intensity: full(good)}}},
		{"duplicate id", []models.Exercise{{ID: 1, Intensity: full(good)}, {ID: 1, Intensity: full(good)}}},
		{"min above max", []models.Exercise{{ID: 1, Intensity: full(ranges(5, 1, 1, 2, 1, 2))}}},
		{"negative min", []models.Exercise{{ID: 1, Intensity: full(ranges(-1, 1, 1, 2, 1, 2))}}},
		{"missing intensity", []models.Exercise{{ID: 1, Intensity: map[models.Intensity]models.IntensityRanges{}}}},
		{"unknown category", []models.Exercise{{ID: 1, Category: "nope", Intensity: full(good)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(nil, tt.exercises)
			assert.Error(t, err)
		})
	}
}
