// Package catalog holds the bundled basketball warm-up exercises and their
// recommended ranges per intensity. The catalog is read-only: every accessor
// hands out copies.
package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/baldog/baldog-terminal/pkg/models"
)

// Category slugs
const (
	CategoryWholeBody = "whole-body"
	CategoryUpperBody = "upper-body"
	CategoryLowerBody = "lower-body"
	CategoryDynamic   = "dynamic"
	CategoryAll       = "all"
)

// Catalog is an immutable list of exercises grouped by category
type Catalog struct {
	categories []models.Category
	exercises  []models.Exercise
	byID       map[models.ExerciseID]int
}

// New validates and indexes the given data
func New(categories []models.Category, exercises []models.Exercise) (*Catalog, error) {
	c := &Catalog{
		categories: make([]models.Category, len(categories)),
		exercises:  make([]models.Exercise, 0, len(exercises)),
		byID:       make(map[models.ExerciseID]int, len(exercises)),
	}
	copy(c.categories, categories)

	known := make(map[string]bool, len(categories))
	for _, cat := range categories {
		known[cat.Slug] = true
	}

	for _, ex := range exercises {
		if !ex.ID.Selected() {
			return nil, fmt.Errorf("exercise %q has no id", ex.Name)
		}
		if _, dup := c.byID[ex.ID]; dup {
			return nil, fmt.Errorf("duplicate exercise id %d", ex.ID)
		}
		if ex.Category != "" && !known[ex.Category] {
			return nil, fmt.Errorf("exercise %q references unknown category %q", ex.Name, ex.Category)
		}
		for _, level := range models.Intensities {
			ranges, ok := ex.Intensity[level]
			if !ok {
				return nil, fmt.Errorf("exercise %q is missing %s ranges", ex.Name, level)
			}
			for _, f := range models.Fields {
				r, _ := ranges.Get(f)
				if r.Min < 0 || r.Min > r.Max {
					return nil, fmt.Errorf("exercise %q %s %s range %d-%d is invalid", ex.Name, level, f, r.Min, r.Max)
				}
			}
		}
		c.byID[ex.ID] = len(c.exercises)
		c.exercises = append(c.exercises, ex.Clone())
	}

	return c, nil
}

// MustNew is New for package-level data that is known to be valid
func MustNew(categories []models.Category, exercises []models.Exercise) *Catalog {
	c, err := New(categories, exercises)
	if err != nil {
		panic(err)
	}
	return c
}

var defaultCatalog = MustNew(defaultCategories(), defaultExercises())

// Default returns the bundled catalog
func Default() *Catalog {
	return defaultCatalog
}

// Len returns the number of exercises
func (c *Catalog) Len() int {
	return len(c.exercises)
}

// All returns every exercise in catalog order
func (c *Catalog) All() []models.Exercise {
	out := make([]models.Exercise, len(c.exercises))
	for i, ex := range c.exercises {
		out[i] = ex.Clone()
	}
	return out
}

// Lookup finds an exercise by id
func (c *Catalog) Lookup(id models.ExerciseID) (models.Exercise, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return models.Exercise{}, false
	}
	return c.exercises[idx].Clone(), true
}

// Ranges returns the recommended ranges for an exercise at one intensity
func (c *Catalog) Ranges(id models.ExerciseID, level models.Intensity) (models.IntensityRanges, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return models.IntensityRanges{}, false
	}
	r, ok := c.exercises[idx].Intensity[level]
	return r, ok
}

// Categories returns the categories in display order
func (c *Catalog) Categories() []models.Category {
	out := make([]models.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Category looks up a category by slug
func (c *Catalog) Category(slug string) (models.Category, bool) {
	slug = models.NormalizeSlug(slug)
	for _, cat := range c.categories {
		if cat.Slug == slug {
			return cat, true
		}
	}
	return models.Category{}, false
}

// ByCategory returns the exercises for a category slug; "all" returns everything
func (c *Catalog) ByCategory(slug string) []models.Exercise {
	slug = models.NormalizeSlug(slug)
	if slug == CategoryAll || slug == "" {
		return c.All()
	}

	var out []models.Exercise
	for _, ex := range c.exercises {
		if ex.Category == slug {
			out = append(out, ex.Clone())
		}
	}
	return out
}

// Featured returns the exercises that carry a video clip
func (c *Catalog) Featured() []models.Exercise {
	var out []models.Exercise
	for _, ex := range c.exercises {
		if ex.Video != "" {
			out = append(out, ex.Clone())
		}
	}
	return out
}

// Resolve finds an exercise by numeric id, exact name or slugged name
func (c *Catalog) Resolve(ref string) (models.Exercise, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return models.Exercise{}, errors.New("exercise reference cannot be empty")
	}

	if n, err := strconv.Atoi(ref); err == nil {
		if ex, ok := c.Lookup(models.ExerciseID(n)); ok {
			return ex, nil
		}
		return models.Exercise{}, fmt.Errorf("exercise %d not found", n)
	}

	slug := models.NormalizeSlug(ref)
	var matches []models.Exercise
	for _, ex := range c.exercises {
		if strings.EqualFold(ex.Name, ref) {
			return ex.Clone(), nil
		}
		if strings.HasPrefix(models.NormalizeSlug(ex.Name), slug) {
			matches = append(matches, ex)
		}
	}

	switch len(matches) {
	case 0:
		return models.Exercise{}, fmt.Errorf("exercise '%s' not found", ref)
	case 1:
		return matches[0].Clone(), nil
	default:
		return models.Exercise{}, fmt.Errorf("multiple exercises match '%s'. Please use the exercise id", ref)
	}
}
