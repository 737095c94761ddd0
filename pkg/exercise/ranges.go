// Package exercise derives recommended ranges and validation state for the
// settings form. Everything here is pure and synchronous so it can run on
// every keystroke.
package exercise

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/baldog/baldog-terminal/pkg/models"
)

// NotAvailable is shown instead of a range when nothing is selected
const NotAvailable = "N/A"

// RangeSource is the part of the catalog the helpers need
type RangeSource interface {
	Ranges(id models.ExerciseID, level models.Intensity) (models.IntensityRanges, bool)
}

var digitsOnly = regexp.MustCompile(`^\d+$`)

// RangeFor returns the catalog range for a field. ok is false when the
// exercise or intensity is unselected or unknown.
func RangeFor(src RangeSource, id models.ExerciseID, level models.Intensity, field models.Field) (models.Range, bool) {
	if !id.Selected() || level == models.IntensityNone {
		return models.Range{}, false
	}
	ranges, ok := src.Ranges(id, level)
	if !ok {
		return models.Range{}, false
	}
	return ranges.Get(field)
}

// ParseCount parses a non-negative integer string. Signs, spaces and
// decimals are rejected. Digit strings too large for int saturate at
// math.MaxInt so they still compare above every range.
func ParseCount(candidate string) (int, bool) {
	if !digitsOnly.MatchString(candidate) {
		return 0, false
	}
	n, err := strconv.Atoi(candidate)
	if errors.Is(err, strconv.ErrRange) {
		return math.MaxInt, true
	}
	if err != nil {
		return 0, false
	}
	return n, true
}

// IsOutOfRange reports whether candidate should be flagged in the form.
// Unselected state, empty input and input that is not yet a number are
// never flagged so typing is not interrupted.
func IsOutOfRange(src RangeSource, id models.ExerciseID, level models.Intensity, field models.Field, candidate string) bool {
	if !id.Selected() || level == models.IntensityNone {
		return false
	}
	if candidate == "" {
		return false
	}
	n, ok := ParseCount(candidate)
	if !ok {
		return false
	}
	r, ok := RangeFor(src, id, level, field)
	if !ok {
		return false
	}
	return !r.Contains(n)
}

// FormatRange renders "10-30 seconds" or "5-10 reps"
func FormatRange(field models.Field, r models.Range) string {
	return fmt.Sprintf("%d-%d %s", r.Min, r.Max, field.Unit())
}

// FormatRecommendedRange renders the recommended range label for a field
func FormatRecommendedRange(src RangeSource, id models.ExerciseID, level models.Intensity, field models.Field) string {
	r, ok := RangeFor(src, id, level, field)
	if !ok {
		return NotAvailable
	}
	return FormatRange(field, r)
}

// InitialValues returns the catalog minimums as form strings, or empty
// values when nothing is selected
func InitialValues(src RangeSource, id models.ExerciseID, level models.Intensity) models.FieldValues {
	if !id.Selected() || level == models.IntensityNone {
		return models.FieldValues{}
	}
	ranges, ok := src.Ranges(id, level)
	if !ok {
		return models.FieldValues{}
	}
	return models.FieldValues{
		Duration:     strconv.Itoa(ranges.Duration.Min),
		Repetitions:  strconv.Itoa(ranges.Repetitions.Min),
		RestDuration: strconv.Itoa(ranges.RestDuration.Min),
	}
}
