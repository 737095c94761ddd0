package models

import (
	"fmt"
	"strings"
)

// Intensity selects which recommended range applies to an exercise.
type Intensity string

const (
	IntensityNone         Intensity = ""
	IntensityBeginner     Intensity = "beginner"
	IntensityIntermediate Intensity = "intermediate"
	IntensityAdvanced     Intensity = "advanced"

	DefaultIntensity = IntensityBeginner
)

// Intensities lists the levels in display order
var Intensities = []Intensity{IntensityBeginner, IntensityIntermediate, IntensityAdvanced}

// Valid reports whether i is one of the three known levels
func (i Intensity) Valid() bool {
	switch i {
	case IntensityBeginner, IntensityIntermediate, IntensityAdvanced:
		return true
	}
	return false
}

// Label returns the capitalized display label
func (i Intensity) Label() string {
	if i == IntensityNone {
		return ""
	}
	s := string(i)
	return strings.ToUpper(s[:1]) + s[1:]
}

// ParseIntensity accepts any casing of a level name
func ParseIntensity(s string) (Intensity, error) {
	i := Intensity(strings.ToLower(strings.TrimSpace(s)))
	if !i.Valid() {
		return IntensityNone, fmt.Errorf("invalid intensity: %s (must be: beginner, intermediate, or advanced)", s)
	}
	return i, nil
}

// Field is one of the three user-configurable numeric settings
type Field string

const (
	FieldDuration     Field = "duration"
	FieldRepetitions  Field = "repetitions"
	FieldRestDuration Field = "restDuration"
)

// Fields lists the configurable fields in form order
var Fields = []Field{FieldDuration, FieldRepetitions, FieldRestDuration}

func (f Field) Valid() bool {
	switch f {
	case FieldDuration, FieldRepetitions, FieldRestDuration:
		return true
	}
	return false
}

// Label returns the human readable name used in alerts ("Rest duration")
func (f Field) Label() string {
	switch f {
	case FieldDuration:
		return "Duration"
	case FieldRepetitions:
		return "Repetitions"
	case FieldRestDuration:
		return "Rest duration"
	}
	return string(f)
}

// Unit is "reps" for repetitions and "seconds" for the timed fields
func (f Field) Unit() string {
	if f == FieldRepetitions {
		return "reps"
	}
	return "seconds"
}

// ParseField accepts the canonical names plus a few CLI-friendly aliases
func ParseField(s string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "duration", "dur":
		return FieldDuration, nil
	case "repetitions", "reps":
		return FieldRepetitions, nil
	case "restduration", "rest-duration", "rest_duration", "rest":
		return FieldRestDuration, nil
	}
	return "", fmt.Errorf("invalid field: %s (must be: duration, repetitions, or restDuration)", s)
}

// Range is an inclusive {min, max} pair
type Range struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

// Contains reports whether n lies in [Min, Max]
func (r Range) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

// IntensityRanges holds the three field ranges for one intensity level
type IntensityRanges struct {
	Duration     Range `json:"duration" yaml:"duration"`
	Repetitions  Range `json:"repetitions" yaml:"repetitions"`
	RestDuration Range `json:"restDuration" yaml:"restDuration"`
}

// Get returns the range for a field
func (r IntensityRanges) Get(f Field) (Range, bool) {
	switch f {
	case FieldDuration:
		return r.Duration, true
	case FieldRepetitions:
		return r.Repetitions, true
	case FieldRestDuration:
		return r.RestDuration, true
	}
	return Range{}, false
}

// With returns a copy with the field's range replaced
func (r IntensityRanges) With(f Field, rng Range) IntensityRanges {
	switch f {
	case FieldDuration:
		r.Duration = rng
	case FieldRepetitions:
		r.Repetitions = rng
	case FieldRestDuration:
		r.RestDuration = rng
	}
	return r
}

// ExerciseID identifies a catalog exercise. NoExercise is the empty selection.
type ExerciseID int

const NoExercise ExerciseID = 0

func (id ExerciseID) Selected() bool {
	return id != NoExercise
}

// Exercise is a static catalog entry
type Exercise struct {
	ID          ExerciseID                    `json:"id" yaml:"id"`
	Name        string                        `json:"name" yaml:"name"`
	Category    string                        `json:"category" yaml:"category"`
	Description string                        `json:"description" yaml:"description"`
	Video       string                        `json:"video,omitempty" yaml:"video,omitempty"`
	Intensity   map[Intensity]IntensityRanges `json:"intensity" yaml:"intensity"`
}

// Ranges returns the ranges for one intensity level
func (e Exercise) Ranges(level Intensity) (IntensityRanges, bool) {
	r, ok := e.Intensity[level]
	return r, ok
}

// Clone deep copies the intensity map
func (e Exercise) Clone() Exercise {
	c := e
	c.Intensity = make(map[Intensity]IntensityRanges, len(e.Intensity))
	for k, v := range e.Intensity {
		c.Intensity[k] = v
	}
	return c
}

// FieldValues are the three form fields as typed strings
type FieldValues struct {
	Duration     string `json:"duration" yaml:"duration"`
	Repetitions  string `json:"repetitions" yaml:"repetitions"`
	RestDuration string `json:"restDuration" yaml:"restDuration"`
}

// Get returns the value of a field
func (v FieldValues) Get(f Field) string {
	switch f {
	case FieldDuration:
		return v.Duration
	case FieldRepetitions:
		return v.Repetitions
	case FieldRestDuration:
		return v.RestDuration
	}
	return ""
}

// IsEmpty reports whether all three fields are blank
func (v FieldValues) IsEmpty() bool {
	return v.Duration == "" && v.Repetitions == "" && v.RestDuration == ""
}
