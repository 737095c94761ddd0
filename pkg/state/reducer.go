// Package state owns the in-session settings form: a pure reducer over
// FormState and a Container that pairs it with the settings repository.
package state

import "github.com/baldog/baldog-terminal/pkg/models"

// FormState is the settings form as the user sees it
type FormState struct {
	ExerciseOpen   bool              `json:"exerciseOpen" yaml:"exerciseOpen"`
	ExerciseValue  models.ExerciseID `json:"exerciseValue" yaml:"exerciseValue"`
	IntensityOpen  bool              `json:"intensityOpen" yaml:"intensityOpen"`
	IntensityValue models.Intensity  `json:"intensityValue" yaml:"intensityValue"`
	Duration       string            `json:"duration" yaml:"duration"`
	Repetitions    string            `json:"repetitions" yaml:"repetitions"`
	RestDuration   string            `json:"restDuration" yaml:"restDuration"`
}

// InitialState is the form at mount time
func InitialState() FormState {
	return FormState{IntensityValue: models.DefaultIntensity}
}

// Values returns the three editable fields
func (s FormState) Values() models.FieldValues {
	return models.FieldValues{
		Duration:     s.Duration,
		Repetitions:  s.Repetitions,
		RestDuration: s.RestDuration,
	}
}

// Value returns one editable field
func (s FormState) Value(f models.Field) string {
	return s.Values().Get(f)
}

// HasSelection reports whether both an exercise and an intensity are chosen
func (s FormState) HasSelection() bool {
	return s.ExerciseValue.Selected() && s.IntensityValue != models.IntensityNone
}

// ActionType names a state transition
type ActionType string

const (
	ActionSetExerciseOpen   ActionType = "SET_EXERCISE_OPEN"
	ActionSetExerciseValue  ActionType = "SET_EXERCISE_VALUE"
	ActionSetIntensityOpen  ActionType = "SET_INTENSITY_OPEN"
	ActionSetIntensityValue ActionType = "SET_INTENSITY_VALUE"
	ActionSetDuration       ActionType = "SET_DURATION"
	ActionSetRepetitions    ActionType = "SET_REPETITIONS"
	ActionSetRestDuration   ActionType = "SET_REST_DURATION"
	ActionResetInputs       ActionType = "RESET_INPUTS"
	ActionSetAllValues      ActionType = "SET_ALL_VALUES"
)

// Action carries a type and the payload field that type reads
type Action struct {
	Type      ActionType
	Open      bool
	Exercise  models.ExerciseID
	Intensity models.Intensity
	Value     string
	Values    models.FieldValues
}

// Reduce applies one action. Unknown types return s unchanged.
func Reduce(s FormState, a Action) FormState {
	switch a.Type {
	case ActionSetExerciseOpen:
		s.ExerciseOpen = a.Open
	case ActionSetExerciseValue:
		s.ExerciseValue = a.Exercise
		if !a.Exercise.Selected() {
			s = clearFields(s)
		}
	case ActionSetIntensityOpen:
		s.IntensityOpen = a.Open
	case ActionSetIntensityValue:
		s.IntensityValue = a.Intensity
	case ActionSetDuration:
		s.Duration = a.Value
	case ActionSetRepetitions:
		s.Repetitions = a.Value
	case ActionSetRestDuration:
		s.RestDuration = a.Value
	case ActionResetInputs:
		s.ExerciseValue = models.NoExercise
		s = clearFields(s)
	case ActionSetAllValues:
		s.Duration = a.Values.Duration
		s.Repetitions = a.Values.Repetitions
		s.RestDuration = a.Values.RestDuration
	}
	return s
}

func clearFields(s FormState) FormState {
	s.Duration = ""
	s.Repetitions = ""
	s.RestDuration = ""
	return s
}

func SetExerciseOpen(open bool) Action {
	return Action{Type: ActionSetExerciseOpen, Open: open}
}

func SetExerciseValue(id models.ExerciseID) Action {
	return Action{Type: ActionSetExerciseValue, Exercise: id}
}

func SetIntensityOpen(open bool) Action {
	return Action{Type: ActionSetIntensityOpen, Open: open}
}

func SetIntensityValue(level models.Intensity) Action {
	return Action{Type: ActionSetIntensityValue, Intensity: level}
}

func SetDuration(v string) Action {
	return Action{Type: ActionSetDuration, Value: v}
}

func SetRepetitions(v string) Action {
	return Action{Type: ActionSetRepetitions, Value: v}
}

func SetRestDuration(v string) Action {
	return Action{Type: ActionSetRestDuration, Value: v}
}

func ResetInputs() Action {
	return Action{Type: ActionResetInputs}
}

func SetAllValues(v models.FieldValues) Action {
	return Action{Type: ActionSetAllValues, Values: v}
}

// SetField picks the creator for a field. Unknown fields yield a no-op action.
func SetField(f models.Field, v string) Action {
	switch f {
	case models.FieldDuration:
		return SetDuration(v)
	case models.FieldRepetitions:
		return SetRepetitions(v)
	case models.FieldRestDuration:
		return SetRestDuration(v)
	}
	return Action{}
}
