package settings

import (
	"errors"
	"fmt"

	"github.com/baldog/baldog-terminal/pkg/models"
)

// Kind categorizes why a settings operation failed
type Kind int

const (
	KindUnknown Kind = iota
	// KindSelectionMissing: no exercise and/or no intensity chosen
	KindSelectionMissing
	// KindFormatInvalid: empty or not a non-negative integer
	KindFormatInvalid
	// KindOutOfRange: parsed value outside the catalog range
	KindOutOfRange
	// KindStorageFailure: the store read or write failed
	KindStorageFailure
)

func (k Kind) String() string {
	switch k {
	case KindSelectionMissing:
		return "selection missing"
	case KindFormatInvalid:
		return "format invalid"
	case KindOutOfRange:
		return "out of range"
	case KindStorageFailure:
		return "storage failure"
	}
	return "unknown"
}

// Operations reported in storage failures
const (
	OpSeed  = "seed"
	OpLoad  = "load"
	OpSave  = "save"
	OpReset = "reset"
)

// Sentinels for errors.Is matching by kind
var (
	ErrSelectionMissing = &Error{Kind: KindSelectionMissing}
	ErrFormatInvalid    = &Error{Kind: KindFormatInvalid}
	ErrOutOfRange       = &Error{Kind: KindOutOfRange}
	ErrStorageFailure   = &Error{Kind: KindStorageFailure}
)

// Error is returned by every Repository operation that can fail
type Error struct {
	Kind  Kind
	Op    string
	Field models.Field
	Range models.Range // set for KindOutOfRange
	Empty bool         // KindFormatInvalid caused by a blank value
	Cause error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindSelectionMissing:
		return "no exercise or intensity selected"
	case KindFormatInvalid:
		if e.Empty {
			return fmt.Sprintf("%s cannot be empty", e.Field)
		}
		return fmt.Sprintf("%s must be a valid number", e.Field)
	case KindOutOfRange:
		return fmt.Sprintf("%s must be between %d and %d", e.Field, e.Range.Min, e.Range.Max)
	case KindStorageFailure:
		if e.Cause != nil {
			return fmt.Sprintf("failed to %s settings: %v", e.Op, e.Cause)
		}
		return fmt.Sprintf("failed to %s settings", e.Op)
	}
	return "settings error"
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error of the same kind, so callers can write
// errors.Is(err, settings.ErrOutOfRange)
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf extracts the kind from an error chain
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnknown
}

// Alert is a user-facing title and message pair
type Alert struct {
	Title   string
	Message string
}

// Alert converts the error into the message shown to the user
func (e *Error) Alert() Alert {
	switch e.Kind {
	case KindSelectionMissing:
		return Alert{Title: "Error", Message: "Please select a WarmUp Exercise First"}
	case KindFormatInvalid:
		if e.Empty {
			return Alert{Title: "Error", Message: fmt.Sprintf("%s cannot be empty!", e.Field.Label())}
		}
		return Alert{Title: "Error", Message: fmt.Sprintf("%s must be a valid number!", e.Field.Label())}
	case KindOutOfRange:
		return Alert{
			Title:   "Invalid Value",
			Message: fmt.Sprintf("%s must be between %d and %d", e.Field.Label(), e.Range.Min, e.Range.Max),
		}
	case KindStorageFailure:
		switch e.Op {
		case OpReset:
			return Alert{Title: "Error", Message: "Failed to reset values"}
		case OpLoad, OpSeed:
			return Alert{Title: "Error", Message: "Failed to load exercise data"}
		}
		return Alert{Title: "Error", Message: "Failed to save settings"}
	}
	return Alert{Title: "Error", Message: e.Error()}
}

// AlertFor converts any error into an Alert
func AlertFor(err error) Alert {
	var se *Error
	if errors.As(err, &se) {
		return se.Alert()
	}
	return Alert{Title: "Error", Message: err.Error()}
}

// SavedAlert is shown after a field was saved
func SavedAlert(field models.Field) Alert {
	return Alert{Title: "Success", Message: fmt.Sprintf("%s saved successfully!", field.Label())}
}

// ResetAlert is shown after a successful reset
func ResetAlert() Alert {
	return Alert{Title: "Success", Message: "All values reset to default!"}
}

// IsKind reports whether err carries a settings error of the given kind
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
