package testhelpers

import (
	"reflect"
	"testing"

	"github.com/baldog/baldog-terminal/pkg/models"
)

// AssertFieldValues checks the three form values
func AssertFieldValues(t *testing.T, expected, actual models.FieldValues) {
	t.Helper()

	if expected.Duration != actual.Duration {
		t.Errorf("Duration mismatch: expected %q, got %q", expected.Duration, actual.Duration)
	}
	if expected.Repetitions != actual.Repetitions {
		t.Errorf("Repetitions mismatch: expected %q, got %q", expected.Repetitions, actual.Repetitions)
	}
	if expected.RestDuration != actual.RestDuration {
		t.Errorf("RestDuration mismatch: expected %q, got %q", expected.RestDuration, actual.RestDuration)
	}
}

// AssertStoreUnchanged compares two MemoryStore snapshots
func AssertStoreUnchanged(t *testing.T, before, after map[string]string) {
	t.Helper()

	if !reflect.DeepEqual(before, after) {
		t.Errorf("store changed:\nbefore: %v\nafter:  %v", before, after)
	}
}
