package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baldog/baldog-terminal/pkg/profile"
	"github.com/baldog/baldog-terminal/pkg/storage"
	"github.com/baldog/baldog-terminal/pkg/testhelpers"
)

func TestProfileEditor(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantName  string
		wantError string
		wantModal bool
	}{
		{name: "valid name", input: testhelpers.ValidName, wantName: "Bob", wantModal: true},
		{name: "too long", input: testhelpers.TooLongName, wantName: profile.DefaultName, wantError: "Maximum of 10 characters allowed."},
		{name: "blank keeps current", input: "  ", wantName: profile.DefaultName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := storage.NewMemoryStore()
			store := profile.NewStore(kv)
			m := NewProfileModel(store)
			m.SetSize(80, 24)

			m.input.SetValue(tt.input)
			drain(t, m, m.Update(key("enter")))

			assert.Equal(t, tt.wantName, store.Name())
			assert.Equal(t, tt.wantError, m.errorMsg)
			if tt.wantModal {
				assert.Contains(t, m.View(), "You set your name to:")
				m.Update(key("enter"))
				assert.Empty(t, m.modal)
			} else {
				assert.Empty(t, m.modal)
			}
		})
	}
}

func TestProfileEditorWriteFailure(t *testing.T) {
	kv := testhelpers.NewFlakyStore().FailSet(storage.KeyUserName, true)
	store := profile.NewStore(kv)
	m := NewProfileModel(store)

	m.input.SetValue("Bob")
	statuses := drain(t, m, m.Update(key("enter")))
	require.Len(t, statuses, 1)
	assert.Equal(t, "Failed to save name", m.errorMsg)
	assert.Equal(t, profile.DefaultName, store.Name())

	_, err := kv.Get(context.Background(), storage.KeyUserName)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
