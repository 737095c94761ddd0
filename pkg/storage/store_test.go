package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baldog/baldog-terminal/pkg/models"
)

func backends(t *testing.T) map[string]Store {
	t.Helper()

	fileStore, err := NewFileStore(filepath.Join(t.TempDir(), "store"))
	require.NoError(t, err)

	sqliteStore, err := OpenSQLiteStore(filepath.Join(t.TempDir(), "baldog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sqliteStore.Close() })

	return map[string]Store{
		"memory": NewMemoryStore(),
		"file":   fileStore,
		"sqlite": sqliteStore,
	}
}

func TestStoreContract(t *testing.T) {
	ctx := context.Background()

	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Get(ctx, KeyUserName)
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, store.Set(ctx, KeyUserName, "Bob"))
			got, err := store.Get(ctx, KeyUserName)
			require.NoError(t, err)
			assert.Equal(t, "Bob", got)

			// last writer wins
			require.NoError(t, store.Set(ctx, KeyUserName, "Alice"))
			got, err = store.Get(ctx, KeyUserName)
			require.NoError(t, err)
			assert.Equal(t, "Alice", got)

			require.NoError(t, store.Remove(ctx, KeyUserName))
			_, err = store.Get(ctx, KeyUserName)
			assert.ErrorIs(t, err, ErrNotFound)

			// removing a missing key is not an error
			assert.NoError(t, store.Remove(ctx, KeyUserName))
		})
	}
}

func TestStoreRejectsBadKeys(t *testing.T) {
	ctx := context.Background()

	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for _, key := range []string{"", "../escape", "a/b", "~home"} {
				assert.Error(t, store.Set(ctx, key, "x"), "set %q", key)

				_, err := store.Get(ctx, key)
				assert.Error(t, err, "get %q", key)
				assert.NotErrorIs(t, err, ErrNotFound, "get %q", key)

				assert.Error(t, store.Remove(ctx, key), "remove %q", key)
			}
		})
	}
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "store")
	store, err := NewFileStore(dir)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, KeyExerciseSnapshot, `[{"id":1}]`))
	require.NoError(t, store.Set(ctx, KeyExerciseSnapshot, `[{"id":2}]`))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, KeyExerciseSnapshot, entries[0].Name())
}

func TestSQLiteStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baldog.db")
	ctx := context.Background()

	store, err := OpenSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, KeySavedIntensity, "advanced"))
	require.NoError(t, store.Close())

	store, err = OpenSQLiteStore(path)
	require.NoError(t, err)
	defer store.Close()

	got, err := store.Get(ctx, KeySavedIntensity)
	require.NoError(t, err)
	assert.Equal(t, "advanced", got)
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewMemoryStore()
	assert.Error(t, store.Set(ctx, KeyUserName, "x"))
	_, err := store.Get(ctx, KeyUserName)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		backend string
		wantErr bool
	}{
		{models.BackendFile, false},
		{models.BackendSQLite, false},
		{models.BackendMemory, false},
		{"", false},
		{"redis", true},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			store, err := Open(models.StorageSettings{Backend: tt.backend, Path: dir})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NoError(t, store.Close())
		})
	}
}
