package cli

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/baldog/baldog-terminal/pkg/config"
	"github.com/baldog/baldog-terminal/pkg/models"
	"github.com/baldog/baldog-terminal/pkg/storage"
	"github.com/baldog/baldog-terminal/pkg/testhelpers"
)

func useDataDir(t *testing.T, dir string, memoryOnly bool) {
	t.Helper()
	SetDataDir(dir, memoryOnly)
	t.Cleanup(func() { SetDataDir("", false) })
}

func TestResolveDataDir(t *testing.T) {
	t.Setenv("BALDOG_DATA_DIR", "")
	useDataDir(t, "", false)
	assert.Equal(t, models.DefaultDataDir, ResolveDataDir())

	t.Setenv("BALDOG_DATA_DIR", "/srv/baldog")
	assert.Equal(t, "/srv/baldog", ResolveDataDir())

	useDataDir(t, "/flag/dir", false)
	assert.Equal(t, "/flag/dir", ResolveDataDir())
}

func TestValidateProject(t *testing.T) {
	env := testhelpers.NewTestEnvironment(t)

	useDataDir(t, env.DataDir(), false)
	ctx := NewCommandContext()
	err := ctx.ValidateProject()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Run 'baldog init' first")

	env.InitDataDir(models.BackendFile)
	assert.NoError(t, NewCommandContext().ValidateProject())

	useDataDir(t, env.DataDir()+"-missing", true)
	assert.NoError(t, NewCommandContext().ValidateProject(), "ephemeral runs need no data dir")
}

func TestCommandContextOpen(t *testing.T) {
	tests := []struct {
		name    string
		backend string
	}{
		{name: "file backend", backend: models.BackendFile},
		{name: "sqlite backend", backend: models.BackendSQLite},
		{name: "memory backend", backend: models.BackendMemory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := testhelpers.NewTestEnvironment(t)
			env.InitDataDir(tt.backend)
			useDataDir(t, env.DataDir(), false)

			cc := NewCommandContext()
			require.NoError(t, cc.Open(context.Background()))
			defer cc.Close()

			assert.Equal(t, tt.backend, cc.Settings.Storage.Backend)
			require.NotNil(t, cc.Container)
			require.NotNil(t, cc.Profile)
			require.NotNil(t, cc.Onboarding)
			require.NotNil(t, cc.History)

			_, err := cc.Store.Get(context.Background(), storage.KeyExerciseSnapshot)
			assert.NoError(t, err, "open seeds the snapshot")
			assert.Equal(t, models.DefaultIntensity, cc.Container.State().IntensityValue)
		})
	}
}

func TestCommandContextEphemeralIgnoresBackend(t *testing.T) {
	env := testhelpers.NewTestEnvironment(t)
	env.InitDataDir(models.BackendSQLite)
	useDataDir(t, env.DataDir(), true)

	cc := NewCommandContext()
	require.NoError(t, cc.Open(context.Background()))
	defer cc.Close()

	assert.Equal(t, models.BackendMemory, cc.Settings.Storage.Backend)
	assert.Empty(t, cc.Settings.Log.File)
}

func TestLoadSettingsWithDefaultOnBadConfig(t *testing.T) {
	env := testhelpers.NewTestEnvironment(t)
	env.InitDataDir(models.BackendFile)
	require.NoError(t, os.WriteFile(config.Path(env.DataDir()), []byte("storage:\n  backend: redis\n"), 0644))
	useDataDir(t, env.DataDir(), false)

	cc := NewCommandContext()
	_, err := cc.LoadSettings()
	require.Error(t, err)

	settings := NewCommandContext().LoadSettingsWithDefault()
	assert.Equal(t, models.BackendFile, settings.Storage.Backend)
	assert.Equal(t, env.DataDir(), settings.Storage.Path)
}
