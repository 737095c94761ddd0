package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/baldog/baldog-terminal/pkg/catalog"
	"github.com/baldog/baldog-terminal/pkg/config"
	"github.com/baldog/baldog-terminal/pkg/logging"
	"github.com/baldog/baldog-terminal/pkg/models"
	"github.com/baldog/baldog-terminal/pkg/onboarding"
	"github.com/baldog/baldog-terminal/pkg/profile"
	"github.com/baldog/baldog-terminal/pkg/state"
	"github.com/baldog/baldog-terminal/pkg/storage"
	"github.com/baldog/baldog-terminal/pkg/warmup"
)

var (
	dataDirFlag string
	ephemeral   bool
)

// SetDataDir sets the --data-dir and --ephemeral values from the cmd package
func SetDataDir(dir string, memoryOnly bool) {
	dataDirFlag = dir
	ephemeral = memoryOnly
}

// ResolveDataDir picks the --data-dir flag, then BALDOG_DATA_DIR, then .baldog
func ResolveDataDir() string {
	if dataDirFlag != "" {
		return dataDirFlag
	}
	if v := os.Getenv("BALDOG_DATA_DIR"); v != "" {
		return v
	}
	return models.DefaultDataDir
}

// CommandContext manages data directory validation and the services a
// command needs
type CommandContext struct {
	DataDir  string
	Settings *models.Settings

	Logger     *slog.Logger
	Store      storage.Store
	Catalog    *catalog.Catalog
	Container  *state.Container
	Profile    *profile.Store
	Onboarding *onboarding.Tracker
	History    *warmup.History

	validated bool
	closers   []io.Closer
}

// NewCommandContext creates a new command context
func NewCommandContext() *CommandContext {
	return &CommandContext{DataDir: ResolveDataDir()}
}

// ValidateProject ensures the data directory was initialized
func (c *CommandContext) ValidateProject() error {
	if c.validated || ephemeral {
		return nil
	}

	if _, err := os.Stat(c.DataDir); os.IsNotExist(err) {
		return fmt.Errorf("no %s directory found. Run 'baldog init' first", c.DataDir)
	}

	c.validated = true
	return nil
}

// LoadSettings reads the config file in the data directory
func (c *CommandContext) LoadSettings() (*models.Settings, error) {
	if c.Settings != nil {
		return c.Settings, nil
	}

	settings, err := config.Load(config.Path(c.DataDir))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if settings.Storage.Path == models.DefaultDataDir {
		settings.Storage.Path = c.DataDir
	}
	if ephemeral {
		settings.Storage.Backend = models.BackendMemory
		settings.Log.File = ""
	}

	c.Settings = settings
	return settings, nil
}

// LoadSettingsWithDefault loads settings or returns default if error
func (c *CommandContext) LoadSettingsWithDefault() *models.Settings {
	settings, err := c.LoadSettings()
	if err != nil {
		settings = models.DefaultSettings()
		settings.Storage.Path = c.DataDir
		c.Settings = settings
	}
	return settings
}

// Open builds the logger, store and services, then mounts the settings
// container so the snapshot is seeded and the saved intensity restored
func (c *CommandContext) Open(ctx context.Context) error {
	if c.Store != nil {
		return nil
	}

	settings, err := c.LoadSettings()
	if err != nil {
		return err
	}

	logger, logCloser, err := logging.New(c.DataDir, settings.Log)
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	c.closers = append(c.closers, logCloser)

	store, err := storage.Open(settings.Storage)
	if err != nil {
		c.Close()
		return fmt.Errorf("failed to open storage: %w", err)
	}
	c.closers = append(c.closers, store)

	c.Logger = logger
	c.Store = store
	if c.Catalog == nil {
		c.Catalog = catalog.Default()
	}
	c.Container = state.NewContainer(store, c.Catalog, logger)
	c.Profile = profile.NewStore(store)
	c.Onboarding = onboarding.NewTracker(store)
	c.History = warmup.NewHistory(store)

	if err := c.Container.Mount(ctx); err != nil {
		c.Close()
		c.Store = nil
		return fmt.Errorf("failed to load exercise data: %w", err)
	}
	return nil
}

// Close releases the store and the log file
func (c *CommandContext) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}
