package models

// Settings represents the application configuration
type Settings struct {
	Storage StorageSettings `yaml:"storage"`
	UI      UISettings      `yaml:"ui"`
	Log     LogSettings     `yaml:"log"`
}

// StorageSettings selects and locates the key-value backend
type StorageSettings struct {
	Backend string `yaml:"backend"` // "file", "sqlite" or "memory"
	Path    string `yaml:"path"`
}

// UISettings controls UI preferences
type UISettings struct {
	ValidationDebounceMs int  `yaml:"validation_debounce_ms"`
	ShowFeatured         bool `yaml:"show_featured"`
	ShowOnboarding       bool `yaml:"show_onboarding"`
}

// LogSettings controls the log file
type LogSettings struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"

	DefaultDataDir = ".baldog"
)

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Storage: StorageSettings{
			Backend: BackendFile,
			Path:    DefaultDataDir,
		},
		UI: UISettings{
			ValidationDebounceMs: 75,
			ShowFeatured:         true,
			ShowOnboarding:       true,
		},
		Log: LogSettings{
			Level: "info",
			File:  "baldog.log",
		},
	}
}
