package tui

import (
	"runtime"
	"strings"
)

// OSType represents the operating system type
type OSType int

const (
	OSMac OSType = iota
	OSLinux
	OSWindows
	OSUnknown
)

// GetOS returns the current operating system type
func GetOS() OSType {
	return osFromGOOS(runtime.GOOS)
}

func osFromGOOS(goos string) OSType {
	switch goos {
	case "darwin":
		return OSMac
	case "linux":
		return OSLinux
	case "windows":
		return OSWindows
	default:
		return OSUnknown
	}
}

// ShortcutKey represents a keyboard shortcut with OS-specific variations
type ShortcutKey struct {
	Mac     string
	Linux   string
	Windows string
	Default string // Fallback if OS-specific not defined
}

// Get returns the appropriate shortcut for the current OS
func (s ShortcutKey) Get() string {
	return s.GetFor(GetOS())
}

// GetFor returns the shortcut for a given OS
func (s ShortcutKey) GetFor(os OSType) string {
	switch os {
	case OSMac:
		if s.Mac != "" {
			return s.Mac
		}
	case OSLinux:
		if s.Linux != "" {
			return s.Linux
		}
	case OSWindows:
		if s.Windows != "" {
			return s.Windows
		}
	}
	return s.Default
}

// Matches reports whether a key string triggers the shortcut on this OS
func (s ShortcutKey) Matches(key string) bool {
	return key == s.Get()
}

// Shortcuts lists the keys that differ between terminals
var Shortcuts = struct {
	Save     ShortcutKey
	Reset    ShortcutKey
	Settings ShortcutKey
	Profile  ShortcutKey
	WarmUp   ShortcutKey
	Quit     ShortcutKey
}{
	Save: ShortcutKey{
		Mac:     "ctrl+s",
		Linux:   "alt+s", // ctrl+s is XOFF in most Linux terminals
		Windows: "alt+s",
		Default: "ctrl+s",
	},
	Reset: ShortcutKey{
		Default: "ctrl+r",
	},
	Settings: ShortcutKey{
		Default: "s",
	},
	Profile: ShortcutKey{
		Default: "p",
	},
	WarmUp: ShortcutKey{
		Default: "w",
	},
	Quit: ShortcutKey{
		Default: "ctrl+c",
	},
}

// FormatShortcutForHelp formats a shortcut key for display in help text
func FormatShortcutForHelp(key ShortcutKey) string {
	return formatShortcut(key.Get(), GetOS())
}

func formatShortcut(shortcut string, os OSType) string {
	if os == OSMac {
		shortcut = strings.ReplaceAll(shortcut, "alt+", "⌥")
	} else {
		shortcut = strings.ReplaceAll(shortcut, "alt+", "M-")
	}
	shortcut = strings.ReplaceAll(shortcut, "ctrl+", "^")
	shortcut = strings.ReplaceAll(shortcut, "shift+", "⇧")
	return shortcut
}
