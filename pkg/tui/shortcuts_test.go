package tui

import (
	"runtime"
	"testing"
)

func TestGetOS(t *testing.T) {
	tests := []struct {
		goos string
		want OSType
	}{
		{"darwin", OSMac},
		{"linux", OSLinux},
		{"windows", OSWindows},
		{"plan9", OSUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			if got := osFromGOOS(tt.goos); got != tt.want {
				t.Errorf("osFromGOOS(%q) = %v, want %v", tt.goos, got, tt.want)
			}
		})
	}

	if GetOS() != osFromGOOS(runtime.GOOS) {
		t.Errorf("GetOS() does not match runtime.GOOS %q", runtime.GOOS)
	}
}

func TestShortcutKey_GetFor(t *testing.T) {
	save := ShortcutKey{Mac: "ctrl+s", Linux: "alt+s", Windows: "alt+s", Default: "ctrl+s"}

	tests := []struct {
		name     string
		shortcut ShortcutKey
		os       OSType
		want     string
	}{
		{"mac specific", save, OSMac, "ctrl+s"},
		{"linux specific", save, OSLinux, "alt+s"},
		{"windows specific", save, OSWindows, "alt+s"},
		{"unknown falls back", save, OSUnknown, "ctrl+s"},
		{"default only", ShortcutKey{Default: "w"}, OSLinux, "w"},
		{"partial override", ShortcutKey{Linux: "alt+r", Default: "ctrl+r"}, OSMac, "ctrl+r"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.shortcut.GetFor(tt.os); got != tt.want {
				t.Errorf("GetFor() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestShortcutMatches(t *testing.T) {
	if !Shortcuts.Save.Matches(Shortcuts.Save.Get()) {
		t.Error("save shortcut should match its own key")
	}
	if Shortcuts.Reset.Matches("ctrl+s") {
		t.Error("reset should not match ctrl+s")
	}
}

func TestFormatShortcut(t *testing.T) {
	tests := []struct {
		shortcut string
		os       OSType
		want     string
	}{
		{"ctrl+r", OSLinux, "^r"},
		{"alt+s", OSLinux, "M-s"},
		{"alt+s", OSMac, "⌥s"},
		{"shift+tab", OSWindows, "⇧tab"},
		{"w", OSMac, "w"},
	}

	for _, tt := range tests {
		if got := formatShortcut(tt.shortcut, tt.os); got != tt.want {
			t.Errorf("formatShortcut(%q, %v) = %q, want %q", tt.shortcut, tt.os, got, tt.want)
		}
	}
}
