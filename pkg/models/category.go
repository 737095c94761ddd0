package models

import (
	"hash/fnv"
	"strings"
)

// Category groups catalog exercises on the home screen
type Category struct {
	Slug  string `json:"slug" yaml:"slug"`
	Title string `json:"title" yaml:"title"`
	Color string `json:"color,omitempty" yaml:"color,omitempty"`
}

// DefaultColorPalette provides a curated set of colors for category badges
var DefaultColorPalette = []string{
	"#e67e22", // basketball orange
	"#3498db", // blue
	"#2ecc71", // green
	"#9b59b6", // purple
	"#e74c3c", // red
	"#1abc9c", // turquoise
	"#f1c40f", // yellow
	"#34495e", // dark gray
}

// GetCategoryColor returns the category's own color or a stable one derived from its slug
func GetCategoryColor(slug string, color string) string {
	if color != "" {
		return color
	}

	h := fnv.New32a()
	h.Write([]byte(strings.ToLower(slug)))
	hash := h.Sum32()

	return DefaultColorPalette[int(hash)%len(DefaultColorPalette)]
}

// NormalizeSlug lowercases, hyphenates and strips anything but [a-z0-9-]
func NormalizeSlug(name string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, " ", "-")

	var result strings.Builder
	for _, r := range normalized {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			result.WriteRune(r)
		}
	}

	return result.String()
}
