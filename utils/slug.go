package utils

import (
	"strings"
)

// Slugify converts a display name into a filename-safe slug:
// lowercased, spaces replaced with hyphens.
// Used to derive custom template filenames from template names.
func Slugify(name string) string {
	slug := strings.ToLower(strings.TrimSpace(name))
	slug = strings.Join(strings.Fields(slug), "-")
	return slug
}
