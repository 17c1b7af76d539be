package render

import (
	"strings"
)

// SplitFeatures derives a bullet-point feature list from a product
// description by splitting on sentence boundaries. Empty fragments are
// dropped. Returns nil for an empty description.
func SplitFeatures(description string) []string {
	parts := strings.Split(description, ".")
	var features []string
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			features = append(features, part)
		}
	}
	return features
}
