package render

import (
	"reflect"
	"testing"
)

func TestSplitFeatures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		description string
		expected    []string
	}{
		{
			name:        "sentences become bullets",
			description: "Durable steel frame. Weather resistant. Easy assembly.",
			expected:    []string{"Durable steel frame", "Weather resistant", "Easy assembly"},
		},
		{
			name:        "empty fragments dropped",
			description: "One.. Two.",
			expected:    []string{"One", "Two"},
		},
		{
			name:        "no trailing period",
			description: "First. Second",
			expected:    []string{"First", "Second"},
		},
		{
			name:        "empty description",
			description: "",
			expected:    nil,
		},
		{
			name:        "only periods",
			description: "...",
			expected:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := SplitFeatures(tt.description)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Fatalf("SplitFeatures(%q) = %v, want %v", tt.description, got, tt.expected)
			}
		})
	}
}
