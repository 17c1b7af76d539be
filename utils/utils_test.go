package utils

import (
	"testing"
	"time"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Summer Sale", "summer-sale"},
		{"  Spring  Collection  ", "spring-collection"},
		{"UPPER", "upper"},
		{"already-slugged", "already-slugged"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"9.99", "$9.99"},
		{"$9.99", "$9.99"},
		{" 12.50 ", "$12.50"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		if got := FormatPrice(tt.in); got != tt.want {
			t.Errorf("FormatPrice(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	t.Parallel()

	d := time.Date(2026, time.March, 7, 15, 4, 5, 0, time.UTC)
	if got := FormatDate(d); got != "March 7, 2026" {
		t.Errorf("FormatDate = %q", got)
	}
}

func TestNewIDUnique(t *testing.T) {
	t.Parallel()

	a, b := NewID(), NewID()
	if a == "" || a == b {
		t.Errorf("NewID produced %q and %q", a, b)
	}
}
