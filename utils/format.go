package utils

import (
	"strings"
	"time"
)

// FormatPrice formats a decimal price string for display, e.g. "9.99" -> "$9.99".
// An already-prefixed or empty price is returned as-is.
func FormatPrice(price string) string {
	p := strings.TrimSpace(price)
	if p == "" {
		return ""
	}
	if strings.HasPrefix(p, "$") {
		return p
	}
	return "$" + p
}

// FormatDate formats a timestamp for document headers and footers
func FormatDate(t time.Time) string {
	return t.Format("January 2, 2006")
}
