package render

import (
	"strings"
)

// ReplaceTokens replaces every occurrence of each known {{token}} in the
// template with its value. Tokens without a mapping are left untouched.
// No escaping is performed; callers must pre-escape untrusted values.
func ReplaceTokens(template string, vars map[string]string) string {
	out := template
	for name, value := range vars {
		out = strings.ReplaceAll(out, "{{"+name+"}}", value)
	}
	return out
}
