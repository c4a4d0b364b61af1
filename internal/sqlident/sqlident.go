package sqlident

import "strings"

// Sanitize neutralizes characters that are unsafe inside a double-quoted
// SQL identifier: embedded double quotes are doubled and control
// characters are dropped. It is not a general SQL-injection defense,
// only a guard for identifiers this tool embeds in quoted form.
func Sanitize(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r == '"':
			b.WriteString(`""`)
		case r < 0x20 || r == 0x7f:
			// skip control characters
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Quote returns the sanitized name wrapped in double quotes, ready to be
// embedded in SQL text.
func Quote(name string) string {
	return `"` + Sanitize(name) + `"`
}
