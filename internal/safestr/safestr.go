// Package safestr normalizes values before they are bound as query
// parameters. Scan output arrives with backslash-escaped characters
// (the safe encoding used for untrusted dump data); this package decodes
// those escapes and keeps non-UTF-8 payloads as raw bytes so they bind
// as BLOBs instead of corrupted text.
package safestr

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// DecodeValue normalizes a single value. Strings have recognized
// backslash escapes decoded; if the result is not valid UTF-8 it is
// returned as []byte. All other types pass through unchanged.
func DecodeValue(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	d := decodeEscapes(s)
	if !utf8.ValidString(d) {
		return []byte(d)
	}
	return d
}

// DecodeValues normalizes a sequence of values for parameter binding.
func DecodeValues(values []any) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = DecodeValue(v)
	}
	return out
}

// decodeEscapes decodes \\, \', \", \n, \r, \t and \xHH sequences.
// Unrecognized escapes are left as-is.
func decodeEscapes(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		c := s[i]
		if c != '\\' || i+1 >= len(s) {
			b.WriteByte(c)
			i++
			continue
		}
		switch s[i+1] {
		case '\\':
			b.WriteByte('\\')
			i += 2
		case '\'':
			b.WriteByte('\'')
			i += 2
		case '"':
			b.WriteByte('"')
			i += 2
		case 'n':
			b.WriteByte('\n')
			i += 2
		case 'r':
			b.WriteByte('\r')
			i += 2
		case 't':
			b.WriteByte('\t')
			i += 2
		case 'x':
			if i+3 < len(s) {
				if v, err := strconv.ParseUint(s[i+2:i+4], 16, 8); err == nil {
					b.WriteByte(byte(v))
					i += 4
					continue
				}
			}
			b.WriteByte(c)
			i++
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}
