package sqlident

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"users", "users"},
		{"scan results", "scan results"},
		{`na"me`, `na""me`},
		{"col\x00umn", "column"},
		{"tab\tname", "tabname"},
		{"čšž", "čšž"},
	}
	for _, tt := range tests {
		if got := Sanitize(tt.in); got != tt.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestQuote(t *testing.T) {
	if got := Quote(`log"s`); got != `"log""s"` {
		t.Errorf("Quote = %q, want %q", got, `"log""s"`)
	}
}
