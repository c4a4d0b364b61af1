package safestr

import (
	"bytes"
	"testing"
)

func TestDecodeValueEscapes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{`line\nbreak`, "line\nbreak"},
		{`tab\there`, "tab\there"},
		{`back\\slash`, `back\slash`},
		{`quo\'te\"s`, `quo'te"s`},
		{`hex\x41`, "hexA"},
		{`trailing\`, `trailing\`},
		{`\q unknown`, `\q unknown`},
		{`\xZZ bad hex`, `\xZZ bad hex`},
	}
	for _, tt := range tests {
		got := DecodeValue(tt.in)
		s, ok := got.(string)
		if !ok {
			t.Errorf("DecodeValue(%q) returned %T, want string", tt.in, got)
			continue
		}
		if s != tt.want {
			t.Errorf("DecodeValue(%q) = %q, want %q", tt.in, s, tt.want)
		}
	}
}

func TestDecodeValueBinary(t *testing.T) {
	// \x89 is not valid UTF-8 on its own, so the value must come back
	// as raw bytes rather than a corrupted string.
	got := DecodeValue(`\x89PNG`)
	b, ok := got.([]byte)
	if !ok {
		t.Fatalf("DecodeValue returned %T, want []byte", got)
	}
	if !bytes.Equal(b, []byte{0x89, 'P', 'N', 'G'}) {
		t.Errorf("DecodeValue = %v, want 0x89 P N G", b)
	}
}

func TestDecodeValuePassthrough(t *testing.T) {
	if got := DecodeValue(42); got != 42 {
		t.Errorf("DecodeValue(42) = %v", got)
	}
	if got := DecodeValue(nil); got != nil {
		t.Errorf("DecodeValue(nil) = %v", got)
	}
	raw := []byte{0x00, 0x01}
	if got := DecodeValue(raw); !bytes.Equal(got.([]byte), raw) {
		t.Errorf("DecodeValue([]byte) = %v", got)
	}
}

func TestDecodeValues(t *testing.T) {
	in := []any{1, `a\nb`, nil}
	out := DecodeValues(in)
	if len(out) != 3 {
		t.Fatalf("expected 3 values, got %d", len(out))
	}
	if out[0] != 1 || out[1] != "a\nb" || out[2] != nil {
		t.Errorf("DecodeValues = %v", out)
	}
}
