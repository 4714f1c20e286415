package domain

import "testing"

func TestNormalizeTerm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Hello", "hello"},
		{"surrounding space", "  Hello World  ", "hello world"},
		{"preserves apostrophe", "Don't", "don't"},
		{"preserves hyphen", "well-being", "well-being"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeTerm(tt.in); got != tt.want {
				t.Errorf("NormalizeTerm(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTrimHighlight(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trailing period", "serendipity.", "serendipity"},
		{"curly quotes", "“ephemeral”", "ephemeral"},
		{"guillemets", "«восход»", "восход"},
		{"parentheses", "(in passing)", "in passing"},
		{"interior punctuation kept", "it's a no-brainer, really", "it's a no-brainer, really"},
		{"mixed run", "  “hello, world!” ", "hello, world"},
		{"only punctuation", "?!...", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := TrimHighlight(tt.in); got != tt.want {
				t.Errorf("TrimHighlight(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestTokenCount(t *testing.T) {
	t.Parallel()

	if got := TokenCount("one two  three"); got != 3 {
		t.Errorf("TokenCount = %d, want 3", got)
	}
	if got := TokenCount(""); got != 0 {
		t.Errorf("TokenCount(empty) = %d, want 0", got)
	}
}
