package export

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// maxNameRunes bounds the sanitized book-title part of a filename.
const maxNameRunes = 50

// SanitizeFilename turns a book title into a safe filename seed: NFKC
// normalization, then everything outside letters, digits, spaces,
// underscores, parentheses, and hyphens is dropped, and the result is
// trimmed and capped at maxNameRunes runes.
func SanitizeFilename(name string) string {
	name = norm.NFKC.String(name)

	var b strings.Builder
	for _, r := range name {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case r == ' ' || r == '_' || r == '(' || r == ')' || r == '-':
			b.WriteRune(r)
		}
	}

	clean := strings.TrimSpace(b.String())
	runes := []rune(clean)
	if len(runes) > maxNameRunes {
		clean = strings.TrimSpace(string(runes[:maxNameRunes]))
	}
	return clean
}

// Filename builds the per-book artifact name from the title and run time.
func Filename(bookTitle string, now time.Time) string {
	name := SanitizeFilename(bookTitle)
	if name == "" {
		name = "clippings"
	}
	return name + "_" + now.Format("02.01.2006__15-04") + ".csv"
}
