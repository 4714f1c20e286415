package domain

import "strings"

// trimSet is the punctuation and quote character class stripped from both
// ends of a highlighted passage: straight and curly double/single quotes,
// guillemets, parentheses, and sentence punctuation.
const trimSet = " .,?!:;\"“”‘’«»()"

// NormalizeTerm prepares a term for comparison and cache/history keying:
// trims surrounding whitespace and lowercases. Diacritics, hyphens, and
// apostrophes are preserved.
func NormalizeTerm(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}

// TrimHighlight strips leading and trailing runs of the punctuation/quote
// class from a highlighted passage. Interior characters are untouched.
func TrimHighlight(text string) string {
	return strings.Trim(text, trimSet)
}

// TokenCount returns the number of whitespace-separated tokens in text.
func TokenCount(text string) int {
	return len(strings.Fields(text))
}
