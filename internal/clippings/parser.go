// Package clippings turns a raw Kindle "My Clippings.txt" export into a
// deduplicated, per-book ordered list of candidate terms.
package clippings

import (
	"errors"
	"strings"

	"github.com/heartmarshall/kindleword/internal/domain"
)

// Separator delimits clip blocks in the export.
const Separator = "=========="

// ErrInvalidFormat is returned when the separator token never occurs in the
// input. Distinct from an empty result: the caller presents "wrong file"
// rather than "nothing new to learn".
var ErrInvalidFormat = errors.New("clippings: missing separator, not a clippings export")

// DefaultMaxTermTokens is the default upper bound on tokens in an accepted
// term. Longer highlights are full sentences, not vocabulary.
const DefaultMaxTermTokens = 6

// Parser extracts candidate terms from export text.
type Parser struct {
	maxTermTokens int
}

// NewParser creates a Parser. maxTermTokens <= 0 selects the default.
func NewParser(maxTermTokens int) *Parser {
	if maxTermTokens <= 0 {
		maxTermTokens = DefaultMaxTermTokens
	}
	return &Parser{maxTermTokens: maxTermTokens}
}

// Parse splits raw export text into clip blocks and collects new terms per
// book. history holds lowercase terms already delivered to the user; they
// are never re-queued. A term repeated across blocks in the same run is
// kept once. Blocks are walked in reverse split order so that, combined
// with append, terms within a book come out in original reading order.
//
// Returns ErrInvalidFormat if the separator never occurs. A nil error with
// an empty group list means a valid export with nothing new.
func (p *Parser) Parse(raw string, history map[string]struct{}) ([]domain.BookGroup, error) {
	if !strings.Contains(raw, Separator) {
		return nil, ErrInvalidFormat
	}

	blocks := strings.Split(raw, Separator)

	var groups []domain.BookGroup
	groupIdx := make(map[string]int)
	seen := make(map[string]struct{})

	for i := len(blocks) - 1; i >= 0; i-- {
		lines := nonBlankLines(blocks[i])
		if len(lines) < 2 {
			continue
		}

		title := lines[0]
		term := domain.TrimHighlight(lines[len(lines)-1])
		if term == "" || domain.TokenCount(term) > p.maxTermTokens {
			continue
		}

		key := domain.NormalizeTerm(term)
		if _, ok := history[key]; ok {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		idx, ok := groupIdx[title]
		if !ok {
			idx = len(groups)
			groupIdx[title] = idx
			groups = append(groups, domain.BookGroup{Title: title})
		}
		groups[idx].Terms = append(groups[idx].Terms, term)
	}

	return groups, nil
}

// nonBlankLines splits a block into trimmed lines, dropping blank ones.
func nonBlankLines(block string) []string {
	var out []string
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}
