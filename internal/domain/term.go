package domain

// TranslationResult is the enriched record for a single term, produced by
// exactly one provider adapter (possibly after fallback) and immutable once
// returned. Translation is never empty on a result the orchestrator hands
// out; the optional fields may be.
type TranslationResult struct {
	Term          string `json:"term"`
	Translation   string `json:"translation"`
	Transcription string `json:"transcription,omitempty"`
	ExampleSource string `json:"example_source,omitempty"`
	ExampleTarget string `json:"example_target,omitempty"`
}

// BookGroup holds the new candidate terms extracted from one book,
// in original reading order. Title is the verbatim first line of the
// clip blocks, including punctuation and diacritics.
type BookGroup struct {
	Title string
	Terms []string
}

// TermCount returns the total number of terms across all groups.
func TermCount(groups []BookGroup) int {
	n := 0
	for _, g := range groups {
		n += len(g.Terms)
	}
	return n
}
