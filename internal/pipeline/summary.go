package pipeline

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/kindleword/internal/domain"
)

// Outcome is the three-way result of a run, used to pick user feedback.
type Outcome int

const (
	// OutcomeNoNewTerms means a valid export with nothing left to learn.
	OutcomeNoNewTerms Outcome = iota
	// OutcomeNothingTranslated means new terms were found but every
	// lookup failed; nothing was exported and nothing entered history.
	OutcomeNothingTranslated
	// OutcomeExported means at least one term was translated and written.
	OutcomeExported
)

// String implements fmt.Stringer for logs.
func (o Outcome) String() string {
	switch o {
	case OutcomeNoNewTerms:
		return "no_new_terms"
	case OutcomeNothingTranslated:
		return "nothing_translated"
	case OutcomeExported:
		return "exported"
	default:
		return "unknown"
	}
}

// BookSummary reports the per-book outcome of a run.
type BookSummary struct {
	Title   string
	Results []domain.TranslationResult
	// Failed lists terms the cascade could not translate; they stay out
	// of history and retry on a later run.
	Failed []string
	// File is the delivered artifact name, empty when nothing was
	// exported for this book.
	File string
	// ExportErr is set when rendering succeeded but delivery failed.
	ExportErr string
}

// Summary is the final per-run report.
type Summary struct {
	RunID         uuid.UUID
	Outcome       Outcome
	TermsFound    int
	TermsExported int
	BooksExported int
	Books         []BookSummary
	// Interrupted is set when cancellation stopped the run before all
	// terms were attempted; exported results up to that point are valid.
	Interrupted bool
}

// Message renders the user-visible one-line report.
func (s *Summary) Message() string {
	switch s.Outcome {
	case OutcomeNoNewTerms:
		return "No new terms found."
	case OutcomeNothingTranslated:
		return fmt.Sprintf("Found %d new terms, but none could be translated. They will be retried next run.", s.TermsFound)
	default:
		return fmt.Sprintf("Exported %d terms across %d books.", s.TermsExported, s.BooksExported)
	}
}
