// Package translator owns the lookup policy: which adapters to consult for
// a given term, in what order, and how their raw responses collapse into a
// single flat result. Failures never escape; an exhausted cascade is a
// nil result, not an error.
package translator

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/kindleword/internal/domain"
	"github.com/heartmarshall/kindleword/internal/provider"
)

// DefaultPhraseTokenThreshold is the token count at which a term stops
// being a vocabulary word and becomes a phrase: phrases skip the rich
// adapters, whose context lookups produce garbage for full sentences.
const DefaultPhraseTokenThreshold = 3

// SmartTranslator routes terms to an adapter chain by token count and
// applies fallback through the chain on failure or empty result.
type SmartTranslator struct {
	log       *slog.Logger
	rich      []provider.Provider
	plain     []provider.Provider
	threshold int
}

// New creates a SmartTranslator. rich is the fallback chain for short
// terms, plain the chain for phrases. phraseTokenThreshold <= 0 selects
// the default.
func New(logger *slog.Logger, rich, plain []provider.Provider, phraseTokenThreshold int) *SmartTranslator {
	if phraseTokenThreshold <= 0 {
		phraseTokenThreshold = DefaultPhraseTokenThreshold
	}
	return &SmartTranslator{
		log:       logger.With("component", "translator"),
		rich:      rich,
		plain:     plain,
		threshold: phraseTokenThreshold,
	}
}

// Fetch resolves term through the cascade for its class. It returns
// (nil, nil) when every adapter in the chain failed or came back empty;
// the only error returned is context cancellation.
func (t *SmartTranslator) Fetch(ctx context.Context, term string) (*domain.TranslationResult, error) {
	chain := t.rich
	if domain.TokenCount(term) >= t.threshold {
		chain = t.plain
	}

	for _, p := range chain {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, err := p.Lookup(ctx, term)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			t.log.WarnContext(ctx, "adapter failed, falling back",
				slog.String("adapter", p.Name()),
				slog.String("term", term),
				slog.String("error", err.Error()),
			)
			continue
		}

		result := reduce(term, raw)
		if result == nil {
			t.log.DebugContext(ctx, "adapter returned no translation, falling back",
				slog.String("adapter", p.Name()),
				slog.String("term", term),
			)
			continue
		}

		return result, nil
	}

	t.log.InfoContext(ctx, "cascade exhausted", slog.String("term", term))
	return nil, nil
}
