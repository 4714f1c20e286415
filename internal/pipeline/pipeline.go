// Package pipeline wires the parse → translate → cache → export flow for
// one run. Lookups are strictly sequential with a randomized pause between
// network-bound requests: translation services throttle or ban aggressive
// callers, so preserving access matters more than throughput.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/kindleword/internal/clippings"
	"github.com/heartmarshall/kindleword/internal/domain"
	"github.com/heartmarshall/kindleword/internal/export"
	"github.com/heartmarshall/kindleword/pkg/ctxutil"
)

// Translator resolves a term through the adapter cascade. A nil result
// with a nil error means the cascade was exhausted.
type Translator interface {
	Fetch(ctx context.Context, term string) (*domain.TranslationResult, error)
}

// Cache is the durable lookup cache consulted before any network call.
type Cache interface {
	Get(term string) (domain.TranslationResult, bool)
	Set(term string, result domain.TranslationResult)
	Persist() error
}

// History is the cross-run record of terms already delivered to the user.
type History interface {
	Processed(ctx context.Context, userID int64) (map[string]struct{}, error)
	Add(ctx context.Context, userID int64, terms []string) error
}

// Sink receives one rendered artifact per book.
type Sink interface {
	Deliver(ctx context.Context, bookTitle, filename string, data []byte) error
}

// Config holds run-level tunables.
type Config struct {
	// ThrottleMin/ThrottleMax bound the randomized pause between
	// consecutive network-bound lookups. Cache hits incur no pause.
	ThrottleMin time.Duration
	ThrottleMax time.Duration
}

// Pipeline executes one clippings-to-flashcards run.
type Pipeline struct {
	log        *slog.Logger
	parser     *clippings.Parser
	translator Translator
	cache      Cache
	history    History
	sink       Sink
	cfg        Config

	now  func() time.Time
	wait func(ctx context.Context) error
}

// New creates a Pipeline.
func New(logger *slog.Logger, parser *clippings.Parser, translator Translator, cache Cache, history History, sink Sink, cfg Config) *Pipeline {
	p := &Pipeline{
		log:        logger.With("component", "pipeline"),
		parser:     parser,
		translator: translator,
		cache:      cache,
		history:    history,
		sink:       sink,
		cfg:        cfg,
		now:        time.Now,
	}
	p.wait = p.throttle
	return p
}

// Run processes one raw export for userID. It returns
// clippings.ErrInvalidFormat or clippings.ErrUndecodable for inputs the
// pipeline cannot work with; every other failure is degraded and reflected
// in the Summary. On cancellation no further terms are started, but
// results gathered so far are still exported.
func (p *Pipeline) Run(ctx context.Context, userID int64, raw []byte) (*Summary, error) {
	runID := uuid.New()
	ctx = ctxutil.WithRunID(ctxutil.WithUserID(ctx, userID), runID)
	log := p.log.With(slog.String("run_id", runID.String()), slog.Int64("user_id", userID))

	text, err := clippings.Decode(raw)
	if err != nil {
		return nil, err
	}

	snapshot, err := p.history.Processed(ctx, userID)
	if err != nil {
		// The history store is an optimization boundary at read time: a
		// failed snapshot means re-translating, not aborting.
		log.Warn("history snapshot failed, proceeding without", slog.String("error", err.Error()))
		snapshot = map[string]struct{}{}
	}

	groups, err := p.parser.Parse(text, snapshot)
	if err != nil {
		return nil, fmt.Errorf("pipeline: %w", err)
	}

	summary := &Summary{RunID: runID, TermsFound: domain.TermCount(groups)}
	if summary.TermsFound == 0 {
		summary.Outcome = OutcomeNoNewTerms
		log.Info("no new terms found")
		return summary, nil
	}

	log.Info("new terms found",
		slog.Int("terms", summary.TermsFound),
		slog.Int("books", len(groups)),
	)

	var delivered []string
	networkUsed := false

	for _, group := range groups {
		book := BookSummary{Title: group.Title}

		for _, term := range group.Terms {
			if ctx.Err() != nil {
				summary.Interrupted = true
				break
			}

			result, fromCache, err := p.lookup(ctx, term, &networkUsed)
			if err != nil {
				summary.Interrupted = true
				break
			}
			if result == nil {
				log.Info("term not translated", slog.String("term", term), slog.String("book", group.Title))
				book.Failed = append(book.Failed, term)
				continue
			}
			if !fromCache {
				p.cache.Set(term, *result)
			}
			book.Results = append(book.Results, *result)
		}

		if len(book.Results) > 0 {
			filename := export.Filename(group.Title, p.now())
			data := export.Render(book.Results)

			// Delivery must survive cancellation: partial results are
			// worth more than a clean abort.
			if err := p.sink.Deliver(context.WithoutCancel(ctx), group.Title, filename, data); err != nil {
				log.Error("export failed", slog.String("book", group.Title), slog.String("error", err.Error()))
				book.ExportErr = err.Error()
			} else {
				book.File = filename
				summary.BooksExported++
				summary.TermsExported += len(book.Results)
				for _, r := range book.Results {
					delivered = append(delivered, r.Term)
				}
			}
		}

		summary.Books = append(summary.Books, book)
		if summary.Interrupted {
			break
		}
	}

	if err := p.cache.Persist(); err != nil {
		log.Error("cache persist failed", slog.String("error", err.Error()))
	}

	if len(delivered) > 0 {
		if err := p.history.Add(context.WithoutCancel(ctx), userID, delivered); err != nil {
			log.Error("history update failed", slog.String("error", err.Error()))
		}
	}

	if summary.TermsExported > 0 {
		summary.Outcome = OutcomeExported
	} else {
		summary.Outcome = OutcomeNothingTranslated
	}

	log.Info("run finished",
		slog.String("outcome", summary.Outcome.String()),
		slog.Int("terms_found", summary.TermsFound),
		slog.Int("terms_exported", summary.TermsExported),
		slog.Int("books_exported", summary.BooksExported),
		slog.Bool("interrupted", summary.Interrupted),
	)

	return summary, nil
}

// lookup consults the cache and, on a miss, the translator, pausing before
// the request when a previous network lookup already happened this run.
func (p *Pipeline) lookup(ctx context.Context, term string, networkUsed *bool) (*domain.TranslationResult, bool, error) {
	if cached, ok := p.cache.Get(term); ok {
		return &cached, true, nil
	}

	if *networkUsed {
		if err := p.wait(ctx); err != nil {
			return nil, false, err
		}
	}
	*networkUsed = true

	result, err := p.translator.Fetch(ctx, term)
	if err != nil {
		return nil, false, err
	}
	return result, false, nil
}

// throttle sleeps for a random interval within the configured bounds,
// returning early if ctx is cancelled.
func (p *Pipeline) throttle(ctx context.Context) error {
	min, max := p.cfg.ThrottleMin, p.cfg.ThrottleMax
	if max <= min {
		max = min + time.Second
	}
	d := min + time.Duration(rand.Int63n(int64(max-min)))

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// IsInputError reports whether err is one of the input-level failures the
// caller should present as "wrong file" feedback rather than a crash.
func IsInputError(err error) bool {
	return errors.Is(err, clippings.ErrInvalidFormat) || errors.Is(err, clippings.ErrUndecodable)
}
