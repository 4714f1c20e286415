package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/heartmarshall/kindleword/internal/adapter/provider/gtranslate"
	"github.com/heartmarshall/kindleword/internal/adapter/provider/httpretry"
	"github.com/heartmarshall/kindleword/internal/adapter/provider/reverso"
	"github.com/heartmarshall/kindleword/internal/adapter/provider/yandexdict"
	"github.com/heartmarshall/kindleword/internal/adapter/sqlite"
	"github.com/heartmarshall/kindleword/internal/adapter/sqlite/history"
	"github.com/heartmarshall/kindleword/internal/cache"
	"github.com/heartmarshall/kindleword/internal/clippings"
	"github.com/heartmarshall/kindleword/internal/config"
	"github.com/heartmarshall/kindleword/internal/export"
	"github.com/heartmarshall/kindleword/internal/pipeline"
	"github.com/heartmarshall/kindleword/internal/provider"
	"github.com/heartmarshall/kindleword/internal/translator"
)

// Options are the per-invocation inputs supplied by the entry point.
type Options struct {
	// ClippingsPath is the "My Clippings.txt" file to process.
	ClippingsPath string
	// UserID selects whose history suppresses already-seen terms.
	UserID int64
}

// Run loads configuration, assembles the pipeline, and processes one
// clippings file. The returned summary is non-nil whenever the run got
// past input validation.
func Run(ctx context.Context, opts Options) (*pipeline.Summary, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting run",
		slog.String("version", BuildVersion()),
		slog.String("file", opts.ClippingsPath),
		slog.Int64("user_id", opts.UserID),
	)

	raw, err := os.ReadFile(opts.ClippingsPath)
	if err != nil {
		return nil, fmt.Errorf("read clippings: %w", err)
	}

	db, err := sqlite.Open(cfg.History.Path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	retryCfg := httpretry.Config{
		MaxAttempts: cfg.Providers.RetryMaxAttempts,
		MaxInterval: cfg.Providers.RetryMaxInterval,
	}

	from, to := cfg.Pipeline.SourceLang, cfg.Pipeline.TargetLang
	gt := gtranslate.NewProvider(from, to, logger)

	// The rich chain ends with the plain adapter, so a word is never
	// abandoned while an adapter remains untried.
	rich := []provider.Provider{reverso.NewProvider(from, to, retryCfg, logger)}
	if cfg.Providers.YandexDictKey != "" {
		rich = append(rich, yandexdict.NewProvider(cfg.Providers.YandexDictKey, from, to, retryCfg, logger))
	}
	rich = append(rich, gt)
	plain := []provider.Provider{gt}

	smart := translator.New(logger, rich, plain, cfg.Pipeline.PhraseTokenThreshold)

	p := pipeline.New(
		logger,
		clippings.NewParser(cfg.Pipeline.MaxTermTokens),
		smart,
		cache.Open(cfg.Cache.Path, logger),
		history.New(db),
		export.NewFileSink(cfg.Output.Dir, logger),
		pipeline.Config{
			ThrottleMin: cfg.Pipeline.ThrottleMin,
			ThrottleMax: cfg.Pipeline.ThrottleMax,
		},
	)

	return p.Run(ctx, opts.UserID, raw)
}
