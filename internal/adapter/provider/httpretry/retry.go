// Package httpretry wraps outbound provider requests with bounded retry on
// transient failures: connection errors, 429, and 5xx responses. Retry is
// same-adapter same-term recovery and is distinct from the orchestrator's
// provider-fallback policy.
package httpretry

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/heartmarshall/kindleword/internal/provider"
)

// Config bounds the retry loop.
type Config struct {
	// MaxAttempts is the total number of tries, first attempt included.
	MaxAttempts uint64
	// MaxInterval caps the exponential backoff between tries.
	MaxInterval time.Duration
}

// DefaultConfig allows 3 tries with exponential spacing capped at 5s.
func DefaultConfig() Config {
	return Config{MaxAttempts: 3, MaxInterval: 5 * time.Second}
}

// Do executes the request produced by newReq until it yields a
// non-retryable outcome or attempts are exhausted. newReq is called once
// per attempt so request bodies are rebuilt. Any response with a status
// below 500 and different from 429 is returned to the caller as-is,
// including 4xx; exhaustion returns an error wrapping provider.ErrTransient.
func Do(ctx context.Context, client *http.Client, cfg Config, log *slog.Logger, newReq func(ctx context.Context) (*http.Request, error)) (*http.Response, error) {
	if cfg.MaxAttempts == 0 {
		cfg = DefaultConfig()
	}

	attempt := 0
	op := func() (*http.Response, error) {
		attempt++

		req, err := newReq(ctx)
		if err != nil {
			return nil, backoff.Permanent(err)
		}

		resp, err := client.Do(req)
		if err != nil {
			log.WarnContext(ctx, "request failed",
				slog.Int("attempt", attempt),
				slog.String("error", err.Error()),
			)
			return nil, fmt.Errorf("%w: %v", provider.ErrTransient, err)
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			resp.Body.Close()
			log.WarnContext(ctx, "retryable status",
				slog.Int("attempt", attempt),
				slog.Int("status", resp.StatusCode),
			)
			return nil, fmt.Errorf("%w: status %d", provider.ErrTransient, resp.StatusCode)
		}

		return resp, nil
	}

	b := backoff.NewExponentialBackOff()
	b.MaxInterval = cfg.MaxInterval

	return backoff.RetryWithData(op, backoff.WithContext(backoff.WithMaxRetries(b, cfg.MaxAttempts-1), ctx))
}
