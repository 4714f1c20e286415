// Package gtranslate implements the plain adapter backed by the public
// Google Translate gtx endpoint. It yields a single best translation with
// no enrichment, which is exactly what full phrases need: the rich
// adapters degrade badly on anything longer than a couple of words.
package gtranslate

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/heartmarshall/kindleword/internal/provider"
)

const defaultBaseURL = "https://translate.googleapis.com/translate_a/single"

// Provider fetches translations from the gtx endpoint.
type Provider struct {
	baseURL string
	from    string
	to      string
	client  *resty.Client
	log     *slog.Logger
}

// NewProvider creates a Provider translating from → to (ISO 639-1 codes).
func NewProvider(from, to string, logger *slog.Logger) *Provider {
	return NewProviderWithURL(defaultBaseURL, from, to, logger)
}

// NewProviderWithURL creates a Provider with a custom endpoint (for testing).
func NewProviderWithURL(baseURL, from, to string, logger *slog.Logger) *Provider {
	client := resty.New().
		SetTimeout(10 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetRetryMaxWaitTime(4 * time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if err != nil {
				return true
			}
			return r.StatusCode() == http.StatusTooManyRequests || r.StatusCode() >= 500
		})

	return &Provider{
		baseURL: baseURL,
		from:    from,
		to:      to,
		client:  client,
		log:     logger.With("adapter", "gtranslate"),
	}
}

// Name identifies the adapter in orchestrator logs.
func (p *Provider) Name() string { return "gtranslate" }

// Lookup translates term and wraps the single best translation in a
// one-group raw result. No transcription, no examples.
func (p *Provider) Lookup(ctx context.Context, term string) (*provider.RawResult, error) {
	p.log.DebugContext(ctx, "gtranslate request", slog.String("term", term))

	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"client": "gtx",
			"sl":     p.from,
			"tl":     p.to,
			"dt":     "t",
			"q":      term,
		}).
		Get(p.baseURL)
	if err != nil {
		return nil, fmt.Errorf("gtranslate: %w: %v", provider.ErrTransient, err)
	}

	switch {
	case resp.StatusCode() == http.StatusTooManyRequests || resp.StatusCode() >= 500:
		return nil, fmt.Errorf("gtranslate: %w: status %d", provider.ErrTransient, resp.StatusCode())
	case resp.StatusCode() != http.StatusOK:
		return nil, fmt.Errorf("gtranslate: %w: unexpected status %d", provider.ErrSemantic, resp.StatusCode())
	}

	translation, err := parseGtxBody(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("gtranslate: %w: %v", provider.ErrSemantic, err)
	}

	result := &provider.RawResult{Lemma: term}
	if translation != "" {
		result.Groups = []provider.SenseGroup{{Translations: []string{translation}}}
	}
	return result, nil
}

// parseGtxBody extracts the translated text from the gtx response, which is
// a nested JSON array: the first element holds one segment per source
// sentence, each segment an array whose first element is the translated
// text. Segments are concatenated.
func parseGtxBody(body []byte) (string, error) {
	var top []json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil {
		return "", fmt.Errorf("decode body: %v", err)
	}
	if len(top) == 0 {
		return "", fmt.Errorf("empty response array")
	}

	var segments []json.RawMessage
	if err := json.Unmarshal(top[0], &segments); err != nil {
		return "", fmt.Errorf("decode segments: %v", err)
	}

	var b strings.Builder
	for _, seg := range segments {
		var fields []json.RawMessage
		if err := json.Unmarshal(seg, &fields); err != nil {
			return "", fmt.Errorf("decode segment: %v", err)
		}
		if len(fields) == 0 {
			continue
		}
		var text string
		if err := json.Unmarshal(fields[0], &text); err != nil {
			return "", fmt.Errorf("decode segment text: %v", err)
		}
		b.WriteString(text)
	}

	return strings.TrimSpace(b.String()), nil
}
