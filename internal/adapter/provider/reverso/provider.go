// Package reverso implements the context-dictionary adapter backed by the
// Reverso translation API. It is the richest adapter in the cascade:
// ranked translation variants per context sense plus paired example
// sentences.
package reverso

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/kindleword/internal/adapter/provider/httpretry"
	"github.com/heartmarshall/kindleword/internal/provider"
)

const defaultBaseURL = "https://api.reverso.net/translate/v1/translation"

// langCodes maps ISO 639-1 codes to the 3-letter codes Reverso expects.
var langCodes = map[string]string{
	"en": "eng",
	"ru": "rus",
	"de": "ger",
	"fr": "fra",
	"es": "spa",
	"it": "ita",
}

// Provider fetches context translations from the Reverso API.
type Provider struct {
	baseURL    string
	from       string
	to         string
	httpClient *http.Client
	retry      httpretry.Config
	log        *slog.Logger
}

// NewProvider creates a Provider translating from → to (ISO 639-1 codes).
func NewProvider(from, to string, retry httpretry.Config, logger *slog.Logger) *Provider {
	return NewProviderWithURL(defaultBaseURL, from, to, retry, logger)
}

// NewProviderWithURL creates a Provider with a custom endpoint (for testing).
func NewProviderWithURL(baseURL, from, to string, retry httpretry.Config, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    baseURL,
		from:       langCode(from),
		to:         langCode(to),
		httpClient: &http.Client{Timeout: 15 * time.Second},
		retry:      retry,
		log:        logger.With("adapter", "reverso"),
	}
}

// Name identifies the adapter in orchestrator logs.
func (p *Provider) Name() string { return "reverso" }

// Lookup queries Reverso for term and maps the response to the neutral
// raw-result shape. The main translation list becomes the primary sense
// group; each context result contributes a group with its variant and
// example pair.
func (p *Provider) Lookup(ctx context.Context, term string) (*provider.RawResult, error) {
	p.log.DebugContext(ctx, "reverso request", slog.String("term", term))

	body, err := json.Marshal(apiRequest{
		Format: "text",
		From:   p.from,
		To:     p.to,
		Input:  []string{term},
		Options: apiOptions{
			Origin:         "translation.web",
			ContextResults: true,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("reverso: encode request: %w", err)
	}

	resp, err := httpretry.Do(ctx, p.httpClient, p.retry, p.log, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Accept", "application/json")
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("reverso: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reverso: %w: unexpected status %d", provider.ErrSemantic, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reverso: %w: read body: %v", provider.ErrTransient, err)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(raw, &apiResp); err != nil {
		return nil, fmt.Errorf("reverso: %w: decode json: %v", provider.ErrSemantic, err)
	}

	result := mapAPIResponse(term, apiResp)

	p.log.DebugContext(ctx, "reverso response",
		slog.String("term", term),
		slog.Int("groups", len(result.Groups)),
	)

	return result, nil
}

// mapAPIResponse converts a Reverso response into a provider.RawResult.
// Reverso supplies no transcription, so that field stays empty.
func mapAPIResponse(term string, resp apiResponse) *provider.RawResult {
	result := &provider.RawResult{Lemma: term}

	if len(resp.Translation) > 0 {
		result.Groups = append(result.Groups, provider.SenseGroup{
			Translations: resp.Translation,
		})
	}

	for _, cr := range resp.ContextResults.Results {
		if cr.Translation == "" {
			continue
		}
		group := provider.SenseGroup{Translations: []string{cr.Translation}}
		if len(cr.SourceExamples) > 0 && len(cr.TargetExamples) > 0 {
			group.Examples = append(group.Examples, provider.ExamplePair{
				Source: cr.SourceExamples[0],
				Target: cr.TargetExamples[0],
			})
		}
		result.Groups = append(result.Groups, group)
	}

	return result
}

func langCode(iso string) string {
	if code, ok := langCodes[iso]; ok {
		return code
	}
	return iso
}
