// Package yandexdict implements the secondary rich adapter backed by the
// Yandex Dictionary API. Unlike Reverso it supplies an IPA-like
// transcription, so it also enriches short terms when it is reached in the
// cascade.
package yandexdict

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/heartmarshall/kindleword/internal/adapter/provider/httpretry"
	"github.com/heartmarshall/kindleword/internal/provider"
)

const defaultBaseURL = "https://dictionary.yandex.net/api/v1/dicservice.json/lookup"

// Provider fetches dictionary articles from the Yandex Dictionary API.
type Provider struct {
	baseURL    string
	apiKey     string
	lang       string
	httpClient *http.Client
	retry      httpretry.Config
	log        *slog.Logger
}

// NewProvider creates a Provider for the from-to direction (ISO 639-1
// codes, e.g. "en", "ru").
func NewProvider(apiKey, from, to string, retry httpretry.Config, logger *slog.Logger) *Provider {
	return NewProviderWithURL(defaultBaseURL, apiKey, from, to, retry, logger)
}

// NewProviderWithURL creates a Provider with a custom endpoint (for testing).
func NewProviderWithURL(baseURL, apiKey, from, to string, retry httpretry.Config, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    baseURL,
		apiKey:     apiKey,
		lang:       from + "-" + to,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		retry:      retry,
		log:        logger.With("adapter", "yandexdict"),
	}
}

// Name identifies the adapter in orchestrator logs.
func (p *Provider) Name() string { return "yandexdict" }

// Lookup queries the dictionary for term. Each article becomes a sense
// group: the translation text plus its synonyms, and example pairs where
// the API supplies a translated example. Transcription comes from the
// first article that has one, bracketed.
func (p *Provider) Lookup(ctx context.Context, term string) (*provider.RawResult, error) {
	q := url.Values{}
	q.Set("key", p.apiKey)
	q.Set("lang", p.lang)
	q.Set("text", term)
	reqURL := p.baseURL + "?" + q.Encode()

	p.log.DebugContext(ctx, "yandexdict request", slog.String("term", term))

	resp, err := httpretry.Do(ctx, p.httpClient, p.retry, p.log, func(ctx context.Context) (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("yandexdict: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// 401/403 mean a bad or exhausted key, 413 a too-long text; none
		// are worth retrying here.
		return nil, fmt.Errorf("yandexdict: %w: unexpected status %d", provider.ErrSemantic, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("yandexdict: %w: read body: %v", provider.ErrTransient, err)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(raw, &apiResp); err != nil {
		return nil, fmt.Errorf("yandexdict: %w: decode json: %v", provider.ErrSemantic, err)
	}

	result := mapAPIResponse(term, apiResp)

	p.log.DebugContext(ctx, "yandexdict response",
		slog.String("term", term),
		slog.Int("groups", len(result.Groups)),
	)

	return result, nil
}

// mapAPIResponse converts a Yandex Dictionary response into a
// provider.RawResult.
func mapAPIResponse(term string, resp apiResponse) *provider.RawResult {
	result := &provider.RawResult{Lemma: term}

	for _, def := range resp.Def {
		if result.Lemma == term && def.Text != "" {
			result.Lemma = def.Text
		}
		if result.Transcription == "" && def.Ts != "" {
			result.Transcription = "[" + def.Ts + "]"
		}

		for _, tr := range def.Tr {
			if tr.Text == "" {
				continue
			}
			group := provider.SenseGroup{Translations: []string{tr.Text}}
			for _, syn := range tr.Syn {
				if syn.Text != "" {
					group.Translations = append(group.Translations, syn.Text)
				}
			}
			for _, ex := range tr.Ex {
				if ex.Text == "" || len(ex.Tr) == 0 || ex.Tr[0].Text == "" {
					continue
				}
				group.Examples = append(group.Examples, provider.ExamplePair{
					Source: ex.Text,
					Target: ex.Tr[0].Text,
				})
			}
			result.Groups = append(result.Groups, group)
		}
	}

	return result
}
