package translator

import (
	"strings"

	"github.com/heartmarshall/kindleword/internal/domain"
	"github.com/heartmarshall/kindleword/internal/provider"
)

// maxSenses caps how many translations/synonyms are aggregated into the
// comma-joined translation field.
const maxSenses = 5

// reduce applies the shared transformation from an adapter's raw response
// to the flat result shape: up to maxSenses case-insensitively deduplicated
// translations taken in group order (the primary sense group comes first),
// echoes of the queried term dropped, the first available example pair
// across all groups with inline emphasis markup stripped, and the
// transcription passed through as-is. Returns nil when no translation
// survives, which the cascade treats as adapter failure.
func reduce(term string, raw *provider.RawResult) *domain.TranslationResult {
	if raw == nil {
		return nil
	}

	termLower := strings.ToLower(strings.TrimSpace(term))

	var senses []string
	seen := make(map[string]struct{})
	var exampleSource, exampleTarget string

	for _, group := range raw.Groups {
		for _, tr := range group.Translations {
			tr = strings.TrimSpace(tr)
			if tr == "" {
				continue
			}
			key := strings.ToLower(tr)
			if key == termLower {
				continue
			}
			if _, ok := seen[key]; ok {
				continue
			}
			if len(senses) < maxSenses {
				seen[key] = struct{}{}
				senses = append(senses, tr)
			}
		}

		if exampleSource == "" && len(group.Examples) > 0 {
			exampleSource = stripEmphasis(group.Examples[0].Source)
			exampleTarget = stripEmphasis(group.Examples[0].Target)
		}
	}

	if len(senses) == 0 {
		return nil
	}

	return &domain.TranslationResult{
		Term:          strings.TrimSpace(term),
		Translation:   strings.Join(senses, ", "),
		Transcription: raw.Transcription,
		ExampleSource: exampleSource,
		ExampleTarget: exampleTarget,
	}
}

// stripEmphasis removes the <em> markup context APIs embed in examples.
func stripEmphasis(s string) string {
	s = strings.ReplaceAll(s, "<em>", "")
	s = strings.ReplaceAll(s, "</em>", "")
	return s
}
