// Package provider defines the contract every translation-service adapter
// satisfies and the neutral raw-result shape the orchestrator reduces.
package provider

import "context"

// RawResult is the normalized raw response from one lookup service.
// Adapters are polymorphic over the capability set: every adapter produces
// sense groups with translations; transcription and example pairs are
// optional and absent fields stay zero.
type RawResult struct {
	// Lemma is the headword the service resolved, which may differ from
	// the queried term. Cache and history keys always use the original
	// term, never the lemma.
	Lemma string

	// Transcription is an IPA-like bracketed form, when supplied.
	Transcription string

	// Groups are sense groups ordered most-frequent first.
	Groups []SenseGroup
}

// SenseGroup is one sense of the term with its ranked translations and
// usage examples.
type SenseGroup struct {
	Translations []string
	Examples     []ExamplePair
}

// ExamplePair is a source-language sentence with its target-language
// counterpart.
type ExamplePair struct {
	Source string
	Target string
}

// Empty reports whether the result carries no translations at all.
func (r *RawResult) Empty() bool {
	if r == nil {
		return true
	}
	for _, g := range r.Groups {
		if len(g.Translations) > 0 {
			return false
		}
	}
	return true
}

// Provider is a single external lookup service. Implementations own their
// endpoint, authentication, and request shaping; transient I/O failures are
// retried inside the adapter, so an error returned here is final for this
// adapter and the caller moves on to the next one in its chain.
type Provider interface {
	Name() string
	Lookup(ctx context.Context, term string) (*RawResult, error)
}
