package provider

import "errors"

// Failure taxonomy for adapter lookups. Transient failures (network,
// timeout, 429, 5xx) are retried inside the adapter with capped exponential
// backoff; semantic failures (malformed or unexpectedly shaped response)
// are not retried, as retrying a malformed response rarely helps. Both
// degrade to a fallback attempt once they escape the adapter.
var (
	ErrTransient = errors.New("provider: transient failure")
	ErrSemantic  = errors.New("provider: semantic failure")
)

// IsTransient reports whether err is (or wraps) a transient failure.
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransient)
}
