package trip

import "fmt"

// ValidationError reports a malformed Query. It is surfaced to the
// caller before any workflow stage executes.
type ValidationError struct {
	Err error
}

func NewValidationError(err error) *ValidationError {
	return &ValidationError{Err: err}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid trip query: %v", e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ProviderError reports a weather capability failure. It never escapes
// a planning run; the weather stage recovers with a local fallback.
type ProviderError struct {
	Provider string
	Err      error
}

func NewProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Err: err}
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("weather provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// AdvisoryError reports an advisory capability failure at the search or
// synthesis stage. It never escapes a planning run.
type AdvisoryError struct {
	Stage string
	Err   error
}

func NewAdvisoryError(stage string, err error) *AdvisoryError {
	return &AdvisoryError{Stage: stage, Err: err}
}

func (e *AdvisoryError) Error() string {
	return fmt.Sprintf("advisory %s: %v", e.Stage, e.Err)
}

func (e *AdvisoryError) Unwrap() error {
	return e.Err
}
