package providers

import (
	"errors"
	"fmt"
)

// ErrUnmapped indicates a version or book the provider has no mapping for.
// It is returned before any request is made.
var ErrUnmapped = errors.New("no provider mapping")

// FetchError describes a failed upstream chapter request.
type FetchError struct {
	Provider   string
	URL        string
	StatusCode int
	Status     string
	Err        error
}

func (e *FetchError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("%s API error: %s (%s)", e.Provider, e.Status, e.URL)
	case e.Err != nil:
		return fmt.Sprintf("%s API: %v (%s)", e.Provider, e.Err, e.URL)
	default:
		return fmt.Sprintf("%s API: request failed (%s)", e.Provider, e.URL)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

var errUnexpectedFormat = errors.New("unexpected response format")

func unmappedError(provider, kind, id string) error {
	return fmt.Errorf("%w: unknown %s %q for %s", ErrUnmapped, kind, id, provider)
}
