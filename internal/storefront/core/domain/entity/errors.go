package entity

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyCart is returned when a submission is attempted with no lines.
// The user adds items and retries; no network call is made.
var ErrEmptyCart = errors.New("cart is empty")

// ErrSubmissionInFlight is returned when submit is invoked while a previous
// attempt for the same session is still awaiting its response. Guards
// against duplicate orders from a double click.
var ErrSubmissionInFlight = errors.New("order submission already in flight")

// ValidationError reports required customer fields that were missing or
// malformed. Raised before any network traffic.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing or invalid fields: %s", strings.Join(e.Fields, ", "))
}

// UpstreamError reports a non-2xx response from one of the remote contracts.
type UpstreamError struct {
	Operation  string
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: upstream returned status %d", e.Operation, e.StatusCode)
}

// CatalogLoadError wraps a failure to fetch or decode the remote catalog.
type CatalogLoadError struct {
	Err error
}

func (e *CatalogLoadError) Error() string {
	return fmt.Sprintf("catalog load failed: %v", e.Err)
}

func (e *CatalogLoadError) Unwrap() error {
	return e.Err
}
