// Package attemptlog defines the domain types for the order submission
// attempt log: a durable audit trail of every submission attempt the
// storefront makes against the remote order contract.
//
// Each transition of the checkout workflow writes one immutable row, so an
// operator can answer "what happened to order ORD-... from session X?" and
// jump straight to the matching distributed trace via the trace_id field.
// The cart itself is never persisted here; the log records attempts, not
// session state.
package attemptlog

import "time"

// Status is the lifecycle state of a submission attempt at log time.
type Status string

const (
	StatusStarted   Status = "STARTED"
	StatusSucceeded Status = "SUCCEEDED"
	StatusFailed    Status = "FAILED"
)

// Attempt is a single row in the order_attempts table: a point-in-time
// snapshot of one submission attempt.
type Attempt struct {
	// OrderNumber is the storefront-generated identifier of the attempt.
	// Every retry gets a fresh one, so rows group naturally per attempt.
	OrderNumber string

	// SessionID identifies the browsing session that submitted the order.
	SessionID string

	// Status is the lifecycle state when this row was written.
	Status Status

	// Detail carries the user-surfaced failure message on FAILED rows and
	// the backend order ID on SUCCEEDED rows. Empty for STARTED.
	Detail string

	// TraceID is the W3C trace ID from the OpenTelemetry span active when
	// this row was written, so a log row links directly to the full trace.
	TraceID string

	// SpanID pinpoints the exact span within the trace.
	SpanID string

	// RecordedAt is the wall-clock time of this entry.
	RecordedAt time.Time
}
