package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SubmissionState is the UI-visible lifecycle of an order submission attempt.
type SubmissionState string

const (
	SubmissionIdle       SubmissionState = "IDLE"
	SubmissionSubmitting SubmissionState = "SUBMITTING"
	SubmissionSucceeded  SubmissionState = "SUCCEEDED"
	SubmissionFailed     SubmissionState = "FAILED"
)

// SubmissionLine maps one cart line into the order payload.
type SubmissionLine struct {
	ItemID    int64
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// OrderSubmission is the immutable snapshot built at submit time from the
// cart and the customer form. It lives for exactly one attempt: constructed
// by the assembler, posted once, then discarded whatever the outcome.
// Retries produce a fresh submission with a fresh order number.
type OrderSubmission struct {
	OrderNumber string
	PlacedAt    time.Time
	Lines       []SubmissionLine

	// Aggregates are computed from Lines with the same arithmetic the cart
	// uses for its own reads, so the two always agree for a given snapshot.
	TotalLines  int
	TotalUnits  int
	TotalAmount decimal.Decimal

	Customer CustomerInfo
}

// OrderReceipt is the backend's acknowledgement of an accepted submission.
type OrderReceipt struct {
	OrderID string
	Message string
}
