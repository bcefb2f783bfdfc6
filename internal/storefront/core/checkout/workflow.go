// Package checkout turns cart contents plus a customer form into an order
// against the remote order contract. The Assembler does validation and the
// payload snapshot; the Workflow drives the submission state machine and
// reconciles cart state on the outcome.
package checkout

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/buildline/storefront/internal/storefront/core/cart"
	"github.com/buildline/storefront/internal/storefront/core/checkout/attemptlog"
	"github.com/buildline/storefront/internal/storefront/core/domain/entity"
	"github.com/buildline/storefront/internal/storefront/core/ports"
)

// Status is the UI-visible view of a session's submission lifecycle.
type Status struct {
	State       entity.SubmissionState
	OrderNumber string
	OrderID     string // backend identifier, set on success
	Message     string // user-facing detail, set on failure
}

// Workflow owns the at-most-one in-flight submission attempt per session.
// Success is the only path that mutates the cart store from here (it clears
// the session's cart); failure leaves the cart untouched so the user keeps
// their selections and may retry. Retries are always a fresh explicit
// Submit producing a new order number — nothing is retried automatically.
type Workflow struct {
	carts     *cart.Store
	assembler *Assembler
	gateway   ports.OrderGateway
	attempts  attemptlog.Repository // nil-safe: transitions not persisted if nil

	mu       sync.Mutex
	statuses map[string]*Status
}

func NewWorkflow(carts *cart.Store, assembler *Assembler, gateway ports.OrderGateway, attempts attemptlog.Repository) *Workflow {
	return &Workflow{
		carts:     carts,
		assembler: assembler,
		gateway:   gateway,
		attempts:  attempts,
		statuses:  make(map[string]*Status),
	}
}

// Submit runs one submission attempt for the session. Validation happens
// synchronously before any network traffic; a validation failure leaves the
// state machine where it was and constructs no OrderSubmission. While an
// attempt is in flight, further Submit calls for the same session return
// entity.ErrSubmissionInFlight without touching the network.
func (w *Workflow) Submit(ctx context.Context, sessionID string, info entity.CustomerInfo) (Status, error) {
	snapshot := w.carts.Get(sessionID)

	if err := w.assembler.Validate(snapshot, info); err != nil {
		return w.Status(sessionID), err
	}

	sub := w.assembler.Assemble(snapshot, info, time.Now().UTC())

	if !w.begin(sessionID, sub.OrderNumber) {
		return w.Status(sessionID), entity.ErrSubmissionInFlight
	}
	w.record(ctx, sessionID, sub.OrderNumber, attemptlog.StatusStarted, "")

	receipt, err := w.gateway.PlaceOrder(ctx, sub)
	if err != nil {
		// Cart intentionally untouched: the user keeps their selections.
		w.finish(sessionID, entity.SubmissionFailed, "", err.Error())
		w.record(ctx, sessionID, sub.OrderNumber, attemptlog.StatusFailed, err.Error())
		slog.ErrorContext(ctx, "order submission failed",
			"order_number", sub.OrderNumber, "error", err)
		return w.Status(sessionID), err
	}

	w.carts.Clear(sessionID)
	w.finish(sessionID, entity.SubmissionSucceeded, receipt.OrderID, receipt.Message)
	w.record(ctx, sessionID, sub.OrderNumber, attemptlog.StatusSucceeded, receipt.OrderID)
	slog.InfoContext(ctx, "order submitted",
		"order_number", sub.OrderNumber, "order_id", receipt.OrderID,
		"lines", sub.TotalLines, "units", sub.TotalUnits)
	return w.Status(sessionID), nil
}

// Status returns the session's current submission status. Sessions with no
// prior attempt read as Idle.
func (w *Workflow) Status(sessionID string) Status {
	w.mu.Lock()
	defer w.mu.Unlock()
	if st, ok := w.statuses[sessionID]; ok {
		return *st
	}
	return Status{State: entity.SubmissionIdle}
}

// begin transitions the session into Submitting unless an attempt is
// already in flight. Terminal states (Succeeded, Failed) and Idle all
// accept a fresh attempt.
func (w *Workflow) begin(sessionID, orderNumber string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if st, ok := w.statuses[sessionID]; ok && st.State == entity.SubmissionSubmitting {
		return false
	}
	w.statuses[sessionID] = &Status{
		State:       entity.SubmissionSubmitting,
		OrderNumber: orderNumber,
	}
	return true
}

func (w *Workflow) finish(sessionID string, state entity.SubmissionState, orderID, message string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	st := w.statuses[sessionID]
	st.State = state
	st.OrderID = orderID
	st.Message = message
}

func (w *Workflow) record(ctx context.Context, sessionID, orderNumber string, status attemptlog.Status, detail string) {
	if w.attempts == nil {
		return
	}
	entry := attemptlog.NewEntry(ctx, orderNumber, sessionID, status, detail)
	if err := w.attempts.Save(ctx, entry); err != nil {
		// The log is an audit trail; losing a row must not fail the order.
		slog.WarnContext(ctx, "attempt log write failed",
			"order_number", orderNumber, "error", err)
	}
}
