package attemptlog

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/trace"
)

// TraceInfo holds the OTel identifiers extracted from a context.
type TraceInfo struct {
	TraceID string // 32 lowercase hex chars, empty when no active span
	SpanID  string // 16 lowercase hex chars
}

// ExtractTraceInfo reads the active OpenTelemetry span from ctx and returns
// its trace_id and span_id as hex strings. Contexts without an active span
// (e.g. unit tests) yield empty strings.
func ExtractTraceInfo(ctx context.Context) TraceInfo {
	sc := trace.SpanFromContext(ctx).SpanContext()
	if !sc.IsValid() {
		return TraceInfo{}
	}
	return TraceInfo{
		TraceID: sc.TraceID().String(),
		SpanID:  sc.SpanID().String(),
	}
}

// NewEntry builds an Attempt with the trace info extracted from ctx.
func NewEntry(ctx context.Context, orderNumber, sessionID string, status Status, detail string) *Attempt {
	ti := ExtractTraceInfo(ctx)
	return &Attempt{
		OrderNumber: orderNumber,
		SessionID:   sessionID,
		Status:      status,
		Detail:      detail,
		TraceID:     ti.TraceID,
		SpanID:      ti.SpanID,
		RecordedAt:  time.Now().UTC(),
	}
}
