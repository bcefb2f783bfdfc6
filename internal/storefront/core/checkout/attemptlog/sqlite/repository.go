// Package sqlite provides a SQLite-backed implementation of
// attemptlog.Repository.
//
// WAL mode is enabled on Open so that readers never block the writer —
// the submit handler writes while an operator query may be reading.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/buildline/storefront/internal/storefront/core/checkout/attemptlog"

	// Register the pure-Go SQLite driver. modernc.org/sqlite avoids CGO,
	// which keeps the Docker build trivial.
	_ "modernc.org/sqlite"
)

// schema is the DDL executed once on startup. The table is append-only:
// each row is an immutable event in an attempt's lifecycle.
const schema = `
CREATE TABLE IF NOT EXISTS order_attempts (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,

    -- Storefront-generated order number. Not UNIQUE: one row per transition.
    order_number  TEXT NOT NULL,

    -- Browsing session that submitted the attempt.
    session_id    TEXT NOT NULL,

    -- Lifecycle state at the time this row was written.
    status        TEXT NOT NULL,

    -- Failure message on FAILED, backend order id on SUCCEEDED.
    detail        TEXT NOT NULL DEFAULT '',

    -- W3C trace/span ids from the active OTel span, for trace correlation.
    trace_id      TEXT NOT NULL DEFAULT '',
    span_id       TEXT NOT NULL DEFAULT '',

    -- RFC3339 stored as TEXT, SQLite idiom.
    recorded_at   TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_order_attempts_order_number
    ON order_attempts(order_number, recorded_at);

CREATE INDEX IF NOT EXISTS idx_order_attempts_session_id
    ON order_attempts(session_id, recorded_at);
`

// Repository is the SQLite implementation of attemptlog.Repository.
type Repository struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite database at the given path and applies
// the schema.
//
//	repo, err := sqlite.Open("./data/attempts.db")
func Open(path string) (*Repository, error) {
	// WAL enables concurrent readers; busy_timeout waits for locks instead
	// of failing immediately.
	dsn := fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", path)

	// "sqlite", not "sqlite3", for the modernc driver.
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlite: open %q: %w", path, err)
	}

	// SQLite performs best with a single writer connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: apply schema: %w", err)
	}

	return &Repository{db: db}, nil
}

// Close releases the database connection. Call it with defer in main().
func (r *Repository) Close() error {
	return r.db.Close()
}

// Save inserts a new attempt log row. Safe to call concurrently.
func (r *Repository) Save(ctx context.Context, entry *attemptlog.Attempt) error {
	const q = `
		INSERT INTO order_attempts
			(order_number, session_id, status, detail, trace_id, span_id, recorded_at)
		VALUES
			(?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, q,
		entry.OrderNumber,
		entry.SessionID,
		string(entry.Status),
		entry.Detail,
		entry.TraceID,
		entry.SpanID,
		entry.RecordedAt.UTC().Format("2006-01-02T15:04:05.999999999Z"),
	)
	if err != nil {
		return fmt.Errorf("sqlite: save attempt %q: %w", entry.OrderNumber, err)
	}
	return nil
}

// Latest returns the most recent log row for a given order number, or
// sql.ErrNoRows when the order number was never logged.
func (r *Repository) Latest(ctx context.Context, orderNumber string) (*attemptlog.Attempt, error) {
	const q = `
		SELECT order_number, session_id, status, detail, trace_id, span_id, recorded_at
		FROM order_attempts
		WHERE order_number = ?
		ORDER BY recorded_at DESC, id DESC
		LIMIT 1`

	var entry attemptlog.Attempt
	var status, recordedAt string
	err := r.db.QueryRowContext(ctx, q, orderNumber).Scan(
		&entry.OrderNumber,
		&entry.SessionID,
		&status,
		&entry.Detail,
		&entry.TraceID,
		&entry.SpanID,
		&recordedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: latest attempt for %q: %w", orderNumber, err)
	}

	entry.Status = attemptlog.Status(status)
	entry.RecordedAt, err = parseRFC3339(recordedAt)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}
