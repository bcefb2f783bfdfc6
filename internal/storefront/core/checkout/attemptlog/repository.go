package attemptlog

import "context"

// Repository is the port for persisting attempt log entries. The checkout
// workflow depends on this abstraction, not on SQLite directly, so the
// implementation can be swapped for Postgres, in-memory (tests), etc.
type Repository interface {
	// Save appends a new log row. The table is an append-only audit log,
	// never an upsert.
	Save(ctx context.Context, entry *Attempt) error
}
