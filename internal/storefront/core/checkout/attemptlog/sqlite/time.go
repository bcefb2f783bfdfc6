package sqlite

import (
	"fmt"
	"time"
)

// parseRFC3339 converts the TEXT timestamps written by Save back to
// time.Time. SQLite has no native datetime type, so rows store RFC3339.
func parseRFC3339(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("sqlite: parse recorded_at %q: %w", s, err)
	}
	return t, nil
}
