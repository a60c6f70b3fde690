package catalog

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS lectures (
			id         TEXT PRIMARY KEY,
			title      TEXT NOT NULL,
			room       TEXT NOT NULL DEFAULT '',
			day        TEXT NOT NULL,
			start_slot INTEGER NOT NULL CHECK(start_slot BETWEEN 1 AND 24),
			span_slots INTEGER NOT NULL CHECK(span_slots >= 1)
		);

		CREATE INDEX IF NOT EXISTS idx_lectures_day ON lectures(day);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating lectures table: %w", err)
	}

	return nil
}
