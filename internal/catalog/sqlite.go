package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/joonholee/siganpyo/internal/timetable"
)

// SQLite implements Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite catalog and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// List returns all catalog entries in insertion order.
func (s *SQLite) List(ctx context.Context) ([]Entry, error) {
	query := `
		SELECT id, title, room, day, start_slot, span_slots
		FROM lectures
		ORDER BY rowid
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing lectures: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating lectures: %w", err)
	}

	return entries, nil
}

// Get retrieves one entry by lecture id.
func (s *SQLite) Get(ctx context.Context, lectureID string) (Entry, error) {
	query := `
		SELECT id, title, room, day, start_slot, span_slots
		FROM lectures
		WHERE id = ?
	`
	row := s.db.QueryRowContext(ctx, query, lectureID)
	e, err := scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Entry{}, ErrLectureNotFound
	}
	if err != nil {
		return Entry{}, err
	}
	return e, nil
}

// Put inserts an entry. Returns ErrDuplicateID if the id already exists.
func (s *SQLite) Put(ctx context.Context, e Entry) error {
	query := `
		INSERT INTO lectures (id, title, room, day, start_slot, span_slots)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query,
		e.Lecture.ID,
		e.Lecture.Title,
		e.Room,
		e.Day,
		e.StartSlot,
		e.SpanSlots,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateID
		}
		return fmt.Errorf("inserting lecture: %w", err)
	}
	return nil
}

// Seed inserts the built-in sample lectures when the catalog is empty.
func (s *SQLite) Seed(ctx context.Context) error {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM lectures").Scan(&count); err != nil {
		return fmt.Errorf("counting lectures: %w", err)
	}
	if count > 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO lectures (id, title, room, day, start_slot, span_slots)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing seed insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, e := range seedEntries {
		if _, err := stmt.ExecContext(ctx,
			e.Lecture.ID, e.Lecture.Title, e.Room, e.Day, e.StartSlot, e.SpanSlots,
		); err != nil {
			return fmt.Errorf("seeding lecture %q: %w", e.Lecture.ID, err)
		}
	}

	return tx.Commit()
}

// Close closes the database connection.
func (s *SQLite) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (Entry, error) {
	var e Entry
	var lec timetable.Lecture
	err := row.Scan(&lec.ID, &lec.Title, &e.Room, &e.Day, &e.StartSlot, &e.SpanSlots)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Entry{}, err
		}
		return Entry{}, fmt.Errorf("scanning lecture: %w", err)
	}
	e.Lecture = lec
	return e, nil
}

func isUniqueViolation(err error) bool {
	// modernc.org/sqlite reports constraint failures in the error text.
	return err != nil && strings.Contains(err.Error(), "constraint failed")
}
