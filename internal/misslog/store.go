// Package misslog records glossary lookup misses for content authors.
// A miss is not an error for the reader (the word simply renders as
// plain text); authors still want to know which terms readers clicked
// that the glossary does not cover.
package misslog

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rfcpress/rfcpress/internal/db"
	"github.com/rfcpress/rfcpress/internal/glossary"
)

// Miss is one distinct unresolved query on one page, with a hit counter.
type Miss struct {
	ID         string    `json:"id"`
	Query      string    `json:"query"`
	Normalized string    `json:"normalized"`
	Page       string    `json:"page,omitempty"`
	Hits       int       `json:"hits"`
	FirstSeen  time.Time `json:"first_seen"`
	LastSeen   time.Time `json:"last_seen"`
}

// Store persists lookup misses.
type Store struct {
	db *db.DB
}

// NewStore creates a miss-log store.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Record upserts a miss for the given query and page. Repeated misses of
// the same normalized query on the same page bump the hit counter.
func (s *Store) Record(ctx context.Context, query, page string) error {
	now := time.Now().UTC()
	normalized := glossary.Normalize(query)

	res, err := s.db.ExecContext(ctx,
		`UPDATE glossary_misses SET hits = hits + 1, last_seen = ?, query = ?
		 WHERE normalized = ? AND page = ?`,
		now, query, normalized, page,
	)
	if err != nil {
		return fmt.Errorf("updating miss: %w", err)
	}
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO glossary_misses (id, query, normalized, page, hits, first_seen, last_seen)
		 VALUES (?, ?, ?, ?, 1, ?, ?)`,
		uuid.New().String(), query, normalized, page, now, now,
	)
	if err != nil {
		return fmt.Errorf("inserting miss: %w", err)
	}
	return nil
}

// List returns misses ordered by hit count, most frequent first.
func (s *Store) List(ctx context.Context, limit int) ([]Miss, error) {
	query := `SELECT id, query, normalized, page, hits, first_seen, last_seen
		 FROM glossary_misses ORDER BY hits DESC, last_seen DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing misses: %w", err)
	}
	defer rows.Close()

	var misses []Miss
	for rows.Next() {
		var m Miss
		var page sql.NullString
		if err := rows.Scan(&m.ID, &m.Query, &m.Normalized, &page, &m.Hits, &m.FirstSeen, &m.LastSeen); err != nil {
			return nil, fmt.Errorf("scanning miss: %w", err)
		}
		m.Page = page.String
		misses = append(misses, m)
	}
	return misses, rows.Err()
}

// Clear deletes all recorded misses and returns how many were removed.
func (s *Store) Clear(ctx context.Context) (int, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM glossary_misses`)
	if err != nil {
		return 0, fmt.Errorf("clearing misses: %w", err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

// Count returns the number of distinct recorded misses.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM glossary_misses`).Scan(&count)
	return count, err
}
