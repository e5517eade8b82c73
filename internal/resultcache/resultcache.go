// Package resultcache persists extracted records in SQLite so later
// commands can look titles up without re-parsing the source pages.
package resultcache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/veldt/tracklens/pkg/descriptor"
)

// ErrNotFound is returned when a record id has never been stored.
var ErrNotFound = errors.New("record not found")

const schema = `
CREATE TABLE IF NOT EXISTS records (
	id         TEXT PRIMARY KEY,
	group_id   TEXT NOT NULL DEFAULT '',
	category   TEXT NOT NULL,
	title      TEXT NOT NULL DEFAULT '',
	payload    TEXT NOT NULL,
	updated_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_records_title ON records(title);
`

// Store is a SQLite-backed record cache. Writes are last-write-wins per
// record id.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the cache database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open cache %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply cache schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

// Put upserts one record. The record is stored whole as a JSON payload;
// the indexed columns exist only to query by.
func (s *Store) Put(ctx context.Context, rec *descriptor.Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record %s: %w", rec.ID, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO records (id, group_id, category, title, payload, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			group_id = excluded.group_id,
			category = excluded.category,
			title = excluded.title,
			payload = excluded.payload,
			updated_at = excluded.updated_at`,
		rec.ID, rec.GroupID, rec.Category.String(), rec.Group, string(payload), time.Now(),
	)
	if err != nil {
		return fmt.Errorf("store record %s: %w", rec.ID, err)
	}
	return nil
}

// PutAll stores every record of a result set.
func (s *Store) PutAll(ctx context.Context, recs []*descriptor.Record) error {
	for _, rec := range recs {
		if err := s.Put(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

// Get retrieves one record by id. Returns ErrNotFound when absent.
func (s *Store) Get(ctx context.Context, id string) (*descriptor.Record, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		"SELECT payload FROM records WHERE id = ?", id,
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get record %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get record %s: %w", id, err)
	}

	rec := &descriptor.Record{}
	if err := json.Unmarshal([]byte(payload), rec); err != nil {
		return nil, fmt.Errorf("decode record %s: %w", id, err)
	}
	return rec, nil
}

// Titles returns the distinct non-empty stored titles.
func (s *Store) Titles(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT DISTINCT title FROM records WHERE title != '' ORDER BY title",
	)
	if err != nil {
		return nil, fmt.Errorf("list titles: %w", err)
	}
	defer rows.Close()

	var titles []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("scan title: %w", err)
		}
		titles = append(titles, t)
	}
	return titles, rows.Err()
}

// Len reports the number of stored records.
func (s *Store) Len(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM records").Scan(&n); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}
	return n, nil
}

// LookupTitle fuzzy-matches query against the stored titles and returns
// the records of the best-matching one. Matches below medium confidence
// are treated as misses.
func (s *Store) LookupTitle(ctx context.Context, query string) (string, []*descriptor.Record, error) {
	titles, err := s.Titles(ctx)
	if err != nil {
		return "", nil, err
	}

	match := descriptor.MatchTitle(query, titles)
	if match.Confidence < descriptor.ConfidenceMedium {
		return "", nil, fmt.Errorf("lookup %q: %w", query, ErrNotFound)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT payload FROM records WHERE title = ? ORDER BY id", match.Title,
	)
	if err != nil {
		return "", nil, fmt.Errorf("lookup %q: %w", query, err)
	}
	defer rows.Close()

	var recs []*descriptor.Record
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return "", nil, fmt.Errorf("scan record: %w", err)
		}
		rec := &descriptor.Record{}
		if err := json.Unmarshal([]byte(payload), rec); err != nil {
			return "", nil, fmt.Errorf("decode record: %w", err)
		}
		recs = append(recs, rec)
	}
	return match.Title, recs, rows.Err()
}
