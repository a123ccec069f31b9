package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"partshub/internal/modules/catalog/domain"
	catalogout "partshub/internal/modules/catalog/port/out"

	_ "modernc.org/sqlite"
)

type SQLiteHistoryStore struct {
	db *sql.DB
}

func NewSQLiteHistoryStore(dbPath string) (catalogout.HistoryStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLiteHistoryStore{db: db}
	if err := store.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteHistoryStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS search_history (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  query TEXT NOT NULL,
  kind TEXT NOT NULL,
  results INTEGER NOT NULL,
  at TEXT NOT NULL
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create search_history table: %w", err)
	}
	return nil
}

func (s *SQLiteHistoryStore) Record(ctx context.Context, entry domain.HistoryEntry) error {
	const stmt = `INSERT INTO search_history (query, kind, results, at) VALUES (?, ?, ?, ?)`
	_, err := s.db.ExecContext(ctx, stmt,
		entry.Query,
		string(entry.Kind),
		entry.Results,
		entry.At.Format("2006-01-02T15:04:05Z07:00"),
	)
	if err != nil {
		return fmt.Errorf("record search: %w", err)
	}
	return nil
}

func (s *SQLiteHistoryStore) Recent(ctx context.Context, limit int) ([]domain.HistoryEntry, error) {
	const query = `SELECT query, kind, results, at FROM search_history ORDER BY id DESC LIMIT ?`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	defer rows.Close()

	var entries []domain.HistoryEntry
	for rows.Next() {
		var entry domain.HistoryEntry
		var kind, at string
		if err := rows.Scan(&entry.Query, &kind, &entry.Results, &at); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		entry.Kind = domain.SearchKind(kind)
		entry.At, _ = parseTimestamp(at)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return entries, nil
}
