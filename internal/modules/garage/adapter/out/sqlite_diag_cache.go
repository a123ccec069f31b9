package out

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"partshub/internal/modules/garage/domain"
	garageout "partshub/internal/modules/garage/port/out"
	"partshub/internal/platform/clock"

	_ "modernc.org/sqlite"
)

// Diagnoses stay valid for a week; a code rarely changes meaning but
// the backend prompt does improve over time.
const diagnosisTTL = 7 * 24 * time.Hour

type SQLiteDiagnosisCache struct {
	db    *sql.DB
	clock clock.Clock
}

func NewSQLiteDiagnosisCache(dbPath string, clk clock.Clock) (garageout.DiagnosisCache, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	cache := &SQLiteDiagnosisCache{db: db, clock: clk}
	if err := cache.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return cache, nil
}

func (c *SQLiteDiagnosisCache) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS diagnosis_cache (
  vehicle TEXT NOT NULL,
  code TEXT NOT NULL,
  diagnosis TEXT NOT NULL,
  created_at TEXT NOT NULL,
  PRIMARY KEY (vehicle, code)
);
`
	if _, err := c.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create diagnosis_cache table: %w", err)
	}
	return nil
}

func (c *SQLiteDiagnosisCache) Get(ctx context.Context, vehicle, code string) (domain.Diagnosis, bool, error) {
	const query = `SELECT diagnosis, created_at FROM diagnosis_cache WHERE vehicle = ? AND code = ?`
	var raw, createdAt string
	err := c.db.QueryRowContext(ctx, query, vehicle, code).Scan(&raw, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Diagnosis{}, false, nil
	}
	if err != nil {
		return domain.Diagnosis{}, false, fmt.Errorf("read diagnosis cache: %w", err)
	}
	at, err := time.Parse("2006-01-02T15:04:05Z07:00", createdAt)
	if err != nil || c.clock.Now().Sub(at) > diagnosisTTL {
		return domain.Diagnosis{}, false, nil
	}
	var diagnosis domain.Diagnosis
	if err := json.Unmarshal([]byte(raw), &diagnosis); err != nil {
		return domain.Diagnosis{}, false, fmt.Errorf("decode cached diagnosis: %w", err)
	}
	return diagnosis, true, nil
}

func (c *SQLiteDiagnosisCache) Put(ctx context.Context, vehicle, code string, diagnosis domain.Diagnosis) error {
	raw, err := json.Marshal(diagnosis)
	if err != nil {
		return fmt.Errorf("encode diagnosis: %w", err)
	}
	const stmt = `
INSERT INTO diagnosis_cache (vehicle, code, diagnosis, created_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(vehicle, code) DO UPDATE SET
  diagnosis=excluded.diagnosis,
  created_at=excluded.created_at;
`
	_, err = c.db.ExecContext(ctx, stmt, vehicle, code, string(raw), c.clock.Now().Format("2006-01-02T15:04:05Z07:00"))
	if err != nil {
		return fmt.Errorf("write diagnosis cache: %w", err)
	}
	return nil
}
