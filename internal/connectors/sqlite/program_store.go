package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"admissions-dashboard/internal/admissions"
)

// ProgramStore keeps the per-program seed table in a SQLite file.
type ProgramStore struct {
	db *sql.DB
}

func NewProgramStore(path string) (*ProgramStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("sqlite path required")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	if _, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS program_applications (
  program TEXT PRIMARY KEY,
  applications INTEGER NOT NULL CHECK (applications >= 0),
  position INTEGER NOT NULL,
  updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_pa_position ON program_applications(position);`); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &ProgramStore{db: db}, nil
}

func (s *ProgramStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *ProgramStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// ListPrograms returns the stored rows in display order.
func (s *ProgramStore) ListPrograms(ctx context.Context) ([]admissions.ProgramCount, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT program, applications
FROM program_applications
ORDER BY position, program;
`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]admissions.ProgramCount, 0, 8)
	for rows.Next() {
		var row admissions.ProgramCount
		if err := rows.Scan(&row.Program, &row.Applications); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// ReplacePrograms swaps the whole table for rows, keeping their order.
func (s *ProgramStore) ReplacePrograms(ctx context.Context, rows []admissions.ProgramCount) (int, error) {
	if _, err := admissions.NewProgramTable(rows); err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM program_applications;`); err != nil {
		return 0, err
	}
	for i, row := range rows {
		if _, err := tx.ExecContext(ctx, `
INSERT INTO program_applications (program, applications, position)
VALUES (?, ?, ?);
`, strings.TrimSpace(row.Program), row.Applications, i); err != nil {
			return 0, fmt.Errorf("insert %q: %w", row.Program, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return len(rows), nil
}

// SeedIfEmpty writes rows only when the table holds no programs yet.
func (s *ProgramStore) SeedIfEmpty(ctx context.Context, rows []admissions.ProgramCount) (bool, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM program_applications;`).Scan(&count); err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	if _, err := s.ReplacePrograms(ctx, rows); err != nil {
		return false, err
	}
	return true, nil
}
