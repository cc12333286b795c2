package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"time"

	_ "github.com/go-sql-driver/mysql"

	"admissions-dashboard/internal/admissions"
	"admissions-dashboard/internal/config"
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,63}$`)

// Store reads the per-program seed table from MySQL.
type Store struct {
	db           *sql.DB
	queryTimeout time.Duration
	table        string
}

// NewStore creates a MySQL-backed store.
func NewStore(cfg config.Config) (*Store, error) {
	if !tableNamePattern.MatchString(cfg.DBProgramTable) {
		return nil, fmt.Errorf("invalid program table name %q", cfg.DBProgramTable)
	}

	db, err := sql.Open("mysql", cfg.MySQLDSN())
	if err != nil {
		return nil, err
	}

	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DBConnTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, queryTimeout: cfg.DBQueryTimeout, table: cfg.DBProgramTable}, nil
}

func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// ListPrograms returns program rows ordered by their position column.
func (s *Store) ListPrograms(ctx context.Context) ([]admissions.ProgramCount, error) {
	if s.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.queryTimeout)
		defer cancel()
	}

	query := fmt.Sprintf(`
SELECT program, applications
FROM %s
ORDER BY position, program;
`, s.table)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]admissions.ProgramCount, 0, 8)
	for rows.Next() {
		var (
			row          admissions.ProgramCount
			applications sql.NullInt64
		)
		if err := rows.Scan(&row.Program, &applications); err != nil {
			return nil, err
		}
		if applications.Valid {
			row.Applications = applications.Int64
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
