package http

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"admissions-dashboard/internal/admissions"
	"admissions-dashboard/internal/config"
	mysqlstore "admissions-dashboard/internal/connectors/mysql"
	"admissions-dashboard/internal/connectors/seedfile"
	sqlitestore "admissions-dashboard/internal/connectors/sqlite"
)

// seedInfo describes where the program table came from.
type seedInfo struct {
	Source   string    `json:"source"`
	Origin   string    `json:"origin,omitempty"`
	Programs int       `json:"programs"`
	Total    int64     `json:"total_applicants"`
	LoadedAt time.Time `json:"loaded_at"`
}

// loadProgramTable reads the seed table once from the configured source. The
// result is frozen; requests never touch the source again.
func loadProgramTable(ctx context.Context, cfg config.Config, logger *slog.Logger) (admissions.ProgramTable, seedInfo, error) {
	info := seedInfo{Source: cfg.ProgramSource}

	var (
		rows []admissions.ProgramCount
		err  error
	)
	switch cfg.ProgramSource {
	case config.SourceBuiltin, "":
		info.Source = config.SourceBuiltin
		rows = admissions.DefaultPrograms()
	case config.SourceYAML:
		info.Origin = cfg.ProgramsFile
		rows, err = seedfile.Load(cfg.ProgramsFile)
	case config.SourceSQLite:
		info.Origin = cfg.SQLitePath
		rows, err = loadFromSQLite(ctx, cfg.SQLitePath, logger)
	case config.SourceMySQL:
		info.Origin = fmt.Sprintf("%s:%d/%s.%s", cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBProgramTable)
		rows, err = loadFromMySQL(ctx, cfg)
	default:
		err = fmt.Errorf("unknown program source %q", cfg.ProgramSource)
	}
	if err != nil {
		return admissions.ProgramTable{}, info, fmt.Errorf("load programs from %s: %w", info.Source, err)
	}

	table, err := admissions.NewProgramTable(rows)
	if err != nil {
		return admissions.ProgramTable{}, info, fmt.Errorf("load programs from %s: %w", info.Source, err)
	}
	if table.Len() == 0 {
		return admissions.ProgramTable{}, info, fmt.Errorf("load programs from %s: no programs found", info.Source)
	}

	info.Programs = table.Len()
	info.Total = table.Total()
	info.LoadedAt = time.Now().UTC()
	return table, info, nil
}

func loadFromSQLite(ctx context.Context, path string, logger *slog.Logger) ([]admissions.ProgramCount, error) {
	store, err := sqlitestore.NewProgramStore(path)
	if err != nil {
		return nil, err
	}
	defer store.Close()

	seeded, err := store.SeedIfEmpty(ctx, admissions.DefaultPrograms())
	if err != nil {
		return nil, err
	}
	if seeded {
		logger.Info("seeded empty sqlite program table with built-in programs", "path", path)
	}
	return store.ListPrograms(ctx)
}

func loadFromMySQL(ctx context.Context, cfg config.Config) ([]admissions.ProgramCount, error) {
	store, err := mysqlstore.NewStore(cfg)
	if err != nil {
		return nil, err
	}
	defer store.Close()
	return store.ListPrograms(ctx)
}
