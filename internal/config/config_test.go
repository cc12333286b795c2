package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("APP_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.env"))
	cfg := FromEnv()

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, 45, cfg.TrendWindowDays)
	assert.Equal(t, SourceBuiltin, cfg.ProgramSource)
	assert.Equal(t, "program_applications", cfg.DBProgramTable)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	require.NoError(t, cfg.Validate())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("APP_LISTEN_ADDR", "127.0.0.1:9000")
	t.Setenv("APP_TREND_WINDOW_DAYS", "30")
	t.Setenv("APP_PROGRAM_SOURCE", "SQLite")
	t.Setenv("APP_SQLITE_PATH", "/tmp/programs.db")
	t.Setenv("APP_LOG_LEVEL", "DEBUG")
	t.Setenv("APP_DB_PORT", "not-a-number")

	cfg := FromEnv()
	assert.Equal(t, "127.0.0.1:9000", cfg.ListenAddr)
	assert.Equal(t, 30, cfg.TrendWindowDays)
	assert.Equal(t, SourceSQLite, cfg.ProgramSource)
	assert.Equal(t, 3306, cfg.DBPort, "bad int falls back to default")
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	require.NoError(t, cfg.Validate())
}

func TestApplyEnvDefaultsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.env")
	content := strings.Join([]string{
		"# comment",
		"APP_TEST_PLAIN=one",
		`APP_TEST_QUOTED="two words"`,
		"export APP_TEST_EXPORTED='three'",
		"APP_TEST_PRESET=from-file",
		"garbage line",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	for _, k := range []string{"APP_TEST_PLAIN", "APP_TEST_QUOTED", "APP_TEST_EXPORTED"} {
		t.Setenv(k, "")
	}
	t.Setenv("APP_TEST_PRESET", "from-env")

	require.NoError(t, applyEnvDefaultsFromFile(path))
	assert.Equal(t, "one", os.Getenv("APP_TEST_PLAIN"))
	assert.Equal(t, "two words", os.Getenv("APP_TEST_QUOTED"))
	assert.Equal(t, "three", os.Getenv("APP_TEST_EXPORTED"))
	assert.Equal(t, "from-env", os.Getenv("APP_TEST_PRESET"))
}

func TestValidate(t *testing.T) {
	base := Config{TrendWindowDays: 45, Timezone: "UTC", LogLevel: "info", ProgramSource: SourceBuiltin}
	require.NoError(t, base.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"window", func(c *Config) { c.TrendWindowDays = 0 }, "APP_TREND_WINDOW_DAYS"},
		{"timezone", func(c *Config) { c.Timezone = "Mars/Olympus" }, "APP_TIMEZONE"},
		{"level", func(c *Config) { c.LogLevel = "loud" }, "APP_LOG_LEVEL"},
		{"source", func(c *Config) { c.ProgramSource = "redis" }, "unknown source"},
		{"yaml path", func(c *Config) { c.ProgramSource = SourceYAML }, "APP_PROGRAMS_FILE"},
		{"sqlite path", func(c *Config) { c.ProgramSource = SourceSQLite }, "APP_SQLITE_PATH"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestMySQLDSN(t *testing.T) {
	cfg := Config{
		DBUser: "u", DBPassword: "p", DBHost: "db", DBPort: 3307, DBName: "adm",
		DBConnTimeout: 5 * time.Second, DBQueryTimeout: 10 * time.Second,
	}
	dsn := cfg.MySQLDSN()
	assert.True(t, strings.HasPrefix(dsn, "u:p@tcp(db:3307)/adm?"), dsn)
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "timeout=5s")
}

func TestLocation(t *testing.T) {
	assert.Equal(t, time.UTC, Config{Timezone: "bogus/zone"}.Location())
	assert.Equal(t, time.UTC, Config{Timezone: "UTC"}.Location())
}
