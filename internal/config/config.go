package config

import (
	"bufio"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Program seed sources accepted by APP_PROGRAM_SOURCE.
const (
	SourceBuiltin = "builtin"
	SourceYAML    = "yaml"
	SourceSQLite  = "sqlite"
	SourceMySQL   = "mysql"
)

// Config holds runtime configuration for the API service.
type Config struct {
	ListenAddr      string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	LogLevel  string
	LogFormat string

	TrendWindowDays int
	Timezone        string

	ProgramSource string
	ProgramsFile  string
	SQLitePath    string

	DBHost         string
	DBPort         int
	DBUser         string
	DBPassword     string
	DBName         string
	DBProgramTable string
	DBConnTimeout  time.Duration
	DBQueryTimeout time.Duration
}

// FromEnv loads configuration from environment variables with sensible defaults.
func FromEnv() Config {
	loadConfigDefaultsFromFile()

	return Config{
		ListenAddr:      getEnv("APP_LISTEN_ADDR", ":8080"),
		ReadTimeout:     time.Duration(getEnvInt("APP_READ_TIMEOUT_SEC", 10)) * time.Second,
		WriteTimeout:    time.Duration(getEnvInt("APP_WRITE_TIMEOUT_SEC", 20)) * time.Second,
		ShutdownTimeout: time.Duration(getEnvInt("APP_SHUTDOWN_TIMEOUT_SEC", 10)) * time.Second,
		LogLevel:        strings.ToLower(getEnv("APP_LOG_LEVEL", "info")),
		LogFormat:       strings.ToLower(getEnv("APP_LOG_FORMAT", "json")),
		TrendWindowDays: getEnvInt("APP_TREND_WINDOW_DAYS", 45),
		Timezone:        getEnv("APP_TIMEZONE", "UTC"),
		ProgramSource:   strings.ToLower(getEnv("APP_PROGRAM_SOURCE", SourceBuiltin)),
		ProgramsFile:    getEnv("APP_PROGRAMS_FILE", ""),
		SQLitePath:      getEnv("APP_SQLITE_PATH", ""),
		DBHost:          getEnv("APP_DB_HOST", "127.0.0.1"),
		DBPort:          getEnvInt("APP_DB_PORT", 3306),
		DBUser:          getEnv("APP_DB_USER", "admissions"),
		DBPassword:      getEnv("APP_DB_PASSWORD", ""),
		DBName:          getEnv("APP_DB_NAME", "admissions"),
		DBProgramTable:  getEnv("APP_DB_PROGRAM_TABLE", "program_applications"),
		DBConnTimeout:   time.Duration(getEnvInt("APP_DB_CONN_TIMEOUT_SEC", 5)) * time.Second,
		DBQueryTimeout:  time.Duration(getEnvInt("APP_DB_QUERY_TIMEOUT_SEC", 10)) * time.Second,
	}
}

// Validate reports configuration values the service cannot start with.
func (c Config) Validate() error {
	var errs []error
	if c.TrendWindowDays < 1 {
		errs = append(errs, fmt.Errorf("APP_TREND_WINDOW_DAYS must be positive, got %d", c.TrendWindowDays))
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("APP_TIMEZONE: %w", err))
	}
	if _, ok := parseLevel(c.LogLevel); !ok {
		errs = append(errs, fmt.Errorf("APP_LOG_LEVEL: unknown level %q", c.LogLevel))
	}
	switch c.ProgramSource {
	case SourceBuiltin, SourceMySQL:
	case SourceYAML:
		if strings.TrimSpace(c.ProgramsFile) == "" {
			errs = append(errs, errors.New("APP_PROGRAMS_FILE required when APP_PROGRAM_SOURCE=yaml"))
		}
	case SourceSQLite:
		if strings.TrimSpace(c.SQLitePath) == "" {
			errs = append(errs, errors.New("APP_SQLITE_PATH required when APP_PROGRAM_SOURCE=sqlite"))
		}
	default:
		errs = append(errs, fmt.Errorf("APP_PROGRAM_SOURCE: unknown source %q", c.ProgramSource))
	}
	return errors.Join(errs...)
}

// Location returns the configured time zone, falling back to UTC.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// SlogLevel maps APP_LOG_LEVEL onto a slog level.
func (c Config) SlogLevel() slog.Level {
	lvl, _ := parseLevel(c.LogLevel)
	return lvl
}

func parseLevel(raw string) (slog.Level, bool) {
	switch raw {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

func loadConfigDefaultsFromFile() {
	bootstrapCandidates := []string{
		"./admissions-dashboard.env",
		"/etc/default/admissions-dashboard",
	}

	for _, candidate := range bootstrapCandidates {
		abs := candidate
		if !filepath.IsAbs(candidate) {
			if wd, err := os.Getwd(); err == nil {
				abs = filepath.Join(wd, candidate)
			}
		}
		_ = applyEnvDefaultsFromFile(abs)
	}

	candidates := make([]string, 0, 2)
	if explicit := strings.TrimSpace(os.Getenv("APP_CONFIG_FILE")); explicit != "" {
		candidates = append(candidates, explicit)
	}
	candidates = append(candidates, "/etc/admissions-dashboard/config.env")

	for _, candidate := range candidates {
		if err := applyEnvDefaultsFromFile(candidate); err == nil {
			return
		}
	}
}

// applyEnvDefaultsFromFile sets KEY=VALUE pairs from path for keys that are
// not already set in the environment.
func applyEnvDefaultsFromFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")

		kv := strings.SplitN(line, "=", 2)
		if len(kv) != 2 {
			continue
		}

		key := strings.TrimSpace(kv[0])
		val := strings.TrimSpace(kv[1])
		if key == "" {
			continue
		}

		if len(val) >= 2 {
			if (val[0] == '"' && val[len(val)-1] == '"') || (val[0] == '\'' && val[len(val)-1] == '\'') {
				val = val[1 : len(val)-1]
			}
		}

		if os.Getenv(key) == "" {
			_ = os.Setenv(key, val)
		}
	}

	return scanner.Err()
}

// MySQLDSN returns a mysql driver DSN with safe defaults for TCP access.
func (c Config) MySQLDSN() string {
	params := url.Values{}
	params.Set("parseTime", "true")
	params.Set("timeout", c.DBConnTimeout.String())
	params.Set("readTimeout", c.DBQueryTimeout.String())
	params.Set("writeTimeout", c.DBQueryTimeout.String())
	params.Set("charset", "utf8mb4")
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s", c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, params.Encode())
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return def
	}
	return parsed
}
