package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admissions-dashboard/internal/admissions"
	"admissions-dashboard/internal/config"
	"admissions-dashboard/internal/connectors/seedfile"
	"admissions-dashboard/internal/dashboard"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() config.Config {
	return config.Config{
		ListenAddr:      "127.0.0.1:0",
		TrendWindowDays: 45,
		Timezone:        "UTC",
		LogLevel:        "info",
		ProgramSource:   config.SourceBuiltin,
	}
}

func newTestServer(t *testing.T, now time.Time) *Server {
	t.Helper()
	responder := admissions.NewResponder(admissions.ResponderConfig{
		TrendWindowDays: 45,
		Now:             func() time.Time { return now },
	})
	return newServer(testConfig(), responder, seedInfo{Source: config.SourceBuiltin, Programs: 5}, discardLogger())
}

func TestAdmissionsAnalyticsHandler(t *testing.T) {
	now := time.Date(2024, time.October, 3, 14, 0, 0, 0, time.UTC)
	s := newTestServer(t, now)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analytics/admissions", nil)
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.NotEmpty(t, rr.Header().Get(requestIDHeader))

	var snap admissions.Snapshot
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &snap))
	assert.Equal(t, int64(3110), snap.TotalApplicants)
	assert.Equal(t, int64(2239), snap.VerifiedApplicants)
	assert.Equal(t, int64(560), snap.RejectedApplicants)
	assert.Len(t, snap.PerProgram, 5)
	require.Len(t, snap.Trends, 45)
	assert.Equal(t, "2024-10-03", snap.Trends[44].Date)
	assert.Equal(t, "2024-10-03T14:00:00.000Z", snap.GeneratedAt)

	assert.Equal(t, 1.0, testutil.ToFloat64(s.metrics.snapshotsGenerated))
}

func TestAdmissionsAnalyticsHandler_MethodNotAllowed(t *testing.T) {
	s := newTestServer(t, time.Now())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/analytics/admissions", strings.NewReader("{}"))
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)

	require.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
	assert.NotNil(t, payload["error"])
	assert.Equal(t, 0.0, testutil.ToFloat64(s.metrics.snapshotsGenerated))
}

func TestDashboardHandler(t *testing.T) {
	s := newTestServer(t, time.Now())

	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Type"), "text/html")
	body := rr.Body.String()
	assert.Contains(t, body, "Admission Analytics Dashboard")
	assert.Contains(t, body, dashboard.AdmissionsPath)
	assert.Contains(t, body, dashboard.FetchFailedMessage)

	rr = httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHealthReadyAndStatus(t *testing.T) {
	s := newTestServer(t, time.Now())

	for _, path := range []string{"/health", "/ready", seedStatusPath, settingsPath} {
		rr := httptest.NewRecorder()
		s.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, rr.Code, path)
	}

	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, settingsPath, nil))
	var payload struct {
		Data map[string]any `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
	assert.Equal(t, 45.0, payload.Data["trend_window_days"])
	assert.Equal(t, "UTC", payload.Data["timezone"])
}

func TestRequestIDIsPropagated(t *testing.T) {
	s := newTestServer(t, time.Now())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, req)
	assert.Equal(t, "abc-123", rr.Header().Get(requestIDHeader))
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t, time.Now())

	s.Handler().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, admissionsPath, nil))
	s.Handler().ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/unknown/thing", nil))

	rr := httptest.NewRecorder()
	s.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, `admissions_dashboard_http_requests_total{method="GET",path="/api/v1/analytics/admissions",status="200"} 1`)
	assert.Contains(t, body, `admissions_dashboard_http_requests_total{method="GET",path="other",status="404"} 1`)
	assert.Contains(t, body, "admissions_dashboard_snapshots_generated_total 1")
}

func TestDashboardClientAgainstServer(t *testing.T) {
	s := newTestServer(t, time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC))
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	c := dashboard.NewController(dashboard.NewClient(ts.URL, 5*time.Second), discardLogger())
	require.NoError(t, c.Refresh(context.Background()))
	c.SetRange("2024-01-02", "2024-01-02")

	v := c.View()
	require.Equal(t, dashboard.PhaseLoaded, v.Phase)
	require.Len(t, v.FilteredTrends, 1)
	assert.Equal(t, "2024-01-02", v.FilteredTrends[0].Date)
}

func TestNewServer_SeedSources(t *testing.T) {
	ctx := context.Background()

	t.Run("builtin", func(t *testing.T) {
		s, err := NewServer(ctx, testConfig(), discardLogger())
		require.NoError(t, err)
		assert.Equal(t, int64(3110), s.responder.Programs().Total())
		assert.Equal(t, 5.0, testutil.ToFloat64(s.metrics.seedPrograms))
	})

	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "programs.yaml")
		require.NoError(t, seedfile.Write(path, []admissions.ProgramCount{{Program: "Nursing", Applications: 700}}))
		cfg := testConfig()
		cfg.ProgramSource = config.SourceYAML
		cfg.ProgramsFile = path

		s, err := NewServer(ctx, cfg, discardLogger())
		require.NoError(t, err)
		assert.Equal(t, int64(700), s.responder.Snapshot().TotalApplicants)
		assert.Equal(t, path, s.seed.Origin)
	})

	t.Run("sqlite seeds empty table", func(t *testing.T) {
		cfg := testConfig()
		cfg.ProgramSource = config.SourceSQLite
		cfg.SQLitePath = filepath.Join(t.TempDir(), "programs.db")

		s, err := NewServer(ctx, cfg, discardLogger())
		require.NoError(t, err)
		assert.Equal(t, admissions.DefaultPrograms(), s.responder.Snapshot().PerProgram)
	})

	t.Run("missing yaml file", func(t *testing.T) {
		cfg := testConfig()
		cfg.ProgramSource = config.SourceYAML
		cfg.ProgramsFile = filepath.Join(t.TempDir(), "missing.yaml")

		_, err := NewServer(ctx, cfg, discardLogger())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "load programs from yaml")
	})

	t.Run("unknown source", func(t *testing.T) {
		cfg := testConfig()
		cfg.ProgramSource = "redis"
		_, err := NewServer(ctx, cfg, discardLogger())
		require.Error(t, err)
	})
}

func TestNormalizeMetricPath(t *testing.T) {
	assert.Equal(t, admissionsPath, normalizeMetricPath(admissionsPath))
	assert.Equal(t, "/", normalizeMetricPath("/"))
	assert.Equal(t, "other", normalizeMetricPath("/api/v1/analytics/admissions/extra"))
}
