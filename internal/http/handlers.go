package http

import (
	nethttp "net/http"

	"admissions-dashboard/internal/admissions"
)

const admissionsPath = "/api/v1/analytics/admissions"

func admissionsAnalyticsHandler(responder *admissions.Responder, m *metrics) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if r.Method != nethttp.MethodGet && r.Method != nethttp.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			writeJSON(w, nethttp.StatusMethodNotAllowed, map[string]any{"error": "method not allowed"})
			return
		}

		snap := responder.Snapshot()
		m.snapshotsGenerated.Inc()

		w.Header().Set("Cache-Control", "no-store")
		writeJSON(w, nethttp.StatusOK, snap)
	}
}
