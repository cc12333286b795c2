package http

import (
	nethttp "net/http"
	"time"
)

const seedStatusPath = "/api/v1/status/seed"

func seedStatusHandler(info seedInfo) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, _ *nethttp.Request) {
		writeJSON(w, nethttp.StatusOK, map[string]any{
			"generated_at": time.Now().UTC(),
			"seed":         info,
		})
	}
}
