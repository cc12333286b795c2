package http

import (
	nethttp "net/http"

	"admissions-dashboard/internal/admissions"
	"admissions-dashboard/internal/config"
	"admissions-dashboard/internal/dashboard"
)

const settingsPath = "/api/v1/settings/dashboard"

func dashboardSettingsHandler(cfg config.Config, responder *admissions.Responder) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, _ *nethttp.Request) {
		writeJSON(w, nethttp.StatusOK, map[string]any{
			"data": map[string]any{
				"trend_window_days":   responder.TrendWindowDays(),
				"timezone":            cfg.Location().String(),
				"program_source":      cfg.ProgramSource,
				"verified_ratio":      admissions.VerifiedRatio,
				"rejected_ratio":      admissions.RejectedRatio,
				"highlight_high_over": dashboard.HighlightHighOver,
				"highlight_mid_over":  dashboard.HighlightMediumOver,
			},
		})
	}
}
