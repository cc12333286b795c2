package dashboard

import (
	"strings"
	"time"

	"admissions-dashboard/internal/admissions"
)

// DateRange is the view-level trend filter. Empty bounds are unbounded.
type DateRange struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// FilterTrends keeps the points whose date lies within [from, to], both
// inclusive. A bound that is empty or not a YYYY-MM-DD date is ignored.
func FilterTrends(trends []admissions.TrendPoint, from, to string) []admissions.TrendPoint {
	fromDate, hasFrom := parseBound(from)
	toDate, hasTo := parseBound(to)
	var end time.Time
	if hasTo {
		end = toDate.Add(24*time.Hour - time.Nanosecond)
	}

	out := make([]admissions.TrendPoint, 0, len(trends))
	for _, p := range trends {
		d, err := time.Parse(admissions.DateLayout, p.Date)
		if err != nil {
			out = append(out, p)
			continue
		}
		if hasFrom && d.Before(fromDate) {
			continue
		}
		if hasTo && d.After(end) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Apply filters trends with the range bounds.
func (r DateRange) Apply(trends []admissions.TrendPoint) []admissions.TrendPoint {
	return FilterTrends(trends, r.From, r.To)
}

func parseBound(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(admissions.DateLayout, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
