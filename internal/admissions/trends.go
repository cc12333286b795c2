package admissions

import (
	"math"
	"time"
)

// DefaultTrendWindowDays is the window used by the live analytics endpoint.
const DefaultTrendWindowDays = 45

const minDailyApplications = 10

// GenerateTrends returns one point per day for the days-long window ending on
// today's calendar date, oldest first. The output depends only on days and the
// calendar date of today (in today's location).
func GenerateTrends(days int, today time.Time) []TrendPoint {
	if days <= 0 {
		return []TrendPoint{}
	}

	y, m, d := today.Date()
	loc := today.Location()
	out := make([]TrendPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		// Noon avoids DST edges when normalising the day overflow.
		day := time.Date(y, m, d-i, 12, 0, 0, 0, loc)
		out = append(out, TrendPoint{
			Date:         day.Format(DateLayout),
			Applications: dailyApplications(i, days),
		})
	}
	return out
}

func dailyApplications(offset, days int) int64 {
	base := 60 + roundHalfUp(40*math.Sin(float64(offset)/float64(days)*2*math.Pi))
	noise := int64((offset%5 - 2) * 3)
	if v := base + noise; v > minDailyApplications {
		return v
	}
	return minDailyApplications
}

// roundHalfUp rounds ties toward positive infinity, so -2.5 becomes -2.
func roundHalfUp(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}
