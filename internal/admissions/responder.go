package admissions

import "time"

// ResponderConfig carries everything a Responder needs. Zero values fall back
// to the built-in table, the default window, UTC and time.Now.
type ResponderConfig struct {
	Programs        ProgramTable
	TrendWindowDays int
	Location        *time.Location
	Now             func() time.Time
}

// Responder builds admissions snapshots. It holds no mutable state, so one
// instance is safe to share across requests.
type Responder struct {
	programs ProgramTable
	window   int
	loc      *time.Location
	now      func() time.Time
}

func NewResponder(cfg ResponderConfig) *Responder {
	r := &Responder{
		programs: cfg.Programs,
		window:   cfg.TrendWindowDays,
		loc:      cfg.Location,
		now:      cfg.Now,
	}
	if r.programs.Len() == 0 {
		r.programs = DefaultProgramTable()
	}
	if r.window <= 0 {
		r.window = DefaultTrendWindowDays
	}
	if r.loc == nil {
		r.loc = time.UTC
	}
	if r.now == nil {
		r.now = time.Now
	}
	return r
}

// TrendWindowDays reports the configured trend window.
func (r *Responder) TrendWindowDays() int { return r.window }

// Programs reports the seed table the responder was built with.
func (r *Responder) Programs() ProgramTable { return r.programs }

// Snapshot computes a fresh snapshot for the current instant.
func (r *Responder) Snapshot() Snapshot {
	now := r.now()
	total := r.programs.Total()
	return Snapshot{
		TotalApplicants:    total,
		VerifiedApplicants: roundHalfUp(float64(total) * VerifiedRatio),
		RejectedApplicants: roundHalfUp(float64(total) * RejectedRatio),
		PerProgram:         r.programs.Programs(),
		Trends:             GenerateTrends(r.window, now.In(r.loc)),
		GeneratedAt:        now.UTC().Format(TimestampLayout),
	}
}
