package admissions

// ProgramCount is one row of the per-program seed table.
type ProgramCount struct {
	Program      string `json:"program" yaml:"program"`
	Applications int64  `json:"applications" yaml:"applications"`
}

// TrendPoint is one day of the synthetic applications series.
type TrendPoint struct {
	Date         string `json:"date"`
	Applications int64  `json:"applications"`
}

// Snapshot is the full payload returned by the admissions analytics endpoint.
type Snapshot struct {
	TotalApplicants    int64          `json:"totalApplicants"`
	VerifiedApplicants int64          `json:"verifiedApplicants"`
	RejectedApplicants int64          `json:"rejectedApplicants"`
	PerProgram         []ProgramCount `json:"perProgram"`
	Trends             []TrendPoint   `json:"trends"`
	GeneratedAt        string         `json:"generatedAt"`
}

const (
	// DateLayout is the calendar date format used by trend points and filters.
	DateLayout = "2006-01-02"
	// TimestampLayout matches ISO-8601 UTC with millisecond precision.
	TimestampLayout = "2006-01-02T15:04:05.000Z"

	VerifiedRatio = 0.72
	RejectedRatio = 0.18
)
