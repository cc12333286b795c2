package admissions

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyProgramName     = errors.New("program name must not be empty")
	ErrDuplicateProgram     = errors.New("duplicate program")
	ErrNegativeApplications = errors.New("applications must not be negative")
)

// ProgramTable is an immutable, ordered per-program seed table.
type ProgramTable struct {
	rows  []ProgramCount
	total int64
}

// NewProgramTable validates rows and freezes them into a table. Names are
// trimmed; order is preserved.
func NewProgramTable(rows []ProgramCount) (ProgramTable, error) {
	seen := make(map[string]struct{}, len(rows))
	out := make([]ProgramCount, 0, len(rows))
	var total int64
	for i, row := range rows {
		name := strings.TrimSpace(row.Program)
		if name == "" {
			return ProgramTable{}, fmt.Errorf("row %d: %w", i, ErrEmptyProgramName)
		}
		if _, ok := seen[name]; ok {
			return ProgramTable{}, fmt.Errorf("%w: %q", ErrDuplicateProgram, name)
		}
		if row.Applications < 0 {
			return ProgramTable{}, fmt.Errorf("%q: %w", name, ErrNegativeApplications)
		}
		seen[name] = struct{}{}
		out = append(out, ProgramCount{Program: name, Applications: row.Applications})
		total += row.Applications
	}
	return ProgramTable{rows: out, total: total}, nil
}

// DefaultPrograms returns the built-in seed rows.
func DefaultPrograms() []ProgramCount {
	return []ProgramCount{
		{Program: "Computer Science", Applications: 1180},
		{Program: "Mechanical Engineering", Applications: 640},
		{Program: "Business Administration", Applications: 520},
		{Program: "Psychology", Applications: 410},
		{Program: "Biology", Applications: 360},
	}
}

// DefaultProgramTable returns the built-in five-program table.
func DefaultProgramTable() ProgramTable {
	t, err := NewProgramTable(DefaultPrograms())
	if err != nil {
		panic(err)
	}
	return t
}

// Programs returns a copy of the rows in table order.
func (t ProgramTable) Programs() []ProgramCount {
	out := make([]ProgramCount, len(t.rows))
	copy(out, t.rows)
	return out
}

func (t ProgramTable) Len() int { return len(t.rows) }

// Total is the sum of applications across all programs.
func (t ProgramTable) Total() int64 { return t.total }
