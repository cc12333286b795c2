package dashboard

import "admissions-dashboard/internal/admissions"

// FetchFailedMessage is the only error text the dashboard shows.
const FetchFailedMessage = "Failed to fetch analytics"

// Phase is the fetch lifecycle position of the dashboard.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// State is the dashboard's fetch state. Snapshot holds the last successful
// result and survives Loading and Failed.
type State struct {
	Phase    Phase
	Snapshot *admissions.Snapshot
	Err      string

	seq uint64
}

// Begin starts request seq. Any earlier request still in flight becomes stale.
func (s State) Begin(seq uint64) State {
	return State{Phase: PhaseLoading, Snapshot: s.Snapshot, seq: seq}
}

// Succeed applies the result of request seq. Results of superseded requests
// leave the state untouched.
func (s State) Succeed(seq uint64, snap admissions.Snapshot) State {
	if seq != s.seq || s.Phase != PhaseLoading {
		return s
	}
	return State{Phase: PhaseLoaded, Snapshot: &snap, seq: seq}
}

// Fail records a failed request seq without discarding the prior snapshot.
func (s State) Fail(seq uint64) State {
	if seq != s.seq || s.Phase != PhaseLoading {
		return s
	}
	return State{Phase: PhaseFailed, Snapshot: s.Snapshot, Err: FetchFailedMessage, seq: seq}
}

func (s State) Loading() bool { return s.Phase == PhaseLoading }
