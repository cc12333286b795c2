package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"admissions-dashboard/internal/admissions"
)

var errEmptySnapshot = errors.New("empty analytics response")

// Fetcher loads one admissions snapshot.
type Fetcher interface {
	FetchAdmissions(ctx context.Context) (*admissions.Snapshot, error)
}

// View is what the dashboard renders: the fetch state plus the trends
// selected by the current date range.
type View struct {
	State
	Range          DateRange
	FilteredTrends []admissions.TrendPoint
}

// Controller drives the dashboard state. Refresh may be called concurrently;
// only the most recently started request can update the state.
type Controller struct {
	fetcher Fetcher
	logger  *slog.Logger

	mu    sync.Mutex
	state State
	rng   DateRange
	seq   uint64
}

func NewController(fetcher Fetcher, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{fetcher: fetcher, logger: logger}
}

// Refresh fetches a snapshot and applies the outcome. The returned error is
// the fetch error, if any; the state already reflects it.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	c.seq++
	seq := c.seq
	c.state = c.state.Begin(seq)
	c.mu.Unlock()

	snap, err := c.fetcher.FetchAdmissions(ctx)
	if err == nil && snap == nil {
		err = errEmptySnapshot
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if seq != c.seq {
		c.logger.Debug("discarding superseded analytics response", "seq", seq, "latest", c.seq)
	}
	if err != nil {
		c.logger.Warn("analytics fetch failed", "seq", seq, "error", err)
		c.state = c.state.Fail(seq)
		return err
	}
	c.state = c.state.Succeed(seq, *snap)
	return nil
}

// SetRange changes the trend filter. It never triggers a fetch.
func (c *Controller) SetRange(from, to string) {
	c.mu.Lock()
	c.rng = DateRange{From: from, To: to}
	c.mu.Unlock()
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	v := View{State: c.state, Range: c.rng, FilteredTrends: []admissions.TrendPoint{}}
	if c.state.Snapshot != nil {
		v.FilteredTrends = c.rng.Apply(c.state.Snapshot.Trends)
	}
	return v
}
