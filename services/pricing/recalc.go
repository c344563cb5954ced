package pricing

import (
	"context"
	"sync"
	"time"

	"lawnly/models"
)

// DefaultRecalcWindow is how long the recalculator waits after the last
// input change before computing, so rapid adjustments collapse into one
// calculation.
const DefaultRecalcWindow = 500 * time.Millisecond

// RecalcInput is one generation of wizard pricing input.
type RecalcInput struct {
	PackageID string
	LotSize   int
	AddOnIDs  []string
}

// RecalcFunc computes a breakdown for one input generation.
type RecalcFunc func(ctx context.Context, input RecalcInput) (*models.PriceBreakdown, error)

// RecalcSink receives the result of a completed, still-current generation.
type RecalcSink func(input RecalcInput, breakdown *models.PriceBreakdown, err error)

// Recalculator coalesces price recalculation requests: each Trigger
// supersedes any pending window, so only the last input state within the
// window is computed, and a completion whose generation has since been
// superseded is discarded. At most one computation result per generation
// ever reaches the sink, latest generation wins.
type Recalculator struct {
	window  time.Duration
	compute RecalcFunc
	sink    RecalcSink

	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
}

// NewRecalculator builds a recalculator with the given window. A zero or
// negative window falls back to DefaultRecalcWindow.
func NewRecalculator(window time.Duration, compute RecalcFunc, sink RecalcSink) *Recalculator {
	if window <= 0 {
		window = DefaultRecalcWindow
	}
	return &Recalculator{window: window, compute: compute, sink: sink}
}

// Trigger registers a new input generation. Any pending, not-yet-fired
// window is cancelled and restarted.
func (r *Recalculator) Trigger(ctx context.Context, input RecalcInput) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.gen++
	gen := r.gen

	if r.timer != nil {
		r.timer.Stop()
	}
	r.timer = time.AfterFunc(r.window, func() {
		r.fire(ctx, gen, input)
	})
}

// Stop cancels any pending window. In-flight computations still finish but
// their results are discarded once superseded by a later Trigger.
func (r *Recalculator) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

func (r *Recalculator) fire(ctx context.Context, gen uint64, input RecalcInput) {
	r.mu.Lock()
	current := r.gen == gen
	r.mu.Unlock()
	if !current {
		return
	}

	breakdown, err := r.compute(ctx, input)

	// Re-check after the computation: a stale response must never race a
	// newer input generation back into the sink.
	r.mu.Lock()
	current = r.gen == gen
	r.mu.Unlock()
	if !current {
		return
	}
	r.sink(input, breakdown, err)
}
