package health

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/game-deals-service/internal/domain/deals"
	"github.com/preston-bernstein/game-deals-service/internal/logging"
	"github.com/preston-bernstein/game-deals-service/internal/providers"
)

const (
	defaultInterval = 2 * time.Minute
	maxFailures     = 3
)

// Tracker wraps a DealProvider and records the outcome of every upstream fetch,
// both the ones sessions make and its own periodic probe of the first page.
type Tracker struct {
	provider providers.DealProvider
	logger   *slog.Logger
	interval time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the upstream deals source.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the upstream has had a success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < maxFailures
}

// NewTracker wraps provider. A non-positive interval uses the default probe interval.
func NewTracker(provider providers.DealProvider, logger *slog.Logger, interval time.Duration) *Tracker {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Tracker{
		provider: provider,
		logger:   logger,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// FetchPage delegates to the wrapped provider and records the outcome.
// Canceled requests say nothing about the upstream and are not counted.
func (t *Tracker) FetchPage(ctx context.Context, pageIndex int) ([]deals.Deal, error) {
	if t.provider == nil {
		return nil, providers.ErrProviderUnavailable
	}
	at := t.now()
	records, err := t.provider.FetchPage(ctx, pageIndex)
	switch {
	case err == nil:
		t.recordSuccess(at)
	case errors.Is(err, context.Canceled):
	default:
		t.recordFailure(err, at)
	}
	return records, err
}

// Start probes the upstream once, then on every tick until ctx ends or Stop is called.
func (t *Tracker) Start(ctx context.Context) {
	t.startMu.Lock()
	if t.started {
		t.startMu.Unlock()
		return
	}
	t.started = true
	t.startMu.Unlock()

	t.ticker = time.NewTicker(t.interval)

	go func() {
		logging.Info(t.logger, "health probe started", logging.FieldDurationMS, t.interval.Milliseconds())
		t.probe(ctx)

		for {
			select {
			case <-ctx.Done():
				t.ticker.Stop()
				logging.Info(t.logger, "health probe stopped")
				return
			case <-t.done:
				t.ticker.Stop()
				logging.Info(t.logger, "health probe stopped")
				return
			case <-t.ticker.C:
				t.probe(ctx)
			}
		}
	}()
}

// Stop halts the probe loop. It is safe to call more than once.
func (t *Tracker) Stop(ctx context.Context) error {
	_ = ctx
	t.stopOnce.Do(func() {
		close(t.done)
	})
	return nil
}

func (t *Tracker) probe(ctx context.Context) {
	start := time.Now()
	records, err := t.FetchPage(ctx, 0)
	if err != nil {
		logging.Warn(t.logger, "health probe failed",
			"error_kind", providers.Kind(err),
			"error", err,
			logging.FieldDurationMS, time.Since(start).Milliseconds(),
		)
		return
	}
	if t.logger != nil {
		t.logger.Debug("health probe ok",
			logging.FieldCount, len(records),
			logging.FieldDurationMS, time.Since(start).Milliseconds(),
		)
	}
}

func (t *Tracker) recordSuccess(at time.Time) {
	t.statusMu.Lock()
	defer t.statusMu.Unlock()
	t.status.ConsecutiveFailures = 0
	t.status.LastError = ""
	t.status.LastAttempt = at
	t.status.LastSuccess = at
}

func (t *Tracker) recordFailure(err error, at time.Time) {
	t.statusMu.Lock()
	defer t.statusMu.Unlock()
	t.status.ConsecutiveFailures++
	t.status.LastError = err.Error()
	t.status.LastAttempt = at
}

// Status returns a snapshot of the upstream's recent health.
func (t *Tracker) Status() Status {
	t.statusMu.RLock()
	defer t.statusMu.RUnlock()
	return t.status
}
