package pagination

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/game-deals-service/internal/domain/deals"
	"github.com/preston-bernstein/game-deals-service/internal/listing"
	"github.com/preston-bernstein/game-deals-service/internal/logging"
	"github.com/preston-bernstein/game-deals-service/internal/metrics"
	"github.com/preston-bernstein/game-deals-service/internal/providers"
)

// ErrFetchInProgress is returned by every navigation while another fetch is outstanding.
var ErrFetchInProgress = errors.New("fetch already in progress")

var errAtFirstPage = errors.New("already at first page")

// State is the pagination control state. Everything except Busy derives from PageIndex.
type State struct {
	PageIndex       int  `json:"pageIndex"`
	PageNumber      int  `json:"pageNumber"`
	PreviousEnabled bool `json:"previousEnabled"`
	Busy            bool `json:"busy"`
}

// Outcome describes what a navigation did.
type Outcome struct {
	// Moved is false only for Previous at the first page.
	Moved     bool
	PageIndex int
	Records   []deals.Deal
}

// Controller owns the page index and drives fetches into a listing.Store.
// At most one fetch is outstanding at a time; fetches run without the lock held.
type Controller struct {
	mu        sync.Mutex
	pageIndex int
	busy      bool

	provider providers.DealProvider
	store    *listing.Store
	logger   *slog.Logger
	metrics  *metrics.Recorder
	onBusy   func(bool)
	now      func() time.Time
}

// New builds a controller starting at page 0.
func New(provider providers.DealProvider, store *listing.Store, logger *slog.Logger, recorder *metrics.Recorder) *Controller {
	if store == nil {
		store = listing.NewStore()
	}
	return &Controller{
		provider: provider,
		store:    store,
		logger:   logger,
		metrics:  recorder,
		now:      time.Now,
	}
}

// OnBusy registers a hook called with true when a fetch starts and false when it ends.
func (c *Controller) OnBusy(fn func(bool)) {
	c.mu.Lock()
	c.onBusy = fn
	c.mu.Unlock()
}

// State returns the current control state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return stateFor(c.pageIndex, c.busy)
}

func stateFor(pageIndex int, busy bool) State {
	return State{
		PageIndex:       pageIndex,
		PageNumber:      pageIndex + 1,
		PreviousEnabled: pageIndex > 0,
		Busy:            busy,
	}
}

// Reload fetches the page at the current index and replaces the store contents.
// The page index never changes.
func (c *Controller) Reload(ctx context.Context) (Outcome, error) {
	idx, err := c.begin(metrics.LoadInitial, 0)
	if err != nil {
		return Outcome{}, err
	}

	records, err := c.fetch(ctx, metrics.LoadInitial, idx)
	if err != nil {
		c.finish(idx)
		return Outcome{PageIndex: idx}, err
	}
	c.store.ReplacePage(records)
	c.finish(idx)
	return Outcome{PageIndex: idx, Records: records}, nil
}

// Next advances one page and replaces the store contents with it.
// A failed fetch leaves the index advanced.
func (c *Controller) Next(ctx context.Context) (Outcome, error) {
	return c.replace(ctx, metrics.LoadNext, 1)
}

// Previous steps back one page. At the first page it does nothing and issues no fetch.
// A failed fetch leaves the index decremented.
func (c *Controller) Previous(ctx context.Context) (Outcome, error) {
	return c.replace(ctx, metrics.LoadPrevious, -1)
}

// LoadMore fetches the following page and appends it. An empty page or a failed
// fetch rolls the index back; an empty page returns listing.ErrNoMoreResults.
func (c *Controller) LoadMore(ctx context.Context) (Outcome, error) {
	idx, err := c.begin(metrics.LoadMore, 1)
	if err != nil {
		return Outcome{}, err
	}

	records, err := c.fetch(ctx, metrics.LoadMore, idx)
	if err == nil {
		err = c.store.AppendPage(records)
	}
	if err != nil {
		c.finish(idx - 1)
		return Outcome{PageIndex: idx - 1}, err
	}
	c.finish(idx)
	return Outcome{Moved: true, PageIndex: idx, Records: records}, nil
}

func (c *Controller) replace(ctx context.Context, kind string, step int) (Outcome, error) {
	idx, err := c.begin(kind, step)
	if errors.Is(err, errAtFirstPage) {
		return Outcome{PageIndex: idx}, nil
	}
	if err != nil {
		return Outcome{}, err
	}

	records, err := c.fetch(ctx, kind, idx)
	if err != nil {
		c.finish(idx)
		return Outcome{Moved: true, PageIndex: idx}, err
	}
	c.store.ReplacePage(records)
	c.finish(idx)
	return Outcome{Moved: true, PageIndex: idx, Records: records}, nil
}

// begin claims the in-flight slot and applies step to the index.
func (c *Controller) begin(kind string, step int) (int, error) {
	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		c.metrics.RecordPageLoad(kind, metrics.OutcomeBusy, 0)
		return 0, ErrFetchInProgress
	}
	next := c.pageIndex + step
	if next < 0 {
		idx := c.pageIndex
		c.mu.Unlock()
		return idx, errAtFirstPage
	}
	c.pageIndex = next
	c.busy = true
	hook := c.onBusy
	c.mu.Unlock()

	if hook != nil {
		hook(true)
	}
	return next, nil
}

// finish releases the in-flight slot and settles the index.
func (c *Controller) finish(pageIndex int) {
	c.mu.Lock()
	c.pageIndex = pageIndex
	c.busy = false
	hook := c.onBusy
	c.mu.Unlock()

	if hook != nil {
		hook(false)
	}
}

func (c *Controller) fetch(ctx context.Context, kind string, pageIndex int) ([]deals.Deal, error) {
	logger := logging.FromContext(ctx, c.logger)
	if c.provider == nil {
		c.metrics.RecordPageLoad(kind, metrics.OutcomeError, 0)
		return nil, providers.ErrProviderUnavailable
	}

	start := c.now()
	records, err := c.provider.FetchPage(ctx, pageIndex)
	elapsed := c.now().Sub(start)

	switch {
	case err != nil:
		c.metrics.RecordPageLoad(kind, metrics.OutcomeError, elapsed)
		logging.Warn(logger, "page fetch failed",
			logging.FieldLoadKind, kind,
			logging.FieldPage, pageIndex,
			"error_kind", providers.Kind(err),
			"error", err,
		)
		return nil, err
	case len(records) == 0:
		c.metrics.RecordPageLoad(kind, metrics.OutcomeEmpty, elapsed)
	default:
		c.metrics.RecordPageLoad(kind, metrics.OutcomeOK, elapsed)
	}

	if logger != nil {
		logger.Debug("page fetched",
			logging.FieldLoadKind, kind,
			logging.FieldPage, pageIndex,
			logging.FieldCount, len(records),
			logging.FieldDurationMS, elapsed.Milliseconds(),
		)
	}
	return records, nil
}
