package storefront

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/preston-bernstein/game-deals-service/internal/domain/deals"
	"github.com/preston-bernstein/game-deals-service/internal/listing"
	"github.com/preston-bernstein/game-deals-service/internal/logging"
	"github.com/preston-bernstein/game-deals-service/internal/metrics"
	"github.com/preston-bernstein/game-deals-service/internal/pagination"
	"github.com/preston-bernstein/game-deals-service/internal/providers"
	"github.com/preston-bernstein/game-deals-service/internal/render"
)

// Options configures a Session.
type Options struct {
	Provider providers.DealProvider
	// Fallback returns the records shown when the initial load fails.
	Fallback func() []deals.Deal
	Logger   *slog.Logger
	Metrics  *metrics.Recorder
	// Renderer, when set, receives every view update alongside the session's own ViewState.
	Renderer render.Renderer
}

// View is what a caller needs to draw the storefront.
type View struct {
	Grid     []deals.Deal
	State    pagination.State
	Criteria listing.Criteria
	Degraded bool
}

// Session is one browser's storefront: a listing store, its pagination controller,
// the active criteria and the rendered view.
type Session struct {
	id       string
	store    *listing.Store
	pager    *pagination.Controller
	view     *render.ViewState
	renderer render.Renderer
	fallback func() []deals.Deal
	logger   *slog.Logger
	metrics  *metrics.Recorder

	initOnce sync.Once
	initErr  error

	mu       sync.RWMutex
	criteria listing.Criteria
	degraded bool
}

// NewSession builds an uninitialized session. Call Init before serving it.
func NewSession(id string, opts Options) *Session {
	store := listing.NewStore()
	view := render.NewViewState()
	s := &Session{
		id:       id,
		store:    store,
		pager:    pagination.New(opts.Provider, store, opts.Logger, opts.Metrics),
		view:     view,
		renderer: render.Fanout(view, opts.Renderer),
		fallback: opts.Fallback,
		logger:   opts.Logger,
		metrics:  opts.Metrics,
	}
	s.pager.OnBusy(s.renderer.SetBusy)
	return s
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Init loads the first page once. Upstream failures are logged and replaced by the
// fallback dataset, leaving the session degraded; they are never returned.
func (s *Session) Init(ctx context.Context) error {
	s.initOnce.Do(func() {
		s.initErr = s.load(ctx)
	})
	return s.initErr
}

func (s *Session) load(ctx context.Context) error {
	logger := s.log(ctx)
	out, err := s.pager.Reload(ctx)
	if errors.Is(err, pagination.ErrFetchInProgress) {
		return err
	}
	if err != nil {
		logging.Warn(logger, "initial deals load failed, using fallback dataset",
			"error_kind", providers.Kind(err),
			"error", err,
		)
		records := s.fallbackRecords()
		s.store.ReplacePage(records)
		s.metrics.RecordPageLoad(metrics.LoadInitial, metrics.OutcomeFallback, 0)

		s.mu.Lock()
		s.degraded = true
		s.mu.Unlock()

		s.renderer.Render(records)
		s.publishControls()
		return nil
	}

	logging.Info(logger, "initial deals loaded", logging.FieldCount, len(out.Records))
	s.renderer.Render(out.Records)
	s.publishControls()
	return nil
}

// Next moves to the following page. Criteria reset whenever the page index moves,
// even if the fetch then fails.
func (s *Session) Next(ctx context.Context) error {
	return s.navigate(ctx, metrics.LoadNext, s.pager.Next)
}

// Previous moves back one page; at the first page it does nothing.
func (s *Session) Previous(ctx context.Context) error {
	return s.navigate(ctx, metrics.LoadPrevious, s.pager.Previous)
}

func (s *Session) navigate(ctx context.Context, kind string, op func(context.Context) (pagination.Outcome, error)) error {
	out, err := op(ctx)
	if errors.Is(err, pagination.ErrFetchInProgress) {
		return err
	}

	if out.Moved {
		s.mu.Lock()
		s.criteria = listing.Criteria{}
		if err == nil {
			s.degraded = false
		}
		s.mu.Unlock()
	}
	s.publishControls()

	if err != nil {
		logging.Warn(s.log(ctx), "page navigation failed",
			logging.FieldLoadKind, kind,
			logging.FieldPage, out.PageIndex,
			"error", err,
		)
		if out.Moved {
			// The failed fetch left the page alone; show it without the cleared criteria.
			s.renderer.Render(s.store.Current())
		}
		return err
	}
	if out.Moved {
		s.renderer.Render(out.Records)
	}
	return nil
}

// LoadMore appends the following page to the grid. An empty page returns
// listing.ErrNoMoreResults and leaves everything as it was.
func (s *Session) LoadMore(ctx context.Context) error {
	out, err := s.pager.LoadMore(ctx)
	switch {
	case errors.Is(err, pagination.ErrFetchInProgress):
		return err
	case errors.Is(err, listing.ErrNoMoreResults):
		logging.Info(s.log(ctx), "no more deals available", logging.FieldPage, out.PageIndex)
		return err
	case err != nil:
		logging.Warn(s.log(ctx), "load more failed",
			logging.FieldPage, out.PageIndex,
			"error", err,
		)
		return err
	}

	s.mu.Lock()
	s.degraded = false
	s.mu.Unlock()

	s.renderer.AppendRender(out.Records)
	s.publishControls()
	return nil
}

// ApplyCriteria sets the active sort/filter/search and renders the derived view of
// the current page. It never fetches.
func (s *Session) ApplyCriteria(c listing.Criteria) []deals.Deal {
	s.mu.Lock()
	s.criteria = c
	s.mu.Unlock()

	records := s.store.View(c)
	s.renderer.Render(records)
	return records
}

// Detail finds a loaded record and publishes it to the renderer.
func (s *Session) Detail(dealID string) (deals.Deal, bool) {
	record, ok := s.store.Find(dealID)
	if ok {
		s.renderer.ShowDetail(record)
	}
	return record, ok
}

// Snapshot returns the current rendered view and control state.
func (s *Session) Snapshot() View {
	snap := s.view.Snapshot()
	state := s.pager.State()

	s.mu.RLock()
	defer s.mu.RUnlock()
	return View{
		Grid:     snap.Grid,
		State:    state,
		Criteria: s.criteria,
		Degraded: s.degraded,
	}
}

func (s *Session) publishControls() {
	state := s.pager.State()
	s.renderer.SetPageIndicator(state.PageNumber)
	s.renderer.SetPreviousEnabled(state.PreviousEnabled)
}

func (s *Session) fallbackRecords() []deals.Deal {
	if s.fallback == nil {
		return []deals.Deal{}
	}
	return s.fallback()
}

func (s *Session) log(ctx context.Context) *slog.Logger {
	logger := logging.FromContext(ctx, s.logger)
	if logger == nil {
		return nil
	}
	return logger.With(logging.FieldSessionID, s.id)
}
