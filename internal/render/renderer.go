package render

import (
	"sync"

	"github.com/preston-bernstein/game-deals-service/internal/domain/deals"
)

// Renderer receives view updates from a storefront session.
type Renderer interface {
	Render(records []deals.Deal)
	AppendRender(records []deals.Deal)
	ShowDetail(record deals.Deal)
	SetBusy(busy bool)
	SetPageIndicator(pageNumber int)
	SetPreviousEnabled(enabled bool)
}

// Snapshot is a point-in-time copy of a ViewState.
type Snapshot struct {
	Grid            []deals.Deal
	Detail          *deals.Deal
	Busy            bool
	PageNumber      int
	PreviousEnabled bool
}

// ViewState is a Renderer that keeps the latest published view in memory.
// HTTP handlers read it back through Snapshot.
type ViewState struct {
	mu   sync.RWMutex
	snap Snapshot
}

// NewViewState starts at page 1 with an empty grid.
func NewViewState() *ViewState {
	return &ViewState{snap: Snapshot{PageNumber: 1}}
}

func (v *ViewState) Render(records []deals.Deal) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.snap.Grid = append([]deals.Deal(nil), records...)
	v.snap.Detail = nil
}

func (v *ViewState) AppendRender(records []deals.Deal) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.snap.Grid = append(v.snap.Grid, records...)
}

func (v *ViewState) ShowDetail(record deals.Deal) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.snap.Detail = &record
}

func (v *ViewState) SetBusy(busy bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.snap.Busy = busy
}

func (v *ViewState) SetPageIndicator(pageNumber int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.snap.PageNumber = pageNumber
}

func (v *ViewState) SetPreviousEnabled(enabled bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.snap.PreviousEnabled = enabled
}

// Snapshot returns a copy of the current view.
func (v *ViewState) Snapshot() Snapshot {
	v.mu.RLock()
	defer v.mu.RUnlock()
	out := v.snap
	out.Grid = append([]deals.Deal(nil), v.snap.Grid...)
	if v.snap.Detail != nil {
		d := *v.snap.Detail
		out.Detail = &d
	}
	return out
}

// Fanout forwards every update to each non-nil renderer in order.
func Fanout(renderers ...Renderer) Renderer {
	out := make(fanout, 0, len(renderers))
	for _, r := range renderers {
		if r != nil {
			out = append(out, r)
		}
	}
	return out
}

type fanout []Renderer

func (f fanout) Render(records []deals.Deal) {
	for _, r := range f {
		r.Render(records)
	}
}

func (f fanout) AppendRender(records []deals.Deal) {
	for _, r := range f {
		r.AppendRender(records)
	}
}

func (f fanout) ShowDetail(record deals.Deal) {
	for _, r := range f {
		r.ShowDetail(record)
	}
}

func (f fanout) SetBusy(busy bool) {
	for _, r := range f {
		r.SetBusy(busy)
	}
}

func (f fanout) SetPageIndicator(pageNumber int) {
	for _, r := range f {
		r.SetPageIndicator(pageNumber)
	}
}

func (f fanout) SetPreviousEnabled(enabled bool) {
	for _, r := range f {
		r.SetPreviousEnabled(enabled)
	}
}
