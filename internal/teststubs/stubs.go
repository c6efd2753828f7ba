package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/game-deals-service/internal/domain/deals"
)

// StubProvider is a test double for providers.DealProvider.
type StubProvider struct {
	Deals  []deals.Deal
	Err    error
	Calls  atomic.Int32
	Notify chan struct{}
}

// FetchPage returns configured deals and error while tracking calls.
func (s *StubProvider) FetchPage(ctx context.Context, pageIndex int) ([]deals.Deal, error) {
	_ = ctx
	_ = pageIndex
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	return s.Deals, s.Err
}

// PageResult is the scripted outcome for one page index.
type PageResult struct {
	Deals []deals.Deal
	Err   error
}

// PagedProvider serves scripted results per page index and records requested pages.
// Missing pages return an empty slice.
type PagedProvider struct {
	mu       sync.Mutex
	Pages    map[int]PageResult
	Requests []int
	// Gate, when set, blocks each fetch until a value is received or the context ends.
	Gate chan struct{}
	// Started, when set, receives the page index as soon as a fetch begins.
	Started chan int
}

// FetchPage returns the scripted result for pageIndex.
func (p *PagedProvider) FetchPage(ctx context.Context, pageIndex int) ([]deals.Deal, error) {
	p.mu.Lock()
	p.Requests = append(p.Requests, pageIndex)
	result := p.Pages[pageIndex]
	p.mu.Unlock()

	if p.Started != nil {
		p.Started <- pageIndex
	}
	if p.Gate != nil {
		select {
		case <-p.Gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return result.Deals, result.Err
}

// Requested returns a copy of the page indexes fetched so far.
func (p *PagedProvider) Requested() []int {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]int, len(p.Requests))
	copy(out, p.Requests)
	return out
}
