package testutil

import (
	"context"

	"github.com/preston-bernstein/game-deals-service/internal/domain/deals"
	"github.com/preston-bernstein/game-deals-service/internal/providers"
)

// GoodProvider returns the provided deals for page 0 and an empty page afterwards.
type GoodProvider struct {
	Deals []deals.Deal
}

func (p GoodProvider) FetchPage(ctx context.Context, pageIndex int) ([]deals.Deal, error) {
	_ = ctx
	if pageIndex > 0 {
		return []deals.Deal{}, nil
	}
	return p.Deals, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchPage(ctx context.Context, pageIndex int) ([]deals.Deal, error) {
	return nil, p.Err
}

// EmptyProvider returns no deals, no error.
type EmptyProvider struct{}

func (EmptyProvider) FetchPage(ctx context.Context, pageIndex int) ([]deals.Deal, error) {
	return []deals.Deal{}, nil
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchPage(ctx context.Context, pageIndex int) ([]deals.Deal, error) {
	return nil, providers.ErrProviderUnavailable
}

// NotifyingProvider returns deals and closes notify channel on first fetch.
type NotifyingProvider struct {
	Deals  []deals.Deal
	Notify chan struct{}
}

func (p *NotifyingProvider) FetchPage(ctx context.Context, pageIndex int) ([]deals.Deal, error) {
	_ = ctx
	_ = pageIndex
	if p.Notify != nil {
		select {
		case <-p.Notify:
		default:
			close(p.Notify)
		}
	}
	return p.Deals, nil
}
