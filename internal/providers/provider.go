package providers

import (
	"context"

	"github.com/preston-bernstein/game-deals-service/internal/domain/deals"
)

// DealProvider fetches one page of deals from an upstream source.
// pageIndex is zero-based and maintained by the caller; the upstream has no cursor.
// Implementations classify failures as *NetworkError or *ParseError.
type DealProvider interface {
	FetchPage(ctx context.Context, pageIndex int) ([]deals.Deal, error)
}

// ProviderFunc adapts a function to DealProvider.
type ProviderFunc func(ctx context.Context, pageIndex int) ([]deals.Deal, error)

// FetchPage calls f.
func (f ProviderFunc) FetchPage(ctx context.Context, pageIndex int) ([]deals.Deal, error) {
	return f(ctx, pageIndex)
}
