package fixture

import (
	"context"

	"github.com/preston-bernstein/game-deals-service/internal/domain/deals"
)

const (
	providerName = "fixture"

	eldenRingThumb = "https://images.igdb.com/igdb/image/upload/t_cover_big/colr76.png"
	godOfWarThumb  = "https://images.igdb.com/igdb/image/upload/t_cover_big/co6a5r.png"
)

// Provider serves the built-in fallback dataset. Page 0 holds every record;
// later pages are empty.
type Provider struct{}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{}
}

// Name identifies the provider in logs and metrics.
func (p *Provider) Name() string {
	return providerName
}

// FetchPage returns the fallback records for page 0 and nothing afterwards.
func (p *Provider) FetchPage(ctx context.Context, pageIndex int) ([]deals.Deal, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if pageIndex > 0 {
		return []deals.Deal{}, nil
	}
	return Deals(), nil
}

// Deals returns a fresh copy of the fallback records. They carry no prices and no savings.
func Deals() []deals.Deal {
	return []deals.Deal{
		{
			DealID:       "fallback-elden-ring",
			Title:        "Elden Ring",
			ThumbnailURL: eldenRingThumb,
		},
		{
			DealID:       "fallback-god-of-war",
			Title:        "God of War",
			ThumbnailURL: godOfWarThumb,
		},
	}
}
