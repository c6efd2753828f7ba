package testutil

import (
	"time"

	"github.com/preston-bernstein/game-deals-service/internal/metrics"
	"github.com/preston-bernstein/game-deals-service/internal/providers"
	"github.com/preston-bernstein/game-deals-service/internal/providers/fixture"
	"github.com/preston-bernstein/game-deals-service/internal/storefront"
)

// NewRegistry builds a session registry whose sessions fetch from provider and
// fall back to the fixture dataset.
func NewRegistry(provider providers.DealProvider, recorder *metrics.Recorder) *storefront.Registry {
	return NewBoundedRegistry(provider, recorder, 0)
}

// NewBoundedRegistry is NewRegistry holding at most maxSessions live sessions.
func NewBoundedRegistry(provider providers.DealProvider, recorder *metrics.Recorder, maxSessions int) *storefront.Registry {
	factory := func(id string) *storefront.Session {
		return storefront.NewSession(id, storefront.Options{
			Provider: provider,
			Fallback: fixture.Deals,
			Metrics:  recorder,
		})
	}
	return storefront.NewRegistry(factory, time.Hour, maxSessions, nil, recorder)
}
