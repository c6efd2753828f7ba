package server

import (
	"log/slog"

	"github.com/preston-bernstein/game-deals-service/internal/config"
	"github.com/preston-bernstein/game-deals-service/internal/metrics"
	"github.com/preston-bernstein/game-deals-service/internal/providers"
	"github.com/preston-bernstein/game-deals-service/internal/providers/fixture"
	"github.com/preston-bernstein/game-deals-service/internal/storefront"
)

// buildSessions returns the registry handing out one storefront session per browser.
// Every session shares provider, so rate limiting and health tracking see all traffic.
func buildSessions(cfg config.Config, provider providers.DealProvider, logger *slog.Logger, recorder *metrics.Recorder) *storefront.Registry {
	factory := func(id string) *storefront.Session {
		return storefront.NewSession(id, storefront.Options{
			Provider: provider,
			Fallback: fixture.Deals,
			Logger:   logger,
			Metrics:  recorder,
		})
	}
	return storefront.NewRegistry(factory, cfg.SessionTTL, cfg.SessionMax, logger, recorder)
}
