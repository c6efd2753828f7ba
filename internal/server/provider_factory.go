package server

import (
	"log/slog"

	"github.com/preston-bernstein/game-deals-service/internal/config"
	"github.com/preston-bernstein/game-deals-service/internal/metrics"
	"github.com/preston-bernstein/game-deals-service/internal/providers"
)

// providerFactory assembles the provider with shared wrappers (rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DealProvider {
	base := selectProvider(cfg, f.logger)
	// One limiter for every session so page clicks cannot burst the upstream.
	limited := providers.NewRateLimitedProvider(base, cfg.Upstream.MinInterval, f.logger)
	return f.instrument(cfg, base, limited)
}

// instrument adds metrics, logging and retries around next, naming it after base.
func (f providerFactory) instrument(cfg config.Config, base, next providers.DealProvider) providers.DealProvider {
	name := normalizeProviderName(cfg.Provider, base)
	return providers.NewRetryingProvider(next, f.logger, f.metrics, name, cfg.Upstream.RetryAttempts, 0)
}
