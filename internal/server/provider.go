package server

import (
	"log/slog"

	"github.com/preston-bernstein/game-deals-service/internal/config"
	"github.com/preston-bernstein/game-deals-service/internal/providers"
	"github.com/preston-bernstein/game-deals-service/internal/providers/cheapshark"
	"github.com/preston-bernstein/game-deals-service/internal/providers/fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DealProvider {
	switch cfg.Provider {
	case config.ProviderFixture:
		return fixture.New()
	case config.ProviderCheapshark, "":
		return cheapshark.NewClient(cheapshark.Config{
			BaseURL:  cfg.Cheapshark.BaseURL,
			StoreID:  cfg.Cheapshark.StoreID,
			PageSize: cfg.Cheapshark.PageSize,
			Timeout:  cfg.Cheapshark.Timeout,
		})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
