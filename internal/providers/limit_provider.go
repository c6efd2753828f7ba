package providers

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/preston-bernstein/game-deals-service/internal/domain/deals"
)

const defaultMinInterval = 250 * time.Millisecond

// rateLimitedProvider wraps a DealProvider and enforces a minimum interval between upstream calls.
type rateLimitedProvider struct {
	next     DealProvider
	interval time.Duration
	limiter  *rate.Limiter
	logger   *slog.Logger
}

// NewRateLimitedProvider returns a DealProvider that spaces calls at least interval apart.
// The first call goes through immediately; later calls wait for a token or the context.
func NewRateLimitedProvider(next DealProvider, interval time.Duration, logger *slog.Logger) DealProvider {
	if interval <= 0 {
		interval = defaultMinInterval
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		limiter:  rate.NewLimiter(rate.Every(interval), 1),
		logger:   logger,
	}
}

func (p *rateLimitedProvider) FetchPage(ctx context.Context, pageIndex int) ([]deals.Deal, error) {
	if p == nil || p.next == nil {
		if p != nil {
			logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "provider unavailable")
		}
		return nil, ErrProviderUnavailable
	}
	if err := p.limiter.Wait(ctx); err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "rate-limited fetch canceled", slog.Any("err", err))
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, err
	}
	logWithProvider(ctx, p.logger, slog.LevelDebug, "rate-limited", "rate-limited provider fetch", slog.Int("page", pageIndex))
	return p.next.FetchPage(ctx, pageIndex)
}
