package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/preston-bernstein/game-deals-service/internal/teststubs"
)

func TestRateLimitedProviderFirstCallIsImmediate(t *testing.T) {
	inner := &teststubs.StubProvider{}
	rl := NewRateLimitedProvider(inner, time.Hour, nil)

	start := time.Now()
	if _, err := rl.FetchPage(context.Background(), 0); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Fatalf("expected first call to pass without waiting, took %s", elapsed)
	}
	if inner.Calls.Load() != 1 {
		t.Fatalf("expected inner provider called once, got %d", inner.Calls.Load())
	}
}

func TestRateLimitedProviderSpacesCalls(t *testing.T) {
	inner := &teststubs.StubProvider{}
	rl := NewRateLimitedProvider(inner, 20*time.Millisecond, nil)

	start := time.Now()
	for i := 0; i < 2; i++ {
		if _, err := rl.FetchPage(context.Background(), i); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}
	if elapsed := time.Since(start); elapsed < 15*time.Millisecond {
		t.Fatalf("expected second call to wait for the limiter, elapsed %s", elapsed)
	}
	if inner.Calls.Load() != 2 {
		t.Fatalf("expected 2 inner calls, got %d", inner.Calls.Load())
	}
}

func TestRateLimitedProviderRespectsCanceledContext(t *testing.T) {
	inner := &teststubs.StubProvider{}
	rl := NewRateLimitedProvider(inner, time.Hour, nil)
	_, _ = rl.FetchPage(context.Background(), 0)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := rl.FetchPage(ctx, 1); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled error, got %v", err)
	}
	if inner.Calls.Load() != 1 {
		t.Fatalf("expected inner provider not called on canceled context")
	}
}

func TestRateLimitedProviderHandlesNilInner(t *testing.T) {
	var inner DealProvider
	rl := NewRateLimitedProvider(inner, time.Millisecond, nil)

	if _, err := rl.FetchPage(context.Background(), 0); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestRateLimitedProviderDefaultsInterval(t *testing.T) {
	rl := NewRateLimitedProvider(&teststubs.StubProvider{}, 0, nil).(*rateLimitedProvider)
	if rl.interval != defaultMinInterval {
		t.Fatalf("expected default interval %s, got %s", defaultMinInterval, rl.interval)
	}
}
