package server

import (
	"context"
	"testing"
	"time"

	"github.com/preston-bernstein/game-deals-service/internal/config"
	"github.com/preston-bernstein/game-deals-service/internal/metrics"
)

func TestProviderFactoryBuildsWithDefaultInterval(t *testing.T) {
	factory := newProviderFactory(nil, nil)
	prov := factory.build(config.Config{Provider: config.ProviderFixture})
	if prov == nil {
		t.Fatalf("expected provider")
	}
}

func TestProviderFactoryBuiltProviderRecordsAttempts(t *testing.T) {
	rec := metrics.NewRecorder()
	factory := newProviderFactory(nil, rec)
	prov := factory.build(config.Config{
		Provider: config.ProviderFixture,
		Upstream: config.UpstreamConfig{MinInterval: time.Millisecond, RetryAttempts: 1},
	})

	records, err := prov.FetchPage(context.Background(), 0)
	if err != nil || len(records) == 0 {
		t.Fatalf("expected fixture records, got %v %v", records, err)
	}
	if rec.ProviderCalls(config.ProviderFixture) != 1 {
		t.Fatalf("expected one recorded attempt, got %d", rec.ProviderCalls(config.ProviderFixture))
	}
}
