package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Provider != ProviderCheapshark {
		t.Fatalf("expected default provider %s, got %s", ProviderCheapshark, cfg.Provider)
	}
	if cfg.Cheapshark.BaseURL != defaultCheapsharkBaseURL {
		t.Fatalf("expected default base url %s, got %s", defaultCheapsharkBaseURL, cfg.Cheapshark.BaseURL)
	}
	if cfg.Cheapshark.StoreID != "1" || cfg.Cheapshark.PageSize != 30 {
		t.Fatalf("unexpected cheapshark defaults %+v", cfg.Cheapshark)
	}
	if cfg.Cheapshark.Timeout != 10*time.Second {
		t.Fatalf("expected 10s timeout, got %s", cfg.Cheapshark.Timeout)
	}
	if cfg.Upstream.MinInterval != 250*time.Millisecond || cfg.Upstream.RetryAttempts != 1 || cfg.Upstream.ProbeInterval != 2*time.Minute {
		t.Fatalf("unexpected upstream defaults %+v", cfg.Upstream)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Fatalf("expected 30m session ttl, got %s", cfg.SessionTTL)
	}
	if cfg.SessionMax != 1000 {
		t.Fatalf("expected 1000 max sessions, got %d", cfg.SessionMax)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Fatalf("unexpected log defaults %+v", cfg.Log)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != defaultMetricsPort || cfg.Metrics.ServiceName != defaultServiceName {
		t.Fatalf("unexpected metrics defaults %+v", cfg.Metrics)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envProvider, ProviderFixture)
	t.Setenv(envCheapsharkBaseURL, "http://example.com/api")
	t.Setenv(envCheapsharkStoreID, "7")
	t.Setenv(envCheapsharkPageSize, "12")
	t.Setenv(envCheapsharkTimeout, "3s")
	t.Setenv(envProviderInterval, "1s")
	t.Setenv(envProviderRetries, "3")
	t.Setenv(envProbeInterval, "45s")
	t.Setenv(envSessionTTL, "5m")
	t.Setenv(envSessionMax, "50")
	t.Setenv(envLogFormat, "json")
	t.Setenv(envMetricsOn, "false")

	cfg := Load()

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.Provider != ProviderFixture {
		t.Fatalf("expected fixture provider, got %s", cfg.Provider)
	}
	if cfg.Cheapshark.BaseURL != "http://example.com/api" || cfg.Cheapshark.StoreID != "7" || cfg.Cheapshark.PageSize != 12 {
		t.Fatalf("unexpected cheapshark overrides %+v", cfg.Cheapshark)
	}
	if cfg.Cheapshark.Timeout != 3*time.Second {
		t.Fatalf("expected 3s timeout, got %s", cfg.Cheapshark.Timeout)
	}
	if cfg.Upstream.MinInterval != time.Second || cfg.Upstream.RetryAttempts != 3 || cfg.Upstream.ProbeInterval != 45*time.Second {
		t.Fatalf("unexpected upstream overrides %+v", cfg.Upstream)
	}
	if cfg.SessionTTL != 5*time.Minute {
		t.Fatalf("expected 5m ttl, got %s", cfg.SessionTTL)
	}
	if cfg.SessionMax != 50 {
		t.Fatalf("expected 50 max sessions, got %d", cfg.SessionMax)
	}
	if cfg.Log.Format != "json" {
		t.Fatalf("expected json log format, got %s", cfg.Log.Format)
	}
	if cfg.Metrics.Enabled {
		t.Fatal("expected metrics disabled")
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envSessionTTL, "not-a-duration")

	cfg := Load()

	if cfg.SessionTTL != defaultSessionTTL {
		t.Fatalf("expected default ttl on invalid value, got %s", cfg.SessionTTL)
	}
}

func TestLoadNonPositiveValuesFallBack(t *testing.T) {
	t.Setenv(envProviderInterval, "0s")
	t.Setenv(envCheapsharkPageSize, "-4")

	cfg := Load()

	if cfg.Upstream.MinInterval != defaultMinInterval {
		t.Fatalf("expected default interval on non-positive value, got %s", cfg.Upstream.MinInterval)
	}
	if cfg.Cheapshark.PageSize != defaultCheapsharkPageSize {
		t.Fatalf("expected default page size, got %d", cfg.Cheapshark.PageSize)
	}
}

func TestLoadDotEnvSeedsUnsetVariables(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := "CHEAPSHARK_STORE_ID=11\nPORT=7000\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv(envPort, "5000")
	t.Setenv(envCheapsharkStoreID, "")
	os.Unsetenv(envCheapsharkStoreID)

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	t.Cleanup(func() { os.Unsetenv(envCheapsharkStoreID) })

	cfg := Load()
	if cfg.Cheapshark.StoreID != "11" {
		t.Fatalf("expected store id from env file, got %s", cfg.Cheapshark.StoreID)
	}
	if cfg.Port != "5000" {
		t.Fatalf("expected existing env to win, got %s", cfg.Port)
	}
}

func TestLoadDotEnvIgnoresMissingFile(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("expected missing file to be ignored, got %v", err)
	}
}
