package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
)

// Config holds runtime configuration for the server.
type Config struct {
	Port       string
	Provider   string
	Cheapshark CheapsharkConfig
	Upstream   UpstreamConfig
	SessionTTL Duration
	// SessionMax caps live sessions; the least recently used one is evicted past it.
	SessionMax int
	Log        LogConfig
	Metrics    MetricsConfig
}

// UpstreamConfig controls the wrappers placed around the deals provider.
type UpstreamConfig struct {
	MinInterval   Duration
	RetryAttempts int
	// ProbeInterval spaces the background readiness probes of the upstream.
	ProbeInterval Duration
}

// LogConfig selects the logger level and handler format.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:       envOrDefault(envPort, defaultPort),
		Provider:   envOrDefault(envProvider, defaultProvider),
		Cheapshark: loadCheapshark(),
		Upstream: UpstreamConfig{
			MinInterval:   durationEnvOrDefault(envProviderInterval, defaultMinInterval),
			RetryAttempts: intEnvOrDefault(envProviderRetries, defaultRetryAttempts),
			ProbeInterval: durationEnvOrDefault(envProbeInterval, defaultProbeInterval),
		},
		SessionTTL: durationEnvOrDefault(envSessionTTL, defaultSessionTTL),
		SessionMax: intEnvOrDefault(envSessionMax, defaultSessionMax),
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, defaultLogLevel),
			Format: envOrDefault(envLogFormat, defaultLogFormat),
		},
		Metrics: loadMetrics(),
	}
}

// LoadDotEnv seeds the process environment from the given files. Variables already
// set win over file values. Missing files are not an error.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}
