package config

import "time"

const (
	envPort              = "PORT"
	envProvider          = "PROVIDER"
	envProviderInterval  = "PROVIDER_MIN_INTERVAL"
	envProviderRetries   = "PROVIDER_RETRY_ATTEMPTS"
	envProbeInterval     = "PROVIDER_PROBE_INTERVAL"
	envSessionTTL        = "SESSION_TTL"
	envSessionMax        = "SESSION_MAX"
	envLogLevel          = "LOG_LEVEL"
	envLogFormat         = "LOG_FORMAT"
	envMetricsPort       = "METRICS_PORT"
	envMetricsOn         = "METRICS_ENABLED"
	envOtelEndpoint      = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService       = "OTEL_SERVICE_NAME"
	envOtelInsecure      = "OTEL_EXPORTER_OTLP_INSECURE"
	defaultPort          = "4000"
	defaultProvider      = ProviderCheapshark
	defaultMinInterval   = 250 * Duration(time.Millisecond)
	defaultRetryAttempts = 1
	defaultProbeInterval = 2 * Duration(time.Minute)
	defaultSessionTTL    = 30 * Duration(time.Minute)
	defaultSessionMax    = 1000
	defaultLogLevel      = "info"
	defaultLogFormat     = "text"
	defaultMetricsPort   = "9090"
	defaultServiceName   = "game-deals-service"
)

// Provider names accepted by PROVIDER.
const (
	ProviderCheapshark = "cheapshark"
	ProviderFixture    = "fixture"
)
