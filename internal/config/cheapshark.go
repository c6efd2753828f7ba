package config

import "time"

const (
	envCheapsharkBaseURL  = "CHEAPSHARK_BASE_URL"
	envCheapsharkStoreID  = "CHEAPSHARK_STORE_ID"
	envCheapsharkPageSize = "CHEAPSHARK_PAGE_SIZE"
	envCheapsharkTimeout  = "CHEAPSHARK_TIMEOUT"

	defaultCheapsharkBaseURL  = "https://www.cheapshark.com/api/1.0"
	defaultCheapsharkStoreID  = "1"
	defaultCheapsharkPageSize = 30
	defaultCheapsharkTimeout  = 10 * time.Second
)

// CheapsharkConfig controls how we talk to the CheapShark deals API.
type CheapsharkConfig struct {
	BaseURL  string
	StoreID  string
	PageSize int
	Timeout  time.Duration
}

func loadCheapshark() CheapsharkConfig {
	return CheapsharkConfig{
		BaseURL:  envOrDefault(envCheapsharkBaseURL, defaultCheapsharkBaseURL),
		StoreID:  envOrDefault(envCheapsharkStoreID, defaultCheapsharkStoreID),
		PageSize: intEnvOrDefault(envCheapsharkPageSize, defaultCheapsharkPageSize),
		Timeout:  durationEnvOrDefault(envCheapsharkTimeout, defaultCheapsharkTimeout),
	}
}
