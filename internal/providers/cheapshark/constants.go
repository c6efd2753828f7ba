package cheapshark

import "time"

const (
	defaultBaseURL     = "https://www.cheapshark.com/api/1.0"
	defaultStoreID     = "1"
	defaultPageSize    = 30
	maxPageSize        = 60
	defaultHTTPTimeout = 10 * time.Second
)
