package providers

import (
	"errors"
	"fmt"
	"time"
)

// ErrProviderUnavailable is returned when no upstream provider is configured.
var ErrProviderUnavailable = errors.New("provider unavailable")

// NetworkError means the request could not complete: transport failure or a non-2xx status.
type NetworkError struct {
	Provider   string
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	prefix := "network error"
	if e.Provider != "" {
		prefix = e.Provider + ": " + prefix
	}
	if e.StatusCode > 0 {
		prefix = fmt.Sprintf("%s (status=%d)", prefix, e.StatusCode)
	}
	if e.Err != nil {
		return prefix + ": " + e.Err.Error()
	}
	return prefix
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError means the response body was not in the expected shape.
type ParseError struct {
	Provider string
	Err      error
}

func (e *ParseError) Error() string {
	prefix := "parse error"
	if e.Provider != "" {
		prefix = e.Provider + ": " + prefix
	}
	if e.Err != nil {
		return prefix + ": " + e.Err.Error()
	}
	return prefix
}

func (e *ParseError) Unwrap() error { return e.Err }

// RateLimitError captures rate limit responses from upstream providers.
type RateLimitError struct {
	Provider   string
	StatusCode int
	RetryAfter time.Duration
	Message    string
}

func (e *RateLimitError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "provider rate limited"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status=%d)", msg, e.StatusCode)
	}
	return msg
}

// AsRateLimitError attempts to unwrap an error into a RateLimitError.
func AsRateLimitError(err error) (*RateLimitError, bool) {
	var rlErr *RateLimitError
	if errors.As(err, &rlErr) {
		return rlErr, true
	}
	return nil, false
}

// AsNetworkError attempts to unwrap an error into a NetworkError.
func AsNetworkError(err error) (*NetworkError, bool) {
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return netErr, true
	}
	return nil, false
}

// AsParseError attempts to unwrap an error into a ParseError.
func AsParseError(err error) (*ParseError, bool) {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr, true
	}
	return nil, false
}

// Kind returns a short label for metrics and logs: "rate_limit", "network", "parse" or "other".
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case isRateLimit(err):
		return "rate_limit"
	case isNetwork(err):
		return "network"
	case isParse(err):
		return "parse"
	default:
		return "other"
	}
}

func isRateLimit(err error) bool {
	_, ok := AsRateLimitError(err)
	return ok
}

func isNetwork(err error) bool {
	_, ok := AsNetworkError(err)
	return ok
}

func isParse(err error) bool {
	_, ok := AsParseError(err)
	return ok
}
