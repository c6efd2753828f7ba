package cheapshark

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/game-deals-service/internal/domain/deals"
	"github.com/preston-bernstein/game-deals-service/internal/providers"
)

// Config controls how the CheapShark client reaches the upstream API.
type Config struct {
	BaseURL    string
	StoreID    string
	PageSize   int
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client fetches deal pages from the CheapShark API and maps them to domain deals.
type Client struct {
	baseURL    string
	storeID    string
	pageSize   int
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a CheapShark client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		storeID:    resolveStoreID(cfg.StoreID),
		pageSize:   resolvePageSize(cfg.PageSize),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		now:        time.Now,
	}
}

// FetchPage retrieves one page of deals. Transport failures and non-200 statuses
// return *providers.NetworkError (or *providers.RateLimitError on 429); bodies that
// do not decode to a deal array return *providers.ParseError.
func (c *Client) FetchPage(ctx context.Context, pageIndex int) ([]deals.Deal, error) {
	req, err := c.buildRequest(ctx, pageIndex)
	if err != nil {
		return nil, &providers.NetworkError{Provider: providerName, Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &providers.NetworkError{Provider: providerName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Message:    "cheapshark: rate limited",
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, &providers.NetworkError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status: %s", strings.TrimSpace(string(body))),
		}
	}

	var payload []dealResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &providers.ParseError{Provider: providerName, Err: err}
	}

	return mapDeals(payload), nil
}

// PageSize reports the configured page size.
func (c *Client) PageSize() int {
	return c.pageSize
}

func (c *Client) buildRequest(ctx context.Context, pageIndex int) (*http.Request, error) {
	if pageIndex < 0 {
		pageIndex = 0
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/deals", nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("storeID", c.storeID)
	q.Set("pageSize", strconv.Itoa(c.pageSize))
	q.Set("page", strconv.Itoa(pageIndex))
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	return req, nil
}
