package serpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/cartwise/backend/internal/domain"
	"golang.org/x/time/rate"
)

const searchEngine = "google_shopping"

// Client handles communication with the SerpApi Google Shopping API
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	market      string
	rateLimiter *rate.Limiter
	debug       bool
}

// NewClient creates a new SerpApi client. market is the Google country code
// passed as "gl" on every search ("my" targets the Malaysian marketplace).
func NewClient(apiKey, baseURL, market string) *Client {
	// SerpApi free-tier quotas are tight; keep a soft 1 req/sec ceiling with
	// a small burst so a multi-item request does not trip the provider.
	limiter := rate.NewLimiter(rate.Limit(1), 5)

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     baseURL,
		market:      market,
		rateLimiter: limiter,
	}
}

// SetDebug enables verbose request logging
func (c *Client) SetDebug(debug bool) {
	c.debug = debug
}

// SearchShopping runs one shopping search for a query in a location and
// returns the raw listings. A provider error envelope aborts immediately;
// there is no retry, so a failing item fails the whole pipeline run.
func (c *Client) SearchShopping(ctx context.Context, query, location string) ([]domain.ShoppingListing, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRateLimited, err)
	}

	endpoint := fmt.Sprintf("%s/search.json", c.baseURL)
	params := url.Values{}
	params.Add("engine", searchEngine)
	params.Add("q", query)
	params.Add("gl", c.market)
	params.Add("location", location)
	params.Add("api_key", c.apiKey)

	reqURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	if c.debug {
		log.Printf("[serpapi] GET %s/search.json engine=%s q=%q location=%q", c.baseURL, searchEngine, query, location)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "Cartwise/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSearchProviderFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", domain.ErrSearchProviderFailure, err)
	}

	// SerpApi reports failures both as non-200 statuses and as an "error"
	// field inside a 200 envelope; decode first so the provider message
	// survives either way.
	var searchResp domain.ShoppingSearchResponse
	if jsonErr := json.Unmarshal(body, &searchResp); jsonErr != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("%w: status %d", domain.ErrSearchProviderFailure, resp.StatusCode)
		}
		return nil, fmt.Errorf("%w: decoding response: %v", domain.ErrSearchProviderFailure, jsonErr)
	}

	if searchResp.Error != "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrSearchProviderFailure, searchResp.Error)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", domain.ErrSearchProviderFailure, resp.StatusCode)
	}

	if c.debug {
		log.Printf("[serpapi] %d listings for %q", len(searchResp.ShoppingResults), query)
	}

	return searchResp.ShoppingResults, nil
}
