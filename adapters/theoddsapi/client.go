package theoddsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/betslip/iris/pkg/common"
	"github.com/betslip/iris/pkg/contracts"
	"github.com/betslip/iris/pkg/models"
)

const (
	defaultBaseURL = "https://api.the-odds-api.com"
	apiVersion     = "v4"
	userAgent      = "Iris/1.0 (betslip odds gateway)"
	defaultTimeout = 10 * time.Second
	maxAttempts    = 2
	retryDelay     = 500 * time.Millisecond
)

// Client implements the VendorAdapter interface for The Odds API
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	rateLimits *models.RateLimits
	mu         sync.RWMutex
}

// Ensure Client implements VendorAdapter
var _ contracts.VendorAdapter = (*Client)(nil)

// Option configures a Client
type Option func(*Client)

// WithBaseURL overrides the upstream base URL (tests point this at a mock)
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithTimeout overrides the per-request timeout bound
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new The Odds API client
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		rateLimits: &models.RateLimits{
			RequestsRemaining: 500, // Default quota
			RequestsUsed:      0,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// FetchOdds retrieves the odds board for a sport (h2h, spreads, totals)
func (c *Client) FetchOdds(ctx context.Context, opts *models.FetchOddsOptions) ([]models.EventOdds, error) {
	endpoint := fmt.Sprintf("%s/%s/sports/%s/odds", c.baseURL, apiVersion, opts.Sport)

	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("regions", strings.Join(opts.Regions, ","))
	params.Set("markets", strings.Join(opts.Markets, ","))
	params.Set("oddsFormat", "american")
	params.Set("dateFormat", "iso")

	fullURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	body, err := c.doRequestWithRetry(ctx, fullURL)
	if err != nil {
		return nil, err
	}

	var apiResp []oddsResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, common.UpstreamProtocol(fmt.Errorf("parse odds response: %w", err))
	}

	return c.parseOddsResponse(apiResp, time.Now()), nil
}

// FetchEvents retrieves upcoming events without odds (for discovery)
func (c *Client) FetchEvents(ctx context.Context, sport string) ([]models.Event, error) {
	endpoint := fmt.Sprintf("%s/%s/sports/%s/events", c.baseURL, apiVersion, sport)

	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("dateFormat", "iso")

	fullURL := fmt.Sprintf("%s?%s", endpoint, params.Encode())

	body, err := c.doRequestWithRetry(ctx, fullURL)
	if err != nil {
		return nil, err
	}

	var apiResp []eventResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, common.UpstreamProtocol(fmt.Errorf("parse events response: %w", err))
	}

	return c.parseEventsResponse(apiResp), nil
}

// SupportsMarket checks if this adapter supports a given market
func (c *Client) SupportsMarket(market string) bool {
	supportedMarkets := map[string]bool{
		"h2h":     true,
		"spreads": true,
		"totals":  true,
	}
	return supportedMarkets[market]
}

// GetRateLimits returns the current upstream quota snapshot
func (c *Client) GetRateLimits() *models.RateLimits {
	c.mu.RLock()
	defer c.mu.RUnlock()
	limits := *c.rateLimits
	return &limits
}

// doRequestWithRetry performs an HTTP request with a single bounded retry.
// Only transient failures (network errors, upstream 5xx) are retried;
// credential, throttle and caller errors surface immediately.
func (c *Client) doRequestWithRetry(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			backoff := retryDelay * time.Duration(1<<uint(attempt-1))
			select {
			case <-ctx.Done():
				return nil, common.UpstreamUnavailable(ctx.Err())
			case <-time.After(backoff):
			}
		}

		body, err := c.doRequest(ctx, fullURL)
		if err == nil {
			return body, nil
		}

		lastErr = err

		if common.KindOf(err) != common.KindUpstreamUnavailable {
			return nil, err
		}
	}

	return nil, lastErr
}

// doRequest performs a single HTTP request and classifies any failure
func (c *Client) doRequest(ctx context.Context, fullURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, common.UpstreamUnavailable(fmt.Errorf("create request: %w", err))
	}

	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, common.UpstreamUnavailable(fmt.Errorf("execute request: %w", err))
	}
	defer resp.Body.Close()

	// Update quota snapshot from headers
	c.updateRateLimits(resp.Header)

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, common.UpstreamUnavailable(fmt.Errorf("read response body: %w", err))
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.classifyStatus(resp, body)
	}

	return body, nil
}

// classifyStatus translates a non-200 upstream response into a gateway error.
// The raw upstream body goes into Cause (logs only), never into Message.
func (c *Client) classifyStatus(resp *http.Response, body []byte) error {
	cause := fmt.Errorf("HTTP %d: %s", resp.StatusCode, string(body))

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return common.CredentialRejected(cause)
	case resp.StatusCode == http.StatusTooManyRequests:
		return common.RateLimited(parseRetryAfter(resp.Header.Get("Retry-After")), cause)
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		// Unknown sport key, bad params etc. - caller correctable
		return &common.GatewayError{
			Kind:    common.KindInvalidQuery,
			Message: "upstream provider rejected query parameters",
			Cause:   cause,
		}
	default:
		return common.UpstreamUnavailable(cause)
	}
}

// parseRetryAfter handles both delta-seconds and HTTP-date forms
func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}

	if secs, err := strconv.Atoi(value); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}

	if t, err := http.ParseTime(value); err == nil {
		if d := time.Until(t); d > 0 {
			return d
		}
	}

	return 0
}

// updateRateLimits extracts quota info from response headers
func (c *Client) updateRateLimits(headers http.Header) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if remaining := headers.Get("x-requests-remaining"); remaining != "" {
		if val, err := strconv.Atoi(remaining); err == nil {
			c.rateLimits.RequestsRemaining = val
		}
	}

	if used := headers.Get("x-requests-used"); used != "" {
		if val, err := strconv.Atoi(used); err == nil {
			c.rateLimits.RequestsUsed = val
		}
	}
}

// parseOddsResponse converts the wire format into the typed board
func (c *Client) parseOddsResponse(apiResp []oddsResponse, receivedAt time.Time) []models.EventOdds {
	board := make([]models.EventOdds, 0, len(apiResp))

	for _, event := range apiResp {
		commenceTime, err := time.Parse(time.RFC3339, event.CommenceTime)
		if err != nil {
			commenceTime = receivedAt // Fallback
		}

		bookmakers := make([]models.Bookmaker, 0, len(event.Bookmakers))
		for _, bk := range event.Bookmakers {
			lastUpdate, err := time.Parse(time.RFC3339, bk.LastUpdate)
			if err != nil {
				lastUpdate = receivedAt
			}

			markets := make([]models.Market, 0, len(bk.Markets))
			for _, mkt := range bk.Markets {
				outcomes := make([]models.Outcome, 0, len(mkt.Outcomes))
				for _, out := range mkt.Outcomes {
					outcome := models.Outcome{
						Name:  out.Name,
						Price: out.Price,
					}
					if out.Point != nil {
						point := *out.Point
						outcome.Point = &point
					}
					outcomes = append(outcomes, outcome)
				}
				markets = append(markets, models.Market{
					Key:      mkt.Key,
					Outcomes: outcomes,
				})
			}

			bookmakers = append(bookmakers, models.Bookmaker{
				Key:        bk.Key,
				Title:      bk.Title,
				LastUpdate: lastUpdate,
				Markets:    markets,
			})
		}

		board = append(board, models.EventOdds{
			EventID:      event.ID,
			SportKey:     event.SportKey,
			HomeTeam:     event.HomeTeam,
			AwayTeam:     event.AwayTeam,
			CommenceTime: commenceTime,
			Bookmakers:   bookmakers,
		})
	}

	return board
}

// parseEventsResponse converts the wire format into internal events
func (c *Client) parseEventsResponse(apiResp []eventResponse) []models.Event {
	events := make([]models.Event, 0, len(apiResp))

	for _, evt := range apiResp {
		commenceTime, err := time.Parse(time.RFC3339, evt.CommenceTime)
		if err != nil {
			continue // Skip invalid events
		}

		eventStatus := "upcoming"
		if time.Now().After(commenceTime) {
			eventStatus = "live"
		}

		events = append(events, models.Event{
			EventID:      evt.ID,
			SportKey:     evt.SportKey,
			HomeTeam:     evt.HomeTeam,
			AwayTeam:     evt.AwayTeam,
			CommenceTime: commenceTime,
			EventStatus:  eventStatus,
		})
	}

	return events
}

// Wire structures matching The Odds API JSON format

type oddsResponse struct {
	ID           string      `json:"id"`
	SportKey     string      `json:"sport_key"`
	SportTitle   string      `json:"sport_title"`
	CommenceTime string      `json:"commence_time"`
	HomeTeam     string      `json:"home_team"`
	AwayTeam     string      `json:"away_team"`
	Bookmakers   []bookmaker `json:"bookmakers"`
}

type bookmaker struct {
	Key        string   `json:"key"`
	Title      string   `json:"title"`
	LastUpdate string   `json:"last_update"`
	Markets    []market `json:"markets"`
}

type market struct {
	Key        string    `json:"key"`
	LastUpdate string    `json:"last_update"`
	Outcomes   []outcome `json:"outcomes"`
}

type outcome struct {
	Name  string   `json:"name"`
	Price int      `json:"price"`
	Point *float64 `json:"point,omitempty"`
}

type eventResponse struct {
	ID           string `json:"id"`
	SportKey     string `json:"sport_key"`
	SportTitle   string `json:"sport_title"`
	CommenceTime string `json:"commence_time"`
	HomeTeam     string `json:"home_team"`
	AwayTeam     string `json:"away_team"`
}
