// Package statsapi fetches season schedules from the public MLB Stats API
// and maps them into raw schedule rows for normalization downstream.
package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	domaingames "mlb-insights-service/internal/domain/games"
	"mlb-insights-service/internal/providers"
)

// Config controls how the statsapi client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
}

// Client fetches schedules from the MLB Stats API.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient constructs a statsapi client with the provided configuration.
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil && cfg.Timeout > 0 {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(httpClient),
	}
}

// FetchSchedule retrieves every schedule row between start and end inclusive.
// The Stats API returns the whole range in one payload grouped by date.
func (c *Client) FetchSchedule(ctx context.Context, start, end string) ([]domaingames.RawGame, error) {
	req, err := c.buildRequest(ctx, start, end)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &providers.RateLimitError{
			Provider:   ProviderName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After")),
		}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("statsapi: unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload scheduleResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	var rows []domaingames.RawGame
	for _, day := range payload.Dates {
		for _, g := range day.Games {
			rows = append(rows, mapGame(day.Date, g))
		}
	}
	return rows, nil
}

func (c *Client) buildRequest(ctx context.Context, start, end string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/schedule", nil)
	if err != nil {
		return nil, err
	}

	q := req.URL.Query()
	q.Set("sportId", strconv.Itoa(sportID))
	q.Set("startDate", start)
	q.Set("endDate", end)
	req.URL.RawQuery = q.Encode()

	return req, nil
}

func parseRetryAfter(raw string) time.Duration {
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return 0
}
