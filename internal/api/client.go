// Package api is the typed client for the MRS backend JSON API. Responses
// are decoded into per-endpoint structs at this boundary; payloads that
// report failure come back as *APIError so callers can tell server-reported
// failures from transport failures.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// APIError is an application-level failure: the backend answered, parsed,
// and said no.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return "request failed"
	}
	return e.Message
}

// Client talks to one MRS backend.
type Client struct {
	logger *zap.Logger
	http   *resty.Client
}

// New builds a client for the backend at baseURL. A nil logger is replaced
// with a nop logger.
func New(logger *zap.Logger, baseURL string, timeout time.Duration) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	http := resty.New()
	http.SetBaseURL(strings.TrimRight(baseURL, "/"))
	http.SetTimeout(timeout)
	http.SetHeader("Accept", "application/json")

	return &Client{
		logger: logger,
		http:   http,
	}
}

// do issues the request and decodes the body into out. The backend reports
// failures inside JSON bodies on any status code, so the body is decoded
// regardless of status; a body that does not decode is a transport-class
// failure.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetHeader("Content-Type", "application/json")
		req.SetBody(body)
	}

	res, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if err := json.Unmarshal(res.Body(), out); err != nil {
		if res.IsError() {
			return fmt.Errorf("%s %s: status %s", method, path, res.Status())
		}
		return fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return nil
}

// actionResponse is the shared envelope of the POST endpoints.
type actionResponse struct {
	Success  bool   `json:"success"`
	Error    string `json:"error"`
	Message  string `json:"message"`
	NewItems *int64 `json:"new_items"`
}

// Stats fetches the current stats snapshot.
func (c *Client) Stats(ctx context.Context) (*StatsSnapshot, error) {
	var payload struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
		StatsSnapshot
	}
	if err := c.do(ctx, resty.MethodGet, "/api/stats", nil, &payload); err != nil {
		return nil, err
	}
	if !payload.Success {
		return nil, &APIError{Message: payload.Error}
	}
	return &payload.StatsSnapshot, nil
}

// RecentItems fetches the most recently discovered listings.
func (c *Client) RecentItems(ctx context.Context) ([]Item, error) {
	var payload struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
		Items   []Item `json:"items"`
	}
	if err := c.do(ctx, resty.MethodGet, "/api/recent-items", nil, &payload); err != nil {
		return nil, err
	}
	if !payload.Success {
		return nil, &APIError{Message: payload.Error}
	}
	return payload.Items, nil
}

// Queries fetches the saved searches.
func (c *Client) Queries(ctx context.Context) ([]Query, error) {
	var payload struct {
		Success bool    `json:"success"`
		Error   string  `json:"error"`
		Queries []Query `json:"queries"`
	}
	if err := c.do(ctx, resty.MethodGet, "/api/queries", nil, &payload); err != nil {
		return nil, err
	}
	if !payload.Success {
		return nil, &APIError{Message: payload.Error}
	}
	return payload.Queries, nil
}

// TestSearch asks the backend to validate and trial-run a search URL.
func (c *Client) TestSearch(ctx context.Context, rawURL string) (*ValidationResult, error) {
	var result ValidationResult
	body := map[string]string{"url": rawURL}
	if err := c.do(ctx, resty.MethodPost, "/api/search/test", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ForceScan triggers an immediate search-and-ingest cycle and reports how
// many new items it found. An absent new_items count means zero.
func (c *Client) ForceScan(ctx context.Context) (int64, error) {
	var payload actionResponse
	if err := c.do(ctx, resty.MethodPost, "/api/force-scan", nil, &payload); err != nil {
		return 0, err
	}
	// The backend signals success either with the flag or by reporting a
	// new-item count.
	if !payload.Success && payload.NewItems == nil {
		return 0, &APIError{Message: payload.Error}
	}
	if payload.NewItems == nil {
		return 0, nil
	}
	return *payload.NewItems, nil
}

// TestNotification asks the backend to deliver a test notification.
func (c *Client) TestNotification(ctx context.Context) error {
	return c.action(ctx, "/api/notifications/test")
}

// DeleteQuery removes the saved search with the given id.
func (c *Client) DeleteQuery(ctx context.Context, id int64) error {
	return c.action(ctx, fmt.Sprintf("/api/queries/%d/delete", id))
}

// ToggleQuery flips the enabled state of the saved search with the given id.
func (c *Client) ToggleQuery(ctx context.Context, id int64) error {
	return c.action(ctx, fmt.Sprintf("/api/queries/%d/toggle", id))
}

// ClearAllItems deletes every stored item and returns the backend's
// confirmation message.
func (c *Client) ClearAllItems(ctx context.Context) (string, error) {
	var payload actionResponse
	if err := c.do(ctx, resty.MethodPost, "/api/clear-all-items", nil, &payload); err != nil {
		return "", err
	}
	if !payload.Success {
		return "", &APIError{Message: payload.Error}
	}
	return payload.Message, nil
}

func (c *Client) action(ctx context.Context, path string) error {
	var payload actionResponse
	if err := c.do(ctx, resty.MethodPost, path, nil, &payload); err != nil {
		return err
	}
	if !payload.Success {
		return &APIError{Message: payload.Error}
	}
	return nil
}
