// Package report fetches dashboard aggregates from the Traffic Buddy backend.
package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/j-veylop/trafficbuddy-tui/internal/logger"
	"github.com/j-veylop/trafficbuddy-tui/internal/models"
)

const (
	// SummaryPath serves the dashboard aggregates.
	SummaryPath = "/api/dashboard/summary"

	// RecentActivityPath serves the newest traffic reports.
	RecentActivityPath = "/api/dashboard/recent-activity"

	// DefaultTimeout bounds each request when no timeout is configured.
	DefaultTimeout = 10 * time.Second

	requestIDHeader = "X-Request-ID"
)

// Client talks to the dashboard endpoints of a single backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the per-request deadline. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// New creates a client for the backend at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		timeout:    DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the backend address without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// envelope is the response wrapper used by every dashboard endpoint.
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// FetchSummary retrieves the aggregate statistics.
func (c *Client) FetchSummary(ctx context.Context) (*models.DashboardSummary, error) {
	var summary models.DashboardSummary
	if err := c.get(ctx, SummaryPath, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// FetchRecentActivity retrieves the newest reports, newest first.
func (c *Client) FetchRecentActivity(ctx context.Context) ([]models.ActivityEntry, error) {
	var entries []models.ActivityEntry
	if err := c.get(ctx, RecentActivityPath, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.ActivityEntry{}
	}
	return entries, nil
}

// FetchDashboard issues both requests concurrently and returns both results
// or the first error. A failure cancels the request still in flight.
func (c *Client) FetchDashboard(ctx context.Context) (*models.Dashboard, error) {
	g, gctx := errgroup.WithContext(ctx)

	var (
		summary  *models.DashboardSummary
		activity []models.ActivityEntry
	)

	g.Go(func() error {
		s, err := c.FetchSummary(gctx)
		if err != nil {
			return err
		}
		summary = s
		return nil
	})
	g.Go(func() error {
		a, err := c.FetchRecentActivity(gctx)
		if err != nil {
			return err
		}
		activity = a
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &models.Dashboard{Summary: *summary, Activity: activity}, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	requestID := uuid.NewString()
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request for %s: %w", ErrNetwork, path, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("dashboard request failed", "path", path, "request_id", requestID, "error", err)
		return fmt.Errorf("%w: %s request failed: %w", ErrNetwork, path, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Error("failed to close response body", "error", err)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read %s response: %w", ErrNetwork, path, err)
	}

	logger.Debug("dashboard request",
		"path", path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newStatusError(path, resp.StatusCode, body)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return fmt.Errorf("%w: failed to parse %s response: %w", ErrMalformedPayload, path, err)
	}
	if len(env.Data) == 0 || bytes.Equal(bytes.TrimSpace(env.Data), []byte("null")) {
		return fmt.Errorf("%w: %s response has no data", ErrMalformedPayload, path)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: failed to decode %s data: %w", ErrMalformedPayload, path, err)
	}

	return nil
}
