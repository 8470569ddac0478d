// Package client provides the core Blitzr HTTP client: it builds and issues
// single GET requests, attaches the API key, classifies failures into a typed
// error taxonomy, and decodes JSON response bodies.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Prometheus metrics for Blitzr client operations.
var (
	blitzrRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blitzr_requests_total",
		Help: "Total Blitzr API requests by endpoint and status",
	}, []string{"endpoint", "status"})

	blitzrRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "blitzr_request_duration_seconds",
		Help:    "Blitzr API request duration in seconds by endpoint",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
	}, []string{"endpoint"})

	blitzrErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blitzr_errors_total",
		Help: "Total Blitzr API errors by class",
	}, []string{"class"})
)

// DefaultBaseURL is the production Blitzr API endpoint.
const DefaultBaseURL = "https://api.blitzr.com/"

// apiKeyParam is the query parameter carrying the authentication key.
const apiKeyParam = "key"

// Record is one result record as returned by the API: an opaque mapping from
// string keys to JSON-typed values.
type Record map[string]any

// Config holds the client configuration.
type Config struct {
	// APIKey is the Blitzr API key (REQUIRED).
	APIKey string

	// BaseURL overrides the API endpoint. Used for testing.
	BaseURL string

	// HTTPClient overrides the HTTP client. Defaults to a client with a
	// 30 second timeout.
	HTTPClient *http.Client

	// Logger overrides the component logger.
	Logger *zerolog.Logger
}

// DefaultConfig returns a default configuration for the given API key.
func DefaultConfig(apiKey string) Config {
	return Config{
		APIKey:  apiKey,
		BaseURL: DefaultBaseURL,
	}
}

// Client is the Blitzr request executor. A Client is immutable after
// construction and safe for use by any number of independent sequences.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

// New creates a new Blitzr client. The API key is validated once here, before
// any network call is ever attempted; a missing key is a configuration error
// for the lifetime of the client.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, &Error{Class: ErrorClassConfiguration, Message: "api key is missing", Err: ErrMissingAPIKey}
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	logger := log.With().Str("component", "blitzr-client").Logger()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// Execute issues one GET against baseURL+endpoint with the given parameters
// plus the API key, and returns the raw JSON body on HTTP 2xx. One network
// call, no retries, no caching.
func (c *Client) Execute(ctx context.Context, endpoint string, params *Params) (json.RawMessage, error) {
	query := params.Clone()
	query.Set(apiKeyParam, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, newNetworkError(err)
	}
	req.Header.Set("Accept", "application/json")

	startTime := time.Now()
	defer func() {
		blitzrRequestDuration.WithLabelValues(endpoint).Observe(time.Since(startTime).Seconds())
	}()

	c.logger.Debug().
		Str("endpoint", endpoint).
		Msg("Executing Blitzr request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).Str("endpoint", endpoint).Msg("HTTP request failed")
		blitzrErrorsTotal.WithLabelValues(string(ErrorClassNetwork)).Inc()
		blitzrRequestsTotal.WithLabelValues(endpoint, "network_error").Inc()
		return nil, newNetworkError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		blitzrErrorsTotal.WithLabelValues(string(ErrorClassNetwork)).Inc()
		return nil, newNetworkError(err)
	}

	blitzrRequestsTotal.WithLabelValues(endpoint, fmt.Sprintf("%d", resp.StatusCode)).Inc()

	switch {
	case resp.StatusCode >= 500:
		c.logger.Warn().
			Str("endpoint", endpoint).
			Int("status", resp.StatusCode).
			Msg("Blitzr server error")
		blitzrErrorsTotal.WithLabelValues(string(ErrorClassServer)).Inc()
		return nil, newServerError(resp.StatusCode)

	case resp.StatusCode >= 400:
		c.logger.Warn().
			Str("endpoint", endpoint).
			Int("status", resp.StatusCode).
			Msg("Blitzr client error")
		blitzrErrorsTotal.WithLabelValues(string(ErrorClassClient)).Inc()
		return nil, newClientError(resp.StatusCode, json.RawMessage(body))
	}

	return json.RawMessage(body), nil
}

// FetchPage issues one page request. It is the seam the pagination package
// consumes; a page fetch is a complete, independent request/response exchange.
func (c *Client) FetchPage(ctx context.Context, endpoint string, params *Params) (json.RawMessage, error) {
	return c.Execute(ctx, endpoint, params)
}

// GetObject executes a request whose response is a single record object.
func (c *Client) GetObject(ctx context.Context, endpoint string, params *Params) (Record, error) {
	raw, err := c.Execute(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}
	var record Record
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("blitzr: decode response: %w", err)
	}
	return record, nil
}

// GetList executes a request whose response is a bare array of records.
func (c *Client) GetList(ctx context.Context, endpoint string, params *Params) ([]Record, error) {
	raw, err := c.Execute(ctx, endpoint, params)
	if err != nil {
		return nil, err
	}
	var records []Record
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("blitzr: decode response: %w", err)
	}
	return records, nil
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}
