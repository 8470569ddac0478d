// Package testutil provides testing utilities for the Blitzr client.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"sync"
)

// MockResponse defines a canned response for a mock endpoint.
type MockResponse struct {
	StatusCode int
	Body       string
	Headers    map[string]string
}

// MockBlitzr is a configurable mock Blitzr API server for testing.
type MockBlitzr struct {
	server   *httptest.Server
	mu       sync.RWMutex
	handlers map[string]func(w http.ResponseWriter, r *http.Request)

	// Tracking
	RequestCount int
	pathCounts   map[string]int
	LastQuery    url.Values
}

// NewMockBlitzr creates a new mock Blitzr server.
func NewMockBlitzr() *MockBlitzr {
	mock := &MockBlitzr{
		handlers:   make(map[string]func(w http.ResponseWriter, r *http.Request)),
		pathCounts: make(map[string]int),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.mu.Lock()
		mock.RequestCount++
		mock.pathCounts[r.URL.Path]++
		mock.LastQuery = r.URL.Query()
		mock.mu.Unlock()

		mock.mu.RLock()
		handler, exists := mock.handlers[r.URL.Path]
		mock.mu.RUnlock()

		if exists {
			handler(w, r)
			return
		}

		mock.defaultHandler(w, r)
	}))

	return mock
}

// URL returns the mock server URL with a trailing slash, ready to be used as
// a client base URL.
func (m *MockBlitzr) URL() string {
	return m.server.URL + "/"
}

// Close shuts down the mock server.
func (m *MockBlitzr) Close() {
	m.server.Close()
}

// Reset clears all tracking counters.
func (m *MockBlitzr) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RequestCount = 0
	m.pathCounts = make(map[string]int)
	m.LastQuery = nil
}

// GetRequestCount returns the total number of requests received.
func (m *MockBlitzr) GetRequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.RequestCount
}

// RequestsTo returns the number of requests received for one path.
func (m *MockBlitzr) RequestsTo(path string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pathCounts[path]
}

// SetHandler sets a custom handler for a specific path.
func (m *MockBlitzr) SetHandler(path string, handler func(w http.ResponseWriter, r *http.Request)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[path] = handler
}

// SetResponse configures a canned response for a path.
func (m *MockBlitzr) SetResponse(path string, resp MockResponse) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		for key, value := range resp.Headers {
			w.Header().Set(key, value)
		}
		w.WriteHeader(resp.StatusCode)
		if resp.Body != "" {
			w.Write([]byte(resp.Body))
		}
	})
}

// SetPagedDataset serves a dataset at the given path, sliced by the start and
// limit query parameters the way the Blitzr API paginates. Responses are bare
// JSON arrays.
func (m *MockBlitzr) SetPagedDataset(path string, dataset []map[string]any) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		page := slicePage(dataset, r)
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		json.NewEncoder(w).Encode(page)
	})
}

// SetSearchDataset serves a dataset at the given path the way a search
// endpoint does: wrapped in a {results, total} envelope when the request has
// extras=true, as a bare array otherwise.
func (m *MockBlitzr) SetSearchDataset(path string, dataset []map[string]any) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		page := slicePage(dataset, r)
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		if r.URL.Query().Get("extras") == "true" {
			json.NewEncoder(w).Encode(map[string]any{
				"results": page,
				"total":   len(dataset),
			})
			return
		}
		json.NewEncoder(w).Encode(page)
	})
}

// slicePage cuts the dataset to the requested start/limit window.
func slicePage(dataset []map[string]any, r *http.Request) []map[string]any {
	start, _ := strconv.Atoi(r.URL.Query().Get("start"))
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 10
	}
	if start >= len(dataset) {
		return []map[string]any{}
	}
	end := start + limit
	if end > len(dataset) {
		end = len(dataset)
	}
	return dataset[start:end]
}

// MakeRecords builds a deterministic dataset of n records, each carrying its
// index under "position" and a derived name.
func MakeRecords(n int, prefix string) []map[string]any {
	records := make([]map[string]any, n)
	for i := range records {
		records[i] = map[string]any{
			"position": i,
			"name":     fmt.Sprintf("%s-%d", prefix, i),
		}
	}
	return records
}

// defaultHandler answers any unconfigured path with an empty object.
func (m *MockBlitzr) defaultHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{}`))
}

// NewNotFoundResponse creates a typical 404 error response with a JSON body.
func NewNotFoundResponse() MockResponse {
	return MockResponse{
		StatusCode: http.StatusNotFound,
		Body:       `{"error": "entity not found"}`,
	}
}

// NewServerErrorResponse creates a 500 Internal Server Error response.
func NewServerErrorResponse() MockResponse {
	return MockResponse{
		StatusCode: http.StatusInternalServerError,
		Body:       `{"error": "internal server error"}`,
	}
}
