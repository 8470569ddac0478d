package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
	}{
		{
			name:        "valid config",
			config:      DefaultConfig("my-api-key"),
			expectError: false,
		},
		{
			name:        "missing api key",
			config:      Config{},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.config)

			if tt.expectError {
				if err == nil {
					t.Fatal("Expected error but got nil")
				}
				if !IsConfiguration(err) {
					t.Errorf("Error class = %v, want configuration", err)
				}
				if !errors.Is(err, ErrMissingAPIKey) {
					t.Errorf("Expected ErrMissingAPIKey, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if c == nil {
				t.Fatal("Client is nil")
			}
		})
	}
}

func TestNew_NoNetworkCall(t *testing.T) {
	called := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer server.Close()

	_, err := New(Config{BaseURL: server.URL})
	if err == nil {
		t.Fatal("Expected configuration error")
	}
	if called {
		t.Error("New must not attempt any network call")
	}
}

func TestExecute_APIKeyAppended(t *testing.T) {
	var gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("key")
		w.Write([]byte(`{"name": "Eminem"}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	if _, err := c.Execute(context.Background(), "artist/", NewParams().Set("slug", "eminem")); err != nil {
		t.Fatalf("Execute() failed: %v", err)
	}
	if gotKey != "test-key" {
		t.Errorf("key = %q, want %q", gotKey, "test-key")
	}
}

func TestExecute_ErrorClassification(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		wantClass  ErrorClass
	}{
		{"not found", http.StatusNotFound, `{"error": "unknown artist"}`, ErrorClassClient},
		{"bad request", http.StatusBadRequest, `{"error": "bad parameters"}`, ErrorClassClient},
		{"internal error", http.StatusInternalServerError, ``, ErrorClassServer},
		{"bad gateway", http.StatusBadGateway, ``, ErrorClassServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c := newTestClient(t, server.URL)
			_, err := c.Execute(context.Background(), "artist/", nil)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}

			var apiErr *Error
			if !errors.As(err, &apiErr) {
				t.Fatalf("Expected *Error, got %T", err)
			}
			if apiErr.Class != tt.wantClass {
				t.Errorf("Class = %q, want %q", apiErr.Class, tt.wantClass)
			}
			if apiErr.StatusCode != tt.statusCode {
				t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, tt.statusCode)
			}
			if tt.wantClass == ErrorClassClient && string(apiErr.Body) != tt.body {
				t.Errorf("Body = %q, want the error body passed through unmodified", apiErr.Body)
			}
			// Server errors carry the status code in the message.
			if tt.wantClass == ErrorClassServer && !strings.Contains(apiErr.Error(), "HTTP code") {
				t.Errorf("Error() = %q, want HTTP code in message", apiErr.Error())
			}
		})
	}
}

func TestExecute_ClientVsServerDistinguishable(t *testing.T) {
	status := http.StatusNotFound
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(`{"error": "not found"}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)

	_, err404 := c.Execute(context.Background(), "artist/", NewParams().Set("slug", "nobody"))
	status = http.StatusInternalServerError
	_, err500 := c.Execute(context.Background(), "artist/", NewParams().Set("slug", "nobody"))

	if !IsClient(err404) || IsServer(err404) {
		t.Errorf("404 should classify as client error, got %v", err404)
	}
	if !IsServer(err500) || IsClient(err500) {
		t.Errorf("500 should classify as server error, got %v", err500)
	}
}

func TestExecute_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	c := newTestClient(t, server.URL)
	_, err := c.Execute(context.Background(), "artist/", nil)
	if err == nil {
		t.Fatal("Expected network error, got nil")
	}
	if !IsNetwork(err) {
		t.Errorf("Expected network class, got %v", err)
	}
}

func TestGetObject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"name": "Eminem", "real_name": "Marshall Bruce Mathers III"}`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	artist, err := c.GetObject(context.Background(), "artist/", NewParams().Set("slug", "eminem"))
	if err != nil {
		t.Fatalf("GetObject() failed: %v", err)
	}
	if artist["real_name"] != "Marshall Bruce Mathers III" {
		t.Errorf("real_name = %v, want Marshall Bruce Mathers III", artist["real_name"])
	}
}

func TestGetList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"name": "a"}, {"name": "b"}]`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	aliases, err := c.GetList(context.Background(), "artist/aliases/", nil)
	if err != nil {
		t.Fatalf("GetList() failed: %v", err)
	}
	if len(aliases) != 2 {
		t.Errorf("len = %d, want 2", len(aliases))
	}
}

func TestExecute_Idempotent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"position": 0}, {"position": 1}]`))
	}))
	defer server.Close()

	c := newTestClient(t, server.URL)
	params := NewParams().SetInt("start", 0).SetInt("limit", 2)

	first, err := c.Execute(context.Background(), "tag/artists/", params)
	if err != nil {
		t.Fatalf("First request failed: %v", err)
	}
	second, err := c.Execute(context.Background(), "tag/artists/", params)
	if err != nil {
		t.Fatalf("Second request failed: %v", err)
	}
	if string(first) != string(second) {
		t.Errorf("Same page requested twice returned different results:\n%s\n%s", first, second)
	}
}

// newTestClient builds a client pointed at a test server.
func newTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	c, err := New(Config{APIKey: "test-key", BaseURL: baseURL})
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	return c
}
