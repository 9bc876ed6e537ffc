package twelvedata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestNewSymbolLookup(t *testing.T) {
	t.Parallel()

	cfg := Config{
		APIKey:  "test-key",
		BaseURL: "https://api.test.com",
		Timeout: 10 * time.Second,
	}
	client := &http.Client{}

	lookup := NewSymbolLookup(cfg, client)

	if lookup == nil {
		t.Fatal("expected non-nil lookup")
	}
	if lookup.cfg.APIKey != cfg.APIKey {
		t.Errorf("expected API key %q, got %q", cfg.APIKey, lookup.cfg.APIKey)
	}
}

func TestSymbolLookup_LookupName_Success(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/quote" {
			t.Errorf("expected path /quote, got %s", r.URL.Path)
		}
		if r.URL.Query().Get("symbol") != "TSLA" {
			t.Errorf("expected symbol TSLA, got %s", r.URL.Query().Get("symbol"))
		}
		if r.URL.Query().Get("apikey") != "test-key" {
			t.Errorf("expected apikey test-key, got %s", r.URL.Query().Get("apikey"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"symbol": "TSLA",
			"name": "Tesla, Inc.",
			"exchange": "NASDAQ",
			"currency": "USD"
		}`))
	}))
	defer server.Close()

	cfg := Config{APIKey: "test-key", BaseURL: server.URL}
	lookup := NewSymbolLookup(cfg, server.Client())

	name, err := lookup.LookupName(context.Background(), "TSLA")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "Tesla, Inc." {
		t.Errorf("expected name %q, got %q", "Tesla, Inc.", name)
	}
}

func TestSymbolLookup_LookupName_HTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		statusCode int
	}{
		{"bad request", http.StatusBadRequest},
		{"unauthorized", http.StatusUnauthorized},
		{"not found", http.StatusNotFound},
		{"internal server error", http.StatusInternalServerError},
		{"service unavailable", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))
			defer server.Close()

			cfg := Config{APIKey: "test-key", BaseURL: server.URL}
			lookup := NewSymbolLookup(cfg, server.Client())

			_, err := lookup.LookupName(context.Background(), "TSLA")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), "twelvedata http") {
				t.Errorf("expected HTTP error message, got %v", err)
			}
		})
	}
}

func TestSymbolLookup_LookupName_APIError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{
			"code": 400,
			"message": "**symbol** not found: NOPE.",
			"status": "error"
		}`))
	}))
	defer server.Close()

	cfg := Config{APIKey: "test-key", BaseURL: server.URL}
	lookup := NewSymbolLookup(cfg, server.Client())

	_, err := lookup.LookupName(context.Background(), "NOPE")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected API error message, got %v", err)
	}
}

func TestSymbolLookup_LookupName_EmptyName(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"symbol": "TSLA"}`))
	}))
	defer server.Close()

	cfg := Config{APIKey: "test-key", BaseURL: server.URL}
	lookup := NewSymbolLookup(cfg, server.Client())

	_, err := lookup.LookupName(context.Background(), "TSLA")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "no name") {
		t.Errorf("expected empty-name error, got %v", err)
	}
}

func TestSymbolLookup_LookupName_InvalidJSON(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{invalid json`))
	}))
	defer server.Close()

	cfg := Config{APIKey: "test-key", BaseURL: server.URL}
	lookup := NewSymbolLookup(cfg, server.Client())

	_, err := lookup.LookupName(context.Background(), "TSLA")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestSymbolLookup_LookupName_TransportError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	cfg := Config{APIKey: "test-key", BaseURL: server.URL}
	lookup := NewSymbolLookup(cfg, &http.Client{Timeout: time.Second})

	_, err := lookup.LookupName(context.Background(), "TSLA")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestSymbolLookup_LookupName_ContextCancellation(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	cfg := Config{APIKey: "test-key", BaseURL: server.URL}
	lookup := NewSymbolLookup(cfg, server.Client())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := lookup.LookupName(ctx, "TSLA")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}
