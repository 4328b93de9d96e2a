// Copyright (c) 2026 Peter Kral.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ptkral/luxmon/status"
	"github.com/ptkral/luxmon/storage"
)

// NewStoreManager creates a store manager rooted in a temp directory that is
// cleaned up with the test.
func NewStoreManager(t *testing.T) *storage.Manager {
	t.Helper()

	m := storage.NewManager(t.TempDir())
	t.Cleanup(func() {
		if err := m.Close(); err != nil {
			t.Errorf("Failed to close store manager: %v", err)
		}
	})
	return m
}

// NewStatusCache returns an empty status cache.
func NewStatusCache(t *testing.T) *status.Cache {
	t.Helper()
	return status.NewCache()
}

// SeedReadings writes readings straight into a node's store, bypassing the
// ingest handler. Timestamps are absolute Unix seconds.
func SeedReadings(t *testing.T, m *storage.Manager, node string, readings []storage.Reading) {
	t.Helper()

	store, err := m.Open(node)
	if err != nil {
		t.Fatalf("Failed to open store for %s: %v", node, err)
	}
	if err := store.InsertBatch(context.Background(), readings); err != nil {
		t.Fatalf("Failed to seed readings for %s: %v", node, err)
	}
}

// CountReadings returns the total row count in a node's store.
func CountReadings(t *testing.T, m *storage.Manager, node string) int {
	t.Helper()

	store, ok, err := m.Lookup(node)
	if err != nil {
		t.Fatalf("Failed to look up store for %s: %v", node, err)
	}
	if !ok {
		return 0
	}
	n, err := store.Count(context.Background())
	if err != nil {
		t.Fatalf("Failed to count readings for %s: %v", node, err)
	}
	return n
}

// IngestBody builds a complete, valid /receive_data payload. Tests delete
// keys from the map to exercise the missing-field paths.
func IngestBody(node string, voltage, battery float64, timestamps, lux, sound []float64) map[string]interface{} {
	return map[string]interface{}{
		"node_name": node,
		"voltage":   voltage,
		"battery":   battery,
		"timestamp": timestamps,
		"lux":       lux,
		"sound":     sound,
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
