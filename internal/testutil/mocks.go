package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// RecordedRequest is one request seen by a CompletionServer
type RecordedRequest struct {
	Path          string
	Authorization string
	Body          map[string]interface{}
}

// CompletionServer is a fake chat completion endpoint
type CompletionServer struct {
	*httptest.Server

	mu       sync.Mutex
	requests []RecordedRequest
}

// NewCompletionServer answers every request with one choice holding content
func NewCompletionServer(t *testing.T, content string) *CompletionServer {
	t.Helper()

	body, err := json.Marshal(map[string]interface{}{
		"id":     "test",
		"object": "chat.completion",
		"choices": []map[string]interface{}{
			{"index": 0, "message": map[string]string{"role": "assistant", "content": content}},
		},
	})
	if err != nil {
		t.Fatalf("Failed to encode completion: %v", err)
	}

	return newServer(t, http.StatusOK, body)
}

// NewStatusServer answers every request with status and an empty body
func NewStatusServer(t *testing.T, status int) *CompletionServer {
	t.Helper()
	return newServer(t, status, nil)
}

// NewRawServer answers every request with status and a raw body
func NewRawServer(t *testing.T, status int, body string) *CompletionServer {
	t.Helper()
	return newServer(t, status, []byte(body))
}

func newServer(t *testing.T, status int, body []byte) *CompletionServer {
	s := &CompletionServer{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.record(r)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if body != nil {
			w.Write(body)
		}
	}))
	t.Cleanup(s.Close)
	return s
}

func (s *CompletionServer) record(r *http.Request) {
	rec := RecordedRequest{Path: r.URL.Path, Authorization: r.Header.Get("Authorization")}
	if data, err := io.ReadAll(r.Body); err == nil && len(data) > 0 {
		json.Unmarshal(data, &rec.Body)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, rec)
}

// Requests returns a copy of the requests seen so far
func (s *CompletionServer) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]RecordedRequest(nil), s.requests...)
}
