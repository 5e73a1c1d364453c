package models

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

func TestNewLister(t *testing.T) {
	lister := NewLister("test-api-key", "")

	if lister == nil {
		t.Fatal("NewLister returned nil")
	}

	if lister.apiKey != "test-api-key" {
		t.Errorf("Expected API key 'test-api-key', got '%s'", lister.apiKey)
	}

	if lister.client == nil {
		t.Error("OpenAI client not initialized")
	}
}

func TestListAvailableModels_NoAPIKey(t *testing.T) {
	lister := NewLister("", "")

	err := lister.ListAvailableModels(context.Background())
	if err == nil {
		t.Fatal("Expected error for missing API key")
	}

	if !strings.Contains(err.Error(), "TOGETHER_API_KEY") {
		t.Errorf("Expected error to mention TOGETHER_API_KEY, got: %v", err)
	}
}

func TestCategorize(t *testing.T) {
	c := Categorize([]string{
		"meta-llama/Llama-3.3-70B-Instruct-Turbo",
		"togethercomputer/m2-bert-80M-8k-retrieval-embed",
		"black-forest-labs/FLUX.1-schnell",
		"gpt-4o-mini",
		"whisper-large-v3",
	})

	if len(c.Chat) != 2 || c.Chat[0] != "gpt-4o-mini" {
		t.Errorf("Unexpected chat models: %v", c.Chat)
	}
	if len(c.Embedding) != 1 {
		t.Errorf("Unexpected embedding models: %v", c.Embedding)
	}
	if len(c.Image) != 1 {
		t.Errorf("Unexpected image models: %v", c.Image)
	}
	if len(c.Other) != 1 || c.Other[0] != "whisper-large-v3" {
		t.Errorf("Unexpected other models: %v", c.Other)
	}
}

func TestListAvailableModels_FakeServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/models" {
			t.Errorf("Unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"object":"list","data":[
			{"id":"meta-llama/Llama-3.3-70B-Instruct-Turbo","object":"model"},
			{"id":"gpt-4o-mini","object":"model"}
		]}`))
	}))
	defer server.Close()

	var out bytes.Buffer
	lister := NewLister("test-key", server.URL)
	lister.SetOutput(&out)
	lister.SetCurrent("meta-llama/Llama-3.3-70B-Instruct-Turbo")

	if err := lister.ListAvailableModels(context.Background()); err != nil {
		t.Fatalf("ListAvailableModels failed: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "meta-llama/Llama-3.3-70B-Instruct-Turbo (current)") {
		t.Errorf("Expected current model marker in output:\n%s", got)
	}
	if !strings.Contains(got, "  gpt-4o-mini\n") {
		t.Errorf("Expected gpt-4o-mini in output:\n%s", got)
	}
}

func TestListAvailableModels_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	lister := NewLister("bad-key", server.URL)
	lister.SetOutput(&bytes.Buffer{})

	if err := lister.ListAvailableModels(context.Background()); err == nil {
		t.Error("Expected error for 401 response")
	}
}

func TestListAvailableModels_Integration(t *testing.T) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("Skipping integration test: OPENAI_API_KEY not set")
	}

	lister := NewLister(apiKey, "")
	lister.SetOutput(&bytes.Buffer{})

	if err := lister.ListAvailableModels(context.Background()); err != nil {
		t.Errorf("ListAvailableModels failed: %v", err)
	}
}
