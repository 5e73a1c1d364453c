package completion

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/wordly/internal/config"
	"codeberg.org/snonux/wordly/internal/testutil"
)

func geminiConfig(baseURL string) *config.Config {
	cfg := config.Default()
	cfg.Provider = config.ProviderGemini
	cfg.APIKey = "test-key"
	cfg.BaseURL = baseURL
	return cfg
}

func TestNewGeminiProvider_Defaults(t *testing.T) {
	provider := NewGeminiProvider(config.Default())

	assert.Equal(t, DefaultGeminiModel, provider.model)
	assert.Empty(t, provider.baseURL, "Together base URL is not passed to Gemini")

	cfg := geminiConfig("http://localhost:9999")
	cfg.Model = "gemini-1.5-pro"
	provider = NewGeminiProvider(cfg)
	assert.Equal(t, "gemini-1.5-pro", provider.model)
	assert.Equal(t, "http://localhost:9999", provider.baseURL)
}

func TestGeminiProvider_Complete(t *testing.T) {
	server := testutil.NewRawServer(t, http.StatusOK,
		`{"candidates":[{"content":{"role":"model","parts":[{"text":"Lucid\nA lucid explanation."}]}}]}`)

	provider := NewGeminiProvider(geminiConfig(server.URL))
	text, err := provider.Complete(context.Background(), NewRequest("word").WithMaxTokens(50))
	require.NoError(t, err)
	assert.Equal(t, "Lucid\nA lucid explanation.", text)

	requests := server.Requests()
	require.Len(t, requests, 1)
	assert.Contains(t, requests[0].Path, DefaultGeminiModel+":generateContent")

	genConfig, ok := requests[0].Body["generationConfig"].(map[string]interface{})
	require.True(t, ok, "request carries a generationConfig")
	assert.Equal(t, float64(50), genConfig["maxOutputTokens"])
	assert.Equal(t, []interface{}{"<|eot_id|>", "<|eom_id|>"}, genConfig["stopSequences"])
}

func TestGeminiProvider_StatusError(t *testing.T) {
	server := testutil.NewRawServer(t, http.StatusInternalServerError,
		`{"error":{"code":500,"message":"boom","status":"INTERNAL"}}`)

	provider := NewGeminiProvider(geminiConfig(server.URL))
	_, err := provider.Complete(context.Background(), NewRequest("word"))

	var cerr *Error
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, KindStatus, cerr.Kind)
	assert.Equal(t, http.StatusInternalServerError, cerr.StatusCode)
	assert.Equal(t, "API call failed with status code 500", cerr.Error())
}

func TestGeminiProvider_NoCandidates(t *testing.T) {
	server := testutil.NewRawServer(t, http.StatusOK, `{"candidates":[]}`)

	provider := NewGeminiProvider(geminiConfig(server.URL))
	_, err := provider.Complete(context.Background(), NewRequest("word"))

	var cerr *Error
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, KindDecode, cerr.Kind)
	assert.True(t, errors.Is(err, ErrNoChoices))
}

func TestGeminiProvider_MissingKey(t *testing.T) {
	server := testutil.NewRawServer(t, http.StatusOK, `{}`)

	cfg := geminiConfig(server.URL)
	cfg.APIKey = ""
	_, err := NewGeminiProvider(cfg).Complete(context.Background(), NewRequest("word"))

	var cerr *Error
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, KindMissingKey, cerr.Kind)
	assert.Empty(t, server.Requests())
}
