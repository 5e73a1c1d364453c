package completion

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"google.golang.org/genai"

	"codeberg.org/snonux/wordly/internal/config"
)

// DefaultGeminiModel is used when no Gemini model is configured
const DefaultGeminiModel = "gemini-2.0-flash"

// GeminiProvider generates content through the Google Gemini API
type GeminiProvider struct {
	apiKey   string
	model    string
	baseURL  string
	sampling config.Sampling

	once      sync.Once
	client    *genai.Client
	clientErr error
}

// NewGeminiProvider creates a Gemini provider. The client is created on
// first use so a missing key only surfaces when a request is made. The
// Together defaults for model and base URL are replaced by Gemini's own.
func NewGeminiProvider(cfg *config.Config) *GeminiProvider {
	model := cfg.Model
	if model == "" || model == config.DefaultModel {
		model = DefaultGeminiModel
	}
	baseURL := cfg.BaseURL
	if baseURL == config.DefaultBaseURL {
		baseURL = ""
	}
	return &GeminiProvider{
		apiKey:   cfg.APIKey,
		model:    model,
		baseURL:  baseURL,
		sampling: cfg.Sampling,
	}
}

// Name returns the provider name
func (p *GeminiProvider) Name() string {
	return config.ProviderGemini
}

// IsAvailable checks that an API key is configured
func (p *GeminiProvider) IsAvailable() error {
	if p.apiKey == "" {
		return missingKey(p.Name())
	}
	return nil
}

func (p *GeminiProvider) getClient(ctx context.Context) (*genai.Client, error) {
	p.once.Do(func() {
		p.client, p.clientErr = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:      p.apiKey,
			Backend:     genai.BackendGeminiAPI,
			HTTPOptions: genai.HTTPOptions{BaseURL: p.baseURL},
		})
	})
	return p.client, p.clientErr
}

// Complete generates content for a single user prompt
func (p *GeminiProvider) Complete(ctx context.Context, req Request) (string, error) {
	if err := p.IsAvailable(); err != nil {
		return "", err
	}

	client, err := p.getClient(ctx)
	if err != nil {
		return "", &Error{Provider: p.Name(), Kind: KindTransport, Err: fmt.Errorf("failed to create GenAI client: %w", err)}
	}

	genConfig := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(req.Temperature)),
		TopP:            genai.Ptr(float32(p.sampling.TopP)),
		TopK:            genai.Ptr(float32(p.sampling.TopK)),
		MaxOutputTokens: int32(req.MaxTokens),
		StopSequences:   p.sampling.Stop,
	}

	contents := []*genai.Content{
		genai.NewContentFromText(req.Prompt, genai.RoleUser),
	}

	resp, err := client.Models.GenerateContent(ctx, p.model, contents, genConfig)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) && apiErr.Code != 0 {
			e := statusError(p.Name(), apiErr.Code)
			e.Err = err
			return "", e
		}
		return "", &Error{Provider: p.Name(), Kind: KindTransport, Err: err}
	}

	if len(resp.Candidates) == 0 {
		return "", &Error{Provider: p.Name(), Kind: KindDecode, Err: ErrNoChoices}
	}

	return resp.Text(), nil
}
