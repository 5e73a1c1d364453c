package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"codeberg.org/snonux/wordly/internal/config"
)

// TogetherProvider talks to the Together chat completion endpoint with the
// full sampling parameter set (top_k and repetition_penalty included)
type TogetherProvider struct {
	apiKey     string
	endpoint   string
	model      string
	sampling   config.Sampling
	httpClient *http.Client
}

type togetherMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// togetherRequest is the JSON body sent to the endpoint
type togetherRequest struct {
	Model             string            `json:"model"`
	Messages          []togetherMessage `json:"messages"`
	MaxTokens         int               `json:"max_tokens"`
	Temperature       float64           `json:"temperature"`
	TopP              float64           `json:"top_p"`
	TopK              int               `json:"top_k"`
	RepetitionPenalty float64           `json:"repetition_penalty"`
	Stop              []string          `json:"stop"`
}

// togetherResponse holds the part of the response we read
type togetherResponse struct {
	Choices []struct {
		Message *struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// NewTogetherProvider creates a Together provider
func NewTogetherProvider(cfg *config.Config) *TogetherProvider {
	return &TogetherProvider{
		apiKey:     cfg.APIKey,
		endpoint:   cfg.Endpoint,
		model:      cfg.Model,
		sampling:   cfg.Sampling,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

// Name returns the provider name
func (p *TogetherProvider) Name() string {
	return config.ProviderTogether
}

// IsAvailable checks that an API key is configured
func (p *TogetherProvider) IsAvailable() error {
	if p.apiKey == "" {
		return missingKey(p.Name())
	}
	return nil
}

// Complete posts the request and returns the first choice's content
func (p *TogetherProvider) Complete(ctx context.Context, req Request) (string, error) {
	if err := p.IsAvailable(); err != nil {
		return "", err
	}

	body, err := json.Marshal(p.buildRequest(req))
	if err != nil {
		return "", &Error{Provider: p.Name(), Kind: KindDecode, Err: fmt.Errorf("failed to encode request: %w", err)}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", &Error{Provider: p.Name(), Kind: KindTransport, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return "", &Error{Provider: p.Name(), Kind: KindTransport, Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain so the connection can be reused
		io.Copy(io.Discard, resp.Body)
		return "", statusError(p.Name(), resp.StatusCode)
	}

	var decoded togetherResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", &Error{Provider: p.Name(), Kind: KindDecode, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	if len(decoded.Choices) == 0 {
		return "", &Error{Provider: p.Name(), Kind: KindDecode, Err: ErrNoChoices}
	}
	first := decoded.Choices[0]
	if first.Message == nil || first.Message.Content == nil {
		return "", &Error{Provider: p.Name(), Kind: KindDecode, Err: fmt.Errorf("first choice has no message content")}
	}

	return *first.Message.Content, nil
}

func (p *TogetherProvider) buildRequest(req Request) togetherRequest {
	return togetherRequest{
		Model:             p.model,
		Messages:          []togetherMessage{{Role: "user", Content: req.Prompt}},
		MaxTokens:         req.MaxTokens,
		Temperature:       req.Temperature,
		TopP:              p.sampling.TopP,
		TopK:              p.sampling.TopK,
		RepetitionPenalty: p.sampling.RepetitionPenalty,
		Stop:              p.sampling.Stop,
	}
}
