package completion

import (
	"context"
	"errors"
	"net/http"

	"github.com/sashabaranov/go-openai"

	"codeberg.org/snonux/wordly/internal/config"
)

// OpenAIProvider uses any OpenAI-compatible chat completion API. The
// OpenAI request schema has no top_k or repetition_penalty, so those are
// not sent.
type OpenAIProvider struct {
	apiKey   string
	model    string
	sampling config.Sampling
	client   *openai.Client
}

// NewOpenAIProvider creates a provider pointed at cfg.BaseURL
func NewOpenAIProvider(cfg *config.Config) *OpenAIProvider {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &OpenAIProvider{
		apiKey:   cfg.APIKey,
		model:    cfg.Model,
		sampling: cfg.Sampling,
		client:   openai.NewClientWithConfig(clientConfig),
	}
}

// Name returns the provider name
func (p *OpenAIProvider) Name() string {
	return config.ProviderOpenAI
}

// IsAvailable checks that an API key is configured
func (p *OpenAIProvider) IsAvailable() error {
	if p.apiKey == "" {
		return missingKey(p.Name())
	}
	return nil
}

// Complete sends a chat completion request
func (p *OpenAIProvider) Complete(ctx context.Context, req Request) (string, error) {
	if err := p.IsAvailable(); err != nil {
		return "", err
	}

	chatReq := openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: req.Prompt,
			},
		},
		MaxTokens:   req.MaxTokens,
		Temperature: float32(req.Temperature),
		TopP:        float32(p.sampling.TopP),
		Stop:        p.sampling.Stop,
	}

	resp, err := p.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", p.classify(err)
	}

	if len(resp.Choices) == 0 {
		return "", &Error{Provider: p.Name(), Kind: KindDecode, Err: ErrNoChoices}
	}

	return resp.Choices[0].Message.Content, nil
}

// classify maps go-openai errors onto the completion error kinds
func (p *OpenAIProvider) classify(err error) *Error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode != 0 {
		e := statusError(p.Name(), apiErr.HTTPStatusCode)
		e.Err = err
		return e
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
		e := statusError(p.Name(), reqErr.HTTPStatusCode)
		e.Err = err
		return e
	}
	return &Error{Provider: p.Name(), Kind: KindTransport, Err: err}
}
