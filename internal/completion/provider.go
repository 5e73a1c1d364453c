package completion

import (
	"context"
	"fmt"

	"codeberg.org/snonux/wordly/internal/config"
)

// Provider defines the interface for chat completion backends
type Provider interface {
	// Complete sends one request and returns the untrimmed first choice
	Complete(ctx context.Context, req Request) (string, error)

	// Name returns the provider name
	Name() string

	// IsAvailable checks if the provider is properly configured
	IsAvailable() error
}

// NewProvider creates the provider selected in the configuration
func NewProvider(cfg *config.Config) (Provider, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	switch cfg.Provider {
	case config.ProviderTogether, "":
		return NewTogetherProvider(cfg), nil
	case config.ProviderOpenAI:
		return NewOpenAIProvider(cfg), nil
	case config.ProviderGemini:
		return NewGeminiProvider(cfg), nil
	default:
		return nil, fmt.Errorf("unknown completion provider: %s", cfg.Provider)
	}
}

func missingKey(provider string) *Error {
	return &Error{Provider: provider, Kind: KindMissingKey, Err: config.ErrMissingAPIKey}
}

// DisplayName returns the user-facing name of a provider, e.g. "Together API"
func DisplayName(provider string) string {
	switch provider {
	case config.ProviderTogether, "":
		return "Together API"
	case config.ProviderOpenAI:
		return "OpenAI API"
	case config.ProviderGemini:
		return "Gemini API"
	default:
		return provider
	}
}
