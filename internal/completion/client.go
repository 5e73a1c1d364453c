package completion

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"codeberg.org/snonux/wordly/internal/config"
)

// Client is the boundary between the generators and a completion provider.
// Every call produces a Result; provider errors and panics never escape.
type Client struct {
	provider Provider
	breaker  *gobreaker.CircuitBreaker
	logger   *zap.Logger
}

// NewClient creates a client for the provider selected in cfg
func NewClient(cfg *config.Config, logger *zap.Logger) (*Client, error) {
	provider, err := NewProvider(cfg)
	if err != nil {
		return nil, err
	}
	return NewClientWithProvider(provider, cfg.Breaker, logger), nil
}

// NewClientWithProvider wraps an existing provider
func NewClientWithProvider(provider Provider, breaker config.Breaker, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Client{
		provider: provider,
		logger:   logger.With(zap.String("provider", provider.Name())),
	}

	if breaker.MaxFailures > 0 {
		c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        provider.Name(),
			MaxRequests: 1,
			Timeout:     breaker.OpenTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= breaker.MaxFailures
			},
			// A missing key or an abandoned request is not an outage
			IsSuccessful: func(err error) bool {
				var cerr *Error
				if errors.As(err, &cerr) && cerr.Kind == KindMissingKey {
					return true
				}
				if errors.Is(err, context.Canceled) {
					return true
				}
				return err == nil
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				c.logger.Warn("Circuit breaker state changed",
					zap.String("from", from.String()),
					zap.String("to", to.String()))
			},
		})
	}

	return c
}

// ProviderName returns the name of the wrapped provider
func (c *Client) ProviderName() string {
	return c.provider.Name()
}

// DisplayName returns the user-facing name of the wrapped provider
func (c *Client) DisplayName() string {
	return DisplayName(c.provider.Name())
}

// Complete issues one completion and returns its outcome. Unset
// parameters fall back to DefaultMaxTokens and DefaultTemperature.
func (c *Client) Complete(ctx context.Context, req Request) (result Result) {
	req = req.normalized()

	defer func() {
		if r := recover(); r != nil {
			err := &Error{Provider: c.provider.Name(), Kind: KindDecode, Err: fmt.Errorf("provider panic: %v", r)}
			c.logFailure(err)
			result = Failure(err)
		}
	}()

	text, err := c.call(ctx, req)
	if err != nil {
		cerr := asError(c.provider.Name(), err)
		c.logFailure(cerr)
		return Failure(cerr)
	}

	c.logger.Debug("Completion succeeded",
		zap.Int("max_tokens", req.MaxTokens),
		zap.Int("chars", len(text)))

	return Success(strings.TrimSpace(text))
}

func (c *Client) call(ctx context.Context, req Request) (string, error) {
	if c.breaker == nil {
		return c.provider.Complete(ctx, req)
	}

	out, err := c.breaker.Execute(func() (interface{}, error) {
		return c.provider.Complete(ctx, req)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return "", &Error{Provider: c.provider.Name(), Kind: KindUnavailable, Err: fmt.Errorf("service temporarily unavailable: %w", err)}
	}
	if err != nil {
		return "", err
	}
	text, _ := out.(string)
	return text, nil
}

func (c *Client) logFailure(err *Error) {
	fields := []zap.Field{zap.Stringer("kind", err.Kind), zap.Error(err)}
	if err.StatusCode != 0 {
		fields = append(fields, zap.Int("status", err.StatusCode))
	}
	c.logger.Warn("Completion failed", fields...)
}
