package cli

import (
	"fmt"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"codeberg.org/snonux/wordly/internal/completion"
	"codeberg.org/snonux/wordly/internal/config"
	"codeberg.org/snonux/wordly/internal/logging"
	"codeberg.org/snonux/wordly/internal/ui"
	"codeberg.org/snonux/wordly/internal/vocab"
)

// Session is everything a run needs, built once from flags and config
type Session struct {
	Config    *config.Config
	Logger    *zap.Logger
	Client    *completion.Client
	Generator *vocab.Generator
}

// NewSession loads the configuration and wires the completion client
func NewSession(flags *Flags) (*Session, error) {
	cfg, err := config.Load(config.LoadOptions{EnvFile: flags.EnvFile, Viper: viper.GetViper()})
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if flags.Verbose {
		cfg.Verbose = true
	}

	logger, err := logging.New(cfg.Verbose)
	if err != nil {
		return nil, err
	}

	return NewSessionWithLogger(cfg, logger)
}

// NewSessionWithLogger wires a session for an existing configuration
func NewSessionWithLogger(cfg *config.Config, logger *zap.Logger) (*Session, error) {
	client, err := completion.NewClient(cfg, logger)
	if err != nil {
		return nil, err
	}

	if cfg.Degraded() {
		logger.Warn("No API key configured, requests will fail", zap.Error(cfg.CredentialError()))
	}
	logger.Debug("Session ready",
		zap.String("provider", cfg.Provider),
		zap.String("model", cfg.Model))

	return &Session{
		Config:    cfg,
		Logger:    logger,
		Client:    client,
		Generator: vocab.NewGenerator(client),
	}, nil
}

// Services returns the collaborators for ui.Render
func (s *Session) Services() ui.Services {
	return ui.Services{
		Generator: s.Generator,
		Provider:  s.Client.DisplayName(),
	}
}

// InitialState is the startup state, carrying the credential error if any
func (s *Session) InitialState() ui.State {
	return ui.NewState(s.Config.CredentialError())
}

// Close flushes the logger
func (s *Session) Close() {
	logging.Sync(s.Logger)
}
