package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingAPIKey is reported when no API key could be resolved
var ErrMissingAPIKey = errors.New("API Key is missing. Please set the TOGETHER_API_KEY in the .env file.")

// Environment variables checked for the API key, in order
var apiKeyEnvVars = []string{"TOGETHER_API_KEY", "WORDLY_API_KEY"}

const (
	ProviderTogether = "together"
	ProviderOpenAI   = "openai"
	ProviderGemini   = "gemini"

	DefaultEndpoint = "https://api.together.xyz/v1/chat/completions"
	DefaultBaseURL  = "https://api.together.xyz/v1"
	DefaultModel    = "meta-llama/Llama-3.3-70B-Instruct-Turbo"
)

// Sampling holds the generation parameters that are fixed for every request
type Sampling struct {
	TopP              float64
	TopK              int
	RepetitionPenalty float64
	Stop              []string
}

// Breaker configures the circuit breaker in front of the provider
type Breaker struct {
	MaxFailures uint32        // consecutive failures before the breaker opens, 0 disables it
	OpenTimeout time.Duration // how long the breaker stays open
}

// Config is built once at startup and handed to the completion client
type Config struct {
	Provider string
	Endpoint string // full chat completion URL, used by the together provider
	BaseURL  string // API base URL, used by the openai provider and the model lister
	Model    string
	APIKey   string
	Timeout  time.Duration // 0 keeps the HTTP client default

	Sampling Sampling
	Breaker  Breaker

	Verbose bool
}

// Default returns the configuration used when nothing is overridden
func Default() *Config {
	return &Config{
		Provider: ProviderTogether,
		Endpoint: DefaultEndpoint,
		BaseURL:  DefaultBaseURL,
		Model:    DefaultModel,
		Sampling: Sampling{
			TopP:              0.7,
			TopK:              50,
			RepetitionPenalty: 1.0,
			Stop:              []string{"<|eot_id|>", "<|eom_id|>"},
		},
		Breaker: Breaker{
			OpenTimeout: 30 * time.Second,
		},
	}
}

// LoadEnvFile loads KEY=VALUE pairs from a .env file into the process
// environment. A missing file is not an error.
func LoadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if os.IsNotExist(err) || errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return nil
}

// LoadOptions controls where Load looks for settings
type LoadOptions struct {
	EnvFile string       // .env file, missing is fine
	Viper   *viper.Viper // already pointed at the config file, may be nil
}

// Load reads the .env file and builds the Config. A missing API key is not
// an error here; it shows up as Degraded.
func Load(opts LoadOptions) (*Config, error) {
	if err := LoadEnvFile(opts.EnvFile); err != nil {
		return nil, err
	}

	v := opts.Viper
	if v == nil {
		v = viper.New()
	}

	cfg := FromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromViper builds a Config from viper, starting from Default
func FromViper(v *viper.Viper) *Config {
	cfg := Default()

	if s := v.GetString("completion.provider"); s != "" {
		cfg.Provider = strings.ToLower(s)
	}
	if s := v.GetString("completion.endpoint"); s != "" {
		cfg.Endpoint = s
	}
	if s := v.GetString("completion.base_url"); s != "" {
		cfg.BaseURL = s
	}
	if s := v.GetString("completion.model"); s != "" {
		cfg.Model = s
	}
	if v.IsSet("completion.timeout") {
		cfg.Timeout = v.GetDuration("completion.timeout")
	}

	if v.IsSet("sampling.top_p") {
		cfg.Sampling.TopP = v.GetFloat64("sampling.top_p")
	}
	if v.IsSet("sampling.top_k") {
		cfg.Sampling.TopK = v.GetInt("sampling.top_k")
	}
	if v.IsSet("sampling.repetition_penalty") {
		cfg.Sampling.RepetitionPenalty = v.GetFloat64("sampling.repetition_penalty")
	}
	if stop := v.GetStringSlice("sampling.stop"); len(stop) > 0 {
		cfg.Sampling.Stop = stop
	}

	if v.IsSet("breaker.max_failures") {
		cfg.Breaker.MaxFailures = v.GetUint32("breaker.max_failures")
	}
	if v.IsSet("breaker.open_timeout") {
		cfg.Breaker.OpenTimeout = v.GetDuration("breaker.open_timeout")
	}

	cfg.Verbose = v.GetBool("log.verbose")
	cfg.APIKey = ResolveAPIKey(v)

	return cfg
}

// ResolveAPIKey looks the key up in the environment first, then in the
// config file
func ResolveAPIKey(v *viper.Viper) string {
	for _, name := range apiKeyEnvVars {
		if key := strings.TrimSpace(os.Getenv(name)); key != "" {
			return key
		}
	}
	if v == nil {
		return ""
	}
	return strings.TrimSpace(v.GetString("completion.api_key"))
}

// Degraded reports whether the application runs without credentials
func (c *Config) Degraded() bool {
	return strings.TrimSpace(c.APIKey) == ""
}

// CredentialError returns ErrMissingAPIKey in degraded mode, nil otherwise
func (c *Config) CredentialError() error {
	if c.Degraded() {
		return ErrMissingAPIKey
	}
	return nil
}

// Validate checks the fields that would make every request fail in a
// confusing way
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderTogether:
		if c.Endpoint == "" {
			return fmt.Errorf("completion endpoint is required for provider %q", c.Provider)
		}
	case ProviderOpenAI, ProviderGemini:
	default:
		return fmt.Errorf("unknown completion provider: %s", c.Provider)
	}
	if c.Model == "" {
		return fmt.Errorf("completion model is required")
	}
	return nil
}
