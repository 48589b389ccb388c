package n8n

import (
	"errors"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the settings a [Client] is constructed from. It is captured
// once by [NewClient] and never mutated afterwards.
type Config struct {
	// BaseURL is the root of the n8n REST API, including the version
	// prefix. Example: "https://n8n.example.com/api/v1".
	BaseURL string `envconfig:"N8N_API_URL"`

	// APIKey is sent as the X-N8N-API-KEY header on every request.
	APIKey string `envconfig:"N8N_API_KEY"`

	// Debug installs request/response tracing hooks on the transport.
	// Do not enable in production: dumps include headers and payloads.
	Debug bool `envconfig:"N8N_DEBUG"`
}

// FromEnv loads a Config from the N8N_API_URL, N8N_API_KEY and N8N_DEBUG
// environment variables.
func FromEnv() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg Config) validate() error {
	if cfg.BaseURL == "" {
		return errors.New("n8n: base URL must not be empty")
	}
	if cfg.APIKey == "" {
		return errors.New("n8n: API key must not be empty")
	}
	return nil
}
