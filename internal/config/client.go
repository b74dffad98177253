package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var ErrInvalidClientConfig = errors.New("invalid client configuration")

type ClientConfig struct {
	APIURL   string        `env:"NOTES_API_URL"`
	Timeout  time.Duration `env:"NOTES_API_TIMEOUT"`
	LogLevel string        `env:"NOTES_LOG_LEVEL"`
}

func clientDefaults() *ClientConfig {
	return &ClientConfig{
		APIURL:   "http://localhost:5001",
		Timeout:  10 * time.Second,
		LogLevel: "info",
	}
}

// LoadClient builds the client configuration. Non-zero fields of overrides
// (usually command-line flags) win over the environment, which wins over the
// defaults.
func LoadClient(overrides ClientConfig) (*ClientConfig, error) {
	_ = godotenv.Load()

	cfg := &ClientConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	if err := mergo.Merge(cfg, &overrides, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("error merging flag configs: %w", err)
	}
	if err := mergo.Merge(cfg, clientDefaults()); err != nil {
		return nil, fmt.Errorf("error merging configs: %w", err)
	}

	return cfg, cfg.validate()
}

func (cfg *ClientConfig) validate() error {
	raw := strings.TrimSpace(cfg.APIURL)
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidClientConfig, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: api url must include scheme and host", ErrInvalidClientConfig)
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("%w: timeout must be positive", ErrInvalidClientConfig)
	}
	cfg.APIURL = strings.TrimRight(raw, "/")
	return nil
}
