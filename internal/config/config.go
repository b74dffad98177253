package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	ErrInvalidServerConfig   = errors.New("invalid server configuration")
	ErrInvalidDatabaseConfig = errors.New("invalid database configuration")
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig  `envPrefix:"DB_"`
	WebSocket WebSocketConfig `envPrefix:"WS_"`
	CORS      CORSConfig      `envPrefix:"CORS_"`
	Logging   LoggingConfig   `envPrefix:"LOG_"`
}

type ServerConfig struct {
	Port            string        `env:"PORT"`
	Host            string        `env:"HOST"`
	Env             string        `env:"ENV"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

type DatabaseConfig struct {
	// URL, when set, takes precedence over the individual connection parts.
	URL      string `env:"URL"`
	Host     string `env:"HOST"`
	Port     string `env:"PORT"`
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
	Name     string `env:"NAME"`
}

type WebSocketConfig struct {
	MaxClients int           `env:"MAX_CLIENTS"`
	WriteWait  time.Duration `env:"WRITE_WAIT"`
	PongWait   time.Duration `env:"PONG_WAIT"`
	PingPeriod time.Duration `env:"PING_PERIOD"`
}

type CORSConfig struct {
	AllowedOrigins string `env:"ALLOWED_ORIGINS"`
	AllowedMethods string `env:"ALLOWED_METHODS"`
	AllowedHeaders string `env:"ALLOWED_HEADERS"`
}

type LoggingConfig struct {
	Level string `env:"LEVEL"`
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "5001",
			Host:            "0.0.0.0",
			Env:             "development",
			ShutdownTimeout: 30 * time.Second,
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5984",
			User:     "admin",
			Password: "password",
			Name:     "notes",
		},
		WebSocket: WebSocketConfig{
			MaxClients: 100,
			WriteWait:  10 * time.Second,
			PongWait:   60 * time.Second,
			PingPeriod: 54 * time.Second,
		},
		CORS: CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PATCH,DELETE,OPTIONS",
			AllowedHeaders: "Origin,X-Requested-With,Content-Type,Accept,Authorization",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads an optional .env file, parses the environment and fills every
// unset value from the defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	if err := mergo.Merge(cfg, defaults()); err != nil {
		return nil, fmt.Errorf("error merging configs: %w", err)
	}

	return cfg, cfg.validate()
}

func (cfg *Config) validate() error {
	if cfg.Server.Port == "" {
		return fmt.Errorf("%w: empty port", ErrInvalidServerConfig)
	}
	if cfg.WebSocket.PingPeriod >= cfg.WebSocket.PongWait {
		return fmt.Errorf("%w: ping period must be shorter than pong wait", ErrInvalidServerConfig)
	}
	if cfg.Database.Name == "" {
		return fmt.Errorf("%w: empty database name", ErrInvalidDatabaseConfig)
	}
	if cfg.Database.URL != "" {
		if _, err := url.Parse(cfg.Database.URL); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDatabaseConfig, err)
		}
	}
	return nil
}

// Addr is the listen address of the HTTP server.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// ConnectionURL returns the CouchDB URL including credentials.
func (c DatabaseConfig) ConnectionURL() string {
	if c.URL != "" {
		return c.URL
	}

	u := url.URL{
		Scheme: "http",
		Host:   fmt.Sprintf("%s:%s", c.Host, c.Port),
	}
	if c.User != "" {
		u.User = url.UserPassword(c.User, c.Password)
	}
	return u.String()
}

// RedactedURL is ConnectionURL without the password, safe for logs.
func (c DatabaseConfig) RedactedURL() string {
	u, err := url.Parse(c.ConnectionURL())
	if err != nil {
		return ""
	}
	return u.Redacted()
}
