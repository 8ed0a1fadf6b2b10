package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Env      string `env:"APP_ENV" envDefault:"dev"`
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8000"`

	// CORSAllow is the list of allowed origins. The reference frontend runs
	// on a separate dev server, so the default is wide open.
	CORSAllow []string `env:"CORS_ALLOW" envSeparator:"," envDefault:"*"`

	// WriteTimeout bounds a single outbound frame write per session.
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"5s"`

	// PingInterval is the heartbeat period for each live session.
	PingInterval time.Duration `env:"PING_INTERVAL" envDefault:"20s"`

	// ReadLimit caps the size of a single inbound frame in bytes.
	ReadLimit int64 `env:"READ_LIMIT" envDefault:"32768"`
}

// LoadConfig parses the server configuration from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}
