package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every variable name.
const EnvPrefix = "DOMINO_"

// Config holds the settings shared by the CLI and the server module.
type Config struct {
	// Seed fixes the shuffle; zero picks a time-based seed.
	Seed     int64  `env:"SEED"`
	HandSize int    `env:"HAND_SIZE" envDefault:"7"`
	Brain    string `env:"BRAIN" envDefault:"first_playable"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Receipts are only signed when a secret is set.
	ReceiptSecret string        `env:"RECEIPT_SECRET"`
	ReceiptIssuer string        `env:"RECEIPT_ISSUER" envDefault:"domino"`
	ReceiptTTL    time.Duration `env:"RECEIPT_TTL" envDefault:"1h"`
}

var ErrInvalidConfig = errors.New("invalid config")

// Load reads the configuration from the process environment.
func Load() (*Config, error) {
	return parse(env.Options{Prefix: EnvPrefix})
}

// FromMap reads the configuration from an explicit environment, such as the one
// Nakama passes to runtime modules.
func FromMap(vars map[string]string) (*Config, error) {
	if vars == nil {
		vars = map[string]string{}
	}
	return parse(env.Options{Prefix: EnvPrefix, Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.HandSize < 1 || c.HandSize > 14 {
		return fmt.Errorf("%w: hand size %d not in [1,14]", ErrInvalidConfig, c.HandSize)
	}
	if c.ReceiptTTL <= 0 {
		return fmt.Errorf("%w: receipt ttl must be positive", ErrInvalidConfig)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}

// ReceiptsEnabled reports whether match outcomes should be signed.
func (c *Config) ReceiptsEnabled() bool {
	return c.ReceiptSecret != ""
}
