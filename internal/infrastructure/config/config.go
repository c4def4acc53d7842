package config

import (
	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
type Config struct {
	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	// Diagnostics endpoint. Empty disables the listener.
	MetricsAddr string `env:"METRICS_ADDR" envDefault:""`

	// Dispute ledger retention. When true, entries are retired as soon as
	// a dispute resolves; a resolved deposit can then no longer be
	// disputed again.
	LedgerEvictResolved bool `env:"LEDGER_EVICT_RESOLVED" envDefault:"false"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
