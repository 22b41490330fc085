package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Storage backend identifiers
const (
	StorageFile   = "file"
	StorageMemory = "memory"
	StorageRedis  = "redis"
)

// Config is the full process configuration, populated from the
// environment. Defaults suit local development.
type Config struct {
	Host string `env:"STARHUNT_HOST" envDefault:""`
	Port int    `env:"STARHUNT_PORT" envDefault:"8080"`

	LogLevel string `env:"STARHUNT_LOG_LEVEL" envDefault:"info"`

	// AdminTokenHash is the bcrypt hash of the admin bearer token.
	// Empty disables the admin endpoints.
	AdminTokenHash string `env:"STARHUNT_ADMIN_TOKEN_HASH" envDefault:""`

	CatalogPath string   `env:"STARHUNT_CATALOG_PATH" envDefault:"data/ships.json"`
	BossShips   []string `env:"STARHUNT_BOSS_SHIPS" envSeparator:","`

	StorageType string `env:"STARHUNT_STORAGE_TYPE" envDefault:"file"`
	LedgerPath  string `env:"STARHUNT_LEDGER_PATH" envDefault:"data/ledger.json"`

	RedisURL       string `env:"STARHUNT_REDIS_URL" envDefault:"redis://localhost:6379"`
	RedisKeyPrefix string `env:"STARHUNT_REDIS_KEY_PREFIX" envDefault:"starhunt"`

	Channels []string `env:"STARHUNT_CHANNELS" envSeparator:","`

	SpawnPeriod   time.Duration `env:"STARHUNT_SPAWN_PERIOD" envDefault:"60s"`
	SpawnJitter   time.Duration `env:"STARHUNT_SPAWN_JITTER" envDefault:"1s"`
	ActionTimeout time.Duration `env:"STARHUNT_ACTION_TIMEOUT" envDefault:"30s"`

	StartingBalance int           `env:"STARHUNT_STARTING_BALANCE" envDefault:"30000"`
	ClaimCooldown   time.Duration `env:"STARHUNT_CLAIM_COOLDOWN" envDefault:"1h"`
}

// Load parses the configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageType {
	case StorageFile, StorageMemory, StorageRedis:
	default:
		return fmt.Errorf("unknown storage type %q", c.StorageType)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.SpawnPeriod <= 0 {
		return fmt.Errorf("spawn period must be positive")
	}
	if c.ActionTimeout <= 0 {
		return fmt.Errorf("action timeout must be positive")
	}
	return nil
}
