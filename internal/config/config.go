// Package config reads runtime settings from the environment.
package config

import (
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/questline/internal/errors"
)

// EnvPrefix is prepended to every variable name
const EnvPrefix = "QUESTLINE_"

// Config holds the settings shared by every command
type Config struct {
	// ThinkingDelay pauses before each automated combat turn
	ThinkingDelay time.Duration `env:"THINKING_DELAY" envDefault:"800ms"`
	// BreakthroughDelay is how long the breakthrough overlay holds
	BreakthroughDelay time.Duration `env:"BREAKTHROUGH_DELAY" envDefault:"3s"`

	// ContentPath replaces the embedded quest feed when set
	ContentPath string `env:"CONTENT_PATH"`
	BossChain   bool   `env:"BOSS_CHAIN" envDefault:"false"`
	Rebalance   bool   `env:"REBALANCE" envDefault:"false"`

	// RedisAddr selects the redis session store; empty keeps sessions in memory
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"168h"`

	// Seed makes dice rolls reproducible; zero uses toolkit dice
	Seed uint64 `env:"SEED" envDefault:"0"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment into a Config and validates it
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateNonNegative("thinking_delay", int64(c.ThinkingDelay), vb)
	errors.ValidateNonNegative("breakthrough_delay", int64(c.BreakthroughDelay), vb)
	errors.ValidateNonNegative("redis_db", c.RedisDB, vb)
	if c.SessionTTL <= 0 {
		vb.Field("session_ttl", "must be positive")
	}
	if _, ok := levels[strings.ToLower(c.LogLevel)]; !ok {
		vb.Fieldf("log_level", "unknown level %q", c.LogLevel)
	}

	return vb.Build()
}

var levels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// SlogLevel returns the configured log level
func (c *Config) SlogLevel() slog.Level {
	if l, ok := levels[strings.ToLower(c.LogLevel)]; ok {
		return l
	}
	return slog.LevelInfo
}
