package store

import (
	"time"

	"github.com/dmitrymomot/storekit/pkg/config"
)

// Config holds tunables that are usually supplied by the environment.
type Config struct {
	// Name identifies the store in logs.
	Name string `env:"NAME" envDefault:"store"`

	// ActionRate caps processed actions per second. Zero disables limiting.
	ActionRate float64 `env:"ACTION_RATE" envDefault:"0"`

	// ActionBurst is the token bucket size used with ActionRate.
	ActionBurst int `env:"ACTION_BURST" envDefault:"1"`

	// MaxReactions caps reaction sequences drained concurrently.
	// When reached, the action leg waits for a free slot. Zero means unlimited.
	MaxReactions int `env:"MAX_REACTIONS" envDefault:"0"`

	// DrainTimeout bounds how long Close waits for the pipeline to stop.
	DrainTimeout time.Duration `env:"DRAIN_TIMEOUT" envDefault:"5s"`
}

// DefaultConfig returns the configuration used when none is supplied.
func DefaultConfig() Config {
	return Config{
		Name:         "store",
		ActionBurst:  1,
		DrainTimeout: 5 * time.Second,
	}
}

// ConfigFromEnv loads a Config from variables starting with prefix,
// e.g. prefix "COUNTER_" reads COUNTER_NAME and COUNTER_ACTION_RATE.
func ConfigFromEnv(prefix string, opts ...config.Option) (Config, error) {
	var cfg Config
	opts = append([]config.Option{config.WithPrefix(prefix)}, opts...)
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, err
	}
	return cfg.normalize(), nil
}

func (c Config) normalize() Config {
	if c.Name == "" {
		c.Name = "store"
	}
	if c.ActionRate < 0 {
		c.ActionRate = 0
	}
	if c.ActionBurst < 1 {
		c.ActionBurst = 1
	}
	if c.MaxReactions < 0 {
		c.MaxReactions = 0
	}
	if c.DrainTimeout <= 0 {
		c.DrainTimeout = 5 * time.Second
	}
	return c
}
