package config

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Option configures a single Load call.
type Option func(*options)

type options struct {
	prefix      string
	files       []string
	environment map[string]string
}

// WithPrefix restricts parsing to variables starting with prefix,
// e.g. "COUNTER_" turns `env:"NAME"` into COUNTER_NAME.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithEnvFiles loads the given .env files into the process environment before parsing.
// Variables already set in the environment are not overridden.
func WithEnvFiles(files ...string) Option {
	return func(o *options) {
		o.files = append(o.files, files...)
	}
}

// WithEnvironment parses from the given map instead of the process environment.
func WithEnvironment(vars map[string]string) Option {
	return func(o *options) {
		o.environment = vars
	}
}

// Load parses environment variables into v according to its `env` struct tags.
//
// Unless WithEnvFiles or WithEnvironment is given, the default .env file in the
// working directory is loaded once per process if it exists.
//
// Example:
//
//	type Settings struct {
//		Name         string        `env:"NAME" envDefault:"counter"`
//		DrainTimeout time.Duration `env:"DRAIN_TIMEOUT" envDefault:"5s"`
//	}
//
//	var s Settings
//	if err := config.Load(&s, config.WithPrefix("COUNTER_")); err != nil {
//		return err
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	switch {
	case len(o.files) > 0:
		if err := godotenv.Load(o.files...); err != nil {
			return errors.Join(ErrEnvFile, err)
		}
	case o.environment == nil:
		defaultEnvLoaded.Do(func() {
			// The default .env file is optional.
			_ = godotenv.Load()
		})
	}

	if err := env.ParseWithOptions(v, env.Options{
		Prefix:      o.prefix,
		Environment: o.environment,
	}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic("failed to load required configuration: " + err.Error())
	}
}
