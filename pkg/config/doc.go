// Package config loads configuration structs from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for tag-based parsing and
// github.com/joho/godotenv for .env files:
//
//	type Settings struct {
//		Name       string  `env:"NAME" envDefault:"store"`
//		ActionRate float64 `env:"ACTION_RATE"`
//	}
//
//	var s Settings
//	config.MustLoad(&s, config.WithPrefix("STORE_"))
//
// Options select a variable prefix, explicit .env files, or a fixed variable
// map (handy in tests). Parsing errors wrap ErrParsingConfig; file errors wrap
// ErrEnvFile.
package config
