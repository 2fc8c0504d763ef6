package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Load resolves a Config starting from Defaults() and layering an
// optional TOML file on top. An empty path, or a path that does not
// exist, is not an error — build/match simply run on defaults (and
// whatever preset/flags the caller applies next).
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return cfg, nil
}
