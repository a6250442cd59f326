package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/bamsammich/digest/internal/digest"
)

// Config represents the optional digest configuration file.
type Config struct {
	Defaults DefaultsConfig `toml:"defaults"`
}

// DefaultsConfig holds persistent flag defaults. Nil fields are unset.
type DefaultsConfig struct {
	Algorithm *string `toml:"algorithm"`
	Quiet     *bool   `toml:"quiet"`
	Verbose   *bool   `toml:"verbose"`
}

// Load reads the config file at path. An empty path yields a zero Config.
// A path that was given but cannot be read is an error.
func Load(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}
	if cfg.Defaults.Algorithm != nil {
		if _, err := digest.ParseAlgorithm(*cfg.Defaults.Algorithm); err != nil {
			return Config{}, fmt.Errorf("load config %s: %w", path, err)
		}
	}
	return cfg, nil
}
