package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Load reads a Config from path (YAML, JSON, or TOML, inferred from the
// file extension), overlaying it on Default() so an on-disk file only
// needs to mention the fields it wants to override. Environment
// variables prefixed GNP_ take precedence over the file, following the
// same viper-based override order used for server configuration in the
// wider corpus.
func Load(path string) (Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("GNP")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("config: could not read %v: %w", path, err)
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: could not decode %v: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: invalid configuration in %v: %w", path, err)
	}

	return cfg, nil
}
