// Package config resolves runtime settings for status-villain: code defaults
// first, then an optional YAML config file, then environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds runtime settings.
//
// All paths default to locations under ~/.status_villain. KDF settings are
// fixed in passwordx and deliberately not configurable.
type Config struct {
	ProfilesDir     string `yaml:"profiles_dir" env:"STATUS_VILLAIN_PROFILES_DIR"`
	CredentialsFile string `yaml:"credentials_file" env:"STATUS_VILLAIN_CREDENTIALS_FILE"`
	DatabaseFile    string `yaml:"database_file" env:"STATUS_VILLAIN_DATABASE_FILE"`
}

// LoadDefaults populates c with the standard per-user locations.
func (c *Config) LoadDefaults() {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	dir := filepath.Join(home, ".status_villain")
	c.ProfilesDir = dir
	c.CredentialsFile = filepath.Join(dir, "credentials.yaml")
	c.DatabaseFile = filepath.Join(dir, "status_villain.db")
}

// Load constructs a Config: defaults, then the YAML config file if one
// exists (STATUS_VILLAIN_CONFIG or <profiles dir>/config.yaml), then
// environment variables. Later sources take precedence.
func Load() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	path := os.Getenv("STATUS_VILLAIN_CONFIG")
	if path == "" {
		path = filepath.Join(cfg.ProfilesDir, "config.yaml")
	}

	if _, err := os.Stat(path); err == nil {
		// ReadConfig overlays the file and then the environment.
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("cannot read config %s: %w", path, err)
		}
		return cfg, nil
	}

	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("cannot read config from environment: %w", err)
	}
	return cfg, nil
}
