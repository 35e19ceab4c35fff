package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds conversion and download settings.
type Config struct {
	OutputDir      string `yaml:"output_dir"      mapstructure:"output_dir"`
	Database       string `yaml:"database"        mapstructure:"database"`
	UserAgent      string `yaml:"user_agent"      mapstructure:"user_agent"`
	TimeoutSeconds int    `yaml:"timeout_seconds" mapstructure:"timeout_seconds"`
	RateLimitMs    int    `yaml:"rate_limit_ms"   mapstructure:"rate_limit_ms"`
	Overwrite      bool   `yaml:"overwrite"       mapstructure:"overwrite"`
	Thumbnails     bool   `yaml:"thumbnails"      mapstructure:"thumbnails"`
}

// DefaultPath returns the default config file path (~/.wpstatic.yaml).
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".wpstatic.yaml"
	}
	return filepath.Join(home, ".wpstatic.yaml")
}

// Load reads config from the YAML file and applies env var overrides.
// configPath may be empty to use the default path; a missing file just
// means defaults plus env vars.
func Load(configPath string) (Config, error) {
	v := viper.New()

	if configPath == "" {
		configPath = DefaultPath()
	}

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	v.SetDefault("output_dir", "site")
	v.SetDefault("database", filepath.Join("site", "wpstatic.db"))
	v.SetDefault("timeout_seconds", 30)
	v.SetDefault("rate_limit_ms", 500)
	v.SetDefault("thumbnails", true)

	// Env var overrides
	v.BindEnv("output_dir", "WPSTATIC_OUTPUT_DIR")
	v.BindEnv("database", "WPSTATIC_DATABASE")
	v.BindEnv("user_agent", "WPSTATIC_USER_AGENT")
	v.BindEnv("timeout_seconds", "WPSTATIC_TIMEOUT_SECONDS")
	v.BindEnv("overwrite", "WPSTATIC_OVERWRITE")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Timeout returns the per-request HTTP timeout.
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// RateLimit returns the delay between download requests.
func (c Config) RateLimit() time.Duration {
	return time.Duration(c.RateLimitMs) * time.Millisecond
}

// Save writes the config to the given path (or default path if empty).
func Save(cfg Config, configPath string) error {
	if configPath == "" {
		configPath = DefaultPath()
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}

	if err := os.WriteFile(configPath, out, 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
