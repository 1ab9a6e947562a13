// Package config provides configuration management for the application.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"leaddesk/internal/errors"
)

// Config holds all application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	UI       UIConfig       `mapstructure:"ui"`
	Team     TeamConfig     `mapstructure:"team"`
}

// DatabaseConfig holds data store configuration.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// UIConfig holds output-related configuration.
type UIConfig struct {
	ColorEnabled bool   `mapstructure:"color_enabled"`
	DateFormat   string `mapstructure:"date_format"`
}

// TeamConfig holds the caller's identity and role.
type TeamConfig struct {
	UserID string `mapstructure:"user_id"`
	Role   string `mapstructure:"role"` // "manager" or "participant"
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/leaddesk"
	}
	return filepath.Join(home, ".config", "leaddesk")
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	// Color defaults to on; Unmarshal only overwrites keys present in the
	// file, so an absent color_enabled keeps this value
	cfg := &Config{UI: UIConfig{ColorEnabled: true}}
	if err := loadConfigFile(configDir, "config", cfg); err != nil {
		return nil, fmt.Errorf("loading config.toml: %w", err)
	}

	applyDefaults(cfg, configDir)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func loadConfigFile(configDir, name string, target interface{}) error {
	v := viper.New()
	v.SetConfigName(name)
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// First run, write a template and continue with defaults
			return createTemplateConfig(configDir)
		}
		return err
	}

	return v.Unmarshal(target)
}

func applyDefaults(cfg *Config, configDir string) {
	if cfg.Database.Path == "" {
		cfg.Database.Path = filepath.Join(configDir, "leaddesk.db")
	}
	if cfg.UI.DateFormat == "" {
		cfg.UI.DateFormat = "2006-01-02"
	}
	if cfg.Team.Role == "" {
		cfg.Team.Role = "participant"
	}
	if v := os.Getenv("LEADDESK_DB"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("LEADDESK_USER"); v != "" {
		cfg.Team.UserID = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Team.Role != "" && c.Team.Role != "manager" && c.Team.Role != "participant" {
		return errors.Wrapf(errors.ErrConfigInvalid, "role %q must be 'manager' or 'participant'", c.Team.Role)
	}
	return nil
}

// IsManager returns true if the configured caller has the manager role.
func (c *Config) IsManager() bool {
	return c.Team.Role == "manager"
}

func createTemplateConfig(configDir string) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	template := `# leaddesk configuration

[database]
# path = "~/.config/leaddesk/leaddesk.db"

[ui]
color_enabled = true
date_format = "2006-01-02"

[team]
# user_id = "user-1"
# role = "participant"
`
	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	return os.WriteFile(path, []byte(template), 0644)
}
