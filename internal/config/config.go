// Package config loads petal configuration from file, environment and defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/opencode-ai/petal/internal/logging"
	"github.com/opencode-ai/petal/internal/theme"
	"github.com/opencode-ai/petal/internal/vault"
)

// EnvPrefix prefixes environment overrides, e.g. PETAL_THEME_PRESET.
const EnvPrefix = "PETAL"

// Config is the application configuration.
type Config struct {
	Theme    ThemeConfig    `mapstructure:"theme"`
	Keychain KeychainConfig `mapstructure:"keychain"`
	Vault    VaultConfig    `mapstructure:"vault"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ThemeConfig selects the theme configured at startup.
type ThemeConfig struct {
	Preset string `mapstructure:"preset"`
}

// KeychainConfig locates the keystore database.
type KeychainConfig struct {
	Path string `mapstructure:"path"`
}

// VaultConfig locates the device key.
type VaultConfig struct {
	Path string `mapstructure:"path"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Theme:    ThemeConfig{Preset: string(theme.PresetDefault)},
		Keychain: KeychainConfig{Path: vault.DefaultKeychainPath()},
		Vault:    VaultConfig{Path: vault.DefaultVaultPath()},
		Logging:  LoggingConfig{Level: "warn", Format: logging.FormatConsole},
	}
}

// DefaultConfigPath returns the default config file location.
func DefaultConfigPath() string {
	return filepath.Join(vault.ConfigDir(), "config.yaml")
}

// Load reads configuration. An explicit path must exist; without one the
// default location is read if present.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else {
		v.SetConfigFile(DefaultConfigPath())
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if _, err := theme.ParsePreset(c.Theme.Preset); err != nil {
		return fmt.Errorf("theme.preset: %w", err)
	}
	if c.Keychain.Path == "" {
		return errors.New("keychain.path is required")
	}
	if c.Vault.Path == "" {
		return errors.New("vault.path is required")
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	switch c.Logging.Format {
	case "", logging.FormatConsole, logging.FormatJSON:
	default:
		return fmt.Errorf("logging.format: unknown format %q", c.Logging.Format)
	}
	return nil
}

// Preset returns the validated theme preset.
func (c *Config) Preset() theme.Preset {
	p, err := theme.ParsePreset(c.Theme.Preset)
	if err != nil {
		return theme.PresetDefault
	}
	return p
}

func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("theme.preset", d.Theme.Preset)
	v.SetDefault("keychain.path", d.Keychain.Path)
	v.SetDefault("vault.path", d.Vault.Path)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
}
