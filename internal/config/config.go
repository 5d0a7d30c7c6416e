// Package config provides YAML-based configuration loading for the rosmsg tools.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the root tool configuration.
type Config struct {
	// Paths lists extra definition roots laid out as <package>/msg/<Name>.msg.
	// The bundled definitions are always loaded first.
	Paths []string `mapstructure:"paths"`

	// Generate holds rosmsg-gen settings
	Generate GenerateConfig `mapstructure:"generate"`

	// Export holds the default output of `rosmsg decode`
	Export ExportConfig `mapstructure:"export"`

	// Log holds logging configuration
	Log LogConfig `mapstructure:"log"`
}

// GenerateConfig controls where and how typed structs are written.
type GenerateConfig struct {
	// Output is the directory receiving one subdirectory per ROS package
	Output string `mapstructure:"output"`
	// Prefix is the Go import path of Output
	Prefix string `mapstructure:"prefix"`
	// Registry is the import path of the package whose MustLookup resolves schemas
	Registry string `mapstructure:"registry"`
}

// ExportConfig selects the diagnostic rendering of decoded messages.
type ExportConfig struct {
	// Format: text, json, cbor, msgpack or proto
	Format string `mapstructure:"format"`
}

// LogConfig defines logger settings.
type LogConfig struct {
	// Level: debug, info, warn, error
	Level string `mapstructure:"level"`
	// Format: console or json
	Format string `mapstructure:"format"`
	// Outputs: list of outputs: stdout, stderr, or file paths
	Outputs []string `mapstructure:"outputs"`

	// Rotation controls file rotation when writing to files
	Rotation RotationConfig `mapstructure:"rotation"`
	// Development toggles development-friendly logging options
	Development bool `mapstructure:"development"`
}

// RotationConfig controls log file rotation for file outputs.
type RotationConfig struct {
	Enable     bool   `mapstructure:"enable"`
	Filename   string `mapstructure:"filename"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// DefaultPrefix is the import path of the bundled message packages.
const DefaultPrefix = "github.com/zphilip/handDetect/msgs"

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		Generate: GenerateConfig{
			Output:   ".",
			Prefix:   DefaultPrefix,
			Registry: DefaultPrefix,
		},
		Export: ExportConfig{Format: "text"},
		Log: LogConfig{
			Level:   "warn",
			Format:  "console",
			Outputs: []string{"stderr"},
			Rotation: RotationConfig{
				Enable:     false,
				Filename:   "logs/rosmsg.log",
				MaxSizeMB:  50,
				MaxBackups: 3,
				MaxAgeDays: 28,
				Compress:   true,
			},
		},
	}
}

// Load reads configuration from the provided path (if non-empty),
// otherwise it searches common locations and supports environment overrides.
// Environment variables use the prefix ROSMSG and `.`/`-` are replaced with `_`.
// Example: ROSMSG_LOG_LEVEL=debug
func Load(path string) (*Config, error) {
	cfg := Default()

	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix("ROSMSG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// seed defaults for viper so env-only configs work
	v.SetDefault("generate.output", cfg.Generate.Output)
	v.SetDefault("generate.prefix", cfg.Generate.Prefix)
	v.SetDefault("generate.registry", cfg.Generate.Registry)
	v.SetDefault("export.format", cfg.Export.Format)
	v.SetDefault("log.level", cfg.Log.Level)
	v.SetDefault("log.format", cfg.Log.Format)
	v.SetDefault("log.outputs", cfg.Log.Outputs)
	v.SetDefault("log.development", cfg.Log.Development)
	v.SetDefault("log.rotation.enable", cfg.Log.Rotation.Enable)
	v.SetDefault("log.rotation.filename", cfg.Log.Rotation.Filename)
	v.SetDefault("log.rotation.max_size_mb", cfg.Log.Rotation.MaxSizeMB)
	v.SetDefault("log.rotation.max_backups", cfg.Log.Rotation.MaxBackups)
	v.SetDefault("log.rotation.max_age_days", cfg.Log.Rotation.MaxAgeDays)
	v.SetDefault("log.rotation.compress", cfg.Log.Rotation.Compress)

	if path == "" {
		if envPath := os.Getenv("ROSMSG_CONFIG"); envPath != "" {
			path = envPath
		}
	}

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("rosmsg")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".rosmsg"))
		}
	}

	// a missing config file is fine; defaults and env still apply
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Log.Level)) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log.level: %q", c.Log.Level)
	}

	if c.Log.Format == "" {
		c.Log.Format = "console"
	}
	if len(c.Log.Outputs) == 0 {
		c.Log.Outputs = []string{"stderr"}
	}

	c.Export.Format = strings.ToLower(strings.TrimSpace(c.Export.Format))
	if c.Export.Format == "" {
		c.Export.Format = "text"
	}

	if strings.TrimSpace(c.Generate.Output) == "" {
		c.Generate.Output = "."
	}
	if strings.TrimSpace(c.Generate.Prefix) == "" {
		return errors.New("generate.prefix must not be empty")
	}
	if c.Generate.Registry == "" {
		c.Generate.Registry = c.Generate.Prefix
	}
	for i, p := range c.Paths {
		c.Paths[i] = filepath.Clean(p)
	}
	return nil
}

// MustLoad is a convenience that panics on error.
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}
