// Package config loads pafcheck settings from TOML or YAML files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Output formats understood by the convert command.
const (
	FormatPAF  = "paf"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config holds the CLI configuration
type Config struct {
	// Format is the output format of convert: paf, json or yaml.
	Format string `toml:"format" yaml:"format"`
	// SkipInvalid drops lines that fail to parse instead of stopping.
	SkipInvalid bool `toml:"skip_invalid" yaml:"skip_invalid"`
	// MaxErrors stops check after this many invalid lines. 0 means no limit.
	MaxErrors int `toml:"max_errors" yaml:"max_errors"`
	// Language selects diagnostic messages ("en" or "ja").
	Language string `toml:"language" yaml:"language"`
	Verbose  bool   `toml:"verbose" yaml:"verbose"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads a configuration file. The decoder is chosen by extension:
// .toml, or .yaml/.yml. Unset values fall back to defaults.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Format == "" {
		c.Format = FormatPAF
	}
	if c.Language == "" {
		c.Language = "en"
	}
}

// Validate checks enumerated values and limits.
func (c *Config) Validate() error {
	switch c.Format {
	case FormatPAF, FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("invalid format %q: want paf, json or yaml", c.Format)
	}
	switch c.Language {
	case "en", "ja":
	default:
		return fmt.Errorf("invalid language %q: want en or ja", c.Language)
	}
	if c.MaxErrors < 0 {
		return fmt.Errorf("max_errors must not be negative, got %d", c.MaxErrors)
	}
	return nil
}
