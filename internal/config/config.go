// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Output OutputConfig `toml:"output"`
	Cache  CacheConfig  `toml:"cache"`
	Sort   SortConfig   `toml:"sort"`
	Source SourceConfig `toml:"source"`
}

type OutputConfig struct {
	// Format is "table" or "json".
	Format string `toml:"format"`
}

type CacheConfig struct {
	Path string `toml:"path"`
}

type SortConfig struct {
	Column    string `toml:"column"`
	Direction string `toml:"direction"`
}

type SourceConfig struct {
	TableSelector string `toml:"table_selector"`
	RowSelector   string `toml:"row_selector"`
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Substitute environment variables
	content := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Output.Format == "" {
		c.Output.Format = "table"
	}
	if c.Cache.Path == "" {
		c.Cache.Path = "./tracklens.db"
	}
	if c.Sort.Direction == "" {
		c.Sort.Direction = "asc"
	}
	if c.Source.TableSelector == "" {
		c.Source.TableSelector = "table.torrent_table"
	}
	if c.Source.RowSelector == "" {
		c.Source.RowSelector = "tr"
	}
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match // Leave unchanged if not found
	})
}
