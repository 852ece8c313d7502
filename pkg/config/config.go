/*
Package config manages TOML config for phraseserve.
*/
package config

import (
	"path/filepath"

	"github.com/bastiangx/phraseserve/internal/utils"
	"github.com/charmbracelet/log"
)

// FileName is the config file looked up in the user config dir.
const FileName = "config.toml"

// Config holds the entire config structure
type Config struct {
	Server ServerConfig `toml:"server"`
	Corpus CorpusConfig `toml:"corpus"`
	Export ExportConfig `toml:"export"`
	CLI    CliConfig    `toml:"cli"`
}

// ServerConfig has server related options.
type ServerConfig struct {
	MaxLimit     int `toml:"max_limit"`
	DefaultLimit int `toml:"default_limit"`
	MaxPrefix    int `toml:"max_prefix"`
}

// CorpusConfig holds corpus loading options.
type CorpusConfig struct {
	Path       string `toml:"path"`
	MaxPhrases int    `toml:"max_phrases"`
}

// ExportConfig holds tree dump options.
type ExportConfig struct {
	Path string `toml:"path"`
}

// CliConfig holds cli and tui options.
type CliConfig struct {
	DefaultLimit int `toml:"default_limit"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			MaxLimit:     64,
			DefaultLimit: 10,
			MaxPrefix:    200,
		},
		Corpus: CorpusConfig{
			Path:       "ChuckNorrisJokes.txt",
			MaxPhrases: 0,
		},
		Export: ExportConfig{
			Path: "TreeDump.json",
		},
		CLI: CliConfig{
			DefaultLimit: 10,
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	config.sanitize()
	return config, nil
}

// tryPartialParse keeps whatever sections still decode as a generic TOML map
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(section, &config.Server)
	}
	if section, ok := utils.ExtractSection(tempConfig, "corpus"); ok {
		extractCorpusConfig(section, &config.Corpus)
	}
	if section, ok := utils.ExtractSection(tempConfig, "export"); ok {
		if val, ok := utils.ExtractString(section, "path"); ok {
			config.Export.Path = val
		}
	}
	if section, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		if val, ok := utils.ExtractInt64(section, "default_limit"); ok {
			config.CLI.DefaultLimit = val
		}
	}
	config.sanitize()
	return config, nil
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "max_limit"); ok {
		server.MaxLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "default_limit"); ok {
		server.DefaultLimit = val
	}
	if val, ok := utils.ExtractInt64(data, "max_prefix"); ok {
		server.MaxPrefix = val
	}
}

func extractCorpusConfig(data map[string]any, corpus *CorpusConfig) {
	if val, ok := utils.ExtractString(data, "path"); ok {
		corpus.Path = val
	}
	if val, ok := utils.ExtractInt64(data, "max_phrases"); ok {
		corpus.MaxPhrases = val
	}
}

// sanitize replaces values that would break the shells with defaults.
func (c *Config) sanitize() {
	defaults := DefaultConfig()
	if c.Server.MaxLimit < 1 {
		log.Warnf("server.max_limit=%d is invalid, using %d", c.Server.MaxLimit, defaults.Server.MaxLimit)
		c.Server.MaxLimit = defaults.Server.MaxLimit
	}
	if c.Server.DefaultLimit < 1 || c.Server.DefaultLimit > c.Server.MaxLimit {
		log.Warnf("server.default_limit=%d is out of range, using %d", c.Server.DefaultLimit, min(defaults.Server.DefaultLimit, c.Server.MaxLimit))
		c.Server.DefaultLimit = min(defaults.Server.DefaultLimit, c.Server.MaxLimit)
	}
	if c.Server.MaxPrefix < 1 {
		c.Server.MaxPrefix = defaults.Server.MaxPrefix
	}
	if c.Corpus.MaxPhrases < 0 {
		c.Corpus.MaxPhrases = 0
	}
	if c.CLI.DefaultLimit < 1 {
		c.CLI.DefaultLimit = defaults.CLI.DefaultLimit
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
