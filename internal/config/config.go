package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents staffdir configuration options
type Config struct {
	// LogLevel sets the logging verbosity (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// LogDir is the directory where session logs will be written
	LogDir string `yaml:"log_dir"`

	// FileLogging enables per-session log files under LogDir
	FileLogging bool `yaml:"file_logging"`

	// Prompt is shown before each line when reading from a terminal
	Prompt string `yaml:"prompt"`

	// Color enables colored output on terminals
	Color bool `yaml:"color"`

	// Suggest enables "did you mean" hints for unknown commands
	Suggest bool `yaml:"suggest"`

	// ReportDir is where relative --report paths are resolved
	ReportDir string `yaml:"report_dir"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel:    "error",
		LogDir:      filepath.Join(".staffdir", "logs"),
		FileLogging: false,
		Prompt:      "> ",
		Color:       true,
		Suggest:     true,
		ReportDir:   ".",
	}
}

// LoadConfig loads configuration from the specified file path
// If the file doesn't exist, returns default configuration without error
// If the file exists but is malformed, returns an error
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Pointer fields tell an explicit false or "" apart from an omitted key
	type yamlConfig struct {
		LogLevel    *string `yaml:"log_level"`
		LogDir      *string `yaml:"log_dir"`
		FileLogging *bool   `yaml:"file_logging"`
		Prompt      *string `yaml:"prompt"`
		Color       *bool   `yaml:"color"`
		Suggest     *bool   `yaml:"suggest"`
		ReportDir   *string `yaml:"report_dir"`
	}

	var yamlCfg yamlConfig
	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if yamlCfg.LogLevel != nil {
		cfg.LogLevel = normalizeLevel(*yamlCfg.LogLevel)
	}
	if yamlCfg.LogDir != nil {
		cfg.LogDir = *yamlCfg.LogDir
	}
	if yamlCfg.FileLogging != nil {
		cfg.FileLogging = *yamlCfg.FileLogging
	}
	if yamlCfg.Prompt != nil {
		cfg.Prompt = *yamlCfg.Prompt
	}
	if yamlCfg.Color != nil {
		cfg.Color = *yamlCfg.Color
	}
	if yamlCfg.Suggest != nil {
		cfg.Suggest = *yamlCfg.Suggest
	}
	if yamlCfg.ReportDir != nil {
		cfg.ReportDir = *yamlCfg.ReportDir
	}

	return cfg, nil
}

// normalizeLevel lowercases a log level so "INFO" and "info" are the same.
func normalizeLevel(level string) string {
	return strings.ToLower(strings.TrimSpace(level))
}

// LoadConfigFromDir loads configuration from config.yaml in the specified directory
// If the directory or file doesn't exist, returns default configuration without error
func LoadConfigFromDir(dir string) (*Config, error) {
	return LoadConfig(filepath.Join(dir, "config.yaml"))
}

// MergeWithFlags merges CLI flags into the configuration
// Non-nil flag values override configuration values
func (c *Config) MergeWithFlags(logLevel *string, logDir *string, noColor *bool) {
	if logLevel != nil {
		c.LogLevel = normalizeLevel(*logLevel)
	}
	if logDir != nil {
		c.LogDir = *logDir
		c.FileLogging = true
	}
	if noColor != nil && *noColor {
		c.Color = false
	}
}

// ResolveReportPath joins a relative report path onto ReportDir.
func (c *Config) ResolveReportPath(path string) string {
	if path == "" || filepath.IsAbs(path) || c.ReportDir == "" {
		return path
	}
	return filepath.Join(c.ReportDir, path)
}

// Validate validates the configuration values
// Returns an error if any values are invalid
func (c *Config) Validate() error {
	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[c.LogLevel] {
		return fmt.Errorf("invalid log_level %q, must be one of: trace, debug, info, warn, error", c.LogLevel)
	}

	if c.FileLogging && c.LogDir == "" {
		return fmt.Errorf("log_dir cannot be empty when file_logging is enabled")
	}

	return nil
}
