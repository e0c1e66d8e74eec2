// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Implements automatic configuration file discovery across
//              the standard search paths, plus loading configuration
//              entirely from environment variables.
// Author: rofrol
// Version: v0.1.0
// Created: 2026-08-16
// Modified: 2026-08-16
//
// Change History:
// - 2026-08-16 v0.1.0: Initial implementation of file discovery

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	singeerror "github.com/rofrol/singe/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search for config files
	Filenames  []string // Base filenames to look for (without extension)
	Extensions []string // File extensions to try (.toml, .yaml, .yml)
	EnvPrefix  string   // Environment variable prefix for overrides
	Required   bool     // Whether finding a config file is required
}

// DefaultDiscoveryOptions returns the default search locations
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{".", "./config"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "singe"))
	}
	paths = append(paths, "/etc/singe")

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"singe", "config"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  "SINGE",
		Required:   false,
	}
}

// candidatePaths expands the search options into concrete file paths in
// search order
func candidatePaths(options DiscoveryOptions) []string {
	paths := make([]string, 0, len(options.Paths)*len(options.Filenames)*len(options.Extensions))
	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(path, filename+ext))
			}
		}
	}
	return paths
}

// Discover finds and loads the first matching configuration file
func Discover(options DiscoveryOptions) (*Config, error) {
	if len(options.Paths) == 0 {
		options.Paths = []string{"."}
	}
	if len(options.Filenames) == 0 {
		options.Filenames = []string{"config"}
	}
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".toml", ".yaml", ".yml"}
	}

	for _, configPath := range candidatePaths(options) {
		info, err := os.Stat(configPath)
		if err != nil || info.IsDir() {
			continue
		}

		config, err := LoadWithOptions(configPath, LoadOptions{
			Format:    FormatAuto,
			EnvPrefix: options.EnvPrefix,
		})
		if err != nil {
			// File exists but does not load, so report rather than skip
			return nil, singeerror.Wrap(err, fmt.Sprintf("found config file %s but failed to load", configPath)).
				WithCode(singeerror.CodeInvalidConfig).
				WithOperation("config.Discover").
				WithDetail("configPath", configPath)
		}

		return config, nil
	}

	if options.Required {
		searched := candidatePaths(options)
		return nil, singeerror.New(fmt.Sprintf("no configuration file found in paths: %s", strings.Join(searched, ", "))).
			WithCode(singeerror.CodeMissingConfig).
			WithOperation("config.Discover").
			WithDetail("searchPaths", searched)
	}

	// Empty configuration when discovery is optional; environment
	// overrides still apply through the prefix
	return &Config{
		data:      make(map[string]interface{}),
		format:    FormatTOML,
		envPrefix: options.EnvPrefix,
		watchers:  make([]ChangeHandler, 0),
	}, nil
}

// DiscoverWithDefaults discovers configuration with default options
func DiscoverWithDefaults() (*Config, error) {
	return Discover(DefaultDiscoveryOptions())
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	for _, configPath := range candidatePaths(options) {
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, nil
		}
	}

	return "", singeerror.New("configuration file not found").
		WithCode(singeerror.CodeMissingConfig).
		WithOperation("config.FindConfigFile")
}

// LoadWithWatch loads configuration with file watching enabled
func LoadWithWatch(filePath string) (*Config, error) {
	return LoadWithOptions(filePath, LoadOptions{
		Format: FormatAuto,
		Watch:  true,
	})
}

// LoadFromEnv loads configuration entirely from environment variables.
// SINGE_LOG_LEVEL becomes log.level when the prefix is SINGE.
func LoadFromEnv(envPrefix string) *Config {
	data := make(map[string]interface{})

	for _, env := range os.Environ() {
		parts := strings.SplitN(env, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key, value := parts[0], parts[1]

		if envPrefix != "" {
			prefix := strings.ToUpper(envPrefix) + "_"
			if !strings.HasPrefix(key, prefix) {
				continue
			}
			key = strings.TrimPrefix(key, prefix)
		}

		configKey := strings.ToLower(strings.ReplaceAll(key, "_", "."))
		setNestedValue(data, configKey, parseEnvValue(value))
	}

	return &Config{
		data:      data,
		format:    FormatAuto,
		envPrefix: envPrefix,
		watchers:  make([]ChangeHandler, 0),
	}
}

// parseEnvValue parses environment variable values into bool, int, or
// float where possible, keeping the raw string otherwise
func parseEnvValue(value string) interface{} {
	if value == "true" || value == "false" {
		return value == "true"
	}

	if intVal, err := strconv.Atoi(value); err == nil {
		return intVal
	}

	if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
		return floatVal
	}

	return value
}

// setNestedValue sets a nested value in a map using dot notation
func setNestedValue(data map[string]interface{}, key string, value interface{}) {
	keys := strings.Split(key, ".")
	current := data

	for i, k := range keys {
		if i == len(keys)-1 {
			current[k] = value
			return
		}

		if next, ok := current[k].(map[string]interface{}); ok {
			current = next
		} else {
			next = make(map[string]interface{})
			current[k] = next
			current = next
		}
	}
}
