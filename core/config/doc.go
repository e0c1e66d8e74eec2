// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config provides configuration management for the
//              singe toolchain with support for TOML and YAML formats,
//              environment variable overrides, validation, and polling
//              based hot-reloading.
// Author: rofrol
// Version: v0.1.0
// Created: 2026-08-16
// Modified: 2026-08-16
//
// Change History:
// - 2026-08-16 v0.1.0: Initial implementation with TOML/YAML support

/*
Package config provides configuration management for the singe toolchain.

Package: config
Title: Core Configuration Management
Description: Loads configuration from TOML and YAML files with automatic
             format detection, injects environment variable overrides,
             validates values against structured rules, and reloads on
             file changes through a polling watcher.
Author: rofrol
Version: v0.1.0
Created: 2026-08-16
Modified: 2026-08-16

Change History:
- 2026-08-16 v0.1.0: Initial implementation with TOML/YAML support

Key Features:
  • Multi-format support (TOML, YAML) with automatic detection
  • Environment variable overrides with a configurable prefix
  • Configuration validation with structured rules and defaults
  • Hot-reloading with change notification callbacks
  • Thread-safe concurrent access
  • Automatic discovery across the standard search paths
  • Structured error codes on every failure path

# Basic Configuration Loading

Load and access configuration values:

	cfg, err := singeconfig.Load("singe.toml")
	if err != nil {
		return err
	}

	level := cfg.GetString("log.level", "info")
	verbose := cfg.GetBool("log.verbose", false)
	limit := cfg.GetInt("scanner.max_source_size", 1<<20)

# Environment Variable Integration

File values are overridden by environment variables following a consistent
naming convention:

	# singe.toml
	[log]
	level = "info"

	# Environment override (with prefix SINGE)
	export SINGE_LOG_LEVEL="debug"

	cfg, _ := singeconfig.LoadWithOptions("singe.toml", singeconfig.LoadOptions{
		EnvPrefix: "SINGE",
	})

	cfg.GetString("log.level") // "debug"

# Configuration Validation

Validate structure and constraints, applying defaults for absent keys:

	result := cfg.Validate(singeconfig.ValidationRules{
		"log.level": {Type: "string", Default: "info"},
		"scanner.max_source_size": {
			Type: "int",
			Min:  1024,
			Max:  1 << 30,
		},
	})
	if !result.Valid {
		for _, msg := range result.Errors {
			fmt.Println(msg)
		}
	}

# Discovery

When no explicit path is given, Discover walks the standard locations
(working directory, ./config, ~/.config/singe, /etc/singe) and loads the
first match:

	cfg, err := singeconfig.DiscoverWithDefaults()
*/
package config
