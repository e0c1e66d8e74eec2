// File: watch.go
// Title: Configuration File Watching Implementation
// Description: Implements polling-based watching of configuration files
//              to support hot-reloading without external dependencies.
// Author: rofrol
// Version: v0.1.0
// Created: 2026-08-16
// Modified: 2026-08-16
//
// Change History:
// - 2026-08-16 v0.1.0: Initial implementation of file watching

package config

import (
	"os"
	"time"

	singeerror "github.com/rofrol/singe/core/error"
	"github.com/rofrol/singe/utils/stringx"
)

// startWatching monitors the configuration file for changes by polling
// its modification time once per second
func (c *Config) startWatching() error {
	if stringx.IsBlank(c.filePath) {
		return singeerror.New("file path required for watching").
			WithCode(singeerror.CodeValidationFailed).
			WithOperation("config.startWatching")
	}

	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		if !c.IsWatching() {
			break
		}

		fileInfo, err := os.Stat(c.filePath)
		if err != nil {
			// File may have been deleted or moved; keep polling
			continue
		}

		c.mu.RLock()
		lastModified := c.lastModified
		c.mu.RUnlock()

		if fileInfo.ModTime().After(lastModified) {
			if err := c.reload(); err != nil {
				continue
			}
		}
	}

	return nil
}

// reload reloads the configuration from the file and notifies watchers
func (c *Config) reload() error {
	content, err := os.ReadFile(c.filePath)
	if err != nil {
		return singeerror.Wrap(err, "failed to read config file during reload").
			WithCode(singeerror.CodeConfigError).
			WithOperation("config.reload").
			WithDetail("filePath", c.filePath)
	}

	newData, err := parseContent(content, c.format)
	if err != nil {
		return singeerror.Wrap(err, "failed to parse config file during reload").
			WithCode(singeerror.CodeInvalidConfig).
			WithOperation("config.reload").
			WithDetail("filePath", c.filePath).
			WithDetail("format", c.format.String())
	}

	c.mu.Lock()
	oldConfig := &Config{
		data:   deepCopyMap(c.data),
		format: c.format,
	}

	c.data = newData
	if fileInfo, statErr := os.Stat(c.filePath); statErr == nil {
		c.lastModified = fileInfo.ModTime()
	}

	// Copy watchers so callbacks run without the lock held
	watchers := make([]ChangeHandler, len(c.watchers))
	copy(watchers, c.watchers)

	newConfig := &Config{
		data:   deepCopyMap(c.data),
		format: c.format,
	}
	c.mu.Unlock()

	for _, handler := range watchers {
		if handler != nil {
			go handler(oldConfig, newConfig)
		}
	}

	return nil
}

// StopWatching stops file monitoring
func (c *Config) StopWatching() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.watching = false
}

// IsWatching returns whether file monitoring is active
func (c *Config) IsWatching() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.watching
}
