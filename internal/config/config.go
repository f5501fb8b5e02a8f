// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for flightdeck.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.flightdeck/config.toml
//   - ~/.flightdeck/config.json
//   - Built-in defaults
package config

import (
	"encoding/json"
	"errors"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/BurntSushi/toml"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete flightdeck configuration.
type Config struct {
	// General settings
	Version string `toml:"version" json:"version"`

	// Server connection configuration
	Server ServerConfig `toml:"server" json:"server"`

	// Chat configuration
	Chat ChatConfig `toml:"chat" json:"chat"`

	// Knowledge base tester configuration
	Knowledge KnowledgeConfig `toml:"knowledge" json:"knowledge"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`
}

// ServerConfig contains assistant service connection configuration.
type ServerConfig struct {
	// BaseURL is the assistant API base URL
	BaseURL string `toml:"base_url" json:"base_url"`
	// TimeoutSecs is the per-request timeout in seconds
	TimeoutSecs int `toml:"timeout_secs" json:"timeout_secs"`
}

// Timeout returns the request timeout as a duration.
func (s ServerConfig) Timeout() time.Duration {
	return time.Duration(s.TimeoutSecs) * time.Second
}

// ChatConfig contains chat view configuration.
type ChatConfig struct {
	// WelcomeMessage seeds the transcript; empty disables seeding
	WelcomeMessage string `toml:"welcome_message" json:"welcome_message"`
	// PreserveWelcome keeps the seeded welcome entry across history clears
	PreserveWelcome bool `toml:"preserve_welcome" json:"preserve_welcome"`
	// MaxMessageLength caps the chat input, in characters
	MaxMessageLength int `toml:"max_message_length" json:"max_message_length"`
}

// KnowledgeConfig contains knowledge base tester configuration.
type KnowledgeConfig struct {
	// DefaultLimit is the initial result limit for queries
	DefaultLimit int `toml:"default_limit" json:"default_limit"`
}

// UIConfig contains UI configuration.
type UIConfig struct {
	// ShowTimestamps toggles relative timestamps under messages
	ShowTimestamps bool `toml:"show_timestamps" json:"show_timestamps"`
	// MarkdownWrap is the word-wrap column for rendered assistant markup
	MarkdownWrap int `toml:"markdown_wrap" json:"markdown_wrap"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// DefaultConfig returns the configuration defaults.
func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Server: ServerConfig{
			BaseURL:     "http://127.0.0.1:8080/api/v1",
			TimeoutSecs: 30,
		},
		Chat: ChatConfig{
			WelcomeMessage:   "Hello! I'm your airline assistant. How can I help you today?",
			PreserveWelcome:  true,
			MaxMessageLength: 1000,
		},
		Knowledge: KnowledgeConfig{
			DefaultLimit: 5,
		},
		UI: UIConfig{
			ShowTimestamps: true,
			MarkdownWrap:   80,
		},
	}
}

// =============================================================================
// LOADING
// =============================================================================

// ConfigDir returns the flightdeck configuration directory (~/.flightdeck).
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".flightdeck"), nil
}

// TOMLPath returns the path to the TOML configuration file.
func TOMLPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the configuration from disk, preferring TOML over JSON,
// applies environment overrides, and validates the result.
// A missing file is not an error; defaults are used.
func Load() (*Config, error) {
	dir, err := ConfigDir()
	if err != nil {
		// No home dir; run on defaults.
		cfg := DefaultConfig()
		applyEnvOverrides(cfg)
		return cfg, cfg.Validate()
	}

	cfg := DefaultConfig()

	tomlPath := filepath.Join(dir, "config.toml")
	jsonPath := filepath.Join(dir, "config.json")

	switch {
	case fileExists(tomlPath):
		if _, err := toml.DecodeFile(tomlPath, cfg); err != nil {
			return nil, err
		}
	case fileExists(jsonPath):
		data, err := os.ReadFile(jsonPath)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads configuration from an explicit TOML file path, applies
// environment overrides, and validates. Used by the config watcher.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to ~/.flightdeck/config.toml.
func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(dir, "config.toml"))
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// applyEnvOverrides applies FLIGHTDECK_* environment variables on top of
// the loaded configuration.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FLIGHTDECK_SERVER_URL"); v != "" {
		cfg.Server.BaseURL = v
	}
	if v := os.Getenv("FLIGHTDECK_TIMEOUT_SECS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.TimeoutSecs = n
		}
	}
	if v := os.Getenv("FLIGHTDECK_WELCOME_MESSAGE"); v != "" {
		cfg.Chat.WelcomeMessage = v
	}
	if v := os.Getenv("FLIGHTDECK_KNOWLEDGE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Knowledge.DefaultLimit = n
		}
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks the configuration and clamps out-of-range values.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Server.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return errors.New("server.base_url must be an absolute URL")
	}

	if c.Server.TimeoutSecs <= 0 {
		c.Server.TimeoutSecs = 30
	}
	if c.Chat.MaxMessageLength <= 0 {
		c.Chat.MaxMessageLength = 1000
	}
	if c.Knowledge.DefaultLimit < 1 {
		c.Knowledge.DefaultLimit = 1
	}
	if c.Knowledge.DefaultLimit > 10 {
		c.Knowledge.DefaultLimit = 10
	}
	if c.UI.MarkdownWrap < 40 {
		c.UI.MarkdownWrap = 40
	}

	return nil
}

// =============================================================================
// GLOBAL ACCESS
// =============================================================================

var (
	globalConfig *Config
	globalMu     sync.RWMutex
)

// Global returns the process-wide configuration, loading it on first use.
func Global() *Config {
	globalMu.RLock()
	if globalConfig != nil {
		defer globalMu.RUnlock()
		return globalConfig
	}
	globalMu.RUnlock()

	globalMu.Lock()
	defer globalMu.Unlock()
	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			cfg = DefaultConfig()
		}
		globalConfig = cfg
	}
	return globalConfig
}

// SetGlobal replaces the process-wide configuration.
// Used after a hot reload.
func SetGlobal(cfg *Config) {
	if cfg == nil {
		return
	}
	globalMu.Lock()
	globalConfig = cfg
	globalMu.Unlock()
}
