/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Tablesorter Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package config loads the tablesorter TOML configuration.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/google/tablesorter/core/colorize"
	"github.com/google/tablesorter/core/htmltable"
	"github.com/google/tablesorter/core/rendering"
)

// Config is the full configuration
type Config struct {
	Server  ServerConfig   `toml:"server"`
	Table   TableConfig    `toml:"table"`
	Sources []SourceConfig `toml:"source"`
	Log     LogConfig      `toml:"log"`
}

// ServerConfig configures the demo HTTP server
type ServerConfig struct {
	Listen string `toml:"listen"`
}

// TableConfig configures how tables are located and marked
type TableConfig struct {
	ID            string   `toml:"id"`
	RowClasses    []string `toml:"row_classes"`
	ActiveClasses []string `toml:"active_classes"`
}

// SourceConfig is one table served by the demo server
type SourceConfig struct {
	Name string `toml:"name"`
	Path string `toml:"path"`
}

// LogConfig configures logging
type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Listen: "127.0.0.1:8097",
		},
		Table: TableConfig{
			RowClasses:    []string{string(colorize.Even), string(colorize.Odd)},
			ActiveClasses: htmltable.DefaultOptions().ActiveClasses,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// LoadFromFile reads configuration from path. A missing file yields the
// defaults.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			applyEnvOverrides(cfg)
			if err := cfg.Validate(); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, err
	}
	defer f.Close()
	return LoadFromReader(f)
}

// LoadFromReader reads configuration from an io.Reader
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides checks environment variables and overrides config values
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TABLESORTER_LISTEN"); v != "" {
		cfg.Server.Listen = v
	}
	if v := os.Getenv("TABLESORTER_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

// Validate checks values that cannot be defaulted
func (c *Config) Validate() error {
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	seen := make(map[string]bool)
	for i, s := range c.Sources {
		if s.Path == "" {
			return fmt.Errorf("source %d: path is required", i+1)
		}
		if s.Name == "" {
			return fmt.Errorf("source %d: name is required", i+1)
		}
		if seen[s.Name] {
			return fmt.Errorf("duplicate source name %q", s.Name)
		}
		seen[s.Name] = true
	}
	return nil
}

// TableOptions returns the htmltable options for this configuration
func (c *Config) TableOptions() htmltable.Options {
	opts := htmltable.DefaultOptions()
	opts.TableID = c.Table.ID
	if c.Table.ActiveClasses != nil {
		opts.ActiveClasses = c.Table.ActiveClasses
	}
	return opts
}

// Palette returns the row marker rotation
func (c *Config) Palette() colorize.Palette {
	return colorize.PaletteOf(c.Table.RowClasses)
}

// SlogLevel parses the configured level
func (l LogConfig) SlogLevel() (slog.Level, error) {
	switch strings.ToLower(l.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", l.Level)
	}
}

// RenderOptions returns the page rendering options. Header links carry the
// first active class.
func (c *Config) RenderOptions() rendering.Options {
	opts := rendering.DefaultOptions()
	if len(c.Table.ActiveClasses) > 0 {
		opts.ActiveClass = c.Table.ActiveClasses[0]
	}
	return opts
}

// NewLogger builds the process logger writing text records to w. The level
// is checked by Validate; an unknown level logs at info.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, _ := c.Log.SlogLevel()
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
