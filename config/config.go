// Copyright © 2026 Recall contributors
// SPDX-License-Identifier: MIT
//
// File: config/config.go
// Summary: TOML settings for the search UI.
// Usage: Loaded once at startup; validation happens here so render-path
// code never has to.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"recall/search"
	"recall/ui"
)

// Column is the on-disk column description.
type Column struct {
	Kind   string `toml:"kind"`
	Width  int    `toml:"width"`
	Expand bool   `toml:"expand"`
}

// Settings is the persisted configuration schema.
type Settings struct {
	DBPath        string   `toml:"db_path"`
	ThemePath     string   `toml:"theme_path"`
	Invert        bool     `toml:"invert"`
	SelectionMode string   `toml:"selection_mode"`
	SearchEngine  string   `toml:"search_engine"`
	LogFile       string   `toml:"log_file"`
	Columns       []Column `toml:"columns"`
}

// Default returns the settings used when no file exists.
func Default() Settings {
	return Settings{
		SelectionMode: "background",
		SearchEngine:  "fuzzy",
		Columns: []Column{
			{Kind: "duration", Width: 5},
			{Kind: "time", Width: 7},
			{Kind: "command", Expand: true},
		},
	}
}

// DefaultPath returns the per-user config location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "recall", "config.toml")
}

// Load reads settings from path (or the default location when empty).
// A missing file yields the defaults. The result is validated.
func Load(path string) (Settings, error) {
	s := Default()
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parse config %s: %w", path, err)
	}
	if len(s.Columns) == 0 {
		s.Columns = Default().Columns
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("config %s: %w", path, err)
	}
	return s, nil
}

// Validate rejects settings the UI cannot honor.
func (s Settings) Validate() error {
	if _, err := s.ColumnSpecs(); err != nil {
		return err
	}
	if _, err := ui.ParseSelectionMode(s.SelectionMode); err != nil {
		return err
	}
	if _, err := search.New(s.SearchEngine); err != nil {
		return err
	}
	return nil
}

// ColumnSpecs converts the configured columns to renderer specs,
// validating them in the process.
func (s Settings) ColumnSpecs() ([]ui.ColumnSpec, error) {
	specs := make([]ui.ColumnSpec, 0, len(s.Columns))
	for _, c := range s.Columns {
		kind, err := ui.ParseColumnKind(c.Kind)
		if err != nil {
			return nil, err
		}
		specs = append(specs, ui.ColumnSpec{Kind: kind, Width: c.Width, Expand: c.Expand})
	}
	if err := ui.ValidateColumns(specs); err != nil {
		return nil, err
	}
	return specs, nil
}
