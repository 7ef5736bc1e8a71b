// Copyright © 2026 Recall contributors
// SPDX-License-Identifier: MIT
//
// File: theme/theme.go
// Summary: Semantic color roles resolved to tcell styles.
// Usage: The list renderer asks for a style per role; themes are loaded
// once at startup from an optional TOML file.

package theme

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/pelletier/go-toml/v2"
)

// Role names a semantic slot in the palette rather than a concrete color.
type Role int

const (
	RoleBase Role = iota
	RoleGuidance
	RoleAnnotation
	RoleAlertInfo
	RoleAlertWarn
	RoleAlertError
	RoleSelection
	roleCount
)

// Theme maps roles to concrete terminal styles.
type Theme struct {
	styles [roleCount]tcell.Style
}

// Style returns the style for a role. Unknown roles fall back to Base.
func (t *Theme) Style(r Role) tcell.Style {
	if r < 0 || r >= roleCount {
		r = RoleBase
	}
	return t.styles[r]
}

// SelectionBG returns the background color of the Selection role, falling
// back to a dim slate when the theme leaves it unset.
func (t *Theme) SelectionBG() tcell.Color {
	_, bg, _ := t.styles[RoleSelection].Decompose()
	if bg == tcell.ColorDefault {
		return tcell.NewRGBColor(0x31, 0x32, 0x44)
	}
	return bg
}

// Default returns the built-in palette.
func Default() *Theme {
	t := &Theme{}
	t.styles[RoleBase] = tcell.StyleDefault
	t.styles[RoleGuidance] = tcell.StyleDefault.Foreground(tcell.ColorGray)
	t.styles[RoleAnnotation] = tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
	t.styles[RoleAlertInfo] = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	t.styles[RoleAlertWarn] = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	t.styles[RoleAlertError] = tcell.StyleDefault.Foreground(tcell.ColorRed)
	t.styles[RoleSelection] = tcell.StyleDefault.Background(tcell.NewRGBColor(0x31, 0x32, 0x44))
	return t
}

// fileTheme is the on-disk schema. Colors accept names ("red") or hex
// ("#cad3f5"), both resolved by tcell.
type fileTheme struct {
	Base       entry `toml:"base"`
	Guidance   entry `toml:"guidance"`
	Annotation entry `toml:"annotation"`
	AlertInfo  entry `toml:"alert_info"`
	AlertWarn  entry `toml:"alert_warn"`
	AlertError entry `toml:"alert_error"`
	Selection  entry `toml:"selection"`
}

type entry struct {
	FG   string `toml:"fg"`
	BG   string `toml:"bg"`
	Bold bool   `toml:"bold"`
}

// Load reads a theme file and overlays it on the default palette. An empty
// path returns the default palette unchanged.
func Load(path string) (*Theme, error) {
	t := Default()
	if path == "" {
		return t, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read theme: %w", err)
	}
	var ft fileTheme
	if err := toml.Unmarshal(data, &ft); err != nil {
		return nil, fmt.Errorf("parse theme %s: %w", path, err)
	}
	for r, e := range map[Role]entry{
		RoleBase:       ft.Base,
		RoleGuidance:   ft.Guidance,
		RoleAnnotation: ft.Annotation,
		RoleAlertInfo:  ft.AlertInfo,
		RoleAlertWarn:  ft.AlertWarn,
		RoleAlertError: ft.AlertError,
		RoleSelection:  ft.Selection,
	} {
		st, err := e.style(t.styles[r])
		if err != nil {
			return nil, fmt.Errorf("theme %s: %w", path, err)
		}
		t.styles[r] = st
	}
	return t, nil
}

func (e entry) style(base tcell.Style) (tcell.Style, error) {
	st := base
	if e.FG != "" {
		c, err := parseColor(e.FG)
		if err != nil {
			return st, err
		}
		st = st.Foreground(c)
	}
	if e.BG != "" {
		c, err := parseColor(e.BG)
		if err != nil {
			return st, err
		}
		st = st.Background(c)
	}
	if e.Bold {
		st = st.Bold(true)
	}
	return st, nil
}

func parseColor(name string) (tcell.Color, error) {
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault && name != "default" {
		return c, fmt.Errorf("unknown color %q", name)
	}
	return c, nil
}
