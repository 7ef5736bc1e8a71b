// Copyright © 2026 Recall contributors
// SPDX-License-Identifier: MIT
//
// File: ui/selection.go
// Summary: Visual treatment of the selected row.

package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"recall/theme"
)

// SelectionMode picks how the selected row is marked. Exactly one mode is
// active per configuration; the two are never combined.
type SelectionMode int

const (
	// SelectBackground overlays the theme's selection background color
	// on every fragment of the selected row.
	SelectBackground SelectionMode = iota
	// SelectReverse swaps foreground and background on the selected row.
	SelectReverse
)

// ParseSelectionMode resolves a config name to a mode.
func ParseSelectionMode(name string) (SelectionMode, error) {
	switch name {
	case "", "background":
		return SelectBackground, nil
	case "reverse":
		return SelectReverse, nil
	}
	return 0, fmt.Errorf("unknown selection mode %q", name)
}

// selectionStyler answers per-row selection questions for one frame.
type selectionStyler struct {
	mode  SelectionMode
	theme *theme.Theme
	state *ListState
}

// selected reports whether logical row y of the current window holds the
// selection cursor.
func (s selectionStyler) selected(y int) bool {
	return y+s.state.Offset == s.state.Selected
}

// apply returns st with the selection overlay for row y, unchanged when
// the row is not selected.
func (s selectionStyler) apply(y int, st tcell.Style) tcell.Style {
	if !s.selected(y) {
		return st
	}
	switch s.mode {
	case SelectReverse:
		return st.Reverse(true)
	default:
		return st.Background(s.theme.SelectionBG())
	}
}

// fillStyle is the style used to pad the selected row's unused width.
// Reverse mode pads with reversed blanks so the bar spans the row.
func (s selectionStyler) fillStyle() tcell.Style {
	if s.mode == SelectReverse {
		return tcell.StyleDefault.Reverse(true)
	}
	return tcell.StyleDefault.Background(s.theme.SelectionBG())
}
