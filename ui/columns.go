// Copyright © 2026 Recall contributors
// SPDX-License-Identifier: MIT
//
// File: ui/columns.go
// Summary: Column configuration and width assignment for the history list.

package ui

import "fmt"

// ColumnKind enumerates the renderable columns. The set is closed; the
// renderer dispatches exhaustively on it.
type ColumnKind int

const (
	ColDuration ColumnKind = iota
	ColTime
	ColDatetime
	ColDirectory
	ColHost
	ColUser
	ColExit
	ColCommand
)

var columnKindNames = map[string]ColumnKind{
	"duration":  ColDuration,
	"time":      ColTime,
	"datetime":  ColDatetime,
	"directory": ColDirectory,
	"host":      ColHost,
	"user":      ColUser,
	"exit":      ColExit,
	"command":   ColCommand,
}

// ParseColumnKind resolves a config name to a kind.
func ParseColumnKind(name string) (ColumnKind, error) {
	k, ok := columnKindNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown column kind %q", name)
	}
	return k, nil
}

func (k ColumnKind) String() string {
	for name, kind := range columnKindNames {
		if kind == k {
			return name
		}
	}
	return "unknown"
}

// ColumnSpec describes one configured column: either a fixed display
// width or Expand, which consumes the width left over after the fixed
// columns and padding are budgeted.
type ColumnSpec struct {
	Kind   ColumnKind
	Width  int
	Expand bool
}

// ValidateColumns rejects configurations the renderer cannot lay out
// sensibly. Called once at startup so per-frame code never revalidates.
func ValidateColumns(cols []ColumnSpec) error {
	if len(cols) == 0 {
		return fmt.Errorf("no columns configured")
	}
	expanding := 0
	for _, c := range cols {
		if c.Expand {
			expanding++
			continue
		}
		if c.Width <= 0 {
			return fmt.Errorf("column %s: fixed width must be positive, got %d", c.Kind, c.Width)
		}
	}
	if expanding > 1 {
		return fmt.Errorf("at most one column may expand, got %d", expanding)
	}
	return nil
}

// DefaultColumns mirrors the classic layout: duration, relative time and
// the command consuming the rest of the row.
func DefaultColumns() []ColumnSpec {
	return []ColumnSpec{
		{Kind: ColDuration, Width: 5},
		{Kind: ColTime, Width: 7},
		{Kind: ColCommand, Expand: true},
	}
}

// rowPadding is the single blank cell drawn at the left edge of every row.
const rowPadding = 1

// columnWidths assigns a rendered width to every column. Each fixed
// column reserves its width plus one separator cell; an expanding column
// receives whatever remains after padding and the fixed budget, clamped
// at zero.
func columnWidths(cols []ColumnSpec, available int) []int {
	fixed := 0
	for _, c := range cols {
		if !c.Expand {
			fixed += c.Width + 1
		}
	}
	expand := available - rowPadding - fixed
	if expand < 0 {
		expand = 0
	}
	widths := make([]int, len(cols))
	for i, c := range cols {
		if c.Expand {
			widths[i] = expand
		} else {
			widths[i] = c.Width
		}
	}
	return widths
}
