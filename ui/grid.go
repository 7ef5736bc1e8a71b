// Copyright © 2026 Recall contributors
// SPDX-License-Identifier: MIT
//
// File: ui/grid.go
// Summary: Fixed-size character grid the list renderer writes into.
// Usage: The app renders one frame into a Buffer and blits it to tcell.

package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Cell is a single character cell. A wide rune occupies its cell plus one
// continuation cell whose Ch is zero.
type Cell struct {
	Ch    rune
	Style tcell.Style
}

// Rect is an axis-aligned region of the grid in cell units.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the point lies inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Buffer is a w×h grid of cells. Writes outside the grid are silently
// dropped; overruns truncate rather than error.
type Buffer struct {
	w, h  int
	cells [][]Cell
}

// NewBuffer returns a cleared buffer of the given size. Non-positive
// dimensions yield an empty buffer that swallows all writes.
func NewBuffer(w, h int) *Buffer {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	b := &Buffer{w: w, h: h, cells: make([][]Cell, h)}
	for y := range b.cells {
		b.cells[y] = make([]Cell, w)
		for x := range b.cells[y] {
			b.cells[y][x] = Cell{Ch: ' ', Style: tcell.StyleDefault}
		}
	}
	return b
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (int, int) { return b.w, b.h }

// Cell returns the cell at (x, y), or a zero cell when out of bounds.
func (b *Buffer) Cell(x, y int) Cell {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return Cell{}
	}
	return b.cells[y][x]
}

// SetString writes s at (x, y) and returns the number of cells consumed.
// At most max cells are written; the write also clips at the right edge
// of the buffer. Wide runes that would straddle the limit are dropped.
func (b *Buffer) SetString(x, y int, s string, style tcell.Style, max int) int {
	if y < 0 || y >= b.h || x >= b.w || max <= 0 {
		return 0
	}
	limit := x + max
	if limit > b.w {
		limit = b.w
	}
	cx := x
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			// Combining marks are not given their own cell.
			continue
		}
		if cx+w > limit {
			break
		}
		if cx >= 0 {
			b.cells[y][cx] = Cell{Ch: ch, Style: style}
			for i := 1; i < w; i++ {
				b.cells[y][cx+i] = Cell{Ch: 0, Style: style}
			}
		}
		cx += w
	}
	return cx - x
}

// Fill sets every cell in r (clipped to the buffer) to ch.
func (b *Buffer) Fill(r Rect, ch rune, style tcell.Style) {
	for y := r.Y; y < r.Y+r.H; y++ {
		if y < 0 || y >= b.h {
			continue
		}
		for x := r.X; x < r.X+r.W; x++ {
			if x < 0 || x >= b.w {
				continue
			}
			b.cells[y][x] = Cell{Ch: ch, Style: style}
		}
	}
}

// Blit copies the buffer to a tcell screen. Continuation cells of wide
// runes are skipped; tcell tracks those itself.
func (b *Buffer) Blit(s tcell.Screen) {
	for y, row := range b.cells {
		for x, cell := range row {
			if cell.Ch == 0 {
				continue
			}
			s.SetContent(x, y, cell.Ch, nil, cell.Style)
		}
	}
}

// Row returns the text content of row y with trailing spaces trimmed.
// Continuation cells contribute nothing. Intended for tests and debugging.
func (b *Buffer) Row(y int) string {
	if y < 0 || y >= b.h {
		return ""
	}
	var sb strings.Builder
	for _, cell := range b.cells[y] {
		if cell.Ch == 0 {
			continue
		}
		sb.WriteRune(cell.Ch)
	}
	return strings.TrimRight(sb.String(), " ")
}
