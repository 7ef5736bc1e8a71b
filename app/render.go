// Copyright © 2026 Recall contributors
// SPDX-License-Identifier: MIT
//
// File: app/render.go
// Summary: Composes the search screen into a cell buffer: history list,
// preview bar, and query input line.

package app

import (
	"fmt"

	"recall/syntax"
	"recall/theme"
	"recall/ui"
)

const queryPrompt = "> "

// render draws the whole screen into buf and returns the terminal
// cursor position for the query input line.
func (a *App) render(buf *ui.Buffer) (cx, cy int) {
	w, h := buf.Size()
	if w <= 0 || h <= 0 {
		return 0, 0
	}

	listArea := ui.Rect{X: 0, Y: 0, W: w, H: h - 2}
	previewY, inputY := h-2, h-1
	if a.opts.Invert {
		listArea.Y = 2
		previewY, inputY = 1, 0
	}
	if h < 3 {
		listArea = ui.Rect{X: 0, Y: 0, W: w, H: 0}
		previewY, inputY = -1, h-1
	}

	list := ui.HistoryList{
		Items:    a.filtered,
		Columns:  a.opts.Columns,
		Theme:    a.opts.Theme,
		Inverted: a.opts.Invert,
		Mode:     a.opts.Mode,
		Now:      a.opts.Now,
		Highlight: ui.Highlighter{
			Engine: a.engine,
			Query:  string(a.query),
		},
	}
	list.Render(listArea, buf, &a.state)

	if previewY >= 0 {
		a.renderPreview(buf, previewY, w)
	}
	return a.renderInput(buf, inputY, w)
}

// renderPreview shows the full selected command, syntax colored, on one
// line.
func (a *App) renderPreview(buf *ui.Buffer, y, w int) {
	item, ok := a.Selected()
	if !ok {
		return
	}
	x := 0
	for _, frag := range syntax.Colorize(ui.NormalizeCommand(item.Command), a.opts.Theme.Style(theme.RoleBase)) {
		if x >= w {
			break
		}
		x += buf.SetString(x, y, frag.Text, frag.Style, w-x)
	}
}

// renderInput draws the prompt, query, and the match counter with the
// active engine name right aligned. Returns the cursor cell.
func (a *App) renderInput(buf *ui.Buffer, y, w int) (cx, cy int) {
	base := a.opts.Theme.Style(theme.RoleBase)
	x := buf.SetString(0, y, queryPrompt, a.opts.Theme.Style(theme.RoleGuidance), w)
	x += buf.SetString(x, y, string(a.query), base, w-x)

	counter := fmt.Sprintf("%d/%d [%s]", len(a.filtered), len(a.opts.Items), a.engine.Name())
	if cw := len(counter); cw < w-x-1 {
		buf.SetString(w-cw, y, counter, a.opts.Theme.Style(theme.RoleAnnotation), cw)
	}
	return x, y
}
