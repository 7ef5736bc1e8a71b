// Copyright © 2026 Recall contributors
// SPDX-License-Identifier: MIT
//
// File: ui/list.go
// Summary: The history list renderer: per-row column layout, match
// highlighting and selection overlay, written into a Buffer.
// Notes: Rendering is deterministic; the same state, items, columns and
// clock always produce the same grid.

package ui

import (
	"strconv"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"recall/format"
	"recall/history"
	"recall/theme"
)

// datetimePlaceholder substitutes for an unformattable timestamp. Same
// width as the real thing so columns stay aligned.
const datetimePlaceholder = "????-??-?? ??:??"

// HistoryList renders a window of history items into a buffer. It holds
// no state of its own; the caller owns ListState across frames.
type HistoryList struct {
	Items     []history.Item
	Columns   []ColumnSpec
	Theme     *theme.Theme
	Inverted  bool
	Mode      SelectionMode
	Now       func() time.Time
	Highlight Highlighter
}

// Render draws the visible window into buf and updates state's offset
// and visible count. An empty list or degenerate area renders nothing.
func (l HistoryList) Render(area Rect, buf *Buffer, state *ListState) {
	if area.W < 1 || area.H < 1 || len(l.Items) == 0 {
		state.VisibleCount = 0
		return
	}

	start, end := bounds(state.Selected, state.Offset, area.H, len(l.Items))
	state.Offset = start
	state.VisibleCount = end - start

	now := l.Now
	if now == nil {
		now = time.Now
	}

	widths := columnWidths(l.Columns, area.W)
	base := l.Theme.Style(theme.RoleBase)

	d := &drawState{
		buf:      buf,
		area:     area,
		inverted: l.Inverted,
		styler:   selectionStyler{mode: l.Mode, theme: l.Theme, state: state},
		theme:    l.Theme,
		now:      now,
	}

	for _, item := range l.Items[start:end] {
		d.draw(" ", base)
		for i, col := range l.Columns {
			if i > 0 {
				d.draw(" ", base)
			}
			l.renderColumn(d, col.Kind, widths[i], item)
		}
		d.fillRow()

		d.y++
		d.x = 0
	}
}

func (l HistoryList) renderColumn(d *drawState, kind ColumnKind, width int, item history.Item) {
	switch kind {
	case ColDuration:
		d.duration(item, width)
	case ColTime:
		d.timeSince(item, width)
	case ColDatetime:
		d.datetime(item, width)
	case ColDirectory:
		d.alignLeft(truncateLeft(item.CWD, width), width, d.theme.Style(theme.RoleAnnotation))
	case ColHost:
		d.alignLeft(truncateRight(item.Host(), width), width, d.theme.Style(theme.RoleAnnotation))
	case ColUser:
		d.alignLeft(truncateRight(item.User(), width), width, d.theme.Style(theme.RoleAnnotation))
	case ColExit:
		d.alignRight(strconv.Itoa(item.Exit), width, d.statusStyle(item))
	case ColCommand:
		positions := l.Highlight.Positions(NormalizeCommand(item.Command))
		d.command(item, width, positions)
	}
}

// drawState is the per-frame draw cursor. x is the write position within
// the current row, y the logical row index; the physical row depends on
// whether the layout is inverted.
type drawState struct {
	buf      *Buffer
	area     Rect
	x, y     int
	inverted bool
	styler   selectionStyler
	theme    *theme.Theme
	now      func() time.Time
}

// rowY maps the logical row to a physical buffer row. Inverted layouts
// grow downward from the top; the default grows upward from the bottom,
// newest item nearest the bottom edge.
func (d *drawState) rowY() int {
	if d.inverted {
		return d.area.Y + d.y
	}
	return d.area.Y + d.area.H - d.y - 1
}

// draw writes text at the cursor, clipped to the remaining row width,
// and advances x by the cells consumed. Writes past the right edge are
// silently dropped.
func (d *drawState) draw(text string, st tcell.Style) {
	remaining := d.area.W - d.x
	if remaining <= 0 {
		return
	}
	st = d.styler.apply(d.y, st)
	d.x += d.buf.SetString(d.area.X+d.x, d.rowY(), text, st, remaining)
}

// statusStyle colors by exit status: info tone for success, error tone
// for failure.
func (d *drawState) statusStyle(item history.Item) tcell.Style {
	if item.Success() {
		return d.theme.Style(theme.RoleAlertInfo)
	}
	return d.theme.Style(theme.RoleAlertError)
}

func (d *drawState) duration(item history.Item, width int) {
	d.alignRight(format.Duration(item.Duration), width, d.statusStyle(item))
}

func (d *drawState) timeSince(item history.Item, width int) {
	since := d.now().Sub(item.Timestamp)
	// A timestamp "in the future" (clock skew) renders as zero, not as
	// a negative duration.
	if since < 0 {
		since = 0
	}
	d.alignRight(format.Duration(since)+" ago", width, d.theme.Style(theme.RoleGuidance))
}

func (d *drawState) datetime(item history.Item, width int) {
	s := datetimePlaceholder
	if !item.Timestamp.IsZero() {
		s = item.Timestamp.Format("2006-01-02 15:04")
	}
	d.alignLeft(s, width, d.theme.Style(theme.RoleGuidance))
}

// alignRight pads text with leading spaces to width. Text wider than the
// column is clipped.
func (d *drawState) alignRight(text string, width int, st tcell.Style) {
	w := runewidth.StringWidth(text)
	if w > width {
		text = runewidth.Truncate(text, width, "")
		w = width
	}
	if pad := width - w; pad > 0 {
		d.draw(strings.Repeat(" ", pad), tcell.StyleDefault)
	}
	d.draw(text, st)
}

// alignLeft pads text with trailing spaces to width.
func (d *drawState) alignLeft(text string, width int, st tcell.Style) {
	w := runewidth.StringWidth(text)
	if w > width {
		text = runewidth.Truncate(text, width, "")
		w = width
	}
	d.draw(text, st)
	if pad := width - w; pad > 0 {
		d.draw(strings.Repeat(" ", pad), tcell.StyleDefault)
	}
}

// truncateLeft keeps the tail of a path-like value, marking the cut with
// a leading ellipsis: "/very/long/path" at width 10 -> "...ng/path".
func truncateLeft(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width || width < 4 {
		return s
	}
	return "..." + string(runes[len(runes)-(width-3):])
}

// truncateRight keeps the head, marking the cut with a trailing ellipsis.
func truncateRight(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width || width < 4 {
		return s
	}
	keep := width - 4
	if keep < 0 {
		keep = 0
	}
	return string(runes[:keep]) + "..."
}

// command draws the item's command token by token, emphasizing matched
// characters. The position counter walks the normalized representation
// (tokens joined by single spaces) so lookups stay aligned with the
// match engine. Drawing stops as soon as the column budget is consumed;
// overflow is dropped, never wrapped.
func (d *drawState) command(item history.Item, width int, positions map[int]struct{}) {
	base := d.theme.Style(theme.RoleBase)
	selected := d.styler.selected(d.y)
	budget := d.x + width

	pos := 0
	for ti, token := range strings.Fields(EscapeControl(item.Command)) {
		if d.x >= budget {
			return
		}
		if ti > 0 {
			d.draw(" ", base)
			pos++
		}
		for _, ch := range token {
			if d.x >= budget {
				return
			}
			st := base
			if _, hit := positions[pos]; hit {
				if selected {
					// Bold alone vanishes against the selection
					// overlay; shift the color as well.
					st = d.theme.Style(theme.RoleAlertWarn)
				}
				st = st.Bold(true)
			}
			d.draw(string(ch), st)
			pos++
		}
	}
}

// fillRow pads the unused tail of the selected row so the selection bar
// spans the full width. A no-op on other rows.
func (d *drawState) fillRow() {
	if !d.styler.selected(d.y) {
		return
	}
	remaining := d.area.W - d.x
	if remaining > 0 {
		d.draw(strings.Repeat(" ", remaining), d.styler.fillStyle())
	}
}
