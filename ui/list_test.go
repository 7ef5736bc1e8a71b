// Copyright © 2026 Recall contributors
// SPDX-License-Identifier: MIT

package ui

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"recall/history"
	"recall/search"
	"recall/theme"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

func testItem(cmd string) history.Item {
	return history.Item{
		Command:   cmd,
		CWD:       "/home/alice",
		Exit:      0,
		Duration:  123 * time.Millisecond,
		Timestamp: testNow.Add(-65 * time.Second),
		Hostname:  "box:alice",
	}
}

func testList(items []history.Item) HistoryList {
	return HistoryList{
		Items:   items,
		Columns: DefaultColumns(),
		Theme:   theme.Default(),
		Now:     fixedNow,
	}
}

func TestRenderRow(t *testing.T) {
	l := testList([]history.Item{testItem("git status")})
	buf := NewBuffer(40, 5)
	state := &ListState{}
	l.Render(Rect{X: 0, Y: 0, W: 40, H: 5}, buf, state)

	if state.VisibleCount != 1 {
		t.Errorf("VisibleCount = %d, want 1", state.VisibleCount)
	}
	// Non-inverted: logical row 0 sits at the bottom of the area.
	if got, want := buf.Row(4), " 123ms  1m ago git status"; got != want {
		t.Errorf("bottom row = %q, want %q", got, want)
	}
	if got := buf.Row(0); got != "" {
		t.Errorf("top row = %q, want empty", got)
	}
}

func TestRenderInverted(t *testing.T) {
	items := []history.Item{testItem("first"), testItem("second")}
	l := testList(items)
	l.Inverted = true
	buf := NewBuffer(40, 5)
	l.Render(Rect{X: 0, Y: 0, W: 40, H: 5}, buf, &ListState{})

	if got, want := buf.Row(0), " 123ms  1m ago first"; got != want {
		t.Errorf("row 0 = %q, want %q", got, want)
	}
	if got, want := buf.Row(1), " 123ms  1m ago second"; got != want {
		t.Errorf("row 1 = %q, want %q", got, want)
	}
}

func TestRenderScrollsToSelection(t *testing.T) {
	items := make([]history.Item, 20)
	for i := range items {
		items[i] = testItem(fmt.Sprintf("cmd-%02d", i))
	}
	l := testList(items)
	buf := NewBuffer(40, 5)
	state := &ListState{Selected: 19}
	l.Render(Rect{X: 0, Y: 0, W: 40, H: 5}, buf, state)

	if state.Offset != 15 || state.VisibleCount != 5 {
		t.Fatalf("Offset = %d, VisibleCount = %d, want 15, 5", state.Offset, state.VisibleCount)
	}
	// Item 15 at the bottom, item 19 (selected) at the top.
	if got, want := buf.Row(4), " 123ms  1m ago cmd-15"; got != want {
		t.Errorf("bottom row = %q, want %q", got, want)
	}
	if got, want := buf.Row(0), " 123ms  1m ago cmd-19"; got != want {
		t.Errorf("top row = %q, want %q", got, want)
	}
}

func TestRenderIdempotent(t *testing.T) {
	items := []history.Item{testItem("ls -la"), testItem("make test")}
	l := testList(items)
	l.Highlight = Highlighter{Engine: search.SubstringEngine{}, Query: "ls"}
	area := Rect{X: 0, Y: 0, W: 30, H: 4}

	render := func() *Buffer {
		buf := NewBuffer(30, 4)
		state := &ListState{Selected: 1}
		l.Render(area, buf, state)
		l.Render(area, buf, state)
		return buf
	}
	a, b := render(), render()
	if !reflect.DeepEqual(a.cells, b.cells) {
		t.Error("re-rendering identical state produced a different grid")
	}
}

func TestRenderEmptyAndDegenerate(t *testing.T) {
	l := testList(nil)
	buf := NewBuffer(40, 5)
	state := &ListState{VisibleCount: 3}
	l.Render(Rect{X: 0, Y: 0, W: 40, H: 5}, buf, state)
	if state.VisibleCount != 0 {
		t.Errorf("empty list VisibleCount = %d, want 0", state.VisibleCount)
	}

	l2 := testList([]history.Item{testItem("ls")})
	state2 := &ListState{}
	l2.Render(Rect{X: 0, Y: 0, W: 0, H: 5}, buf, state2)
	if state2.VisibleCount != 0 {
		t.Errorf("zero-width VisibleCount = %d, want 0", state2.VisibleCount)
	}
	for y := 0; y < 5; y++ {
		if buf.Row(y) != "" {
			t.Errorf("row %d = %q, want empty", y, buf.Row(y))
		}
	}
}

func TestSelectionBackgroundFill(t *testing.T) {
	l := testList([]history.Item{testItem("ls")})
	buf := NewBuffer(40, 3)
	l.Render(Rect{X: 0, Y: 0, W: 40, H: 3}, buf, &ListState{Selected: 0})

	wantBG := theme.Default().SelectionBG()
	// The selected row's background must span the full width.
	for x := 0; x < 40; x++ {
		_, bg, _ := buf.Cell(x, 2).Style.Decompose()
		if bg != wantBG {
			t.Fatalf("cell (%d, 2) bg = %v, want selection background", x, bg)
		}
	}
	// Non-selected rows keep the default background.
	_, bg, _ := buf.Cell(0, 1).Style.Decompose()
	if bg == wantBG {
		t.Error("unselected row carries the selection background")
	}
}

func TestSelectionReverse(t *testing.T) {
	l := testList([]history.Item{testItem("ls")})
	l.Mode = SelectReverse
	buf := NewBuffer(20, 2)
	l.Render(Rect{X: 0, Y: 0, W: 20, H: 2}, buf, &ListState{Selected: 0})

	_, _, attrs := buf.Cell(0, 1).Style.Decompose()
	if attrs&tcell.AttrReverse == 0 {
		t.Error("selected row should be reversed")
	}
	_, bg, _ := buf.Cell(0, 1).Style.Decompose()
	if bg == theme.Default().SelectionBG() {
		t.Error("reverse mode must not also apply the background overlay")
	}
}

func TestCommandHighlighting(t *testing.T) {
	l := testList([]history.Item{testItem("git status")})
	l.Highlight = Highlighter{Engine: search.SubstringEngine{}, Query: "status"}
	buf := NewBuffer(40, 2)
	l.Render(Rect{X: 0, Y: 0, W: 40, H: 2}, buf, &ListState{Selected: 1})

	// Command starts at x=15: padding + 5 + sep + 7 + sep. "git " spans
	// 15..18, "status" 19..24.
	row := 1 // logical row 0, non-inverted, height 2
	for x := 19; x <= 24; x++ {
		_, _, attrs := buf.Cell(x, row).Style.Decompose()
		if attrs&tcell.AttrBold == 0 {
			t.Errorf("cell (%d, %d) not bold, want matched char bold", x, row)
		}
	}
	for x := 15; x <= 18; x++ {
		_, _, attrs := buf.Cell(x, row).Style.Decompose()
		if attrs&tcell.AttrBold != 0 {
			t.Errorf("cell (%d, %d) bold, want unmatched char plain", x, row)
		}
	}
}

func TestCommandHighlightOnSelectedRow(t *testing.T) {
	l := testList([]history.Item{testItem("git status")})
	l.Highlight = Highlighter{Engine: search.SubstringEngine{}, Query: "git"}
	buf := NewBuffer(40, 2)
	l.Render(Rect{X: 0, Y: 0, W: 40, H: 2}, buf, &ListState{Selected: 0})

	wantFG, _, _ := theme.Default().Style(theme.RoleAlertWarn).Decompose()
	fg, _, attrs := buf.Cell(15, 1).Style.Decompose()
	if attrs&tcell.AttrBold == 0 {
		t.Error("matched char on selected row should be bold")
	}
	if fg != wantFG {
		t.Errorf("matched char fg = %v, want alert tone %v", fg, wantFG)
	}
}

func TestCommandStopsAtRowEdge(t *testing.T) {
	long := "echo aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	l := testList([]history.Item{testItem(long)})
	buf := NewBuffer(30, 2)
	l.Render(Rect{X: 0, Y: 0, W: 30, H: 2}, buf, &ListState{Selected: 1})

	// Nothing may be written beyond the area; the row is simply cut.
	if got := buf.Row(1); len([]rune(got)) > 30 {
		t.Errorf("row overflowed: %q", got)
	}
}

func TestDatetimeColumn(t *testing.T) {
	cols := []ColumnSpec{{Kind: ColDatetime, Width: 16}, {Kind: ColCommand, Expand: true}}
	item := testItem("ls")
	l := testList([]history.Item{item})
	l.Columns = cols
	buf := NewBuffer(40, 1)
	l.Render(Rect{X: 0, Y: 0, W: 40, H: 1}, buf, &ListState{Selected: 1})

	if got, want := buf.Row(0), " 2026-03-01 11:58 ls"; got != want {
		t.Errorf("row = %q, want %q", got, want)
	}

	item.Timestamp = time.Time{}
	l.Items = []history.Item{item}
	buf2 := NewBuffer(40, 1)
	l.Render(Rect{X: 0, Y: 0, W: 40, H: 1}, buf2, &ListState{Selected: 1})
	if got, want := buf2.Row(0), " ????-??-?? ??:?? ls"; got != want {
		t.Errorf("placeholder row = %q, want %q", got, want)
	}
}

func TestDirectoryColumn(t *testing.T) {
	cols := []ColumnSpec{{Kind: ColDirectory, Width: 10}, {Kind: ColCommand, Expand: true}}
	item := testItem("ls")
	item.CWD = "/very/long/path/that/is/too/long"
	l := testList([]history.Item{item})
	l.Columns = cols
	buf := NewBuffer(40, 1)
	l.Render(Rect{X: 0, Y: 0, W: 40, H: 1}, buf, &ListState{Selected: 1})

	if got, want := buf.Row(0), " ...oo/long ls"; got != want {
		t.Errorf("row = %q, want %q", got, want)
	}
}

func TestHostUserColumns(t *testing.T) {
	cols := []ColumnSpec{
		{Kind: ColHost, Width: 8},
		{Kind: ColUser, Width: 6},
		{Kind: ColCommand, Expand: true},
	}
	item := testItem("ls")
	item.Hostname = "verylonghostname:alice"
	l := testList([]history.Item{item})
	l.Columns = cols
	buf := NewBuffer(40, 1)
	l.Render(Rect{X: 0, Y: 0, W: 40, H: 1}, buf, &ListState{Selected: 1})

	// Host truncated from the right, user fits and is padded.
	if got, want := buf.Row(0), " very...  alice  ls"; got != want {
		t.Errorf("row = %q, want %q", got, want)
	}
}

func TestExitColumnStyles(t *testing.T) {
	cols := []ColumnSpec{{Kind: ColExit, Width: 3}, {Kind: ColCommand, Expand: true}}
	ok := testItem("true")
	bad := testItem("false")
	bad.Exit = 1
	l := testList([]history.Item{ok, bad})
	l.Columns = cols
	buf := NewBuffer(20, 2)
	l.Render(Rect{X: 0, Y: 0, W: 20, H: 2}, buf, &ListState{Selected: 0})

	infoFG, _, _ := theme.Default().Style(theme.RoleAlertInfo).Decompose()
	errFG, _, _ := theme.Default().Style(theme.RoleAlertError).Decompose()

	// Exit status is right-aligned in a 3-wide column starting at x=1.
	fg, _, _ := buf.Cell(3, 1).Style.Decompose() // item 0 ("0"), bottom row
	if fg != infoFG {
		t.Errorf("success exit fg = %v, want %v", fg, infoFG)
	}
	fg, _, _ = buf.Cell(3, 0).Style.Decompose() // item 1 ("1"), row above
	if fg != errFG {
		t.Errorf("failure exit fg = %v, want %v", fg, errFG)
	}
}

func TestTruncateHelpers(t *testing.T) {
	if got := truncateLeft("/very/long/path/that/is/too/long", 10); got != "...oo/long" {
		t.Errorf("truncateLeft = %q, want %q", got, "...oo/long")
	}
	if got := truncateLeft("short", 10); got != "short" {
		t.Errorf("truncateLeft(short) = %q", got)
	}
	if got := truncateLeft("abcdef", 3); got != "abcdef" {
		t.Errorf("truncateLeft below minimum width = %q, want unchanged", got)
	}
	if got := truncateRight("verylonghost", 8); got != "very..." {
		t.Errorf("truncateRight = %q, want %q", got, "very...")
	}
	if got := truncateRight("host", 8); got != "host" {
		t.Errorf("truncateRight(host) = %q", got)
	}
	if got := truncateRight("abcdefgh", 4); got != "..." {
		t.Errorf("truncateRight at minimum width = %q, want %q", got, "...")
	}
}

func TestFutureTimestampClampsToZero(t *testing.T) {
	item := testItem("ls")
	item.Timestamp = testNow.Add(time.Hour)
	l := testList([]history.Item{item})
	buf := NewBuffer(40, 1)
	l.Render(Rect{X: 0, Y: 0, W: 40, H: 1}, buf, &ListState{Selected: 1})

	if got, want := buf.Row(0), " 123ms 0ns ago ls"; got != want {
		t.Errorf("row = %q, want %q", got, want)
	}
}
