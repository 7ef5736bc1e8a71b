// Copyright © 2026 Recall contributors
// SPDX-License-Identifier: MIT
//
// File: app/app.go
// Summary: Interactive history search: query input, filtered list,
// syntax-colored preview of the selection.
// Usage: Run takes over the terminal and returns the accepted command.

package app

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"recall/history"
	"recall/search"
	"recall/theme"
	"recall/ui"
)

// Options wires the pieces the loop needs. Items are newest-first.
type Options struct {
	Items        []history.Item
	Columns      []ui.ColumnSpec
	Theme        *theme.Theme
	Invert       bool
	Mode         ui.SelectionMode
	Engine       search.Engine
	InitialQuery string
	Now          func() time.Time
}

// App holds one interactive session's state.
type App struct {
	opts     Options
	query    []rune
	engine   search.Engine
	filtered []history.Item
	state    ui.ListState
}

func New(opts Options) *App {
	if opts.Theme == nil {
		opts.Theme = theme.Default()
	}
	if opts.Engine == nil {
		opts.Engine = search.FuzzyEngine{}
	}
	if len(opts.Columns) == 0 {
		opts.Columns = ui.DefaultColumns()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	a := &App{
		opts:   opts,
		query:  []rune(opts.InitialQuery),
		engine: opts.Engine,
	}
	a.refilter()
	return a
}

// Query returns the current query text.
func (a *App) Query() string { return string(a.query) }

// Selected returns the currently selected item, if any.
func (a *App) Selected() (history.Item, bool) {
	if len(a.filtered) == 0 {
		return history.Item{}, false
	}
	return a.filtered[a.state.Selected], true
}

// refilter reapplies the engine to the full item list and resets the
// viewport. Matching runs over the normalized command, the same text the
// highlighter indexes.
func (a *App) refilter() {
	q := string(a.query)
	if q == "" {
		a.filtered = a.opts.Items
	} else {
		a.filtered = a.filtered[:0:0]
		for _, it := range a.opts.Items {
			if a.engine.Match(ui.NormalizeCommand(it.Command), q) {
				a.filtered = append(a.filtered, it)
			}
		}
	}
	a.state = ui.ListState{}
}

// moveSelection shifts the cursor by delta list positions, clamped.
func (a *App) moveSelection(delta int) {
	a.state.Select(a.state.Selected + delta)
	a.state.ClampSelection(len(a.filtered))
}

// cycleEngine switches to the next match engine in order.
func (a *App) cycleEngine() {
	names := search.Names()
	for i, name := range names {
		if name == a.engine.Name() {
			next, err := search.New(names[(i+1)%len(names)])
			if err == nil {
				a.engine = next
			}
			break
		}
	}
	a.refilter()
}

// appendRune adds a character to the query.
func (a *App) appendRune(r rune) {
	a.query = append(a.query, r)
	a.refilter()
}

// backspace removes the last query character.
func (a *App) backspace() {
	if len(a.query) > 0 {
		a.query = a.query[:len(a.query)-1]
		a.refilter()
	}
}

// clearQuery empties the query.
func (a *App) clearQuery() {
	if len(a.query) > 0 {
		a.query = a.query[:0]
		a.refilter()
	}
}

// handleKey processes one key event. Returns done=true when the session
// ends; accepted is valid only then.
func (a *App) handleKey(ev *tcell.EventKey) (accepted bool, done bool) {
	up, down := 1, -1
	if a.opts.Invert {
		up, down = -1, 1
	}
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false, true
	case tcell.KeyEnter:
		_, ok := a.Selected()
		return ok, ok
	case tcell.KeyUp, tcell.KeyCtrlP:
		a.moveSelection(up)
	case tcell.KeyDown, tcell.KeyCtrlN:
		a.moveSelection(down)
	case tcell.KeyPgUp:
		a.moveSelection(up * max(a.state.VisibleCount, 1))
	case tcell.KeyPgDn:
		a.moveSelection(down * max(a.state.VisibleCount, 1))
	case tcell.KeyHome:
		// Jump to the visual top of the list.
		if a.opts.Invert {
			a.state.Select(0)
		} else {
			a.state.Select(len(a.filtered) - 1)
		}
		a.state.ClampSelection(len(a.filtered))
	case tcell.KeyEnd:
		if a.opts.Invert {
			a.state.Select(len(a.filtered) - 1)
		} else {
			a.state.Select(0)
		}
		a.state.ClampSelection(len(a.filtered))
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		a.backspace()
	case tcell.KeyCtrlU:
		a.clearQuery()
	case tcell.KeyCtrlR:
		a.cycleEngine()
	case tcell.KeyRune:
		a.appendRune(ev.Rune())
	}
	return false, false
}

// Run drives the event loop until the user accepts or aborts. Returns
// the accepted command and whether one was accepted.
func Run(opts Options) (string, bool, error) {
	a := New(opts)

	screen, err := tcell.NewScreen()
	if err != nil {
		return "", false, err
	}
	if err := screen.Init(); err != nil {
		return "", false, err
	}
	defer screen.Fini()
	screen.SetStyle(tcell.StyleDefault)

	logrus.WithFields(logrus.Fields{
		"items":  len(opts.Items),
		"engine": a.engine.Name(),
	}).Info("search session started")

	for {
		w, h := screen.Size()
		buf := ui.NewBuffer(w, h)
		cx, cy := a.render(buf)
		screen.Clear()
		buf.Blit(screen)
		screen.ShowCursor(cx, cy)
		screen.Show()

		ev := screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			accepted, done := a.handleKey(ev)
			if done {
				if accepted {
					item, _ := a.Selected()
					logrus.WithField("command", item.Command).Info("command accepted")
					return item.Command, true, nil
				}
				logrus.Info("search session aborted")
				return "", false, nil
			}
		}
	}
}
