// Copyright © 2026 Recall contributors
// SPDX-License-Identifier: MIT
//
// File: syntax/colorize.go
// Summary: Colorizes a shell command into styled fragments for the
// preview bar, using Chroma's bash lexer.

package syntax

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
)

const styleName = "catppuccin-mocha"

// Fragment is a run of text with a single style.
type Fragment struct {
	Text  string
	Style tcell.Style
}

// Colorize tokenizes command as shell and maps token colors onto base.
// On any lexer trouble the whole command comes back as one base-styled
// fragment; the preview never fails.
func Colorize(command string, base tcell.Style) []Fragment {
	if command == "" {
		return nil
	}
	lexer := lexers.Get("bash")
	if lexer == nil {
		lexer = lexers.Fallback
	}
	it, err := lexer.Tokenise(nil, command)
	if err != nil {
		return []Fragment{{Text: command, Style: base}}
	}
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}

	var frags []Fragment
	for tok := it(); tok != chroma.EOF; tok = it() {
		st := base
		entry := style.Get(tok.Type)
		if entry.Colour.IsSet() {
			st = st.Foreground(tcell.NewRGBColor(
				int32(entry.Colour.Red()),
				int32(entry.Colour.Green()),
				int32(entry.Colour.Blue()),
			))
		}
		if entry.Bold == chroma.Yes {
			st = st.Bold(true)
		}
		frags = append(frags, Fragment{Text: tok.Value, Style: st})
	}
	// Some lexers append a trailing newline the input never had.
	if n := len(frags); n > 0 {
		last := strings.TrimRight(frags[n-1].Text, "\n")
		if last == "" {
			frags = frags[:n-1]
		} else {
			frags[n-1].Text = last
		}
	}
	return frags
}
