// Copyright © 2026 Recall contributors
// SPDX-License-Identifier: MIT
//
// File: ui/highlight.go
// Summary: Adapts a search engine to per-character match positions over
// the normalized command text.

package ui

import (
	"strings"
	"unicode"

	"recall/search"
)

// Highlighter resolves which characters of a command matched the active
// query. Positions are rune offsets into the normalized command.
type Highlighter struct {
	Engine search.Engine
	Query  string
}

// Positions returns the set of matched rune offsets for the normalized
// command. A nil engine or empty query highlights nothing.
func (h Highlighter) Positions(normalized string) map[int]struct{} {
	if h.Engine == nil || h.Query == "" {
		return nil
	}
	idx := h.Engine.HighlightIndices(normalized, h.Query)
	if len(idx) == 0 {
		return nil
	}
	set := make(map[int]struct{}, len(idx))
	for _, i := range idx {
		set[i] = struct{}{}
	}
	return set
}

// EscapeControl replaces ASCII control characters with printable escapes:
// newline, tab and carriage return become backslash sequences, the rest
// become caret notation ("^A", DEL is "^?"). Other runes pass through.
func EscapeControl(s string) string {
	if !strings.ContainsFunc(s, unicode.IsControl) {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n':
			sb.WriteString(`\n`)
		case r == '\t':
			sb.WriteString(`\t`)
		case r == '\r':
			sb.WriteString(`\r`)
		case r == 0x7f:
			sb.WriteString("^?")
		case r < 0x20:
			sb.WriteByte('^')
			sb.WriteByte(byte(r) + 0x40)
		default:
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// NormalizeCommand produces the canonical form used for match-position
// indexing: control characters escaped and runs of whitespace collapsed
// to single spaces. The renderer walks the same representation so that
// highlight offsets stay aligned.
func NormalizeCommand(cmd string) string {
	return strings.Join(strings.Fields(EscapeControl(cmd)), " ")
}
