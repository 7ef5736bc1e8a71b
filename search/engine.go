// Copyright © 2026 Recall contributors
// SPDX-License-Identifier: MIT
//
// File: search/engine.go
// Summary: Pluggable match engines for the history search UI.
// Notes: Highlight indices are RUNE offsets into the candidate string;
// every engine must return that unit and nothing else.

package search

import "fmt"

// Engine decides whether a command matches a query and which characters
// of the command satisfied it.
type Engine interface {
	// Name identifies the engine in config and the status line.
	Name() string

	// Match reports whether command satisfies query. An empty query
	// matches everything.
	Match(command, query string) bool

	// HighlightIndices returns the rune offsets of the characters in
	// command that matched query, in ascending order. Empty when the
	// command does not match.
	HighlightIndices(command, query string) []int
}

// New returns the engine with the given config name.
func New(name string) (Engine, error) {
	switch name {
	case "", "fuzzy":
		return FuzzyEngine{}, nil
	case "prefix":
		return PrefixEngine{}, nil
	case "substring":
		return SubstringEngine{}, nil
	}
	return nil, fmt.Errorf("unknown search engine %q", name)
}

// Names lists the selectable engines in cycling order.
func Names() []string {
	return []string{"fuzzy", "prefix", "substring"}
}

// byteToRuneIndices converts byte offsets into s to rune offsets,
// dropping offsets that do not land on a rune boundary.
func byteToRuneIndices(s string, offsets []int) []int {
	if len(offsets) == 0 {
		return nil
	}
	byteToRune := make(map[int]int, len(s))
	r := 0
	for b := range s {
		byteToRune[b] = r
		r++
	}
	out := make([]int, 0, len(offsets))
	for _, b := range offsets {
		if ri, ok := byteToRune[b]; ok {
			out = append(out, ri)
		}
	}
	return out
}
