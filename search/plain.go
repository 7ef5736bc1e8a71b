// Copyright © 2026 Recall contributors
// SPDX-License-Identifier: MIT
//
// File: search/plain.go
// Summary: Prefix and substring match engines.

package search

import "strings"

// PrefixEngine matches commands that start with the query, ignoring case.
type PrefixEngine struct{}

func (PrefixEngine) Name() string { return "prefix" }

func (PrefixEngine) Match(command, query string) bool {
	if query == "" {
		return true
	}
	return strings.HasPrefix(strings.ToLower(command), strings.ToLower(query))
}

func (PrefixEngine) HighlightIndices(command, query string) []int {
	if query == "" || !(PrefixEngine{}).Match(command, query) {
		return nil
	}
	n := len([]rune(query))
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// SubstringEngine matches commands containing the query, ignoring case.
type SubstringEngine struct{}

func (SubstringEngine) Name() string { return "substring" }

func (SubstringEngine) Match(command, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(strings.ToLower(command), strings.ToLower(query))
}

func (SubstringEngine) HighlightIndices(command, query string) []int {
	if query == "" {
		return nil
	}
	// Case-insensitive search positioned in rune space. Lowercasing can
	// change byte lengths for some scripts, so walk runes directly.
	cr := []rune(strings.ToLower(command))
	qr := []rune(strings.ToLower(query))
	if len(qr) == 0 || len(qr) > len(cr) {
		return nil
	}
	for start := 0; start+len(qr) <= len(cr); start++ {
		match := true
		for j, q := range qr {
			if cr[start+j] != q {
				match = false
				break
			}
		}
		if match {
			out := make([]int, len(qr))
			for j := range out {
				out[j] = start + j
			}
			return out
		}
	}
	return nil
}
