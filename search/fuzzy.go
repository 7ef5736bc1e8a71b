// Copyright © 2026 Recall contributors
// SPDX-License-Identifier: MIT
//
// File: search/fuzzy.go
// Summary: Fuzzy match engine backed by sahilm/fuzzy.

package search

import "github.com/sahilm/fuzzy"

// FuzzyEngine matches queries as a subsequence with the usual fuzzy
// ranking heuristics.
type FuzzyEngine struct{}

func (FuzzyEngine) Name() string { return "fuzzy" }

func (FuzzyEngine) Match(command, query string) bool {
	if query == "" {
		return true
	}
	return len(fuzzy.Find(query, []string{command})) > 0
}

func (FuzzyEngine) HighlightIndices(command, query string) []int {
	if query == "" {
		return nil
	}
	matches := fuzzy.Find(query, []string{command})
	if len(matches) == 0 {
		return nil
	}
	// fuzzy reports byte offsets; the renderer counts runes.
	return byteToRuneIndices(command, matches[0].MatchedIndexes)
}
