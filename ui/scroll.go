// Copyright © 2026 Recall contributors
// SPDX-License-Identifier: MIT
//
// File: ui/scroll.go
// Summary: Viewport scrolling policy for the history list.
// Notes: The window is lazy; it only moves when the selection would leave
// it, which keeps the list stable during ordinary cursor movement.

package ui

// ListState is the scroll state the caller owns across frames. Render
// recomputes Offset and VisibleCount; Selected moves only through the
// navigation methods.
type ListState struct {
	Offset       int
	Selected     int
	VisibleCount int
}

// Select moves the selection to an absolute index.
func (s *ListState) Select(i int) {
	if i < 0 {
		i = 0
	}
	s.Selected = i
}

// ClampSelection pins the selection inside [0, length).
func (s *ListState) ClampSelection(length int) {
	if length <= 0 {
		s.Selected = 0
		return
	}
	if s.Selected >= length {
		s.Selected = length - 1
	}
	if s.Selected < 0 {
		s.Selected = 0
	}
}

// maxScrollMargin caps the slack kept below the cursor while scrolling.
const maxScrollMargin = 10

// bounds computes the visible window [start, end) for a list of the given
// length. Guarantees, for height > 0 and 0 <= selected < length:
// start <= selected < end, end-start <= height, 0 <= start, end <= length.
func bounds(selected, offset, height, length int) (int, int) {
	if height <= 0 || length <= 0 {
		return 0, 0
	}
	if offset > length-1 {
		offset = length - 1
	}

	margin := height
	if margin > maxScrollMargin {
		margin = maxScrollMargin
	}
	if rest := length - selected; margin > rest {
		margin = rest
	}

	var start, end int
	switch {
	case offset+height < selected+margin:
		// Selection ran past the bottom slack: pin the bottom edge
		// margin rows below it.
		end = selected + margin
		start = end - height
	case selected < offset:
		// Selection moved above the window: pin the top edge to it.
		start = selected
		end = selected + height
	default:
		start = offset
		end = offset + height
	}

	if start < 0 {
		start = 0
	}
	if end > length {
		end = length
	}
	return start, end
}
