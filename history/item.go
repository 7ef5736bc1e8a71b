// Copyright © 2026 Recall contributors
// SPDX-License-Identifier: MIT
//
// File: history/item.go
// Summary: The shell history entry model shared by the store and the UI.

package history

import (
	"strings"
	"time"
)

// Item is one recorded shell command.
type Item struct {
	ID        string
	Command   string
	CWD       string
	Exit      int
	Duration  time.Duration
	Timestamp time.Time
	// Hostname is a compound "host:user" identifier. A bare host (no
	// colon) is accepted; User is then empty.
	Hostname string
}

// Success reports whether the command exited cleanly.
func (i Item) Success() bool {
	return i.Exit == 0
}

// Host returns the segment of Hostname before the first colon.
func (i Item) Host() string {
	host, _, _ := strings.Cut(i.Hostname, ":")
	return host
}

// User returns the segment of Hostname after the first colon, or "" when
// the identifier carries no user.
func (i Item) User() string {
	_, user, _ := strings.Cut(i.Hostname, ":")
	return user
}
