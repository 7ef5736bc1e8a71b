// Copyright © 2026 Recall contributors
// SPDX-License-Identifier: MIT
//
// File: format/duration.go
// Summary: Compact single-unit duration formatting for narrow list columns.

package format

import (
	"strconv"
	"time"
)

type unit struct {
	suffix string
	nanos  int64
}

// Largest unit first. A month is 30 days and a year 365 days, which is
// coarse but fine for "how long ago" display.
var units = []unit{
	{"y", 365 * 24 * int64(time.Hour)},
	{"mo", 30 * 24 * int64(time.Hour)},
	{"d", 24 * int64(time.Hour)},
	{"h", int64(time.Hour)},
	{"m", int64(time.Minute)},
	{"s", int64(time.Second)},
	{"ms", int64(time.Millisecond)},
	{"us", int64(time.Microsecond)},
}

// Duration renders d using its largest whole unit, e.g. "123ms", "59s",
// "3d". Negative durations render as zero.
func Duration(d time.Duration) string {
	n := int64(d)
	if n < 0 {
		n = 0
	}
	for _, u := range units {
		if n >= u.nanos {
			return strconv.FormatInt(n/u.nanos, 10) + u.suffix
		}
	}
	return strconv.FormatInt(n, 10) + "ns"
}
