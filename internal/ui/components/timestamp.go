// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the flightdeck TUI.
package components

import (
	"math"
	"strconv"
	"time"
)

// =============================================================================
// TIMESTAMP FORMATTER
// =============================================================================

// FormatTimestamp renders a message timestamp relative to now.
//
// Rules, in order:
//   - under a minute: "Just now"
//   - under an hour: "N minute(s) ago"
//   - under a day: "N hour(s) ago"
//   - otherwise: absolute time and date, joined by a single space
//
// Counts round to the nearest unit, so 90 seconds reads "2 minutes ago".
func FormatTimestamp(t, now time.Time) string {
	diffSecs := int(math.Round(now.Sub(t).Seconds()))
	if diffSecs < 60 {
		return "Just now"
	}

	diffMins := int(math.Round(float64(diffSecs) / 60))
	if diffMins < 60 {
		return strconv.Itoa(diffMins) + " " + plural(diffMins, "minute") + " ago"
	}

	diffHours := int(math.Round(float64(diffMins) / 60))
	if diffHours < 24 {
		return strconv.Itoa(diffHours) + " " + plural(diffHours, "hour") + " ago"
	}

	return t.Format("3:04 PM") + " " + t.Format("1/2/2006")
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
