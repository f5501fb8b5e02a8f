// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/jeranaias/flightdeck-tui/internal/ui/styles"
	"github.com/jeranaias/flightdeck-tui/internal/util"
)

// =============================================================================
// STATUS BAR
// =============================================================================

// Shortcut is one key hint in the status bar.
type Shortcut struct {
	Key  string
	Desc string
}

// StatusBar renders the bottom bar: connectivity on the left, key hints
// on the right.
type StatusBar struct {
	Width     int
	Connected bool
	Checked   bool // false until the startup health probe resolves
	Shortcuts []Shortcut
}

// Render draws the status bar at the configured width.
func (s StatusBar) Render(theme *styles.Theme) string {
	var left string
	switch {
	case !s.Checked:
		left = theme.ShortcutDesc.Render("connecting…")
	case s.Connected:
		left = theme.Connected.Render("● connected")
	default:
		left = theme.Disconnected.Render("● offline")
	}

	var hints []string
	for _, sc := range s.Shortcuts {
		hints = append(hints, theme.ShortcutKey.Render(sc.Key)+" "+theme.ShortcutDesc.Render(sc.Desc))
	}
	right := strings.Join(hints, "  ")

	gap := s.Width - util.StringWidth(stripForWidth(left)) - util.StringWidth(stripForWidth(right)) - 2
	if gap < 1 {
		gap = 1
	}

	return theme.StatusBar.Width(s.Width).Render(left + strings.Repeat(" ", gap) + right)
}

// stripForWidth removes ANSI escape sequences so width math sees only
// printable cells.
func stripForWidth(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if r == 'm' {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
