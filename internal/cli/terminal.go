// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli implements the non-TUI command surface of flightdeck.
package cli

import (
	"os"

	"golang.org/x/term"
)

// =============================================================================
// TERMINAL HELPERS
// =============================================================================

// IsTTY reports whether stdout is attached to a terminal.
// Markdown rendering and spinners are disabled when piping output.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// TerminalWidth returns the current terminal width, or a sane default
// when it cannot be determined (e.g. output is piped).
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}
