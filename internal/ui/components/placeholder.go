// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/flightdeck-tui/internal/ui/styles"
)

// =============================================================================
// EMPTY STATE PLACEHOLDER
// =============================================================================

// RenderPlaceholder draws a muted empty-state line, centered in the given
// width. Panels render exactly one placeholder when they have nothing to
// show; content and placeholder are never visible together.
func RenderPlaceholder(theme *styles.Theme, text string, width int) string {
	style := theme.Placeholder
	if width > 0 {
		style = style.Width(width).Align(lipgloss.Center)
	}
	return style.Render(text)
}

// RenderErrorLine draws an error notice in the standard error style.
func RenderErrorLine(theme *styles.Theme, text string) string {
	return theme.ErrorText.Render(text)
}
