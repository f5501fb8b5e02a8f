// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/flightdeck-tui/internal/ui/styles"
)

// =============================================================================
// TAB BAR
// =============================================================================

// Tab is a single labeled tab.
type Tab struct {
	ID    string
	Label string
}

// TabBar tracks a set of tabs with exactly one active at a time.
type TabBar struct {
	Tabs   []Tab
	active string
}

// NewTabBar creates a tab bar with the first tab active.
func NewTabBar(tabs ...Tab) TabBar {
	bar := TabBar{Tabs: tabs}
	if len(tabs) > 0 {
		bar.active = tabs[0].ID
	}
	return bar
}

// Active returns the ID of the active tab.
func (b TabBar) Active() string {
	return b.active
}

// Switch activates the tab with the given ID. Unknown IDs leave the bar
// unchanged; switching to the active tab is a no-op.
func (b TabBar) Switch(id string) TabBar {
	for _, tab := range b.Tabs {
		if tab.ID == id {
			b.active = id
			return b
		}
	}
	return b
}

// Next activates the tab after the active one, wrapping around.
func (b TabBar) Next() TabBar {
	for i, tab := range b.Tabs {
		if tab.ID == b.active {
			return b.Switch(b.Tabs[(i+1)%len(b.Tabs)].ID)
		}
	}
	return b
}

// Render draws the tab bar using the given theme.
func (b TabBar) Render(theme *styles.Theme) string {
	var parts []string
	for _, tab := range b.Tabs {
		if tab.ID == b.active {
			parts = append(parts, theme.TabActive.Render(tab.Label))
		} else {
			parts = append(parts, theme.TabInactive.Render(tab.Label))
		}
	}
	sep := theme.TabGap.Render("│")
	return lipgloss.JoinHorizontal(lipgloss.Bottom, strings.Join(parts, sep))
}
