// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package lookup

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jeranaias/flightdeck-tui/internal/api"
	"github.com/jeranaias/flightdeck-tui/internal/ui/components"
	"github.com/jeranaias/flightdeck-tui/internal/util"
)

// Panel placeholders. An empty result set and a failed search look
// deliberately different; only the latter is an error.
const (
	noResultsText    = "No members found"
	searchFailedText = "Search failed"
	profileErrorText = "Could not load member profile"
)

var titleCaser = cases.Title(language.AmericanEnglish)

// =============================================================================
// VIEW
// =============================================================================

// View renders the sidebar. Hidden sidebars render nothing.
func (m Model) View() string {
	if !m.visible {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.theme.SidebarTitle.Render("Member Lookup"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderResults())

	if m.profile != nil || m.profileErr {
		b.WriteString("\n\n")
		b.WriteString(m.renderProfile())
	}

	return m.theme.Sidebar.Width(m.width).Height(m.height).Render(b.String())
}

func (m Model) renderResults() string {
	switch m.listState {
	case resultEmpty:
		return components.RenderPlaceholder(m.theme, noResultsText, m.width-4)
	case resultFailed:
		return components.RenderErrorLine(m.theme, searchFailedText)
	case resultOK:
		var rows []string
		for i, user := range m.results {
			rows = append(rows, m.renderRow(user, i == m.selected))
		}
		return strings.Join(rows, "\n")
	default:
		return ""
	}
}

// renderRow draws one search result: the display name over the standard
// "@username • loyaltyStatus • airline" detail line.
func (m Model) renderRow(user api.UserSummary, selected bool) string {
	rowWidth := m.width - 4
	name := util.TruncateWidth(user.DisplayName(), rowWidth)
	detail := util.TruncateWidth(
		"@"+user.Username+" • "+user.LoyaltyStatus+" • "+user.Airline,
		rowWidth,
	)

	style := m.theme.ResultRow
	if selected {
		style = m.theme.ResultRowSelected
	}
	return style.Render(name) + "\n" + m.theme.ResultMeta.Render("  "+detail)
}

// renderProfile draws the profile card, or its error placeholder.
func (m Model) renderProfile() string {
	if m.profileErr {
		return components.RenderErrorLine(m.theme, profileErrorText)
	}

	p := m.profile
	class := StatusClass(p.LoyaltyStatus)
	statusLine := LoyaltyIcon(p.LoyaltyStatus) + " " +
		m.theme.TierBadge(class).Render(titleCaser.String(p.LoyaltyStatus))

	var b strings.Builder
	b.WriteString(m.theme.ProfileInitials.Render(p.Initials()))
	b.WriteString(" ")
	b.WriteString(m.theme.ProfileName.Render(p.DisplayName()))
	b.WriteString("\n")
	b.WriteString(m.theme.ResultMeta.Render("@" + p.Username))
	b.WriteString("\n\n")
	b.WriteString(statusLine)
	b.WriteString("\n")
	b.WriteString(m.profileField("Member #", p.LoyaltyNumber))
	b.WriteString(m.profileField("Airport", p.PreferredAirport))
	b.WriteString(m.profileField("Airline", p.Airline))

	return m.theme.ProfileCard.Width(m.width - 4).Render(b.String())
}

func (m Model) profileField(label, value string) string {
	if value == "" {
		return ""
	}
	return m.theme.ProfileFieldLabel.Render(util.PadRight(label+":", 10)) +
		m.theme.ProfileField.Render(value) + "\n"
}
