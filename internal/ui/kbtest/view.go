// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package kbtest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jeranaias/flightdeck-tui/internal/api"
	"github.com/jeranaias/flightdeck-tui/internal/ui/components"
	"github.com/jeranaias/flightdeck-tui/internal/util"
)

// chromeHeight is the rows around the result viewport: info line, input
// row, and the tab bar.
const chromeHeight = 6

// =============================================================================
// VIEW
// =============================================================================

// View renders the query tester.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.theme.KnowledgeInfo.Render(m.infoLine))
	b.WriteString("\n\n")
	b.WriteString(m.renderQueryRow())
	b.WriteString("\n")
	b.WriteString(m.tabs.Render(m.theme))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())

	return b.String()
}

func (m Model) renderQueryRow() string {
	limitBadge := m.theme.ResultMeta.Render("limit " + strconv.Itoa(m.limit))
	if m.busy {
		return m.spinner.View() + " " + m.theme.MessageMeta.Render("querying…") + "  " + limitBadge
	}
	return m.input.View() + "  " + limitBadge
}

// refreshViewport renders the active tab's panel into the viewport.
// The two panels are never visible together.
func (m *Model) refreshViewport() {
	var content string
	if m.tabs.Active() == tabContext {
		content = m.renderContextPanel()
	} else {
		content = m.renderDocumentsPanel()
	}
	m.viewport.SetContent(content)
	m.viewport.GotoTop()
}

// renderDocumentsPanel draws one card per retrieved document, in server
// order. An empty list is exactly one placeholder, never zero cards and
// a blank panel.
func (m Model) renderDocumentsPanel() string {
	switch {
	case m.failed:
		return components.RenderErrorLine(m.theme, queryErrorText)
	case !m.queried:
		return ""
	case m.result == nil || len(m.result.Documents) == 0:
		return components.RenderPlaceholder(m.theme, noDocumentsText, m.width)
	}

	var cards []string
	for i, doc := range m.result.Documents {
		cards = append(cards, m.renderDocCard(i+1, doc))
	}
	return strings.Join(cards, "\n\n")
}

// renderDocCard draws a single document: source line with optional chunk
// suffix, a compact summary of the remaining metadata, then the content.
func (m Model) renderDocCard(index int, doc api.DocumentMatch) string {
	source := doc.Source()
	if chunk, ok := doc.Chunk(); ok {
		source += " (Chunk " + strconv.Itoa(chunk) + ")"
	}

	var b strings.Builder
	b.WriteString(m.theme.DocSource.Render(strconv.Itoa(index) + ". " + source))

	if extra := doc.ExtraMetadata(); len(extra) > 0 {
		var pairs []string
		for _, entry := range extra {
			value := util.TruncateRunes(fmt.Sprint(entry.Value), 40)
			pairs = append(pairs, entry.Key+"="+value)
		}
		b.WriteString("\n")
		b.WriteString(m.theme.DocMeta.Render(strings.Join(pairs, "  ")))
	}

	content := components.NewDocContent(doc.Content, doc.DocType())
	content.MaxWidth = m.width
	b.WriteString("\n")
	b.WriteString(content.Render())

	return m.theme.DocCard.Width(maxInt(m.width-2, 24)).Render(b.String())
}

// renderContextPanel shows the formatted context verbatim. The string is
// preformatted output from the retrieval pipeline and is never
// interpreted as markup.
func (m Model) renderContextPanel() string {
	switch {
	case m.failed:
		return components.RenderErrorLine(m.theme, queryErrorText)
	case !m.queried:
		return ""
	case m.result == nil || strings.TrimSpace(m.result.FormattedContext) == "":
		return components.RenderPlaceholder(m.theme, noContextText, m.width)
	}

	return m.theme.ContextPanel.Width(maxInt(m.width-2, 24)).Render(m.result.FormattedContext)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
