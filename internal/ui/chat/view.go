// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/flightdeck-tui/internal/model"
	"github.com/jeranaias/flightdeck-tui/internal/ui/components"
)

// timeNow is swappable in tests.
var timeNow = time.Now

// inputAreaHeight is the rows reserved below the transcript viewport:
// input box with border plus the counter line.
const inputAreaHeight = 4

// =============================================================================
// VIEW
// =============================================================================

// View renders the chat session.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.renderInputArea())

	return b.String()
}

func (m Model) renderInputArea() string {
	prompt := m.theme.InputPrompt.Render("❯ ")
	line := prompt + m.input.View()
	if m.state == StateWaiting {
		line = m.spinner.View() + " " + m.theme.MessageMeta.Render("waiting for assistant…")
	}

	box := m.theme.InputContainer.Width(maxInt(m.width-2, 20)).Render(line)
	counter := lipgloss.NewStyle().
		Width(maxInt(m.width-2, 20)).
		Align(lipgloss.Right).
		Render(m.charCountText())

	return box + "\n" + counter
}

// refreshViewport re-renders the transcript into the viewport and keeps
// the latest message visible.
func (m *Model) refreshViewport() {
	var b strings.Builder
	for i, msg := range m.transcript.Messages() {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(m.renderMessage(msg))
		b.WriteString("\n")
	}
	m.viewport.SetContent(b.String())
	m.viewport.GotoBottom()
}

// renderMessage draws one transcript entry as a bubble.
//
// Only TrustedMarkup content goes through the markdown renderer; plain
// text (everything the user typed) is rendered verbatim.
func (m Model) renderMessage(msg model.Message) string {
	content := msg.Content
	if msg.Kind == model.TrustedMarkup && m.renderer != nil {
		if rendered, err := m.renderer.Render(msg.Content); err == nil {
			content = strings.TrimRight(rendered, "\n")
		}
	}

	bubbleWidth := maxInt(m.width*3/4, 30)

	var bubble string
	switch msg.Origin {
	case model.OriginUser:
		bubble = m.theme.UserBubble.MaxWidth(bubbleWidth).Render(content)
	case model.OriginSystem:
		bubble = m.theme.SystemBubble.MaxWidth(bubbleWidth).Render(content)
	default:
		bubble = m.theme.AssistantBubble.MaxWidth(bubbleWidth).Render(content)
	}

	meta := msg.Origin.DisplayName()
	if m.cfg.UI.ShowTimestamps {
		meta += " · " + components.FormatTimestamp(msg.Timestamp, timeNow())
	}

	block := m.theme.MessageMeta.Render(meta) + "\n" + bubble
	if msg.Origin == model.OriginUser && m.width > 0 {
		return lipgloss.NewStyle().Width(m.width).Align(lipgloss.Right).Render(block)
	}
	return block
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
