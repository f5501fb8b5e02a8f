// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package lookup provides the member lookup sidebar for the TUI.
package lookup

import (
	"context"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/flightdeck-tui/internal/api"
	"github.com/jeranaias/flightdeck-tui/internal/ui/styles"
	"github.com/jeranaias/flightdeck-tui/internal/util"
)

// minQueryRunes is the search-as-you-type threshold. Queries below it
// clear the list without a call.
const minQueryRunes = 2

// =============================================================================
// RESULT STATE
// =============================================================================

// resultState tracks what the result list panel should show.
type resultState int

const (
	// resultIdle shows nothing; the query is below the threshold.
	resultIdle resultState = iota
	// resultOK shows the result rows.
	resultOK
	// resultEmpty shows the "no results" placeholder.
	resultEmpty
	// resultFailed shows the "search failed" placeholder.
	resultFailed
)

// =============================================================================
// LOOKUP MODEL
// =============================================================================

// Model is the member lookup sidebar: an incremental search box, a
// result list, and a profile panel.
type Model struct {
	theme  *styles.Theme
	client *api.Client

	input    textinput.Model
	visible  bool
	selected int

	// Every search carries a sequence number. A result whose number is
	// not newer than the last one applied is stale and dropped, so a
	// slow early response can never overwrite a fast later one.
	searchSeq  int
	appliedSeq int
	results    []api.UserSummary
	listState  resultState

	profile    *api.UserProfile
	profileErr bool

	width  int
	height int
}

// New creates the lookup sidebar, initially hidden.
func New(client *api.Client, theme *styles.Theme) Model {
	input := textinput.New()
	input.Placeholder = "Search members…"
	input.CharLimit = 64

	return Model{
		theme:  theme,
		client: client,
		input:  input,
	}
}

// Visible reports whether the sidebar is shown.
func (m Model) Visible() bool {
	return m.visible
}

// Toggle flips sidebar visibility. Pure; no network effect.
func (m Model) Toggle() Model {
	m.visible = !m.visible
	if m.visible {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	return m
}

// Close hides the sidebar. Closing a hidden sidebar is a no-op.
func (m Model) Close() Model {
	if !m.visible {
		return m
	}
	return m.Toggle()
}

// SetSize resizes the sidebar.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = width - 4
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles messages routed to the sidebar.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down":
			if m.selected < len(m.results)-1 {
				m.selected++
			}
			return m, nil
		case "enter":
			return m.selectResult()
		}

		// Any other key edits the query; each edit is one input event.
		var cmd tea.Cmd
		before := m.input.Value()
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != before {
			m, searchCmd := m.onQueryChanged()
			return m, tea.Batch(cmd, searchCmd)
		}
		return m, cmd

	case SearchResultsMsg:
		return m.handleResults(msg), nil

	case ProfileMsg:
		return m.handleProfile(msg), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// onQueryChanged reacts to one input event: below the threshold the list
// clears with no call; at or above it exactly one search is issued.
func (m Model) onQueryChanged() (Model, tea.Cmd) {
	query := strings.TrimSpace(m.input.Value())
	if util.RuneLen(query) < minQueryRunes {
		m.results = nil
		m.listState = resultIdle
		m.selected = 0
		return m, nil
	}

	m.searchSeq++
	seq := m.searchSeq
	client := m.client

	return m, func() tea.Msg {
		users, err := client.SearchUsers(context.Background(), query)
		return SearchResultsMsg{Seq: seq, Users: users, Err: err}
	}
}

// handleResults applies a search outcome unless it is stale.
func (m Model) handleResults(msg SearchResultsMsg) Model {
	if msg.Seq <= m.appliedSeq {
		return m // superseded by a newer search
	}
	m.appliedSeq = msg.Seq
	m.selected = 0

	if msg.Err != nil {
		log.Printf("user search failed: %v", msg.Err)
		m.results = nil
		m.listState = resultFailed
		return m
	}
	if len(msg.Users) == 0 {
		m.results = nil
		m.listState = resultEmpty
		return m
	}

	m.results = msg.Users
	m.listState = resultOK
	return m
}

// selectResult fetches the full profile for the highlighted row.
func (m Model) selectResult() (Model, tea.Cmd) {
	if m.listState != resultOK || m.selected >= len(m.results) {
		return m, nil
	}
	username := m.results[m.selected].Username
	client := m.client

	return m, func() tea.Msg {
		profile, err := client.GetUser(context.Background(), username)
		return ProfileMsg{Username: username, Profile: profile, Err: err}
	}
}

// handleProfile applies a profile fetch outcome.
//
// Success replaces the profile panel wholesale and consumes the search:
// list and input both clear. Failure marks the profile panel only; the
// search state stays untouched so the user can pick another row.
func (m Model) handleProfile(msg ProfileMsg) Model {
	if msg.Err != nil {
		log.Printf("profile fetch for %q failed: %v", msg.Username, msg.Err)
		m.profileErr = true
		return m
	}

	m.profile = msg.Profile
	m.profileErr = false
	m.results = nil
	m.listState = resultIdle
	m.selected = 0
	m.input.Reset()
	return m
}

// =============================================================================
// DERIVED DISPLAY VALUES
// =============================================================================

// LoyaltyIcon returns the badge glyph for a loyalty status. The mapping
// is a fixed finite table with a default branch; it is keyed on the raw
// status string as the server sends it.
func LoyaltyIcon(status string) string {
	switch status {
	case "Gold":
		return "🥇"
	case "Silver":
		return "🥈"
	case "Platinum":
		return "💎"
	case "Diamond":
		return "💎"
	case "Basic":
		return "🎫"
	case "Bronze":
		return "🥉"
	default:
		return "🎫"
	}
}

// StatusClass derives a style-safe class from a loyalty status:
// lower-cased with whitespace runs replaced by hyphens.
func StatusClass(status string) string {
	return strings.Join(strings.Fields(strings.ToLower(status)), "-")
}
