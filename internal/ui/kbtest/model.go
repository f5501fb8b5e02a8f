// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package kbtest provides the knowledge base query tester view for the TUI.
package kbtest

import (
	"context"
	"log"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/flightdeck-tui/internal/api"
	"github.com/jeranaias/flightdeck-tui/internal/config"
	"github.com/jeranaias/flightdeck-tui/internal/ui/components"
	"github.com/jeranaias/flightdeck-tui/internal/ui/styles"
)

// =============================================================================
// FIXED STRINGS
// =============================================================================

// User-facing strings from the tester's display contract.
const (
	queryErrorText  = "Sorry, an error occurred while querying the knowledge base. Please try again."
	noDocumentsText = "No matching documents found."
	noContextText   = "No context generated for this query."
	infoErrorText   = "Error loading knowledge base info"
	infoPrefixText  = "Knowledge Base: "
	infoSuffixText  = " documents"
)

// resultLimits are the selectable result caps, cycled with ctrl+r.
var resultLimits = []int{1, 3, 5, 10}

// Tab identifiers.
const (
	tabDocuments = "documents"
	tabContext   = "context"
)

// =============================================================================
// TESTER MODEL
// =============================================================================

// Model is the knowledge base query tester: a query box with a result
// limit, and tabbed panels for document cards and the formatted context.
type Model struct {
	theme  *styles.Theme
	client *api.Client

	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model
	tabs     components.TabBar

	busy     bool
	limit    int
	infoLine string

	// Query outcome. failed means both panels show queryErrorText.
	result  *api.QueryResult
	failed  bool
	queried bool

	width  int
	height int
}

// New creates the tester. Init fires the one-shot info fetch.
func New(client *api.Client, cfg *config.Config, theme *styles.Theme) Model {
	input := textinput.New()
	input.Placeholder = "Test a knowledge base query…"
	input.CharLimit = 500
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner

	return Model{
		theme:   theme,
		client:  client,
		input:   input,
		spinner: sp,
		tabs: components.NewTabBar(
			components.Tab{ID: tabDocuments, Label: "Documents"},
			components.Tab{ID: tabContext, Label: "Context"},
		),
		viewport: viewport.New(0, 0),
		limit:    cfg.Knowledge.DefaultLimit,
	}
}

// Busy reports whether a query is in flight.
func (m Model) Busy() bool {
	return m.busy
}

// Limit returns the current result limit.
func (m Model) Limit() int {
	return m.limit
}

// Init fires the one-shot knowledge base info fetch.
func (m Model) Init() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		info, err := client.GetKnowledgeInfo(context.Background())
		return InfoMsg{Info: info, Err: err}
	}
}

// SetSize resizes the tester.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height - chromeHeight
	if m.viewport.Height < 1 {
		m.viewport.Height = 1
	}
	m.input.Width = width - 20
	m.refreshViewport()
}

// ApplyConfig picks up settings that may change on a hot reload.
func (m *Model) ApplyConfig(cfg *config.Config) {
	m.limit = cfg.Knowledge.DefaultLimit
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles messages routed to the tester.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return m.submitQuery()
		case "tab":
			m.tabs = m.tabs.Next()
			m.refreshViewport()
			return m, nil
		case "ctrl+r":
			m.cycleLimit()
			return m, nil
		}

	case InfoMsg:
		return m.handleInfo(msg), nil

	case QueryResultMsg:
		return m.handleResult(msg), nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// SwitchTab activates the named tab. Pure and synchronous; exactly one
// tab's content is visible at a time.
func (m Model) SwitchTab(id string) Model {
	m.tabs = m.tabs.Switch(id)
	m.refreshViewport()
	return m
}

// ActiveTab returns the identifier of the visible tab.
func (m Model) ActiveTab() string {
	return m.tabs.Active()
}

// cycleLimit advances the result limit through the fixed choices.
func (m *Model) cycleLimit() {
	for i, n := range resultLimits {
		if n == m.limit {
			m.limit = resultLimits[(i+1)%len(resultLimits)]
			return
		}
	}
	m.limit = resultLimits[0]
}

// submitQuery issues a retrieval query. Blank input and a busy tester
// are both silent no-ops; the configured limit passes through untouched.
func (m Model) submitQuery() (Model, tea.Cmd) {
	query := strings.TrimSpace(m.input.Value())
	if query == "" || m.busy {
		return m, nil
	}

	m.busy = true
	client := m.client
	limit := m.limit

	return m, tea.Batch(func() tea.Msg {
		result, err := client.QueryKnowledge(context.Background(), query, limit)
		return QueryResultMsg{Result: result, Err: err}
	}, m.spinner.Tick)
}

// handleInfo renders the document count, or the fixed error line.
// Failures stop at this boundary.
func (m Model) handleInfo(msg InfoMsg) Model {
	if msg.Err != nil {
		log.Printf("knowledge info fetch failed: %v", msg.Err)
		m.infoLine = infoErrorText
		return m
	}
	m.infoLine = infoPrefixText + strconv.Itoa(msg.Info.DocumentCount) + infoSuffixText
	return m
}

// handleResult applies a query outcome. The busy flag is released before
// any branching so every path re-arms the tester.
func (m Model) handleResult(msg QueryResultMsg) Model {
	m.busy = false
	m.queried = true

	if msg.Err != nil {
		log.Printf("knowledge query failed: %v", msg.Err)
		m.result = nil
		m.failed = true
		m.refreshViewport()
		return m
	}

	m.result = msg.Result
	m.failed = false
	m.refreshViewport()
	return m
}
