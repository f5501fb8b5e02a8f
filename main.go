// flightdeck TUI - A terminal client for the airline assistant service.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/flightdeck-tui/internal/api"
	"github.com/jeranaias/flightdeck-tui/internal/cli"
	"github.com/jeranaias/flightdeck-tui/internal/config"
	"github.com/jeranaias/flightdeck-tui/internal/ui/chat"
	"github.com/jeranaias/flightdeck-tui/internal/ui/components"
	"github.com/jeranaias/flightdeck-tui/internal/ui/kbtest"
	"github.com/jeranaias/flightdeck-tui/internal/ui/lookup"
	"github.com/jeranaias/flightdeck-tui/internal/ui/styles"
)

// =============================================================================
// PROGRAM REFERENCE
// =============================================================================

// programRef lets background goroutines (the config watcher) send
// messages into the running program.
var (
	programRef *tea.Program
	programMu  sync.Mutex
)

func setProgram(p *tea.Program) {
	programMu.Lock()
	programRef = p
	programMu.Unlock()
}

func sendToProgram(msg tea.Msg) {
	programMu.Lock()
	p := programRef
	programMu.Unlock()
	if p != nil {
		p.Send(msg)
	}
}

// =============================================================================
// ROOT MESSAGES
// =============================================================================

// ProviderInfoMsg delivers the one-shot provider fetch.
type ProviderInfoMsg struct {
	Info *api.ProviderInfo
	Err  error
}

// HealthMsg delivers the startup connectivity probe.
type HealthMsg struct {
	Err error
}

// ConfigReloadedMsg announces a hot-reloaded configuration.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// =============================================================================
// ROOT MODEL
// =============================================================================

// activeView selects the visible main panel.
type activeView int

const (
	viewChat activeView = iota
	viewKnowledge
)

// sidebarWidth is the fixed column width of the lookup sidebar.
const sidebarWidth = 38

// appModel is the root model: it owns the panels, routes messages to
// their controllers, and renders the shared chrome.
type appModel struct {
	theme  *styles.Theme
	client *api.Client

	chat   chat.Model
	kb     kbtest.Model
	lookup lookup.Model

	active activeView

	// Provider badge state; nil info after the fetch resolves means the
	// one-shot load failed. There is no retry.
	provider        *api.ProviderInfo
	providerChecked bool

	healthChecked bool
	healthOK      bool

	width  int
	height int
}

func newAppModel(client *api.Client, cfg *config.Config, theme *styles.Theme) appModel {
	return appModel{
		theme:  theme,
		client: client,
		chat:   chat.New(client, cfg, theme),
		kb:     kbtest.New(client, cfg, theme),
		lookup: lookup.New(client, theme),
	}
}

// Init kicks off the panel initializers plus the root one-shot fetches.
func (m appModel) Init() tea.Cmd {
	return tea.Batch(
		m.chat.Init(),
		m.kb.Init(),
		m.fetchProviderCmd(),
		m.healthProbeCmd(),
	)
}

func (m appModel) fetchProviderCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		info, err := client.GetProviderInfo(context.Background())
		return ProviderInfoMsg{Info: info, Err: err}
	}
}

func (m appModel) healthProbeCmd() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		return HealthMsg{Err: client.CheckHealth(context.Background())}
	}
}

// =============================================================================
// UPDATE
// =============================================================================

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+t":
			if m.active == viewChat {
				m.active = viewKnowledge
			} else {
				m.active = viewChat
			}
			return m, nil
		case "ctrl+u":
			m.lookup = m.lookup.Toggle()
			m.layout()
			return m, nil
		case "esc":
			if m.lookup.Visible() {
				m.lookup = m.lookup.Close()
				m.layout()
				return m, nil
			}
			return m, nil
		}
		// Keys go to the sidebar while it is open, else to the active panel.
		if m.lookup.Visible() {
			var cmd tea.Cmd
			m.lookup, cmd = m.lookup.Update(msg)
			return m, cmd
		}
		return m.routeToActive(msg)

	case ProviderInfoMsg:
		m.providerChecked = true
		if msg.Err != nil {
			log.Printf("provider info fetch failed: %v", msg.Err)
			m.provider = nil
			return m, nil
		}
		m.provider = msg.Info
		return m, nil

	case HealthMsg:
		m.healthChecked = true
		m.healthOK = msg.Err == nil
		if msg.Err != nil {
			log.Printf("health probe failed: %v", msg.Err)
		}
		return m, nil

	case ConfigReloadedMsg:
		m.chat.ApplyConfig(msg.Config)
		m.kb.ApplyConfig(msg.Config)
		m.chat.AppendSystemNotice("Settings reloaded.")
		return m, nil

	// Completion messages go to their owning controller regardless of
	// which panel is visible; an in-flight call always resolves.
	case chat.ChatReplyMsg, chat.ClearHistoryDoneMsg:
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		return m, cmd

	case lookup.SearchResultsMsg, lookup.ProfileMsg:
		var cmd tea.Cmd
		m.lookup, cmd = m.lookup.Update(msg)
		return m, cmd

	case kbtest.InfoMsg, kbtest.QueryResultMsg:
		var cmd tea.Cmd
		m.kb, cmd = m.kb.Update(msg)
		return m, cmd

	case spinner.TickMsg:
		var chatCmd, kbCmd tea.Cmd
		m.chat, chatCmd = m.chat.Update(msg)
		m.kb, kbCmd = m.kb.Update(msg)
		return m, tea.Batch(chatCmd, kbCmd)
	}

	return m.routeToActive(msg)
}

func (m appModel) routeToActive(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.active == viewKnowledge {
		m.kb, cmd = m.kb.Update(msg)
	} else {
		m.chat, cmd = m.chat.Update(msg)
	}
	return m, cmd
}

// layout distributes the window between the main panel and the sidebar.
func (m *appModel) layout() {
	mainWidth := m.width
	if m.lookup.Visible() {
		mainWidth -= sidebarWidth
	}
	contentHeight := m.height - chromeRows

	m.chat.SetSize(mainWidth, contentHeight)
	m.kb.SetSize(mainWidth, contentHeight)
	m.lookup.SetSize(sidebarWidth, contentHeight)
}

// =============================================================================
// VIEW
// =============================================================================

// chromeRows is header plus status bar.
const chromeRows = 3

func (m appModel) View() string {
	var main string
	if m.active == viewKnowledge {
		main = m.kb.View()
	} else {
		main = m.chat.View()
	}

	if m.lookup.Visible() {
		main = lipgloss.JoinHorizontal(lipgloss.Top, main, m.lookup.View())
	}

	return m.renderHeader() + "\n" + main + "\n" + m.renderStatusBar()
}

func (m appModel) renderHeader() string {
	title := m.theme.HeaderTitle.Render("✈ flightdeck")

	var badge string
	if m.providerChecked {
		badge = components.RenderProviderBadge(m.theme, m.provider)
	}

	gap := m.width - lipgloss.Width(title) - lipgloss.Width(badge) - 4
	if gap < 1 {
		gap = 1
	}
	return m.theme.Header.Width(m.width).Render(
		title + lipgloss.NewStyle().Width(gap).Render("") + badge,
	)
}

func (m appModel) renderStatusBar() string {
	shortcuts := []components.Shortcut{
		{Key: "^T", Desc: "chat/knowledge"},
		{Key: "^U", Desc: "lookup"},
		{Key: "^L", Desc: "clear history"},
		{Key: "^C", Desc: "quit"},
	}
	if m.active == viewKnowledge {
		shortcuts = []components.Shortcut{
			{Key: "^T", Desc: "chat/knowledge"},
			{Key: "tab", Desc: "documents/context"},
			{Key: "^R", Desc: "result limit"},
			{Key: "^C", Desc: "quit"},
		}
	}

	bar := components.StatusBar{
		Width:     m.width,
		Connected: m.healthOK,
		Checked:   m.healthChecked,
		Shortcuts: shortcuts,
	}
	return bar.Render(m.theme)
}

// =============================================================================
// MAIN
// =============================================================================

func main() {
	if cli.Parse(os.Args[1:]) != cli.CommandTUI {
		return
	}

	setupLogging()

	cfg := config.Global()
	client := api.NewClientWithConfig(&api.ClientConfig{
		BaseURL: cfg.Server.BaseURL,
		Timeout: cfg.Server.Timeout(),
	})
	theme := styles.NewTheme()

	watcher, err := config.NewWatcher(func(reloaded *config.Config) {
		sendToProgram(ConfigReloadedMsg{Config: reloaded})
	})
	if err != nil {
		log.Printf("config watcher unavailable: %v", err)
	} else {
		defer watcher.Close()
	}

	p := tea.NewProgram(newAppModel(client, cfg, theme), tea.WithAltScreen())
	setProgram(p)

	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// setupLogging routes the standard logger to a debug file when
// FLIGHTDECK_DEBUG is set, and silences it otherwise so stray log lines
// cannot corrupt the alternate screen.
func setupLogging() {
	if os.Getenv("FLIGHTDECK_DEBUG") == "" {
		log.SetOutput(io.Discard)
		return
	}
	if _, err := tea.LogToFile("flightdeck-debug.log", "flightdeck"); err != nil {
		log.SetOutput(io.Discard)
	}
}
