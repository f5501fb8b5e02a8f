// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the chat session view for the TUI.
package chat

import (
	"context"
	"log"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/flightdeck-tui/internal/api"
	"github.com/jeranaias/flightdeck-tui/internal/config"
	"github.com/jeranaias/flightdeck-tui/internal/model"
	"github.com/jeranaias/flightdeck-tui/internal/ui/styles"
	"github.com/jeranaias/flightdeck-tui/internal/util"
)

// =============================================================================
// FIXED REPLIES
// =============================================================================

// These strings are part of the user-facing contract and never vary.
// Error details go to the diagnostic log, not the transcript.
const (
	fallbackReply     = "Sorry, I could not generate a response."
	errorReply        = "Sorry, I encountered an error while processing your request. Please try again."
	clearConfirmReply = "Chat history has been cleared. How else can I assist you?"
	clearFailedReply  = "Sorry, I was unable to clear the chat history. Please try again."
)

// =============================================================================
// SESSION STATE
// =============================================================================

// State is the chat session's busy gate.
//
// The session is a two-state machine: while a send or clear is in flight
// the gate is StateWaiting and further submissions are no-ops. The gate
// is released in the completion-message handlers and nowhere else, so
// every resolution path (success, failure, blank reply) re-arms input.
type State int

const (
	// StateReady accepts submissions.
	StateReady State = iota
	// StateWaiting has a remote call in flight; submissions are ignored.
	StateWaiting
)

// String returns a readable state name for logging.
func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateWaiting:
		return "waiting"
	default:
		return "unknown"
	}
}

// =============================================================================
// CHAT MODEL
// =============================================================================

// Model is the chat session view.
type Model struct {
	theme  *styles.Theme
	client *api.Client
	cfg    *config.Config

	transcript *model.Transcript
	input      textinput.Model
	viewport   viewport.Model
	spinner    spinner.Model
	renderer   *glamour.TermRenderer

	state  State
	width  int
	height int
}

// New creates the chat view. The transcript is seeded with the configured
// welcome message.
func New(client *api.Client, cfg *config.Config, theme *styles.Theme) Model {
	input := textinput.New()
	input.Placeholder = "Ask about flights, loyalty status, baggage…"
	input.CharLimit = cfg.Chat.MaxMessageLength
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Spinner

	transcript := model.NewTranscript()
	transcript.SeedWelcome(cfg.Chat.WelcomeMessage)

	// Renderer failures leave renderer nil; trusted markup then falls
	// back to plain text.
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(cfg.UI.MarkdownWrap),
	)
	if err != nil {
		log.Printf("glamour renderer unavailable: %v", err)
		renderer = nil
	}

	return Model{
		theme:      theme,
		client:     client,
		cfg:        cfg,
		transcript: transcript,
		input:      input,
		viewport:   viewport.New(0, 0),
		spinner:    sp,
		renderer:   renderer,
		state:      StateReady,
	}
}

// State returns the busy gate state.
func (m Model) State() State {
	return m.state
}

// Transcript exposes the transcript for the view and tests.
func (m Model) Transcript() *model.Transcript {
	return m.transcript
}

// Init starts the blinking cursor.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// SetSize resizes the view.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height - inputAreaHeight
	if m.viewport.Height < 1 {
		m.viewport.Height = 1
	}
	m.input.Width = width - 6
	m.refreshViewport()
}

// ApplyConfig picks up settings that may change on a hot reload.
func (m *Model) ApplyConfig(cfg *config.Config) {
	m.cfg = cfg
	m.input.CharLimit = cfg.Chat.MaxMessageLength
}

// AppendSystemNotice adds a system message to the transcript, outside the
// normal user/assistant exchange.
func (m *Model) AppendSystemNotice(text string) {
	m.transcript.Append(model.NewSystemMessage(text))
	m.refreshViewport()
}

// =============================================================================
// UPDATE
// =============================================================================

// Update handles messages routed to the chat view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return m.submit()
		case "ctrl+l":
			return m.clearHistory()
		}

	case ChatReplyMsg:
		return m.handleReply(msg), nil

	case ClearHistoryDoneMsg:
		return m.handleClearDone(msg), nil

	case spinner.TickMsg:
		if m.state != StateWaiting {
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

// submit sends the current input as a chat message.
//
// Gate semantics: a blank (all-whitespace) input and a busy session are
// both silent no-ops. On acceptance the user's text is echoed to the
// transcript immediately and the input is cleared, before any network
// traffic happens.
func (m Model) submit() (Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" || m.state == StateWaiting {
		return m, nil
	}

	m.transcript.Append(model.NewUserMessage(text))
	m.input.Reset()
	m.state = StateWaiting
	m.refreshViewport()

	return m, tea.Batch(m.sendChatCmd(text), m.spinner.Tick)
}

// sendChatCmd performs the remote send off the update loop.
func (m Model) sendChatCmd(text string) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		resp, err := client.SendMessage(context.Background(), text)
		if err != nil {
			return ChatReplyMsg{Err: err}
		}
		return ChatReplyMsg{Reply: resp.Response}
	}
}

// handleReply appends the assistant's reply and releases the gate.
// The gate resets before any branching so no path can leave the session
// stuck waiting.
func (m Model) handleReply(msg ChatReplyMsg) Model {
	m.state = StateReady

	switch {
	case msg.Err != nil:
		log.Printf("chat send failed: %v", msg.Err)
		m.transcript.Append(model.NewAssistantMessage(errorReply))
	case strings.TrimSpace(msg.Reply) == "":
		m.transcript.Append(model.NewAssistantMessage(fallbackReply))
	default:
		m.transcript.Append(model.NewAssistantMessage(msg.Reply))
	}

	m.refreshViewport()
	return m
}

// clearHistory asks the server to drop the session's conversation memory.
// Shares the busy gate with submit so the two cannot interleave.
func (m Model) clearHistory() (Model, tea.Cmd) {
	if m.state == StateWaiting {
		return m, nil
	}
	m.state = StateWaiting

	client := m.client
	return m, tea.Batch(func() tea.Msg {
		return ClearHistoryDoneMsg{Err: client.ClearMemory(context.Background())}
	}, m.spinner.Tick)
}

// handleClearDone resets the transcript on success and appends the fixed
// confirmation; on failure the transcript is left alone apart from the
// fixed apology.
func (m Model) handleClearDone(msg ClearHistoryDoneMsg) Model {
	m.state = StateReady

	if msg.Err != nil {
		log.Printf("clear history failed: %v", msg.Err)
		m.transcript.Append(model.NewAssistantMessage(clearFailedReply))
		m.refreshViewport()
		return m
	}

	m.transcript.Clear(m.cfg.Chat.PreserveWelcome)
	m.transcript.Append(model.NewAssistantMessage(clearConfirmReply))
	m.refreshViewport()
	return m
}

// =============================================================================
// CHARACTER COUNT
// =============================================================================

// charCount returns the current and maximum input length.
func (m Model) charCount() (int, int) {
	return util.RuneLen(m.input.Value()), m.cfg.Chat.MaxMessageLength
}

// charCountText renders the counter: plain up to 80% of the limit,
// warning up to 90%, danger beyond.
func (m Model) charCountText() string {
	n, max := m.charCount()
	text := strconv.Itoa(n) + "/" + strconv.Itoa(max)

	switch {
	case n > max*9/10:
		return m.theme.CharCountDanger.Render(text)
	case n > max*8/10:
		return m.theme.CharCountWarning.Render(text)
	default:
		return m.theme.CharCount.Render(text)
	}
}
