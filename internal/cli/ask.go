// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/flightdeck-tui/internal/api"
	"github.com/jeranaias/flightdeck-tui/internal/config"
	"github.com/jeranaias/flightdeck-tui/internal/util"
)

// =============================================================================
// ASK COMMAND
// =============================================================================

// RunAsk sends a single question to the assistant and prints the reply.
// With a TTY the reply renders as markdown; piped output stays plain.
func RunAsk(args []string) error {
	question := util.NormalizeSpace(strings.Join(args, " "))
	if question == "" {
		return errors.New("usage: flightdeck ask <question>")
	}

	cfg := config.Global()
	client := api.NewClientWithConfig(&api.ClientConfig{
		BaseURL: cfg.Server.BaseURL,
		Timeout: cfg.Server.Timeout(),
	})

	resp, err := client.SendMessage(context.Background(), question)
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}

	reply := resp.Response
	if strings.TrimSpace(reply) == "" {
		reply = "Sorry, I could not generate a response."
	}

	fmt.Println(renderReply(reply))
	return nil
}

// renderReply renders assistant markdown for terminal display, falling
// back to the raw text when rendering is unavailable.
func renderReply(markdown string) string {
	if !IsTTY() {
		return markdown
	}

	width := TerminalWidth()
	if width > 100 {
		width = 100
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return markdown
	}

	rendered, err := renderer.Render(markdown)
	if err != nil {
		fmt.Fprintln(os.Stderr, "markdown rendering failed, printing raw output")
		return markdown
	}
	return strings.TrimRight(rendered, "\n")
}
