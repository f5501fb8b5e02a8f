// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/flightdeck-tui/internal/api"
	"github.com/jeranaias/flightdeck-tui/internal/config"
	"github.com/jeranaias/flightdeck-tui/internal/ui/styles"
)

// =============================================================================
// PLAIN CHAT REPL
// =============================================================================

// historyFile is where the REPL keeps its input history.
const historyFile = "history"

// RunChat starts a plain line-based chat session against the assistant.
// It is the fallback for terminals where the full TUI is unwanted.
//
// REPL commands:
//
//	:clear  clear the assistant's conversation memory
//	:quit   exit (also :q, ctrl-d)
func RunChat() error {
	cfg := config.Global()
	client := api.NewClientWithConfig(&api.ClientConfig{
		BaseURL: cfg.Server.BaseURL,
		Timeout: cfg.Server.Timeout(),
	})

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	historyPath := loadHistory(line)
	defer saveHistory(line, historyPath)

	fmt.Println("flightdeck chat — :clear resets memory, :quit exits")
	if err := client.CheckHealth(context.Background()); err != nil {
		fmt.Println(styles.RenderWarning("assistant service is unreachable; replies will fail until it is back"))
	} else {
		fmt.Println(styles.RenderSuccess("connected to " + cfg.Server.BaseURL))
	}
	if cfg.Chat.WelcomeMessage != "" {
		fmt.Println()
		fmt.Println(cfg.Chat.WelcomeMessage)
	}

	for {
		input, err := line.Prompt("you> ")
		if err != nil {
			// liner returns an error on ctrl-c/ctrl-d; exit cleanly.
			fmt.Println()
			return nil
		}

		text := strings.TrimSpace(input)
		if text == "" {
			continue
		}
		line.AppendHistory(text)

		switch text {
		case ":quit", ":q", ":exit":
			return nil
		case ":clear":
			if err := client.ClearMemory(context.Background()); err != nil {
				fmt.Println("assistant> Sorry, I was unable to clear the chat history. Please try again.")
				continue
			}
			fmt.Println("assistant> Chat history has been cleared. How else can I assist you?")
			continue
		}

		resp, err := client.SendMessage(context.Background(), text)
		if err != nil {
			fmt.Println("assistant> Sorry, I encountered an error while processing your request. Please try again.")
			continue
		}

		reply := resp.Response
		if strings.TrimSpace(reply) == "" {
			reply = "Sorry, I could not generate a response."
		}
		fmt.Println("assistant> " + renderReply(reply))
	}
}

// loadHistory reads prior REPL history. Returns the history path, or ""
// when no config directory is available.
func loadHistory(line *liner.State) string {
	dir, err := config.ConfigDir()
	if err != nil {
		return ""
	}
	path := filepath.Join(dir, historyFile)
	if f, err := os.Open(path); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
	return path
}

// saveHistory writes REPL history back to disk. Best effort.
func saveHistory(line *liner.State, path string) {
	if path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return
	}
	if f, err := os.Create(path); err == nil {
		line.WriteHistory(f)
		f.Close()
	}
}
