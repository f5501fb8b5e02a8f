// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"os"

	"github.com/jeranaias/flightdeck-tui/internal/ui/styles"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// =============================================================================
// COMMAND DISPATCH
// =============================================================================

// Command is the action selected from the command line.
type Command int

const (
	// CommandTUI launches the full-screen interface (the default).
	CommandTUI Command = iota
	// CommandHandled means the command ran to completion here.
	CommandHandled
)

// Parse dispatches the command line. It returns CommandTUI when the
// full-screen interface should start, CommandHandled otherwise.
func Parse(args []string) Command {
	if len(args) == 0 {
		return CommandTUI
	}

	switch args[0] {
	case "ask":
		if err := RunAsk(args[1:]); err != nil {
			fmt.Fprintln(os.Stderr, styles.RenderError(err.Error()))
			os.Exit(1)
		}
		return CommandHandled

	case "chat":
		if err := RunChat(); err != nil {
			fmt.Fprintln(os.Stderr, styles.RenderError(err.Error()))
			os.Exit(1)
		}
		return CommandHandled

	case "version", "--version", "-v":
		fmt.Println("flightdeck " + Version)
		return CommandHandled

	case "help", "--help", "-h":
		printUsage()
		return CommandHandled

	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", args[0])
		printUsage()
		os.Exit(1)
		return CommandHandled
	}
}

func printUsage() {
	fmt.Print(`flightdeck — terminal client for the airline assistant

Usage:
  flightdeck              launch the full-screen interface
  flightdeck ask <text>   ask a single question and print the reply
  flightdeck chat         plain line-based chat session
  flightdeck version      print the version

Environment:
  FLIGHTDECK_SERVER_URL   override the assistant service base URL
  FLIGHTDECK_DEBUG        write a debug log to the config directory
`)
}
