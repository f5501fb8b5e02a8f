// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// This file defines the Bubble Tea message types used by the chat view.
// Every remote call resolves to exactly one completion message; the
// handlers for those messages are the only place the busy gate is
// released.

package chat

// ChatReplyMsg delivers the outcome of a send-message call.
type ChatReplyMsg struct {
	Reply string
	Err   error
}

// ClearHistoryDoneMsg delivers the outcome of a clear-history call.
type ClearHistoryDoneMsg struct {
	Err error
}
