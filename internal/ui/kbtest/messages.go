// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// This file defines the Bubble Tea message types used by the tester.

package kbtest

import "github.com/jeranaias/flightdeck-tui/internal/api"

// InfoMsg delivers the one-shot knowledge base info fetch.
type InfoMsg struct {
	Info *api.KnowledgeInfo
	Err  error
}

// QueryResultMsg delivers the outcome of a knowledge base query.
type QueryResultMsg struct {
	Result *api.QueryResult
	Err    error
}
