// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// This file defines the Bubble Tea message types used by the sidebar.

package lookup

import "github.com/jeranaias/flightdeck-tui/internal/api"

// SearchResultsMsg delivers the outcome of a user search.
// Seq identifies the search that produced it; results from superseded
// searches are discarded on arrival.
type SearchResultsMsg struct {
	Seq   int
	Users []api.UserSummary
	Err   error
}

// ProfileMsg delivers the outcome of a profile fetch.
type ProfileMsg struct {
	Username string
	Profile  *api.UserProfile
	Err      error
}
