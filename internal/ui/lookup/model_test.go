// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package lookup

import (
	"errors"
	"testing"

	"github.com/jeranaias/flightdeck-tui/internal/api"
	"github.com/jeranaias/flightdeck-tui/internal/ui/styles"
)

func newTestModel() Model {
	return New(api.NewClient(), styles.NewTheme())
}

func TestQueryBelowThresholdClearsWithoutCall(t *testing.T) {
	m := newTestModel()
	m.results = []api.UserSummary{{Username: "old"}}
	m.listState = resultOK
	m.input.SetValue("a")

	m, cmd := m.onQueryChanged()

	if cmd != nil {
		t.Error("single-rune query must not issue a search")
	}
	if m.results != nil || m.listState != resultIdle {
		t.Error("short query must clear the result list")
	}
	if m.searchSeq != 0 {
		t.Error("short query must not consume a sequence number")
	}
}

func TestQueryAtThresholdIssuesSearch(t *testing.T) {
	m := newTestModel()
	m.input.SetValue("  sm  ")

	m, cmd := m.onQueryChanged()

	if cmd == nil {
		t.Fatal("two-rune query should issue a search")
	}
	if m.searchSeq != 1 {
		t.Errorf("searchSeq = %d, want 1", m.searchSeq)
	}
}

func TestStaleResultsDiscarded(t *testing.T) {
	m := newTestModel()
	m.searchSeq = 2

	// The second (newer) search resolves first.
	m = m.handleResults(SearchResultsMsg{Seq: 2, Users: []api.UserSummary{{Username: "fresh"}}})
	// Then the first (older) search limps in.
	m = m.handleResults(SearchResultsMsg{Seq: 1, Users: []api.UserSummary{{Username: "stale"}}})

	if len(m.results) != 1 || m.results[0].Username != "fresh" {
		t.Errorf("stale response overwrote fresh results: %v", m.results)
	}
}

func TestEmptyResultsDistinctFromFailure(t *testing.T) {
	m := newTestModel()
	m.searchSeq = 1
	m = m.handleResults(SearchResultsMsg{Seq: 1, Users: nil})
	if m.listState != resultEmpty {
		t.Errorf("empty result state = %v, want resultEmpty", m.listState)
	}

	m.searchSeq = 2
	m = m.handleResults(SearchResultsMsg{Seq: 2, Err: errors.New("503")})
	if m.listState != resultFailed {
		t.Errorf("failed result state = %v, want resultFailed", m.listState)
	}
}

func TestProfileSuccessConsumesSearch(t *testing.T) {
	m := newTestModel()
	m.input.SetValue("smith")
	m.results = []api.UserSummary{{Username: "jsmith"}}
	m.listState = resultOK
	m.profileErr = true

	m = m.handleProfile(ProfileMsg{
		Username: "jsmith",
		Profile:  &api.UserProfile{Username: "jsmith", LastName: "Smith", LoyaltyStatus: "Gold"},
	})

	if m.profile == nil || m.profile.Username != "jsmith" {
		t.Fatal("profile not applied")
	}
	if m.profileErr {
		t.Error("profile error flag should reset on success")
	}
	if m.results != nil || m.listState != resultIdle {
		t.Error("selection must clear the result list")
	}
	if m.input.Value() != "" {
		t.Error("selection must clear the search input")
	}
}

func TestProfileFailureLeavesSearchUntouched(t *testing.T) {
	m := newTestModel()
	m.input.SetValue("smith")
	m.results = []api.UserSummary{{Username: "jsmith"}}
	m.listState = resultOK

	m = m.handleProfile(ProfileMsg{Username: "jsmith", Err: errors.New("404")})

	if !m.profileErr {
		t.Error("profile error flag should be set")
	}
	if len(m.results) != 1 || m.listState != resultOK {
		t.Error("failed profile fetch must not disturb the result list")
	}
	if m.input.Value() != "smith" {
		t.Error("failed profile fetch must not clear the input")
	}
}

func TestToggleAndCloseIdempotent(t *testing.T) {
	m := newTestModel()
	if m.Visible() {
		t.Fatal("sidebar should start hidden")
	}

	m = m.Toggle()
	if !m.Visible() {
		t.Error("toggle should show the sidebar")
	}

	m = m.Close()
	m = m.Close()
	if m.Visible() {
		t.Error("repeated close must stay hidden")
	}
}

func TestLoyaltyIcon(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{"Gold", "🥇"},
		{"Silver", "🥈"},
		{"Platinum", "💎"},
		{"Diamond", "💎"},
		{"Basic", "🎫"},
		{"Bronze", "🥉"},
		{"Obsidian", "🎫"},
		{"", "🎫"},
		{"gold", "🎫"}, // the mapping is keyed on the raw status
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			if got := LoyaltyIcon(tt.status); got != tt.want {
				t.Errorf("LoyaltyIcon(%q) = %q, want %q", tt.status, got, tt.want)
			}
		})
	}
}

func TestStatusClass(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{"Gold", "gold"},
		{"Frequent Flyer", "frequent-flyer"},
		{"  Very  Important  ", "very-important"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			if got := StatusClass(tt.status); got != tt.want {
				t.Errorf("StatusClass(%q) = %q, want %q", tt.status, got, tt.want)
			}
		})
	}
}
