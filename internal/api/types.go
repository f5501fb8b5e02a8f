// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package api provides the HTTP client for the airline assistant service.
package api

import (
	"sort"
	"strings"

	"github.com/jeranaias/flightdeck-tui/internal/util"
)

// =============================================================================
// CHAT TYPES
// =============================================================================

// ChatRequest is the payload for a chat message.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse is the assistant's reply envelope.
type ChatResponse struct {
	Response string `json:"response"`
}

// =============================================================================
// USER TYPES
// =============================================================================

// UserSummary is a single entry in user search results.
type UserSummary struct {
	Username      string `json:"username"`
	LastName      string `json:"lastName"`
	LoyaltyStatus string `json:"loyaltyStatus"`
	Airline       string `json:"airline"`
}

// DisplayName returns the name shown for the user: the last name when
// present, otherwise the username.
func (u UserSummary) DisplayName() string {
	if u.LastName != "" {
		return u.LastName
	}
	return u.Username
}

// UserProfile is the full profile for a single user.
type UserProfile struct {
	Username         string `json:"username"`
	LastName         string `json:"lastName"`
	LoyaltyNumber    string `json:"loyaltyNumber"`
	LoyaltyStatus    string `json:"loyaltyStatus"`
	PreferredAirport string `json:"preferredAirport"`
	Airline          string `json:"airline"`
}

// DisplayName returns the name shown for the user: the last name when
// present, otherwise the username.
func (u UserProfile) DisplayName() string {
	if u.LastName != "" {
		return u.LastName
	}
	return u.Username
}

// Initials returns the first two characters of the display name, uppercased.
func (u UserProfile) Initials() string {
	name := u.LastName
	if name == "" {
		name = u.Username
	}
	return strings.ToUpper(util.SafeSubstring(name, 0, 2))
}

// =============================================================================
// PROVIDER TYPES
// =============================================================================

// ProviderInfo describes the model provider backing the assistant.
type ProviderInfo struct {
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

// =============================================================================
// KNOWLEDGE TYPES
// =============================================================================

// KnowledgeInfo reports the size of the knowledge base.
type KnowledgeInfo struct {
	DocumentCount int `json:"documentCount"`
}

// KnowledgeQueryRequest is the payload for a knowledge base query.
type KnowledgeQueryRequest struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

// QueryResult is the response to a knowledge base query.
type QueryResult struct {
	Documents        []DocumentMatch `json:"documents"`
	FormattedContext string          `json:"formattedContext"`
}

// DocumentMatch is a single retrieved document chunk.
type DocumentMatch struct {
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata"`
}

// metadata keys handled specially by the document card renderer.
var reservedMetadataKeys = map[string]bool{
	"source":   true,
	"filename": true,
	"type":     true,
}

// Source returns the document's source label, falling back to a fixed
// placeholder when the metadata carries none.
func (d DocumentMatch) Source() string {
	if s, ok := d.Metadata["source"].(string); ok && s != "" {
		return s
	}
	return "Unknown source"
}

// Chunk returns the chunk index when present in the metadata.
// JSON numbers decode as float64; int covers values set in tests.
func (d DocumentMatch) Chunk() (int, bool) {
	switch v := d.Metadata["chunk"].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	}
	return 0, false
}

// DocType returns the document's declared type, or "" when absent.
func (d DocumentMatch) DocType() string {
	if t, ok := d.Metadata["type"].(string); ok {
		return t
	}
	return ""
}

// ExtraMetadata returns metadata entries other than source, filename and
// type, sorted by key for stable display.
func (d DocumentMatch) ExtraMetadata() []MetadataEntry {
	var entries []MetadataEntry
	for k, v := range d.Metadata {
		if reservedMetadataKeys[k] {
			continue
		}
		entries = append(entries, MetadataEntry{Key: k, Value: v})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})
	return entries
}

// MetadataEntry is one key/value pair of document metadata.
type MetadataEntry struct {
	Key   string
	Value any
}
