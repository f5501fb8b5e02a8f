// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for the chat transcript.
package model

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// ORIGIN TYPE
// =============================================================================

// Origin represents the sender of a message.
type Origin string

const (
	OriginUser      Origin = "user"
	OriginAssistant Origin = "assistant"
	OriginSystem    Origin = "system"
)

// String returns the string representation of the origin.
func (o Origin) String() string {
	return string(o)
}

// DisplayName returns a human-readable name for the origin.
func (o Origin) DisplayName() string {
	switch o {
	case OriginUser:
		return "You"
	case OriginAssistant:
		return "Assistant"
	case OriginSystem:
		return "System"
	default:
		return string(o)
	}
}

// =============================================================================
// CONTENT KIND
// =============================================================================

// ContentKind distinguishes how message content may be rendered.
//
// User-entered text is never interpreted as markup; only content that came
// from the assistant service is. The kind travels with the message so a
// renderer cannot confuse the two.
type ContentKind int

const (
	// PlainText content is rendered verbatim.
	PlainText ContentKind = iota
	// TrustedMarkup content came from the assistant and may be rendered
	// as markdown.
	TrustedMarkup
)

// =============================================================================
// MESSAGE TYPE
// =============================================================================

// Message represents a single entry in the transcript.
// Messages are immutable once created.
type Message struct {
	ID        string
	Origin    Origin
	Kind      ContentKind
	Content   string
	Timestamp time.Time
}

// NewMessage creates a new message with a generated ID.
func NewMessage(origin Origin, kind ContentKind, content string) Message {
	return Message{
		ID:        uuid.NewString(),
		Origin:    origin,
		Kind:      kind,
		Content:   content,
		Timestamp: time.Now(),
	}
}

// NewUserMessage creates a plain-text message from the user.
func NewUserMessage(content string) Message {
	return NewMessage(OriginUser, PlainText, content)
}

// NewAssistantMessage creates a trusted-markup message from the assistant.
func NewAssistantMessage(content string) Message {
	return NewMessage(OriginAssistant, TrustedMarkup, content)
}

// NewSystemMessage creates a plain-text system notice.
func NewSystemMessage(content string) Message {
	return NewMessage(OriginSystem, PlainText, content)
}
