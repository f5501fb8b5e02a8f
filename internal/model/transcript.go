// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// =============================================================================
// TRANSCRIPT TYPE
// =============================================================================

// Transcript is the append-only list of messages shown in the chat view.
// Entries are never edited in place; clearing is the only removal path.
type Transcript struct {
	messages []Message
	seeded   bool
}

// NewTranscript creates an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{}
}

// SeedWelcome places a welcome message at the head of the transcript.
// The seeded entry survives Clear when preserveWelcome is set.
// Seeding an already-populated transcript is a no-op.
func (t *Transcript) SeedWelcome(content string) {
	if len(t.messages) > 0 || content == "" {
		return
	}
	t.messages = append(t.messages, NewAssistantMessage(content))
	t.seeded = true
}

// Append adds a message to the end of the transcript.
func (t *Transcript) Append(msg Message) {
	t.messages = append(t.messages, msg)
}

// Messages returns the transcript entries in order.
// The returned slice must not be mutated by callers.
func (t *Transcript) Messages() []Message {
	return t.messages
}

// Len returns the number of entries.
func (t *Transcript) Len() int {
	return len(t.messages)
}

// Last returns the most recent message, or false when empty.
func (t *Transcript) Last() (Message, bool) {
	if len(t.messages) == 0 {
		return Message{}, false
	}
	return t.messages[len(t.messages)-1], true
}

// Clear removes transcript entries. When preserveWelcome is set and the
// transcript was seeded, the seeded head entry is kept.
func (t *Transcript) Clear(preserveWelcome bool) {
	if preserveWelcome && t.seeded && len(t.messages) > 0 {
		t.messages = t.messages[:1]
		return
	}
	t.messages = nil
	t.seeded = false
}
