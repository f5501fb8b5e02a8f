// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"testing"

	"github.com/jeranaias/flightdeck-tui/internal/api"
)

func TestClassifyProvider(t *testing.T) {
	tests := []struct {
		provider string
		want     ProviderKind
	}{
		{"OpenAI (Cloud)", ProviderCloudHosted},
		{"openai", ProviderCloudHosted},
		{"Ollama (Local)", ProviderLocalHosted},
		{"Anthropic", ProviderGeneric},
		{"", ProviderGeneric},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			if got := ClassifyProvider(tt.provider); got != tt.want {
				t.Errorf("ClassifyProvider(%q) = %v, want %v", tt.provider, got, tt.want)
			}
		})
	}
}

func TestProviderBadgeText(t *testing.T) {
	info := api.ProviderInfo{Provider: "OpenAI (Cloud)", Model: "gpt-4o-mini"}
	want := "☁ OpenAI (Cloud) - gpt-4o-mini"
	if got := ProviderBadgeText(info); got != want {
		t.Errorf("ProviderBadgeText = %q, want %q", got, want)
	}

	local := api.ProviderInfo{Provider: "Ollama (Local)", Model: "llama3.1"}
	if got := ProviderBadgeText(local); got != "⌂ Ollama (Local) - llama3.1" {
		t.Errorf("ProviderBadgeText = %q", got)
	}

	other := api.ProviderInfo{Provider: "Anthropic", Model: "claude"}
	if got := ProviderBadgeText(other); got != "🤖 Anthropic - claude" {
		t.Errorf("ProviderBadgeText = %q", got)
	}
}
