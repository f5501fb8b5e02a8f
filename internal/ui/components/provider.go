// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/jeranaias/flightdeck-tui/internal/api"
	"github.com/jeranaias/flightdeck-tui/internal/ui/styles"
)

// =============================================================================
// PROVIDER BADGE
// =============================================================================

// providerErrorText is shown when the provider fetch failed.
// The loader is one-shot; there is no retry.
const providerErrorText = "Error loading AI provider information"

// ProviderKind classifies the provider for icon and style selection.
type ProviderKind int

const (
	ProviderGeneric ProviderKind = iota
	ProviderCloudHosted
	ProviderLocalHosted
)

// ClassifyProvider selects the provider kind by substring match on the
// provider name. The match set is fixed: "openai" means cloud-hosted,
// "ollama" means locally-hosted, anything else is generic.
func ClassifyProvider(provider string) ProviderKind {
	name := strings.ToLower(provider)
	switch {
	case strings.Contains(name, "openai"):
		return ProviderCloudHosted
	case strings.Contains(name, "ollama"):
		return ProviderLocalHosted
	default:
		return ProviderGeneric
	}
}

// ProviderIcon returns the badge glyph for a provider kind.
func ProviderIcon(kind ProviderKind) string {
	switch kind {
	case ProviderCloudHosted:
		return "☁"
	case ProviderLocalHosted:
		return "⌂"
	default:
		return "🤖"
	}
}

// ProviderBadgeText builds the badge label: "{icon} {provider} - {model}".
func ProviderBadgeText(info api.ProviderInfo) string {
	icon := ProviderIcon(ClassifyProvider(info.Provider))
	return icon + " " + info.Provider + " - " + info.Model
}

// RenderProviderBadge renders the header provider badge.
// A nil info means the one-shot fetch failed.
func RenderProviderBadge(theme *styles.Theme, info *api.ProviderInfo) string {
	if info == nil {
		return theme.ProviderError.Render(providerErrorText)
	}

	text := ProviderBadgeText(*info)
	switch ClassifyProvider(info.Provider) {
	case ProviderCloudHosted:
		return theme.ProviderCloud.Render(text)
	case ProviderLocalHosted:
		return theme.ProviderLocal.Render(text)
	default:
		return theme.ProviderBadge.Render(text)
	}
}
