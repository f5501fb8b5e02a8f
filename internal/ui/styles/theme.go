// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App       lipgloss.Style
	Container lipgloss.Style

	// ==========================================================================
	// HEADER STYLES
	// ==========================================================================

	Header         lipgloss.Style
	HeaderTitle    lipgloss.Style
	HeaderSubtitle lipgloss.Style
	ProviderBadge  lipgloss.Style
	ProviderCloud  lipgloss.Style
	ProviderLocal  lipgloss.Style
	ProviderError  lipgloss.Style

	// ==========================================================================
	// MESSAGE BUBBLE STYLES
	// ==========================================================================

	UserBubble      lipgloss.Style
	AssistantBubble lipgloss.Style
	SystemBubble    lipgloss.Style
	MessageMeta     lipgloss.Style

	// ==========================================================================
	// INPUT AREA STYLES
	// ==========================================================================

	InputContainer   lipgloss.Style
	InputPrompt      lipgloss.Style
	CharCount        lipgloss.Style
	CharCountWarning lipgloss.Style
	CharCountDanger  lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style
	Connected    lipgloss.Style
	Disconnected lipgloss.Style

	// ==========================================================================
	// TAB STYLES
	// ==========================================================================

	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	TabGap      lipgloss.Style

	// ==========================================================================
	// LOOKUP SIDEBAR STYLES
	// ==========================================================================

	Sidebar           lipgloss.Style
	SidebarTitle      lipgloss.Style
	ResultRow         lipgloss.Style
	ResultRowSelected lipgloss.Style
	ResultMeta        lipgloss.Style
	ProfileCard       lipgloss.Style
	ProfileInitials   lipgloss.Style
	ProfileName       lipgloss.Style
	ProfileField      lipgloss.Style
	ProfileFieldLabel lipgloss.Style

	// ==========================================================================
	// KNOWLEDGE TESTER STYLES
	// ==========================================================================

	DocCard       lipgloss.Style
	DocSource     lipgloss.Style
	DocMeta       lipgloss.Style
	ContextPanel  lipgloss.Style
	KnowledgeInfo lipgloss.Style

	// ==========================================================================
	// MISC STYLES
	// ==========================================================================

	Spinner     lipgloss.Style
	Placeholder lipgloss.Style
	ErrorText   lipgloss.Style
}

// NewTheme creates a new theme with all styles configured.
func NewTheme() *Theme {
	// Detect terminal capabilities
	colorProfile := termenv.ColorProfile()
	hasTrueColor := colorProfile == termenv.TrueColor
	isDark := termenv.HasDarkBackground()

	t := &Theme{
		IsDark:       isDark,
		HasTrueColor: hasTrueColor,
		ColorProfile: colorProfile,
	}

	t.App = lipgloss.NewStyle().
		Background(Surface)

	t.Container = lipgloss.NewStyle().
		Padding(0, 1)

	t.Header = lipgloss.NewStyle().
		Background(SurfaceDim).
		Padding(0, 2)

	t.HeaderTitle = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.HeaderSubtitle = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.ProviderBadge = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Padding(0, 1)

	t.ProviderCloud = t.ProviderBadge.
		Foreground(ProviderCloud).
		Bold(true)

	t.ProviderLocal = t.ProviderBadge.
		Foreground(ProviderLocal).
		Bold(true)

	t.ProviderError = t.ProviderBadge.
		Foreground(TextMuted).
		Italic(true)

	t.UserBubble = lipgloss.NewStyle().
		Background(UserBubbleBg).
		Foreground(UserBubbleFg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(UserBubbleBorder).
		Padding(0, 1)

	t.AssistantBubble = lipgloss.NewStyle().
		Background(AssistantBubbleBg).
		Foreground(AssistantBubbleFg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(AssistantBubbleBorder).
		Padding(0, 1)

	t.SystemBubble = lipgloss.NewStyle().
		Background(SystemBubbleBg).
		Foreground(SystemBubbleFg).
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(SystemBubbleBorder).
		Padding(0, 1)

	t.MessageMeta = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.InputContainer = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.InputPrompt = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.CharCount = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.CharCountWarning = lipgloss.NewStyle().
		Foreground(Amber)

	t.CharCountDanger = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	t.StatusBar = lipgloss.NewStyle().
		Background(SurfaceDim).
		Foreground(TextSecondary).
		Padding(0, 1)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.Connected = lipgloss.NewStyle().
		Foreground(Emerald)

	t.Disconnected = lipgloss.NewStyle().
		Foreground(Rose)

	t.TabActive = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true).
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderBottom(true).
		BorderForeground(Cyan).
		Padding(0, 2)

	t.TabInactive = lipgloss.NewStyle().
		Foreground(TextMuted).
		Padding(0, 2)

	t.TabGap = lipgloss.NewStyle().
		Foreground(OverlayDim)

	t.Sidebar = lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.SidebarTitle = lipgloss.NewStyle().
		Foreground(Purple).
		Bold(true)

	t.ResultRow = lipgloss.NewStyle().
		Padding(0, 1)

	t.ResultRowSelected = lipgloss.NewStyle().
		Background(SurfaceBright).
		Foreground(TextPrimary).
		Padding(0, 1)

	t.ResultMeta = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.ProfileCard = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Purple).
		Padding(1, 2)

	t.ProfileInitials = lipgloss.NewStyle().
		Background(Purple).
		Foreground(TextInverse).
		Bold(true).
		Padding(0, 1)

	t.ProfileName = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Bold(true)

	t.ProfileField = lipgloss.NewStyle().
		Foreground(TextPrimary)

	t.ProfileFieldLabel = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.DocCard = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Overlay).
		Padding(0, 1)

	t.DocSource = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.DocMeta = lipgloss.NewStyle().
		Foreground(TextMuted)

	t.ContextPanel = lipgloss.NewStyle().
		Background(SurfaceDim).
		Padding(1, 2)

	t.KnowledgeInfo = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true)

	t.Spinner = lipgloss.NewStyle().
		Foreground(Purple)

	t.Placeholder = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	t.ErrorText = lipgloss.NewStyle().
		Foreground(Rose)

	return t
}

// TierBadge returns a badge style for the given normalized loyalty tier class.
func (t *Theme) TierBadge(class string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(TierColor(class)).
		Bold(true)
}
