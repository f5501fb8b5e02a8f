// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package kbtest

import (
	"errors"
	"strings"
	"testing"

	"github.com/jeranaias/flightdeck-tui/internal/api"
	"github.com/jeranaias/flightdeck-tui/internal/config"
	"github.com/jeranaias/flightdeck-tui/internal/ui/styles"
)

func newTestModel() Model {
	return New(api.NewClient(), config.DefaultConfig(), styles.NewTheme())
}

func TestSubmitQueryGated(t *testing.T) {
	m := newTestModel()
	m.busy = true
	m.input.SetValue("baggage rules")

	m, cmd := m.submitQuery()
	if cmd != nil {
		t.Error("busy tester must ignore submissions")
	}
}

func TestSubmitQueryBlankIsNoOp(t *testing.T) {
	m := newTestModel()
	m.input.SetValue("   ")

	m, cmd := m.submitQuery()
	if cmd != nil {
		t.Error("blank query must not be submitted")
	}
	if m.busy {
		t.Error("blank query must not set busy")
	}
}

func TestSubmitQuerySetsBusy(t *testing.T) {
	m := newTestModel()
	m.input.SetValue("baggage rules")

	m, cmd := m.submitQuery()
	if cmd == nil {
		t.Fatal("query should produce a command")
	}
	if !m.busy {
		t.Error("submitted query must set busy")
	}
}

func TestHandleResultReleasesBusyOnError(t *testing.T) {
	m := newTestModel()
	m.busy = true

	m = m.handleResult(QueryResultMsg{Err: errors.New("boom")})

	if m.busy {
		t.Error("busy must release on failure")
	}
	if !m.failed {
		t.Error("failure flag should be set")
	}
	// Both panels show the same fixed error.
	docs := m.renderDocumentsPanel()
	ctx := m.renderContextPanel()
	if !strings.Contains(docs, queryErrorText) {
		t.Errorf("documents panel missing error text: %q", docs)
	}
	if !strings.Contains(ctx, queryErrorText) {
		t.Errorf("context panel missing error text: %q", ctx)
	}
}

func TestHandleResultSuccess(t *testing.T) {
	m := newTestModel()
	m.busy = true
	m.width = 80

	m = m.handleResult(QueryResultMsg{Result: &api.QueryResult{
		Documents: []api.DocumentMatch{
			{Content: "first doc", Metadata: map[string]any{"source": "a.md"}},
			{Content: "second doc", Metadata: map[string]any{"source": "b.md", "chunk": float64(3)}},
		},
		FormattedContext: "first doc\n\nsecond doc",
	}})

	if m.busy || m.failed {
		t.Error("successful result should clear busy and failed")
	}

	docs := m.renderDocumentsPanel()
	// Cards render in server order.
	if strings.Index(docs, "a.md") > strings.Index(docs, "b.md") {
		t.Error("documents out of server order")
	}
	if !strings.Contains(docs, "(Chunk 3)") {
		t.Error("chunk suffix missing")
	}
	if strings.Contains(docs, noDocumentsText) {
		t.Error("placeholder must not appear alongside cards")
	}
}

func TestEmptyDocumentsSinglePlaceholder(t *testing.T) {
	m := newTestModel()
	m.busy = true

	m = m.handleResult(QueryResultMsg{Result: &api.QueryResult{}})

	docs := m.renderDocumentsPanel()
	if got := strings.Count(docs, noDocumentsText); got != 1 {
		t.Errorf("placeholder count = %d, want exactly 1", got)
	}

	ctx := m.renderContextPanel()
	if !strings.Contains(ctx, noContextText) {
		t.Errorf("blank context should show placeholder, got %q", ctx)
	}
}

func TestContextShownVerbatim(t *testing.T) {
	m := newTestModel()
	m.busy = true
	m.width = 200

	raw := "Line one <b>not markup</b>\n* not a bullet"
	m = m.handleResult(QueryResultMsg{Result: &api.QueryResult{FormattedContext: raw}})

	ctx := m.renderContextPanel()
	if !strings.Contains(ctx, "<b>not markup</b>") {
		t.Errorf("context must be verbatim, got %q", ctx)
	}
}

func TestSwitchTabIdempotent(t *testing.T) {
	m := newTestModel()
	if m.ActiveTab() != tabDocuments {
		t.Fatalf("initial tab = %q", m.ActiveTab())
	}

	m = m.SwitchTab(tabContext)
	if m.ActiveTab() != tabContext {
		t.Errorf("active tab = %q, want context", m.ActiveTab())
	}

	m = m.SwitchTab(tabContext)
	if m.ActiveTab() != tabContext {
		t.Error("re-switching the active tab must not change state")
	}

	m = m.SwitchTab("bogus")
	if m.ActiveTab() != tabContext {
		t.Error("unknown tab id must leave the active tab unchanged")
	}
}

func TestHandleInfo(t *testing.T) {
	m := newTestModel()

	m = m.handleInfo(InfoMsg{Info: &api.KnowledgeInfo{DocumentCount: 42}})
	if m.infoLine != "Knowledge Base: 42 documents" {
		t.Errorf("info line = %q", m.infoLine)
	}

	m = m.handleInfo(InfoMsg{Err: errors.New("down")})
	if m.infoLine != infoErrorText {
		t.Errorf("info error line = %q", m.infoLine)
	}
}

func TestCycleLimit(t *testing.T) {
	m := newTestModel()
	if m.Limit() != 5 {
		t.Fatalf("default limit = %d, want 5", m.Limit())
	}

	m.cycleLimit()
	if m.Limit() != 10 {
		t.Errorf("limit after cycle = %d, want 10", m.Limit())
	}
	m.cycleLimit()
	if m.Limit() != 1 {
		t.Errorf("limit should wrap to 1, got %d", m.Limit())
	}
}
