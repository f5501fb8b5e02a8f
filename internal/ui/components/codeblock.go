// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromaStyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/flightdeck-tui/internal/ui/styles"
)

// =============================================================================
// DOCUMENT CONTENT RENDERER
// =============================================================================

// DocContent renders retrieved document content with optional syntax
// highlighting, selected by the document's declared type.
type DocContent struct {
	Content  string
	DocType  string
	MaxWidth int
}

// NewDocContent creates a document content block.
func NewDocContent(content, docType string) DocContent {
	return DocContent{
		Content:  content,
		DocType:  docType,
		MaxWidth: 80,
	}
}

// Render renders the document content inside a padded block.
// Plain and unknown types are rendered verbatim; structured types get
// chroma highlighting.
func (d DocContent) Render() string {
	content := strings.TrimRight(d.Content, "\n")

	if lang := languageForDocType(d.DocType); lang != "" {
		content = highlightContent(content, lang)
	}

	maxWidth := d.MaxWidth - 4
	if maxWidth < 20 {
		maxWidth = 20
	}

	return lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		Padding(0, 1).
		MaxWidth(maxWidth).
		Render(content)
}

// languageForDocType maps a knowledge base document type to a chroma
// lexer name. Untyped and prose documents return "".
func languageForDocType(docType string) string {
	switch strings.ToLower(docType) {
	case "markdown", "md":
		return "markdown"
	case "json":
		return "json"
	case "yaml", "yml":
		return "yaml"
	case "csv":
		return ""
	case "html":
		return "html"
	default:
		return ""
	}
}

// highlightContent applies syntax highlighting using the chroma library.
// Returns the input unchanged when highlighting fails.
func highlightContent(content, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(content)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := chromaStyles.Get("monokai")
	if style == nil {
		style = chromaStyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, content)
	if err != nil {
		return content
	}

	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return content
	}
	return buf.String()
}
