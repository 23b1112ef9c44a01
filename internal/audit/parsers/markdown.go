// SPDX-License-Identifier: Apache-2.0

package parsers

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/onebuilding/energy-report/internal/audit"
)

// textFormats are the format hints accepted by MarkdownParser.
var textFormats = []string{"markdown", "md", "txt", "text"}

// MarkdownParser accepts hand-authored Markdown reports and plain text that
// was already pulled out of a PDF by another tool.
type MarkdownParser struct{}

// NewMarkdownParser creates a new MarkdownParser.
func NewMarkdownParser() *MarkdownParser {
	return &MarkdownParser{}
}

func (p *MarkdownParser) Name() string {
	return "markdown"
}

// CanHandle returns true for the text format hints, or when no hint is given
// and the content is valid UTF-8 that does not start with a PDF header.
func (p *MarkdownParser) CanHandle(source audit.Source) bool {
	for _, f := range textFormats {
		if strings.EqualFold(source.Format, f) {
			return true
		}
	}
	if source.Format != "" {
		return false
	}
	return !isPDF(source.Content) && utf8.Valid(source.Content)
}

// Parse strips a byte order mark, drops HTML comments left by document
// converters and normalizes the text.
func (p *MarkdownParser) Parse(_ context.Context, source audit.Source) (string, error) {
	if len(source.Content) == 0 {
		return "", audit.ErrEmptyContent
	}
	if !utf8.Valid(source.Content) {
		return "", fmt.Errorf("%w: %s is not valid UTF-8", audit.ErrUnsupportedFormat, source.ID)
	}

	text := strings.TrimPrefix(string(source.Content), "\ufeff")
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	inComment := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case inComment:
			if strings.Contains(trimmed, "-->") {
				inComment = false
			}
			continue
		case strings.HasPrefix(trimmed, "<!--"):
			inComment = !strings.Contains(trimmed, "-->")
			continue
		}
		kept = append(kept, line)
	}
	return audit.Normalize(strings.Join(kept, "\n")), nil
}
