// SPDX-License-Identifier: Apache-2.0

package parsers

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/onebuilding/energy-report/internal/audit"
	"github.com/onebuilding/energy-report/internal/logger"
)

var pdfMagic = []byte("%PDF-")

func isPDF(data []byte) bool {
	return bytes.HasPrefix(bytes.TrimLeft(data, " \t\r\n"), pdfMagic)
}

// Page is the best-effort text of one PDF page as returned by a text layer.
// Rows holds the cells of tables the layer detected on the page.
type Page struct {
	Number int
	Text   string
	Rows   [][]string
}

// TextLayer extracts the text of a PDF. Layout recovery is the layer's job;
// the parser only flattens what it returns.
type TextLayer interface {
	ExtractText(ctx context.Context, data []byte) ([]Page, error)
}

// TextLayerFunc adapts a function to TextLayer.
type TextLayerFunc func(ctx context.Context, data []byte) ([]Page, error)

func (f TextLayerFunc) ExtractText(ctx context.Context, data []byte) ([]Page, error) {
	return f(ctx, data)
}

// PDFParser turns a PDF into text through a TextLayer. Table rows are joined
// with " | " so the row patterns used for Markdown tables also apply.
type PDFParser struct {
	layer  TextLayer
	logger *slog.Logger
}

// NewPDFParser creates a PDFParser. layer may be nil, in which case every
// Parse call fails with audit.ErrTextLayer.
func NewPDFParser(layer TextLayer, log *slog.Logger) *PDFParser {
	if log == nil {
		log = logger.Discard()
	}
	return &PDFParser{layer: layer, logger: log}
}

func (p *PDFParser) Name() string {
	return "pdf"
}

func (p *PDFParser) CanHandle(source audit.Source) bool {
	if strings.EqualFold(source.Format, "pdf") {
		return true
	}
	return source.Format == "" && isPDF(source.Content)
}

func (p *PDFParser) Parse(ctx context.Context, source audit.Source) (string, error) {
	if len(source.Content) == 0 {
		return "", audit.ErrEmptyContent
	}
	if p.layer == nil {
		return "", fmt.Errorf("%w: no text layer configured", audit.ErrTextLayer)
	}

	count, err := api.PageCount(bytes.NewReader(source.Content), nil)
	if err != nil {
		p.logger.Warn("failed to extract PDF page count", "source", source.ID, "error", err)
		count = 0
	}

	pages, err := p.layer.ExtractText(ctx, source.Content)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", audit.ErrTextLayer, source.ID, err)
	}
	if count > 0 && len(pages) != count {
		p.logger.Warn("text layer page count mismatch",
			"source", source.ID,
			"pdf_pages", count,
			"text_pages", len(pages),
		)
	}

	return audit.Normalize(Flatten(pages)), nil
}

// Flatten joins page text and table rows in page order.
func Flatten(pages []Page) string {
	var b strings.Builder
	for i, page := range pages {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(page.Text)
		for _, row := range page.Rows {
			cells := make([]string, 0, len(row))
			for _, c := range row {
				cells = append(cells, strings.TrimSpace(strings.ReplaceAll(c, "\n", " ")))
			}
			b.WriteString("\n| ")
			b.WriteString(strings.Join(cells, " | "))
			b.WriteString(" |")
		}
	}
	return b.String()
}
