// SPDX-License-Identifier: Apache-2.0

package analysis

import (
	"log/slog"

	"github.com/onebuilding/energy-report/internal/audit"
	"github.com/onebuilding/energy-report/internal/audit/parsers"
	"github.com/onebuilding/energy-report/internal/config"
)

// NewDefault builds a Pipeline with every parser registered and the settings
// of cfg. layer backs PDF input and may be nil, in which case PDF sources fail
// with audit.ErrTextLayer. Parser order matters: the PDF parser claims "%PDF-"
// content before the text parser's auto-detection sees it.
func NewDefault(cfg *config.Config, layer parsers.TextLayer, log *slog.Logger) *Pipeline {
	if cfg == nil {
		cfg = config.Default()
	}
	builder := audit.NewBuilder(
		audit.WithWindow(cfg.Analysis.Window),
		audit.WithLogger(log),
	)
	return NewPipeline(
		Options{
			Builder:     builder,
			Concurrency: cfg.Analysis.Concurrency,
			Validate:    cfg.Analysis.Validate,
			Logger:      log,
		},
		parsers.NewPDFParser(layer, log),
		parsers.NewMarkdownParser(),
	)
}
