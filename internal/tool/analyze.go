// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/onebuilding/energy-report/internal/analysis"
	"github.com/onebuilding/energy-report/internal/audit"
	"github.com/onebuilding/energy-report/internal/report"
	"github.com/onebuilding/energy-report/internal/roadmap"
	"github.com/onebuilding/energy-report/internal/zeb"
)

// MetadataAnalyzeEnergyReport describes the analyze_energy_report tool.
var MetadataAnalyzeEnergyReport = &mcp.Tool{
	Name: "analyze_energy_report",
	Description: "Analyze a building energy-efficiency calculation report (標準入力法 or モデル建物法) " +
		"and return the canonical record, compliance judgment, ZEB tier with a comparison checklist, " +
		"an improvement roadmap and a render-ready view. " +
		"Supported formats: markdown, text, pdf. PDF content must be sent base64-encoded. " +
		"Fields that cannot be located take documented defaults; the coverage block lists which ones.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"content"},
		"properties": map[string]interface{}{
			"content": map[string]interface{}{
				"type":        "string",
				"description": "Raw content of the report",
			},
			"format": map[string]interface{}{
				"type":        "string",
				"description": "Format hint for the report. If omitted, auto-detection is used.",
				"enum":        []string{"markdown", "md", "text", "txt", "pdf"},
			},
			"encoding": map[string]interface{}{
				"type":        "string",
				"description": "Encoding of content. Use base64 for PDF files.",
				"enum":        []string{"text", "base64"},
			},
			"source_id": map[string]interface{}{
				"type":        "string",
				"description": "Optional identifier for the report (file path, URL, etc.).",
			},
		},
	},
	OutputSchema: map[string]interface{}{
		"type": "object",
	},
}

// InputAnalyzeEnergyReport is the input for the AnalyzeEnergyReport tool.
type InputAnalyzeEnergyReport struct {
	Content  string `json:"content"`
	Format   string `json:"format"`
	Encoding string `json:"encoding"`
	SourceID string `json:"source_id"`
}

// OutputAnalyzeEnergyReport is the output for the AnalyzeEnergyReport tool.
type OutputAnalyzeEnergyReport struct {
	ID       string `json:"id"`
	SourceID string `json:"source_id"`
	// ParserUsed is the name of the parser that was selected.
	ParserUsed string         `json:"parser_used"`
	Record     audit.Record   `json:"record"`
	Coverage   audit.Coverage `json:"coverage"`
	Compliance zeb.Result     `json:"compliance"`
	Roadmap    []roadmap.Step `json:"roadmap"`
	View       report.View    `json:"view"`
}

// Analyzer serves the analysis tools from one pipeline and view builder.
type Analyzer struct {
	pipeline *analysis.Pipeline
	views    *report.Builder
}

// NewAnalyzer creates an Analyzer.
func NewAnalyzer(pipeline *analysis.Pipeline, views *report.Builder) *Analyzer {
	return &Analyzer{pipeline: pipeline, views: views}
}

// AnalyzeEnergyReport runs the analysis pipeline over the provided report.
func (a *Analyzer) AnalyzeEnergyReport(ctx context.Context, _ *mcp.CallToolRequest, input InputAnalyzeEnergyReport) (*mcp.CallToolResult, OutputAnalyzeEnergyReport, error) {
	if input.Content == "" {
		return nil, OutputAnalyzeEnergyReport{}, audit.ErrEmptyContent
	}

	content, err := decode(input.Content, input.Encoding)
	if err != nil {
		return nil, OutputAnalyzeEnergyReport{}, err
	}

	sourceID := input.SourceID
	if sourceID == "" {
		sourceID = "unknown"
	}

	res, err := a.pipeline.Run(ctx, audit.Source{
		Content: content,
		Format:  input.Format,
		ID:      sourceID,
	})
	if err != nil {
		return nil, OutputAnalyzeEnergyReport{}, err
	}

	return nil, a.Report(res), nil
}

// Report shapes a pipeline result into the tool output, adding the
// presentation view.
func (a *Analyzer) Report(res analysis.Result) OutputAnalyzeEnergyReport {
	return OutputAnalyzeEnergyReport{
		ID:         res.ID,
		SourceID:   res.SourceID,
		ParserUsed: res.Parser,
		Record:     res.Record,
		Coverage:   res.Coverage,
		Compliance: res.Compliance,
		Roadmap:    res.Roadmap,
		View:       a.views.Build(res.Record, res.Compliance, res.Roadmap),
	}
}

func decode(content, encoding string) ([]byte, error) {
	switch strings.ToLower(encoding) {
	case "", "text":
		return []byte(content), nil
	case "base64":
		data, err := base64.StdEncoding.DecodeString(content)
		if err != nil {
			return nil, fmt.Errorf("decode base64 content: %w", err)
		}
		return data, nil
	}
	return nil, fmt.Errorf("unsupported encoding %q", encoding)
}
