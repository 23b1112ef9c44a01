// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/onebuilding/energy-report/internal/audit"
)

// MetadataClassifyMethodology describes the classify_methodology tool.
var MetadataClassifyMethodology = &mcp.Tool{
	Name: "classify_methodology",
	Description: "Decide whether a report was produced with the standard input method (標準入力法) " +
		"or the model building method (モデル建物法) and return the index labels that go with it.",
	InputSchema: map[string]interface{}{
		"type":     "object",
		"required": []string{"content"},
		"properties": map[string]interface{}{
			"content": map[string]interface{}{
				"type":        "string",
				"description": "Report text",
			},
		},
	},
	OutputSchema: map[string]interface{}{
		"type": "object",
	},
}

type InputClassifyMethodology struct {
	Content string `json:"content"`
}

type OutputClassifyMethodology struct {
	Methodology audit.Methodology `json:"methodology"`
	Labels      audit.Labels      `json:"labels"`
}

// ClassifyMethodology classifies the normalized report text.
func ClassifyMethodology(_ context.Context, _ *mcp.CallToolRequest, input InputClassifyMethodology) (*mcp.CallToolResult, OutputClassifyMethodology, error) {
	if input.Content == "" {
		return nil, OutputClassifyMethodology{}, audit.ErrEmptyContent
	}
	m := audit.Classify(audit.Normalize(input.Content))
	return nil, OutputClassifyMethodology{
		Methodology: m,
		Labels:      audit.LabelsFor(m),
	}, nil
}
