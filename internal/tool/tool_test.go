// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onebuilding/energy-report/internal/analysis"
	"github.com/onebuilding/energy-report/internal/audit"
	"github.com/onebuilding/energy-report/internal/audit/parsers"
	"github.com/onebuilding/energy-report/internal/config"
	"github.com/onebuilding/energy-report/internal/report"
	"github.com/onebuilding/energy-report/internal/zeb"
)

func testAnalyzer() *Analyzer {
	cfg := config.Default()
	cfg.Analysis.Validate = true
	layer := parsers.TextLayerFunc(func(context.Context, []byte) ([]parsers.Page, error) {
		return []parsers.Page{{Number: 1, Text: "モデル建物法", Rows: [][]string{{"【BEIm】", "0.45"}}}}, nil
	})
	return NewAnalyzer(analysis.NewDefault(cfg, layer, nil), report.NewBuilder(cfg.Style))
}

func TestAnalyzeEnergyReport(t *testing.T) {
	ctx := context.Background()
	req := &mcp.CallToolRequest{}
	a := testAnalyzer()

	tests := []struct {
		name           string
		input          InputAnalyzeEnergyReport
		wantErr        bool
		errContains    string
		validateOutput func(t *testing.T, output OutputAnalyzeEnergyReport)
	}{
		{
			name:        "empty content returns error",
			input:       InputAnalyzeEnergyReport{Content: ""},
			wantErr:     true,
			errContains: "content is required",
		},
		{
			name: "model building markdown report",
			input: InputAnalyzeEnergyReport{
				Content:  "# 計算書 モデル建物法\n建築物の名称\n東京タワービル\n【BEIm】 | 0.65",
				Format:   "markdown",
				SourceID: "tower.md",
			},
			validateOutput: func(t *testing.T, output OutputAnalyzeEnergyReport) {
				assert.Equal(t, "markdown", output.ParserUsed)
				assert.Equal(t, "tower.md", output.SourceID)
				assert.NotEmpty(t, output.ID)
				assert.Equal(t, audit.ModelBuilding, output.Record.Methodology)
				assert.Equal(t, "東京タワービル", output.Record.BuildingName)
				assert.Equal(t, audit.Achieved, output.Record.Judgment.Base)
				assert.Equal(t, zeb.ZEBReady, output.Compliance.Tier)
				assert.Equal(t, "BEIm", output.View.Energy.Label)
				assert.Len(t, output.Roadmap, 4)
			},
		},
		{
			name: "standard input report without format hint",
			input: InputAnalyzeEnergyReport{
				Content: "一次エネルギー消費量【BEI】 | 1.05",
			},
			validateOutput: func(t *testing.T, output OutputAnalyzeEnergyReport) {
				assert.Equal(t, "unknown", output.SourceID)
				assert.Equal(t, audit.StandardInput, output.Record.Methodology)
				assert.Equal(t, zeb.NonCompliant, output.Compliance.Tier)
				assert.Equal(t, "基準非適合", output.View.Summary.Verdict)
			},
		},
		{
			name: "base64 pdf goes through the text layer",
			input: InputAnalyzeEnergyReport{
				Content:  base64.StdEncoding.EncodeToString([]byte("%PDF-1.7 stub")),
				Encoding: "base64",
				SourceID: "report.pdf",
			},
			validateOutput: func(t *testing.T, output OutputAnalyzeEnergyReport) {
				assert.Equal(t, "pdf", output.ParserUsed)
				assert.Equal(t, zeb.NearlyZEB, output.Compliance.Tier)
			},
		},
		{
			name: "invalid base64",
			input: InputAnalyzeEnergyReport{
				Content:  "***",
				Encoding: "base64",
			},
			wantErr:     true,
			errContains: "decode base64",
		},
		{
			name: "unknown encoding",
			input: InputAnalyzeEnergyReport{
				Content:  "x",
				Encoding: "rot13",
			},
			wantErr:     true,
			errContains: "unsupported encoding",
		},
		{
			name: "unsupported format returns error",
			input: InputAnalyzeEnergyReport{
				Content: "some binary or unsupported content",
				Format:  "docx",
			},
			wantErr:     true,
			errContains: "unsupported document format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, output, err := a.AnalyzeEnergyReport(ctx, req, tt.input)

			if tt.wantErr {
				require.Error(t, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}

			require.NoError(t, err)
			if tt.validateOutput != nil {
				tt.validateOutput(t, output)
			}
		})
	}
}

func TestClassifyMethodology(t *testing.T) {
	ctx := context.Background()

	_, out, err := ClassifyMethodology(ctx, &mcp.CallToolRequest{}, InputClassifyMethodology{Content: "【ＢＥＩｍ】 | 0.7"})
	require.NoError(t, err)
	assert.Equal(t, audit.ModelBuilding, out.Methodology)
	assert.Equal(t, "BPIm", out.Labels.Envelope)

	_, out, err = ClassifyMethodology(ctx, &mcp.CallToolRequest{}, InputClassifyMethodology{Content: "標準入力法"})
	require.NoError(t, err)
	assert.Equal(t, audit.StandardInput, out.Methodology)

	_, _, err = ClassifyMethodology(ctx, &mcp.CallToolRequest{}, InputClassifyMethodology{})
	assert.ErrorIs(t, err, audit.ErrEmptyContent)
}

func TestNewServer(t *testing.T) {
	assert.NotPanics(t, func() {
		NewServer("test", testAnalyzer())
	})
}
