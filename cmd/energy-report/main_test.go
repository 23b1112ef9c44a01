// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onebuilding/energy-report/internal/config"
)

const towerReport = "# 計算書 モデル建物法\n| 建築物の名称 | 東京タワービル |\n【BEIm】 | 0.65\n"

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, key := range []string{config.EnvConfigFile, config.EnvLogLevel, config.EnvLogFormat, config.EnvConcurrency, config.EnvTextLayer} {
		t.Setenv(key, "")
	}
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// ---------------------------------------------------------------------------
// analyze
// ---------------------------------------------------------------------------

func TestAnalyze_JSON(t *testing.T) {
	path := writeFile(t, "tower.md", towerReport)

	out, err := runCLI(t, "analyze", path)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, path, got["source_id"])
	assert.Equal(t, "markdown", got["parser_used"])
	record := got["record"].(map[string]any)
	assert.Equal(t, "model_building", record["methodology"])
	assert.Equal(t, "東京タワービル", record["building_name"])
}

func TestAnalyze_YAML(t *testing.T) {
	path := writeFile(t, "tower.txt", towerReport)

	out, err := runCLI(t, "analyze", "--output", "yaml", path)
	require.NoError(t, err)
	assert.Contains(t, out, "parser_used: markdown")
	assert.Contains(t, out, "methodology: model_building")
}

func TestAnalyze_Batch(t *testing.T) {
	first := writeFile(t, "a.md", towerReport)
	second := writeFile(t, "b.md", "一次エネルギー消費量【BEI】 | 1.05\n")

	out, err := runCLI(t, "analyze", first, second)
	require.NoError(t, err)

	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, first, got[0]["source_id"])
	assert.Equal(t, second, got[1]["source_id"])
}

func TestAnalyze_Errors(t *testing.T) {
	path := writeFile(t, "tower.md", towerReport)
	pdf := writeFile(t, "report.pdf", "%PDF-1.7 stub")

	tests := []struct {
		name        string
		args        []string
		errContains string
	}{
		{name: "no files", args: []string{"analyze"}, errContains: "requires at least 1 arg"},
		{name: "bad output", args: []string{"analyze", "-o", "xml", path}, errContains: "--output"},
		{name: "missing file", args: []string{"analyze", filepath.Join(t.TempDir(), "nope.md")}, errContains: "read"},
		{name: "pdf without text layer", args: []string{"analyze", pdf}, errContains: "text layer"},
		{name: "bad config", args: []string{"--config", filepath.Join(t.TempDir(), "missing.yaml"), "analyze", path}, errContains: "read config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	tests := map[string]string{
		"a.pdf":      "pdf",
		"A.PDF":      "pdf",
		"b.md":       "markdown",
		"b.markdown": "markdown",
		"c.txt":      "text",
		"d.docx":     "",
		"noext":      "",
	}
	for path, want := range tests {
		assert.Equal(t, want, formatFromPath(path), path)
	}
}
