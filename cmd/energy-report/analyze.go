// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/onebuilding/energy-report/internal/audit"
	"github.com/onebuilding/energy-report/internal/tool"
)

const (
	outputJSON = "json"
	outputYAML = "yaml"
)

func newAnalyzeCmd(configPath *string) *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "analyze FILE...",
		Short: "Analyse one or more reports and print the results",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != outputJSON && output != outputYAML {
				return fmt.Errorf("--output must be %q or %q, got %q", outputJSON, outputYAML, output)
			}
			a, err := setup(cmd, *configPath)
			if err != nil {
				return err
			}

			sources := make([]audit.Source, 0, len(args))
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read %s: %w", path, err)
				}
				hint := format
				if hint == "" {
					hint = formatFromPath(path)
				}
				sources = append(sources, audit.Source{Content: data, Format: hint, ID: path})
			}

			results, err := a.pipeline.RunBatch(cmd.Context(), sources)
			if err != nil {
				return err
			}

			reports := make([]tool.OutputAnalyzeEnergyReport, len(results))
			for i, res := range results {
				reports[i] = a.analyzer.Report(res)
			}

			var payload any = reports
			if len(reports) == 1 {
				payload = reports[0]
			}
			out, err := encode(payload, output)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", "", "format hint for every file (pdf, markdown, text); inferred from the extension when empty")
	cmd.Flags().StringVarP(&output, "output", "o", outputJSON, "output encoding: json or yaml")
	return cmd
}

// formatFromPath maps a file extension to a parser format hint. Unknown
// extensions return "" and leave detection to the parsers.
func formatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return "pdf"
	case ".md", ".markdown":
		return "markdown"
	case ".txt":
		return "text"
	}
	return ""
}

// encode renders v through its JSON form so both encodings share the json
// tags and custom marshalers.
func encode(v any, output string) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal result: %w", err)
	}
	if output == outputYAML {
		data, err = yaml.JSONToYAML(data)
		if err != nil {
			return nil, fmt.Errorf("convert result to yaml: %w", err)
		}
		return data, nil
	}
	return append(data, '\n'), nil
}
