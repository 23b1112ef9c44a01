// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/onebuilding/energy-report/internal/tool"
)

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the analysis tools over MCP on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd, *configPath)
			if err != nil {
				return err
			}
			server := tool.NewServer(version, a.analyzer)
			a.log.Info("mcp server starting",
				"name", tool.ServerName,
				"version", version,
				"parsers", a.pipeline.RegisteredParsers(),
			)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
