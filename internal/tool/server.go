// SPDX-License-Identifier: Apache-2.0

// Package tool exposes the analysis as MCP tools.
package tool

import "github.com/modelcontextprotocol/go-sdk/mcp"

// ServerName is the MCP implementation name.
const ServerName = "energy-report"

// NewServer creates an MCP server with every tool registered.
func NewServer(version string, a *Analyzer) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{Name: ServerName, Version: version}, nil)
	mcp.AddTool(server, MetadataAnalyzeEnergyReport, a.AnalyzeEnergyReport)
	mcp.AddTool(server, MetadataClassifyMethodology, ClassifyMethodology)
	return server
}
