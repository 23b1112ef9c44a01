// SPDX-License-Identifier: Apache-2.0

// Command energy-report analyses Japanese building energy-conservation
// calculation reports, either as an MCP server or one-shot from the shell.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/onebuilding/energy-report/internal/analysis"
	"github.com/onebuilding/energy-report/internal/audit/parsers"
	"github.com/onebuilding/energy-report/internal/config"
	"github.com/onebuilding/energy-report/internal/logger"
	"github.com/onebuilding/energy-report/internal/report"
	"github.com/onebuilding/energy-report/internal/tool"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "energy-report",
		Short:         "Extract and evaluate building energy-conservation reports",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML config file (default $"+config.EnvConfigFile+")")

	root.AddCommand(
		newServeCmd(&configPath),
		newAnalyzeCmd(&configPath),
	)
	return root
}

// app holds what every subcommand needs once the config is loaded.
type app struct {
	log      *slog.Logger
	analyzer *tool.Analyzer
	pipeline *analysis.Pipeline
}

func setup(cmd *cobra.Command, configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	// stdout carries MCP frames or command output, so logs go to stderr.
	log, err := logger.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	var layer parsers.TextLayer
	if cfg.Analysis.TextLayer != "" {
		cl, err := parsers.NewCommandLayer(cfg.Analysis.TextLayer)
		if err != nil {
			return nil, err
		}
		layer = cl
	}

	pipeline := analysis.NewDefault(cfg, layer, log)
	return &app{
		log:      log,
		pipeline: pipeline,
		analyzer: tool.NewAnalyzer(pipeline, report.NewBuilder(cfg.Style)),
	}, nil
}
