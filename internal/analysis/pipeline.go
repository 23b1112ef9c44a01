// SPDX-License-Identifier: Apache-2.0

// Package analysis runs documents through parsing, extraction, ZEB
// evaluation and roadmap synthesis.
package analysis

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/onebuilding/energy-report/internal/audit"
	"github.com/onebuilding/energy-report/internal/logger"
	"github.com/onebuilding/energy-report/internal/roadmap"
	"github.com/onebuilding/energy-report/internal/schema"
	"github.com/onebuilding/energy-report/internal/zeb"
)

// Result is the output of one analysed document.
type Result struct {
	ID         string         `json:"id"`
	SourceID   string         `json:"source_id"`
	Parser     string         `json:"parser"`
	Record     audit.Record   `json:"record"`
	Coverage   audit.Coverage `json:"coverage"`
	Compliance zeb.Result     `json:"compliance"`
	Roadmap    []roadmap.Step `json:"roadmap"`
}

// Options configures a Pipeline.
type Options struct {
	// Builder extracts records. Nil uses audit.NewBuilder().
	Builder *audit.Builder
	// Concurrency bounds RunBatch. Values below 1 mean 1.
	Concurrency int
	// Validate checks every result against the output contract.
	Validate bool
	Logger   *slog.Logger
}

type Pipeline struct {
	parsers     []audit.Parser
	builder     *audit.Builder
	concurrency int
	validate    bool
	logger      *slog.Logger
}

// NewPipeline creates a Pipeline with the provided parsers. Parsers are
// consulted in order, so more specific ones go first.
func NewPipeline(opts Options, parsers ...audit.Parser) *Pipeline {
	p := &Pipeline{
		parsers:     parsers,
		builder:     opts.Builder,
		concurrency: opts.Concurrency,
		validate:    opts.Validate,
		logger:      opts.Logger,
	}
	if p.builder == nil {
		p.builder = audit.NewBuilder()
	}
	if p.concurrency < 1 {
		p.concurrency = 1
	}
	if p.logger == nil {
		p.logger = logger.Discard()
	}
	return p
}

// Run analyses a single document.
func (p *Pipeline) Run(ctx context.Context, source audit.Source) (Result, error) {
	if len(source.Content) == 0 {
		return Result{}, fmt.Errorf("source %q: %w", source.ID, audit.ErrEmptyContent)
	}

	parser, err := p.selectParser(source)
	if err != nil {
		return Result{}, err
	}

	text, err := parser.Parse(ctx, source)
	if err != nil {
		return Result{}, fmt.Errorf("parser %q failed: %w", parser.Name(), err)
	}

	record, coverage := p.builder.BuildWithCoverage(text)
	result := Result{
		ID:         uuid.NewString(),
		SourceID:   source.ID,
		Parser:     parser.Name(),
		Record:     record,
		Coverage:   coverage,
		Compliance: zeb.Evaluate(record),
		Roadmap:    roadmap.Build(record),
	}

	if p.validate {
		if err := schema.Validate(schema.Analysis, result); err != nil {
			return Result{}, fmt.Errorf("source %q: %w", source.ID, err)
		}
	}

	p.logger.Info("document analysed",
		"id", result.ID,
		"source", source.ID,
		"parser", result.Parser,
		"methodology", record.Methodology,
		"bei_total", record.BEITotal,
		"tier", result.Compliance.Tier,
		"defaulted", len(coverage.Defaulted),
	)
	return result, nil
}

// RunBatch analyses independent documents concurrently and returns results
// in input order. The first failure cancels the remaining work.
func (p *Pipeline) RunBatch(ctx context.Context, sources []audit.Source) ([]Result, error) {
	results := make([]Result, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.concurrency)
	for i, src := range sources {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := p.Run(ctx, src)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// selectParser returns the first registered parser that can handle the given source.
func (p *Pipeline) selectParser(source audit.Source) (audit.Parser, error) {
	for _, parser := range p.parsers {
		if parser.CanHandle(source) {
			return parser, nil
		}
	}
	return nil, fmt.Errorf("%w: no parser found for source %q (format hint: %q)", audit.ErrUnsupportedFormat, source.ID, source.Format)
}

// RegisteredParsers returns the names of all currently registered parsers.
func (p *Pipeline) RegisteredParsers() []string {
	names := make([]string, len(p.parsers))
	for i, parser := range p.parsers {
		names[i] = parser.Name()
	}
	return names
}
