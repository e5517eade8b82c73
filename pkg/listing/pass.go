package listing

import (
	"fmt"
	"log/slog"
)

//go:generate mockgen -destination mocks/mock_listing.go -package mocks github.com/veldt/tracklens/pkg/listing RowSource,Sink

// Pass runs extraction passes over a row source and hands each completed
// result to the sink. Passes are independent and idempotent; the external
// collaborator triggers Run whenever the underlying row source changes.
type Pass struct {
	source RowSource
	sink   Sink
	logger *slog.Logger
}

// NewPass creates a pass runner.
func NewPass(source RowSource, sink Sink, logger *slog.Logger) *Pass {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pass{source: source, sink: sink, logger: logger}
}

// Run performs one full extraction pass. Hierarchy building and
// classification complete before the sink sees anything; there is no
// partial output.
func (p *Pass) Run() error {
	rows := p.source.Rows()
	result := Extract(rows, p.source.Hints(), p.logger)

	p.logger.Info("extraction pass complete",
		"rows", len(rows),
		"entries", len(result.Entries),
		"records", len(result.Records()),
		"category", result.Category.String())

	if err := p.sink.HandleResult(result); err != nil {
		return fmt.Errorf("handing result to sink: %w", err)
	}
	return nil
}
