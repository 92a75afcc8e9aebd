//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/repo2txt/internal/domain/commands"
)

// StubExportCommand is a stub implementation of commands.Export.
type StubExportCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Result           *commands.ExportResult
	LastOpts         commands.ExportOptions
}

var _ commands.Export = (*StubExportCommand)(nil)

func (s *StubExportCommand) Execute(
	_ context.Context,
	opts commands.ExportOptions,
) (*commands.ExportResult, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	if s.ExecuteErr != nil {
		return nil, s.ExecuteErr
	}
	if s.Result != nil {
		return s.Result, nil
	}
	return &commands.ExportResult{OutputPath: opts.Reference.OutputFileName()}, nil
}
