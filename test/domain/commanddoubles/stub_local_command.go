//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/depmeta/internal/domain/commands"
	"github.com/rios0rios0/depmeta/internal/domain/entities"
)

// StubLocalCommand is a stub implementation of commands.Local.
type StubLocalCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Records          []entities.UpdatedDependency
	LastOpts         commands.LocalOptions
}

var _ commands.Local = (*StubLocalCommand)(nil)

func (s *StubLocalCommand) Execute(
	_ context.Context,
	opts commands.LocalOptions,
) ([]entities.UpdatedDependency, error) {
	s.ExecuteCallCount++
	s.LastOpts = opts
	return s.Records, s.ExecuteErr
}
