//go:build integration || unit || test

package commanddoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/depmeta/internal/domain/commands"
	"github.com/rios0rios0/depmeta/internal/domain/entities"
)

// StubParseCommand is a stub implementation of commands.Parse.
type StubParseCommand struct {
	ExecuteCallCount int
	ExecuteErr       error
	Records          []entities.UpdatedDependency
	LastSignal       entities.RawUpdateSignal
}

var _ commands.Parse = (*StubParseCommand)(nil)

func (s *StubParseCommand) Execute(
	_ context.Context,
	signal entities.RawUpdateSignal,
) ([]entities.UpdatedDependency, error) {
	s.ExecuteCallCount++
	s.LastSignal = signal
	return s.Records, s.ExecuteErr
}
