//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/depmeta/internal/domain/entities"
	"github.com/rios0rios0/depmeta/internal/domain/repositories"
)

// StubSignalRepository implements repositories.SignalRepository with a fixed answer.
type StubSignalRepository struct {
	Signal  entities.RawUpdateSignal
	ReadErr error

	ReadPaths []string
}

var _ repositories.SignalRepository = (*StubSignalRepository)(nil)

func (s *StubSignalRepository) Read(_ context.Context, path string) (entities.RawUpdateSignal, error) {
	s.ReadPaths = append(s.ReadPaths, path)
	return s.Signal, s.ReadErr
}
