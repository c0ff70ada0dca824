//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"sync"

	"github.com/rios0rios0/depmeta/internal/domain/entities"
	"github.com/rios0rios0/depmeta/internal/domain/repositories"
)

// AlertLookupCall records a single invocation of Lookup.
type AlertLookupCall struct {
	DependencyName string
	Version        string
	Directory      string
}

// SpyAlertRepository implements repositories.AlertRepository as a configurable spy.
// It is safe for concurrent use.
type SpyAlertRepository struct {
	// --- Lookup ---
	Alerts    map[string]entities.DependencyAlert // dependency name -> alert
	LookupErr error

	mu    sync.Mutex
	calls []AlertLookupCall
}

var _ repositories.AlertRepository = (*SpyAlertRepository)(nil)

func (s *SpyAlertRepository) Lookup(
	_ context.Context, dependencyName, version, directory string,
) (entities.DependencyAlert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, AlertLookupCall{
		DependencyName: dependencyName,
		Version:        version,
		Directory:      directory,
	})
	if s.LookupErr != nil {
		return entities.DependencyAlert{}, s.LookupErr
	}
	return s.Alerts[dependencyName], nil
}

// Calls returns a copy of the recorded invocations.
func (s *SpyAlertRepository) Calls() []AlertLookupCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]AlertLookupCall(nil), s.calls...)
}
