//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"sync"

	"github.com/rios0rios0/depmeta/internal/domain/repositories"
)

// ScoreCall records a single invocation of GetScore.
type ScoreCall struct {
	DependencyName  string
	PreviousVersion string
	NewVersion      string
	Ecosystem       string
}

// SpyScoreRepository implements repositories.ScoreRepository as a configurable spy.
// It is safe for concurrent use.
type SpyScoreRepository struct {
	// --- GetScore ---
	Scores      map[string]float64 // dependency name -> score
	GetScoreErr error

	mu    sync.Mutex
	calls []ScoreCall
}

var _ repositories.ScoreRepository = (*SpyScoreRepository)(nil)

func (s *SpyScoreRepository) GetScore(
	_ context.Context, dependencyName, previousVersion, newVersion, ecosystem string,
) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls = append(s.calls, ScoreCall{
		DependencyName:  dependencyName,
		PreviousVersion: previousVersion,
		NewVersion:      newVersion,
		Ecosystem:       ecosystem,
	})
	if s.GetScoreErr != nil {
		return 0, s.GetScoreErr
	}
	return s.Scores[dependencyName], nil
}

// Calls returns a copy of the recorded invocations.
func (s *SpyScoreRepository) Calls() []ScoreCall {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ScoreCall(nil), s.calls...)
}
