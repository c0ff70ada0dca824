package noop

import (
	"context"

	"github.com/rios0rios0/depmeta/internal/domain/repositories"
)

// ScoreRepository always scores zero.
type ScoreRepository struct{}

var _ repositories.ScoreRepository = (*ScoreRepository)(nil)

// NewScoreRepository creates a no-op ScoreRepository.
func NewScoreRepository() *ScoreRepository {
	return &ScoreRepository{}
}

func (r *ScoreRepository) GetScore(
	_ context.Context, _, _, _, _ string,
) (float64, error) {
	return 0, nil
}
