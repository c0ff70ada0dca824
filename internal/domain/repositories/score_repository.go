package repositories

import "context"

// ScoreRepository returns the compatibility score of moving a dependency between two versions.
type ScoreRepository interface {
	GetScore(ctx context.Context, dependencyName, previousVersion, newVersion, ecosystem string) (float64, error)
}
