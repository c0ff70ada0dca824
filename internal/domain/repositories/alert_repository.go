package repositories

import (
	"context"

	"github.com/rios0rios0/depmeta/internal/domain/entities"
)

// AlertRepository looks up security advisories affecting a dependency version.
// Implementations return a zero DependencyAlert when nothing matches.
type AlertRepository interface {
	Lookup(ctx context.Context, dependencyName, version, directory string) (entities.DependencyAlert, error)
}
