// Package noop provides enrichment repositories that contribute nothing.
// They are injected when no advisory or score source is configured.
package noop

import (
	"context"

	"github.com/rios0rios0/depmeta/internal/domain/entities"
	"github.com/rios0rios0/depmeta/internal/domain/repositories"
)

// AlertRepository always reports no advisory.
type AlertRepository struct{}

var _ repositories.AlertRepository = (*AlertRepository)(nil)

// NewAlertRepository creates a no-op AlertRepository.
func NewAlertRepository() *AlertRepository {
	return &AlertRepository{}
}

func (r *AlertRepository) Lookup(
	_ context.Context, _, _, _ string,
) (entities.DependencyAlert, error) {
	return entities.DependencyAlert{}, nil
}
