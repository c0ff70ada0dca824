package repositories

import (
	"context"

	"github.com/rios0rios0/depmeta/internal/domain/entities"
)

// SignalRepository reads the commit message and branch name of an update from a
// local source. Body and TargetBranch are left for the caller to fill.
type SignalRepository interface {
	Read(ctx context.Context, path string) (entities.RawUpdateSignal, error)
}
