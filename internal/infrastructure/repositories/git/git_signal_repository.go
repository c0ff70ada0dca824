// Package git reads update signals from a local Git checkout.
package git

import (
	"context"
	"errors"
	"fmt"

	gogit "github.com/go-git/go-git/v5"

	"github.com/rios0rios0/depmeta/internal/domain/entities"
	"github.com/rios0rios0/depmeta/internal/domain/repositories"
)

// ErrDetachedHead is returned when HEAD does not point to a branch.
var ErrDetachedHead = errors.New("HEAD is not on a branch")

// SignalRepository reads the HEAD commit message and branch name of a repository.
type SignalRepository struct{}

var _ repositories.SignalRepository = (*SignalRepository)(nil)

// NewSignalRepository creates a new SignalRepository.
func NewSignalRepository() *SignalRepository {
	return &SignalRepository{}
}

// Read opens the repository containing path (searching parent directories) and
// returns its HEAD commit message and current branch name.
func (r *SignalRepository) Read(_ context.Context, path string) (entities.RawUpdateSignal, error) {
	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return entities.RawUpdateSignal{}, fmt.Errorf("failed to open repository: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return entities.RawUpdateSignal{}, fmt.Errorf("failed to resolve HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return entities.RawUpdateSignal{}, ErrDetachedHead
	}

	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return entities.RawUpdateSignal{}, fmt.Errorf("failed to read HEAD commit: %w", err)
	}

	return entities.RawUpdateSignal{
		CommitMessage: commit.Message,
		BranchName:    head.Name().Short(),
	}, nil
}
