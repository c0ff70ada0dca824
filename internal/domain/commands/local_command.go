package commands

import (
	"context"
	"fmt"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depmeta/internal/domain/entities"
	"github.com/rios0rios0/depmeta/internal/domain/repositories"
)

// Local is the interface for the local command (reads the update from a Git checkout).
type Local interface {
	Execute(ctx context.Context, opts LocalOptions) ([]entities.UpdatedDependency, error)
}

// LocalOptions holds runtime options for the local mode.
type LocalOptions struct {
	RepoDir      string
	Body         string // PR description, if the caller has one
	TargetBranch string
}

// LocalCommand parses the HEAD commit of a local repository checked out on a bot branch.
type LocalCommand struct {
	signals repositories.SignalRepository
	parse   Parse
}

// NewLocalCommand creates a new LocalCommand.
func NewLocalCommand(signals repositories.SignalRepository, parse Parse) *LocalCommand {
	return &LocalCommand{
		signals: signals,
		parse:   parse,
	}
}

// Execute reads the HEAD commit message and branch name, then runs the parse command on them.
func (it *LocalCommand) Execute(
	ctx context.Context,
	opts LocalOptions,
) ([]entities.UpdatedDependency, error) {
	repoDir, err := filepath.Abs(opts.RepoDir)
	if err != nil {
		return nil, fmt.Errorf("invalid path: %w", err)
	}

	signal, readErr := it.signals.Read(ctx, repoDir)
	if readErr != nil {
		return nil, fmt.Errorf("failed to read update from %s: %w", repoDir, readErr)
	}
	logger.Infof("Detected branch: %s", signal.BranchName)

	signal.Body = opts.Body
	signal.TargetBranch = opts.TargetBranch

	return it.parse.Execute(ctx, signal)
}
