package commands

import (
	"context"
	"fmt"
	"strings"

	logger "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/rios0rios0/depmeta/internal/domain/entities"
	"github.com/rios0rios0/depmeta/internal/domain/repositories"
)

// maintainerChangesMarker is the literal Dependabot writes in the PR body when the
// maintainers of the updated package changed between versions.
const maintainerChangesMarker = "Maintainer changes"

// Parse is the interface for the parse command.
type Parse interface {
	Execute(ctx context.Context, signal entities.RawUpdateSignal) ([]entities.UpdatedDependency, error)
}

// ParseCommand turns the text of a Dependabot update into one record per updated dependency.
type ParseCommand struct {
	alerts      repositories.AlertRepository
	scores      repositories.ScoreRepository
	concurrency int
}

// NewParseCommand creates a new ParseCommand with the given enrichment repositories.
func NewParseCommand(
	alerts repositories.AlertRepository,
	scores repositories.ScoreRepository,
	settings *entities.Settings,
) *ParseCommand {
	concurrency := settings.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	return &ParseCommand{
		alerts:      alerts,
		scores:      scores,
		concurrency: concurrency,
	}
}

// Execute parses the signal and enriches every dependency entry.
//
// An empty result is normal: it means the input was not authored by the bot
// (no metadata block, or a branch without the bot prefix).
func (it *ParseCommand) Execute(
	ctx context.Context,
	signal entities.RawUpdateSignal,
) ([]entities.UpdatedDependency, error) {
	delimiter, ok := entities.BranchDelimiter(signal.BranchName)
	if !ok {
		logger.Debugf("Branch %q is not a Dependabot branch", signal.BranchName)
		return []entities.UpdatedDependency{}, nil
	}

	commitMessage := strings.ReplaceAll(signal.CommitMessage, "\r\n", "\n")

	frontMatter, found, err := entities.ExtractFrontMatter(commitMessage)
	if err != nil {
		return nil, err
	}
	if !found {
		logger.Debug("No metadata block found in commit message")
		return []entities.UpdatedDependency{}, nil
	}

	versions := entities.MatchVersionPair(commitMessage)
	if versions.IsEmpty() {
		logger.Debug("No version template matched the commit message")
	}

	batch := batchContext{
		signal:            signal,
		delimiter:         delimiter,
		versions:          versions,
		dependencyGroup:   frontMatter.DependencyGroup,
		maintainerChanges: strings.Contains(signal.Body, maintainerChangesMarker),
	}

	records := make([]entities.UpdatedDependency, len(frontMatter.UpdatedDependencies))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(it.concurrency)

	for i, entry := range frontMatter.UpdatedDependencies {
		group.Go(func() error {
			record, buildErr := it.buildRecord(groupCtx, batch, i, entry)
			if buildErr != nil {
				return buildErr
			}
			records[i] = record
			return nil
		})
	}

	if waitErr := group.Wait(); waitErr != nil {
		return nil, waitErr
	}

	logger.Debugf("Parsed %d dependency records", len(records))
	return records, nil
}

// batchContext holds what every record of one update shares.
type batchContext struct {
	signal            entities.RawUpdateSignal
	delimiter         string
	versions          entities.VersionPair
	dependencyGroup   string
	maintainerChanges bool
}

// buildRecord assembles the record of the entry at the given index.
// Only the first entry carries the versions named in the commit subject.
func (it *ParseCommand) buildRecord(
	ctx context.Context,
	batch batchContext,
	index int,
	entry entities.DependencyEntry,
) (entities.UpdatedDependency, error) {
	var versions entities.VersionPair
	if index == 0 {
		versions = batch.versions
	}

	updateType := entities.ClassifyUpdateType(versions.Previous, versions.Next)
	if entry.UpdateType != nil {
		updateType = entities.UpdateType(*entry.UpdateType)
	}

	path := entities.DecomposeBranchPath(batch.signal.BranchName, batch.delimiter, entry.Name)

	alert, err := it.alerts.Lookup(ctx, entry.Name, versions.Previous, path.Directory)
	if err != nil {
		return entities.UpdatedDependency{}, fmt.Errorf("alert lookup for %q failed: %w", entry.Name, err)
	}

	score, err := it.scores.GetScore(ctx, entry.Name, versions.Previous, versions.Next, path.Ecosystem)
	if err != nil {
		return entities.UpdatedDependency{}, fmt.Errorf("score lookup for %q failed: %w", entry.Name, err)
	}

	return entities.UpdatedDependency{
		DependencyName:    entry.Name,
		DependencyType:    entry.Type,
		UpdateType:        updateType,
		Directory:         path.Directory,
		PackageEcosystem:  path.Ecosystem,
		TargetBranch:      batch.signal.TargetBranch,
		PrevVersion:       versions.Previous,
		NewVersion:        versions.Next,
		CompatScore:       score,
		MaintainerChanges: batch.maintainerChanges,
		DependencyGroup:   batch.dependencyGroup,
		PackageURL:        entities.PackageURL(path.Ecosystem, entry.Name, versions.Next),
		DependencyAlert:   alert,
	}, nil
}
