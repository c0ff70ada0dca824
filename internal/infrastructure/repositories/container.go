package repositories

import (
	"strings"

	logger "github.com/sirupsen/logrus"
	"go.uber.org/dig"

	"github.com/rios0rios0/depmeta/internal/domain/entities"
	domainRepos "github.com/rios0rios0/depmeta/internal/domain/repositories"
	gitRepo "github.com/rios0rios0/depmeta/internal/infrastructure/repositories/git"
	"github.com/rios0rios0/depmeta/internal/infrastructure/repositories/noop"
	osvRepo "github.com/rios0rios0/depmeta/internal/infrastructure/repositories/osv"
	scoreRepo "github.com/rios0rios0/depmeta/internal/infrastructure/repositories/scores"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(osvRepo.NewDefaultComparatorRegistry); err != nil {
		return err
	}
	if err := container.Provide(NewAlertRepository); err != nil {
		return err
	}
	if err := container.Provide(NewScoreRepository); err != nil {
		return err
	}
	if err := container.Provide(func() domainRepos.SignalRepository {
		return gitRepo.NewSignalRepository()
	}); err != nil {
		return err
	}

	return nil
}

// NewAlertRepository selects the advisory source configured in settings.
func NewAlertRepository(
	settings *entities.Settings,
	comparators *osvRepo.ComparatorRegistry,
) (domainRepos.AlertRepository, error) {
	if settings.Advisories.Path == "" {
		return noop.NewAlertRepository(), nil
	}

	logger.Debugf("Advisory comparators registered for: %s", strings.Join(comparators.Names(), ", "))
	repo, err := osvRepo.LoadAlertRepository(settings.Advisories.Path, comparators)
	if err != nil {
		return nil, err
	}
	return repo, nil
}

// NewScoreRepository selects the compatibility score source configured in settings.
func NewScoreRepository(settings *entities.Settings) (domainRepos.ScoreRepository, error) {
	if settings.Scores.Path == "" {
		return noop.NewScoreRepository(), nil
	}

	repo, err := scoreRepo.LoadScoreTableRepository(settings.Scores.Path)
	if err != nil {
		return nil, err
	}
	return repo, nil
}
