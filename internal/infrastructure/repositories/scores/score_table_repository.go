// Package scores implements compatibility scoring from a static YAML table.
package scores

import (
	"context"
	"fmt"
	"os"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/rios0rios0/depmeta/internal/domain/repositories"
)

const wildcard = "*"

// ScoreRow is one row of the score table. Empty or "*" fields match anything.
type ScoreRow struct {
	Dependency string  `yaml:"dependency"`
	Ecosystem  string  `yaml:"ecosystem"`
	Previous   string  `yaml:"previous"`
	Next       string  `yaml:"next"`
	Score      float64 `yaml:"score"`
}

type scoreTable struct {
	Scores []ScoreRow `yaml:"scores"`
}

// ScoreTableRepository answers score lookups from the first matching table row.
type ScoreTableRepository struct {
	rows []ScoreRow
}

var _ repositories.ScoreRepository = (*ScoreTableRepository)(nil)

// NewScoreTableRepository creates a repository over the given rows.
func NewScoreTableRepository(rows []ScoreRow) *ScoreTableRepository {
	return &ScoreTableRepository{rows: rows}
}

// LoadScoreTableRepository reads the score table from a YAML file.
func LoadScoreTableRepository(path string) (*ScoreTableRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read score table %q: %w", path, err)
	}

	var table scoreTable
	if unmarshalErr := yaml.Unmarshal(data, &table); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse score table %q: %w", path, unmarshalErr)
	}

	logger.Infof("Loaded %d compatibility scores from %s", len(table.Scores), path)
	return NewScoreTableRepository(table.Scores), nil
}

func (r *ScoreTableRepository) GetScore(
	_ context.Context,
	dependencyName, previousVersion, newVersion, ecosystem string,
) (float64, error) {
	for _, row := range r.rows {
		if matches(row.Dependency, dependencyName) &&
			matches(row.Ecosystem, ecosystem) &&
			matches(row.Previous, previousVersion) &&
			matches(row.Next, newVersion) {
			return row.Score, nil
		}
	}
	return 0, nil
}

func matches(pattern, value string) bool {
	return pattern == "" || pattern == wildcard || pattern == value
}
