//go:build unit

package commands_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/depmeta/internal/domain/commands"
	"github.com/rios0rios0/depmeta/internal/domain/entities"
	commanddoubles "github.com/rios0rios0/depmeta/test/domain/commanddoubles"
	doubles "github.com/rios0rios0/depmeta/test/infrastructure/repositorydoubles"
)

func TestLocalCommandExecute(t *testing.T) {
	t.Parallel()

	t.Run("should parse the signal read from the repository with the given body", func(t *testing.T) {
		t.Parallel()

		// given
		signals := &doubles.StubSignalRepository{Signal: entities.RawUpdateSignal{
			CommitMessage: "Bump foo",
			BranchName:    "dependabot/npm_and_yarn/foo-1.3.0",
		}}
		expected := []entities.UpdatedDependency{{DependencyName: "foo"}}
		parse := &commanddoubles.StubParseCommand{Records: expected}
		cmd := commands.NewLocalCommand(signals, parse)
		repoDir := t.TempDir()

		// when
		records, err := cmd.Execute(context.Background(), commands.LocalOptions{
			RepoDir:      repoDir,
			Body:         "Maintainer changes",
			TargetBranch: "develop",
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, expected, records)
		assert.Equal(t, []string{repoDir}, signals.ReadPaths)
		assert.Equal(t, entities.RawUpdateSignal{
			CommitMessage: "Bump foo",
			Body:          "Maintainer changes",
			BranchName:    "dependabot/npm_and_yarn/foo-1.3.0",
			TargetBranch:  "develop",
		}, parse.LastSignal)
	})

	t.Run("should resolve a relative path before reading", func(t *testing.T) {
		t.Parallel()

		// given
		signals := &doubles.StubSignalRepository{}
		parse := &commanddoubles.StubParseCommand{}
		cmd := commands.NewLocalCommand(signals, parse)
		expectedDir, absErr := filepath.Abs(".")
		require.NoError(t, absErr)

		// when
		_, err := cmd.Execute(context.Background(), commands.LocalOptions{RepoDir: "."})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{expectedDir}, signals.ReadPaths)
	})

	t.Run("should not parse when the repository cannot be read", func(t *testing.T) {
		t.Parallel()

		// given
		signals := &doubles.StubSignalRepository{ReadErr: errors.New("not a git repository")}
		parse := &commanddoubles.StubParseCommand{}
		cmd := commands.NewLocalCommand(signals, parse)

		// when
		records, err := cmd.Execute(context.Background(), commands.LocalOptions{RepoDir: t.TempDir()})

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a git repository")
		assert.Nil(t, records)
		assert.Equal(t, 0, parse.ExecuteCallCount)
	})
}
