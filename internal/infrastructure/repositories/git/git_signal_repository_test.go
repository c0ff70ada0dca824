//go:build unit

package git_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/depmeta/internal/infrastructure/repositories/git"
)

const commitMessage = "Bump foo from 1.2.0 to 1.3.0\n\n---\nupdated-dependencies:\n" +
	"- dependency-name: foo\n  dependency-type: direct:production\n...\n"

// initRepository creates a repository with one commit on the given branch.
func initRepository(t *testing.T, branch string) (string, plumbing.Hash) {
	t.Helper()

	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	require.NoError(t, err)

	head := plumbing.NewSymbolicReference(plumbing.HEAD, plumbing.NewBranchReferenceName(branch))
	require.NoError(t, repo.Storer.SetReference(head))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "package.json"), []byte("{}\n"), 0o600))
	worktree, err := repo.Worktree()
	require.NoError(t, err)
	_, err = worktree.Add("package.json")
	require.NoError(t, err)

	hash, err := worktree.Commit(commitMessage, &gogit.CommitOptions{
		Author: &object.Signature{Name: "dependabot[bot]", Email: "support@github.com", When: time.Now()},
	})
	require.NoError(t, err)

	return dir, hash
}

func TestSignalRepositoryRead(t *testing.T) {
	t.Parallel()

	t.Run("should read the HEAD commit message and branch name", func(t *testing.T) {
		t.Parallel()

		// given
		dir, _ := initRepository(t, "dependabot/npm_and_yarn/foo-1.3.0")
		repo := git.NewSignalRepository()

		// when
		signal, err := repo.Read(context.Background(), dir)

		// then
		require.NoError(t, err)
		assert.Equal(t, commitMessage, signal.CommitMessage)
		assert.Equal(t, "dependabot/npm_and_yarn/foo-1.3.0", signal.BranchName)
		assert.Empty(t, signal.Body)
	})

	t.Run("should find the repository from a subdirectory", func(t *testing.T) {
		t.Parallel()

		// given
		dir, _ := initRepository(t, "dependabot/pip/requests-2.31.0")
		sub := filepath.Join(dir, "services", "api")
		require.NoError(t, os.MkdirAll(sub, 0o755))
		repo := git.NewSignalRepository()

		// when
		signal, err := repo.Read(context.Background(), sub)

		// then
		require.NoError(t, err)
		assert.Equal(t, "dependabot/pip/requests-2.31.0", signal.BranchName)
	})

	t.Run("should fail on a detached HEAD", func(t *testing.T) {
		t.Parallel()

		// given
		dir, hash := initRepository(t, "main")
		opened, err := gogit.PlainOpen(dir)
		require.NoError(t, err)
		require.NoError(t, opened.Storer.SetReference(plumbing.NewHashReference(plumbing.HEAD, hash)))
		repo := git.NewSignalRepository()

		// when
		_, readErr := repo.Read(context.Background(), dir)

		// then
		require.ErrorIs(t, readErr, git.ErrDetachedHead)
	})

	t.Run("should fail outside a repository", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		repo := git.NewSignalRepository()

		// when
		_, err := repo.Read(context.Background(), dir)

		// then
		require.Error(t, err)
	})
}
