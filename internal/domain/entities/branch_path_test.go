//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/depmeta/internal/domain/entities"
)

func TestBranchDelimiter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		branch    string
		delimiter string
		ok        bool
	}{
		{name: "should return the slash delimiter", branch: "dependabot/npm_and_yarn/foo-1.3.0", delimiter: "/", ok: true},
		{name: "should return a custom delimiter", branch: "dependabot-pip-requests-2.31.0", delimiter: "-", ok: true},
		{name: "should return a whole multi-byte delimiter", branch: "dependabot→pip→requests-2.31.0", delimiter: "→", ok: true},
		{name: "should reject a branch without the prefix", branch: "feature/dependabot/x", ok: false},
		{name: "should reject a branch that is exactly the prefix", branch: "dependabot", ok: false},
		{name: "should reject an empty branch", branch: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			branch := tt.branch

			// when
			delimiter, ok := entities.BranchDelimiter(branch)

			// then
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.delimiter, delimiter)
		})
	}
}

func TestDecomposeBranchPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		branch     string
		delimiter  string
		dependency string
		expected   entities.BranchPath
	}{
		{
			name:       "should return the root directory for a root manifest",
			branch:     "dependabot/npm_and_yarn/foo-1.3.0",
			delimiter:  "/",
			dependency: "foo",
			expected:   entities.BranchPath{Ecosystem: "npm_and_yarn", Directory: "/"},
		},
		{
			name:       "should rebuild a nested directory",
			branch:     "dependabot/pip/services/api/requests-2.31.0",
			delimiter:  "/",
			dependency: "requests",
			expected:   entities.BranchPath{Ecosystem: "pip", Directory: "/services/api"},
		},
		{
			name:       "should drop one trailing segment per slash in the dependency name",
			branch:     "dependabot/npm_and_yarn/web/@scope/pkg-1.2.3",
			delimiter:  "/",
			dependency: "@scope/pkg",
			expected:   entities.BranchPath{Ecosystem: "npm_and_yarn", Directory: "/web"},
		},
		{
			name:       "should handle Go module paths",
			branch:     "dependabot/go_modules/github.com/stretchr/testify-1.9.0",
			delimiter:  "/",
			dependency: "github.com/stretchr/testify",
			expected:   entities.BranchPath{Ecosystem: "go_modules", Directory: "/"},
		},
		{
			name:       "should split on a custom delimiter",
			branch:     "dependabot-bundler-app-rails-7.1.0",
			delimiter:  "-",
			dependency: "rails",
			expected:   entities.BranchPath{Ecosystem: "bundler", Directory: "/app/rails"},
		},
		{
			name:       "should split on a multi-byte delimiter",
			branch:     "dependabot→pip→services→requests-2.31.0",
			delimiter:  "→",
			dependency: "requests",
			expected:   entities.BranchPath{Ecosystem: "pip", Directory: "/services"},
		},
		{
			name:       "should fall back to the root when too few segments remain",
			branch:     "dependabot/npm_and_yarn",
			delimiter:  "/",
			dependency: "@scope/pkg",
			expected:   entities.BranchPath{Ecosystem: "npm_and_yarn", Directory: "/"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			branch, delimiter, dependency := tt.branch, tt.delimiter, tt.dependency

			// when
			result := entities.DecomposeBranchPath(branch, delimiter, dependency)

			// then
			assert.Equal(t, tt.expected, result)
		})
	}
}
