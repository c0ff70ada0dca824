//go:build unit

package osv_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/osv-scanner/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/depmeta/internal/domain/entities"
	"github.com/rios0rios0/depmeta/internal/infrastructure/repositories/osv"
)

const criticalVector = "CVSS:3.1/AV:N/AC:L/PR:N/UI:N/S:U/C:H/I:H/A:H"

func affectedRange(ecosystem, name string, events ...models.Event) models.Affected {
	return models.Affected{
		Package: models.Package{Ecosystem: models.Ecosystem(ecosystem), Name: name},
		Ranges:  []models.Range{{Type: models.RangeEcosystem, Events: events}},
	}
}

func TestAlertRepositoryLookup(t *testing.T) {
	t.Parallel()

	lodash := models.Vulnerability{
		ID:       "GHSA-35jh-r3h4-6jhm",
		Severity: []models.Severity{{Type: models.SeverityCVSSV3, Score: criticalVector}},
		Affected: []models.Affected{
			affectedRange("npm", "lodash", models.Event{Introduced: "0"}, models.Event{Fixed: "4.17.21"}),
		},
	}
	requests := models.Vulnerability{
		ID:      "PYSEC-2023-74",
		Aliases: []string{"CVE-2023-32681", "GHSA-j8r2-6x86-q33q"},
		Affected: []models.Affected{
			affectedRange("PyPI", "requests",
				models.Event{Introduced: "2.3.0"}, models.Event{LastAffected: "2.30.0"}),
		},
	}
	xnet := models.Vulnerability{
		ID: "GO-2024-2687",
		Affected: []models.Affected{
			affectedRange("Go", "golang.org/x/net", models.Event{Introduced: "0"}, models.Event{Fixed: "0.23.0"}),
		},
	}
	listed := models.Vulnerability{
		ID: "GHSA-xxxx-yyyy-zzzz",
		Affected: []models.Affected{{
			Package:  models.Package{Ecosystem: "RubyGems", Name: "rails"},
			Versions: []string{"7.0.0", "7.0.1"},
		}},
	}
	repo := osv.NewAlertRepository(
		[]models.Vulnerability{lodash, requests, xnet, listed},
		osv.NewDefaultComparatorRegistry(),
	)

	tests := []struct {
		name       string
		dependency string
		version    string
		expected   entities.DependencyAlert
	}{
		{
			name:       "should report an npm version inside an introduced..fixed range",
			dependency: "lodash",
			version:    "4.17.20",
			expected:   entities.DependencyAlert{AlertState: "OPEN", GHSAID: "GHSA-35jh-r3h4-6jhm", CVSS: 9.8},
		},
		{
			name:       "should not report the fixed npm version",
			dependency: "lodash",
			version:    "4.17.21",
		},
		{
			name:       "should report a PyPI version up to last_affected and prefer the GHSA alias",
			dependency: "requests",
			version:    "2.30.0",
			expected:   entities.DependencyAlert{AlertState: "OPEN", GHSAID: "GHSA-j8r2-6x86-q33q"},
		},
		{
			name:       "should not report a PyPI version after last_affected",
			dependency: "requests",
			version:    "2.31.0",
		},
		{
			name:       "should not report a PyPI version before introduced",
			dependency: "requests",
			version:    "2.2.1",
		},
		{
			name:       "should compare Go versions with a v prefix",
			dependency: "golang.org/x/net",
			version:    "v0.17.0",
			expected:   entities.DependencyAlert{AlertState: "OPEN", GHSAID: "GO-2024-2687"},
		},
		{
			name:       "should report an explicitly listed version",
			dependency: "rails",
			version:    "7.0.1",
			expected:   entities.DependencyAlert{AlertState: "OPEN", GHSAID: "GHSA-xxxx-yyyy-zzzz"},
		},
		{
			name:       "should report nothing for an unknown package",
			dependency: "left-pad",
			version:    "1.0.0",
		},
		{
			name:       "should report nothing for an empty version",
			dependency: "lodash",
			version:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			dependency, version := tt.dependency, tt.version

			// when
			alert, err := repo.Lookup(context.Background(), dependency, version, "/")

			// then
			require.NoError(t, err)
			assert.Equal(t, tt.expected.AlertState, alert.AlertState)
			assert.Equal(t, tt.expected.GHSAID, alert.GHSAID)
			assert.InDelta(t, tt.expected.CVSS, alert.CVSS, 0.001)
		})
	}

	t.Run("should match advisories by package name whatever the ecosystem", func(t *testing.T) {
		t.Parallel()

		// given
		npmRequests := models.Vulnerability{
			ID: "GHSA-npm-requests",
			Affected: []models.Affected{{
				Package:  models.Package{Ecosystem: "npm", Name: "requests"},
				Versions: []string{"2.30.0"},
			}},
		}
		nameOnlyRepo := osv.NewAlertRepository([]models.Vulnerability{npmRequests}, osv.NewDefaultComparatorRegistry())

		// when
		alert, err := nameOnlyRepo.Lookup(context.Background(), "requests", "2.30.0", "/")

		// then
		require.NoError(t, err)
		assert.Equal(t, "GHSA-npm-requests", alert.GHSAID)
	})

	t.Run("should keep the most severe of several matching advisories", func(t *testing.T) {
		t.Parallel()

		// given
		minor := models.Vulnerability{
			ID:       "GHSA-minor",
			Severity: []models.Severity{{Type: models.SeverityCVSSV3, Score: "CVSS:3.0/AV:N/AC:L/PR:N/UI:R/S:U/C:L/I:L/A:N"}},
			Affected: []models.Affected{affectedRange("npm", "lodash", models.Event{Introduced: "0"})},
		}
		severeRepo := osv.NewAlertRepository([]models.Vulnerability{minor, lodash}, osv.NewDefaultComparatorRegistry())

		// when
		alert, err := severeRepo.Lookup(context.Background(), "lodash", "4.17.0", "/")

		// then
		require.NoError(t, err)
		assert.Equal(t, "GHSA-35jh-r3h4-6jhm", alert.GHSAID)
		assert.InDelta(t, 9.8, alert.CVSS, 0.001)
	})
}

func TestLoadAlertRepository(t *testing.T) {
	t.Parallel()

	single := `{
  "id": "GHSA-35jh-r3h4-6jhm",
  "affected": [{
    "package": {"ecosystem": "npm", "name": "lodash"},
    "ranges": [{"type": "SEMVER", "events": [{"introduced": "0"}, {"fixed": "4.17.21"}]}]
  }]
}`
	array := `[{
  "id": "GHSA-j8r2-6x86-q33q",
  "affected": [{
    "package": {"ecosystem": "PyPI", "name": "requests"},
    "versions": ["2.30.0"]
  }]
}]`

	t.Run("should load every JSON document of a directory tree", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "npm"), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "npm", "lodash.json"), []byte(single), 0o600))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "pypi.json"), []byte(array), 0o600))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("# advisories"), 0o600))

		// when
		repo, err := osv.LoadAlertRepository(dir, osv.NewDefaultComparatorRegistry())

		// then
		require.NoError(t, err)
		lodash, lodashErr := repo.Lookup(context.Background(), "lodash", "4.17.20", "/")
		require.NoError(t, lodashErr)
		assert.Equal(t, "GHSA-35jh-r3h4-6jhm", lodash.GHSAID)
		requests, requestsErr := repo.Lookup(context.Background(), "requests", "2.30.0", "/")
		require.NoError(t, requestsErr)
		assert.Equal(t, "GHSA-j8r2-6x86-q33q", requests.GHSAID)
	})

	t.Run("should load a single file", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "advisories.json")
		require.NoError(t, os.WriteFile(path, []byte(array), 0o600))

		// when
		repo, err := osv.LoadAlertRepository(path, osv.NewDefaultComparatorRegistry())

		// then
		require.NoError(t, err)
		alert, lookupErr := repo.Lookup(context.Background(), "requests", "2.30.0", "/")
		require.NoError(t, lookupErr)
		assert.Equal(t, "OPEN", alert.AlertState)
	})

	t.Run("should fail on an invalid document", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "broken.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

		// when
		_, err := osv.LoadAlertRepository(path, osv.NewDefaultComparatorRegistry())

		// then
		require.Error(t, err)
	})

	t.Run("should fail on a missing path", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "missing")

		// when
		_, err := osv.LoadAlertRepository(path, osv.NewDefaultComparatorRegistry())

		// then
		require.Error(t, err)
	})
}
