// Package osv implements an offline advisory lookup over OSV-format vulnerability documents.
package osv

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/osv-scanner/pkg/models"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depmeta/internal/domain/entities"
	"github.com/rios0rios0/depmeta/internal/domain/repositories"
)

const (
	// alertStateOpen mirrors the state GitHub reports for an unresolved advisory.
	alertStateOpen = "OPEN"

	ghsaPrefix = "GHSA-"
)

// AlertRepository answers advisory lookups from an in-memory set of OSV documents.
type AlertRepository struct {
	vulnerabilities []models.Vulnerability
	comparators     *ComparatorRegistry
}

var _ repositories.AlertRepository = (*AlertRepository)(nil)

// NewAlertRepository creates an AlertRepository over already decoded vulnerabilities.
func NewAlertRepository(
	vulnerabilities []models.Vulnerability,
	comparators *ComparatorRegistry,
) *AlertRepository {
	return &AlertRepository{
		vulnerabilities: vulnerabilities,
		comparators:     comparators,
	}
}

// LoadAlertRepository reads every OSV document under path. The path may be a single
// JSON file (one object or an array) or a directory searched recursively for *.json.
func LoadAlertRepository(path string, comparators *ComparatorRegistry) (*AlertRepository, error) {
	files, err := collectFiles(path)
	if err != nil {
		return nil, err
	}

	var vulnerabilities []models.Vulnerability
	for _, file := range files {
		decoded, decodeErr := decodeFile(file)
		if decodeErr != nil {
			return nil, decodeErr
		}
		vulnerabilities = append(vulnerabilities, decoded...)
	}

	logger.Infof("Loaded %d advisories from %s", len(vulnerabilities), path)
	return NewAlertRepository(vulnerabilities, comparators), nil
}

// Lookup returns the most severe advisory affecting the given version of the dependency.
// An empty version never matches: grouped entries carry no version.
//
// Advisories are matched on package name only. The lookup receives no ecosystem, so an
// advisory for an npm package also applies to a PyPI dependency of the same name; the
// version is compared with the comparator of the advisory's own ecosystem.
func (r *AlertRepository) Lookup(
	_ context.Context,
	dependencyName, version, directory string,
) (entities.DependencyAlert, error) {
	var alert entities.DependencyAlert
	if version == "" {
		return alert, nil
	}

	for _, vuln := range r.vulnerabilities {
		if !r.affects(vuln, dependencyName, version) {
			continue
		}

		score := highestScore(vuln)
		if alert.AlertState == "" || score > alert.CVSS {
			alert = entities.DependencyAlert{
				AlertState: alertStateOpen,
				GHSAID:     advisoryID(vuln),
				CVSS:       score,
			}
		}
	}

	if alert.AlertState != "" {
		logger.Debugf("Advisory %s affects %s@%s in %s", alert.GHSAID, dependencyName, version, directory)
	}
	return alert, nil
}

// affects reports whether any affected entry of vuln covers the dependency version.
func (r *AlertRepository) affects(vuln models.Vulnerability, dependencyName, version string) bool {
	for _, affected := range vuln.Affected {
		if affected.Package.Name != dependencyName {
			continue
		}

		for _, listed := range affected.Versions {
			if listed == version {
				return true
			}
		}

		compare := r.comparators.Get(string(affected.Package.Ecosystem))
		for _, rng := range affected.Ranges {
			if rng.Type != models.RangeEcosystem && rng.Type != models.RangeSemVer {
				continue
			}
			if inRange(compare, rng.Events, version) {
				return true
			}
		}
	}
	return false
}

// inRange walks the (sorted) range events and tracks whether version sits inside
// an introduced..fixed or introduced..last_affected interval.
func inRange(compare Comparator, events []models.Event, version string) bool {
	affected := false
	for _, event := range events {
		switch {
		case event.Introduced != "":
			if event.Introduced == "0" || atLeast(compare, version, event.Introduced, 0) {
				affected = true
			}
		case event.Fixed != "":
			if atLeast(compare, version, event.Fixed, 0) {
				affected = false
			}
		case event.LastAffected != "":
			if atLeast(compare, version, event.LastAffected, 1) {
				affected = false
			}
		}
	}
	return affected
}

// atLeast reports whether compare(version, bound) >= threshold; unparsable versions never qualify.
func atLeast(compare Comparator, version, bound string, threshold int) bool {
	result, err := compare(version, bound)
	if err != nil {
		logger.Debugf("Skipping range bound %q: %v", bound, err)
		return false
	}
	return result >= threshold
}

// advisoryID prefers a GitHub Security Advisory identifier over the OSV ID.
func advisoryID(vuln models.Vulnerability) string {
	if strings.HasPrefix(vuln.ID, ghsaPrefix) {
		return vuln.ID
	}
	for _, alias := range vuln.Aliases {
		if strings.HasPrefix(alias, ghsaPrefix) {
			return alias
		}
	}
	return vuln.ID
}

func collectFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open advisories %q: %w", path, err)
	}
	if !info.IsDir() {
		return []string{path}, nil
	}

	var files []string
	walkErr := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(p), ".json") {
			files = append(files, p)
		}
		return nil
	})
	if walkErr != nil {
		return nil, fmt.Errorf("failed to list advisories in %q: %w", path, walkErr)
	}
	return files, nil
}

func decodeFile(path string) ([]models.Vulnerability, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read advisory %q: %w", path, err)
	}

	trimmed := bytes.TrimSpace(data)
	if bytes.HasPrefix(trimmed, []byte("[")) {
		var vulnerabilities []models.Vulnerability
		if unmarshalErr := json.Unmarshal(trimmed, &vulnerabilities); unmarshalErr != nil {
			return nil, fmt.Errorf("failed to parse advisory %q: %w", path, unmarshalErr)
		}
		return vulnerabilities, nil
	}

	var vuln models.Vulnerability
	if unmarshalErr := json.Unmarshal(trimmed, &vuln); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse advisory %q: %w", path, unmarshalErr)
	}
	return []models.Vulnerability{vuln}, nil
}
