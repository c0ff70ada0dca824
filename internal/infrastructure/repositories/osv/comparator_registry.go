package osv

import (
	"fmt"
	"sort"
	"strings"

	msemver "github.com/Masterminds/semver/v3"
	npm "github.com/aquasecurity/go-npm-version/pkg"
	pep440 "github.com/aquasecurity/go-pep440-version"
	modsemver "golang.org/x/mod/semver"
)

// Comparator orders two versions of the same ecosystem the way strings.Compare does.
type Comparator func(a, b string) (int, error)

// ComparatorRegistry manages the version comparators of every OSV ecosystem.
type ComparatorRegistry struct {
	comparators map[string]Comparator
	fallback    Comparator
}

// NewComparatorRegistry creates a registry that uses fallback for unknown ecosystems.
func NewComparatorRegistry(fallback Comparator) *ComparatorRegistry {
	return &ComparatorRegistry{
		comparators: make(map[string]Comparator),
		fallback:    fallback,
	}
}

// NewDefaultComparatorRegistry creates a registry with the npm, PyPI and Go comparators,
// falling back to Semantic Versioning for everything else.
func NewDefaultComparatorRegistry() *ComparatorRegistry {
	reg := NewComparatorRegistry(CompareSemVer)
	reg.Register("npm", CompareNpm)
	reg.Register("PyPI", ComparePep440)
	reg.Register("Go", CompareGo)
	return reg
}

// Register adds a comparator under the given OSV ecosystem name (e.g. "npm").
func (r *ComparatorRegistry) Register(ecosystem string, comparator Comparator) {
	r.comparators[ecosystem] = comparator
}

// Get returns the comparator of the given ecosystem, or the fallback.
// OSV ecosystems may carry a release suffix ("Debian:12"), which is ignored.
func (r *ComparatorRegistry) Get(ecosystem string) Comparator {
	name, _, _ := strings.Cut(ecosystem, ":")
	if comparator, ok := r.comparators[name]; ok {
		return comparator
	}
	return r.fallback
}

// Names returns the sorted list of registered ecosystem names.
func (r *ComparatorRegistry) Names() []string {
	names := make([]string, 0, len(r.comparators))
	for name := range r.comparators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CompareSemVer compares two Semantic Versioning strings, tolerating a "v" prefix.
func CompareSemVer(a, b string) (int, error) {
	va, err := msemver.NewVersion(a)
	if err != nil {
		return 0, fmt.Errorf("invalid semver %q: %w", a, err)
	}
	vb, err := msemver.NewVersion(b)
	if err != nil {
		return 0, fmt.Errorf("invalid semver %q: %w", b, err)
	}
	return va.Compare(vb), nil
}

// CompareNpm compares two npm package versions.
func CompareNpm(a, b string) (int, error) {
	va, err := npm.NewVersion(a)
	if err != nil {
		return 0, fmt.Errorf("invalid npm version %q: %w", a, err)
	}
	vb, err := npm.NewVersion(b)
	if err != nil {
		return 0, fmt.Errorf("invalid npm version %q: %w", b, err)
	}
	return va.Compare(vb), nil
}

// ComparePep440 compares two Python package versions.
func ComparePep440(a, b string) (int, error) {
	va, err := pep440.Parse(a)
	if err != nil {
		return 0, fmt.Errorf("invalid PEP 440 version %q: %w", a, err)
	}
	vb, err := pep440.Parse(b)
	if err != nil {
		return 0, fmt.Errorf("invalid PEP 440 version %q: %w", b, err)
	}
	return va.Compare(vb), nil
}

// CompareGo compares two Go module versions; OSV stores them without the "v" prefix.
func CompareGo(a, b string) (int, error) {
	va, vb := normalizeGoVersion(a), normalizeGoVersion(b)
	if !modsemver.IsValid(va) {
		return 0, fmt.Errorf("invalid Go module version %q", a)
	}
	if !modsemver.IsValid(vb) {
		return 0, fmt.Errorf("invalid Go module version %q", b)
	}
	return modsemver.Compare(va, vb), nil
}

// normalizeGoVersion ensures version has 'v' prefix for semver compatibility
func normalizeGoVersion(version string) string {
	version = strings.TrimSpace(version)
	if strings.HasPrefix(version, "v") {
		return version
	}
	return "v" + version
}
