package entities

import (
	"strings"

	"github.com/package-url/packageurl-go"
)

// purlTypes maps Dependabot "package-ecosystem" values to package-url types.
var purlTypes = map[string]string{ //nolint:gochecknoglobals // lookup table
	"npm_and_yarn":   packageurl.TypeNPM,
	"pip":            packageurl.TypePyPi,
	"gomod":          packageurl.TypeGolang,
	"bundler":        packageurl.TypeGem,
	"cargo":          packageurl.TypeCargo,
	"composer":       packageurl.TypeComposer,
	"maven":          packageurl.TypeMaven,
	"gradle":         packageurl.TypeMaven,
	"nuget":          packageurl.TypeNuget,
	"docker":         packageurl.TypeDocker,
	"github_actions": packageurl.TypeGithub,
	"hex":            packageurl.TypeHex,
	"pub":            "pub",
	"swift":          "swift",
}

// PackageURL builds the purl identifying a dependency at a given version.
// Unknown ecosystems fall back to the "generic" type; an empty name yields "".
func PackageURL(ecosystem, name, version string) string {
	if name == "" {
		return ""
	}

	purlType, ok := purlTypes[ecosystem]
	if !ok {
		purlType = packageurl.TypeGeneric
	}

	namespace, shortName := splitPackageName(purlType, name)
	return packageurl.NewPackageURL(purlType, namespace, shortName, version, nil, "").ToString()
}

// splitPackageName separates the namespace from the package name the way each purl type expects.
func splitPackageName(purlType, name string) (string, string) {
	if purlType == packageurl.TypeMaven {
		if namespace, artifact, found := strings.Cut(name, ":"); found {
			return namespace, artifact
		}
	}

	idx := strings.LastIndex(name, "/")
	if idx < 0 {
		return "", name
	}
	return name[:idx], name[idx+1:]
}
