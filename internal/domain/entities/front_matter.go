package entities

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrMalformedMetadata is returned when the commit metadata block exists but cannot be decoded.
var ErrMalformedMetadata = errors.New("malformed dependency metadata")

var (
	// frontMatterPattern captures the region between a "---" line and the next "..." line.
	frontMatterPattern = regexp.MustCompile(`(?m)^-{3}\n(?P<dependencies>[\S\s]*?)\n\.{3}$`)

	// dependencyGroupPattern matches the "dependency-group: <name>" trailer.
	dependencyGroupPattern = regexp.MustCompile(`dependency-group:\s(?P<name>\S*)`)
)

// ExtractFrontMatter locates and decodes the metadata block embedded in a commit message.
//
// Behaviour:
//   - No block: found is false and err is nil.
//   - Block present but not a valid mapping of dependency entries: err wraps ErrMalformedMetadata.
//   - The dependency group is read from the raw message, outside the block.
func ExtractFrontMatter(commitMessage string) (FrontMatter, bool, error) {
	normalized := strings.ReplaceAll(commitMessage, "\r\n", "\n")

	match := frontMatterPattern.FindStringSubmatch(normalized)
	if match == nil {
		return FrontMatter{}, false, nil
	}

	var frontMatter FrontMatter
	raw := match[frontMatterPattern.SubexpIndex("dependencies")]
	if err := yaml.Unmarshal([]byte(raw), &frontMatter); err != nil {
		return FrontMatter{}, true, fmt.Errorf("%w: %w", ErrMalformedMetadata, err)
	}

	for i, entry := range frontMatter.UpdatedDependencies {
		if entry.Name == "" {
			return FrontMatter{}, true, fmt.Errorf(
				"%w: updated-dependencies[%d].dependency-name is required", ErrMalformedMetadata, i,
			)
		}
		if entry.Type == "" {
			return FrontMatter{}, true, fmt.Errorf(
				"%w: updated-dependencies[%d].dependency-type is required", ErrMalformedMetadata, i,
			)
		}
	}

	frontMatter.DependencyGroup = matchDependencyGroup(normalized)
	return frontMatter, true, nil
}

func matchDependencyGroup(commitMessage string) string {
	match := dependencyGroupPattern.FindStringSubmatch(commitMessage)
	if match == nil {
		return ""
	}
	return match[dependencyGroupPattern.SubexpIndex("name")]
}
