package entities

import "regexp"

var (
	// bumpPattern matches "Bumps <subject> from <version> to <version>."
	bumpPattern = regexp.MustCompile(`(?m)^Bumps .* from (?P<from>v?\d[^ ]*) to (?P<to>v?\d[^ ]*)\.$`)

	// requirementPattern matches "Update <subject> requirement from <range> to <range>",
	// keeping only the version token after an optional comparator.
	requirementPattern = regexp.MustCompile(
		`(?m)^Update .* requirement from \S*? ?(?P<from>v?\d\S*) to \S*? ?(?P<to>v?\d\S*)$`,
	)
)

// MatchVersionPair extracts the previous and next versions from a commit message.
// The bump template wins over the requirement template; no match yields an empty pair.
func MatchVersionPair(commitMessage string) VersionPair {
	for _, pattern := range []*regexp.Regexp{bumpPattern, requirementPattern} {
		match := pattern.FindStringSubmatch(commitMessage)
		if match == nil {
			continue
		}
		return VersionPair{
			Previous: match[pattern.SubexpIndex("from")],
			Next:     match[pattern.SubexpIndex("to")],
		}
	}
	return VersionPair{}
}
