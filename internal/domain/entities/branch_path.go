package entities

import (
	"strings"
	"unicode/utf8"
)

const (
	// DependabotPrefix is the literal every Dependabot branch name starts with.
	DependabotPrefix = "dependabot"

	// delimiterIndex is where Dependabot places its segment separator, right after the prefix.
	delimiterIndex = 10
)

// BranchDelimiter returns the separator a bot branch uses between its segments:
// the whole character starting right after the prefix, which may span several bytes.
// The second return value is false when the branch does not carry the Dependabot
// prefix or is too short to hold a separator.
func BranchDelimiter(branchName string) (string, bool) {
	if !strings.HasPrefix(branchName, DependabotPrefix) || len(branchName) <= delimiterIndex {
		return "", false
	}
	_, size := utf8.DecodeRuneInString(branchName[delimiterIndex:])
	return branchName[delimiterIndex : delimiterIndex+size], true
}

// DecomposeBranchPath splits a bot branch name into its ecosystem and directory.
//
// Dependabot appends one trailing segment per "/" found in the dependency name
// (plus one for the version), so those are dropped before rebuilding the directory.
// Example: "dependabot/npm_and_yarn/web/@scope/pkg-1.2.3" with "@scope/pkg" yields
// ecosystem "npm_and_yarn" and directory "/web".
func DecomposeBranchPath(branchName, delimiter, dependencyName string) BranchPath {
	chunks := strings.Split(branchName, delimiter)

	var path BranchPath
	if len(chunks) > 1 {
		path.Ecosystem = chunks[1]
	}

	end := len(chunks) - (1 + strings.Count(dependencyName, "/"))
	if end > 2 { //nolint:mnd // prefix and ecosystem segments
		path.Directory = "/" + strings.Join(chunks[2:end], "/")
	} else {
		path.Directory = "/"
	}
	return path
}
