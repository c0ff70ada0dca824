package entities

import "strings"

// UpdateType classifies the magnitude of a version change.
type UpdateType string

const (
	UpdateTypeNone  UpdateType = ""
	UpdateTypeMajor UpdateType = "version-update:semver-major"
	UpdateTypeMinor UpdateType = "version-update:semver-minor"
	UpdateTypePatch UpdateType = "version-update:semver-patch"
)

// ClassifyUpdateType compares two version strings and returns the kind of change.
// Leading "v" characters are stripped before any comparison.
//
// Components are compared for equality only, never ordered, so "01" and "1" count
// as different values and a downgrade is classified the same way as an upgrade.
func ClassifyUpdateType(previous, next string) UpdateType {
	previous = strings.TrimLeft(previous, "v")
	next = strings.TrimLeft(next, "v")
	if previous == "" || next == "" || previous == next {
		return UpdateTypeNone
	}

	prevParts := strings.Split(previous, ".")
	nextParts := strings.Split(next, ".")

	if prevParts[0] != nextParts[0] {
		return UpdateTypeMajor
	}
	if len(prevParts) < 2 || len(nextParts) < 2 || prevParts[1] != nextParts[1] { //nolint:mnd // major.minor
		return UpdateTypeMinor
	}
	return UpdateTypePatch
}
