package entities

// RawUpdateSignal holds the free-form text a dependency bot leaves behind for a single update.
type RawUpdateSignal struct {
	CommitMessage string // Full commit message, subject line first
	Body          string // Pull request description
	BranchName    string // Head branch of the pull request
	TargetBranch  string // Base branch, copied verbatim into every record
}

// VersionPair is the "from"/"to" version named in the commit subject.
// Both fields are either empty or taken from the same template match.
type VersionPair struct {
	Previous string
	Next     string
}

// IsEmpty reports whether no version template matched.
func (p VersionPair) IsEmpty() bool {
	return p.Previous == "" && p.Next == ""
}

// DependencyEntry is one item of the "updated-dependencies" sequence in the commit metadata block.
type DependencyEntry struct {
	Name       string  `yaml:"dependency-name"`
	Type       string  `yaml:"dependency-type"` // e.g. "direct:production", "indirect"
	UpdateType *string `yaml:"update-type"`     // Optional override of the computed update type
}

// FrontMatter is the decoded commit metadata block.
type FrontMatter struct {
	UpdatedDependencies []DependencyEntry `yaml:"updated-dependencies"`
	DependencyGroup     string            `yaml:"-"` // Parsed from the trailer, not from the block
}

// BranchPath is the ecosystem and manifest directory encoded in a bot branch name.
type BranchPath struct {
	Ecosystem string
	Directory string
}

// DependencyAlert is the advisory data contributed by an alert lookup.
type DependencyAlert struct {
	AlertState string  `json:"alertState" yaml:"alertState"`
	GHSAID     string  `json:"ghsaId"     yaml:"ghsaId"`
	CVSS       float64 `json:"cvss"       yaml:"cvss"`
}

// UpdatedDependency is the structured record produced for every DependencyEntry.
type UpdatedDependency struct {
	DependencyName    string     `json:"dependencyName"    yaml:"dependencyName"`
	DependencyType    string     `json:"dependencyType"    yaml:"dependencyType"`
	UpdateType        UpdateType `json:"updateType"        yaml:"updateType"`
	Directory         string     `json:"directory"         yaml:"directory"`
	PackageEcosystem  string     `json:"packageEcosystem"  yaml:"packageEcosystem"`
	TargetBranch      string     `json:"targetBranch"      yaml:"targetBranch"`
	PrevVersion       string     `json:"prevVersion"       yaml:"prevVersion"`
	NewVersion        string     `json:"newVersion"        yaml:"newVersion"`
	CompatScore       float64    `json:"compatScore"       yaml:"compatScore"`
	MaintainerChanges bool       `json:"maintainerChanges" yaml:"maintainerChanges"`
	DependencyGroup   string     `json:"dependencyGroup"   yaml:"dependencyGroup"`
	PackageURL        string     `json:"packageUrl"        yaml:"packageUrl"`

	DependencyAlert `yaml:",inline"`
}
