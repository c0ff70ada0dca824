//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"strings"

	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/depmeta/internal/domain/entities"
)

// UpdateSignalBuilder helps create Dependabot-shaped update signals with a fluent interface.
type UpdateSignalBuilder struct {
	*testkit.BaseBuilder
	summary      string
	entries      []string
	group        string
	body         string
	branchName   string
	targetBranch string
}

// NewUpdateSignalBuilder creates a new builder describing a single npm bump.
func NewUpdateSignalBuilder() *UpdateSignalBuilder {
	b := &UpdateSignalBuilder{BaseBuilder: testkit.NewBaseBuilder()}
	b.Reset()
	return b
}

// WithSummary sets the text preceding the metadata block.
func (b *UpdateSignalBuilder) WithSummary(summary string) *UpdateSignalBuilder {
	b.summary = summary
	return b
}

// WithoutEntries removes every entry from the metadata block.
func (b *UpdateSignalBuilder) WithoutEntries() *UpdateSignalBuilder {
	b.entries = nil
	return b
}

// WithEntry appends an entry to the metadata block.
func (b *UpdateSignalBuilder) WithEntry(name, dependencyType string) *UpdateSignalBuilder {
	b.entries = append(b.entries,
		"- dependency-name: "+name+"\n  dependency-type: "+dependencyType)
	return b
}

// WithOverriddenEntry appends an entry carrying an explicit update-type.
func (b *UpdateSignalBuilder) WithOverriddenEntry(name, dependencyType, updateType string) *UpdateSignalBuilder {
	b.entries = append(b.entries,
		"- dependency-name: "+name+"\n  dependency-type: "+dependencyType+"\n  update-type: "+updateType)
	return b
}

// WithGroup adds a "dependency-group" trailer to the commit message.
func (b *UpdateSignalBuilder) WithGroup(group string) *UpdateSignalBuilder {
	b.group = group
	return b
}

// WithBody sets the pull request body.
func (b *UpdateSignalBuilder) WithBody(body string) *UpdateSignalBuilder {
	b.body = body
	return b
}

// WithBranchName sets the head branch name.
func (b *UpdateSignalBuilder) WithBranchName(branchName string) *UpdateSignalBuilder {
	b.branchName = branchName
	return b
}

// WithTargetBranch sets the base branch name.
func (b *UpdateSignalBuilder) WithTargetBranch(targetBranch string) *UpdateSignalBuilder {
	b.targetBranch = targetBranch
	return b
}

// Build creates the signal (satisfies testkit.Builder interface).
func (b *UpdateSignalBuilder) Build() interface{} {
	return b.BuildSignal()
}

// BuildSignal creates the signal with a concrete return type.
func (b *UpdateSignalBuilder) BuildSignal() entities.RawUpdateSignal {
	return entities.RawUpdateSignal{
		CommitMessage: b.BuildCommitMessage(),
		Body:          b.body,
		BranchName:    b.branchName,
		TargetBranch:  b.targetBranch,
	}
}

// BuildCommitMessage renders the commit message the way Dependabot writes it.
func (b *UpdateSignalBuilder) BuildCommitMessage() string {
	var sb strings.Builder
	sb.WriteString(b.summary)
	sb.WriteString("\n\n---\nupdated-dependencies:\n")
	for _, entry := range b.entries {
		sb.WriteString(entry)
		sb.WriteString("\n")
	}
	if b.group != "" {
		sb.WriteString("  dependency-group: " + b.group + "\n")
	}
	sb.WriteString("...\n\nSigned-off-by: dependabot[bot] <support@github.com>\n")
	return sb.String()
}

// Reset clears the builder state, allowing it to be reused.
func (b *UpdateSignalBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.summary = "Bump foo from 1.2.0 to 1.3.0\n\nBumps [foo](https://github.com/acme/foo) from 1.2.0 to 1.3.0."
	b.entries = []string{"- dependency-name: foo\n  dependency-type: direct:production"}
	b.group = ""
	b.body = ""
	b.branchName = "dependabot/npm_and_yarn/foo-1.3.0"
	b.targetBranch = "main"
	return b
}

// Clone creates a deep copy of the UpdateSignalBuilder.
func (b *UpdateSignalBuilder) Clone() testkit.Builder {
	return &UpdateSignalBuilder{
		BaseBuilder:  b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		summary:      b.summary,
		entries:      append([]string(nil), b.entries...),
		group:        b.group,
		body:         b.body,
		branchName:   b.branchName,
		targetBranch: b.targetBranch,
	}
}
