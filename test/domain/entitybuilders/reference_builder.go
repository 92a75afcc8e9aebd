//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/repo2txt/internal/domain/entities"
)

// ReferenceBuilder helps create test repository references with a fluent interface.
type ReferenceBuilder struct {
	*testkit.BaseBuilder
	source    string
	namespace string
	name      string
	branch    string
	url       string
	localPath string
}

// NewReferenceBuilder creates a new reference builder with sensible defaults.
func NewReferenceBuilder() *ReferenceBuilder {
	return &ReferenceBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		source:      entities.SourceGitHub,
		namespace:   "test-org",
		name:        "test-repo",
		branch:      entities.DefaultBranch,
		url:         "https://github.com/test-org/test-repo",
	}
}

// WithSource sets the source name.
func (b *ReferenceBuilder) WithSource(source string) *ReferenceBuilder {
	b.source = source
	return b
}

// WithNamespace sets the owner or group.
func (b *ReferenceBuilder) WithNamespace(namespace string) *ReferenceBuilder {
	b.namespace = namespace
	return b
}

// WithName sets the repository name.
func (b *ReferenceBuilder) WithName(name string) *ReferenceBuilder {
	b.name = name
	return b
}

// WithBranch sets the branch.
func (b *ReferenceBuilder) WithBranch(branch string) *ReferenceBuilder {
	b.branch = branch
	return b
}

// WithURL sets the URL as entered.
func (b *ReferenceBuilder) WithURL(url string) *ReferenceBuilder {
	b.url = url
	return b
}

// WithLocalPath turns the reference into a local one rooted at path.
func (b *ReferenceBuilder) WithLocalPath(path string) *ReferenceBuilder {
	b.source = entities.SourceLocal
	b.localPath = path
	b.namespace = ""
	b.branch = ""
	b.url = ""
	return b
}

// Build creates the reference (satisfies testkit.Builder interface).
func (b *ReferenceBuilder) Build() interface{} {
	return b.BuildReference()
}

// BuildReference creates the reference with a concrete return type.
func (b *ReferenceBuilder) BuildReference() entities.RepositoryReference {
	return entities.RepositoryReference{
		Source:    b.source,
		Namespace: b.namespace,
		Name:      b.name,
		Branch:    b.branch,
		URL:       b.url,
		LocalPath: b.localPath,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *ReferenceBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	fresh := NewReferenceBuilder()
	b.source = fresh.source
	b.namespace = fresh.namespace
	b.name = fresh.name
	b.branch = fresh.branch
	b.url = fresh.url
	b.localPath = ""
	return b
}

// Clone creates a deep copy of the ReferenceBuilder.
func (b *ReferenceBuilder) Clone() testkit.Builder {
	return &ReferenceBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		source:      b.source,
		namespace:   b.namespace,
		name:        b.name,
		branch:      b.branch,
		url:         b.url,
		localPath:   b.localPath,
	}
}
