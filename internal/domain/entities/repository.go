package entities

// Source names.
const (
	SourceGitHub = "github"
	SourceGitLab = "gitlab"
	SourceLocal  = "local"
)

// RepositoryReference identifies the repository to export. It is immutable
// once parsed.
type RepositoryReference struct {
	Source    string // "github", "gitlab" or "local"
	Namespace string // Owner, organization or (nested) group; empty for local
	Name      string // Last path segment, used to name the output artifact
	Branch    string // Ref to read from; empty for local
	URL       string // Original URL as entered; empty for local
	LocalPath string // Filesystem path as entered; local only
}

// FullPath returns "namespace/name" for remote repositories.
func (r RepositoryReference) FullPath() string {
	if r.Namespace == "" {
		return r.Name
	}
	return r.Namespace + "/" + r.Name
}

// OutputFileName returns the artifact name for this repository.
func (r RepositoryReference) OutputFileName() string {
	return r.Name + "_contents.txt"
}
