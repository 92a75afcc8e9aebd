package entities

// EntryKind tells directories and files apart.
type EntryKind string

const (
	EntryDirectory EntryKind = "directory"
	EntryFile      EntryKind = "file"
)

// Entry is one node of a repository tree as reported by a source.
type Entry struct {
	Name string    // Last path segment
	Path string    // Source-specific handle used to re-fetch children or bytes
	Kind EntryKind // Directory or file
}

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool {
	return e.Kind == EntryDirectory
}
