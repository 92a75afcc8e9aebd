package repositories

import (
	"context"

	"github.com/rios0rios0/repo2txt/internal/domain/entities"
)

// SourceRepository abstracts "where repository data comes from": a forge API
// or the local filesystem. Implementations never recurse on their own; the
// caller owns the traversal.
type SourceRepository interface {
	// Reference returns the repository this source is bound to.
	Reference() entities.RepositoryReference

	// Dialect returns the wording and decoding policy of this front end.
	Dialect() entities.Dialect

	// ListRoot returns the entries at the repository root.
	ListRoot(ctx context.Context) ([]entities.Entry, error)

	// ListChildren returns the entries of a directory entry. Calling it twice
	// with the same entry yields the same result.
	ListChildren(ctx context.Context, entry entities.Entry) ([]entities.Entry, error)

	// ReadContent fetches the raw bytes of a file entry.
	ReadContent(ctx context.Context, entry entities.Entry) entities.Content

	// ReadFile fetches a file by its repository-relative path.
	ReadFile(ctx context.Context, path string) entities.Content
}

// SourceOptions carries what a factory needs to bind a source.
type SourceOptions struct {
	Reference entities.RepositoryReference
	Token     string
	BaseURL   string
}

// SourceFactory validates the options and returns a bound source. Missing
// credentials are reported as *entities.ConfigurationError before any
// network call.
type SourceFactory func(ctx context.Context, opts SourceOptions) (SourceRepository, error)
