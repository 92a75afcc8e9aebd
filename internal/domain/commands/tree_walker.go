package commands

import (
	"context"
	"strings"

	"github.com/rios0rios0/repo2txt/internal/domain/entities"
	"github.com/rios0rios0/repo2txt/internal/domain/repositories"
)

// TreeWalker renders the directory listing of a repository: one line per
// entry, directories suffixed with "/".
type TreeWalker struct {
	progress ProgressFactory
}

// NewTreeWalker creates a TreeWalker reporting progress through progress.
func NewTreeWalker(progress ProgressFactory) *TreeWalker {
	return &TreeWalker{progress: progress}
}

// Walk returns the tree listing of source.
func (it *TreeWalker) Walk(ctx context.Context, source repositories.SourceRepository) (string, error) {
	var sb strings.Builder

	pass := &traversal{
		source:   source,
		progress: it.progress,
		verb:     "Processing",
		onDirectory: func(path string) {
			sb.WriteString(path)
			sb.WriteString("/\n")
		},
		onFile: func(_ context.Context, path string, _ entities.Entry) {
			sb.WriteString(path)
			sb.WriteString("\n")
		},
	}

	if err := pass.run(ctx, source.Dialect().ListingRoot); err != nil {
		return "", err
	}
	return sb.String(), nil
}
