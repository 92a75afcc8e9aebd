package commands

import (
	"context"
	"fmt"

	"github.com/rios0rios0/repo2txt/internal/domain/entities"
	"github.com/rios0rios0/repo2txt/internal/domain/repositories"
)

// frame is one pending directory: the display prefix of its entries and the
// entries themselves, listed when the directory was pushed.
type frame struct {
	prefix   string
	children []entities.Entry
}

// traversal is a single depth-first pass over a source using an explicit
// stack. Each pass owns its stack and visited set.
type traversal struct {
	source   repositories.SourceRepository
	progress ProgressFactory
	verb     string

	// onDirectory is called for every directory the first time it is seen.
	onDirectory func(path string)
	// onFile is called for every file entry.
	onFile func(ctx context.Context, path string, entry entities.Entry)
}

// run walks the tree from root. Frames are popped LIFO while the children of
// a frame keep the order returned by the source. A directory is marked
// visited when it is pushed, so one reachable through two parents is listed
// and expanded only once.
func (t *traversal) run(ctx context.Context, root string) error {
	rootEntries, err := t.source.ListRoot(ctx)
	if err != nil {
		return fmt.Errorf("failed to list repository root: %w", err)
	}

	visited := make(map[string]struct{})
	stack := []frame{{prefix: root, children: rootEntries}}

	for len(stack) > 0 {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		bar := t.newProgress(len(current.children), current.prefix)
		for _, child := range current.children {
			path := current.prefix + "/" + child.Name

			if child.IsDir() {
				if _, seen := visited[child.Path]; !seen {
					visited[child.Path] = struct{}{}
					if t.onDirectory != nil {
						t.onDirectory(path)
					}

					children, listErr := t.source.ListChildren(ctx, child)
					if listErr != nil {
						_ = bar.Finish()
						return fmt.Errorf("failed to list directory %q: %w", child.Path, listErr)
					}
					stack = append(stack, frame{prefix: path, children: children})
				}
			} else if t.onFile != nil {
				t.onFile(ctx, path, child)
			}

			_ = bar.Add(1)
		}
		_ = bar.Finish()
	}

	return nil
}

func (t *traversal) newProgress(total int, prefix string) Progress {
	if t.progress == nil {
		return noProgress{}
	}
	return t.progress(total, t.verb+" "+prefix)
}

type noProgress struct{}

func (noProgress) Add(int) error { return nil }
func (noProgress) Finish() error { return nil }
