package local

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/repo2txt/internal/domain/entities"
	"github.com/rios0rios0/repo2txt/internal/domain/repositories"
)

// LocalSourceRepository implements repositories.SourceRepository for a
// directory on disk. Entry paths are the directory as entered joined with
// the entry names.
type LocalSourceRepository struct {
	ref  entities.RepositoryReference
	root string
}

// NewSourceRepository checks that the path is a readable directory. Local
// sources need no credential.
func NewSourceRepository(
	_ context.Context,
	opts repositories.SourceOptions,
) (repositories.SourceRepository, error) {
	root := opts.Reference.LocalPath
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("cannot access %q: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%q is not a directory", root)
	}

	logGitBranch(root)
	return &LocalSourceRepository{ref: opts.Reference, root: root}, nil
}

// logGitBranch reports the checked-out branch when root is inside a Git
// work tree.
func logGitBranch(root string) {
	repo, err := git.PlainOpenWithOptions(root, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		logger.Debugf("%q is not inside a Git repository: %v", root, err)
		return
	}
	head, err := repo.Head()
	if err != nil {
		logger.Debugf("Cannot resolve HEAD of %q: %v", root, err)
		return
	}
	logger.Infof("Detected Git repository on branch %s", head.Name().Short())
}

func (p *LocalSourceRepository) Reference() entities.RepositoryReference { return p.ref }

func (p *LocalSourceRepository) Dialect() entities.Dialect {
	return entities.LocalDialect(strings.TrimSuffix(p.root, "/"))
}

func (p *LocalSourceRepository) ListRoot(_ context.Context) ([]entities.Entry, error) {
	return p.list(p.root)
}

func (p *LocalSourceRepository) ListChildren(
	_ context.Context,
	entry entities.Entry,
) ([]entities.Entry, error) {
	return p.list(entry.Path)
}

// list reads one directory level. os.ReadDir sorts by name, which keeps the
// export stable across filesystems.
func (p *LocalSourceRepository) list(dir string) ([]entities.Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %q: %w", dir, err)
	}

	result := make([]entities.Entry, 0, len(dirEntries))
	for _, dirEntry := range dirEntries {
		path := joinPath(dir, dirEntry.Name())
		result = append(result, entities.Entry{
			Name: dirEntry.Name(),
			Path: path,
			Kind: p.kindOf(dir, path, dirEntry),
		})
	}
	return result, nil
}

// kindOf follows symbolic links to directories. A link whose target
// contains one of its own ancestors would be expanded forever, so it is
// reported as a file instead.
func (p *LocalSourceRepository) kindOf(dir, path string, dirEntry os.DirEntry) entities.EntryKind {
	if dirEntry.IsDir() {
		return entities.EntryDirectory
	}
	if dirEntry.Type()&os.ModeSymlink == 0 {
		return entities.EntryFile
	}

	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		logger.Debugf("Cannot resolve link %q: %v", path, err)
		return entities.EntryFile
	}
	info, err := os.Stat(target)
	if err != nil || !info.IsDir() {
		return entities.EntryFile
	}
	if p.loopsBack(dir, target) {
		logger.Debugf("Not following %q: it points back to %q", path, target)
		return entities.EntryFile
	}
	return entities.EntryDirectory
}

// loopsBack reports whether target contains dir or any directory between dir
// and the repository root, once all links are resolved.
func (p *LocalSourceRepository) loopsBack(dir, target string) bool {
	root := filepath.Clean(p.root)
	current := filepath.Clean(dir)
	for {
		resolved, err := filepath.EvalSymlinks(current)
		if err != nil || isWithin(resolved, target) {
			return true
		}
		parent := filepath.Dir(current)
		if current == root || parent == current {
			return false
		}
		current = parent
	}
}

func isWithin(path, ancestor string) bool {
	absPath, pathErr := filepath.Abs(path)
	absAncestor, ancestorErr := filepath.Abs(ancestor)
	if pathErr != nil || ancestorErr != nil {
		return false
	}
	rel, err := filepath.Rel(absAncestor, absPath)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func (p *LocalSourceRepository) ReadContent(_ context.Context, entry entities.Entry) entities.Content {
	return readText(entry.Path)
}

func (p *LocalSourceRepository) ReadFile(_ context.Context, path string) entities.Content {
	return readText(joinPath(p.root, path))
}

// readText reads a file the way a text-mode reader does: "\r\n" and lone
// "\r" become "\n".
func readText(path string) entities.Content {
	data, err := os.ReadFile(path)
	if err != nil {
		return entities.ContentFailed(err)
	}
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return entities.ContentOf([]byte(text))
}

func joinPath(dir, name string) string {
	if strings.HasSuffix(dir, "/") || strings.HasSuffix(dir, string(filepath.Separator)) {
		return dir + name
	}
	return dir + string(filepath.Separator) + name
}
