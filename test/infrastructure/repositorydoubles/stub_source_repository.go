//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"
	"strings"

	"github.com/rios0rios0/repo2txt/internal/domain/entities"
	"github.com/rios0rios0/repo2txt/internal/domain/repositories"
)

// SpySourceRepository implements repositories.SourceRepository over an
// in-memory tree. Directory listings keep insertion order.
type SpySourceRepository struct {
	// --- identity ---
	Ref           entities.RepositoryReference
	SourceDialect entities.Dialect

	// --- tree ---
	Children map[string][]entities.Entry // directory path ("" = root) -> entries
	Contents map[string]entities.Content // file path -> read result
	ListErrs map[string]error            // directory path -> listing error

	// --- spy ---
	ListedPaths []string
	ReadPaths   []string
}

var _ repositories.SourceRepository = (*SpySourceRepository)(nil)

// NewSpySourceRepository creates an empty source speaking the given dialect.
func NewSpySourceRepository(dialect entities.Dialect) *SpySourceRepository {
	return &SpySourceRepository{
		Ref:           entities.RepositoryReference{Source: "spy", Name: "repo"},
		SourceDialect: dialect,
		Children:      make(map[string][]entities.Entry),
		Contents:      make(map[string]entities.Content),
		ListErrs:      make(map[string]error),
	}
}

// WithFile adds a readable file at a slash-separated path, creating the
// parent directories on first use.
func (s *SpySourceRepository) WithFile(path, content string) *SpySourceRepository {
	return s.WithContent(path, entities.ContentOf([]byte(content)))
}

// WithContent adds a file whose read returns the given result.
func (s *SpySourceRepository) WithContent(path string, content entities.Content) *SpySourceRepository {
	s.addEntry(path, entities.EntryFile)
	s.Contents[path] = content
	return s
}

// WithDirectory adds an empty directory.
func (s *SpySourceRepository) WithDirectory(path string) *SpySourceRepository {
	s.addEntry(path, entities.EntryDirectory)
	return s
}

// WithEntry appends a raw entry to a directory listing, bypassing any
// consistency checks.
func (s *SpySourceRepository) WithEntry(dir string, entry entities.Entry) *SpySourceRepository {
	s.Children[dir] = append(s.Children[dir], entry)
	return s
}

func (s *SpySourceRepository) addEntry(path string, kind entities.EntryKind) {
	segments := strings.Split(path, "/")
	parent := ""
	for i, name := range segments {
		current := strings.Join(segments[:i+1], "/")
		entryKind := entities.EntryDirectory
		if i == len(segments)-1 {
			entryKind = kind
		}
		if !s.contains(parent, current) {
			s.Children[parent] = append(s.Children[parent], entities.Entry{
				Name: name,
				Path: current,
				Kind: entryKind,
			})
		}
		parent = current
	}
}

func (s *SpySourceRepository) contains(dir, path string) bool {
	for _, e := range s.Children[dir] {
		if e.Path == path {
			return true
		}
	}
	return false
}

func (s *SpySourceRepository) Reference() entities.RepositoryReference { return s.Ref }
func (s *SpySourceRepository) Dialect() entities.Dialect               { return s.SourceDialect }

func (s *SpySourceRepository) ListRoot(ctx context.Context) ([]entities.Entry, error) {
	return s.list(ctx, "")
}

func (s *SpySourceRepository) ListChildren(ctx context.Context, entry entities.Entry) ([]entities.Entry, error) {
	return s.list(ctx, entry.Path)
}

func (s *SpySourceRepository) list(_ context.Context, path string) ([]entities.Entry, error) {
	s.ListedPaths = append(s.ListedPaths, path)
	if err, ok := s.ListErrs[path]; ok {
		return nil, err
	}
	return s.Children[path], nil
}

func (s *SpySourceRepository) ReadContent(ctx context.Context, entry entities.Entry) entities.Content {
	return s.ReadFile(ctx, entry.Path)
}

func (s *SpySourceRepository) ReadFile(_ context.Context, path string) entities.Content {
	s.ReadPaths = append(s.ReadPaths, path)
	if content, ok := s.Contents[path]; ok {
		return content
	}
	return entities.ContentFailed(fmt.Errorf("file not found: %s", path))
}
