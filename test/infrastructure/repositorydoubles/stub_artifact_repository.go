//go:build integration || unit || test

package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"path/filepath"

	"github.com/rios0rios0/repo2txt/internal/domain/repositories"
)

// SpyArtifactRepository implements repositories.ArtifactRepository and keeps
// every saved document in memory.
type SpyArtifactRepository struct {
	SaveErr error

	// spy: what was saved
	SavedDirs     []string
	SavedNames    []string
	SavedContents []string
}

var _ repositories.ArtifactRepository = (*SpyArtifactRepository)(nil)

func (s *SpyArtifactRepository) Save(_ context.Context, dir, name, content string) (string, error) {
	if s.SaveErr != nil {
		return "", s.SaveErr
	}
	s.SavedDirs = append(s.SavedDirs, dir)
	s.SavedNames = append(s.SavedNames, name)
	s.SavedContents = append(s.SavedContents, content)
	return filepath.Join(dir, name), nil
}
