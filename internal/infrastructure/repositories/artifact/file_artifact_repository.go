package artifact

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"
)

const (
	dirMode  = 0o755
	fileMode = 0o644
)

// FileArtifactRepository writes export documents to the local filesystem.
type FileArtifactRepository struct{}

// NewFileArtifactRepository creates a FileArtifactRepository.
func NewFileArtifactRepository() *FileArtifactRepository {
	return &FileArtifactRepository{}
}

// Save writes content as UTF-8 to dir/name, overwriting any existing file.
// An empty dir means the working directory.
func (r *FileArtifactRepository) Save(_ context.Context, dir, name, content string) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return "", fmt.Errorf("failed to create output directory %q: %w", dir, err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), fileMode); err != nil {
		return "", fmt.Errorf("failed to write %q: %w", path, err)
	}

	logger.Debugf("Wrote %d bytes to %s", len(content), path)
	return path, nil
}
