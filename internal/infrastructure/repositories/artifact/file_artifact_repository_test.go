//go:build unit

package artifact_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/repo2txt/internal/infrastructure/repositories/artifact"
)

func TestFileArtifactRepositorySave(t *testing.T) {
	t.Parallel()

	t.Run("should create the output directory and write the document", func(t *testing.T) {
		t.Parallel()

		// given
		dir := filepath.Join(t.TempDir(), "exports", "nested")
		repo := artifact.NewFileArtifactRepository()

		// when
		path, err := repo.Save(context.Background(), dir, "hello_contents.txt", "café\n")

		// then
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "hello_contents.txt"), path)
		data, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, "café\n", string(data))
	})

	t.Run("should overwrite an existing document", func(t *testing.T) {
		t.Parallel()

		// given
		dir := t.TempDir()
		repo := artifact.NewFileArtifactRepository()
		_, err := repo.Save(context.Background(), dir, "hello_contents.txt", "old content that is longer")
		require.NoError(t, err)

		// when
		path, err := repo.Save(context.Background(), dir, "hello_contents.txt", "new")

		// then
		require.NoError(t, err)
		data, readErr := os.ReadFile(path)
		require.NoError(t, readErr)
		assert.Equal(t, "new", string(data))
	})

	t.Run("should return error when the directory cannot be created", func(t *testing.T) {
		t.Parallel()

		// given
		blocker := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))
		repo := artifact.NewFileArtifactRepository()

		// when
		_, err := repo.Save(context.Background(), filepath.Join(blocker, "sub"), "out.txt", "x")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create output directory")
	})
}
