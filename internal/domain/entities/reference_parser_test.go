//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/repo2txt/internal/domain/entities"
)

func TestParseRemoteReference(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		source    string
		url       string
		namespace string
		repoName  string
	}{
		{
			name:      "should parse GitHub HTTPS URL",
			source:    entities.SourceGitHub,
			url:       "https://github.com/octo/hello",
			namespace: "octo",
			repoName:  "hello",
		},
		{
			name:      "should strip .git suffix and trailing slash",
			source:    entities.SourceGitHub,
			url:       "https://github.com/octo/hello.git/",
			namespace: "octo",
			repoName:  "hello",
		},
		{
			name:      "should parse GitHub SSH URL",
			source:    entities.SourceGitHub,
			url:       "git@github.com:octo/hello.git",
			namespace: "octo",
			repoName:  "hello",
		},
		{
			name:      "should ignore GitHub tree suffix",
			source:    entities.SourceGitHub,
			url:       "https://github.com/octo/hello/tree/main/src",
			namespace: "octo",
			repoName:  "hello",
		},
		{
			name:      "should parse bare owner/repo",
			source:    entities.SourceGitHub,
			url:       "octo/hello",
			namespace: "octo",
			repoName:  "hello",
		},
		{
			name:      "should keep nested GitLab groups",
			source:    entities.SourceGitLab,
			url:       "https://gitlab.com/group/sub/project",
			namespace: "group/sub",
			repoName:  "project",
		},
		{
			name:      "should parse GitLab SSH URL",
			source:    entities.SourceGitLab,
			url:       "git@gitlab.com:group/project.git",
			namespace: "group",
			repoName:  "project",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// given
			branch := "develop"

			// when
			ref, err := entities.ParseRemoteReference(tt.source, tt.url, branch)

			// then
			require.NoError(t, err)
			assert.Equal(t, tt.source, ref.Source)
			assert.Equal(t, tt.namespace, ref.Namespace)
			assert.Equal(t, tt.repoName, ref.Name)
			assert.Equal(t, branch, ref.Branch)
			assert.Equal(t, tt.repoName+"_contents.txt", ref.OutputFileName())
		})
	}

	t.Run("should return error for URL without namespace", func(t *testing.T) {
		t.Parallel()

		// given
		url := "https://github.com/hello"

		// when
		_, err := entities.ParseRemoteReference(entities.SourceGitHub, url, "master")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot extract namespace/repository")
	})

	t.Run("should return error for empty URL", func(t *testing.T) {
		t.Parallel()

		// given
		url := "   "

		// when
		_, err := entities.ParseRemoteReference(entities.SourceGitLab, url, "master")

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "repository URL is empty")
	})
}

func TestNewLocalReference(t *testing.T) {
	t.Parallel()

	t.Run("should name the repository after the last path segment", func(t *testing.T) {
		t.Parallel()

		// given
		path := "./work/repo/"

		// when
		ref := entities.NewLocalReference(path)

		// then
		assert.Equal(t, entities.SourceLocal, ref.Source)
		assert.Equal(t, "repo", ref.Name)
		assert.Equal(t, path, ref.LocalPath)
		assert.Equal(t, "repo_contents.txt", ref.OutputFileName())
	})
}
