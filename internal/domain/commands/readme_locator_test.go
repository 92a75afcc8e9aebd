//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/repo2txt/internal/domain/commands"
	"github.com/rios0rios0/repo2txt/internal/domain/entities"
	"github.com/rios0rios0/repo2txt/test/infrastructure/repositorydoubles"
)

func TestReadmeLocatorLocate(t *testing.T) {
	t.Parallel()

	t.Run("should return README.md when present", func(t *testing.T) {
		t.Parallel()

		// given
		source := repositorydoubles.NewSpySourceRepository(entities.GitHubDialect()).
			WithFile("README.md", "# Upper").
			WithFile("readme.md", "# lower")
		locator := commands.NewReadmeLocator()

		// when
		result := locator.Locate(context.Background(), source)

		// then
		assert.Equal(t, "# Upper", result)
		assert.Equal(t, []string{"README.md"}, source.ReadPaths)
	})

	t.Run("should fall back to the next candidate name", func(t *testing.T) {
		t.Parallel()

		// given
		source := repositorydoubles.NewSpySourceRepository(entities.GitHubDialect()).
			WithFile("ReadMe.md", "# Mixed")
		locator := commands.NewReadmeLocator()

		// when
		result := locator.Locate(context.Background(), source)

		// then
		assert.Equal(t, "# Mixed", result)
		assert.Equal(t, []string{"README.md", "readme.md", "ReadMe.md"}, source.ReadPaths)
	})

	t.Run("should skip a candidate that is not valid UTF-8", func(t *testing.T) {
		t.Parallel()

		// given
		source := repositorydoubles.NewSpySourceRepository(entities.GitLabDialect()).
			WithContent("README.md", entities.ContentOf([]byte{0xff, 0xfe})).
			WithFile("readme.md", "# lower")
		locator := commands.NewReadmeLocator()

		// when
		result := locator.Locate(context.Background(), source)

		// then
		assert.Equal(t, "# lower", result)
	})

	t.Run("should return the sentinel when no candidate exists", func(t *testing.T) {
		t.Parallel()

		// given
		source := repositorydoubles.NewSpySourceRepository(entities.GitHubDialect()).
			WithFile("README.rst", "nope").
			WithContent("readme.md", entities.ContentMissing())
		locator := commands.NewReadmeLocator()

		// when
		result := locator.Locate(context.Background(), source)

		// then
		assert.Equal(t, entities.ReadmeNotFound, result)
	})
}
