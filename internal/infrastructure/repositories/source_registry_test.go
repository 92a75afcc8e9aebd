//go:build unit

package repositories_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"github.com/rios0rios0/repo2txt/internal/domain/entities"
	domainRepos "github.com/rios0rios0/repo2txt/internal/domain/repositories"
	"github.com/rios0rios0/repo2txt/internal/infrastructure/repositories"
	"github.com/rios0rios0/repo2txt/test/infrastructure/repositorydoubles"
)

func TestSourceRegistry(t *testing.T) {
	t.Parallel()

	t.Run("should return the registered factory", func(t *testing.T) {
		t.Parallel()

		// given
		spy := repositorydoubles.NewSpySourceRepository(entities.GitHubDialect())
		registry := repositories.NewSourceRegistry()
		registry.Register("spy", func(context.Context, domainRepos.SourceOptions) (domainRepos.SourceRepository, error) {
			return spy, nil
		})

		// when
		factory, err := registry.Get("spy")

		// then
		require.NoError(t, err)
		source, factoryErr := factory(context.Background(), domainRepos.SourceOptions{})
		require.NoError(t, factoryErr)
		assert.Same(t, spy, source)
	})

	t.Run("should return ErrUnknownSource for an unregistered name", func(t *testing.T) {
		t.Parallel()

		// given
		registry := repositories.NewSourceRegistry()

		// when
		_, err := registry.Get("bitbucket")

		// then
		require.ErrorIs(t, err, entities.ErrUnknownSource)
		assert.Contains(t, err.Error(), `"bitbucket"`)
	})

	t.Run("should register every source through the container", func(t *testing.T) {
		t.Parallel()

		// given
		container := dig.New()
		require.NoError(t, repositories.RegisterProviders(container))

		// when
		var names []string
		err := container.Invoke(func(registry *repositories.SourceRegistry, _ domainRepos.ArtifactRepository) {
			names = registry.Names()
		})

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{entities.SourceGitHub, entities.SourceGitLab, entities.SourceLocal}, names)
	})
}
