package repositories

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/repo2txt/internal/domain/entities"
	domainRepos "github.com/rios0rios0/repo2txt/internal/domain/repositories"
	artifactRepo "github.com/rios0rios0/repo2txt/internal/infrastructure/repositories/artifact"
	ghRepo "github.com/rios0rios0/repo2txt/internal/infrastructure/repositories/github"
	glRepo "github.com/rios0rios0/repo2txt/internal/infrastructure/repositories/gitlab"
	localRepo "github.com/rios0rios0/repo2txt/internal/infrastructure/repositories/local"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register source registry with all source adapter factories
	if err := container.Provide(func() *SourceRegistry {
		reg := NewSourceRegistry()
		reg.Register(entities.SourceGitHub, ghRepo.NewSourceRepository)
		reg.Register(entities.SourceGitLab, glRepo.NewSourceRepository)
		reg.Register(entities.SourceLocal, localRepo.NewSourceRepository)
		return reg
	}); err != nil {
		return err
	}

	// Register the artifact writer
	if err := container.Provide(func() domainRepos.ArtifactRepository {
		return artifactRepo.NewFileArtifactRepository()
	}); err != nil {
		return err
	}

	return nil
}
