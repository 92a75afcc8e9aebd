package repositories

import (
	"fmt"
	"sort"

	"github.com/rios0rios0/repo2txt/internal/domain/entities"
	domainRepos "github.com/rios0rios0/repo2txt/internal/domain/repositories"
)

// SourceRegistry manages all registered source adapter factories.
type SourceRegistry struct {
	sources map[string]domainRepos.SourceFactory
}

// NewSourceRegistry creates an empty source registry.
func NewSourceRegistry() *SourceRegistry {
	return &SourceRegistry{
		sources: make(map[string]domainRepos.SourceFactory),
	}
}

// Register adds a source factory under the given name (e.g. "github").
func (r *SourceRegistry) Register(name string, factory domainRepos.SourceFactory) {
	r.sources[name] = factory
}

// Get returns the factory registered for the given name.
func (r *SourceRegistry) Get(name string) (domainRepos.SourceFactory, error) {
	factory, ok := r.sources[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", entities.ErrUnknownSource, name)
	}
	return factory, nil
}

// Names returns the registered source names in alphabetical order.
func (r *SourceRegistry) Names() []string {
	names := make([]string, 0, len(r.sources))
	for name := range r.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
