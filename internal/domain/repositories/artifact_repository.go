package repositories

import "context"

// ArtifactRepository persists a rendered export document.
type ArtifactRepository interface {
	// Save writes content under name, replacing any previous artifact, and
	// returns the location written to.
	Save(ctx context.Context, dir, name, content string) (string, error)
}
