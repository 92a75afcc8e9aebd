package commands

import (
	"context"
	"unicode/utf8"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/repo2txt/internal/domain/entities"
	"github.com/rios0rios0/repo2txt/internal/domain/repositories"
)

// ReadmeLocator finds the README of a repository among the conventional
// file names.
type ReadmeLocator struct {
	candidates []string
}

// NewReadmeLocator creates a ReadmeLocator trying README.md, readme.md and
// ReadMe.md in that order.
func NewReadmeLocator() *ReadmeLocator {
	return &ReadmeLocator{candidates: []string{"README.md", "readme.md", "ReadMe.md"}}
}

// Locate returns the text of the first README that exists and is valid
// UTF-8, or entities.ReadmeNotFound.
func (it *ReadmeLocator) Locate(ctx context.Context, source repositories.SourceRepository) string {
	for _, name := range it.candidates {
		content := source.ReadFile(ctx, name)
		if content.Status != entities.ContentOK {
			logger.Debugf("README candidate %q not available: %v", name, content.Err)
			continue
		}
		if !utf8.Valid(content.Data) {
			logger.Debugf("README candidate %q is not valid UTF-8", name)
			continue
		}
		return string(content.Data)
	}
	return entities.ReadmeNotFound
}
