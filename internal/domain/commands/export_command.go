package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/repo2txt/internal/domain/entities"
	"github.com/rios0rios0/repo2txt/internal/domain/repositories"
	infraRepos "github.com/rios0rios0/repo2txt/internal/infrastructure/repositories"
)

// Export is the interface for the export command.
type Export interface {
	Execute(ctx context.Context, opts ExportOptions) (*ExportResult, error)
}

// ExportOptions holds runtime options for a single export.
type ExportOptions struct {
	Reference entities.RepositoryReference
	Token     string
	BaseURL   string
	OutputDir string
}

// ExportResult describes a finished export.
type ExportResult struct {
	OutputPath string
	Document   entities.ExportDocument
}

// ExportCommand assembles the export document of a repository:
// README -> tree listing -> file contents, then persists it in one write.
type ExportCommand struct {
	sourceRegistry *infraRepos.SourceRegistry
	artifacts      repositories.ArtifactRepository
	readme         *ReadmeLocator
	tree           *TreeWalker
	contents       *ContentExporter
}

// NewExportCommand creates a new ExportCommand.
func NewExportCommand(
	sourceRegistry *infraRepos.SourceRegistry,
	artifacts repositories.ArtifactRepository,
	readme *ReadmeLocator,
	tree *TreeWalker,
	contents *ContentExporter,
) *ExportCommand {
	return &ExportCommand{
		sourceRegistry: sourceRegistry,
		artifacts:      artifacts,
		readme:         readme,
		tree:           tree,
		contents:       contents,
	}
}

// Execute binds a source for the reference, runs every stage against it and
// writes the artifact. Nothing is written when a stage fails.
func (it *ExportCommand) Execute(ctx context.Context, opts ExportOptions) (*ExportResult, error) {
	ref := opts.Reference

	factory, err := it.sourceRegistry.Get(ref.Source)
	if err != nil {
		return nil, err
	}

	source, err := factory(ctx, repositories.SourceOptions{
		Reference: ref,
		Token:     opts.Token,
		BaseURL:   opts.BaseURL,
	})
	if err != nil {
		return nil, err
	}

	dialect := source.Dialect()
	doc := entities.ExportDocument{
		Instructions:   dialect.Instructions,
		IncludeReadme:  dialect.IncludeReadme,
		StructureTitle: dialect.Title(ref.Name),
	}

	if dialect.IncludeReadme {
		logger.Infof("Getting README for %s", ref.Name)
		doc.Readme = it.readme.Locate(ctx, source)
	}

	logger.Infof("Getting repository structure for %s", ref.Name)
	doc.Tree, err = it.tree.Walk(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("failed to build repository structure: %w", err)
	}

	logger.Infof("Getting file contents for %s", ref.Name)
	doc.Contents, err = it.contents.Export(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("failed to export file contents: %w", err)
	}

	path, err := it.artifacts.Save(ctx, opts.OutputDir, ref.OutputFileName(), doc.Render())
	if err != nil {
		return nil, err
	}

	return &ExportResult{OutputPath: path, Document: doc}, nil
}
