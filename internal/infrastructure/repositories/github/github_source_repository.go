package github

import (
	"context"
	"errors"
	"fmt"

	gh "github.com/google/go-github/v66/github"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/repo2txt/internal/domain/entities"
	"github.com/rios0rios0/repo2txt/internal/domain/repositories"
)

const (
	dirType      = "dir"
	encodingNone = "none"
)

var errNotAFile = errors.New("path is a directory, not a file")

// GitHubSourceRepository implements repositories.SourceRepository on top of
// the GitHub contents API.
type GitHubSourceRepository struct {
	client *gh.Client
	ref    entities.RepositoryReference
}

// NewSourceRepository checks the credential, connects to GitHub (or a
// GitHub Enterprise instance when a base URL is set) and verifies that the
// repository is reachable.
func NewSourceRepository(
	ctx context.Context,
	opts repositories.SourceOptions,
) (repositories.SourceRepository, error) {
	if opts.Token == "" {
		return nil, entities.NewConfigurationError("Please set  'GITHUB_TOKEN' env param")
	}

	client := gh.NewClient(nil).WithAuthToken(opts.Token)
	if opts.BaseURL != "" {
		enterprise, err := client.WithEnterpriseURLs(opts.BaseURL, opts.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid GitHub base URL %q: %w", opts.BaseURL, err)
		}
		client = enterprise
	}

	source := newGitHubSourceRepository(client, opts.Reference)
	if err := source.verify(ctx); err != nil {
		return nil, err
	}
	return source, nil
}

func newGitHubSourceRepository(client *gh.Client, ref entities.RepositoryReference) *GitHubSourceRepository {
	return &GitHubSourceRepository{client: client, ref: ref}
}

func (p *GitHubSourceRepository) Reference() entities.RepositoryReference { return p.ref }
func (p *GitHubSourceRepository) Dialect() entities.Dialect               { return entities.GitHubDialect() }

func (p *GitHubSourceRepository) verify(ctx context.Context) error {
	repo, _, err := p.client.Repositories.Get(ctx, p.ref.Namespace, p.ref.Name)
	if err != nil {
		return fmt.Errorf("failed to access repository %q: %w", p.ref.FullPath(), err)
	}
	logger.Debugf("Connected to %s (default branch %s)", repo.GetFullName(), repo.GetDefaultBranch())
	return nil
}

func (p *GitHubSourceRepository) ListRoot(ctx context.Context) ([]entities.Entry, error) {
	return p.list(ctx, "")
}

func (p *GitHubSourceRepository) ListChildren(
	ctx context.Context,
	entry entities.Entry,
) ([]entities.Entry, error) {
	return p.list(ctx, entry.Path)
}

func (p *GitHubSourceRepository) list(ctx context.Context, path string) ([]entities.Entry, error) {
	fileContent, dirContent, _, err := p.client.Repositories.GetContents(
		ctx, p.ref.Namespace, p.ref.Name, path,
		&gh.RepositoryContentGetOptions{Ref: p.ref.Branch},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list %q: %w", path, err)
	}
	if fileContent != nil {
		return nil, fmt.Errorf("path %q is a file, not a directory", path)
	}

	result := make([]entities.Entry, 0, len(dirContent))
	for _, item := range dirContent {
		kind := entities.EntryFile
		if item.GetType() == dirType {
			kind = entities.EntryDirectory
		}
		result = append(result, entities.Entry{
			Name: item.GetName(),
			Path: item.GetPath(),
			Kind: kind,
		})
	}
	return result, nil
}

func (p *GitHubSourceRepository) ReadContent(ctx context.Context, entry entities.Entry) entities.Content {
	return p.ReadFile(ctx, entry.Path)
}

// ReadFile fetches a blob. Files served without an encoding (GitHub does so
// for blobs above 1 MB) are reported as entities.ContentMissingEncoding.
func (p *GitHubSourceRepository) ReadFile(ctx context.Context, path string) entities.Content {
	fileContent, _, _, err := p.client.Repositories.GetContents(
		ctx, p.ref.Namespace, p.ref.Name, path,
		&gh.RepositoryContentGetOptions{Ref: p.ref.Branch},
	)
	if err != nil {
		return entities.ContentFailed(fmt.Errorf("failed to get file %q: %w", path, err))
	}
	if fileContent == nil {
		return entities.ContentFailed(fmt.Errorf("%q: %w", path, errNotAFile))
	}
	if fileContent.Encoding == nil || fileContent.GetEncoding() == encodingNone {
		return entities.ContentMissing()
	}

	content, err := fileContent.GetContent()
	if err != nil {
		return entities.ContentFailed(fmt.Errorf("failed to decode file content: %w", err))
	}
	return entities.ContentOf([]byte(content))
}
