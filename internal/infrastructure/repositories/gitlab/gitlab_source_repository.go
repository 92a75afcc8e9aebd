package gitlab

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	gl "gitlab.com/gitlab-org/api/client-go"

	"github.com/rios0rios0/repo2txt/internal/domain/entities"
	"github.com/rios0rios0/repo2txt/internal/domain/repositories"
)

const (
	perPage  = 100
	treeType = "tree"
)

// GitLabSourceRepository implements repositories.SourceRepository on top of
// the GitLab repository tree and raw file APIs.
type GitLabSourceRepository struct {
	client *gl.Client
	ref    entities.RepositoryReference
}

// NewSourceRepository checks the credential, connects to gitlab.com (or the
// configured self-hosted instance) and verifies that the project exists.
func NewSourceRepository(
	ctx context.Context,
	opts repositories.SourceOptions,
) (repositories.SourceRepository, error) {
	if opts.Token == "" {
		return nil, entities.NewConfigurationError(
			"Please set 'GITLAB_TOKEN' environment variable or in the script.",
		)
	}

	var clientOpts []gl.ClientOptionFunc
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, gl.WithBaseURL(opts.BaseURL))
	}
	client, err := gl.NewClient(opts.Token, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GitLab client: %w", err)
	}

	source := newGitLabSourceRepository(client, opts.Reference)
	if verifyErr := source.verify(ctx); verifyErr != nil {
		return nil, verifyErr
	}
	return source, nil
}

func newGitLabSourceRepository(client *gl.Client, ref entities.RepositoryReference) *GitLabSourceRepository {
	return &GitLabSourceRepository{client: client, ref: ref}
}

func (p *GitLabSourceRepository) Reference() entities.RepositoryReference { return p.ref }
func (p *GitLabSourceRepository) Dialect() entities.Dialect               { return entities.GitLabDialect() }

func (p *GitLabSourceRepository) pid() string {
	return p.ref.FullPath()
}

func (p *GitLabSourceRepository) verify(ctx context.Context) error {
	project, _, err := p.client.Projects.GetProject(p.pid(), nil, gl.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to access project %q: %w", p.pid(), err)
	}
	logger.Debugf("Connected to %s (default branch %s)", project.PathWithNamespace, project.DefaultBranch)
	return nil
}

func (p *GitLabSourceRepository) ListRoot(ctx context.Context) ([]entities.Entry, error) {
	return p.list(ctx, nil)
}

func (p *GitLabSourceRepository) ListChildren(
	ctx context.Context,
	entry entities.Entry,
) ([]entities.Entry, error) {
	return p.list(ctx, gl.Ptr(entry.Path))
}

// list returns every page of a single tree level.
func (p *GitLabSourceRepository) list(ctx context.Context, path *string) ([]entities.Entry, error) {
	recursive := false
	opts := &gl.ListTreeOptions{
		ListOptions: gl.ListOptions{PerPage: perPage},
		Path:        path,
		Ref:         gl.Ptr(p.ref.Branch),
		Recursive:   &recursive,
	}

	var result []entities.Entry
	for {
		nodes, resp, err := p.client.Repositories.ListTree(p.pid(), opts, gl.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("failed to list tree: %w", err)
		}

		for _, node := range nodes {
			kind := entities.EntryFile
			if node.Type == treeType {
				kind = entities.EntryDirectory
			}
			result = append(result, entities.Entry{
				Name: node.Name,
				Path: node.Path,
				Kind: kind,
			})
		}

		if resp == nil || resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return result, nil
}

func (p *GitLabSourceRepository) ReadContent(ctx context.Context, entry entities.Entry) entities.Content {
	return p.ReadFile(ctx, entry.Path)
}

func (p *GitLabSourceRepository) ReadFile(ctx context.Context, path string) entities.Content {
	raw, _, err := p.client.RepositoryFiles.GetRawFile(
		p.pid(), path,
		&gl.GetRawFileOptions{Ref: gl.Ptr(p.ref.Branch)},
		gl.WithContext(ctx),
	)
	if err != nil {
		return entities.ContentFailed(fmt.Errorf("failed to get file %q: %w", path, err))
	}
	return entities.ContentOf(raw)
}
