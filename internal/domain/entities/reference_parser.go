package entities

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
)

// ParseRemoteReference extracts namespace and repository name from a forge
// URL. It accepts HTTPS URLs, SSH remotes (git@host:ns/repo.git) and bare
// "ns/repo" paths. GitLab namespaces may contain nested groups.
func ParseRemoteReference(source, rawURL, branch string) (RepositoryReference, error) {
	trimmed := strings.TrimSpace(rawURL)
	pathPart, err := remotePath(trimmed)
	if err != nil {
		return RepositoryReference{}, err
	}

	pathPart = strings.Trim(pathPart, "/")
	pathPart = strings.TrimSuffix(pathPart, ".git")
	segments := strings.Split(pathPart, "/")
	if len(segments) < 2 || segments[0] == "" || segments[len(segments)-1] == "" { //nolint:mnd // need namespace + repo
		return RepositoryReference{}, fmt.Errorf("cannot extract namespace/repository from URL: %s", rawURL)
	}

	namespace := strings.Join(segments[:len(segments)-1], "/")
	if source == SourceGitHub {
		if len(segments) > 2 { //nolint:mnd // GitHub is owner/repo only
			namespace = segments[0]
			segments = segments[:2]
		}
	}

	return RepositoryReference{
		Source:    source,
		Namespace: namespace,
		Name:      segments[len(segments)-1],
		Branch:    branch,
		URL:       trimmed,
	}, nil
}

func remotePath(raw string) (string, error) {
	if raw == "" {
		return "", errors.New("repository URL is empty")
	}

	if strings.HasPrefix(raw, "git@") {
		_, after, ok := strings.Cut(raw, ":")
		if !ok {
			return "", fmt.Errorf("invalid SSH URL: %s", raw)
		}
		return after, nil
	}

	if strings.Contains(raw, "://") {
		parsed, err := url.Parse(raw)
		if err != nil {
			return "", fmt.Errorf("invalid repository URL %q: %w", raw, err)
		}
		return parsed.Path, nil
	}

	return raw, nil
}

// NewLocalReference builds the reference of a repository on disk.
func NewLocalReference(path string) RepositoryReference {
	return RepositoryReference{
		Source:    SourceLocal,
		Name:      filepath.Base(filepath.Clean(path)),
		LocalPath: path,
	}
}
