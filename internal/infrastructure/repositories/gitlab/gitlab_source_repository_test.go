//go:build unit

package gitlab //nolint:testpackage // tests reach the unexported client hook

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gl "gitlab.com/gitlab-org/api/client-go"

	"github.com/rios0rios0/repo2txt/internal/domain/entities"
	"github.com/rios0rios0/repo2txt/internal/domain/repositories"
)

const projectPath = "/api/v4/projects/group/sub/project"

// fakeGitLab serves the project "group/sub/project" on branch "main". The
// root tree is split over two pages; tree queries are recorded.
type fakeGitLab struct {
	mu      sync.Mutex
	queries []string
}

func (f *fakeGitLab) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	path := r.URL.Path
	switch {
	case path == projectPath:
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":1,"path_with_namespace":"group/sub/project","default_branch":"main"}`)
	case path == projectPath+"/repository/tree" && query.Get("ref") == "main":
		f.mu.Lock()
		f.queries = append(f.queries, r.URL.RawQuery)
		f.mu.Unlock()
		f.serveTree(w, query.Get("path"), query.Get("page"))
	case strings.HasPrefix(path, projectPath+"/repository/files/") && strings.HasSuffix(path, "/raw"):
		file := strings.TrimSuffix(strings.TrimPrefix(path, projectPath+"/repository/files/"), "/raw")
		if file == "src/a.txt" && query.Get("ref") == "main" {
			w.Header().Set("Content-Type", "text/plain")
			fmt.Fprint(w, "hello\n")
			return
		}
		notFound(w)
	default:
		notFound(w)
	}
}

func (f *fakeGitLab) serveTree(w http.ResponseWriter, dir, page string) {
	w.Header().Set("Content-Type", "application/json")
	switch {
	case dir == "" && (page == "" || page == "1"):
		w.Header().Set("X-Next-Page", "2")
		fmt.Fprint(w, `[
			{"id":"a","name":"src","type":"tree","path":"src","mode":"040000"},
			{"id":"b","name":"README.md","type":"blob","path":"README.md","mode":"100644"}
		]`)
	case dir == "" && page == "2":
		fmt.Fprint(w, `[{"id":"c","name":"notes.txt","type":"blob","path":"notes.txt","mode":"100644"}]`)
	case dir == "src":
		fmt.Fprint(w, `[{"id":"d","name":"a.txt","type":"blob","path":"src/a.txt","mode":"100644"}]`)
	default:
		notFound(w)
	}
}

func notFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	fmt.Fprint(w, `{"message":"404 Not Found"}`)
}

func newTestSource(t *testing.T, fake *fakeGitLab, name string) *GitLabSourceRepository {
	t.Helper()

	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	client, err := gl.NewClient("token", gl.WithBaseURL(server.URL))
	require.NoError(t, err)

	ref := entities.RepositoryReference{
		Source:    entities.SourceGitLab,
		Namespace: "group/sub",
		Name:      name,
		Branch:    "main",
	}
	return newGitLabSourceRepository(client, ref)
}

func TestNewSourceRepository(t *testing.T) {
	t.Parallel()

	t.Run("should return a configuration error when the token is missing", func(t *testing.T) {
		t.Parallel()

		// given
		opts := repositories.SourceOptions{
			Reference: entities.RepositoryReference{Source: entities.SourceGitLab, Namespace: "group", Name: "project"},
		}

		// when
		source, err := NewSourceRepository(context.Background(), opts)

		// then
		var configErr *entities.ConfigurationError
		require.ErrorAs(t, err, &configErr)
		assert.Equal(t, "Please set 'GITLAB_TOKEN' environment variable or in the script.", configErr.Message)
		assert.Nil(t, source)
	})

	t.Run("should connect to a self-hosted instance and verify the project", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(&fakeGitLab{})
		t.Cleanup(server.Close)
		opts := repositories.SourceOptions{
			Reference: entities.RepositoryReference{
				Source:    entities.SourceGitLab,
				Namespace: "group/sub",
				Name:      "project",
				Branch:    "main",
			},
			Token:   "token",
			BaseURL: server.URL,
		}

		// when
		source, err := NewSourceRepository(context.Background(), opts)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.GitLabDialect(), source.Dialect())
	})
}

func TestGitLabSourceRepository(t *testing.T) {
	t.Parallel()

	t.Run("should fail verification for an unknown project", func(t *testing.T) {
		t.Parallel()

		// given
		source := newTestSource(t, &fakeGitLab{}, "missing")

		// when
		err := source.verify(context.Background())

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), `failed to access project "group/sub/missing"`)
	})

	t.Run("should collect every page of the root tree", func(t *testing.T) {
		t.Parallel()

		// given
		fake := &fakeGitLab{}
		source := newTestSource(t, fake, "project")

		// when
		entries, err := source.ListRoot(context.Background())

		// then
		require.NoError(t, err)
		assert.Equal(t, []entities.Entry{
			{Name: "src", Path: "src", Kind: entities.EntryDirectory},
			{Name: "README.md", Path: "README.md", Kind: entities.EntryFile},
			{Name: "notes.txt", Path: "notes.txt", Kind: entities.EntryFile},
		}, entries)
		require.Len(t, fake.queries, 2)
		assert.Contains(t, fake.queries[0], "per_page=100")
	})

	t.Run("should list a subdirectory by its path", func(t *testing.T) {
		t.Parallel()

		// given
		source := newTestSource(t, &fakeGitLab{}, "project")
		dir := entities.Entry{Name: "src", Path: "src", Kind: entities.EntryDirectory}

		// when
		entries, err := source.ListChildren(context.Background(), dir)

		// then
		require.NoError(t, err)
		assert.Equal(t, []entities.Entry{{Name: "a.txt", Path: "src/a.txt", Kind: entities.EntryFile}}, entries)
	})

	t.Run("should return error when the tree cannot be listed", func(t *testing.T) {
		t.Parallel()

		// given
		source := newTestSource(t, &fakeGitLab{}, "project")
		dir := entities.Entry{Name: "gone", Path: "gone", Kind: entities.EntryDirectory}

		// when
		_, err := source.ListChildren(context.Background(), dir)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to list tree")
	})

	t.Run("should read a raw file on the branch", func(t *testing.T) {
		t.Parallel()

		// given
		source := newTestSource(t, &fakeGitLab{}, "project")

		// when
		content := source.ReadContent(context.Background(), entities.Entry{Name: "a.txt", Path: "src/a.txt"})

		// then
		assert.Equal(t, entities.ContentOK, content.Status)
		assert.Equal(t, "hello\n", string(content.Data))
	})

	t.Run("should report a missing file as unavailable", func(t *testing.T) {
		t.Parallel()

		// given
		source := newTestSource(t, &fakeGitLab{}, "project")

		// when
		content := source.ReadFile(context.Background(), "README.md")

		// then
		assert.Equal(t, entities.ContentUnavailable, content.Status)
		assert.Error(t, content.Err)
	})
}
