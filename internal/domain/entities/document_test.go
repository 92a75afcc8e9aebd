//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/repo2txt/internal/domain/entities"
)

func TestExportDocumentRender(t *testing.T) {
	t.Parallel()

	t.Run("should render every section in order with a README", func(t *testing.T) {
		t.Parallel()

		// given
		doc := entities.ExportDocument{
			Instructions:   "Please analyze using the following provided files and contents:\n\n",
			IncludeReadme:  true,
			Readme:         "# Hello",
			StructureTitle: "repo structure: hello",
			Tree:           "/README.md\n",
			Contents:       "File: /README.md\nContent:\n# Hello\n\n",
		}

		// when
		result := doc.Render()

		// then
		assert.Equal(t,
			"Please analyze using the following provided files and contents:\n\n"+
				"README:\n# Hello\n\n"+
				"repo structure: hello\n"+
				"/README.md\n"+
				"\n\n"+
				"File: /README.md\nContent:\n# Hello\n\n",
			result,
		)
	})

	t.Run("should omit the README block when not included", func(t *testing.T) {
		t.Parallel()

		// given
		doc := entities.ExportDocument{
			Instructions:   "Use the files and contents provided below to complete this analysis:\n\n",
			Readme:         "ignored",
			StructureTitle: "Repository Structure: repo",
			Tree:           "./b.py\n",
			Contents:       "File: repo/b.py\nContent:\nprint(1)\n\n",
		}

		// when
		result := doc.Render()

		// then
		assert.NotContains(t, result, "README:")
		assert.Equal(t,
			"Use the files and contents provided below to complete this analysis:\n\n"+
				"Repository Structure: repo\n./b.py\n\n\n"+
				"File: repo/b.py\nContent:\nprint(1)\n\n",
			result,
		)
	})
}

func TestDialect(t *testing.T) {
	t.Parallel()

	t.Run("should format the structure title per source", func(t *testing.T) {
		t.Parallel()

		// given
		github := entities.GitHubDialect()
		gitlab := entities.GitLabDialect()
		local := entities.LocalDialect("./repo")

		// when / then
		assert.Equal(t, "repo structure: hello", github.Title("hello"))
		assert.Equal(t, "Repository structure: hello", gitlab.Title("hello"))
		assert.Equal(t, "Repository Structure: hello", local.Title("hello"))
	})

	t.Run("should only fall back to Latin-1 and include a README for remote sources", func(t *testing.T) {
		t.Parallel()

		// given
		local := entities.LocalDialect("./repo")

		// when / then
		assert.True(t, entities.GitHubDialect().LatinFallback)
		assert.True(t, entities.GitLabDialect().IncludeReadme)
		assert.False(t, local.LatinFallback)
		assert.False(t, local.IncludeReadme)
		assert.Equal(t, ".", local.ListingRoot)
		assert.Equal(t, "./repo", local.ContentRoot)
	})
}
