package entities

import "fmt"

// Dialect holds the front-end specific wording and decoding policy of an
// export. Each source adapter carries exactly one.
type Dialect struct {
	Instructions     string // Preamble sentence, including its trailing blank line
	StructureTitle   string // Format string receiving the repository name
	IncludeReadme    bool   // Whether a README block is emitted
	LatinFallback    bool   // Retry undecodable UTF-8 as Latin-1
	ListingRoot      string // Path prefix of the root frame in the tree listing
	ContentRoot      string // Path prefix of the root frame in the content export
	UnreadableReason string // Completes "Content: Skipped due to ..."
}

// Title renders the structure header for a repository name.
func (d Dialect) Title(repoName string) string {
	return fmt.Sprintf(d.StructureTitle, repoName)
}

// GitHubDialect is used for repositories hosted on GitHub.
func GitHubDialect() Dialect {
	return Dialect{
		Instructions:     "Please analyze using the following provided files and contents:\n\n",
		StructureTitle:   "repo structure: %s",
		IncludeReadme:    true,
		LatinFallback:    true,
		UnreadableReason: "decoding error or missing decoded_content",
	}
}

// GitLabDialect is used for repositories hosted on GitLab.
func GitLabDialect() Dialect {
	return Dialect{
		Instructions:     "Use the following files and contents for analysis:\n\n",
		StructureTitle:   "Repository structure: %s",
		IncludeReadme:    true,
		LatinFallback:    true,
		UnreadableReason: "decoding error or missing decoded_content",
	}
}

// LocalDialect is used for repositories read from disk. Paths in the tree
// listing are relative to "." while content headers keep the path as entered.
func LocalDialect(contentRoot string) Dialect {
	return Dialect{
		Instructions:     "Use the files and contents provided below to complete this analysis:\n\n",
		StructureTitle:   "Repository Structure: %s",
		ListingRoot:      ".",
		ContentRoot:      contentRoot,
		UnreadableReason: "decoding error or file not found",
	}
}
