package entities

import "strings"

// ReadmeNotFound is the README block text used when no README could be read.
const ReadmeNotFound = "README not found."

// ExportDocument is the assembled output of one export run.
type ExportDocument struct {
	Instructions   string
	IncludeReadme  bool
	Readme         string
	StructureTitle string
	Tree           string
	Contents       string
}

// Render concatenates the document sections in their fixed order.
func (d ExportDocument) Render() string {
	var sb strings.Builder
	sb.Grow(len(d.Instructions) + len(d.Readme) + len(d.StructureTitle) + len(d.Tree) + len(d.Contents) + 16)

	sb.WriteString(d.Instructions)
	if d.IncludeReadme {
		sb.WriteString("README:\n")
		sb.WriteString(d.Readme)
		sb.WriteString("\n\n")
	}
	sb.WriteString(d.StructureTitle)
	sb.WriteString("\n")
	sb.WriteString(d.Tree)
	sb.WriteString("\n\n")
	sb.WriteString(d.Contents)

	return sb.String()
}
