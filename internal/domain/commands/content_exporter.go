package commands

import (
	"context"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/repo2txt/internal/domain/entities"
	"github.com/rios0rios0/repo2txt/internal/domain/repositories"
)

const (
	skippedBinary          = "Content: Skipped binary file\n\n"
	skippedMissingEncoding = "Content: Skipped due to missing encoding\n\n"
	skippedUnsupported     = "Content: Skipped due to unsupported encoding\n\n"
)

// ContentExporter renders one "File:" block per file of a repository.
// Binary files are recognised by name and never fetched; unreadable files
// produce a skip marker and never abort the export.
type ContentExporter struct {
	binaries *entities.BinaryExtensionSet
	progress ProgressFactory
}

// NewContentExporter creates a ContentExporter.
func NewContentExporter(binaries *entities.BinaryExtensionSet, progress ProgressFactory) *ContentExporter {
	return &ContentExporter{binaries: binaries, progress: progress}
}

// Export returns the concatenated file blocks of source.
func (it *ContentExporter) Export(ctx context.Context, source repositories.SourceRepository) (string, error) {
	dialect := source.Dialect()
	var sb strings.Builder

	pass := &traversal{
		source:   source,
		progress: it.progress,
		verb:     "Downloading",
		onFile: func(ctx context.Context, path string, entry entities.Entry) {
			sb.WriteString("File: ")
			sb.WriteString(path)
			sb.WriteString("\n")
			sb.WriteString(it.fileBlock(ctx, source, dialect, entry))
		},
	}

	if err := pass.run(ctx, dialect.ContentRoot); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// fileBlock renders everything after the "File:" header line.
func (it *ContentExporter) fileBlock(
	ctx context.Context,
	source repositories.SourceRepository,
	dialect entities.Dialect,
	entry entities.Entry,
) string {
	if it.binaries.Matches(entry.Name) {
		return skippedBinary
	}

	content := source.ReadContent(ctx, entry)
	switch content.Status {
	case entities.ContentMissingEncoding:
		return skippedMissingEncoding
	case entities.ContentUnavailable:
		logger.Debugf("Skipping %q: %v", entry.Path, content.Err)
		return skippedBecause(dialect.UnreadableReason)
	case entities.ContentOK:
	}

	text, outcome := decodeText(content.Data, dialect.LatinFallback)
	switch outcome {
	case decodedUTF8:
		return "Content:\n" + text + "\n\n"
	case decodedLatin1:
		return "Content (Latin-1 Decoded):\n" + text + "\n\n"
	case notDecodable:
	}

	if dialect.LatinFallback {
		return skippedUnsupported
	}
	return skippedBecause(dialect.UnreadableReason)
}

func skippedBecause(reason string) string {
	return "Content: Skipped due to " + reason + "\n\n"
}
