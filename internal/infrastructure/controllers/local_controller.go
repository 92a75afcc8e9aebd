package controllers

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/repo2txt/internal/domain/commands"
	"github.com/rios0rios0/repo2txt/internal/domain/entities"
)

const localHint = "Please check the repository path and try again."

// LocalController handles the "local" subcommand and the root command with a
// path argument.
type LocalController struct {
	command commands.Export
}

// NewLocalController creates a new LocalController.
func NewLocalController(command commands.Export) *LocalController {
	return &LocalController{command: command}
}

// GetBind returns the Cobra command metadata for the local controller.
func (it *LocalController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "local [path]",
		Short: "Export a repository on disk into a single text file",
		Long: `Export the directory tree and the content of every text file below a
local path into "<dir>_contents.txt". No credential is needed.`,
	}
}

// AddFlags is a no-op: the local mode only uses the global flags.
func (it *LocalController) AddFlags(_ *cobra.Command) {}

// Execute runs the local export mode.
func (it *LocalController) Execute(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()
	applyVerbosity(cmd)

	settings, err := loadSettings(cmd)
	if err != nil {
		return report(out, err, localHint)
	}

	var repoPath string
	if len(args) > 0 {
		repoPath = args[0]
	} else if repoPath, err = newPrompter(cmd).ask("Please enter the local repository path: "); err != nil {
		return report(out, err, localHint)
	}

	result, err := it.command.Execute(ctx, commands.ExportOptions{
		Reference: entities.NewLocalReference(repoPath),
		OutputDir: outputDir(cmd, settings),
	})
	if err != nil {
		return report(out, err, localHint)
	}

	_, _ = fmt.Fprintf(out, "Repository contents saved to '%s'.\n", result.OutputPath)
	return nil
}
