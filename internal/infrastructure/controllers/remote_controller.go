package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/repo2txt/internal/domain/commands"
	"github.com/rios0rios0/repo2txt/internal/domain/entities"
)

const remoteHint = "Please check the repository URL and try again."

// remoteController is shared by the forge-backed subcommands. Only the
// wording differs between forges.
type remoteController struct {
	command      commands.Export
	source       string
	bind         entities.ControllerBind
	urlPrompt    string
	branchPrompt string
	savedFormat  string
	dotEnvDir    string
}

// GetBind returns the Cobra command metadata.
func (it *remoteController) GetBind() entities.ControllerBind {
	return it.bind
}

// AddFlags adds the remote-specific flags to the given Cobra command.
func (it *remoteController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("branch", "b", "",
		fmt.Sprintf("Branch to export (default: %q or default_branch from the config file)", entities.DefaultBranch))
}

// Execute exports a remote repository. Missing arguments are asked for
// interactively.
func (it *remoteController) Execute(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()
	applyVerbosity(cmd)

	// settings may reference ${VAR}s that only exist in .env
	if envErr := entities.LoadDotEnv(it.dotEnvDir); envErr != nil {
		logger.Warnf("Ignoring .env file: %v", envErr)
	}

	settings, err := loadSettings(cmd)
	if err != nil {
		return report(out, err, remoteHint)
	}

	rawURL, branch, err := it.target(cmd, args, settings)
	if err != nil {
		return report(out, err, remoteHint)
	}

	ref, err := entities.ParseRemoteReference(it.source, rawURL, branch)
	if err != nil {
		return report(out, err, remoteHint)
	}

	result, err := it.command.Execute(ctx, commands.ExportOptions{
		Reference: ref,
		Token:     resolveToken(cmd, it.source, settings),
		BaseURL:   settings.Provider(it.source).BaseURL,
		OutputDir: outputDir(cmd, settings),
	})
	if err != nil {
		return report(out, err, remoteHint)
	}

	_, _ = fmt.Fprintf(out, it.savedFormat+"\n", result.OutputPath)
	return nil
}

// target resolves the repository URL and branch from arguments, flags and
// prompts, in that order.
func (it *remoteController) target(
	cmd *cobra.Command,
	args []string,
	settings *entities.Settings,
) (string, string, error) {
	branch, _ := cmd.Flags().GetString("branch")

	if len(args) > 0 {
		if branch == "" {
			branch = settings.Branch()
		}
		return args[0], branch, nil
	}

	prompt := newPrompter(cmd)
	rawURL, err := prompt.ask(it.urlPrompt)
	if err != nil {
		return "", "", err
	}
	if branch == "" {
		if branch, err = prompt.ask(it.branchPrompt); err != nil {
			return "", "", err
		}
		if branch == "" {
			branch = settings.Branch()
		}
	}
	return rawURL, branch, nil
}

// GitHubController handles the "github" subcommand.
type GitHubController struct {
	remoteController
}

// NewGitHubController creates a new GitHubController.
func NewGitHubController(command commands.Export) *GitHubController {
	return &GitHubController{remoteController{
		command: command,
		source:  entities.SourceGitHub,
		bind: entities.ControllerBind{
			Use:   "github [repository-url]",
			Short: "Export a GitHub repository into a single text file",
			Long: `Export the README, the directory tree and the content of every text file
of a GitHub repository into "<repo>_contents.txt".

The token is taken from --token, the config file, GITHUB_TOKEN or GH_TOKEN
(a .env file is honoured).`,
		},
		urlPrompt:    "please input  GitHub repo URL: ",
		branchPrompt: "please input the branch(default: master）: ",
		savedFormat:  "Repository contents saved to '%s'.",
		dotEnvDir:    ".",
	}}
}

// GitLabController handles the "gitlab" subcommand.
type GitLabController struct {
	remoteController
}

// NewGitLabController creates a new GitLabController.
func NewGitLabController(command commands.Export) *GitLabController {
	return &GitLabController{remoteController{
		command: command,
		source:  entities.SourceGitLab,
		bind: entities.ControllerBind{
			Use:   "gitlab [repository-url]",
			Short: "Export a GitLab project into a single text file",
			Long: `Export the README, the directory tree and the content of every text file
of a GitLab project into "<project>_contents.txt".

The token is taken from --token, the config file, GITLAB_TOKEN or GL_TOKEN
(a .env file is honoured).`,
		},
		urlPrompt:    "Please enter GitLab repository URL: ",
		branchPrompt: "Please enter branch name (default is master): ",
		savedFormat:  "Repository contents have been saved to '%s'.",
		dotEnvDir:    ".",
	}}
}
