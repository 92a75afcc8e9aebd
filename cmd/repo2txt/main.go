package main

import (
	"errors"
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/repo2txt/internal/domain/entities"
	"github.com/rios0rios0/repo2txt/internal/infrastructure/controllers"
)

func buildRootCommand(localController *controllers.LocalController) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "repo2txt [path]",
		Short: "Export a repository into a single text file",
		Long: `Export the README, the directory tree and the content of every text file
of a repository into one "<repo>_contents.txt" document, ready for bulk
ingestion by an analysis tool.

Supports GitHub, GitLab, and local directories.

Usage modes:
  repo2txt .                     Export the current directory
  repo2txt github <url>          Export a GitHub repository
  repo2txt gitlab <url>          Export a GitLab project
  repo2txt local                 Ask for a local path interactively`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(command *cobra.Command, args []string) error {
			if len(args) == 0 {
				return command.Help()
			}
			return localController.Execute(command, args)
		},
	}

	// Global persistent flags
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().String("token", "",
		"Auth token for the Git provider (overrides config file and env vars)")
	cmd.PersistentFlags().StringP("output-dir", "o", "",
		"Directory receiving the <repo>_contents.txt file (default: current directory)")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, controllerList []entities.Controller) {
	for _, controller := range controllerList {
		bind := controller.GetBind()
		ctrl := controller // capture for closure
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  cobra.MaximumNArgs(1),
			RunE: func(command *cobra.Command, arguments []string) error {
				return ctrl.Execute(command, arguments)
			},
		}
		ctrl.AddFlags(subCmd)
		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	appContext := injectAppContext()
	cobraRoot := buildRootCommand(appContext.LocalController)
	addSubcommands(cobraRoot, appContext.App.GetControllers())

	if err := cobraRoot.Execute(); err != nil {
		if errors.Is(err, controllers.ErrReported) {
			os.Exit(1)
		}
		logger.Fatalf("Error executing 'repo2txt': %s", err)
	}
}
