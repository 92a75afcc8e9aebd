package controllers

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/repo2txt/internal/domain/entities"
)

// ErrReported marks failures whose message was already printed for the user.
var ErrReported = errors.New("export failed")

// loadSettings reads the settings file named by --config, or the first one
// found in the default locations. Running without a settings file is fine.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		found, err := entities.FindConfigFile()
		if err != nil {
			logger.Debugf("No config file: %v", err)
			return &entities.Settings{}, nil
		}
		configPath = found
	}

	logger.Debugf("Using config file: %s", configPath)
	return entities.NewSettings(configPath)
}

// applyVerbosity raises the log level when --verbose is set.
func applyVerbosity(cmd *cobra.Command) {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(logger.DebugLevel)
	}
}

// outputDir returns --output-dir, falling back to the settings file.
func outputDir(cmd *cobra.Command, settings *entities.Settings) string {
	if dir, _ := cmd.Flags().GetString("output-dir"); dir != "" {
		return dir
	}
	return settings.OutputDir
}

// resolveToken applies the precedence --token > settings file > environment.
func resolveToken(cmd *cobra.Command, source string, settings *entities.Settings) string {
	if token, _ := cmd.Flags().GetString("token"); token != "" {
		return token
	}
	if token := settings.Provider(source).Token; token != "" {
		return token
	}
	return entities.TokenFromEnv(source)
}

// prompter asks questions on the command's input and output streams.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(cmd *cobra.Command) *prompter {
	return &prompter{in: bufio.NewReader(cmd.InOrStdin()), out: cmd.OutOrStdout()}
}

// ask prints question and returns the answer without surrounding blanks.
// End of input counts as an empty answer.
func (p *prompter) ask(question string) (string, error) {
	if _, err := fmt.Fprint(p.out, question); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// report prints err the way users of the tool expect and marks it as
// reported. Configuration problems get a short "Error:" line.
func report(out io.Writer, err error, hint string) error {
	var cfgErr *entities.ConfigurationError
	if errors.As(err, &cfgErr) {
		_, _ = fmt.Fprintf(out, "Error: %s\n", cfgErr.Message)
	} else {
		_, _ = fmt.Fprintf(out, "An error occurred: %v\n", err)
		_, _ = fmt.Fprintln(out, hint)
	}
	return fmt.Errorf("%w: %w", ErrReported, err)
}
