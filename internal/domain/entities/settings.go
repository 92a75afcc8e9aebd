package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/joho/godotenv"
	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// DefaultBranch is used when neither the user nor the settings name a branch.
const DefaultBranch = "master"

// Settings is the optional configuration file of repo2txt.
type Settings struct {
	GitHub        ProviderSettings `yaml:"github"`
	GitLab        ProviderSettings `yaml:"gitlab"`
	OutputDir     string           `yaml:"output_dir"`
	DefaultBranch string           `yaml:"default_branch"`
}

// ProviderSettings holds per-forge connection settings.
type ProviderSettings struct {
	Token   string `yaml:"token"`    // Inline, ${ENV_VAR}, or file path
	BaseURL string `yaml:"base_url"` // Enterprise / self-hosted API endpoint
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewSettings reads and parses a settings file, expanding environment
// variables and resolving token file paths.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var settings Settings
	if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.GitHub.Token = ResolveToken(settings.GitHub.Token)
	settings.GitLab.Token = ResolveToken(settings.GitLab.Token)

	return &settings, nil
}

// Branch returns the configured default branch or DefaultBranch.
func (s *Settings) Branch() string {
	if s == nil || s.DefaultBranch == "" {
		return DefaultBranch
	}
	return s.DefaultBranch
}

// Provider returns the settings block of the given source.
func (s *Settings) Provider(source string) ProviderSettings {
	if s == nil {
		return ProviderSettings{}
	}
	switch source {
	case SourceGitHub:
		return s.GitHub
	case SourceGitLab:
		return s.GitLab
	default:
		return ProviderSettings{}
	}
}

// FindConfigFile searches for a settings file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".repo2txt.yaml",
		".repo2txt.yml",
		"repo2txt.yaml",
		"repo2txt.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// ResolveToken expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the token from it.
func ResolveToken(raw string) string {
	if raw == "" {
		return raw
	}

	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})

	if info, statErr := os.Stat(resolved); statErr == nil && !info.IsDir() {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read token file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Debugf("Read token from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}

// TokenFromEnv returns the credential for a source from the process
// environment.
func TokenFromEnv(source string) string {
	switch source {
	case SourceGitHub:
		if t := os.Getenv("GITHUB_TOKEN"); t != "" {
			return t
		}
		return os.Getenv("GH_TOKEN")
	case SourceGitLab:
		if t := os.Getenv("GITLAB_TOKEN"); t != "" {
			return t
		}
		return os.Getenv("GL_TOKEN")
	default:
		return ""
	}
}

// FindDotEnv walks up from dir looking for a ".env" file.
func FindDotEnv(dir string) (string, bool) {
	current, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	for {
		candidate := filepath.Join(current, ".env")
		if info, statErr := os.Stat(candidate); statErr == nil && !info.IsDir() {
			return candidate, true
		}
		parent := filepath.Dir(current)
		if parent == current {
			return "", false
		}
		current = parent
	}
}

// LoadDotEnv loads the nearest ".env" above dir into the process
// environment. Variables already set are left untouched.
func LoadDotEnv(dir string) error {
	path, ok := FindDotEnv(dir)
	if !ok {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %q: %w", path, err)
	}
	logger.Debugf("Loaded environment from %q", path)
	return nil
}
