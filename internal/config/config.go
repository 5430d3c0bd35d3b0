package config

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/notebook-tools/nbversion/internal/errors"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultNotebookDir is the subdirectory of the repository that holds
	// the versioned notebooks
	DefaultNotebookDir = "notebooks"

	// DefaultRemote is the git remote pushed to
	DefaultRemote = "origin"

	// DefaultDescription is used when the operator supplies no change
	// description
	DefaultDescription = "updated"

	// DefaultBranchPrefix is prepended to the version label to form the
	// branch name, e.g. notebook/v3
	DefaultBranchPrefix = "notebook/"

	// ConfigFileName is the optional per-repository configuration file
	ConfigFileName = ".nbversion.yaml"
)

// Config holds all nbversion application settings
type Config struct {
	// Repository configuration
	RepoPath     string `yaml:"-"`
	NotebookDir  string `yaml:"notebook_dir"`
	Remote       string `yaml:"remote"`
	BranchPrefix string `yaml:"branch_prefix"`
	TagPrefix    string `yaml:"tag_prefix"`

	// Defaults for interactive inputs
	DefaultDescription string `yaml:"default_description"`

	// User experience
	Verbose        bool `yaml:"verbose"`
	NonInteractive bool `yaml:"non_interactive"`

	// Debugging
	Debug   bool   `yaml:"debug"`
	LogFile string `yaml:"log_file"`

	// Build metadata
	VersionInfo VersionInfo `yaml:"-"`
}

// VersionInfo contains build-time version metadata
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

// New creates a new Config with default values
func New() *Config {
	return &Config{
		RepoPath:           "",
		NotebookDir:        DefaultNotebookDir,
		Remote:             DefaultRemote,
		BranchPrefix:       DefaultBranchPrefix,
		TagPrefix:          "",
		DefaultDescription: DefaultDescription,
		Verbose:            true,
		NonInteractive:     false,
		Debug:              false,
		LogFile:            "",

		// Default version info, will be overridden if provided
		VersionInfo: VersionInfo{
			Version: "dev",
			Commit:  "unknown",
			Date:    "unknown",
		},
	}
}

// LoadFromFile overlays settings from the optional YAML config file in the
// repository root. A missing file is not an error; a malformed one is.
func (c *Config) LoadFromFile(repoPath string) error {
	path := filepath.Join(repoPath, ConfigFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.NewConfigError("config file", path,
			errors.Wrap(errors.ErrInvalidConfiguration, err.Error()))
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return errors.NewConfigError("config file", path,
			errors.Wrap(errors.ErrInvalidConfiguration, err.Error()))
	}
	return nil
}

// LoadFromEnvironment updates config from environment variables
func (c *Config) LoadFromEnvironment() {
	c.NotebookDir = getEnvString("NBVERSION_NOTEBOOK_DIR", c.NotebookDir)
	c.Remote = getEnvString("NBVERSION_REMOTE", c.Remote)
	c.BranchPrefix = getEnvString("NBVERSION_BRANCH_PREFIX", c.BranchPrefix)
	c.TagPrefix = getEnvString("NBVERSION_TAG_PREFIX", c.TagPrefix)
	c.DefaultDescription = getEnvString("NBVERSION_DEFAULT_DESCRIPTION", c.DefaultDescription)
	c.Verbose = getEnvBool("NBVERSION_VERBOSE", c.Verbose)
	c.NonInteractive = getEnvBool("NBVERSION_NON_INTERACTIVE", c.NonInteractive)
	c.Debug = getEnvBool("NBVERSION_DEBUG", c.Debug)
	c.LogFile = getEnvString("NBVERSION_LOG_FILE", c.LogFile)
	c.RepoPath = getEnvString("NBVERSION_REPO_PATH", c.RepoPath)
}

// Finalize validates and finalizes the configuration
func (c *Config) Finalize() error {
	if c.RepoPath == "" {
		var err error
		c.RepoPath, err = os.Getwd()
		if err != nil {
			return errors.NewConfigError("repoPath", "", errors.Wrap(errors.ErrInvalidConfiguration, fmt.Sprintf("failed to get current directory: %v", err)))
		}
	}

	absRepoPath, err := filepath.Abs(c.RepoPath)
	if err != nil {
		return errors.NewConfigError("repoPath", c.RepoPath, errors.Wrap(errors.ErrInvalidConfiguration, fmt.Sprintf("failed to resolve absolute path: %v", err)))
	}
	c.RepoPath = absRepoPath

	if c.NotebookDir == "" {
		return errors.NewConfigError("notebookDir", "", errors.Wrap(errors.ErrInvalidConfiguration, "notebook directory must not be empty"))
	}
	if filepath.IsAbs(c.NotebookDir) {
		return errors.NewConfigError("notebookDir", c.NotebookDir, errors.Wrap(errors.ErrInvalidConfiguration, "notebook directory must be relative to the repository"))
	}

	if c.Remote == "" {
		c.Remote = DefaultRemote
	}
	if c.DefaultDescription == "" {
		c.DefaultDescription = DefaultDescription
	}

	if c.LogFile == "" {
		// Follow XDG Base Directory Specification
		logDir := os.Getenv("XDG_DATA_HOME")
		if logDir == "" {
			// Default XDG data home if not set
			homeDir, err := os.UserHomeDir()
			if err == nil {
				logDir = filepath.Join(homeDir, ".local", "share")
			} else {
				// Fallback to the temp directory if home dir can't be determined
				logDir = os.TempDir()
			}
		}

		// Create a unique identifier for the repository
		repoHash := fmt.Sprintf("%x", sha256OfString(c.RepoPath)[:8])

		// Final log directory and file
		nbversionLogDir := filepath.Join(logDir, "nbversion", "logs")
		c.LogFile = filepath.Join(nbversionLogDir, fmt.Sprintf("nbversion-%s.log", repoHash))
	}

	return nil
}

// NotebookPath returns the absolute path of the notebook directory.
func (c *Config) NotebookPath() string {
	return filepath.Join(c.RepoPath, c.NotebookDir)
}

// BranchFor returns the branch name for a version label.
func (c *Config) BranchFor(label string) string {
	return c.BranchPrefix + label
}

// TagFor returns the tag name for a version label.
func (c *Config) TagFor(label string) string {
	return c.TagPrefix + label
}

// getEnvString returns an environment variable string or a default value
func getEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvBool returns an environment variable as bool or a default value
func getEnvBool(key string, defaultValue bool) bool {
	if valueStr, exists := os.LookupEnv(key); exists {
		valueLower := strings.ToLower(valueStr)
		if valueLower == "true" || valueLower == "1" || valueLower == "yes" {
			return true
		}
		if valueLower == "false" || valueLower == "0" || valueLower == "no" {
			return false
		}
		// For any other value, fall back to default
	}
	return defaultValue
}

// sha256OfString returns the SHA256 hash of a string
func sha256OfString(input string) []byte {
	hash := sha256.Sum256([]byte(input))
	return hash[:]
}
