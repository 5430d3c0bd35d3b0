// Package cli implements the nbversion command-line interface.
package cli

import (
	"fmt"
	"os/exec"

	"github.com/notebook-tools/nbversion/internal/common"
	"github.com/notebook-tools/nbversion/internal/config"
	"github.com/notebook-tools/nbversion/internal/errors"
	"github.com/notebook-tools/nbversion/internal/git"
	"github.com/notebook-tools/nbversion/internal/logger"
	"github.com/notebook-tools/nbversion/internal/workflow"
	"github.com/spf13/cobra"
)

// Runner drives a versioning session. *workflow.Workflow implements it;
// tests substitute a recorder.
type Runner interface {
	Run(label, description string) error
	Rollback(label string) error
	Fix() error
}

// Options holds the injectable dependencies of the command. Every field is
// optional; zero values fall back to the real implementations.
type Options struct {
	// NewRunner builds the workflow once configuration is resolved.
	NewRunner func(cfg *config.Config, log common.Logger) Runner

	// ExecLookPath locates the git executable.
	ExecLookPath func(file string) (string, error)

	// IsRepository reports whether a path is inside a git work tree.
	IsRepository func(path string) bool
}

func (o *Options) fill() {
	if o.NewRunner == nil {
		o.NewRunner = func(cfg *config.Config, log common.Logger) Runner {
			return workflow.New(cfg, log)
		}
	}
	if o.ExecLookPath == nil {
		o.ExecLookPath = exec.LookPath
	}
	if o.IsRepository == nil {
		o.IsRepository = git.IsRepository
	}
}

const longHelp = `nbversion saves a new version of the latest notebook in the repository.

It detects the newest versioned notebook in the notebook directory, copies
it under the next version's name (reusing the file's naming convention),
inserts a version banner cell, then creates a branch, commit, and annotated
tag for the version and pushes both when a remote is configured.

Examples:
  nbversion v3 "added dropout layer"   save version 3
  nbversion 4                          save version 4, prompt for description
  nbversion --rollback v3              undo version 3
  nbversion --fix                      interactive manual recovery`

// NewRootCmd builds the root command with the given build metadata and
// dependency seams.
func NewRootCmd(versionInfo config.VersionInfo, opts Options) *cobra.Command {
	opts.fill()

	var (
		repoPath       string
		notebookDir    string
		remote         string
		rollback       bool
		fix            bool
		nonInteractive bool
		quiet          bool
		debug          bool
		logFile        string
	)

	cmd := &cobra.Command{
		Use:           "nbversion <label> [<description>]",
		Short:         "Version notebooks alongside git branches and tags",
		Long:          longHelp,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", versionInfo.Version, versionInfo.Commit, versionInfo.Date),
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.New()
			cfg.VersionInfo = versionInfo
			cfg.RepoPath = repoPath

			// Layering: defaults, then config file, then environment, then
			// flags the operator actually set.
			if err := cfg.LoadFromFile(cfg.RepoPath); err != nil {
				return err
			}
			cfg.LoadFromEnvironment()
			if cmd.Flags().Changed("repo") {
				cfg.RepoPath = repoPath
			}
			if cmd.Flags().Changed("notebook-dir") {
				cfg.NotebookDir = notebookDir
			}
			if cmd.Flags().Changed("remote") {
				cfg.Remote = remote
			}
			if cmd.Flags().Changed("non-interactive") {
				cfg.NonInteractive = nonInteractive
			}
			if cmd.Flags().Changed("quiet") {
				cfg.Verbose = !quiet
			}
			if cmd.Flags().Changed("debug") {
				cfg.Debug = debug
			}
			if cmd.Flags().Changed("log-file") {
				cfg.LogFile = logFile
			}

			if err := cfg.Finalize(); err != nil {
				return err
			}

			if _, err := opts.ExecLookPath("git"); err != nil {
				return errors.Wrap(errors.ErrGitOperationFailed, "git executable not found in PATH")
			}
			if !opts.IsRepository(cfg.RepoPath) {
				return errors.Wrapf(errors.ErrNotGitRepository, "%s", cfg.RepoPath)
			}

			log := logger.New(cfg.Debug, cfg.LogFile, cfg.Verbose)
			defer func() { _ = log.Close() }()

			runner := opts.NewRunner(cfg, log)

			switch {
			case fix:
				if len(args) > 0 {
					return errors.Wrap(errors.ErrInvalidConfiguration, "--fix takes no arguments")
				}
				return runner.Fix()
			case rollback:
				if len(args) == 0 {
					return errors.Wrap(errors.ErrInvalidConfiguration, "--rollback requires a version label")
				}
				return runner.Rollback(args[0])
			default:
				if len(args) == 0 {
					return errors.Wrap(errors.ErrInvalidConfiguration, "a version label is required (e.g. nbversion v3)")
				}
				description := ""
				if len(args) == 2 {
					description = args[1]
				}
				return runner.Run(args[0], description)
			}
		},
	}

	cmd.Flags().StringVarP(&repoPath, "repo", "C", "", "Path to the git repository (default: current directory)")
	cmd.Flags().StringVarP(&notebookDir, "notebook-dir", "n", config.DefaultNotebookDir, "Notebook directory relative to the repository root")
	cmd.Flags().StringVarP(&remote, "remote", "r", config.DefaultRemote, "Git remote to push to")
	cmd.Flags().BoolVar(&rollback, "rollback", false, "Undo the given version: delete its branch, tag, and notebook file")
	cmd.Flags().BoolVar(&fix, "fix", false, "Open the interactive manual-recovery menu")
	cmd.Flags().BoolVar(&nonInteractive, "non-interactive", false, "Never prompt; failures roll back and prompts take defaults")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress informational output")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging to the log file")
	cmd.Flags().StringVar(&logFile, "log-file", "", "Debug log file path (default: per-repository file under the user cache dir)")

	return cmd
}

// Execute runs the root command and returns its error for main to map to an
// exit code.
func Execute(versionInfo config.VersionInfo) error {
	cmd := NewRootCmd(versionInfo, Options{})
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "❌ %v\n", err)
	}
	return err
}
