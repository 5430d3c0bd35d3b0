package workflow

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/notebook-tools/nbversion/internal/common"
	"github.com/notebook-tools/nbversion/internal/config"
	"github.com/notebook-tools/nbversion/internal/errors"
	"github.com/notebook-tools/nbversion/internal/git"
	"github.com/notebook-tools/nbversion/internal/notebook"
	"github.com/notebook-tools/nbversion/internal/pattern"
)

// GitOps is the subset of git operations the workflow drives. *git.Client
// implements it; tests substitute a recorder.
type GitOps interface {
	CurrentBranch() (string, error)
	HasChanges() (bool, error)
	BranchExists(branchName string) (bool, error)
	TagExists(tagName string) (bool, error)
	CreateBranch(branchName string) error
	Checkout(branchName string) error
	DeleteBranch(branchName string) error
	Add(paths ...string) error
	Commit(message string) error
	AnnotatedTag(tagName, message string) error
	DeleteTag(tagName string) error
	HasRemote(remote string) bool
	Push(remote, ref string) error
	PushTag(remote, tagName string) error
	PushDeleteBranch(remote, branchName string) error
	PushDeleteTag(remote, tagName string) error
	ListBranches() ([]string, error)
	ListTags() ([]string, error)
}

// Workflow sequences one versioning run: detect, compose, copy, banner,
// then branch/commit/tag/push. It owns no state between runs; everything is
// re-read from the repository on each invocation.
type Workflow struct {
	cfg        *config.Config
	logger     common.Logger
	git        GitOps
	interactor git.UserInteractor
}

// New creates a Workflow with default git and interaction dependencies.
func New(cfg *config.Config, logger common.Logger) *Workflow {
	var interactor git.UserInteractor
	if cfg.NonInteractive {
		interactor = git.NewNonInteractiveInteractor()
	} else {
		interactor = git.NewDefaultInteractor(logger)
	}
	return NewWithDeps(cfg, logger, git.NewClient(cfg.RepoPath, logger), interactor)
}

// NewWithDeps creates a Workflow with custom dependencies.
func NewWithDeps(cfg *config.Config, logger common.Logger, gitOps GitOps, interactor git.UserInteractor) *Workflow {
	return &Workflow{
		cfg:        cfg,
		logger:     logger,
		git:        gitOps,
		interactor: interactor,
	}
}

// errAbort marks an operator-chosen stop. It maps to a graceful exit, not a
// failure.
var errAbort = errors.New("aborted by operator")

// Run performs one versioning pass for the given label and description.
// A nil return covers both full success and graceful operator cancels;
// errors are reserved for unrecoverable failures.
func (w *Workflow) Run(label, description string) error {
	label, err := pattern.NormalizeLabel(label)
	if err != nil {
		return err
	}

	if err := w.ensureNotebookDir(); err != nil {
		if errors.Is(err, errAbort) {
			w.logger.InfoToUser("Cancelled.")
			return nil
		}
		return err
	}

	state, err := pattern.DetectDir(w.cfg.NotebookPath())
	if err != nil {
		return errors.Wrap(err, "failed to scan notebook directory")
	}

	if state.Found {
		w.logger.InfoToUser("Latest notebook: %s (version %d, %s convention)",
			state.Filename, state.Version, state.Convention)
	} else {
		// Degrade to the default naming pattern rather than failing.
		w.logger.WarningToUser("%v - using default naming", errors.ErrNoSourceNotebook)
	}

	if description == "" {
		description = w.interactor.PromptLine("Short description of this version", w.cfg.DefaultDescription)
	}

	newName, err := pattern.Compose(state, label, description)
	if err != nil {
		if errors.Is(err, errors.ErrNameUnchanged) {
			w.logger.InfoToUser("Nothing to do: %s is already the latest notebook", state.Filename)
			return nil
		}
		return err
	}

	newPath := filepath.Join(w.cfg.NotebookPath(), newName)
	if err := w.copyNotebook(state, newPath); err != nil {
		return err
	}
	w.logger.Success("Created %s", newName)

	banner := notebook.NewBanner(label, description)
	if err := banner.PrependToFile(newPath); err != nil {
		if errors.Is(err, errors.ErrDocumentParse) {
			// Recoverable: leave the copy as-is and move on.
			w.logger.WarningToUser("Skipping version banner: %v", err)
		} else {
			return err
		}
	} else {
		w.logger.Info("Inserted version banner into %s", newName)
	}

	w.bannerScripts(banner)

	return w.publish(label, description, newPath)
}

// ensureNotebookDir makes sure the notebook directory exists, offering to
// create it when missing.
func (w *Workflow) ensureNotebookDir() error {
	dir := w.cfg.NotebookPath()
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.Wrapf(errors.ErrNotebookDirMissing, "%s exists but is not a directory", dir)
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to inspect notebook directory")
	}

	w.logger.WarningToUser("Notebook directory %s does not exist.", dir)
	if !w.interactor.PromptYesNo("Create it and continue?") {
		return errors.Wrap(errAbort, errors.ErrNotebookDirMissing.Error())
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "failed to create notebook directory")
	}
	w.logger.Success("Created %s", dir)
	return nil
}

// emptyNotebook is the document written when there is no prior notebook to
// copy forward.
const emptyNotebook = `{"cells": [], "metadata": {}, "nbformat": 4, "nbformat_minor": 5}
`

// copyNotebook copies the detected source notebook to newPath, or writes a
// fresh skeleton when no source matched a convention.
func (w *Workflow) copyNotebook(state pattern.VersionState, newPath string) error {
	if !state.Found {
		if err := os.WriteFile(newPath, []byte(emptyNotebook), 0644); err != nil {
			return errors.Wrap(err, "failed to create notebook")
		}
		return nil
	}

	srcPath := filepath.Join(w.cfg.NotebookPath(), state.Filename)
	data, err := os.ReadFile(srcPath)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", srcPath)
	}

	info, err := os.Stat(srcPath)
	if err != nil {
		return errors.Wrapf(err, "failed to stat %s", srcPath)
	}

	if err := os.WriteFile(newPath, data, info.Mode().Perm()); err != nil {
		return errors.Wrapf(err, "failed to write %s", newPath)
	}
	return nil
}

// bannerScripts prepends the version banner to recognized script files in
// the repository root. Failures are reported and skipped; they never stop
// the run.
func (w *Workflow) bannerScripts(banner notebook.Banner) {
	scripts, err := notebook.FindScripts(w.cfg.RepoPath)
	if err != nil {
		w.logger.Warning("Failed to list scripts: %v", err)
		return
	}

	for _, name := range scripts {
		path := filepath.Join(w.cfg.RepoPath, name)
		if err := banner.PrependToScript(path); err != nil {
			w.logger.WarningToUser("Skipping script banner for %s: %v", name, err)
			continue
		}
		w.logger.Info("Inserted version banner into %s", name)
	}
}

// publish runs the git half of the workflow: branch, commit, tag, push.
// Each externally-facing step routes failures through the uniform recovery
// decision point.
func (w *Workflow) publish(label, description, newPath string) error {
	branch := w.cfg.BranchFor(label)
	tag := w.cfg.TagFor(label)

	if err := w.switchToBranch(branch, label); err != nil {
		if errors.Is(err, errAbort) {
			w.logger.InfoToUser("Cancelled.")
			return nil
		}
		return err
	}

	relPath, relErr := filepath.Rel(w.cfg.RepoPath, newPath)
	if relErr != nil {
		relPath = newPath
	}

	commitMsg := fmt.Sprintf("Version %s: %s", label, description)

	type step struct {
		name string
		fn   func() error
	}

	steps := []step{
		{"stage changes", func() error { return w.git.Add(".") }},
		{"commit " + relPath, func() error {
			hasChanges, err := w.git.HasChanges()
			if err != nil {
				return err
			}
			if !hasChanges {
				w.logger.InfoToUser("No changes to commit")
				return nil
			}
			return w.git.Commit(commitMsg)
		}},
		{"tag " + tag, func() error { return w.git.AnnotatedTag(tag, description) }},
	}

	if w.git.HasRemote(w.cfg.Remote) {
		steps = append(steps,
			step{"push branch " + branch, func() error { return w.git.Push(w.cfg.Remote, branch) }},
			step{"push tag " + tag, func() error { return w.git.PushTag(w.cfg.Remote, tag) }},
		)
	} else {
		w.logger.WarningToUser("Remote %q is not configured - skipping push", w.cfg.Remote)
	}

	for _, step := range steps {
		done, err := w.runStep(step.name, label, step.fn)
		if err != nil {
			return err
		}
		if !done {
			// Operator chose rollback-and-exit: graceful cancel.
			return nil
		}
	}

	w.logger.Success("Version %s published", label)
	return nil
}

// switchToBranch creates the version branch, or reuses it with the
// operator's consent when it already exists.
func (w *Workflow) switchToBranch(branch, label string) error {
	exists, err := w.git.BranchExists(branch)
	if err != nil {
		return err
	}

	if exists {
		w.logger.WarningToUser("%v: %s", errors.ErrBranchExists, branch)
		if !w.interactor.PromptYesNo("Reuse the existing branch?") {
			return errors.Wrapf(errors.ErrBranchExists, "branch %s", branch)
		}
		if err := w.git.Checkout(branch); err != nil {
			return err
		}
		w.logger.StatusMessage("🌿 Reusing branch: %s", branch)
		return nil
	}

	if err := w.git.CreateBranch(branch); err != nil {
		return errors.Wrapf(err, "failed to create branch %s for %s", branch, label)
	}
	w.logger.StatusMessage("🌿 Created and switched to branch: %s", branch)
	return nil
}
