package workflow

import (
	"os"
	"path/filepath"

	"github.com/notebook-tools/nbversion/internal/errors"
	"github.com/notebook-tools/nbversion/internal/pattern"
)

// Rollback reverses a prior versioning run for the given label: the local
// branch and tag, their remote counterparts, and the copied notebook
// file(s). Prompts for confirmation unless running non-interactively with
// force semantics from the recovery path.
func (w *Workflow) Rollback(label string) error {
	label, err := pattern.NormalizeLabel(label)
	if err != nil {
		return err
	}

	w.logger.WarningToUser("Rolling back version %s removes its branch, tag, and notebook file.", label)
	if !w.interactor.PromptYesNo("Proceed?") {
		w.logger.InfoToUser("Cancelled.")
		return nil
	}

	w.rollbackBestEffort(label)
	w.logger.Success("Rollback of %s finished", label)
	return nil
}

// rollbackBestEffort attempts every rollback action independently. A
// failure of one never blocks the others, and "not found" is tolerated
// silently so rolling back a version that was never created is idempotent.
func (w *Workflow) rollbackBestEffort(label string) {
	branch := w.cfg.BranchFor(label)
	tag := w.cfg.TagFor(label)

	// Move off the branch about to be deleted.
	if current, err := w.git.CurrentBranch(); err == nil && current == branch {
		if err := w.git.Checkout("-"); err != nil {
			w.logger.Warning("Failed to switch off %s before deleting it: %v", branch, err)
		}
	}

	if err := w.git.DeleteBranch(branch); err != nil {
		w.logger.WarningToUser("Failed to delete branch %s: %v", branch, err)
	} else {
		w.logger.InfoToUser("Deleted local branch %s (if it existed)", branch)
	}

	if err := w.git.DeleteTag(tag); err != nil {
		w.logger.WarningToUser("Failed to delete tag %s: %v", tag, err)
	} else {
		w.logger.InfoToUser("Deleted local tag %s (if it existed)", tag)
	}

	if w.git.HasRemote(w.cfg.Remote) {
		// Remote deletions fail when the ref never reached the remote;
		// that is exactly the idempotent case, so failures only warn.
		if err := w.git.PushDeleteBranch(w.cfg.Remote, branch); err != nil {
			w.logger.Warning("Remote branch %s not deleted: %v", branch, err)
		}
		if err := w.git.PushDeleteTag(w.cfg.Remote, tag); err != nil {
			w.logger.Warning("Remote tag %s not deleted: %v", tag, err)
		}
	}

	w.deleteNotebooks(label)
}

// deleteNotebooks removes notebook files whose detected version matches the
// label being rolled back.
func (w *Workflow) deleteNotebooks(label string) {
	version, err := pattern.LabelVersion(label)
	if err != nil {
		return
	}

	entries, err := os.ReadDir(w.cfg.NotebookPath())
	if err != nil {
		if !os.IsNotExist(err) {
			w.logger.Warning("Failed to list notebook directory: %v", err)
		}
		return
	}

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		tag, v := pattern.Classify(e.Name())
		if tag == pattern.ConvUnmatched || tag == pattern.ConvBareModel || v != version {
			continue
		}
		path := filepath.Join(w.cfg.NotebookPath(), e.Name())
		if err := os.Remove(path); err != nil {
			w.logger.WarningToUser("Failed to delete %s: %v", e.Name(), err)
			continue
		}
		w.logger.InfoToUser("Deleted %s", e.Name())
	}
}

// errNotInteractive is returned when an interactive-only command runs
// without a terminal.
var errNotInteractive = errors.Wrap(errors.ErrInvalidConfiguration, "interactive recovery requires a terminal")
