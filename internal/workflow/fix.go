package workflow

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/notebook-tools/nbversion/internal/pattern"
)

var fixMenu = []string{
	"Show versioned branches, tags, and notebooks",
	"Delete a local branch",
	"Delete a local tag",
	"Delete a remote branch",
	"Delete a remote tag",
	"Delete a notebook file",
	"Roll back a version label",
	"Quit",
}

// Fix runs the interactive manual-recovery menu. Every action is
// best-effort and independent; quitting is always the last menu entry.
func (w *Workflow) Fix() error {
	if w.cfg.NonInteractive {
		return errNotInteractive
	}

	w.logger.StatusMessage("🔧 Manual recovery")

	for {
		quit := len(fixMenu) - 1
		switch w.interactor.PromptChoice("Pick an action:", fixMenu, quit) {
		case 0:
			w.showState()
		case 1:
			name := w.interactor.PromptLine("Branch to delete", "")
			if name == "" {
				continue
			}
			if err := w.git.DeleteBranch(name); err != nil {
				w.logger.WarningToUser("Failed to delete branch %s: %v", name, err)
			} else {
				w.logger.Success("Deleted branch %s (if it existed)", name)
			}
		case 2:
			name := w.interactor.PromptLine("Tag to delete", "")
			if name == "" {
				continue
			}
			if err := w.git.DeleteTag(name); err != nil {
				w.logger.WarningToUser("Failed to delete tag %s: %v", name, err)
			} else {
				w.logger.Success("Deleted tag %s (if it existed)", name)
			}
		case 3:
			name := w.interactor.PromptLine("Remote branch to delete", "")
			if name == "" {
				continue
			}
			if err := w.git.PushDeleteBranch(w.cfg.Remote, name); err != nil {
				w.logger.WarningToUser("Failed to delete remote branch %s: %v", name, err)
			} else {
				w.logger.Success("Deleted remote branch %s", name)
			}
		case 4:
			name := w.interactor.PromptLine("Remote tag to delete", "")
			if name == "" {
				continue
			}
			if err := w.git.PushDeleteTag(w.cfg.Remote, name); err != nil {
				w.logger.WarningToUser("Failed to delete remote tag %s: %v", name, err)
			} else {
				w.logger.Success("Deleted remote tag %s", name)
			}
		case 5:
			name := w.interactor.PromptLine("Notebook file to delete", "")
			if name == "" {
				continue
			}
			path := filepath.Join(w.cfg.NotebookPath(), filepath.Base(name))
			if !w.interactor.PromptYesNo("Delete " + path + "?") {
				continue
			}
			if err := os.Remove(path); err != nil {
				w.logger.WarningToUser("Failed to delete %s: %v", path, err)
			} else {
				w.logger.Success("Deleted %s", path)
			}
		case 6:
			label := w.interactor.PromptLine("Version label to roll back", "")
			if label == "" {
				continue
			}
			if err := w.Rollback(label); err != nil {
				w.logger.WarningToUser("Rollback failed: %v", err)
			}
		default:
			w.logger.InfoToUser("Done.")
			return nil
		}
	}
}

// showState lists the versioned artifacts the fix menu can act on.
func (w *Workflow) showState() {
	if branches, err := w.git.ListBranches(); err == nil {
		var versioned []string
		for _, b := range branches {
			if strings.HasPrefix(b, w.cfg.BranchPrefix) {
				versioned = append(versioned, b)
			}
		}
		w.logger.StatusMessage("Branches: %s", strings.Join(versioned, ", "))
	}

	if tags, err := w.git.ListTags(); err == nil {
		w.logger.StatusMessage("Tags: %s", strings.Join(tags, ", "))
	}

	entries, err := os.ReadDir(w.cfg.NotebookPath())
	if err != nil {
		return
	}
	var notebooks []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if tag, _ := pattern.Classify(e.Name()); tag != pattern.ConvUnmatched {
			notebooks = append(notebooks, e.Name())
		}
	}
	w.logger.StatusMessage("Notebooks: %s", strings.Join(notebooks, ", "))
}
