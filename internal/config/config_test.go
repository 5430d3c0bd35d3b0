package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/notebook-tools/nbversion/internal/errors"
)

func TestNewDefaults(t *testing.T) {
	cfg := New()

	if cfg.NotebookDir != DefaultNotebookDir {
		t.Errorf("NotebookDir = %q, want %q", cfg.NotebookDir, DefaultNotebookDir)
	}
	if cfg.Remote != DefaultRemote {
		t.Errorf("Remote = %q, want %q", cfg.Remote, DefaultRemote)
	}
	if cfg.BranchPrefix != DefaultBranchPrefix {
		t.Errorf("BranchPrefix = %q, want %q", cfg.BranchPrefix, DefaultBranchPrefix)
	}
	if cfg.DefaultDescription != DefaultDescription {
		t.Errorf("DefaultDescription = %q, want %q", cfg.DefaultDescription, DefaultDescription)
	}
	if !cfg.Verbose {
		t.Error("Expected Verbose to default to true")
	}
	if cfg.NonInteractive {
		t.Error("Expected NonInteractive to default to false")
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := `
notebook_dir: experiments
remote: upstream
branch_prefix: nb/
tag_prefix: notebooks-
default_description: retrained
non_interactive: true
`
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg := New()
	if err := cfg.LoadFromFile(dir); err != nil {
		t.Fatalf("LoadFromFile returned error: %v", err)
	}

	if cfg.NotebookDir != "experiments" {
		t.Errorf("NotebookDir = %q, want experiments", cfg.NotebookDir)
	}
	if cfg.Remote != "upstream" {
		t.Errorf("Remote = %q, want upstream", cfg.Remote)
	}
	if cfg.BranchPrefix != "nb/" {
		t.Errorf("BranchPrefix = %q, want nb/", cfg.BranchPrefix)
	}
	if cfg.TagPrefix != "notebooks-" {
		t.Errorf("TagPrefix = %q, want notebooks-", cfg.TagPrefix)
	}
	if cfg.DefaultDescription != "retrained" {
		t.Errorf("DefaultDescription = %q, want retrained", cfg.DefaultDescription)
	}
	if !cfg.NonInteractive {
		t.Error("Expected NonInteractive to be true")
	}
}

func TestLoadFromFileMissingIsNoOp(t *testing.T) {
	cfg := New()
	if err := cfg.LoadFromFile(t.TempDir()); err != nil {
		t.Errorf("Expected missing config file to be ignored, got %v", err)
	}
	if cfg.NotebookDir != DefaultNotebookDir {
		t.Errorf("Defaults changed unexpectedly: NotebookDir = %q", cfg.NotebookDir)
	}
}

func TestLoadFromFileMalformed(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("notebook_dir: [unclosed"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg := New()
	err := cfg.LoadFromFile(dir)
	if err == nil {
		t.Fatal("Expected error for malformed config file")
	}
	if !errors.Is(err, errors.ErrInvalidConfiguration) {
		t.Errorf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("NBVERSION_NOTEBOOK_DIR", "nb")
	t.Setenv("NBVERSION_REMOTE", "backup")
	t.Setenv("NBVERSION_NON_INTERACTIVE", "yes")
	t.Setenv("NBVERSION_VERBOSE", "0")

	cfg := New()
	cfg.LoadFromEnvironment()

	if cfg.NotebookDir != "nb" {
		t.Errorf("NotebookDir = %q, want nb", cfg.NotebookDir)
	}
	if cfg.Remote != "backup" {
		t.Errorf("Remote = %q, want backup", cfg.Remote)
	}
	if !cfg.NonInteractive {
		t.Error("Expected NonInteractive from env")
	}
	if cfg.Verbose {
		t.Error("Expected Verbose disabled from env")
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("remote: upstream\n"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	t.Setenv("NBVERSION_REMOTE", "mirror")

	cfg := New()
	if err := cfg.LoadFromFile(dir); err != nil {
		t.Fatalf("LoadFromFile returned error: %v", err)
	}
	cfg.LoadFromEnvironment()

	if cfg.Remote != "mirror" {
		t.Errorf("Remote = %q, want env value mirror", cfg.Remote)
	}
}

func TestFinalize(t *testing.T) {
	dir := t.TempDir()

	cfg := New()
	cfg.RepoPath = dir
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize returned error: %v", err)
	}

	if !filepath.IsAbs(cfg.RepoPath) {
		t.Errorf("Expected absolute repo path, got %q", cfg.RepoPath)
	}
	if cfg.LogFile == "" {
		t.Error("Expected a default log file path")
	}
	if cfg.NotebookPath() != filepath.Join(cfg.RepoPath, DefaultNotebookDir) {
		t.Errorf("NotebookPath = %q", cfg.NotebookPath())
	}
}

func TestFinalizeRejectsAbsoluteNotebookDir(t *testing.T) {
	cfg := New()
	cfg.RepoPath = t.TempDir()
	cfg.NotebookDir = "/etc/notebooks"

	err := cfg.Finalize()
	if err == nil {
		t.Fatal("Expected error for absolute notebook dir")
	}
	if !errors.Is(err, errors.ErrInvalidConfiguration) {
		t.Errorf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestFinalizeRejectsEmptyNotebookDir(t *testing.T) {
	cfg := New()
	cfg.RepoPath = t.TempDir()
	cfg.NotebookDir = ""

	if err := cfg.Finalize(); err == nil {
		t.Error("Expected error for empty notebook dir")
	}
}

func TestBranchAndTagNames(t *testing.T) {
	cfg := New()
	if got := cfg.BranchFor("v3"); got != "notebook/v3" {
		t.Errorf("BranchFor = %q, want notebook/v3", got)
	}
	if got := cfg.TagFor("v3"); got != "v3" {
		t.Errorf("TagFor = %q, want v3", got)
	}

	cfg.TagPrefix = "nb-"
	if got := cfg.TagFor("v3"); got != "nb-v3" {
		t.Errorf("TagFor with prefix = %q, want nb-v3", got)
	}
}
