//go:build integration
// +build integration

package integration

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// setupTestRepo creates a git repository with one committed notebook at
// version 1.
func setupTestRepo(t *testing.T) string {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "nbversion-integration-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	run := func(args ...string) {
		t.Helper()
		cmd := exec.Command("git", append([]string{"-C", tempDir}, args...)...)
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("git %v failed: %v\n%s", args, err, out)
		}
	}

	if out, err := exec.Command("git", "init", tempDir).CombinedOutput(); err != nil {
		t.Fatalf("Failed to initialize git repo: %v\n%s", err, out)
	}
	run("config", "user.email", "test@example.com")
	run("config", "user.name", "Test User")

	notebookDir := filepath.Join(tempDir, "notebooks")
	if err := os.MkdirAll(notebookDir, 0755); err != nil {
		t.Fatalf("Failed to create notebook dir: %v", err)
	}
	doc := `{"cells": [], "metadata": {}, "nbformat": 4, "nbformat_minor": 5}`
	if err := os.WriteFile(filepath.Join(notebookDir, "Model(v1).ipynb"), []byte(doc), 0644); err != nil {
		t.Fatalf("Failed to write notebook: %v", err)
	}

	run("add", ".")
	run("commit", "-m", "Initial commit")

	return tempDir
}

// buildNbversion compiles the binary into a temp dir.
func buildNbversion(t *testing.T) string {
	t.Helper()

	binPath := filepath.Join(t.TempDir(), "nbversion")
	cmd := exec.Command("go", "build", "-o", binPath, "github.com/notebook-tools/nbversion/cmd/nbversion")
	cmd.Dir = "../.."
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build nbversion: %v\n%s", err, out)
	}
	return binPath
}

func gitOutput(t *testing.T, repoPath string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", append([]string{"-C", repoPath}, args...)...)
	out, err := cmd.Output()
	if err != nil {
		t.Fatalf("git %v failed: %v", args, err)
	}
	return strings.TrimSpace(string(out))
}

// TestVersionFlow saves a new version end to end and checks the branch,
// tag, commit, and notebook file it leaves behind.
func TestVersionFlow(t *testing.T) {
	if os.Getenv("NBVERSION_INTEGRATION_TESTS") != "1" {
		t.Skip("Skipping integration test. Set NBVERSION_INTEGRATION_TESTS=1 to run")
	}

	repoPath := setupTestRepo(t)
	bin := buildNbversion(t)

	cmd := exec.Command(bin, "--repo", repoPath, "--non-interactive", "v2", "tuned dropout")
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("nbversion failed: %v\n%s", err, out)
	}

	if _, err := os.Stat(filepath.Join(repoPath, "notebooks", "Model(v2).ipynb")); err != nil {
		t.Errorf("Expected Model(v2).ipynb to exist: %v", err)
	}

	if branch := gitOutput(t, repoPath, "rev-parse", "--abbrev-ref", "HEAD"); branch != "notebook/v2" {
		t.Errorf("HEAD = %q, want notebook/v2", branch)
	}
	if msg := gitOutput(t, repoPath, "log", "-1", "--pretty=%s"); msg != "Version v2: tuned dropout" {
		t.Errorf("Commit subject = %q", msg)
	}
	if tags := gitOutput(t, repoPath, "tag", "--list", "v2"); tags != "v2" {
		t.Errorf("Expected tag v2, got %q", tags)
	}
}

// TestRollbackFlow saves a version and then rolls it back.
func TestRollbackFlow(t *testing.T) {
	if os.Getenv("NBVERSION_INTEGRATION_TESTS") != "1" {
		t.Skip("Skipping integration test. Set NBVERSION_INTEGRATION_TESTS=1 to run")
	}

	repoPath := setupTestRepo(t)
	bin := buildNbversion(t)

	cmd := exec.Command(bin, "--repo", repoPath, "--non-interactive", "v2", "tuned dropout")
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("nbversion failed: %v\n%s", err, out)
	}

	// Move off the version branch so the rollback can delete it, then
	// confirm the prompt through stdin.
	if out, err := exec.Command("git", "-C", repoPath, "checkout", "-").CombinedOutput(); err != nil {
		t.Fatalf("git checkout - failed: %v\n%s", err, out)
	}

	rollback := exec.Command(bin, "--repo", repoPath, "--rollback", "v2")
	rollback.Stdin = strings.NewReader("y\n")
	if out, err := rollback.CombinedOutput(); err != nil {
		t.Fatalf("nbversion --rollback failed: %v\n%s", err, out)
	}

	if _, err := os.Stat(filepath.Join(repoPath, "notebooks", "Model(v2).ipynb")); !os.IsNotExist(err) {
		t.Error("Expected Model(v2).ipynb to be deleted")
	}
	if tags := gitOutput(t, repoPath, "tag", "--list", "v2"); tags != "" {
		t.Errorf("Expected tag v2 to be deleted, got %q", tags)
	}
	if branches := gitOutput(t, repoPath, "branch", "--list", "notebook/v2"); branches != "" {
		t.Errorf("Expected branch notebook/v2 to be deleted, got %q", branches)
	}
}
