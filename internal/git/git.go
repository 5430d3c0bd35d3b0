package git

import (
	"os/exec"
	"strings"

	"github.com/notebook-tools/nbversion/internal/common"
	"github.com/notebook-tools/nbversion/internal/errors"
)

// Client runs git operations against a single working tree. It treats git
// strictly as a black-box command executor: no output is parsed beyond
// existence checks and porcelain-status emptiness.
type Client struct {
	repoPath string
	executor CommandExecutor
	logger   common.Logger
}

// NewClient creates a Client with the default executor
func NewClient(repoPath string, logger common.Logger) *Client {
	return NewClientWithExecutor(repoPath, logger, NewExecExecutor())
}

// NewClientWithExecutor creates a Client with a custom executor
func NewClientWithExecutor(repoPath string, logger common.Logger, executor CommandExecutor) *Client {
	return &Client{
		repoPath: repoPath,
		executor: executor,
		logger:   logger,
	}
}

// IsRepository checks if the given path is a git repository
func IsRepository(path string) bool {
	cmd := exec.Command("git", "-C", path, "rev-parse", "--is-inside-work-tree")
	executor := NewExecExecutor()
	return executor.Execute(cmd) == nil
}

// run executes a git command in the repository directory.
func (c *Client) run(args ...string) error {
	baseArgs := []string{"-C", c.repoPath}
	cmd := exec.Command("git", append(baseArgs, args...)...)
	cmd.Dir = c.repoPath
	return c.executor.Execute(cmd)
}

// runWithOutput executes a git command and returns its output.
func (c *Client) runWithOutput(args ...string) (string, error) {
	baseArgs := []string{"-C", c.repoPath}
	cmd := exec.Command("git", append(baseArgs, args...)...)
	cmd.Dir = c.repoPath
	return c.executor.ExecuteWithOutput(cmd)
}

// CurrentBranch returns the name of the current git branch.
func (c *Client) CurrentBranch() (string, error) {
	output, err := c.runWithOutput("branch", "--show-current")
	if err != nil {
		return "unknown", err
	}
	return strings.TrimSpace(output), nil
}

// HasChanges returns true if the working tree contains changes that have
// not been committed yet. This is the diff-emptiness check used before
// committing.
func (c *Client) HasChanges() (bool, error) {
	output, err := c.runWithOutput("status", "--porcelain")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(output) != "", nil
}

// BranchExists checks if a local branch with the given name exists.
func (c *Client) BranchExists(branchName string) (bool, error) {
	_, err := c.runWithOutput("show-ref", "--verify", "--quiet", "refs/heads/"+branchName)
	if err != nil {
		// Command returns non-zero if branch doesn't exist
		return false, nil
	}
	return true, nil
}

// TagExists checks if a tag with the given name exists.
func (c *Client) TagExists(tagName string) (bool, error) {
	_, err := c.runWithOutput("show-ref", "--verify", "--quiet", "refs/tags/"+tagName)
	if err != nil {
		return false, nil
	}
	return true, nil
}

// CreateBranch creates and checks out a new branch.
func (c *Client) CreateBranch(branchName string) error {
	if err := c.run("checkout", "-b", branchName); err != nil {
		return errors.NewGitError("checkout", []string{"-b", branchName}, err, "failed to create new branch")
	}
	return nil
}

// Checkout switches to an existing branch.
func (c *Client) Checkout(branchName string) error {
	return c.run("checkout", branchName)
}

// DeleteBranch force-deletes a local branch. Deleting a branch that does
// not exist is not an error.
func (c *Client) DeleteBranch(branchName string) error {
	exists, _ := c.BranchExists(branchName)
	if !exists {
		return nil
	}
	return c.run("branch", "-D", branchName)
}

// Add stages the given paths.
func (c *Client) Add(paths ...string) error {
	return c.run(append([]string{"add"}, paths...)...)
}

// Commit creates a commit with the given message.
func (c *Client) Commit(message string) error {
	if err := c.run("commit", "-m", message); err != nil {
		return errors.NewGitError("commit", []string{"-m", message}, err, "")
	}
	return nil
}

// Tag creates a lightweight tag.
func (c *Client) Tag(tagName string) error {
	return c.run("tag", tagName)
}

// AnnotatedTag creates an annotated tag with a message.
func (c *Client) AnnotatedTag(tagName, message string) error {
	return c.run("tag", "-a", tagName, "-m", message)
}

// DeleteTag deletes a local tag. Deleting a tag that does not exist is not
// an error.
func (c *Client) DeleteTag(tagName string) error {
	exists, _ := c.TagExists(tagName)
	if !exists {
		return nil
	}
	return c.run("tag", "-d", tagName)
}

// HasRemote reports whether the named remote is configured.
func (c *Client) HasRemote(remote string) bool {
	_, err := c.runWithOutput("remote", "get-url", remote)
	return err == nil
}

// Push pushes a ref to the remote, setting upstream on first push.
func (c *Client) Push(remote, ref string) error {
	if err := c.run("push", "-u", remote, ref); err != nil {
		return errors.NewGitError("push", []string{"-u", remote, ref}, err, "")
	}
	return nil
}

// PushTag pushes a single tag to the remote.
func (c *Client) PushTag(remote, tagName string) error {
	return c.run("push", remote, "refs/tags/"+tagName)
}

// PushDeleteBranch deletes a branch on the remote. Failures are returned
// as-is; "not found" handling is the caller's concern during rollback.
func (c *Client) PushDeleteBranch(remote, branchName string) error {
	return c.run("push", remote, "--delete", branchName)
}

// PushDeleteTag deletes a tag on the remote.
func (c *Client) PushDeleteTag(remote, tagName string) error {
	return c.run("push", remote, "--delete", "refs/tags/"+tagName)
}

// ListBranches returns local branch names, one per line of for-each-ref
// output. Used only by the interactive fix menu.
func (c *Client) ListBranches() ([]string, error) {
	output, err := c.runWithOutput("for-each-ref", "--format=%(refname:short)", "refs/heads")
	if err != nil {
		return nil, err
	}
	return splitLines(output), nil
}

// ListTags returns local tag names.
func (c *Client) ListTags() ([]string, error) {
	output, err := c.runWithOutput("tag", "--list")
	if err != nil {
		return nil, err
	}
	return splitLines(output), nil
}

func splitLines(output string) []string {
	var lines []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
