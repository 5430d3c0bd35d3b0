// Package git wraps the git command line for nbversion.
//
// The wrapper is intentionally thin: git is treated as a black-box command
// executor returning success or failure, and the only output ever inspected
// is ref-existence (show-ref) and porcelain-status emptiness. All failures
// wrap errors.ErrGitOperationFailed inside a GitError carrying the
// operation, arguments, and captured stderr.
//
// Two seams make the package testable without a git binary or a terminal:
// CommandExecutor abstracts subprocess execution, and UserInteractor
// abstracts prompting. NonInteractiveInteractor supplies safe defaults when
// no terminal is available.
package git
