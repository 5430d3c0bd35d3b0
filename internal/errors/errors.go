package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors that can be used with errors.Is() for error type checking
var (
	// ErrNotGitRepository indicates the target path is not a git repository.
	// This is the only unconditionally fatal error in the workflow.
	ErrNotGitRepository = errors.New("not a git repository")

	// ErrGitOperationFailed indicates a git command returned an error
	ErrGitOperationFailed = errors.New("git operation failed")

	// ErrNotebookDirMissing indicates the notebooks directory does not exist
	ErrNotebookDirMissing = errors.New("notebook directory does not exist")

	// ErrNoSourceNotebook indicates no file in the notebook directory matched
	// any recognized version naming convention
	ErrNoSourceNotebook = errors.New("no versioned notebook found")

	// ErrDocumentParse indicates a notebook file could not be parsed as JSON
	ErrDocumentParse = errors.New("failed to parse notebook document")

	// ErrBranchExists indicates the branch for the requested version label
	// already exists
	ErrBranchExists = errors.New("branch already exists")

	// ErrNameUnchanged indicates composing the next notebook name produced
	// the source filename itself, making the copy a no-op
	ErrNameUnchanged = errors.New("composed filename matches source filename")

	// ErrInvalidConfiguration indicates an invalid or conflicting user configuration
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// New creates a new error with the given message.
// This is a convenience function that wraps errors.New.
func New(message string) error {
	return errors.New(message)
}

// Errorf creates a new formatted error.
// This is a convenience function that wraps fmt.Errorf.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// Wrap wraps an error with a message for better context.
func Wrap(err error, message string) error {
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted message for better context.
func Wrapf(err error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// Is reports whether target is in err's chain.
// This is a convenience function that wraps errors.Is.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience function that wraps errors.As.
func As(err error, target any) bool {
	return errors.As(err, target)
}

// GitError represents an error that occurred during a Git operation.
// It captures the command details, underlying error, and command output.
type GitError struct {
	Operation string
	Args      []string
	Err       error
	Output    string
}

// Error implements the error interface with a detailed, user-friendly error message.
func (e *GitError) Error() string {
	msg := fmt.Sprintf("git %s failed", e.Operation)
	if e.Output != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Output)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *GitError) Unwrap() error {
	return e.Err
}

// NewGitError creates a new GitError with the given parameters.
func NewGitError(operation string, args []string, err error, output string) *GitError {
	return &GitError{
		Operation: operation,
		Args:      args,
		Err:       err,
		Output:    output,
	}
}

// NotebookError represents an error that occurred while reading or editing a
// notebook document. It includes the file path and underlying error.
type NotebookError struct {
	Path string
	Err  error
}

// Error implements the error interface with details about the notebook file.
func (e *NotebookError) Error() string {
	return fmt.Sprintf("notebook error with file %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *NotebookError) Unwrap() error {
	return e.Err
}

// NewNotebookError creates a new NotebookError with the given parameters.
func NewNotebookError(path string, err error) *NotebookError {
	return &NotebookError{
		Path: path,
		Err:  err,
	}
}

// ConfigError represents an error in the application configuration.
// It includes the parameter name, its value if available, and the underlying error.
type ConfigError struct {
	Parameter string
	Value     interface{}
	Err       error
}

// Error implements the error interface with details about the invalid configuration.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("configuration error for %s = %v: %v", e.Parameter, e.Value, e.Err)
	}
	return fmt.Sprintf("configuration error for %s: %v", e.Parameter, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError with the given parameters.
func NewConfigError(parameter string, value interface{}, err error) *ConfigError {
	return &ConfigError{
		Parameter: parameter,
		Value:     value,
		Err:       err,
	}
}
