package git

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/notebook-tools/nbversion/internal/common"
)

// UserInteractor defines an interface for interacting with the user
type UserInteractor interface {
	// PromptYesNo asks the user a yes/no question and returns their response
	PromptYesNo(question string) bool

	// PromptLine asks the user for a single line of free text; the fallback
	// is returned on empty input or read failure
	PromptLine(question, fallback string) string

	// PromptChoice presents a numbered menu and returns the chosen index.
	// The fallback index is returned on invalid or failed input.
	PromptChoice(question string, options []string, fallback int) int
}

// DefaultInteractor is the standard implementation of UserInteractor
// that reads from stdin and writes to stdout
type DefaultInteractor struct {
	Reader io.Reader
	Logger common.Logger

	reader *bufio.Reader
}

// NewDefaultInteractor creates a new DefaultInteractor
func NewDefaultInteractor(logger common.Logger) *DefaultInteractor {
	return &DefaultInteractor{
		Reader: os.Stdin,
		Logger: logger,
	}
}

func (i *DefaultInteractor) readLine() (string, error) {
	if i.reader == nil {
		i.reader = bufio.NewReader(i.Reader)
	}
	line, err := i.reader.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// PromptYesNo asks the user a yes/no question and returns their response
func (i *DefaultInteractor) PromptYesNo(question string) bool {
	i.Logger.StatusMessage("%s (y/n): ", question)

	answer, err := i.readLine()
	if err != nil {
		// On error, default to 'no'
		return false
	}
	return strings.HasPrefix(strings.ToLower(answer), "y")
}

// PromptLine asks the user for one line of text
func (i *DefaultInteractor) PromptLine(question, fallback string) string {
	i.Logger.StatusMessage("%s [%s]: ", question, fallback)

	answer, err := i.readLine()
	if err != nil || answer == "" {
		return fallback
	}
	return answer
}

// PromptChoice presents a numbered menu and returns the chosen zero-based index
func (i *DefaultInteractor) PromptChoice(question string, options []string, fallback int) int {
	i.Logger.StatusMessage("%s", question)
	for n, opt := range options {
		i.Logger.StatusMessage("  %d) %s", n+1, opt)
	}
	i.Logger.StatusMessage("Choice [1-%d]: ", len(options))

	answer, err := i.readLine()
	if err != nil {
		return fallback
	}
	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > len(options) {
		return fallback
	}
	return n - 1
}

// NonInteractiveInteractor always returns default values without prompting
type NonInteractiveInteractor struct{}

// NewNonInteractiveInteractor creates a new NonInteractiveInteractor
func NewNonInteractiveInteractor() *NonInteractiveInteractor {
	return &NonInteractiveInteractor{}
}

// PromptYesNo always returns false without prompting
func (i *NonInteractiveInteractor) PromptYesNo(question string) bool {
	return false
}

// PromptLine always returns the fallback without prompting
func (i *NonInteractiveInteractor) PromptLine(question, fallback string) string {
	return fallback
}

// PromptChoice always returns the fallback without prompting
func (i *NonInteractiveInteractor) PromptChoice(question string, options []string, fallback int) int {
	return fallback
}
