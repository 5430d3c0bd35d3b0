package git

import (
	"bytes"
	"testing"

	"github.com/notebook-tools/nbversion/internal/logger"
)

func TestDefaultInteractorPromptYesNo(t *testing.T) {
	log := logger.New(false, "", false)

	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes", "yes\n", true},
		{"y", "y\n", true},
		{"uppercase Y", "Y\n", true},
		{"no", "no\n", false},
		{"empty", "\n", false},
		{"garbage", "maybe\n", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			interactor := &DefaultInteractor{
				Reader: bytes.NewBufferString(tc.input),
				Logger: log,
			}

			if got := interactor.PromptYesNo("Continue?"); got != tc.want {
				t.Errorf("PromptYesNo(%q) = %t, want %t", tc.input, got, tc.want)
			}
		})
	}
}

func TestDefaultInteractorPromptLine(t *testing.T) {
	log := logger.New(false, "", false)

	interactor := &DefaultInteractor{
		Reader: bytes.NewBufferString("tuned dropout\n"),
		Logger: log,
	}
	if got := interactor.PromptLine("Description", "updated"); got != "tuned dropout" {
		t.Errorf("PromptLine = %q, want %q", got, "tuned dropout")
	}

	interactor = &DefaultInteractor{
		Reader: bytes.NewBufferString("\n"),
		Logger: log,
	}
	if got := interactor.PromptLine("Description", "updated"); got != "updated" {
		t.Errorf("PromptLine with empty input = %q, want fallback", got)
	}
}

func TestDefaultInteractorPromptChoice(t *testing.T) {
	log := logger.New(false, "", false)
	options := []string{"retry", "skip", "rollback and exit", "continue anyway"}

	cases := []struct {
		name  string
		input string
		want  int
	}{
		{"first option", "1\n", 0},
		{"last option", "4\n", 3},
		{"out of range high", "5\n", 2},
		{"out of range low", "0\n", 2},
		{"not a number", "retry\n", 2},
		{"empty", "\n", 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			interactor := &DefaultInteractor{
				Reader: bytes.NewBufferString(tc.input),
				Logger: log,
			}

			if got := interactor.PromptChoice("Step failed. What now?", options, 2); got != tc.want {
				t.Errorf("PromptChoice(%q) = %d, want %d", tc.input, got, tc.want)
			}
		})
	}
}

func TestNonInteractiveInteractor(t *testing.T) {
	interactor := NewNonInteractiveInteractor()

	if interactor.PromptYesNo("Continue?") {
		t.Error("Expected PromptYesNo to return false without prompting")
	}
	if got := interactor.PromptLine("Description", "updated"); got != "updated" {
		t.Errorf("PromptLine = %q, want fallback", got)
	}
	if got := interactor.PromptChoice("What now?", []string{"a", "b"}, 1); got != 1 {
		t.Errorf("PromptChoice = %d, want fallback", got)
	}
}

func TestInteractorSequentialReads(t *testing.T) {
	log := logger.New(false, "", false)

	// One interactor instance must support several prompts over the same
	// reader, the way the workflow asks question after question.
	interactor := &DefaultInteractor{
		Reader: bytes.NewBufferString("y\nnew loss function\n2\n"),
		Logger: log,
	}

	if !interactor.PromptYesNo("Create directory?") {
		t.Error("Expected first prompt to read y")
	}
	if got := interactor.PromptLine("Description", "updated"); got != "new loss function" {
		t.Errorf("Second prompt = %q", got)
	}
	if got := interactor.PromptChoice("What now?", []string{"retry", "skip"}, 0); got != 1 {
		t.Errorf("Third prompt = %d, want 1", got)
	}
}
