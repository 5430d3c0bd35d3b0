package workflow

// Choice is the operator's decision at the uniform recovery point.
type Choice int

const (
	// ChoiceRetry re-runs the failed step.
	ChoiceRetry Choice = iota

	// ChoiceSkip abandons the failed step and moves to the next one.
	ChoiceSkip

	// ChoiceRollback unwinds everything created for the label and exits
	// gracefully.
	ChoiceRollback

	// ChoiceContinue ignores the failure and moves on.
	ChoiceContinue
)

// recoveryOptions is the fixed menu every recoverable failure presents.
// Every externally-facing step routes through the same four choices.
var recoveryOptions = []string{
	"Retry the step",
	"Skip this step",
	"Roll back this version and exit",
	"Continue anyway",
}

// runStep executes fn, routing any failure through the recovery decision
// point. It returns done=false only when the operator chose rollback, in
// which case the rollback has already been performed. Steps are never
// retried automatically; every retry is an explicit operator choice.
func (w *Workflow) runStep(name, label string, fn func() error) (done bool, err error) {
	for {
		stepErr := fn()
		if stepErr == nil {
			return true, nil
		}

		w.logger.Error("Step %q failed: %v", name, stepErr)

		// Non-interactive runs cannot ask; default to rollback so a failed
		// unattended run never leaves half-published state behind.
		choice := Choice(w.interactor.PromptChoice(
			"What should happen now?", recoveryOptions, int(ChoiceRollback)))

		switch choice {
		case ChoiceRetry:
			w.logger.InfoToUser("Retrying %s", name)
			continue
		case ChoiceSkip:
			w.logger.WarningToUser("Skipping %s", name)
			return true, nil
		case ChoiceRollback:
			w.logger.WarningToUser("Rolling back version %s", label)
			w.rollbackBestEffort(label)
			return false, nil
		case ChoiceContinue:
			w.logger.WarningToUser("Continuing despite failure in %s", name)
			return true, nil
		default:
			return false, stepErr
		}
	}
}
