package wizard

import "errors"

// Domain errors for the order wizard.
var (
	// ErrDraftConflict is returned by LoadDraft when the caller asked for
	// a specific customer but the saved draft belongs to a different one.
	// The draft is returned alongside so the caller can offer a choice
	// between resuming it and starting fresh.
	ErrDraftConflict = errors.New("saved draft belongs to a different customer")

	ErrInvalidStep = errors.New("invalid wizard step")
)
