package dispatching

import (
	"errors"
	"fmt"
)

var (
	// ErrNoErrorHandler is returned by Build when no error handler was set.
	ErrNoErrorHandler = errors.New("no error handler registered")

	// ErrDuplicateErrorHandler is returned by Build when ErrorHandler was
	// called more than once.
	ErrDuplicateErrorHandler = errors.New("error handler registered more than once")

	// ErrNilChain is reported for a nil chain passed to Handle.
	ErrNilChain = errors.New("nil chain")

	// ErrNilAction is reported for a chain built with a nil action.
	ErrNilAction = errors.New("nil action")

	// ErrNilGuard is reported for a nil guard or narrowing function.
	ErrNilGuard = errors.New("nil guard")

	// ErrNoBot is returned by Reply when the dispatcher has no bot.
	ErrNoBot = errors.New("no bot in context")
)

// ActionError is what the error handler receives when an action fails.
type ActionError struct {
	// Chain is the label of the chain whose action failed.
	Chain string

	// UpdateID identifies the update being dispatched.
	UpdateID int64

	// Fallback is true when the failing action was the chain's OrElse.
	Fallback bool

	Err error
}

func (e *ActionError) Error() string {
	action := "action"
	if e.Fallback {
		action = "fallback"
	}
	return fmt.Sprintf("%s %s failed for update %d: %v", e.Chain, action, e.UpdateID, e.Err)
}

func (e *ActionError) Unwrap() error { return e.Err }

// ChainError reports a chain that was misconfigured at construction time.
type ChainError struct {
	Index int
	Chain string
	Err   error
}

func (e *ChainError) Error() string {
	if e.Chain != "" {
		return fmt.Sprintf("chain %d (%s): %v", e.Index, e.Chain, e.Err)
	}
	return fmt.Sprintf("chain %d: %v", e.Index, e.Err)
}

func (e *ChainError) Unwrap() error { return e.Err }
