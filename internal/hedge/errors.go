package hedge

import (
	"errors"
	"fmt"
)

// Error taxonomy for composition calls. Every failure aborts the entire
// composition; the caller observes exactly one terminal error per call and
// must resubmit a corrected request. There is no retry inside the router.
var (
	// ErrValidation: zero reference/amount or otherwise malformed request.
	// Raised before any funds move.
	ErrValidation = errors.New("invalid request")

	// ErrState: a collaborator is in a state that forbids the operation
	// (protection not Active, tranche closed, redundant pause transition).
	// Raised after a read-only check, before further funds move.
	ErrState = errors.New("collaborator state forbids operation")

	// ErrTransfer: a pull/push/grant on the funding token failed.
	ErrTransfer = errors.New("funding token transfer failed")

	// ErrReentrancy: a nested or concurrent invocation was detected while
	// another call on the same router was still executing.
	ErrReentrancy = errors.New("reentrant call rejected")

	// ErrPaused: the admin circuit breaker is engaged.
	ErrPaused = errors.New("router is paused")

	// ErrDuplicateRequest: the RequestID was already processed.
	ErrDuplicateRequest = errors.New("duplicate request")
)

// Validationf wraps ErrValidation with a formatted detail message.
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Statef wraps ErrState with a formatted detail message.
func Statef(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrState, fmt.Sprintf(format, args...))
}

// Transferf wraps ErrTransfer around an underlying token error.
func Transferf(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrTransfer, op, err)
}

// Kind returns the taxonomy label for an error, for metrics and logs.
func Kind(err error) string {
	switch {
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrState):
		return "state"
	case errors.Is(err, ErrTransfer):
		return "transfer"
	case errors.Is(err, ErrReentrancy):
		return "reentrancy"
	case errors.Is(err, ErrPaused):
		return "paused"
	case errors.Is(err, ErrDuplicateRequest):
		return "duplicate"
	default:
		return "internal"
	}
}
