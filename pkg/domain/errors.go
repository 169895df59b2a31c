package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the machine's failure taxonomy. Typed error structs
// below wrap these, so callers can use errors.Is for the category and
// errors.As for the detail.
var (
	// ErrStaleSnapshot is returned for any read or action invocation on a
	// snapshot whose version no longer matches the machine's live version.
	ErrStaleSnapshot = errors.New("stale snapshot")

	// ErrIllegalTransition is returned when an action is invoked while the
	// machine is mid-notification. The attempt is rejected, never queued.
	ErrIllegalTransition = errors.New("illegal transition")

	// ErrUnknownAction is returned when a dispatch names an action that is
	// not legal in the snapshot's state.
	ErrUnknownAction = errors.New("unknown action")

	// ErrUnexpectedState is returned by Assert when the live state is not
	// among the expected set.
	ErrUnexpectedState = errors.New("unexpected state")

	// ErrInvalidValue is returned when the value validator rejects a
	// candidate value (including the initial value at construction).
	ErrInvalidValue = errors.New("invalid value")

	// ErrNoTransformer is returned when a transition targets a state that
	// has no entry in the transformer map.
	ErrNoTransformer = errors.New("no transformer for state")
)

// StaleSnapshotError reports access to a snapshot the machine has advanced past.
type StaleSnapshotError struct {
	// State is the state the snapshot was bound to.
	State string
}

func (e *StaleSnapshotError) Error() string {
	return fmt.Sprintf("stale snapshot: machine has moved past state %q", e.State)
}

func (e *StaleSnapshotError) Unwrap() error { return ErrStaleSnapshot }

// IllegalTransitionError reports a reentrant transition attempt.
type IllegalTransitionError struct {
	State  string // state at the time of the attempt
	Action string // action that was attempted
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal transition: action %q on state %q attempted during notification", e.Action, e.State)
}

func (e *IllegalTransitionError) Unwrap() error { return ErrIllegalTransition }

// UnknownActionError reports a dispatch for an action the snapshot's state
// does not define.
type UnknownActionError struct {
	State  string
	Action string
}

func (e *UnknownActionError) Error() string {
	return fmt.Sprintf("unknown action %q in state %q", e.Action, e.State)
}

func (e *UnknownActionError) Unwrap() error { return ErrUnknownAction }

// UnexpectedStateError reports an Assert against the wrong live state.
type UnexpectedStateError struct {
	Expected []string
	Actual   string
}

func (e *UnexpectedStateError) Error() string {
	return fmt.Sprintf("unexpected state: want one of [%s], got %q", strings.Join(e.Expected, ", "), e.Actual)
}

func (e *UnexpectedStateError) Unwrap() error { return ErrUnexpectedState }

// InvalidValueError reports a validator rejection.
type InvalidValueError struct {
	State   string
	Initial bool // true when the rejected value was the construction-time initial value
	Cause   error
}

func (e *InvalidValueError) Error() string {
	if e.Initial {
		return fmt.Sprintf("invalid initial value for state %q: %v", e.State, e.Cause)
	}
	return fmt.Sprintf("invalid value for state %q: %v", e.State, e.Cause)
}

func (e *InvalidValueError) Unwrap() error { return ErrInvalidValue }
