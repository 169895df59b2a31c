package schema

import "fmt"

// ValidationError represents a single state-value validation failure.
type ValidationError struct {
	State  string // State the value was destined for
	Reason string // Human-readable reason for failure
	Value  any    // The value that failed validation
}

func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("state %q: %s", e.State, e.Reason)
	}
	return fmt.Sprintf("state %q: %s (got %T)", e.State, e.Reason, e.Value)
}
