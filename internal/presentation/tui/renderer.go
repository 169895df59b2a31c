// Package tui renders machine state for the interactive CLI stepper.
package tui

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// Renderer colors terminal output according to the detected color profile.
type Renderer struct {
	profile termenv.Profile
}

// NewRenderer detects the terminal's color profile once.
func NewRenderer() *Renderer {
	return &Renderer{profile: termenv.ColorProfile()}
}

// StateLine formats the current state, its value and the legal actions.
func (r *Renderer) StateLine(state string, value any, actions []string) string {
	display := state
	if display == "" {
		display = "(empty)"
	}
	styled := termenv.String(display).Foreground(r.profile.Color("#ffeb3b")).Bold()

	var sb strings.Builder
	fmt.Fprintf(&sb, "state: %s", styled)
	if value != nil {
		fmt.Fprintf(&sb, "  value: %v", value)
	}
	if len(actions) == 0 {
		sb.WriteString("  (terminal state, no actions)")
	} else {
		fmt.Fprintf(&sb, "  actions: %s", strings.Join(actions, ", "))
	}
	return sb.String()
}

// Error formats a dispatch failure.
func (r *Renderer) Error(err error) string {
	return termenv.String("error: " + err.Error()).Foreground(r.profile.Color("#ef4444")).String()
}

// Info formats an informational message.
func (r *Renderer) Info(msg string) string {
	return termenv.String(msg).Faint().String()
}
