package ratchet

import (
	"log/slog"

	"github.com/ratchet-dev/ratchet/pkg/domain"
)

// Option defines a functional option for configuring a Machine.
type Option func(*Machine)

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Machine) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithHooks registers observability hooks invoked on commits and on
// isolated listener failures.
func WithHooks(hooks domain.LifecycleHooks) Option {
	return func(m *Machine) {
		m.hooks = hooks
	}
}

// WithValidator installs a value validator, run against the initial value
// at construction and against every transformer result before commit.
func WithValidator(v domain.ValueValidator) Option {
	return func(m *Machine) {
		m.validator = v
	}
}

// WithErrorSink replaces the default listener-failure sink (which logs).
// The sink must not panic and must not invoke actions.
func WithErrorSink(sink func(error)) Option {
	return func(m *Machine) {
		if sink != nil {
			m.errSink = sink
		}
	}
}
