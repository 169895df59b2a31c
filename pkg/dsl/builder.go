package dsl

import (
	"fmt"

	"github.com/ratchet-dev/ratchet/pkg/domain"
)

// Builder manages the definition construction.
type Builder struct {
	initial      string
	initialValue any
	states       map[string]*StateBuilder
}

// New creates a new definition builder.
func New() *Builder {
	return &Builder{
		states: make(map[string]*StateBuilder),
	}
}

// Initial sets the starting state and its value.
func (b *Builder) Initial(state string, value any) *Builder {
	b.initial = state
	b.initialValue = value
	return b
}

// State creates (or returns the existing) builder for one state.
func (b *Builder) State(id string) *StateBuilder {
	if sb, ok := b.states[id]; ok {
		return sb
	}
	sb := &StateBuilder{
		id:          id,
		transform:   domain.Echo,
		transitions: make(map[string]string),
		builder:     b,
	}
	b.states[id] = sb
	return sb
}

// Build compiles the definition. Destination states that were never
// declared explicitly get the Echo transformer.
func (b *Builder) Build() (domain.Definition, error) {
	if b.initial == "" {
		return domain.Definition{}, fmt.Errorf("no initial state set")
	}
	if _, ok := b.states[b.initial]; !ok {
		return domain.Definition{}, fmt.Errorf("initial state %q was never declared", b.initial)
	}

	transitions := make(domain.TransitionsMap, len(b.states))
	transformers := make(map[string]domain.Transformer, len(b.states))
	for id, sb := range b.states {
		transitions[id] = sb.transitions
		transformers[id] = sb.transform
	}
	for _, actions := range transitions {
		for _, to := range actions {
			if _, ok := transformers[to]; !ok {
				transformers[to] = domain.Echo
			}
		}
	}

	return domain.Definition{
		Initial:      b.initial,
		InitialValue: b.initialValue,
		Transformers: transformers,
		Transitions:  transitions,
	}, nil
}

// StateBuilder provides a fluent API for configuring one state.
type StateBuilder struct {
	id          string
	transform   domain.Transformer
	transitions map[string]string
	builder     *Builder
}

// Transform sets the state's value transformer (default: domain.Echo).
func (s *StateBuilder) Transform(fn domain.Transformer) *StateBuilder {
	if fn != nil {
		s.transform = fn
	}
	return s
}

// On adds an action edge from this state to dest.
func (s *StateBuilder) On(action, dest string) *StateBuilder {
	s.transitions[action] = dest
	return s
}

// State continues the chain on another state.
func (s *StateBuilder) State(id string) *StateBuilder {
	return s.builder.State(id)
}

// Build finishes the chain.
func (s *StateBuilder) Build() (domain.Definition, error) {
	return s.builder.Build()
}
