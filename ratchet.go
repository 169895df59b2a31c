package ratchet

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/atomic"

	"github.com/ratchet-dev/ratchet/internal/graph"
	"github.com/ratchet-dev/ratchet/internal/logging"
	"github.com/ratchet-dev/ratchet/pkg/domain"
)

// Machine is a versioned state machine. It owns the live (state, value,
// version) triple and the single current snapshot; all mutation goes
// through snapshot action dispatch.
type Machine struct {
	logger    *slog.Logger
	hooks     domain.LifecycleHooks
	validator domain.ValueValidator
	errSink   func(error)

	table        *graph.Table
	transformers map[string]domain.Transformer

	notifier *notifier

	// notifying is the reentrancy firewall: while a notification cycle is
	// delivering, dispatch is rejected before the commit lock is touched,
	// so a listener invoking an action fails instead of deadlocking.
	notifying atomic.Bool

	mu      sync.Mutex // guards the triple below and current
	state   string
	value   any
	version uuid.UUID
	current *Snapshot
}

// New builds a machine from def. The reverse-edge index is derived here;
// no other validation of the transition graph happens at construction
// (a destination without a transformer fails at transition time).
// With a validator option, the initial value is validated and construction
// fails if it is rejected.
func New(def domain.Definition, opts ...Option) (*Machine, error) {
	m := &Machine{
		logger:       logging.NewNop(),
		table:        graph.NewTable(def.Transitions),
		transformers: def.Transformers,
		notifier:     newNotifier(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.errSink == nil {
		logger := m.logger
		m.errSink = func(err error) {
			logger.Error("listener failed", "err", err)
		}
	}

	if m.validator != nil {
		if err := m.validator.ValidateValue(def.Initial, def.InitialValue); err != nil {
			return nil, &domain.InvalidValueError{State: def.Initial, Initial: true, Cause: err}
		}
	}

	m.state = def.Initial
	m.value = def.InitialValue
	m.version = uuid.New()
	m.current = &Snapshot{m: m, state: m.state, value: m.value, version: m.version}

	return m, nil
}

// Get returns the current snapshot. It is referentially stable: until the
// next committed transition, every call returns the same object.
func (m *Machine) Get() *Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// GetIf returns the current snapshot only when the live state equals state.
// The empty-string state is a valid state, distinct from "absent".
func (m *Machine) GetIf(state string) (*Snapshot, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != state {
		return nil, false
	}
	return m.current, true
}

// Assert returns the current snapshot when the live state is among states,
// and an UnexpectedStateError otherwise.
func (m *Machine) Assert(states ...string) (*Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range states {
		if m.state == s {
			return m.current, nil
		}
	}
	return nil, &domain.UnexpectedStateError{Expected: states, Actual: m.state}
}

// Subscribe registers fn for invocation after every committed transition,
// in registration order. The returned function unsubscribes and is
// idempotent. Repeated Subscribe calls with the same fn are independent
// registrations.
func (m *Machine) Subscribe(fn Listener, opts ...SubscribeOption) func() {
	return m.notifier.subscribe(fn, opts...)
}

// Predecessors returns the states with at least one action into state,
// from the reverse-edge index derived at construction.
func (m *Machine) Predecessors(state string) []string {
	return m.table.PredecessorsOf(state)
}

// dispatch executes one transition on behalf of a snapshot's action
// surface. On any failure before the commit point, no state, value or
// version changes and no listener is notified.
func (m *Machine) dispatch(s *Snapshot, action string, args []any) (*Snapshot, error) {
	if m.notifying.Load() {
		return nil, &domain.IllegalTransitionError{State: s.state, Action: action}
	}

	m.mu.Lock()
	if s.version != m.version {
		m.mu.Unlock()
		return nil, &domain.StaleSnapshotError{State: s.state}
	}

	dest, ok := m.table.DestinationOf(s.state, action)
	if !ok {
		m.mu.Unlock()
		return nil, &domain.UnknownActionError{State: s.state, Action: action}
	}

	transform, ok := m.transformers[dest]
	if !ok {
		m.mu.Unlock()
		return nil, fmt.Errorf("%w %q (action %q from %q)", domain.ErrNoTransformer, dest, action, s.state)
	}

	value, err := runTransformer(transform, args)
	if err != nil {
		m.mu.Unlock()
		return nil, fmt.Errorf("transform into %q: %w", dest, err)
	}

	if m.validator != nil {
		if verr := m.validator.ValidateValue(dest, value); verr != nil {
			m.mu.Unlock()
			return nil, &domain.InvalidValueError{State: dest, Cause: verr}
		}
	}

	// Commit point. From here the transition is final: listener failures
	// are isolated and never unwind state (log-and-continue policy).
	from := s.state
	m.state = dest
	m.value = value
	m.version = uuid.New()
	next := &Snapshot{m: m, state: dest, value: value, version: m.version}
	m.current = next

	event := &domain.TransitionEvent{
		Timestamp: time.Now(),
		From:      from,
		To:        dest,
		Action:    action,
		Version:   next.version,
	}

	// The flag goes up before the lock is released so no transition can
	// slip in between commit and delivery; it is cleared on every exit
	// path once delivery finishes.
	m.notifying.Store(true)
	m.mu.Unlock()
	defer m.notifying.Store(false)

	if m.hooks.OnTransition != nil {
		m.hooks.OnTransition(event)
	}
	m.logger.Debug("transition committed",
		"from", from, "action", action, "to", dest, "version", event.Version)

	m.notifier.notify(func(err error) {
		m.errSink(err)
		if m.hooks.OnListenerError != nil {
			m.hooks.OnListenerError(&domain.ListenerErrorEvent{
				Timestamp: time.Now(),
				State:     dest,
				Version:   event.Version,
				Err:       err,
			})
		}
	})

	return next, nil
}

// runTransformer shields the machine from transformer panics: a panicking
// transformer aborts the transition like an erroring one.
func runTransformer(transform domain.Transformer, args []any) (value any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("transformer panic: %v", r)
		}
	}()
	return transform(args...)
}
