package ratchet

import (
	"github.com/google/uuid"

	"github.com/ratchet-dev/ratchet/pkg/domain"
)

// Snapshot is an immutable, version-bound view of the machine at one
// instant. All access is gated by freshness: the moment the machine
// commits a later transition, every accessor and action on this snapshot
// fails with an error wrapping domain.ErrStaleSnapshot.
type Snapshot struct {
	m       *Machine
	state   string
	value   any
	version uuid.UUID
}

// State returns the captured state identifier.
func (s *Snapshot) State() (string, error) {
	if err := s.ensureFresh(); err != nil {
		return "", err
	}
	return s.state, nil
}

// Value returns the captured value.
func (s *Snapshot) Value() (any, error) {
	if err := s.ensureFresh(); err != nil {
		return nil, err
	}
	return s.value, nil
}

// Fresh reports whether the snapshot still matches the machine's live
// version. Unlike the accessors it never errors, so callers can probe
// after an asynchronous boundary before re-acquiring via Get.
func (s *Snapshot) Fresh() bool {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	return s.version == s.m.version
}

// Actions returns the dispatch surface for the snapshot's state: exactly
// the actions legal there per the transition table.
func (s *Snapshot) Actions() (*Actions, error) {
	if err := s.ensureFresh(); err != nil {
		return nil, err
	}
	return &Actions{snap: s}, nil
}

func (s *Snapshot) ensureFresh() error {
	if !s.Fresh() {
		return &domain.StaleSnapshotError{State: s.state}
	}
	return nil
}

// Actions is the capability surface of one snapshot. Only action names
// legal in the snapshot's state are enumerable; invoking any other name
// fails with an UnknownActionError.
type Actions struct {
	snap *Snapshot
}

// Names enumerates the legal action names, sorted.
func (a *Actions) Names() []string {
	return a.snap.m.table.ActionsOf(a.snap.state)
}

// Invoke executes the named action: it computes the destination state's
// value from args, commits the transition, notifies listeners and returns
// the new current snapshot. Freshness and the notification firewall are
// re-checked at invocation time, so a surface obtained earlier cannot
// outlive its snapshot.
func (a *Actions) Invoke(name string, args ...any) (*Snapshot, error) {
	return a.snap.m.dispatch(a.snap, name, args)
}
