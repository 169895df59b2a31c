package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransitionEvent describes one committed transition.
type TransitionEvent struct {
	Timestamp time.Time `json:"timestamp"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	Action    string    `json:"action"`
	Version   uuid.UUID `json:"version"` // version token minted by this commit
}

// ListenerErrorEvent describes a listener failure isolated during a
// notification cycle. The commit it belongs to is identified by Version.
type ListenerErrorEvent struct {
	Timestamp time.Time `json:"timestamp"`
	State     string    `json:"state"` // post-commit state the cycle was delivering
	Version   uuid.UUID `json:"version"`
	Err       error     `json:"-"`
}

// LifecycleHooks defines callbacks for machine observability. Hooks run
// synchronously inside the commit path (before listener delivery) and must
// not invoke actions themselves.
type LifecycleHooks struct {
	OnTransition    func(*TransitionEvent)
	OnListenerError func(*ListenerErrorEvent)
}
