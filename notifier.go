package ratchet

import (
	"context"
	"fmt"
	"sync"
)

// Listener is a zero-argument callback invoked after every committed
// transition. Listeners read the post-transition state via Machine.Get;
// invoking an action from inside a listener is rejected.
type Listener func()

type subscription struct {
	fn      Listener
	ctx     context.Context
	removed bool
}

// notifier is the synchronous listener registry. Registration order is
// delivery order; iteration uses live-set semantics (an entry removed
// before the cycle reaches it is skipped).
type notifier struct {
	mu   sync.Mutex
	subs []*subscription
}

func newNotifier() *notifier {
	return &notifier{}
}

// SubscribeOption configures one registration.
type SubscribeOption func(*subscription)

// WithContext ties the registration to ctx: once ctx is done the listener
// is unsubscribed and will not be invoked by any cycle that has not
// already begun delivering to it. Cancelling after a manual unsubscribe
// is a no-op.
func WithContext(ctx context.Context) SubscribeOption {
	return func(s *subscription) {
		s.ctx = ctx
	}
}

func (n *notifier) subscribe(fn Listener, opts ...SubscribeOption) func() {
	sub := &subscription{fn: fn}
	for _, opt := range opts {
		opt(sub)
	}

	n.mu.Lock()
	n.subs = append(n.subs, sub)
	n.mu.Unlock()

	return func() {
		n.remove(sub)
	}
}

// remove is idempotent: the removed flag also tells an in-progress cycle
// to skip the entry it may have captured.
func (n *notifier) remove(sub *subscription) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if sub.removed {
		return
	}
	sub.removed = true
	for i, s := range n.subs {
		if s == sub {
			n.subs = append(n.subs[:i], n.subs[i+1:]...)
			break
		}
	}
}

// notify delivers one cycle. Every registered listener is attempted
// exactly once; a panicking listener is recovered and reported, never
// aborting the remaining delivery.
func (n *notifier) notify(report func(error)) {
	n.mu.Lock()
	cycle := make([]*subscription, len(n.subs))
	copy(cycle, n.subs)
	n.mu.Unlock()

	for _, sub := range cycle {
		n.mu.Lock()
		skip := sub.removed
		n.mu.Unlock()
		if skip {
			continue
		}
		if sub.ctx != nil && sub.ctx.Err() != nil {
			n.remove(sub)
			continue
		}
		invoke(sub.fn, report)
	}
}

func invoke(fn Listener, report func(error)) {
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(error); ok {
				report(fmt.Errorf("listener panic: %w", err))
				return
			}
			report(fmt.Errorf("listener panic: %v", r))
		}
	}()
	fn()
}
