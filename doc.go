/*
Package ratchet is a small in-process versioned state machine with automatic
snapshot invalidation.

An entity is modeled as a finite set of named states, each carrying a typed
value, with explicit named actions that transition between states. Every
committed transition mints a new version token and a brand-new immutable
Snapshot; every previously returned snapshot becomes permanently inert the
instant the machine advances past its version. Holding a snapshot across an
asynchronous boundary is therefore safe by construction: acting on a stale
one fails loudly instead of corrupting state.

# Concept

The machine core is single-threaded and fully synchronous. Listener
notification happens inside the committing call, and while a notification
cycle is in progress the machine is frozen: any action invoked from within
a listener is rejected, never queued. This guarantees that every listener
in one cycle observes the same consistent post-transition snapshot.

# Usage

	def := domain.Definition{
		Initial:      "red",
		InitialValue: nil,
		Transformers: map[string]domain.Transformer{
			"red":          domain.Echo,
			"turningGreen": domain.Echo,
			"green":        domain.Echo,
			"turningRed":   domain.Echo,
		},
		Transitions: domain.TransitionsMap{
			"red":          {"turnGreen": "turningGreen"},
			"turningGreen": {"setGreen": "green"},
			"green":        {"turnRed": "turningRed"},
			"turningRed":   {"setRed": "red"},
		},
	}

	m, err := ratchet.New(def)
	if err != nil {
		log.Fatal(err)
	}

	unsubscribe := m.Subscribe(func() {
		state, _ := m.Get().State()
		log.Printf("now in %s", state)
	})
	defer unsubscribe()

	snap, err := m.Assert("red")
	if err != nil {
		log.Fatal(err)
	}
	actions, _ := snap.Actions()
	next, err := actions.Invoke("turnGreen", 42)

After Invoke succeeds, snap is stale: every accessor and action on it
returns an error wrapping domain.ErrStaleSnapshot, while next (and
m.Get(), which is the same object) remains live until the next commit.

Get and Subscribe together satisfy the usual external-store convention:
repeated Subscribe calls are independent registrations, unsubscribe is
idempotent, and Get returns the same snapshot object until a transition
commits.
*/
package ratchet
