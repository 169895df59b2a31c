package ratchet_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratchet-dev/ratchet"
)

// transition advances the machine by one step and fails the test on error.
func transition(t *testing.T, m *ratchet.Machine, action string) {
	t.Helper()
	actions, err := m.Get().Actions()
	require.NoError(t, err)
	_, err = actions.Invoke(action)
	require.NoError(t, err)
}

func TestSubscribe_Order(t *testing.T) {
	m, err := ratchet.New(trafficLight())
	require.NoError(t, err)

	var order []int
	m.Subscribe(func() { order = append(order, 1) })
	m.Subscribe(func() { order = append(order, 2) })
	m.Subscribe(func() { order = append(order, 3) })

	transition(t, m, "turnGreen")
	assert.Equal(t, []int{1, 2, 3}, order, "delivery follows registration order")
}

func TestSubscribe_DuplicateRegistrations(t *testing.T) {
	m, err := ratchet.New(trafficLight())
	require.NoError(t, err)

	calls := 0
	fn := func() { calls++ }
	m.Subscribe(fn)
	m.Subscribe(fn)

	transition(t, m, "turnGreen")
	assert.Equal(t, 2, calls, "two registrations of the same listener fire twice")
}

func TestSubscribe_UnsubscribeIdempotent(t *testing.T) {
	m, err := ratchet.New(trafficLight())
	require.NoError(t, err)

	calls := 0
	unsubscribe := m.Subscribe(func() { calls++ })

	transition(t, m, "turnGreen")
	unsubscribe()
	unsubscribe() // second call is a no-op
	transition(t, m, "setGreen")

	assert.Equal(t, 1, calls)
}

func TestSubscribe_RemoveDuringCycleSkipsUnvisited(t *testing.T) {
	m, err := ratchet.New(trafficLight())
	require.NoError(t, err)

	var order []string
	var unsubscribeB func()
	m.Subscribe(func() {
		order = append(order, "a")
		unsubscribeB()
	})
	unsubscribeB = m.Subscribe(func() {
		order = append(order, "b")
	})
	m.Subscribe(func() {
		order = append(order, "c")
	})

	transition(t, m, "turnGreen")
	assert.Equal(t, []string{"a", "c"}, order,
		"a listener removed before the cycle reaches it is skipped")
}

func TestSubscribe_SubscribeDuringCycleNotDelivered(t *testing.T) {
	m, err := ratchet.New(trafficLight())
	require.NoError(t, err)

	lateCalls := 0
	m.Subscribe(func() {
		m.Subscribe(func() { lateCalls++ })
	})

	transition(t, m, "turnGreen")
	assert.Zero(t, lateCalls, "a listener added mid-cycle waits for the next cycle")

	transition(t, m, "setGreen")
	assert.Equal(t, 1, lateCalls)
}

func TestSubscribe_ContextCancellation(t *testing.T) {
	m, err := ratchet.New(trafficLight())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	unsubscribe := m.Subscribe(func() { calls++ }, ratchet.WithContext(ctx))

	transition(t, m, "turnGreen")
	assert.Equal(t, 1, calls)

	cancel()
	transition(t, m, "setGreen")
	assert.Equal(t, 1, calls, "cancelled registration is not invoked again")

	// Manual unsubscribe after the signal fired stays a no-op.
	unsubscribe()
	transition(t, m, "turnRed")
	assert.Equal(t, 1, calls)
}

func TestSubscribe_CancelAfterManualUnsubscribe(t *testing.T) {
	m, err := ratchet.New(trafficLight())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	unsubscribe := m.Subscribe(func() { calls++ }, ratchet.WithContext(ctx))

	unsubscribe()
	cancel()

	transition(t, m, "turnGreen")
	assert.Zero(t, calls)
}

func TestSubscribe_SameSnapshotAcrossCycle(t *testing.T) {
	m, err := ratchet.New(trafficLight())
	require.NoError(t, err)

	var seen []*ratchet.Snapshot
	m.Subscribe(func() { seen = append(seen, m.Get()) })
	m.Subscribe(func() { seen = append(seen, m.Get()) })

	transition(t, m, "turnGreen")

	require.Len(t, seen, 2)
	assert.Same(t, seen[0], seen[1], "every listener of one cycle observes the same snapshot")

	state, err := seen[0].State()
	require.NoError(t, err)
	assert.Equal(t, "turningGreen", state)
}
