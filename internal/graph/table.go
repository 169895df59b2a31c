// Package graph holds the static transition table of a machine: the
// state×action→state lookup and the reverse-edge (predecessor) index,
// both derived once at construction and immutable afterwards.
package graph

import (
	"sort"

	"github.com/ratchet-dev/ratchet/pkg/domain"
)

// Table is the compiled transition graph.
type Table struct {
	transitions  domain.TransitionsMap
	predecessors map[string][]string
}

// NewTable compiles the transitions map. The reverse-edge index is computed
// here once, never per call. Go map iteration order is randomized, so
// sources are scanned in sorted order to keep the index deterministic.
// Predecessors use set semantics: a state with several actions into the
// same destination is recorded once.
func NewTable(transitions domain.TransitionsMap) *Table {
	preds := make(map[string][]string)
	seen := make(map[string]map[string]bool)

	sources := make([]string, 0, len(transitions))
	for from := range transitions {
		sources = append(sources, from)
	}
	sort.Strings(sources)

	for _, from := range sources {
		actions := transitions[from]
		names := make([]string, 0, len(actions))
		for name := range actions {
			names = append(names, name)
		}
		sort.Strings(names)

		for _, name := range names {
			to := actions[name]
			if seen[to] == nil {
				seen[to] = make(map[string]bool)
			}
			if seen[to][from] {
				continue
			}
			seen[to][from] = true
			preds[to] = append(preds[to], from)
		}
	}

	return &Table{
		transitions:  transitions,
		predecessors: preds,
	}
}

// DestinationOf returns the destination of (state, action), or false when
// the state has no such action.
func (t *Table) DestinationOf(state, action string) (string, bool) {
	actions, ok := t.transitions[state]
	if !ok {
		return "", false
	}
	to, ok := actions[action]
	return to, ok
}

// PredecessorsOf returns the states with at least one action into state.
// The returned slice is shared; callers must not mutate it.
func (t *Table) PredecessorsOf(state string) []string {
	return t.predecessors[state]
}

// ActionsOf returns the action names legal from state, sorted.
func (t *Table) ActionsOf(state string) []string {
	actions, ok := t.transitions[state]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(actions))
	for name := range actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// States returns every state mentioned in the table (as source or
// destination), sorted.
func (t *Table) States() []string {
	set := make(map[string]bool)
	for from, actions := range t.transitions {
		set[from] = true
		for _, to := range actions {
			set[to] = true
		}
	}
	states := make([]string, 0, len(set))
	for s := range set {
		states = append(states, s)
	}
	sort.Strings(states)
	return states
}

// Edges invokes fn for every (from, action, to) edge in deterministic order.
func (t *Table) Edges(fn func(from, action, to string)) {
	for _, from := range t.sortedSources() {
		actions := t.transitions[from]
		names := make([]string, 0, len(actions))
		for name := range actions {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fn(from, name, actions[name])
		}
	}
}

func (t *Table) sortedSources() []string {
	sources := make([]string, 0, len(t.transitions))
	for from := range t.transitions {
		sources = append(sources, from)
	}
	sort.Strings(sources)
	return sources
}
