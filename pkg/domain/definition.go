package domain

// Transformer computes the value carried by a state, given the arguments of
// the action that entered it. Returning an error aborts the transition with
// no mutation of the machine.
type Transformer func(args ...any) (any, error)

// TransitionsMap maps state → action name → destination state.
// Destination identifiers are expected to be keys of the transformer map;
// a missing transformer surfaces as a lookup failure at transition time,
// not at construction.
type TransitionsMap map[string]map[string]string

// Definition is the static configuration a machine is built from.
// It is read once at construction and never mutated afterwards.
type Definition struct {
	// Initial is the state the machine starts in.
	Initial string

	// InitialValue is the value carried by the initial state. It is passed
	// through the validator (if any) but not through a transformer.
	InitialValue any

	// Transformers holds one value-computation function per state.
	Transformers map[string]Transformer

	// Transitions is the state×action→state graph.
	Transitions TransitionsMap
}

// ValueValidator vets a candidate value for a state before it is committed.
// It is invoked on construction (initial value) and on every transition.
type ValueValidator interface {
	// ValidateValue returns nil if value is acceptable for state.
	ValidateValue(state string, value any) error
}

// Echo is a Transformer that returns its first argument unchanged, or nil
// when called without arguments. Useful for passthrough states and for
// definitions loaded from documents, where no Go code supplies transformers.
func Echo(args ...any) (any, error) {
	if len(args) == 0 {
		return nil, nil
	}
	return args[0], nil
}

// EchoTransformers builds a transformer map assigning Echo to every state
// that appears in the transitions map, either as a source or a destination.
func EchoTransformers(transitions TransitionsMap) map[string]Transformer {
	tfs := make(map[string]Transformer)
	for from, actions := range transitions {
		tfs[from] = Echo
		for _, to := range actions {
			tfs[to] = Echo
		}
	}
	return tfs
}
