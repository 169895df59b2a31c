package schema

import "fmt"

// StateSchemas maps each state to the Type its value must conform to.
// It implements domain.ValueValidator.
//
// A state without an entry is unvalidated: schema coverage may be partial.
// To require coverage, use Strict.
type StateSchemas map[string]Type

// ValidateValue checks the candidate value for a state against its schema.
func (s StateSchemas) ValidateValue(state string, value any) error {
	t, ok := s[state]
	if !ok {
		return nil
	}
	if err := t.Validate(value); err != nil {
		return &ValidationError{State: state, Reason: err.Error(), Value: value}
	}
	return nil
}

// Strict wraps schemas so that a state without an entry is itself a
// validation failure.
type Strict struct {
	Schemas StateSchemas
}

func (s Strict) ValidateValue(state string, value any) error {
	if _, ok := s.Schemas[state]; !ok {
		return &ValidationError{State: state, Reason: "no schema defined", Value: value}
	}
	return s.Schemas.ValidateValue(state, value)
}

// ParseStateSchemas builds StateSchemas from textual type names, as found
// in definition documents ({"red": "string", "green": "map[string]int"}).
func ParseStateSchemas(raw map[string]string) (StateSchemas, error) {
	schemas := make(StateSchemas, len(raw))
	for state, name := range raw {
		t, err := ParseType(name)
		if err != nil {
			return nil, fmt.Errorf("state %q: %w", state, err)
		}
		schemas[state] = t
	}
	return schemas, nil
}
