// Package compiler parses machine definition documents into domain
// definitions. Documents are YAML; decoding goes through mapstructure so
// field mapping stays consistent with the rest of the document tooling.
package compiler

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/ratchet-dev/ratchet/pkg/domain"
	"github.com/ratchet-dev/ratchet/pkg/registry"
	"github.com/ratchet-dev/ratchet/pkg/schema"
)

// Document is the on-disk form of a machine definition.
//
//	name: traffic-light
//	initial: red
//	initial_value: stop
//	values:
//	  red: string
//	states:
//	  red:
//	    transitions:
//	      turnGreen: turningGreen
type Document struct {
	Name         string              `yaml:"name" mapstructure:"name"`
	Initial      string              `yaml:"initial" mapstructure:"initial"`
	InitialValue any                 `yaml:"initial_value" mapstructure:"initial_value"`
	Values       map[string]string   `yaml:"values" mapstructure:"values"`
	Transformers map[string]string   `yaml:"transformers" mapstructure:"transformers"`
	States       map[string]StateDoc `yaml:"states" mapstructure:"states"`
}

// StateDoc describes one state's outgoing edges.
type StateDoc struct {
	Transitions map[string]string `yaml:"transitions" mapstructure:"transitions"`
}

// Parser converts raw document bytes into a Document.
type Parser struct{}

// NewParser creates a new parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes data into a Document.
func (p *Parser) Parse(data []byte) (*Document, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse definition: %w", err)
	}

	var doc Document
	if err := mapstructure.Decode(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode definition: %w", err)
	}

	if doc.Initial == "" {
		return nil, fmt.Errorf("definition missing initial state")
	}
	if len(doc.States) == 0 {
		return nil, fmt.Errorf("definition has no states")
	}
	return &doc, nil
}

// Definition compiles the document into a runnable domain.Definition.
// Documents carry no Go code, so every state gets the Echo transformer;
// programs that need real transformers use DefinitionUsing or build the
// Definition directly.
func (d *Document) Definition() domain.Definition {
	transitions := make(domain.TransitionsMap, len(d.States))
	for id, state := range d.States {
		transitions[id] = state.Transitions
	}
	return domain.Definition{
		Initial:      d.Initial,
		InitialValue: d.InitialValue,
		Transformers: domain.EchoTransformers(transitions),
		Transitions:  transitions,
	}
}

// DefinitionUsing compiles the document resolving per-state transformer
// names ("transformers: {green: join}") against reg. States without an
// entry keep the Echo default.
func (d *Document) DefinitionUsing(reg *registry.Registry) (domain.Definition, error) {
	def := d.Definition()
	for state, name := range d.Transformers {
		fn, err := reg.Resolve(name)
		if err != nil {
			return domain.Definition{}, fmt.Errorf("state %q: %w", state, err)
		}
		def.Transformers[state] = fn
	}
	return def, nil
}

// Schemas compiles the document's value type names into state schemas.
// Returns nil when the document declares none.
func (d *Document) Schemas() (schema.StateSchemas, error) {
	if len(d.Values) == 0 {
		return nil, nil
	}
	schemas, err := schema.ParseStateSchemas(d.Values)
	if err != nil {
		return nil, fmt.Errorf("invalid value schemas: %w", err)
	}
	return schemas, nil
}
