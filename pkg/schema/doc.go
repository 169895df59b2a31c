/*
Package schema provides the value-validation collaborator for ratchet
machines: one Type per state, checked against the initial value at
construction and against every transformer result before commit.

Types can be composed structurally (Slice, Map) or supplied as custom
functions. A StateSchemas map implements domain.ValueValidator and plugs
into a machine via ratchet.WithValidator.

	m, err := ratchet.New(def, ratchet.WithValidator(schema.StateSchemas{
		"red":   schema.String(),
		"green": schema.Map(schema.Int()),
	}))
*/
package schema
