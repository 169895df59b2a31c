package schema_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratchet-dev/ratchet/pkg/schema"
)

func TestStateSchemas_ValidateValue(t *testing.T) {
	schemas := schema.StateSchemas{
		"red":   schema.String(),
		"green": schema.Int(),
	}

	assert.NoError(t, schemas.ValidateValue("red", "stop"))
	assert.NoError(t, schemas.ValidateValue("green", 3))
	assert.NoError(t, schemas.ValidateValue("unknown", struct{}{}), "uncovered state passes")

	err := schemas.ValidateValue("red", 42)
	require.Error(t, err)
	var verr *schema.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "red", verr.State)
}

func TestStrict_RequiresCoverage(t *testing.T) {
	strict := schema.Strict{Schemas: schema.StateSchemas{"red": schema.String()}}

	assert.NoError(t, strict.ValidateValue("red", "stop"))
	assert.Error(t, strict.ValidateValue("blue", "anything"))
}

func TestTypes(t *testing.T) {
	cases := []struct {
		typ     schema.Type
		ok      any
		bad     any
		badNote string
	}{
		{schema.String(), "x", 1, "int is not a string"},
		{schema.Int(), 7, "7", "string is not an int"},
		{schema.Int(), float64(7), 7.5, "fractional float is not an int"},
		{schema.Float(), 1.5, "1.5", "string is not a float"},
		{schema.Bool(), true, 0, "int is not a bool"},
		{schema.Nil(), nil, "", "empty string is not nil"},
		{schema.Slice(schema.Int()), []any{1, 2}, []any{1, "2"}, "mixed element types"},
		{schema.Map(schema.String()), map[string]any{"a": "b"}, map[string]any{"a": 1}, "wrong value type"},
	}

	for _, tc := range cases {
		t.Run(tc.typ.Name(), func(t *testing.T) {
			assert.NoError(t, tc.typ.Validate(tc.ok))
			assert.Error(t, tc.typ.Validate(tc.bad), tc.badNote)
		})
	}

	assert.NoError(t, schema.Any().Validate(struct{}{}))
}

func TestCustom(t *testing.T) {
	nonEmpty := schema.Custom("non-empty", func(v any) error {
		s, ok := v.(string)
		if !ok || s == "" {
			return errors.New("must be a non-empty string")
		}
		return nil
	})

	assert.Equal(t, "non-empty", nonEmpty.Name())
	assert.NoError(t, nonEmpty.Validate("x"))
	assert.Error(t, nonEmpty.Validate(""))
}

func TestParseType(t *testing.T) {
	for _, name := range []string{"string", "int", "float", "bool", "nil", "any", "[int]", "map[string]string", "[[bool]]"} {
		_, err := schema.ParseType(name)
		assert.NoError(t, err, name)
	}

	_, err := schema.ParseType("decimal")
	assert.Error(t, err)
}

func TestParseStateSchemas(t *testing.T) {
	schemas, err := schema.ParseStateSchemas(map[string]string{
		"red":   "string",
		"green": "[int]",
	})
	require.NoError(t, err)
	assert.NoError(t, schemas.ValidateValue("green", []any{1}))

	_, err = schema.ParseStateSchemas(map[string]string{"red": "nope"})
	assert.Error(t, err)
}
