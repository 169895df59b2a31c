package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratchet-dev/ratchet/pkg/registry"
)

func TestRegistry_Builtins(t *testing.T) {
	r := registry.New()

	echo, err := r.Resolve("echo")
	require.NoError(t, err)
	v, err := echo("a", "b")
	require.NoError(t, err)
	assert.Equal(t, "a", v)

	join, err := r.Resolve("join")
	require.NoError(t, err)
	v, err = join("red", 1)
	require.NoError(t, err)
	assert.Equal(t, "red 1", v)
}

func TestRegistry_RegisterAndResolve(t *testing.T) {
	r := registry.New()
	r.Register("constant", func(...any) (any, error) { return 42, nil })

	fn, err := r.Resolve("constant")
	require.NoError(t, err)
	v, err := fn()
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	_, err = r.Resolve("missing")
	assert.ErrorContains(t, err, "transformer not found")
}
