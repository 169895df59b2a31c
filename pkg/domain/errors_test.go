package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratchet-dev/ratchet/pkg/domain"
)

func TestTypedErrorsWrapSentinels(t *testing.T) {
	cases := []struct {
		err      error
		sentinel error
	}{
		{&domain.StaleSnapshotError{State: "red"}, domain.ErrStaleSnapshot},
		{&domain.IllegalTransitionError{State: "red", Action: "turnGreen"}, domain.ErrIllegalTransition},
		{&domain.UnknownActionError{State: "red", Action: "fly"}, domain.ErrUnknownAction},
		{&domain.UnexpectedStateError{Expected: []string{"red"}, Actual: "green"}, domain.ErrUnexpectedState},
		{&domain.InvalidValueError{State: "red", Cause: errors.New("bad")}, domain.ErrInvalidValue},
	}

	for _, tc := range cases {
		t.Run(tc.sentinel.Error(), func(t *testing.T) {
			assert.ErrorIs(t, tc.err, tc.sentinel)
			assert.ErrorIs(t, fmt.Errorf("wrapped: %w", tc.err), tc.sentinel)
			assert.NotEmpty(t, tc.err.Error())
		})
	}
}

func TestUnexpectedStateError_Message(t *testing.T) {
	err := &domain.UnexpectedStateError{Expected: []string{"red", "green"}, Actual: "turningGreen"}
	assert.Equal(t, `unexpected state: want one of [red, green], got "turningGreen"`, err.Error())
}

func TestEchoTransformers(t *testing.T) {
	tfs := domain.EchoTransformers(domain.TransitionsMap{
		"a": {"go": "b"},
	})

	require.Contains(t, tfs, "a")
	require.Contains(t, tfs, "b", "destinations are covered too")

	v, err := tfs["a"]("x", "y")
	require.NoError(t, err)
	assert.Equal(t, "x", v)

	v, err = tfs["b"]()
	require.NoError(t, err)
	assert.Nil(t, v)
}
