package mapping_test

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ags/mapping"
	"ags/options"
	"ags/shape"
	"ags/structural"
)

// build builds the plan for the descriptor of T in the default registry.
func build[T any](t *testing.T, opts options.CategoryEnum) mapping.Mapping {
	t.Helper()

	m, err := mapping.Build(shape.Of[T](), opts)
	require.NoError(t, err)

	return m
}

// roundTrip lowers v, unlowers the result, checks it equals v and returns the
// structural value.
func roundTrip(t *testing.T, m mapping.Mapping, v any) any {
	t.Helper()

	low, err := mapping.Lower(m, v)
	require.NoError(t, err)

	high, err := mapping.Unlower(m, low)
	require.NoError(t, err, spew.Sdump(low))
	assert.Equal(t, v, high)

	return low
}

func assertStructural(t *testing.T, want, got any) {
	t.Helper()
	assert.True(t, structural.Equal(want, got), "want:\n%s\ngot:\n%s", spew.Sdump(want), spew.Sdump(got))
}

func assertCode(t *testing.T, err error, code mapping.Code, message string) {
	t.Helper()

	require.Error(t, err)

	merr, ok := mapping.AsError(err)
	require.True(t, ok, "not a mapping error: %v", err)
	assert.Equal(t, code, merr.Code)
	assert.Equal(t, message, err.Error())
}
