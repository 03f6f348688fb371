package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galoisdense/gf2ri/matrix"
	"github.com/galoisdense/gf2ri/matrix/ops"
)

func TestStrassenAgreesWithM4RMSmallCutoff(t *testing.T) {
	t.Parallel()

	a, err := matrix.Random(193, 65)
	require.NoError(t, err)
	b, err := matrix.Random(65, 65)
	require.NoError(t, err)

	want, err := ops.M4RM(a, b, 10)
	require.NoError(t, err)
	got, err := ops.Strassen(a, b, 64, 10)
	require.NoError(t, err)
	assert.Equal(t, want.String(), got.String())
}

func TestStrassenHandlesOddDimensions(t *testing.T) {
	t.Parallel()

	a, err := matrix.Random(33, 17)
	require.NoError(t, err)
	b, err := matrix.Random(17, 21)
	require.NoError(t, err)

	want, err := ops.Naive(a, b)
	require.NoError(t, err)
	got, err := ops.Strassen(a, b, 8, 0)
	require.NoError(t, err)
	assert.Equal(t, want.String(), got.String())
}
