package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galoisdense/gf2ri/matrix"
	"github.com/galoisdense/gf2ri/matrix/ops"
)

func TestNaiveIdentityIsNoop(t *testing.T) {
	t.Parallel()

	a, err := matrix.Random(5, 5)
	require.NoError(t, err)
	id, err := matrix.IdentityMatrix(5)
	require.NoError(t, err)

	c, err := ops.Naive(a, id)
	require.NoError(t, err)
	assert.Equal(t, a.String(), c.String())
}

func TestNaiveRejectsDimensionMismatch(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewMatrix(2, 3)
	require.NoError(t, err)
	b, err := matrix.NewMatrix(4, 2)
	require.NoError(t, err)

	_, err = ops.Naive(a, b)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestNaiveKnownProduct(t *testing.T) {
	t.Parallel()

	a, err := matrix.FromBits(2, 2, []int{1, 1, 0, 1})
	require.NoError(t, err)
	b, err := matrix.FromBits(2, 2, []int{1, 0, 1, 1})
	require.NoError(t, err)

	c, err := ops.Naive(a, b)
	require.NoError(t, err)
	assert.Equal(t, "01\n11", c.String())
}
