package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galoisdense/gf2ri/matrix"
	"github.com/galoisdense/gf2ri/matrix/ops"
)

// randomUnitUpperTriangular returns a random n x n matrix that is upper
// triangular with an implicit (and explicit, for this helper) unit
// diagonal, suitable as a TRSM coefficient matrix.
func randomUnitUpperTriangular(t *testing.T, n int) *matrix.Matrix {
	t.Helper()
	m, err := matrix.Random(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, m.SetCellBit(i, i, 1))
		for j := 0; j < i; j++ {
			require.NoError(t, m.SetCellBit(i, j, 0))
		}
	}
	return m
}

func randomUnitLowerTriangular(t *testing.T, n int) *matrix.Matrix {
	t.Helper()
	m, err := matrix.Random(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, m.SetCellBit(i, i, 1))
		for j := i + 1; j < n; j++ {
			require.NoError(t, m.SetCellBit(i, j, 0))
		}
	}
	return m
}

func TestTRSMUpperLeftSolvesConsistently(t *testing.T) {
	t.Parallel()

	u := randomUnitUpperTriangular(t, 130)
	x, err := matrix.Random(130, 20)
	require.NoError(t, err)

	b, err := ops.Naive(u, x)
	require.NoError(t, err)

	require.NoError(t, ops.TRSMUpperLeft(u, b))
	assert.Equal(t, x.String(), b.String())
}

func TestTRSMLowerLeftSolvesConsistently(t *testing.T) {
	t.Parallel()

	l := randomUnitLowerTriangular(t, 100)
	x, err := matrix.Random(100, 15)
	require.NoError(t, err)

	b, err := ops.Naive(l, x)
	require.NoError(t, err)

	require.NoError(t, ops.TRSMLowerLeft(l, b))
	assert.Equal(t, x.String(), b.String())
}
