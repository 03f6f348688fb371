package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galoisdense/gf2ri/matrix"
)

func TestIdentityMatrixDiagonal(t *testing.T) {
	t.Parallel()

	m, err := matrix.IdentityMatrix(4)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			b, err := m.GetCellBit(i, j)
			require.NoError(t, err)
			if i == j {
				assert.Equal(t, uint64(1), b)
			} else {
				assert.Zero(t, b)
			}
		}
	}
}

func TestIdentityMatrixRejectsNonPositive(t *testing.T) {
	t.Parallel()

	_, err := matrix.IdentityMatrix(0)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestFromBitsRejectsLengthMismatch(t *testing.T) {
	t.Parallel()

	_, err := matrix.FromBits(2, 2, []int{1, 0, 1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestRandomProducesVaryingBits(t *testing.T) {
	t.Parallel()

	m, err := matrix.Random(4, 130)
	require.NoError(t, err)

	var ones, zeros int
	for i := 0; i < 4; i++ {
		for j := 0; j < 130; j++ {
			b, err := m.GetCellBit(i, j)
			require.NoError(t, err)
			if b != 0 {
				ones++
			} else {
				zeros++
			}
		}
	}
	assert.Positive(t, ones)
	assert.Positive(t, zeros)
}

func TestMatrixStringRendersRows(t *testing.T) {
	t.Parallel()

	m, err := matrix.FromBits(2, 2, []int{1, 0, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, "10\n01", m.String())
}
