package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galoisdense/gf2ri/matrix"
)

func TestNewMatrixRejectsNonPositiveDims(t *testing.T) {
	t.Parallel()

	_, err := matrix.NewMatrix(0, 3)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewMatrix(3, -1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewMatrixIsZeroFilled(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewMatrix(5, 70)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		for j := 0; j < 70; j++ {
			b, err := m.GetCellBit(i, j)
			require.NoError(t, err)
			assert.Zero(t, b)
		}
	}
}

func TestSetGetFlipCellBit(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewMatrix(4, 4)
	require.NoError(t, err)

	require.NoError(t, m.SetCellBit(1, 2, 1))
	b, err := m.GetCellBit(1, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), b)

	require.NoError(t, m.FlipCellBit(1, 2))
	b, err = m.GetCellBit(1, 2)
	require.NoError(t, err)
	assert.Zero(t, b)

	_, err = m.GetCellBit(-1, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.GetCellBit(0, 4)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestNewWindowViewsSubmatrix(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewMatrix(8, 8)
	require.NoError(t, err)
	require.NoError(t, m.SetCellBit(2, 3, 1))

	w, err := matrix.NewWindow(m, 1, 1, 4, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, w.Rows())
	assert.Equal(t, 4, w.Cols())
	assert.True(t, w.IsWindow())

	b, err := w.GetCellBit(1, 2)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), b, "window cell (1,2) aliases parent cell (2,3)")

	require.NoError(t, w.SetCellBit(0, 0, 1))
	pb, err := m.GetCellBit(1, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), pb, "writes through a window mutate the parent's storage")
}

func TestNewWindowRejectsOutOfRange(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewMatrix(4, 4)
	require.NoError(t, err)

	_, err = matrix.NewWindow(m, 2, 2, 4, 4)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = matrix.NewWindow(nil, 0, 0, 1, 1)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestFreeOwnerRefusesWhileWindowsLive(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewMatrix(4, 4)
	require.NoError(t, err)

	w, err := matrix.NewWindow(m, 0, 0, 2, 2)
	require.NoError(t, err)

	err = m.Free()
	assert.ErrorIs(t, err, matrix.ErrOwnedHasLiveWindows)

	require.NoError(t, w.Free())
	assert.NoError(t, m.Free())
}

func TestCopyIsIndependentOfSource(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewMatrix(3, 65)
	require.NoError(t, err)
	require.NoError(t, m.SetCellBit(0, 0, 1))
	require.NoError(t, m.SetCellBit(2, 64, 1))

	cp, err := m.Copy()
	require.NoError(t, err)
	require.NoError(t, m.SetCellBit(0, 0, 0))

	b, err := cp.GetCellBit(0, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), b, "mutating the source must not affect the copy")

	b, err = cp.GetCellBit(2, 64)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), b)
}
