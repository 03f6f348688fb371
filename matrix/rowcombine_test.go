package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galoisdense/gf2ri/matrix"
)

func TestReadWriteBitsRoundTrip(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewMatrix(2, 130)
	require.NoError(t, err)

	require.NoError(t, matrix.WriteBits(m, 0, 10, 20, 0b10101010101010101010))
	v, err := matrix.ReadBits(m, 0, 10, 20)
	require.NoError(t, err)
	assert.Equal(t, uint64(0b10101010101010101010), v)

	// Span a word boundary.
	require.NoError(t, matrix.WriteBits(m, 1, 60, 10, 0b1111111111))
	v, err = matrix.ReadBits(m, 1, 60, 10)
	require.NoError(t, err)
	assert.Equal(t, uint64(0b1111111111), v)
}

func TestXorBitsAndClearBits(t *testing.T) {
	t.Parallel()

	a, err := matrix.NewMatrix(1, 64)
	require.NoError(t, err)
	b, err := matrix.NewMatrix(1, 64)
	require.NoError(t, err)

	require.NoError(t, matrix.WriteBits(a, 0, 0, 8, 0b11001100))
	require.NoError(t, matrix.WriteBits(b, 0, 0, 8, 0b10101010))

	require.NoError(t, matrix.XorBits(a, 0, 0, b, 0, 0, 8))
	v, err := matrix.ReadBits(a, 0, 0, 8)
	require.NoError(t, err)
	assert.Equal(t, uint64(0b01100110), v)

	require.NoError(t, matrix.ClearBits(a, 0, 0, 8))
	v, err = matrix.ReadBits(a, 0, 0, 8)
	require.NoError(t, err)
	assert.Zero(t, v)
}

func TestRowSwapAndColSwap(t *testing.T) {
	t.Parallel()

	m, err := matrix.FromBits(2, 3, []int{
		1, 0, 0,
		0, 1, 1,
	})
	require.NoError(t, err)

	require.NoError(t, matrix.RowSwap(m, 0, 1))
	assert.Equal(t, "011\n100", m.String())

	require.NoError(t, matrix.ColSwap(m, 0, 2))
	assert.Equal(t, "110\n001", m.String())
}

func TestCombineRowsAlignedZeroOffset(t *testing.T) {
	t.Parallel()

	a, err := matrix.FromBits(2, 4, []int{
		1, 1, 0, 0,
		0, 0, 0, 0,
	})
	require.NoError(t, err)
	b, err := matrix.FromBits(2, 4, []int{
		0, 0, 0, 0,
		1, 0, 1, 0,
	})
	require.NoError(t, err)

	require.NoError(t, matrix.CombineRows(a, 0, b, 1))
	bit0, _ := a.GetCellBit(0, 0)
	bit1, _ := a.GetCellBit(0, 1)
	bit2, _ := a.GetCellBit(0, 2)
	assert.Equal(t, uint64(0), bit0) // 1 ^ 1
	assert.Equal(t, uint64(1), bit1) // 1 ^ 0
	assert.Equal(t, uint64(1), bit2) // 0 ^ 1
}

func TestRowWeight(t *testing.T) {
	t.Parallel()

	m, err := matrix.FromBits(3, 5, []int{
		0, 0, 0, 0, 0,
		1, 0, 1, 0, 1,
		1, 1, 1, 1, 1,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, matrix.RowWeight(m, 0))
	assert.Equal(t, 3, matrix.RowWeight(m, 1))
	assert.Equal(t, 5, matrix.RowWeight(m, 2))
}

func TestCombineRowsViaWindowOffset(t *testing.T) {
	t.Parallel()

	m, err := matrix.FromBits(2, 4, []int{
		1, 1, 0, 1,
		0, 1, 1, 0,
	})
	require.NoError(t, err)

	w, err := matrix.NewWindow(m, 0, 1, 2, 3)
	require.NoError(t, err)

	// w row0 = [1,0,1], w row1 = [1,1,0]; combine row1 ^= row0 within window.
	require.NoError(t, matrix.CombineRows(w, 1, w, 0))
	b0, _ := w.GetCellBit(1, 0)
	b1, _ := w.GetCellBit(1, 1)
	b2, _ := w.GetCellBit(1, 2)
	assert.Equal(t, uint64(0), b0) // 1^1
	assert.Equal(t, uint64(1), b1) // 1^0
	assert.Equal(t, uint64(1), b2) // 0^1
}
