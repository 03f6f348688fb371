package matrix_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galoisdense/gf2ri/matrix"
)

func TestWriteToReadMatrixRoundTrip(t *testing.T) {
	t.Parallel()

	m, err := matrix.Random(17, 130)
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := m.WriteTo(&buf)
	require.NoError(t, err)
	assert.Positive(t, n)

	got, err := matrix.ReadMatrix(&buf)
	require.NoError(t, err)
	assert.Equal(t, m.String(), got.String())
}

func TestReadMatrixRejectsBadMagic(t *testing.T) {
	t.Parallel()

	_, err := matrix.ReadMatrix(bytes.NewReader([]byte("XXXX\x01\x00\x00\x00\x00\x00\x00\x00\x01\x00\x00\x00\x00\x00\x00\x00\x01")))
	assert.ErrorIs(t, err, matrix.ErrBadMagic)
}
