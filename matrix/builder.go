// builder.go: convenience constructors for GF(2) matrices (spec ??6's
// "construction helpers"), mirroring the teacher package's builder-style
// entry points (NewDense, BuildDenseAdjacency) but over packed-bit storage.
package matrix

import (
	"strings"

	"github.com/galoisdense/gf2ri/rng"
)

// Zero returns a new zero-filled rows x cols Matrix. Alias for NewMatrix,
// kept for callers that want to name the intent explicitly.
func Zero(rows, cols int) (*Matrix, error) {
	return NewMatrix(rows, cols)
}

// IdentityMatrix returns the n x n identity matrix over GF(2).
func IdentityMatrix(n int) (*Matrix, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := NewMatrix(n, n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if err := m.SetCellBit(i, i, 1); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Random returns a rows x cols Matrix with each bit drawn independently and
// uniformly from {0,1}, using the installed rng hook (spec ??6 scenario
// "random matrix of density 1/2").
func Random(rows, cols int) (*Matrix, error) {
	m, err := NewMatrix(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		col := 0
		for col < cols {
			chunk := cols - col
			if chunk > WordBits {
				chunk = WordBits
			}
			word := rng.RandomWord()
			if chunk < WordBits {
				word &= (uint64(1) << uint(chunk)) - 1
			}
			if err := WriteBits(m, i, col, chunk, word); err != nil {
				return nil, err
			}
			col += chunk
		}
	}
	return m, nil
}

// FromBits builds a Matrix from a row-major slice of 0/1 values, rows*cols
// long. Intended for small literal matrices in tests and examples (spec ??6
// scenario S2's "explicit small matrix").
func FromBits(rows, cols int, bits []int) (*Matrix, error) {
	if len(bits) != rows*cols {
		return nil, ErrDimensionMismatch
	}
	m, err := NewMatrix(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if bits[i*cols+j] != 0 {
				if err := m.SetCellBit(i, j, 1); err != nil {
					return nil, err
				}
			}
		}
	}
	return m, nil
}

// String renders m as rows of '0'/'1' characters, one row per line. Meant
// for small matrices in tests and debugging, not for serialization (see
// io.go for the persisted format).
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.nrows; i++ {
		for j := 0; j < m.ncols; j++ {
			b, _ := m.GetCellBit(i, j)
			if b != 0 {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		if i < m.nrows-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
