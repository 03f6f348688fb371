// naive.go implements the cubic baseline multiply used both as a
// standalone routine and as the oracle in the package's property tests
// (spec ??4 overview, invariant 1: naive/M4RM/Strassen must agree).
package ops

import "github.com/galoisdense/gf2ri/matrix"

// Naive computes C = A*B over GF(2) with the textbook triple loop.
func Naive(a, b *matrix.Matrix) (*matrix.Matrix, error) {
	if err := matrix.ValidateMultiplicable(a, b); err != nil {
		return nil, err
	}
	c, err := matrix.NewMatrix(a.Rows(), b.Cols())
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.Rows(); i++ {
		for k := 0; k < a.Cols(); k++ {
			ak, err := a.GetCellBit(i, k)
			if err != nil {
				return nil, err
			}
			if ak == 0 {
				continue
			}
			if err := matrix.CombineRows(c, i, b, k); err != nil {
				return nil, err
			}
		}
	}
	return c, nil
}
