// derived.go implements the algorithms built on top of PLE (spec ??4.8):
// echelon form, rank, left null space, inversion, and solving X*A=B.
package ops

import "github.com/galoisdense/gf2ri/matrix"

// Echelonize runs PLE on a copy of a and returns the echelon factor E. If
// full is true, it additionally back-substitutes with row XORs so
// the result is in reduced row-echelon form (every pivot column is zero
// outside its own pivot row).
func Echelonize(a *matrix.Matrix, full bool) (*matrix.Matrix, error) {
	work, err := a.Copy()
	if err != nil {
		return nil, err
	}
	res, err := PLE(work)
	if err != nil {
		return nil, err
	}
	e, err := ExplicitE(res)
	if err != nil {
		return nil, err
	}
	if !full {
		return e, nil
	}
	for col := 0; col < res.Rank; col++ {
		for row := 0; row < col; row++ {
			b, err := e.GetCellBit(row, col)
			if err != nil {
				return nil, err
			}
			if b != 0 {
				if err := matrix.CombineRows(e, row, e, col); err != nil {
					return nil, err
				}
			}
		}
	}
	return e, nil
}

// Rank returns rank(a) via PLE.
func Rank(a *matrix.Matrix) (int, error) {
	work, err := a.Copy()
	if err != nil {
		return 0, err
	}
	res, err := PLE(work)
	if err != nil {
		return 0, err
	}
	return res.Rank, nil
}

// KernelLeft returns a basis for the null space {x : a*x = 0} of a, one
// basis vector per row: a (n-r) x n matrix K with a*K^t = 0, extracted from
// the non-pivot columns of the PLE result by identity construction (spec
// ??4.8). When a has full column rank it returns a single all-zero 1 x n row.
func KernelLeft(a *matrix.Matrix) (*matrix.Matrix, error) {
	work, err := a.Copy()
	if err != nil {
		return nil, err
	}
	res, err := PLE(work)
	if err != nil {
		return nil, err
	}
	e, err := ExplicitE(res)
	if err != nil {
		return nil, err
	}

	n := a.Cols()
	r := res.Rank
	dim := n - r
	if dim <= 0 {
		return matrix.NewMatrix(1, n)
	}

	basisCols, err := matrix.NewMatrix(dim, n)
	if err != nil {
		return nil, err
	}
	// Each non-pivot column c contributes a basis vector: 1 at c, and at
	// every pivot column p the bit E[p][c] (since pivot row p's equation
	// reads x_p + sum_{nonpivot c} E[p][c]*x_c = 0 over GF(2)).
	for bi := 0; bi < dim; bi++ {
		c := r + bi
		if err := basisCols.SetCellBit(bi, c, 1); err != nil {
			return nil, err
		}
		for p := 0; p < r; p++ {
			b, err := e.GetCellBit(p, c)
			if err != nil {
				return nil, err
			}
			if b != 0 {
				if err := basisCols.SetCellBit(bi, p, 1); err != nil {
					return nil, err
				}
			}
		}
	}

	// basisCols is indexed by Q's permuted column order; map back through Q.
	return res.Q.ApplyColsInverse(basisCols)
}

// Invert returns a^-1 if a is square and full rank, or nil with no error if
// a is singular (spec ??4.10: "reported via a null result; no die").
func Invert(a *matrix.Matrix) (*matrix.Matrix, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, err
	}
	n := a.Rows()

	work, err := a.Copy()
	if err != nil {
		return nil, err
	}
	res, err := PLE(work)
	if err != nil {
		return nil, err
	}
	if res.Rank < n {
		return nil, nil
	}

	id, err := matrix.IdentityMatrix(n)
	if err != nil {
		return nil, err
	}
	// P*L*E*Q = a, E = I when full rank (up to the unit-diagonal echelon
	// form being exactly I for a square full-rank matrix): solve
	// L*Y = P^-1 * id, then Q*X = Y via the (identity) column permutation.
	rhs, err := res.P.ApplyRowsInverse(id)
	if err != nil {
		return nil, err
	}
	l, err := ExplicitL(res)
	if err != nil {
		return nil, err
	}
	if err := matrix.ValidateSquare(l); err != nil {
		return nil, err
	}
	if err := TRSMLowerLeft(l, rhs); err != nil {
		return nil, err
	}
	return res.Q.ApplyRows(rhs)
}

// SolveLeft solves X*A=B for X, via PLE of A and two TRSMs (spec ??4.8).
// Returns nil with no error if A is singular.
func SolveLeft(a, b *matrix.Matrix) (*matrix.Matrix, error) {
	if a.Rows() != b.Cols() {
		return nil, matrix.ErrDimensionMismatch
	}

	work, err := a.Copy()
	if err != nil {
		return nil, err
	}
	res, err := PLE(work)
	if err != nil {
		return nil, err
	}
	n := a.Rows()
	if res.Rank < n {
		return nil, nil
	}

	// X*A=B  <=>  A^t*X^t = B^t. Solve via transposition into the left
	// triangular solves TRSM already provides.
	at, err := matrix.Transpose(a)
	if err != nil {
		return nil, err
	}
	bt, err := matrix.Transpose(b)
	if err != nil {
		return nil, err
	}

	workT, err := at.Copy()
	if err != nil {
		return nil, err
	}
	resT, err := PLE(workT)
	if err != nil {
		return nil, err
	}
	if resT.Rank < at.Rows() {
		return nil, nil
	}

	rhs, err := resT.P.ApplyRowsInverse(bt)
	if err != nil {
		return nil, err
	}
	l, err := ExplicitL(resT)
	if err != nil {
		return nil, err
	}
	if err := matrix.ValidateSquare(l); err != nil {
		return nil, err
	}
	if err := TRSMLowerLeft(l, rhs); err != nil {
		return nil, err
	}
	xt, err := resT.Q.ApplyRows(rhs)
	if err != nil {
		return nil, err
	}
	return matrix.Transpose(xt)
}
