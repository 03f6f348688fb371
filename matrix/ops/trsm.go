// trsm.go implements the triangular solve engines (spec ??4.6): given a
// unit-triangular U (diagonal implicitly 1) and a right-hand-side B,
// compute X with U*X=B (or X*U=B for the right variants), overwriting B.
// Recursion splits U into quadrants and bottoms out, once U is small enough,
// in an M4RM-table base case: the small triangular factor is inverted
// explicitly (cheap at that size) and applied to the whole of B in one
// M4RM call, so B's columns are processed through the Gray-code strip
// table rather than substituted one row at a time.
package ops

import "github.com/galoisdense/gf2ri/matrix"

// directSolveCutoff is the triangular dimension at or below which TRSM stops
// recursing and solves directly: it inverts the small triangular factor and
// applies the inverse to B with one M4RM call.
const directSolveCutoff = 64

// TRSMUpperLeft solves U*X=B in place (X overwrites B), U m x m
// upper-unit-triangular, B m x n.
func TRSMUpperLeft(u, b *matrix.Matrix) error {
	if err := matrix.ValidateSquare(u); err != nil {
		return err
	}
	if u.Rows() != b.Rows() {
		return matrix.ErrDimensionMismatch
	}
	return trsmUpperLeftRec(u, b)
}

func trsmUpperLeftRec(u, b *matrix.Matrix) error {
	m := u.Rows()
	if m <= directSolveCutoff {
		return directSolveUpperLeft(u, b)
	}

	h := m / 2
	u00, err := matrix.NewWindow(u, 0, 0, h, h)
	if err != nil {
		return err
	}
	u01, err := matrix.NewWindow(u, 0, h, h, m-h)
	if err != nil {
		return err
	}
	u11, err := matrix.NewWindow(u, h, h, m-h, m-h)
	if err != nil {
		return err
	}
	b0, err := matrix.NewWindow(b, 0, 0, h, b.Cols())
	if err != nil {
		return err
	}
	b1, err := matrix.NewWindow(b, h, 0, m-h, b.Cols())
	if err != nil {
		return err
	}

	if err := trsmUpperLeftRec(u11, b1); err != nil {
		return err
	}
	// B0 -= U01*X1
	delta, err := M4RM(u01, b1, 0)
	if err != nil {
		return err
	}
	for i := 0; i < b0.Rows(); i++ {
		if err := matrix.CombineRows(b0, i, delta, i); err != nil {
			return err
		}
	}
	return trsmUpperLeftRec(u00, b0)
}

// directSolveUpperLeft solves a small upper-unit-triangular system. Rather
// than substituting one row of B at a time, it explicitly inverts U (cheap:
// m<=directSolveCutoff) and applies the inverse to the whole of B in one
// M4RM call, so the base case's B-sized work goes through M4RM's Gray-code
// strip table instead of a bit-by-bit scan of U per row.
func directSolveUpperLeft(u, b *matrix.Matrix) error {
	uinv, err := invertUnitUpperTriangular(u)
	if err != nil {
		return err
	}
	x, err := M4RM(uinv, b, 0)
	if err != nil {
		return err
	}
	return overwriteRows(b, x)
}

// invertUnitUpperTriangular computes U^-1 by running the same back
// substitution U*X=B would use, but with B fixed to the identity, so the
// row operations performed are exactly U's inverse as a matrix.
func invertUnitUpperTriangular(u *matrix.Matrix) (*matrix.Matrix, error) {
	m := u.Rows()
	inv, err := matrix.IdentityMatrix(m)
	if err != nil {
		return nil, err
	}
	for i := m - 1; i >= 0; i-- {
		for j := i + 1; j < m; j++ {
			uij, err := u.GetCellBit(i, j)
			if err != nil {
				return nil, err
			}
			if uij == 0 {
				continue
			}
			if err := matrix.CombineRows(inv, i, inv, j); err != nil {
				return nil, err
			}
		}
	}
	return inv, nil
}

// overwriteRows replaces dst's content with src's, row by row.
func overwriteRows(dst, src *matrix.Matrix) error {
	for i := 0; i < dst.Rows(); i++ {
		if err := matrix.ClearBits(dst, i, 0, dst.Cols()); err != nil {
			return err
		}
		if err := matrix.CombineRows(dst, i, src, i); err != nil {
			return err
		}
	}
	return nil
}

// TRSMLowerLeft solves L*X=B in place, L m x m lower-unit-triangular.
func TRSMLowerLeft(l, b *matrix.Matrix) error {
	if err := matrix.ValidateSquare(l); err != nil {
		return err
	}
	if l.Rows() != b.Rows() {
		return matrix.ErrDimensionMismatch
	}
	return trsmLowerLeftRec(l, b)
}

func trsmLowerLeftRec(l, b *matrix.Matrix) error {
	m := l.Rows()
	if m <= directSolveCutoff {
		return directSolveLowerLeft(l, b)
	}

	h := m / 2
	l00, err := matrix.NewWindow(l, 0, 0, h, h)
	if err != nil {
		return err
	}
	l10, err := matrix.NewWindow(l, h, 0, m-h, h)
	if err != nil {
		return err
	}
	l11, err := matrix.NewWindow(l, h, h, m-h, m-h)
	if err != nil {
		return err
	}
	b0, err := matrix.NewWindow(b, 0, 0, h, b.Cols())
	if err != nil {
		return err
	}
	b1, err := matrix.NewWindow(b, h, 0, m-h, b.Cols())
	if err != nil {
		return err
	}

	if err := trsmLowerLeftRec(l00, b0); err != nil {
		return err
	}
	delta, err := M4RM(l10, b0, 0)
	if err != nil {
		return err
	}
	for i := 0; i < b1.Rows(); i++ {
		if err := matrix.CombineRows(b1, i, delta, i); err != nil {
			return err
		}
	}
	return trsmLowerLeftRec(l11, b1)
}

// directSolveLowerLeft mirrors directSolveUpperLeft: invert the small
// lower-unit-triangular L, then apply the inverse to all of B via M4RM.
func directSolveLowerLeft(l, b *matrix.Matrix) error {
	linv, err := invertUnitLowerTriangular(l)
	if err != nil {
		return err
	}
	x, err := M4RM(linv, b, 0)
	if err != nil {
		return err
	}
	return overwriteRows(b, x)
}

// invertUnitLowerTriangular computes L^-1 by running the forward
// substitution L*X=B would use, with B fixed to the identity.
func invertUnitLowerTriangular(l *matrix.Matrix) (*matrix.Matrix, error) {
	m := l.Rows()
	inv, err := matrix.IdentityMatrix(m)
	if err != nil {
		return nil, err
	}
	for i := 0; i < m; i++ {
		for j := 0; j < i; j++ {
			lij, err := l.GetCellBit(i, j)
			if err != nil {
				return nil, err
			}
			if lij == 0 {
				continue
			}
			if err := matrix.CombineRows(inv, i, inv, j); err != nil {
				return nil, err
			}
		}
	}
	return inv, nil
}

// TRSMUpperRight solves X*U=B in place, U n x n upper-unit-triangular,
// B m x n, via transposition to the left variant.
func TRSMUpperRight(u, b *matrix.Matrix) error {
	return trsmRightVia(u, b, TRSMLowerLeft)
}

// TRSMLowerRight solves X*L=B in place, L n x n lower-unit-triangular.
func TRSMLowerRight(l, b *matrix.Matrix) error {
	return trsmRightVia(l, b, TRSMUpperLeft)
}

// trsmRightVia reduces a right-multiplication solve to a left
// solve by transposing both operands: (X*T=B) transposes to (T^t*X^t=B^t).
func trsmRightVia(t, b *matrix.Matrix, leftSolve func(*matrix.Matrix, *matrix.Matrix) error) error {
	tt, err := matrix.Transpose(t)
	if err != nil {
		return err
	}
	bt, err := matrix.Transpose(b)
	if err != nil {
		return err
	}
	if err := leftSolve(tt, bt); err != nil {
		return err
	}
	solved, err := matrix.Transpose(bt)
	if err != nil {
		return err
	}
	for i := 0; i < b.Rows(); i++ {
		if err := matrix.ClearBits(b, i, 0, b.Cols()); err != nil {
			return err
		}
		if err := matrix.CombineRows(b, i, solved, i); err != nil {
			return err
		}
	}
	return nil
}
