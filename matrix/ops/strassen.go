// strassen.go implements the Strassen--Winograd 7-multiply/15-add
// block-recursive multiply layered over M4RM (spec ??4.5). Odd dimensions
// are peeled into a naive-multiplied strip and recombined; recursion
// bottoms out in M4RM once any dimension falls under the cutoff.
package ops

import "github.com/galoisdense/gf2ri/matrix"

// DefaultCutoff is the dimension below which Strassen falls back to M4RM,
// tuned to a typical 256KiB L2 cache per the spec's
// min(sqrt(4*L2)/2, 2048) formula.
const DefaultCutoff = 512

// Strassen computes C = A*B using the Strassen--Winograd recursion,
// falling back to M4RM below cutoff (0 selects DefaultCutoff).
func Strassen(a, b *matrix.Matrix, cutoff, k int) (*matrix.Matrix, error) {
	if err := matrix.ValidateMultiplicable(a, b); err != nil {
		return nil, err
	}
	if cutoff <= 0 {
		cutoff = DefaultCutoff
	}
	return strassenRec(a, b, cutoff, k)
}

func strassenRec(a, b *matrix.Matrix, cutoff, k int) (*matrix.Matrix, error) {
	m, kk, n := a.Rows(), a.Cols(), b.Cols()
	if m < cutoff || kk < cutoff || n < cutoff {
		return M4RM(a, b, k)
	}

	mHalf, kHalf, nHalf := m/2, kk/2, n/2
	mOdd, kOdd, nOdd := m%2 != 0, kk%2 != 0, n%2 != 0

	aCore, err := matrix.NewWindow(a, 0, 0, 2*mHalf, 2*kHalf)
	if err != nil {
		return nil, err
	}
	bCore, err := matrix.NewWindow(b, 0, 0, 2*kHalf, 2*nHalf)
	if err != nil {
		return nil, err
	}

	a11, err := matrix.NewWindow(aCore, 0, 0, mHalf, kHalf)
	if err != nil {
		return nil, err
	}
	a12, err := matrix.NewWindow(aCore, 0, kHalf, mHalf, kHalf)
	if err != nil {
		return nil, err
	}
	a21, err := matrix.NewWindow(aCore, mHalf, 0, mHalf, kHalf)
	if err != nil {
		return nil, err
	}
	a22, err := matrix.NewWindow(aCore, mHalf, kHalf, mHalf, kHalf)
	if err != nil {
		return nil, err
	}
	b11, err := matrix.NewWindow(bCore, 0, 0, kHalf, nHalf)
	if err != nil {
		return nil, err
	}
	b12, err := matrix.NewWindow(bCore, 0, nHalf, kHalf, nHalf)
	if err != nil {
		return nil, err
	}
	b21, err := matrix.NewWindow(bCore, kHalf, 0, kHalf, nHalf)
	if err != nil {
		return nil, err
	}
	b22, err := matrix.NewWindow(bCore, kHalf, nHalf, kHalf, nHalf)
	if err != nil {
		return nil, err
	}

	// Winograd's schedule: four sums on each side, seven products.
	s1, err := xorNew(a21, a22)
	if err != nil {
		return nil, err
	}
	s2, err := xorNew(s1, a11)
	if err != nil {
		return nil, err
	}
	s3, err := xorNew(a11, a21)
	if err != nil {
		return nil, err
	}
	s4, err := xorNew(a12, s2)
	if err != nil {
		return nil, err
	}

	t1, err := xorNew(b12, b11)
	if err != nil {
		return nil, err
	}
	t2, err := xorNew(b22, t1)
	if err != nil {
		return nil, err
	}
	t3, err := xorNew(b22, b12)
	if err != nil {
		return nil, err
	}
	t4, err := xorNew(t2, b21)
	if err != nil {
		return nil, err
	}

	p1, err := strassenRec(a11, b11, cutoff, k)
	if err != nil {
		return nil, err
	}
	p2, err := strassenRec(a12, b21, cutoff, k)
	if err != nil {
		return nil, err
	}
	p3, err := strassenRec(s4, b22, cutoff, k)
	if err != nil {
		return nil, err
	}
	p4, err := strassenRec(a22, t4, cutoff, k)
	if err != nil {
		return nil, err
	}
	p5, err := strassenRec(s1, t1, cutoff, k)
	if err != nil {
		return nil, err
	}
	p6, err := strassenRec(s2, t2, cutoff, k)
	if err != nil {
		return nil, err
	}
	p7, err := strassenRec(s3, t3, cutoff, k)
	if err != nil {
		return nil, err
	}

	u1, err := xorNew(p1, p2)
	if err != nil {
		return nil, err
	}
	u2, err := xorNew(p1, p6)
	if err != nil {
		return nil, err
	}
	u3, err := xorNew(u2, p7)
	if err != nil {
		return nil, err
	}
	u4, err := xorNew(u2, p5)
	if err != nil {
		return nil, err
	}
	u5, err := xorNew(u4, p3)
	if err != nil {
		return nil, err
	}
	u6, err := xorNew(u3, p4)
	if err != nil {
		return nil, err
	}
	u7, err := xorNew(u3, p5)
	if err != nil {
		return nil, err
	}

	c, err := matrix.NewMatrix(m, n)
	if err != nil {
		return nil, err
	}
	if err := pasteQuadrant(c, 0, 0, u1); err != nil {
		return nil, err
	}
	if err := pasteQuadrant(c, 0, nHalf, u5); err != nil {
		return nil, err
	}
	if err := pasteQuadrant(c, mHalf, 0, u6); err != nil {
		return nil, err
	}
	if err := pasteQuadrant(c, mHalf, nHalf, u7); err != nil {
		return nil, err
	}

	if kOdd {
		// Peel the unpaired column of A / row of B: contributes a rank-1
		// update over the full (even-aligned) output region.
		aLast, err := matrix.NewWindow(a, 0, kk-1, 2*mHalf, 1)
		if err != nil {
			return nil, err
		}
		bLast, err := matrix.NewWindow(b, kk-1, 0, 1, 2*nHalf)
		if err != nil {
			return nil, err
		}
		strip, err := Naive(aLast, bLast)
		if err != nil {
			return nil, err
		}
		if err := addInto(c, 0, 0, strip); err != nil {
			return nil, err
		}
	}
	if mOdd {
		// Exclude the last column here when it's also odd: the column
		// peel below covers the full height, including this row, and
		// would otherwise double-XOR the corner cell.
		rowWidth := n
		if nOdd {
			rowWidth = n - 1
		}
		aRow, err := matrix.NewWindow(a, m-1, 0, 1, kk)
		if err != nil {
			return nil, err
		}
		bForRow, err := matrix.NewWindow(b, 0, 0, kk, rowWidth)
		if err != nil {
			return nil, err
		}
		rowC, err := Naive(aRow, bForRow)
		if err != nil {
			return nil, err
		}
		if err := addInto(c, m-1, 0, rowC); err != nil {
			return nil, err
		}
	}
	if nOdd {
		bCol, err := matrix.NewWindow(b, 0, n-1, kk, 1)
		if err != nil {
			return nil, err
		}
		colC, err := Naive(a, bCol)
		if err != nil {
			return nil, err
		}
		if err := addInto(c, 0, n-1, colC); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// xorNew returns a new matrix equal to a XOR b (same shape required).
func xorNew(a, b *matrix.Matrix) (*matrix.Matrix, error) {
	if err := matrix.ValidateSameShape(a, b); err != nil {
		return nil, err
	}
	out, err := matrix.NewMatrix(a.Rows(), a.Cols())
	if err != nil {
		return nil, err
	}
	for i := 0; i < a.Rows(); i++ {
		if err := matrix.CombineRows(out, i, a, i); err != nil {
			return nil, err
		}
		if err := matrix.CombineRows(out, i, b, i); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// pasteQuadrant writes src into dst at (rowOff, colOff). dst is freshly
// zeroed there, so XOR and overwrite coincide.
func pasteQuadrant(dst *matrix.Matrix, rowOff, colOff int, src *matrix.Matrix) error {
	return addInto(dst, rowOff, colOff, src)
}

// addInto XORs src into dst at (rowOff, colOff) in place, for the peeled
// odd-dimension strips that overlap the even-aligned core.
func addInto(dst *matrix.Matrix, rowOff, colOff int, src *matrix.Matrix) error {
	win, err := matrix.NewWindow(dst, rowOff, colOff, src.Rows(), src.Cols())
	if err != nil {
		return err
	}
	for i := 0; i < src.Rows(); i++ {
		if err := matrix.CombineRows(win, i, src, i); err != nil {
			return err
		}
	}
	return win.Free()
}
