// m4rm.go implements the Method of Four Russians multiplication (spec
// ??4.4): B's rows are tiled into k-row strips, each strip contributes a
// 2^k-entry table of XOR-combined rows built in Gray-code order so every
// entry after the first costs one XOR, and A's rows look up their k-bit
// index into that table instead of scanning k individual bits.
package ops

import (
	"math/bits"

	"github.com/galoisdense/gf2ri/gray"
	"github.com/galoisdense/gf2ri/matrix"
)

// autoK implements the spec's automatic table-width heuristic:
// max(1, round(0.75*ceil(log2(min(m,n))))) capped at gray.MaxKay.
func autoK(m, n int) int {
	d := m
	if n < d {
		d = n
	}
	if d < 2 {
		return 1
	}
	lg := bits.Len(uint(d - 1))
	k := int(0.75*float64(lg) + 0.5)
	if k < 1 {
		k = 1
	}
	if k > gray.MaxKay {
		k = gray.MaxKay
	}
	return k
}

// M4RM computes C = A*B over GF(2) using the Method of Four Russians. k=0
// selects the table width automatically.
func M4RM(a, b *matrix.Matrix, k int) (*matrix.Matrix, error) {
	if err := matrix.ValidateMultiplicable(a, b); err != nil {
		return nil, err
	}
	c, err := matrix.NewMatrix(a.Rows(), b.Cols())
	if err != nil {
		return nil, err
	}
	if err := M4RMInto(c, a, b, k); err != nil {
		return nil, err
	}
	return c, nil
}

// M4RMInto computes c += A*B in place; M4RM calls it on a freshly zeroed c.
func M4RMInto(c, a, b *matrix.Matrix, k int) error {
	if err := matrix.ValidateMultiplicable(a, b); err != nil {
		return err
	}
	if c.Rows() != a.Rows() || c.Cols() != b.Cols() {
		return matrix.ErrDimensionMismatch
	}
	if k <= 0 {
		k = autoK(a.Rows(), a.Cols())
	}
	kk := a.Cols()
	for strip := 0; strip < kk; strip += k {
		width := k
		if strip+width > kk {
			width = kk - strip
		}
		stripTableEntries := 1 << uint(width)
		stripTbl := gray.Build(width)

		t, err := buildStripTable(b, strip, width, stripTbl, stripTableEntries)
		if err != nil {
			return err
		}

		for i := 0; i < a.Rows(); i++ {
			idx, err := matrix.ReadBits(a, i, strip, width)
			if err != nil {
				return err
			}
			if idx == 0 {
				continue
			}
			if err := matrix.CombineRows(c, i, t.rows[idx], 0); err != nil {
				return err
			}
		}
	}
	return nil
}

// stripTable holds, for a k-column strip, one matrix row per possible
// k-bit pattern of A, each row already equal to the XOR of b's strip rows
// selected by that pattern.
type stripTable struct {
	rows []*matrix.Matrix
}

// buildStripTable builds T[i] = XOR of b's rows in [strip, strip+width)
// whose bit pattern matches i, walking the Gray-code order so each entry
// after T[ord[0]]=0 costs exactly one row XOR against the previous entry.
func buildStripTable(b *matrix.Matrix, strip, width int, tbl *gray.Table, entries int) (*stripTable, error) {
	t := &stripTable{rows: make([]*matrix.Matrix, entries)}
	zero, err := matrix.NewMatrix(1, b.Cols())
	if err != nil {
		return nil, err
	}
	t.rows[0] = zero

	cur := zero
	for j := 1; j < entries; j++ {
		curIdx := tbl.Ord[j]
		flipped := tbl.Inc[j-1]

		next, err := cur.Copy()
		if err != nil {
			return nil, err
		}
		srcRow := strip + int(flipped)
		if srcRow < b.Rows() {
			if err := matrix.CombineRows(next, 0, b, srcRow); err != nil {
				return nil, err
			}
		}
		t.rows[curIdx] = next
		cur = next
	}
	return t, nil
}
